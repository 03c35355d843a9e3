package api

import (
	"boatshow-server/internal/access"
	adminUserHandler "boatshow-server/internal/adminusers/handler"
	authHandler "boatshow-server/internal/auth/handler"
	emailCampaignHandler "boatshow-server/internal/emailcampaigns/handler"
	emailTemplateHandler "boatshow-server/internal/emailtemplates/handler"
	promoCodeHandler "boatshow-server/internal/promocodes/handler"
	"boatshow-server/internal/ratelimit"
	submissionHandler "boatshow-server/internal/submissions/handler"
	uploadHandler "boatshow-server/internal/uploads/handler"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handlers groups every feature handler the API exposes
type Handlers struct {
	Auth          authHandler.Handler
	AdminUser     adminUserHandler.Handler
	Submission    submissionHandler.Handler
	PromoCode     promoCodeHandler.Handler
	Upload        uploadHandler.Handler
	EmailTemplate emailTemplateHandler.Handler
	EmailCampaign emailCampaignHandler.Handler
}

type API struct {
	router      *gin.RouterGroup
	handlers    Handlers
	rateLimiter *ratelimit.Service
	captcha     CaptchaVerifier
}

func New(router *gin.RouterGroup, handlers Handlers, rateLimiter *ratelimit.Service, captcha CaptchaVerifier) API {
	return API{
		router:      router,
		handlers:    handlers,
		rateLimiter: rateLimiter,
		captcha:     captcha,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()

	h := &a.handlers
	public := h.Auth.HandlePublicMiddleware
	admin := h.Auth.HandleAdminMiddleware
	perm := authHandler.RequirePermission

	authGroup := a.router.Group("/auth")
	{
		authGroup.POST("/signin", a.rateLimiter.Middleware("signin"), h.Auth.HandleSignIn)
		authGroup.GET("/session", h.Auth.HandleSession)
		authGroup.POST("/signout", h.Auth.HandleSignOut)
		authGroup.POST("/signup", admin, authHandler.RequireSuperAdmin, h.AdminUser.HandleSignUp)
	}

	dashboardGroup := a.router.Group("/dashboard", admin)
	{
		dashboardGroup.GET("/sections", h.Auth.HandleDashboardSections)
		dashboardGroup.POST("/pin", h.Auth.HandleCheckPIN)
	}

	// Public registration surface
	a.router.POST("/submissions", public, a.rateLimiter.Middleware("submissions"), requireCaptcha(a.captcha), h.Submission.HandleCreateSubmission)
	a.router.POST("/promo-codes/validate", public, a.rateLimiter.Middleware("promo-validate"), h.PromoCode.HandleValidatePromoCode)
	a.router.POST("/upload", public, a.rateLimiter.Middleware("upload"), h.Upload.HandleUpload)

	submissionsGroup := a.router.Group("/submissions", admin)
	{
		submissionsGroup.GET("", perm(access.Submissions, access.Participants), h.Submission.HandleListSubmissions)
		submissionsGroup.GET("/:id", perm(access.Submissions, access.Participants), h.Submission.HandleGetSubmission)
		submissionsGroup.PUT("/:id", perm(access.Submissions), h.Submission.HandleUpdateSubmission)
		submissionsGroup.POST("/:id/approve", perm(access.Submissions), h.Submission.HandleApproveSubmission)
		submissionsGroup.POST("/:id/reject", perm(access.Submissions), h.Submission.HandleRejectSubmission)
		submissionsGroup.DELETE("/:id", perm(access.Submissions, access.Participants), h.Submission.HandleDeleteSubmission)
	}
	a.router.GET("/participants/export", admin, perm(access.Participants), h.Submission.HandleExportParticipants)
	a.router.GET("/stats", admin, perm(access.Submissions), h.Submission.HandleGetStats)
	a.router.GET("/files/*path", admin, perm(access.Submissions, access.Participants), h.Upload.HandleGetFileURL)

	promoGroup := a.router.Group("/promo-codes", admin, perm(access.PromoCodes))
	{
		promoGroup.GET("", h.PromoCode.HandleListPromoCodes)
		promoGroup.POST("", h.PromoCode.HandleCreatePromoCode)
		promoGroup.POST("/import", h.PromoCode.HandleImportPromoCodes)
		promoGroup.PUT("/:code", h.PromoCode.HandleUpdatePromoCode)
		promoGroup.DELETE("/:code", h.PromoCode.HandleDeletePromoCode)
	}

	templateGroup := a.router.Group("/email-templates", admin, perm(access.Templates))
	{
		templateGroup.GET("", h.EmailTemplate.HandleListEmailTemplates)
		templateGroup.POST("", h.EmailTemplate.HandleCreateEmailTemplate)
		templateGroup.GET("/:id", h.EmailTemplate.HandleGetEmailTemplate)
		templateGroup.PUT("/:id", h.EmailTemplate.HandleUpdateEmailTemplate)
		templateGroup.DELETE("/:id", h.EmailTemplate.HandleDeleteEmailTemplate)
		templateGroup.POST("/:id/test", h.EmailTemplate.HandleSendTestEmail)
	}

	campaignGroup := a.router.Group("/email-campaigns", admin, perm(access.Campaigns))
	{
		campaignGroup.GET("", h.EmailCampaign.HandleListCampaigns)
		campaignGroup.POST("", h.EmailCampaign.HandleCreateCampaign)
		campaignGroup.GET("/:id", h.EmailCampaign.HandleGetCampaign)
		campaignGroup.PUT("/:id", h.EmailCampaign.HandleUpdateCampaign)
		campaignGroup.DELETE("/:id", h.EmailCampaign.HandleDeleteCampaign)
		campaignGroup.POST("/:id/send", h.EmailCampaign.HandleSendCampaign)
	}

	mailingListGroup := a.router.Group("/mailing-lists", admin, perm(access.Campaigns))
	{
		mailingListGroup.GET("", h.EmailCampaign.HandleListMailingLists)
		mailingListGroup.POST("", h.EmailCampaign.HandleCreateMailingList)
		mailingListGroup.GET("/:id", h.EmailCampaign.HandleGetMailingList)
		mailingListGroup.DELETE("/:id", h.EmailCampaign.HandleDeleteMailingList)
	}

	adminUserGroup := a.router.Group("/admin-users", admin, authHandler.RequireSuperAdmin)
	{
		adminUserGroup.GET("", h.AdminUser.HandleListAdminUsers)
		adminUserGroup.PUT("/:id", h.AdminUser.HandleUpdateAdminUser)
		adminUserGroup.DELETE("/:id", h.AdminUser.HandleDeleteAdminUser)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
