package store

// Key prefixes
const (
	PrefixSubmission    = "submission:"
	PrefixPromoCode     = "promo-code:"
	PrefixAdminUser     = "admin:"
	PrefixEmailTemplate = "email-template:"
	PrefixEmailCampaign = "email-campaign:"
	PrefixMailingList   = "mailing-list:"
	PrefixNotification  = "email-queue:"
)

// Submission ENUMs
const (
	SubmissionCategoryMedia     = "Media"
	SubmissionCategoryTrade     = "Trade"
	SubmissionCategoryCaptain   = "Captain/Crew/Diver"
	SubmissionCategoryVIP       = "VIP"
	SubmissionCategoryExhibitor = "Exhibitor"
)

const (
	SubmissionStatusPending  = "pending"
	SubmissionStatusApproved = "approved"
	SubmissionStatusRejected = "rejected"
)

// Placeholders stored in businessCard when no document was uploaded
const (
	BusinessCardManualEntry     = "Manual Entry"
	BusinessCardVIPRegistration = "VIP Registration"
)

// Admin ENUMs
const (
	AdminRoleSuperAdmin = "super_admin"
	AdminRoleAdmin      = "admin"
)

const (
	SuperAdminID       = PrefixAdminUser + "superadmin"
	SuperAdminUsername = "superadmin"
)

// Email campaign ENUMs
const (
	EmailCampaignStatusDraft   = "draft"
	EmailCampaignStatusSending = "sending"
	EmailCampaignStatusSent    = "sent"
)

// Notification ENUMs
const (
	NotificationTypeApproval  = "approval"
	NotificationTypeRejection = "rejection"
	NotificationTypeCampaign  = "campaign"
)

const (
	NotificationStatusQueued = "queued"
	NotificationStatusSent   = "sent"
	NotificationStatusFailed = "failed"
)

// ValidSubmissionCategory reports whether category is one of the registration categories
func ValidSubmissionCategory(category string) bool {
	switch category {
	case SubmissionCategoryMedia, SubmissionCategoryTrade, SubmissionCategoryCaptain,
		SubmissionCategoryVIP, SubmissionCategoryExhibitor:
		return true
	}
	return false
}

// ValidSubmissionStatus reports whether status is a workflow state
func ValidSubmissionStatus(status string) bool {
	switch status {
	case SubmissionStatusPending, SubmissionStatusApproved, SubmissionStatusRejected:
		return true
	}
	return false
}
