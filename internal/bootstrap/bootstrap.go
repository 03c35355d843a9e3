package bootstrap

import (
	"boatshow-server/internal/config"
	"boatshow-server/internal/observability"
	"boatshow-server/internal/store"
	"context"
	"fmt"

	"boatshow-server/internal/access"
	adminUserHandler "boatshow-server/internal/adminusers/handler"
	adminUserProcessor "boatshow-server/internal/adminusers/processor"
	authHandler "boatshow-server/internal/auth/handler"
	authProcessor "boatshow-server/internal/auth/processor"
	"boatshow-server/internal/clients/mail"
	"boatshow-server/internal/clients/objectstorage"
	"boatshow-server/internal/clients/redis"
	"boatshow-server/internal/clients/turnstile"
	"boatshow-server/internal/email"
	emailCampaignHandler "boatshow-server/internal/emailcampaigns/handler"
	emailCampaignProcessor "boatshow-server/internal/emailcampaigns/processor"
	emailTemplateHandler "boatshow-server/internal/emailtemplates/handler"
	emailTemplateProcessor "boatshow-server/internal/emailtemplates/processor"
	"boatshow-server/internal/notifications"
	promoCodeHandler "boatshow-server/internal/promocodes/handler"
	promoCodeProcessor "boatshow-server/internal/promocodes/processor"
	"boatshow-server/internal/ratelimit"
	submissionHandler "boatshow-server/internal/submissions/handler"
	submissionProcessor "boatshow-server/internal/submissions/processor"
	uploadHandler "boatshow-server/internal/uploads/handler"
	uploadProcessor "boatshow-server/internal/uploads/processor"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Logger *observability.Logger
	Redis  *redis.Client

	// Handlers
	AuthHandler          authHandler.Handler
	AdminUserHandler     adminUserHandler.Handler
	SubmissionHandler    submissionHandler.Handler
	PromoCodeHandler     promoCodeHandler.Handler
	UploadHandler        uploadHandler.Handler
	EmailTemplateHandler emailTemplateHandler.Handler
	EmailCampaignHandler emailCampaignHandler.Handler

	// Middleware
	RateLimiter *ratelimit.Service
	Captcha     *turnstile.Client

	// Background workers
	Dispatcher *notifications.Dispatcher

	adminUsers adminUserProcessor.AdminUserProcessor
	promoCodes promoCodeProcessor.PromoCodeProcessor
	closers    []func() error
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	awsCfg, err := loadAWSConfig(ctx, cfg.AWS)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	// Redis backs the rate limiter and, when selected, the KV store
	deps.Redis, err = redis.NewClient(cfg.Redis, logger)
	if err != nil {
		return nil, err
	}
	deps.closers = append(deps.closers, deps.Redis.Close)

	kv, err := deps.openKV(ctx, cfg, awsCfg)
	if err != nil {
		deps.Cleanup()
		return nil, err
	}
	deps.Store = store.New(kv, logger)

	// Initialize clients
	var sender email.Sender
	switch cfg.Services.MailProvider {
	case config.MailProviderSES:
		sender = mail.NewSESClient(awsCfg, logger)
	default:
		resendClient, err := mail.NewResendClient(cfg.Services.ResendAPIKey, logger)
		if err != nil {
			deps.Cleanup()
			return nil, fmt.Errorf("failed to create resend client: %w", err)
		}
		sender = resendClient
	}
	objectStore := objectstorage.NewClient(awsCfg, cfg.Storage.Bucket, logger)

	// Initialize email service
	renderer := email.NewRenderer()
	emailService := email.New(sender, renderer, cfg.Services.DefaultEmailSender, cfg.Services.WebAppURI, logger)

	// Initialize auth processor and handler
	authProc := authProcessor.New(&deps.Store, cfg.Auth, logger)
	deps.AuthHandler = authHandler.New(authProc, access.NewPINGate(cfg.Portal.DashboardPIN), logger)

	// Initialize admin user processor and handler
	deps.adminUsers = adminUserProcessor.New(&deps.Store, logger)
	deps.AdminUserHandler = adminUserHandler.New(deps.adminUsers, logger)

	// Initialize promo code processor and handler
	deps.promoCodes = promoCodeProcessor.New(&deps.Store, logger)
	deps.PromoCodeHandler = promoCodeHandler.New(deps.promoCodes, logger)

	// Initialize submission processor and handler
	submissionProc := submissionProcessor.New(&deps.Store, &deps.promoCodes, logger)
	deps.SubmissionHandler = submissionHandler.New(submissionProc, logger)

	// Initialize upload processor and handler
	uploadProc := uploadProcessor.New(objectStore, cfg.Storage, logger)
	deps.UploadHandler = uploadHandler.New(uploadProc, cfg.Storage.UploadMaxBytes, logger)

	// Initialize email template processor and handler
	emailTemplateProc := emailTemplateProcessor.New(&deps.Store, renderer, emailService, logger)
	deps.EmailTemplateHandler = emailTemplateHandler.New(emailTemplateProc, logger)

	// Initialize email campaign processor and handler
	emailCampaignProc := emailCampaignProcessor.New(&deps.Store, renderer, cfg.Services.DefaultEmailSender, logger)
	deps.EmailCampaignHandler = emailCampaignHandler.New(emailCampaignProc, logger)

	deps.RateLimiter = ratelimit.NewService(deps.Redis, cfg.RateLimit.RequestsPerMinute, logger)
	deps.Captcha = turnstile.NewClient(cfg.Services.TurnstileSecretKey, logger)
	if !deps.Captcha.IsEnabled() {
		logger.Warn(ctx, "TURNSTILE_SECRET_KEY not set, public registrations are not captcha checked")
	}
	deps.Dispatcher = notifications.NewDispatcher(&deps.Store, emailService, logger)

	return deps, nil
}

// Seed creates the super admin and the default promo codes on an empty store
func (d *Dependencies) Seed(ctx context.Context, cfg *config.Config) error {
	if _, err := d.adminUsers.EnsureSuperAdmin(ctx, cfg.Auth.DefaultAdminPassword); err != nil {
		return fmt.Errorf("failed to seed super admin: %w", err)
	}
	if _, err := d.promoCodes.EnsureDefaultPromoCodes(ctx); err != nil {
		return fmt.Errorf("failed to seed promo codes: %w", err)
	}
	return nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i](); err != nil {
			d.Logger.Error(context.Background(), "failed to close dependency", err)
		}
	}
	d.closers = nil
}

// openKV connects the configured KV backend
func (d *Dependencies) openKV(ctx context.Context, cfg *config.Config, awsCfg aws.Config) (store.KV, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "kv_backend", Value: cfg.KV.Backend})

	switch cfg.KV.Backend {
	case config.KVBackendPostgres:
		db, err := sqlx.ConnectContext(ctx, "pgx", cfg.Database.ConnectionString())
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		d.closers = append(d.closers, db.Close)

		kv := store.NewPostgresKV(db)
		if err := kv.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		d.Logger.Info(ctx, "using postgres kv store")
		return kv, nil

	case config.KVBackendRedis:
		d.Logger.Info(ctx, "using redis kv store")
		return store.NewRedisKV(d.Redis.GetClient()), nil

	case config.KVBackendDynamoDB:
		ctx = observability.WithFields(ctx, observability.Field{Key: "table", Value: cfg.AWS.DynamoDBTable})
		d.Logger.Info(ctx, "using dynamodb kv store")
		return store.NewDynamoKV(dynamodb.NewFromConfig(awsCfg), cfg.AWS.DynamoDBTable), nil

	case config.KVBackendMemory:
		d.Logger.Warn(ctx, "using in-memory kv store, data is lost on restart")
		return store.NewMemoryKV(), nil

	default:
		return nil, fmt.Errorf("KV_BACKEND=%q: %w", cfg.KV.Backend, config.ErrInvalidKVBackend)
	}
}

// loadAWSConfig resolves credentials from the default chain unless static
// keys are configured
func loadAWSConfig(ctx context.Context, cfg config.AWSConfig) (aws.Config, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, err
	}
	if cfg.Endpoint != "" {
		awsCfg.BaseEndpoint = aws.String(cfg.Endpoint)
	}
	return awsCfg, nil
}
