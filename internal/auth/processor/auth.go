package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"boatshow-server/internal/access"
	"boatshow-server/internal/config"
	"boatshow-server/internal/observability"
	"boatshow-server/internal/store"
	"context"
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrFailedSignIn       = errors.New("failed to sign in")
)

const tokenTTL = 24 * time.Hour

// dummyHash keeps the cost of a failed lookup close to a failed password check
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("boatshow-dummy-password"), bcrypt.DefaultCost)

type AuthProcessor struct {
	store     AdminUserStore
	jwtSecret []byte
	anonKey   string
	logger    *observability.Logger
	now       func() time.Time
}

func New(store AdminUserStore, authConfig config.AuthConfig, logger *observability.Logger) AuthProcessor {
	return AuthProcessor{
		store:     store,
		jwtSecret: []byte(authConfig.JWTSecret),
		anonKey:   authConfig.AnonKey,
		logger:    logger,
		now:       time.Now,
	}
}

// Session is returned on sign-in and by the session endpoint
type Session struct {
	AccessToken string              `json:"access_token"`
	ExpiresAt   time.Time           `json:"expires_at"`
	User        store.AdminUserView `json:"user"`
}

// Principal is the authenticated admin behind a request
type Principal struct {
	AdminID     string
	Username    string
	Role        string
	Permissions []string
}

// Access returns the permission view of the principal
func (p Principal) Access() access.Principal {
	return access.Principal{Role: p.Role, Permissions: p.Permissions}
}

// HashPassword returns the bcrypt hash stored on admin records
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// SignIn verifies username and password and issues an access token.
// Unknown usernames and wrong passwords are indistinguishable to the caller.
func (p *AuthProcessor) SignIn(ctx context.Context, username, password string) (Session, error) {
	username = strings.TrimSpace(username)
	ctx = observability.WithFields(ctx, observability.Field{Key: "username", Value: username})

	user, err := p.store.GetAdminUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			p.logger.Info(ctx, "sign in with unknown username")
			return Session{}, ErrInvalidCredentials
		}
		p.logger.Error(ctx, "failed to get admin user", err)
		return Session{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		p.logger.Info(ctx, "sign in with incorrect password")
		return Session{}, ErrInvalidCredentials
	}

	session, err := p.issueSession(ctx, user)
	if err != nil {
		return Session{}, err
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "admin_id", Value: user.ID})
	p.logger.Info(ctx, "admin signed in")
	return session, nil
}

// GetSession resolves token to the current session. The admin record is
// re-read so that deleted admins lose access immediately.
func (p *AuthProcessor) GetSession(ctx context.Context, token string) (Session, error) {
	claims, err := p.ValidateJWTToken(ctx, token)
	if err != nil {
		return Session{}, err
	}

	user, err := p.loadAdmin(ctx, claims.Subject)
	if err != nil {
		return Session{}, err
	}

	expiresAt := time.Time{}
	if claims.ExpirationTime != nil {
		expiresAt = claims.ExpirationTime.Time.UTC()
	}
	return Session{AccessToken: token, ExpiresAt: expiresAt, User: user.View()}, nil
}

// Authenticate resolves a bearer token to the principal it belongs to
func (p *AuthProcessor) Authenticate(ctx context.Context, token string) (Principal, error) {
	claims, err := p.ValidateJWTToken(ctx, token)
	if err != nil {
		return Principal{}, err
	}

	user, err := p.loadAdmin(ctx, claims.Subject)
	if err != nil {
		return Principal{}, err
	}

	return Principal{
		AdminID:     user.ID,
		Username:    user.Username,
		Role:        user.Role,
		Permissions: user.Permissions,
	}, nil
}

// IsAnonKey reports whether token is the public anonymous key
func (p *AuthProcessor) IsAnonKey(token string) bool {
	if p.anonKey == "" || token == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(p.anonKey)) == 1
}

func (p *AuthProcessor) loadAdmin(ctx context.Context, id string) (store.AdminUser, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "admin_id", Value: id})

	user, err := p.store.GetAdminUser(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			p.logger.Info(ctx, "token subject no longer exists")
			return store.AdminUser{}, ErrInvalidToken
		}
		p.logger.Error(ctx, "failed to get admin user", err)
		return store.AdminUser{}, err
	}
	return user, nil
}

func (p *AuthProcessor) issueSession(ctx context.Context, user store.AdminUser) (Session, error) {
	expiresAt := p.now().Add(tokenTTL).UTC().Truncate(time.Second)
	token, err := p.generateJWTToken(ctx, user, expiresAt)
	if err != nil {
		return Session{}, err
	}
	return Session{AccessToken: token, ExpiresAt: expiresAt, User: user.View()}, nil
}
