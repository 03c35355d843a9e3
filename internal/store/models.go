package store

import (
	"time"
)

// Guest is one attendee named on a VIP registration
type Guest struct {
	Email       string `json:"email"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	CountryCode string `json:"countryCode,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Country     string `json:"country,omitempty"`
}

// VIPData holds the VIP-only part of a submission
type VIPData struct {
	MainGuest         Guest  `json:"mainGuest"`
	AccompanyingGuest *Guest `json:"accompanyingGuest"`
	PromoCode         string `json:"promoCode"`
}

// Submission is a registration in one of the public categories or an admin-entered exhibitor
type Submission struct {
	ID                   string     `json:"id"`
	Category             string     `json:"category"`
	Email                string     `json:"email"`
	FirstName            string     `json:"firstName"`
	LastName             string     `json:"lastName"`
	Company              string     `json:"company"`
	JobTitle             string     `json:"jobTitle,omitempty"`
	Website              string     `json:"website,omitempty"`
	LinkedIn             string     `json:"linkedin"`
	Phone                string     `json:"phone,omitempty"`
	Country              string     `json:"country,omitempty"`
	BusinessCard         string     `json:"businessCard"`
	BusinessCardPath     string     `json:"businessCardPath,omitempty"`
	VerificationDoc      string     `json:"verificationDoc,omitempty"`
	VerificationDocPath  string     `json:"verificationDocPath,omitempty"`
	HasAccompanyingGuest *bool      `json:"hasAccompanyingGuest,omitempty"`
	VIPData              *VIPData   `json:"vipData,omitempty"`
	Status               string     `json:"status"`
	SubmittedAt          time.Time  `json:"submittedAt"`
	ApprovedAt           *time.Time `json:"approvedAt,omitempty"`
	ApprovalMessage      string     `json:"approvalMessage,omitempty"`
	RejectedAt           *time.Time `json:"rejectedAt,omitempty"`
	RejectionMessage     string     `json:"rejectionMessage,omitempty"`
	UpdatedAt            *time.Time `json:"updatedAt,omitempty"`
	Version              int64      `json:"-"`
}

// PromoCode gates VIP registration
type PromoCode struct {
	Code        string     `json:"code"`
	Description string     `json:"description"`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty"`
	MaxUses     int        `json:"maxUses"`
	UsedCount   int        `json:"usedCount"`
	Active      bool       `json:"active"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
	Version     int64      `json:"-"`
}

// AdminUser is a dashboard account. PasswordHash is persisted but never returned to clients.
type AdminUser struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email,omitempty"`
	Role         string     `json:"role"`
	Permissions  []string   `json:"permissions"`
	PasswordHash string     `json:"passwordHash"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`
	Version      int64      `json:"-"`
}

// AdminUserView is the client-facing shape of an AdminUser
type AdminUserView struct {
	ID          string     `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email,omitempty"`
	Role        string     `json:"role"`
	Permissions []string   `json:"permissions"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// View strips credentials from the admin record
func (a AdminUser) View() AdminUserView {
	perms := a.Permissions
	if perms == nil {
		perms = []string{}
	}
	return AdminUserView{
		ID:          a.ID,
		Username:    a.Username,
		Email:       a.Email,
		Role:        a.Role,
		Permissions: perms,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// EmailTemplate is a reusable subject/body pair rendered with Liquid
type EmailTemplate struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Subject   string     `json:"subject"`
	Body      string     `json:"body"`
	Preview   string     `json:"preview,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
	Version   int64      `json:"-"`
}

// EmailCampaign is a bulk email addressed to a recipient list
type EmailCampaign struct {
	ID           string     `json:"id"`
	CampaignName string     `json:"campaignName"`
	From         string     `json:"from,omitempty"`
	To           []string   `json:"to"`
	Template     string     `json:"template,omitempty"`
	Subject      string     `json:"subject"`
	Body         string     `json:"body"`
	Status       string     `json:"status"`
	QueuedCount  int        `json:"queuedCount,omitempty"`
	SentAt       *time.Time `json:"sentAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`
	Version      int64      `json:"-"`
}

// MailingList is a named set of contact emails. Default lists are derived, not stored.
type MailingList struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Contacts    []string  `json:"contacts"`
	Default     bool      `json:"default,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	Version     int64     `json:"-"`
}

// Notification is a queued outbound email
type Notification struct {
	ID                string     `json:"id"`
	To                string     `json:"to"`
	Subject           string     `json:"subject"`
	Message           string     `json:"message"`
	SubmissionID      string     `json:"submissionId,omitempty"`
	CampaignID        string     `json:"campaignId,omitempty"`
	Type              string     `json:"type"`
	Status            string     `json:"status"`
	ProviderMessageID string     `json:"providerMessageId,omitempty"`
	Error             string     `json:"error,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	SentAt            *time.Time `json:"sentAt,omitempty"`
	Version           int64      `json:"-"`
}
