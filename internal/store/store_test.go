package store

import (
	"boatshow-server/internal/observability"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, time.October, 1, 9, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) Store {
	t.Helper()
	return NewWithClock(NewMemoryKV(), observability.NewNopLogger(), func() time.Time { return fixedNow })
}

func TestStore_Submissions(t *testing.T) {
	ctx := context.Background()

	t.Run("create assigns time based ids and skips collisions", func(t *testing.T) {
		s := newTestStore(t)

		first, err := s.CreateSubmission(ctx, Submission{Email: "a@example.com", Status: SubmissionStatusPending, SubmittedAt: fixedNow})
		require.NoError(t, err)
		second, err := s.CreateSubmission(ctx, Submission{Email: "b@example.com", Status: SubmissionStatusPending, SubmittedAt: fixedNow})
		require.NoError(t, err)

		assert.Equal(t, "submission:1759309200000", first.ID)
		assert.Equal(t, "submission:1759309200001", second.ID)
		assert.Equal(t, int64(1), first.Version)

		stored, err := s.GetSubmission(ctx, second.ID)
		require.NoError(t, err)
		assert.Equal(t, "b@example.com", stored.Email)
		assert.Equal(t, second.ID, stored.ID)
	})

	t.Run("get accepts bare and prefixed ids", func(t *testing.T) {
		s := newTestStore(t)
		created, err := s.CreateSubmission(ctx, Submission{Email: "a@example.com"})
		require.NoError(t, err)

		byBare, err := s.GetSubmission(ctx, "1759309200000")
		require.NoError(t, err)
		byKey, err := s.GetSubmission(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, byBare, byKey)
	})

	t.Run("stale update conflicts", func(t *testing.T) {
		s := newTestStore(t)
		created, err := s.CreateSubmission(ctx, Submission{Email: "a@example.com", Status: SubmissionStatusPending})
		require.NoError(t, err)

		created.Status = SubmissionStatusApproved
		updated, err := s.UpdateSubmission(ctx, created)
		require.NoError(t, err)
		assert.Equal(t, int64(2), updated.Version)

		created.Status = SubmissionStatusRejected
		_, err = s.UpdateSubmission(ctx, created)
		assert.ErrorIs(t, err, ErrVersionConflict)
	})

	t.Run("list newest first", func(t *testing.T) {
		s := newTestStore(t)
		_, err := s.CreateSubmission(ctx, Submission{Email: "old@example.com", SubmittedAt: fixedNow.Add(-time.Hour)})
		require.NoError(t, err)
		_, err = s.CreateSubmission(ctx, Submission{Email: "new@example.com", SubmittedAt: fixedNow})
		require.NoError(t, err)

		subs, err := s.ListSubmissions(ctx)
		require.NoError(t, err)
		require.Len(t, subs, 2)
		assert.Equal(t, "new@example.com", subs[0].Email)
	})

	t.Run("delete then get is not found", func(t *testing.T) {
		s := newTestStore(t)
		created, err := s.CreateSubmission(ctx, Submission{Email: "a@example.com"})
		require.NoError(t, err)

		require.NoError(t, s.DeleteSubmission(ctx, "1759309200000"))
		_, err = s.GetSubmission(ctx, created.ID)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.ErrorIs(t, s.DeleteSubmission(ctx, created.ID), ErrNotFound)
	})
}

func TestStore_PromoCodes(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	created, err := s.CreatePromoCode(ctx, PromoCode{Code: " vip2025qbs ", MaxUses: 100, Active: true})
	require.NoError(t, err)
	assert.Equal(t, "VIP2025QBS", created.Code)

	_, err = s.CreatePromoCode(ctx, PromoCode{Code: "Vip2025Qbs"})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	got, err := s.GetPromoCode(ctx, "vip2025qbs")
	require.NoError(t, err)
	assert.Equal(t, 100, got.MaxUses)

	got.UsedCount = 1
	_, err = s.UpdatePromoCode(ctx, got)
	require.NoError(t, err)

	codes, err := s.ListPromoCodes(ctx)
	require.NoError(t, err)
	require.Len(t, codes, 1)
	assert.Equal(t, 1, codes[0].UsedCount)

	require.NoError(t, s.DeletePromoCode(ctx, "VIP2025QBS"))
	_, err = s.GetPromoCode(ctx, "VIP2025QBS")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_AdminUsers(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.CreateAdminUser(ctx, AdminUser{ID: "superadmin", Username: SuperAdminUsername, Role: AdminRoleSuperAdmin})
	require.NoError(t, err)
	_, err = s.CreateAdminUser(ctx, AdminUser{ID: "admin:ops", Username: "Ops", Role: AdminRoleAdmin, Permissions: []string{"submissions"}})
	require.NoError(t, err)

	_, err = s.CreateAdminUser(ctx, AdminUser{ID: "ops", Username: "other"})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	user, err := s.GetAdminUserByUsername(ctx, "ops")
	require.NoError(t, err)
	assert.Equal(t, "admin:ops", user.ID)

	_, err = s.GetAdminUserByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)

	has, err := s.HasAnyWithPrefix(ctx, PrefixAdminUser)
	require.NoError(t, err)
	assert.True(t, has)
}

func TestAdminUser_View(t *testing.T) {
	view := AdminUser{ID: "admin:x", Username: "x", PasswordHash: "secret"}.View()
	assert.Equal(t, "admin:x", view.ID)
	assert.NotNil(t, view.Permissions)
}

func TestStore_Notifications(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	for _, to := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		n, err := s.EnqueueNotification(ctx, Notification{To: to, Type: NotificationTypeApproval})
		require.NoError(t, err)
		assert.Equal(t, NotificationStatusQueued, n.Status)
		assert.Equal(t, fixedNow, n.CreatedAt)
	}

	all, err := s.ListNotifications(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)

	all[0].Status = NotificationStatusSent
	_, err = s.UpdateNotification(ctx, all[0])
	require.NoError(t, err)

	queued, err := s.ListQueuedNotifications(ctx, 1)
	require.NoError(t, err)
	require.Len(t, queued, 1)
	assert.Equal(t, "b@example.com", queued[0].To)

	queued, err = s.ListQueuedNotifications(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, queued, 2)
}

func TestStore_CampaignNotifications(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.EnqueueNotification(ctx, Notification{To: "a@example.com", CampaignID: "email-campaign:1", Type: NotificationTypeCampaign})
	require.NoError(t, err)
	other, err := s.EnqueueNotification(ctx, Notification{To: "b@example.com", Type: NotificationTypeApproval})
	require.NoError(t, err)

	forCampaign, err := s.ListCampaignNotifications(ctx, "email-campaign:1")
	require.NoError(t, err)
	require.Len(t, forCampaign, 1)
	assert.Equal(t, "a@example.com", forCampaign[0].To)

	require.NoError(t, s.DeleteNotification(ctx, other.ID))
	_, err = s.GetNotification(ctx, other.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.DeleteNotification(ctx, other.ID), ErrNotFound)
}

func TestStore_TemplatesCampaignsLists(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	tmpl, err := s.CreateEmailTemplate(ctx, EmailTemplate{Name: "Welcome", Subject: "Hi", Body: "Dear {{firstName}}"})
	require.NoError(t, err)
	assert.Equal(t, "email-template:1759309200000", tmpl.ID)

	tmpl.Subject = "Hello"
	_, err = s.UpdateEmailTemplate(ctx, tmpl)
	require.NoError(t, err)
	got, err := s.GetEmailTemplate(ctx, "1759309200000")
	require.NoError(t, err)
	assert.Equal(t, "Hello", got.Subject)

	campaign, err := s.CreateEmailCampaign(ctx, EmailCampaign{CampaignName: "Launch", Status: EmailCampaignStatusDraft})
	require.NoError(t, err)
	campaigns, err := s.ListEmailCampaigns(ctx)
	require.NoError(t, err)
	assert.Len(t, campaigns, 1)
	require.NoError(t, s.DeleteEmailCampaign(ctx, campaign.ID))

	ml, err := s.CreateMailingList(ctx, MailingList{Name: "Press", Contacts: []string{"p@example.com"}})
	require.NoError(t, err)
	lists, err := s.ListMailingLists(ctx)
	require.NoError(t, err)
	require.Len(t, lists, 1)
	assert.Equal(t, ml.ID, lists[0].ID)
	require.NoError(t, s.DeleteMailingList(ctx, ml.ID))
	assert.ErrorIs(t, s.DeleteEmailTemplate(ctx, "email-template:404"), ErrNotFound)
}
