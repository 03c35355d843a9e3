package processor

import (
	"boatshow-server/internal/observability"
	"boatshow-server/internal/store"
	"context"
	"encoding/csv"
	"io"
)

// ParticipantColumns is the header row of the participants export
var ParticipantColumns = []string{
	"First Name", "Last Name", "Email", "Phone", "Company", "Country",
	"Category", "LinkedIn", "Accompanying Guest", "Submitted Date",
}

const exportDateLayout = "Jan 2, 2006"

// ExportParticipants writes approved submissions as CSV to w, optionally
// restricted to one category. It returns the number of rows written.
func (p *SubmissionProcessor) ExportParticipants(ctx context.Context, w io.Writer, category string) (int, error) {
	participants, err := p.ListSubmissions(ctx, ListSubmissionsFilter{
		Category: category,
		Status:   store.SubmissionStatusApproved,
	})
	if err != nil {
		return 0, err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(ParticipantColumns); err != nil {
		return 0, err
	}
	for _, s := range participants {
		if err := cw.Write(participantRow(s)); err != nil {
			return 0, err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		p.logger.Error(ctx, "failed to write participants export", err)
		return 0, err
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "category", Value: category},
		observability.Field{Key: "rows", Value: len(participants)},
	)
	p.logger.Info(ctx, "participants exported")
	return len(participants), nil
}

func participantRow(s store.Submission) []string {
	company := s.Company
	linkedIn := s.LinkedIn
	guest := "N/A"
	if s.Category == store.SubmissionCategoryVIP {
		company = vipCompany
		linkedIn = ""
		guest = "No"
		if s.HasAccompanyingGuest != nil && *s.HasAccompanyingGuest {
			guest = "Yes"
		}
	}

	return []string{
		s.FirstName,
		s.LastName,
		s.Email,
		s.Phone,
		company,
		s.Country,
		s.Category,
		linkedIn,
		guest,
		s.SubmittedAt.Format(exportDateLayout),
	}
}
