package processor

import (
	"boatshow-server/internal/store"
	"context"
)

// Stats counts submissions by status and by category
type Stats struct {
	Total      int            `json:"total"`
	Pending    int            `json:"pending"`
	Approved   int            `json:"approved"`
	Rejected   int            `json:"rejected"`
	ByCategory map[string]int `json:"byCategory"`
}

var statsCategories = []string{
	store.SubmissionCategoryMedia,
	store.SubmissionCategoryTrade,
	store.SubmissionCategoryCaptain,
	store.SubmissionCategoryVIP,
	store.SubmissionCategoryExhibitor,
}

func (p *SubmissionProcessor) GetStats(ctx context.Context) (Stats, error) {
	subs, err := p.store.ListSubmissions(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list submissions", err)
		return Stats{}, err
	}

	stats := Stats{Total: len(subs), ByCategory: make(map[string]int, len(statsCategories))}
	for _, c := range statsCategories {
		stats.ByCategory[c] = 0
	}
	for _, s := range subs {
		switch s.Status {
		case store.SubmissionStatusPending:
			stats.Pending++
		case store.SubmissionStatusApproved:
			stats.Approved++
		case store.SubmissionStatusRejected:
			stats.Rejected++
		}
		if _, ok := stats.ByCategory[s.Category]; ok {
			stats.ByCategory[s.Category]++
		}
	}
	return stats, nil
}
