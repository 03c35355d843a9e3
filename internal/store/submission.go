package store

import (
	"context"
	"fmt"
	"sort"
)

// SubmissionKey normalizes a bare or prefixed submission id to its store key
func SubmissionKey(id string) string {
	return keyFor(PrefixSubmission, id)
}

// CreateSubmission stores a new submission under a fresh time-based id
func (s *Store) CreateSubmission(ctx context.Context, sub Submission) (Submission, error) {
	id, version, err := s.insertWithTimeID(ctx, PrefixSubmission, func(id string) any {
		sub.ID = id
		return sub
	})
	if err != nil {
		return Submission{}, fmt.Errorf("failed to create submission: %w", err)
	}
	sub.ID = id
	sub.Version = version
	return sub, nil
}

// GetSubmission retrieves a submission by bare or prefixed id
func (s *Store) GetSubmission(ctx context.Context, id string) (Submission, error) {
	var sub Submission
	version, err := s.get(ctx, SubmissionKey(id), &sub)
	if err != nil {
		return Submission{}, err
	}
	sub.Version = version
	return sub, nil
}

// ListSubmissions returns all submissions, newest first
func (s *Store) ListSubmissions(ctx context.Context) ([]Submission, error) {
	subs, err := list(ctx, s.kv, PrefixSubmission, func(sub *Submission, v int64) { sub.Version = v })
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	sort.SliceStable(subs, func(i, j int) bool { return subs[i].SubmittedAt.After(subs[j].SubmittedAt) })
	return subs, nil
}

// UpdateSubmission writes sub if it has not changed since it was read
func (s *Store) UpdateSubmission(ctx context.Context, sub Submission) (Submission, error) {
	version, err := s.put(ctx, SubmissionKey(sub.ID), sub, sub.Version)
	if err != nil {
		return Submission{}, err
	}
	sub.Version = version
	return sub, nil
}

// DeleteSubmission removes a submission
func (s *Store) DeleteSubmission(ctx context.Context, id string) error {
	return s.kv.Delete(ctx, SubmissionKey(id))
}
