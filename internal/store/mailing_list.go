package store

import (
	"context"
	"fmt"
)

// MailingListKey normalizes a bare or prefixed mailing list id to its store key
func MailingListKey(id string) string {
	return keyFor(PrefixMailingList, id)
}

// CreateMailingList stores a custom mailing list under a fresh time-based id
func (s *Store) CreateMailingList(ctx context.Context, ml MailingList) (MailingList, error) {
	id, version, err := s.insertWithTimeID(ctx, PrefixMailingList, func(id string) any {
		ml.ID = id
		return ml
	})
	if err != nil {
		return MailingList{}, fmt.Errorf("failed to create mailing list: %w", err)
	}
	ml.ID = id
	ml.Version = version
	return ml, nil
}

// GetMailingList retrieves a stored mailing list
func (s *Store) GetMailingList(ctx context.Context, id string) (MailingList, error) {
	var ml MailingList
	version, err := s.get(ctx, MailingListKey(id), &ml)
	if err != nil {
		return MailingList{}, err
	}
	ml.Version = version
	return ml, nil
}

// ListMailingLists returns the stored mailing lists ordered by id
func (s *Store) ListMailingLists(ctx context.Context) ([]MailingList, error) {
	lists, err := list(ctx, s.kv, PrefixMailingList, func(ml *MailingList, v int64) { ml.Version = v })
	if err != nil {
		return nil, fmt.Errorf("failed to list mailing lists: %w", err)
	}
	return lists, nil
}

// DeleteMailingList removes a stored mailing list
func (s *Store) DeleteMailingList(ctx context.Context, id string) error {
	return s.kv.Delete(ctx, MailingListKey(id))
}
