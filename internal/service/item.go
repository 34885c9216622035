package service

import (
	"context"
	"fmt"
	"time"

	"itemshare-backend/internal/domain"
	"itemshare-backend/internal/logger"
	"itemshare-backend/internal/repository"
)

// lastBookingGrace delays how soon an ended reservation counts as the
// item's "last booking", so the value does not flap right at the
// boundary of a reservation that is still wrapping up.
const lastBookingGrace = time.Hour

// Sentinel bounds used while scanning reservation windows. They never
// leave this package; absent values surface as nil.
var (
	sentinelPast   = time.Date(2000, time.January, 1, 0, 0, 1, 0, time.UTC)
	sentinelFuture = time.Date(3000, time.January, 1, 0, 0, 1, 0, time.UTC)
)

type itemService struct {
	store repository.Store
	now   func() time.Time
}

func NewItemService(store repository.Store) ItemService {
	return &itemService{
		store: store,
		now:   time.Now,
	}
}

func (s *itemService) Add(ctx context.Context, ownerID int64, item *domain.Item) (*domain.Item, error) {
	err := s.store.Serializable(ctx, func(tx repository.Store) error {
		exists, err := tx.Users().Exists(ctx, ownerID)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("%w: user %d", domain.ErrNotFound, ownerID)
		}
		item.OwnerID = ownerID
		if item.RequestID != nil {
			if _, err := tx.Requests().GetByID(ctx, *item.RequestID); err != nil {
				return err
			}
		}
		if err := tx.Items().Create(ctx, item); err != nil {
			return err
		}
		if item.RequestID != nil {
			resp := &domain.ItemResponse{
				RequestID: *item.RequestID,
				ItemID:    item.ID,
				Text:      "here will be response comment",
			}
			if err := tx.Requests().CreateResponse(ctx, resp); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("item added", "item_id", item.ID, "owner_id", ownerID)
	return item, nil
}

// Update applies a partial update. Fields absent from the patch keep
// their stored values. Only the owner may edit.
func (s *itemService) Update(ctx context.Context, ownerID int64, patch domain.ItemPatch) (*domain.Item, error) {
	var updated *domain.Item
	err := s.store.Serializable(ctx, func(tx repository.Store) error {
		exists, err := tx.Users().Exists(ctx, ownerID)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("%w: user %d", domain.ErrNotFound, ownerID)
		}
		stored, err := tx.Items().GetByID(ctx, patch.ID)
		if err != nil {
			return err
		}
		if stored.OwnerID != ownerID {
			return fmt.Errorf("%w: only the owner may edit an item", domain.ErrForbidden)
		}
		if patch.Name != "" {
			stored.Name = patch.Name
		}
		if patch.Description != "" {
			stored.Description = patch.Description
		}
		if patch.Available != nil {
			stored.Available = *patch.Available
		}
		if err := tx.Items().Update(ctx, stored); err != nil {
			return err
		}
		updated = stored
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *itemService) GetByID(ctx context.Context, actorID, itemID int64) (*domain.ItemBookings, error) {
	exists, err := s.store.Users().Exists(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: user %d", domain.ErrNotFound, actorID)
	}
	item, err := s.store.Items().GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	reservations, err := s.store.Reservations().ListByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	comments, err := s.store.Comments().ListByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	annotated := annotateItem(*item, reservations, comments, s.now())
	return &annotated, nil
}

// GetAllByOwner renders every item of the owner with booking windows
// and comments attached. One reservation query and one comment query
// cover all items; aggregation happens per item in memory.
func (s *itemService) GetAllByOwner(ctx context.Context, ownerID int64) ([]domain.ItemBookings, error) {
	items, err := s.store.Items().ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	reservations, err := s.store.Reservations().ListByItemOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	comments, err := s.store.Comments().ListByItemOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	byItem := make(map[int64][]domain.Reservation, len(items))
	for _, res := range reservations {
		byItem[res.ItemID] = append(byItem[res.ItemID], res)
	}

	now := s.now()
	annotated := make([]domain.ItemBookings, 0, len(items))
	for _, item := range items {
		annotated = append(annotated, annotateItem(item, byItem[item.ID], comments, now))
	}
	return annotated, nil
}

func (s *itemService) Search(ctx context.Context, text string) ([]domain.Item, error) {
	if text == "" {
		return []domain.Item{}, nil
	}
	items, err := s.store.Items().Search(ctx, text)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.Item{}
	}
	return items, nil
}

// CanComment reports whether the author has booking history on the item
// that entitles them to comment: the earliest reservation by start must
// already have begun. An author with no reservation on the item at all
// gets InvalidRequest.
func (s *itemService) CanComment(ctx context.Context, authorID, itemID int64) (bool, error) {
	reservations, err := s.store.Reservations().ListByBookerAndItem(ctx, authorID, itemID)
	if err != nil {
		return false, err
	}
	if len(reservations) == 0 {
		return false, fmt.Errorf("%w: cannot comment without having booked", domain.ErrInvalidRequest)
	}
	// ListByBookerAndItem is ordered by start ascending.
	earliest := reservations[0]
	return !earliest.Start.After(s.now()), nil
}

func (s *itemService) AddComment(ctx context.Context, authorID, itemID int64, text string) (*domain.Comment, error) {
	comment := &domain.Comment{
		ItemID:   itemID,
		AuthorID: authorID,
		Text:     text,
		Created:  domain.NewDateTime(s.now()),
	}
	err := s.store.Serializable(ctx, func(tx repository.Store) error {
		reservations, err := tx.Reservations().ListByBookerAndItem(ctx, authorID, itemID)
		if err != nil {
			return err
		}
		if len(reservations) == 0 {
			return fmt.Errorf("%w: cannot comment without having booked", domain.ErrInvalidRequest)
		}
		if reservations[0].Start.After(s.now()) {
			return fmt.Errorf("%w: cannot comment before the booking has started", domain.ErrInvalidRequest)
		}
		author, err := tx.Users().GetByID(ctx, authorID)
		if err != nil {
			return err
		}
		comment.AuthorName = author.Name
		return tx.Comments().Create(ctx, comment)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("comment added", "comment_id", comment.ID, "item_id", itemID, "author_id", authorID)
	return comment, nil
}

// annotateItem derives the item's most recent ended window, its soonest
// upcoming window, and the comments that belong to it. Reservations are
// expected to already belong to the item when called for a single item;
// the batch path passes per-item slices.
func annotateItem(item domain.Item, reservations []domain.Reservation, comments []domain.Comment, now time.Time) domain.ItemBookings {
	last := sentinelPast
	next := sentinelFuture
	graceCutoff := now.Add(-lastBookingGrace)

	for _, res := range reservations {
		if res.End.Before(graceCutoff) && res.End.After(last) {
			last = res.End.Time
		}
		if res.Start.After(now) && res.Start.Before(next) {
			next = res.Start.Time
		}
	}

	annotated := domain.ItemBookings{Item: item, Comments: []domain.Comment{}}
	if !last.Equal(sentinelPast) {
		d := domain.NewDateTime(last)
		annotated.LastBooking = &d
	}
	if !next.Equal(sentinelFuture) {
		d := domain.NewDateTime(next)
		annotated.NextBooking = &d
	}
	for _, c := range comments {
		if c.ItemID == item.ID {
			annotated.Comments = append(annotated.Comments, c)
		}
	}
	return annotated
}
