package service

import (
	"context"
	"fmt"
	"time"

	"itemshare-backend/internal/domain"
	"itemshare-backend/internal/logger"
	"itemshare-backend/internal/repository"
)

type itemRequestService struct {
	store repository.Store
	now   func() time.Time
}

func NewItemRequestService(store repository.Store) ItemRequestService {
	return &itemRequestService{
		store: store,
		now:   time.Now,
	}
}

func (s *itemRequestService) Add(ctx context.Context, requesterID int64, description string) (*domain.ItemRequest, error) {
	req := &domain.ItemRequest{
		RequesterID: requesterID,
		Description: description,
		Created:     domain.NewDateTime(s.now()),
	}
	err := s.store.Serializable(ctx, func(tx repository.Store) error {
		exists, err := tx.Users().Exists(ctx, requesterID)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("%w: user %d", domain.ErrNotFound, requesterID)
		}
		return tx.Requests().Create(ctx, req)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("item request added", "request_id", req.ID, "requester_id", requesterID)
	return req, nil
}

func (s *itemRequestService) GetOwn(ctx context.Context, requesterID int64) ([]domain.ItemRequest, error) {
	if err := s.requireUser(ctx, requesterID); err != nil {
		return nil, err
	}
	requests, err := s.store.Requests().ListByRequester(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	return s.attachResponses(ctx, requests)
}

func (s *itemRequestService) GetAll(ctx context.Context, requesterID int64) ([]domain.ItemRequest, error) {
	if err := s.requireUser(ctx, requesterID); err != nil {
		return nil, err
	}
	requests, err := s.store.Requests().ListByOthers(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	return s.attachResponses(ctx, requests)
}

func (s *itemRequestService) GetByID(ctx context.Context, actorID, requestID int64) (*domain.ItemRequest, error) {
	if err := s.requireUser(ctx, actorID); err != nil {
		return nil, err
	}
	req, err := s.store.Requests().GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	responses, err := s.store.Requests().ListResponses(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	req.Items = responses
	return req, nil
}

func (s *itemRequestService) requireUser(ctx context.Context, id int64) error {
	exists, err := s.store.Users().Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: user %d", domain.ErrNotFound, id)
	}
	return nil
}

func (s *itemRequestService) attachResponses(ctx context.Context, requests []domain.ItemRequest) ([]domain.ItemRequest, error) {
	if requests == nil {
		return []domain.ItemRequest{}, nil
	}
	for i := range requests {
		responses, err := s.store.Requests().ListResponses(ctx, requests[i].ID)
		if err != nil {
			return nil, err
		}
		requests[i].Items = responses
	}
	return requests, nil
}
