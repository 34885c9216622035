package service

import (
	"context"
	"errors"
	"fmt"

	"itemshare-backend/internal/domain"
	"itemshare-backend/internal/logger"
	"itemshare-backend/internal/repository"
)

type userService struct {
	store repository.Store
}

func NewUserService(store repository.Store) UserService {
	return &userService{store: store}
}

func (s *userService) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	err := s.store.Serializable(ctx, func(tx repository.Store) error {
		existing, err := tx.Users().GetByEmail(ctx, user.Email)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return err
		}
		if existing != nil {
			return fmt.Errorf("%w: user with email %s already exists", domain.ErrDuplicate, user.Email)
		}
		return tx.Users().Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("user created", "user_id", user.ID)
	return user, nil
}

// Update applies a partial update. Absent fields keep stored values;
// a changed email must stay unique.
func (s *userService) Update(ctx context.Context, userID int64, patch *domain.User) (*domain.User, error) {
	var updated *domain.User
	err := s.store.Serializable(ctx, func(tx repository.Store) error {
		stored, err := tx.Users().GetByID(ctx, userID)
		if err != nil {
			return err
		}
		if patch.Email != "" && patch.Email != stored.Email {
			existing, err := tx.Users().GetByEmail(ctx, patch.Email)
			if err != nil && !errors.Is(err, domain.ErrNotFound) {
				return err
			}
			if existing != nil {
				return fmt.Errorf("%w: user with email %s already exists", domain.ErrDuplicate, patch.Email)
			}
			stored.Email = patch.Email
		}
		if patch.Name != "" {
			stored.Name = patch.Name
		}
		if err := tx.Users().Update(ctx, stored); err != nil {
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

func (s *userService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.store.Users().GetByID(ctx, id)
}

func (s *userService) GetAll(ctx context.Context) ([]domain.User, error) {
	users, err := s.store.Users().List(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

func (s *userService) Delete(ctx context.Context, id int64) error {
	return s.store.Serializable(ctx, func(tx repository.Store) error {
		if _, err := tx.Users().GetByID(ctx, id); err != nil {
			return err
		}
		return tx.Users().Delete(ctx, id)
	})
}
