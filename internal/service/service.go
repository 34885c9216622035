package service

import (
	"context"

	"itemshare-backend/internal/domain"
)

type BookingService interface {
	Create(ctx context.Context, actorID, itemID int64, start, end domain.DateTime) (*domain.Reservation, error)
	Decide(ctx context.Context, actorID, reservationID int64, approve bool) (*domain.Reservation, error)
	GetByID(ctx context.Context, actorID, reservationID int64) (*domain.Reservation, error)
	List(ctx context.Context, role domain.Role, actorID int64, state string) ([]domain.Reservation, error)
}

type ItemService interface {
	Add(ctx context.Context, ownerID int64, item *domain.Item) (*domain.Item, error)
	Update(ctx context.Context, ownerID int64, patch domain.ItemPatch) (*domain.Item, error)
	GetByID(ctx context.Context, actorID, itemID int64) (*domain.ItemBookings, error)
	GetAllByOwner(ctx context.Context, ownerID int64) ([]domain.ItemBookings, error)
	Search(ctx context.Context, text string) ([]domain.Item, error)
	CanComment(ctx context.Context, authorID, itemID int64) (bool, error)
	AddComment(ctx context.Context, authorID, itemID int64, text string) (*domain.Comment, error)
}

type UserService interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, userID int64, user *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetAll(ctx context.Context) ([]domain.User, error)
	Delete(ctx context.Context, id int64) error
}

type ItemRequestService interface {
	Add(ctx context.Context, requesterID int64, description string) (*domain.ItemRequest, error)
	GetOwn(ctx context.Context, requesterID int64) ([]domain.ItemRequest, error)
	GetAll(ctx context.Context, requesterID int64) ([]domain.ItemRequest, error)
	GetByID(ctx context.Context, actorID, requestID int64) (*domain.ItemRequest, error)
}
