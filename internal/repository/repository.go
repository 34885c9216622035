package repository

import (
	"context"
	"time"

	"itemshare-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id int64) error
	// Exists is the account-existence check every engine operation
	// starts with.
	Exists(ctx context.Context, id int64) (bool, error)
}

type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) error
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
	Update(ctx context.Context, item *domain.Item) error
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Item, error)
	Search(ctx context.Context, text string) ([]domain.Item, error)
	CountByOwner(ctx context.Context, ownerID int64) (int64, error)
}

// ReservationFilter is one concrete repository query shape. The
// temporal classifier builds exactly one filter per (role, state) pair;
// zero values leave the corresponding predicate out of the query.
type ReservationFilter struct {
	BookerID    int64
	ItemOwnerID int64
	Status      domain.ReservationStatus
	StartBefore *time.Time
	StartAfter  *time.Time
	EndBefore   *time.Time
	EndAfter    *time.Time
}

type ReservationRepository interface {
	// Create persists the reservation inside one serializable
	// transaction together with the caller's validation reads.
	Create(ctx context.Context, res *domain.Reservation) error
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error
	// List returns reservations matching the filter ordered by start
	// descending, ties broken by insertion order.
	List(ctx context.Context, f ReservationFilter) ([]domain.Reservation, error)
	ListByItem(ctx context.Context, itemID int64) ([]domain.Reservation, error)
	ListByItemOwner(ctx context.Context, ownerID int64) ([]domain.Reservation, error)
	ListByBookerAndItem(ctx context.Context, bookerID, itemID int64) ([]domain.Reservation, error)
	// CompleteEnded moves APPROVED reservations whose end has passed to
	// COMPLETED and reports how many rows changed. Housekeeping only.
	CompleteEnded(ctx context.Context, now time.Time) (int64, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	ListByItem(ctx context.Context, itemID int64) ([]domain.Comment, error)
	ListByItemOwner(ctx context.Context, ownerID int64) ([]domain.Comment, error)
}

type ItemRequestRepository interface {
	Create(ctx context.Context, req *domain.ItemRequest) error
	GetByID(ctx context.Context, id int64) (*domain.ItemRequest, error)
	ListByRequester(ctx context.Context, requesterID int64) ([]domain.ItemRequest, error)
	ListByOthers(ctx context.Context, requesterID int64) ([]domain.ItemRequest, error)
	CreateResponse(ctx context.Context, resp *domain.ItemResponse) error
	ListResponses(ctx context.Context, requestID int64) ([]domain.ItemResponse, error)
}

// Store aggregates the repositories behind one transactional boundary.
// Serializable runs fn inside a single serializable transaction; every
// repository obtained from the store passed to fn reads and writes on
// that transaction.
type Store interface {
	Users() UserRepository
	Items() ItemRepository
	Reservations() ReservationRepository
	Comments() CommentRepository
	Requests() ItemRequestRepository
	Serializable(ctx context.Context, fn func(Store) error) error
}
