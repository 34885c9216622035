package service

import (
	"context"
	"fmt"
	"time"

	"itemshare-backend/internal/domain"
	"itemshare-backend/internal/logger"
	"itemshare-backend/internal/repository"
)

type bookingService struct {
	store repository.Store
	now   func() time.Time
}

func NewBookingService(store repository.Store) BookingService {
	return &bookingService{
		store: store,
		now:   time.Now,
	}
}

// Create validates and persists a new reservation in WAITING state. The
// whole read-validate-write sequence runs in one serializable
// transaction; concurrent creates against the same item are serialized
// by the database, not by the engine.
func (s *bookingService) Create(ctx context.Context, actorID, itemID int64, start, end domain.DateTime) (*domain.Reservation, error) {
	if !start.Before(end.Time) {
		return nil, fmt.Errorf("%w: reservation end must be after start", domain.ErrInvalidRequest)
	}

	res := &domain.Reservation{
		ItemID:   itemID,
		BookerID: actorID,
		Start:    start,
		End:      end,
		Status:   domain.ReservationStatusWaiting,
	}

	err := s.store.Serializable(ctx, func(tx repository.Store) error {
		booker, err := tx.Users().GetByID(ctx, actorID)
		if err != nil {
			return err
		}
		item, err := tx.Items().GetByID(ctx, itemID)
		if err != nil {
			return err
		}
		if !item.Available {
			return fmt.Errorf("%w: item %d is not available for booking", domain.ErrInvalidRequest, itemID)
		}
		if item.OwnerID == actorID {
			return fmt.Errorf("%w: owner cannot book own item", domain.ErrInvalidRequest)
		}
		if err := tx.Reservations().Create(ctx, res); err != nil {
			return err
		}
		res.Booker = booker
		res.Item = item
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("reservation created", "reservation_id", res.ID, "item_id", itemID, "booker_id", actorID)
	return res, nil
}

// Decide sets the reservation to APPROVED or REJECTED. Only the owner
// of the reserved item may decide. Re-deciding an already decided
// reservation is not guarded: running it again flips the status.
func (s *bookingService) Decide(ctx context.Context, actorID, reservationID int64, approve bool) (*domain.Reservation, error) {
	var res *domain.Reservation
	err := s.store.Serializable(ctx, func(tx repository.Store) error {
		exists, err := tx.Users().Exists(ctx, actorID)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("%w: user %d", domain.ErrNotFound, actorID)
		}
		res, err = tx.Reservations().GetByID(ctx, reservationID)
		if err != nil {
			return err
		}
		if res.Item.OwnerID != actorID {
			return fmt.Errorf("%w: only the item owner may decide a reservation", domain.ErrForbidden)
		}
		if approve {
			res.Status = domain.ReservationStatusApproved
		} else {
			res.Status = domain.ReservationStatusRejected
		}
		return tx.Reservations().UpdateStatus(ctx, res.ID, res.Status)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("reservation decided", "reservation_id", reservationID, "status", res.Status)
	return res, nil
}

// GetByID returns a single reservation. It is visible to the booker and
// to the item owner; any other account gets Forbidden rather than
// NotFound, so existence is not hidden.
func (s *bookingService) GetByID(ctx context.Context, actorID, reservationID int64) (*domain.Reservation, error) {
	exists, err := s.store.Users().Exists(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: user %d", domain.ErrNotFound, actorID)
	}
	res, err := s.store.Reservations().GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if res.BookerID != actorID && res.Item.OwnerID != actorID {
		return nil, fmt.Errorf("%w: only the booker or the item owner may view a reservation", domain.ErrForbidden)
	}
	return res, nil
}

// List classifies reservations for the actor against "now" at query
// time. Results come back ordered by start descending.
func (s *bookingService) List(ctx context.Context, role domain.Role, actorID int64, state string) ([]domain.Reservation, error) {
	parsed, err := domain.ParseState(state)
	if err != nil {
		return nil, err
	}
	exists, err := s.store.Users().Exists(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: user %d", domain.ErrNotFound, actorID)
	}

	if role == domain.RoleOwner {
		count, err := s.store.Items().CountByOwner(ctx, actorID)
		if err != nil {
			return nil, err
		}
		if count == 0 {
			return []domain.Reservation{}, nil
		}
	}

	f := filterForState(role, actorID, parsed, s.now())
	reservations, err := s.store.Reservations().List(ctx, f)
	if err != nil {
		return nil, err
	}
	if reservations == nil {
		reservations = []domain.Reservation{}
	}
	return reservations, nil
}

// filterForState maps the symbolic state to exactly one repository
// query shape. The mapping is total over the parsed State values;
// unknown wire input never reaches this point.
func filterForState(role domain.Role, actorID int64, state domain.State, now time.Time) repository.ReservationFilter {
	var f repository.ReservationFilter
	if role == domain.RoleOwner {
		f.ItemOwnerID = actorID
	} else {
		f.BookerID = actorID
	}

	switch state {
	case domain.StateCurrent:
		f.Status = domain.ReservationStatusApproved
		f.StartBefore = &now
		f.EndAfter = &now
	case domain.StateWaiting:
		f.Status = domain.ReservationStatusWaiting
	case domain.StateRejected:
		f.Status = domain.ReservationStatusRejected
	case domain.StatePast:
		f.EndBefore = &now
	case domain.StateFuture:
		f.StartAfter = &now
	case domain.StateAll:
		// no extra predicates
	}
	return f
}
