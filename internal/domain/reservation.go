package domain

import (
	"fmt"
	"strings"
)

type ReservationStatus string

const (
	ReservationStatusWaiting   ReservationStatus = "WAITING"
	ReservationStatusApproved  ReservationStatus = "APPROVED"
	ReservationStatusRejected  ReservationStatus = "REJECTED"
	ReservationStatusCompleted ReservationStatus = "COMPLETED"
	ReservationStatusCanceled  ReservationStatus = "CANCELED"
)

type Reservation struct {
	ID       int64             `json:"id"`
	ItemID   int64             `json:"item_id"`
	BookerID int64             `json:"booker_id"`
	Start    DateTime          `json:"start"`
	End      DateTime          `json:"end"`
	Status   ReservationStatus `json:"status"`
	// Booker and Item are populated on single-record reads and after
	// creation, for presentation.
	Booker *User `json:"booker,omitempty"`
	Item   *Item `json:"item,omitempty"`
}

// State is the symbolic classification a caller may request when
// listing reservations.
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
)

// ParseState maps the wire value to a State. Matching is
// case-insensitive; anything outside the six known values is rejected
// explicitly rather than defaulted.
func ParseState(s string) (State, error) {
	switch State(strings.ToUpper(s)) {
	case StateAll:
		return StateAll, nil
	case StateCurrent:
		return StateCurrent, nil
	case StateWaiting:
		return StateWaiting, nil
	case StateRejected:
		return StateRejected, nil
	case StatePast:
		return StatePast, nil
	case StateFuture:
		return StateFuture, nil
	default:
		return "", fmt.Errorf("%w: unknown state %q", ErrInvalidRequest, s)
	}
}

// Role scopes a reservation listing: the account as the author of the
// reservations, or as the owner of the items they are placed on.
type Role string

const (
	RoleBooker Role = "booker"
	RoleOwner  Role = "owner"
)
