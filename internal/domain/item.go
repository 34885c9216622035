package domain

type Item struct {
	ID          int64  `json:"id"`
	OwnerID     int64  `json:"owner_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	// RequestID links the item to the request it answers, when any.
	RequestID *int64 `json:"request_id,omitempty"`
}

// ItemPatch is a partial update. Nil or empty fields keep the stored
// values; Available is a pointer so "leave it alone" and "set false"
// stay distinguishable.
type ItemPatch struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   *bool  `json:"available"`
}

// ItemSnapshot is the read-only view the reservation engine needs from
// the catalog: the availability flag and the owning account.
type ItemSnapshot struct {
	ID        int64
	OwnerID   int64
	Available bool
}

func (i *Item) Snapshot() ItemSnapshot {
	return ItemSnapshot{ID: i.ID, OwnerID: i.OwnerID, Available: i.Available}
}

// ItemBookings is an item annotated with its reservation windows and
// comments, as rendered on item detail views.
type ItemBookings struct {
	Item
	LastBooking *DateTime `json:"last_booking,omitempty"`
	NextBooking *DateTime `json:"next_booking,omitempty"`
	Comments    []Comment `json:"comments"`
}

type Comment struct {
	ID         int64    `json:"id"`
	ItemID     int64    `json:"item_id"`
	AuthorID   int64    `json:"author_id"`
	AuthorName string   `json:"author_name"`
	Text       string   `json:"text"`
	Created    DateTime `json:"created"`
}
