package domain

type ItemRequest struct {
	ID          int64          `json:"id"`
	RequesterID int64          `json:"requester_id"`
	Description string         `json:"description"`
	Created     DateTime       `json:"created"`
	Items       []ItemResponse `json:"items,omitempty"`
}

// ItemResponse records that an item was listed in answer to a request.
type ItemResponse struct {
	ID        int64  `json:"id"`
	RequestID int64  `json:"request_id"`
	ItemID    int64  `json:"item_id"`
	ItemName  string `json:"item_name"`
	OwnerID   int64  `json:"owner_id"`
	Text      string `json:"text"`
}
