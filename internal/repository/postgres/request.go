package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"itemshare-backend/internal/domain"
	"itemshare-backend/internal/repository"
)

type itemRequestRepository struct {
	q DBTX
}

func NewItemRequestRepository(q DBTX) repository.ItemRequestRepository {
	return &itemRequestRepository{q: q}
}

func (r *itemRequestRepository) Create(ctx context.Context, req *domain.ItemRequest) error {
	query := `INSERT INTO item_requests (requester_id, description, created)
	          VALUES ($1, $2, $3) RETURNING id`
	return r.q.QueryRowContext(ctx, query, req.RequesterID, req.Description, req.Created).Scan(&req.ID)
}

func (r *itemRequestRepository) GetByID(ctx context.Context, id int64) (*domain.ItemRequest, error) {
	req := &domain.ItemRequest{}
	query := `SELECT id, requester_id, description, created FROM item_requests WHERE id = $1`
	err := r.q.QueryRowContext(ctx, query, id).Scan(&req.ID, &req.RequesterID, &req.Description, &req.Created)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: request %d", domain.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return req, nil
}

func (r *itemRequestRepository) ListByRequester(ctx context.Context, requesterID int64) ([]domain.ItemRequest, error) {
	query := `SELECT id, requester_id, description, created
	          FROM item_requests WHERE requester_id = $1 ORDER BY created DESC`
	rows, err := r.q.QueryContext(ctx, query, requesterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRequests(rows)
}

func (r *itemRequestRepository) ListByOthers(ctx context.Context, requesterID int64) ([]domain.ItemRequest, error) {
	query := `SELECT id, requester_id, description, created
	          FROM item_requests WHERE requester_id <> $1 ORDER BY created DESC`
	rows, err := r.q.QueryContext(ctx, query, requesterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRequests(rows)
}

func (r *itemRequestRepository) CreateResponse(ctx context.Context, resp *domain.ItemResponse) error {
	query := `INSERT INTO item_responses (request_id, item_id, text) VALUES ($1, $2, $3) RETURNING id`
	return r.q.QueryRowContext(ctx, query, resp.RequestID, resp.ItemID, resp.Text).Scan(&resp.ID)
}

func (r *itemRequestRepository) ListResponses(ctx context.Context, requestID int64) ([]domain.ItemResponse, error) {
	query := `SELECT resp.id, resp.request_id, resp.item_id, i.name, i.owner_id, resp.text
	          FROM item_responses resp
	          JOIN items i ON i.id = resp.item_id
	          WHERE resp.request_id = $1 ORDER BY resp.id`
	rows, err := r.q.QueryContext(ctx, query, requestID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var responses []domain.ItemResponse
	for rows.Next() {
		var resp domain.ItemResponse
		if err := rows.Scan(&resp.ID, &resp.RequestID, &resp.ItemID, &resp.ItemName, &resp.OwnerID, &resp.Text); err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, rows.Err()
}

func scanRequests(rows *sql.Rows) ([]domain.ItemRequest, error) {
	var requests []domain.ItemRequest
	for rows.Next() {
		var req domain.ItemRequest
		if err := rows.Scan(&req.ID, &req.RequesterID, &req.Description, &req.Created); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}
