package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"itemshare-backend/internal/domain"
	"itemshare-backend/internal/repository"
)

type itemRepository struct {
	q DBTX
}

func NewItemRepository(q DBTX) repository.ItemRepository {
	return &itemRepository{q: q}
}

func (r *itemRepository) Create(ctx context.Context, it *domain.Item) error {
	query := `INSERT INTO items (owner_id, name, description, available, request_id)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.q.QueryRowContext(ctx, query, it.OwnerID, it.Name, it.Description, it.Available, it.RequestID).Scan(&it.ID)
}

func (r *itemRepository) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	it := &domain.Item{}
	query := `SELECT id, owner_id, name, description, available, request_id FROM items WHERE id = $1`
	err := r.q.QueryRowContext(ctx, query, id).Scan(&it.ID, &it.OwnerID, &it.Name, &it.Description, &it.Available, &it.RequestID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: item %d", domain.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return it, nil
}

func (r *itemRepository) Update(ctx context.Context, it *domain.Item) error {
	query := `UPDATE items SET name = $1, description = $2, available = $3 WHERE id = $4`
	_, err := r.q.ExecContext(ctx, query, it.Name, it.Description, it.Available, it.ID)
	return err
}

func (r *itemRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Item, error) {
	query := `SELECT id, owner_id, name, description, available, request_id
	          FROM items WHERE owner_id = $1 ORDER BY id`
	rows, err := r.q.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanItems(rows)
}

func (r *itemRepository) Search(ctx context.Context, text string) ([]domain.Item, error) {
	query := `SELECT id, owner_id, name, description, available, request_id
	          FROM items
	          WHERE available = TRUE
	            AND (name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')
	          ORDER BY id`
	rows, err := r.q.QueryContext(ctx, query, text)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanItems(rows)
}

func (r *itemRepository) CountByOwner(ctx context.Context, ownerID int64) (int64, error) {
	var count int64
	query := `SELECT count(*) FROM items WHERE owner_id = $1`
	if err := r.q.QueryRowContext(ctx, query, ownerID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func scanItems(rows *sql.Rows) ([]domain.Item, error) {
	var items []domain.Item
	for rows.Next() {
		var it domain.Item
		if err := rows.Scan(&it.ID, &it.OwnerID, &it.Name, &it.Description, &it.Available, &it.RequestID); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
