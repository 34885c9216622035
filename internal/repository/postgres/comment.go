package postgres

import (
	"context"
	"database/sql"

	"itemshare-backend/internal/domain"
	"itemshare-backend/internal/repository"
)

type commentRepository struct {
	q DBTX
}

func NewCommentRepository(q DBTX) repository.CommentRepository {
	return &commentRepository{q: q}
}

func (r *commentRepository) Create(ctx context.Context, c *domain.Comment) error {
	query := `INSERT INTO comments (item_id, author_id, author_name, text, created)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.q.QueryRowContext(ctx, query, c.ItemID, c.AuthorID, c.AuthorName, c.Text, c.Created).Scan(&c.ID)
}

func (r *commentRepository) ListByItem(ctx context.Context, itemID int64) ([]domain.Comment, error) {
	query := `SELECT id, item_id, author_id, author_name, text, created
	          FROM comments WHERE item_id = $1 ORDER BY created DESC`
	rows, err := r.q.QueryContext(ctx, query, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanComments(rows)
}

func (r *commentRepository) ListByItemOwner(ctx context.Context, ownerID int64) ([]domain.Comment, error) {
	query := `SELECT c.id, c.item_id, c.author_id, c.author_name, c.text, c.created
	          FROM comments c
	          JOIN items i ON i.id = c.item_id
	          WHERE i.owner_id = $1 ORDER BY c.created DESC`
	rows, err := r.q.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanComments(rows)
}

func scanComments(rows *sql.Rows) ([]domain.Comment, error) {
	var comments []domain.Comment
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.ItemID, &c.AuthorID, &c.AuthorName, &c.Text, &c.Created); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}
