package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"itemshare-backend/internal/repository"

	_ "github.com/lib/pq"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx, so the same repository
// code serves plain reads and transactional write paths.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db *sql.DB
	q  DBTX
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db, q: db}
}

func (s *Store) Users() repository.UserRepository {
	return NewUserRepository(s.q)
}

func (s *Store) Items() repository.ItemRepository {
	return NewItemRepository(s.q)
}

func (s *Store) Reservations() repository.ReservationRepository {
	return NewReservationRepository(s.q)
}

func (s *Store) Comments() repository.CommentRepository {
	return NewCommentRepository(s.q)
}

func (s *Store) Requests() repository.ItemRequestRepository {
	return NewItemRequestRepository(s.q)
}

// Serializable runs fn inside one transaction at serializable
// isolation. The engine's read-validate-write sequences rely on this
// rather than on any locking of their own; Postgres aborts one of two
// conflicting transactions and the error propagates to the caller.
func (s *Store) Serializable(ctx context.Context, fn func(repository.Store) error) error {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("begin serializable tx: %w", err)
	}
	txStore := &Store{db: s.db, q: tx}
	if err := fn(txStore); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit serializable tx: %w", err)
	}
	return nil
}
