package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itemshare-backend/internal/domain"
)

func itemRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "owner_id", "name", "description", "available", "request_id"})
}

func TestItemCreate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewItemRepository(db)

	it := &domain.Item{OwnerID: 2, Name: "drill", Description: "cordless", Available: true}
	mock.ExpectQuery(`INSERT INTO items`).
		WithArgs(int64(2), "drill", "cordless", true, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))

	require.NoError(t, repo.Create(context.Background(), it))
	assert.Equal(t, int64(3), it.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestItemGetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewItemRepository(db)

		mock.ExpectQuery(`SELECT id, owner_id, name, description, available, request_id FROM items WHERE id = \$1`).
			WithArgs(int64(3)).
			WillReturnRows(itemRows().AddRow(int64(3), int64(2), "drill", "cordless", true, nil))

		it, err := repo.GetByID(context.Background(), 3)
		require.NoError(t, err)
		assert.Equal(t, "drill", it.Name)
		assert.Nil(t, it.RequestID)
	})

	t.Run("missing row maps to not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewItemRepository(db)

		mock.ExpectQuery(`SELECT id, owner_id, name, description, available, request_id FROM items WHERE id = \$1`).
			WithArgs(int64(404)).
			WillReturnRows(itemRows())

		_, err := repo.GetByID(context.Background(), 404)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestItemSearch(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewItemRepository(db)

	mock.ExpectQuery(`WHERE available = TRUE`).
		WithArgs("drill").
		WillReturnRows(itemRows().
			AddRow(int64(3), int64(2), "Drill", "cordless", true, nil).
			AddRow(int64(5), int64(4), "hammer drill", "corded", true, nil))

	items, err := repo.Search(context.Background(), "drill")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(3), items[0].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestItemCountByOwner(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewItemRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM items WHERE owner_id = \$1`).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(2)))

	count, err := repo.CountByOwner(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
