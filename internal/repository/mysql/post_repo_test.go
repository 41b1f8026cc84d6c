package mysql

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListByVenueOrdersNewestFirst(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := &PostRepository{DB: gdb}

	newer := time.Now()
	older := newer.Add(-time.Hour)
	mock.ExpectQuery("SELECT (.+) FROM `posts`(.+)ORDER BY created_at DESC, id DESC").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "venue_id", "created_at"}).
			AddRow(9, 1, 2, newer).
			AddRow(4, 1, 2, older))
	mock.ExpectQuery("SELECT (.+) FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(1, "ana"))
	mock.ExpectQuery("SELECT (.+) FROM `venues`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(2, "The Spot"))

	list, err := repo.ListByVenue(2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, uint64(9), list[0].ID)
	assert.True(t, list[0].CreatedAt.After(list[1].CreatedAt))
	assert.NoError(t, mock.ExpectationsWereMet())
}
