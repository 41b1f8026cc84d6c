package mysql

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListNearbyOrdersByDistance(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := &VenueRepository{DB: gdb}

	mock.ExpectQuery(`ORDER BY POW\(latitude - \?, 2\) \+ POW\(longitude - \?, 2\)`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "latitude", "longitude"}).
			AddRow(2, "Closest", 40.001, -73.001).
			AddRow(1, "Further", 40.2, -73.2))

	list, err := repo.ListNearby(40.0, -73.0, 20)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, uint64(2), list[0].ID, "closest venue comes back first")
	assert.NoError(t, mock.ExpectationsWereMet())
}
