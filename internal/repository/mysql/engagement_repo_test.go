package mysql

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeIdempotent(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := &LikeRepository{DB: gdb}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `likes`(.+)ON DUPLICATE KEY UPDATE").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	changed, err := repo.Like(10, 3)
	require.NoError(t, err)
	assert.True(t, changed)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `likes`(.+)ON DUPLICATE KEY UPDATE").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	changed, err = repo.Like(10, 3)
	require.NoError(t, err)
	assert.False(t, changed, "repeat like flips nothing")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnlikeWithoutLike(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := &LikeRepository{DB: gdb}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `likes`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	changed, err := repo.Unlike(10, 3)
	require.NoError(t, err)
	assert.False(t, changed)
}
