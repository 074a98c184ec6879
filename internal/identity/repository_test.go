package identity

import (
	"context"
	"errors"
	"testing"

	"gocircle/internal/common"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newRepoWithMock(t *testing.T) (Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger:               logger.Default.LogMode(logger.Silent),
		TranslateError:       true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)
	return NewRepository(gdb), mock
}

func TestSoftDeleteCommitsBothStatements(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `identities` SET `status`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE `identities` SET `deleted_at`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.SoftDelete(context.Background(), 7))
	require.NoError(t, mock.ExpectationsWereMet())
}

// A failed status flip must roll back without touching deleted_at, so no row
// is ever left marked deleted while still visible.
func TestSoftDeleteRollsBackOnStatusFailure(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `identities` SET `status`").
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	err := repo.SoftDelete(context.Background(), 7)
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSoftDeleteRollsBackOnDeleteFailure(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `identities` SET `status`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE `identities` SET `deleted_at`").
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	err := repo.SoftDelete(context.Background(), 7)
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSoftDeleteUnknownIdentity(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `identities` SET `status`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.SoftDelete(context.Background(), 404)
	require.ErrorIs(t, err, common.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
