//go:build unit

package dao

import (
	"context"
	"testing"

	"gitee.com/flycash/publish-gateway/internal/errs"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountDAO_FindAccountBySid(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)
	mock.ExpectQuery(q("SELECT * FROM `accounts` WHERE account_sid = ?")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "account_sid", "auth_token"}).AddRow(3, "AC1", "cipher"))
	mock.ExpectQuery(q("SELECT * FROM `accounts` WHERE account_sid = ?")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	d := NewAccountDAO(db)
	acc, err := d.FindAccountBySid(context.Background(), "AC1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), acc.ID)
	assert.Equal(t, "cipher", acc.AuthToken)

	_, err = d.FindAccountBySid(context.Background(), "AC2")
	assert.ErrorIs(t, err, errs.ErrAccountNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountDAO_FindProjectByReference(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)
	mock.ExpectQuery(q("SELECT * FROM `projects` WHERE reference = ?")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "reference", "user_id", "name"}).AddRow(9, "PJ9abcdef12", 3, "otp"))
	mock.ExpectQuery(q("SELECT * FROM `projects` WHERE reference = ?")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	d := NewAccountDAO(db)
	p, err := d.FindProjectByReference(context.Background(), "PJ9abcdef12")
	require.NoError(t, err)
	assert.Equal(t, int64(3), p.UserID)

	_, err = d.FindProjectByReference(context.Background(), "PJ0")
	assert.ErrorIs(t, err, errs.ErrProjectNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
