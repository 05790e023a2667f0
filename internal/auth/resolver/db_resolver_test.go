package resolver

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/PythonShinobi/Otaku-Store/internal/auth"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rolesQuery = `(?s)SELECT\s+EXISTS\s*\(\s*SELECT\s+1\s+FROM\s+user_roles`

func newResolver(t *testing.T, admins ...string) (*DBResolver, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewDBResolver(db, admins, time.Second), mock
}

func TestElevate_StoredFlagWins(t *testing.T) {
	r, mock := newResolver(t)

	u, err := r.Elevate(context.Background(), auth.User{ID: 1, Username: "alice", IsAdmin: true})
	require.NoError(t, err)
	assert.True(t, u.IsAdmin)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestElevate_ConfiguredAdmin(t *testing.T) {
	r, mock := newResolver(t, " alice ", "")

	u, err := r.Elevate(context.Background(), auth.User{ID: 1, Username: "alice"})
	require.NoError(t, err)
	assert.True(t, u.IsAdmin)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestElevate_RoleRow(t *testing.T) {
	r, mock := newResolver(t)
	mock.ExpectQuery(rolesQuery).
		WithArgs(int64(2), RoleAdmin).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	u, err := r.Elevate(context.Background(), auth.User{ID: 2, Username: "bob"})
	require.NoError(t, err)
	assert.True(t, u.IsAdmin)
	assert.Equal(t, "bob", u.Username)
}

func TestElevate_RegularUser(t *testing.T) {
	r, mock := newResolver(t)
	mock.ExpectQuery(rolesQuery).
		WithArgs(int64(3), RoleAdmin).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	u, err := r.Elevate(context.Background(), auth.User{ID: 3, Username: "carol"})
	require.NoError(t, err)
	assert.False(t, u.IsAdmin)
}

func TestElevate_LookupError(t *testing.T) {
	r, mock := newResolver(t)
	mock.ExpectQuery(rolesQuery).
		WithArgs(int64(3), RoleAdmin).
		WillReturnError(errors.New("db down"))

	_, err := r.Elevate(context.Background(), auth.User{ID: 3, Username: "carol"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}
