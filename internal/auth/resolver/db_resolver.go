package resolver

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PythonShinobi/Otaku-Store/internal/auth"
	"github.com/PythonShinobi/Otaku-Store/internal/db"
)

const RoleAdmin = "admin"

// DBResolver merges the stored admin flag, the configured admin
// usernames and the user_roles table.
type DBResolver struct {
	db      db.Querier
	admins  map[string]struct{}
	timeout time.Duration
}

func NewDBResolver(q db.Querier, adminUsernames []string, timeout time.Duration) *DBResolver {
	admins := make(map[string]struct{}, len(adminUsernames))
	for _, name := range adminUsernames {
		if name = strings.TrimSpace(name); name != "" {
			admins[name] = struct{}{}
		}
	}

	return &DBResolver{
		db:      q,
		admins:  admins,
		timeout: timeout,
	}
}

func (r *DBResolver) Elevate(
	ctx context.Context,
	user auth.User,
) (auth.User, error) {

	if user.IsAdmin {
		return user, nil
	}

	if _, ok := r.admins[user.Username]; ok {
		user.IsAdmin = true
		return user, nil
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	var isAdmin bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM user_roles
			WHERE user_id = $1 AND role = $2
		)
	`, user.ID, RoleAdmin).Scan(&isAdmin)

	if err != nil {
		return auth.User{}, fmt.Errorf("resolver: lookup roles for user %d: %w", user.ID, err)
	}

	user.IsAdmin = isAdmin
	return user, nil
}
