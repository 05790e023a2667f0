package resolver

import (
	"context"

	"github.com/PythonShinobi/Otaku-Store/internal/auth"
)

// Resolver decides the privileges an authenticated user carries into
// their session. It is the only place the admin flag is recomputed.
type Resolver interface {
	Elevate(ctx context.Context, user auth.User) (auth.User, error)
}
