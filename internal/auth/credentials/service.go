package credentials

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/PythonShinobi/Otaku-Store/internal/auth"
)

// Rejection reasons are shown to the client verbatim.
const (
	ReasonMissingCredentials = "Missing credentials"
	ReasonUserNotFound       = "User not found"
	ReasonInvalidPassword    = "Invalid password"
)

var (
	ErrMissingCredentials  = errors.New("missing credentials")
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidPassword     = errors.New("invalid password")
	ErrDependency          = errors.New("credential dependency failed")
	ErrInvalidRegistration = errors.New("username, email and password are required")
)

type Kind int

const (
	Authenticated Kind = iota + 1
	Rejected
	Errored
)

func (k Kind) String() string {
	switch k {
	case Authenticated:
		return "authenticated"
	case Rejected:
		return "rejected"
	case Errored:
		return "errored"
	default:
		return "unknown"
	}
}

// Outcome is the result of one login attempt. Exactly one of User
// (Authenticated), Reason (Rejected) or Err (Errored) is meaningful;
// rejected outcomes also carry the matching sentinel in Err.
type Outcome struct {
	Kind   Kind
	User   *auth.User
	Reason string
	Err    error
}

func authenticated(u *auth.User) Outcome {
	return Outcome{Kind: Authenticated, User: u}
}

func rejected(reason string, err error) Outcome {
	return Outcome{Kind: Rejected, Reason: reason, Err: err}
}

func errored(err error) Outcome {
	return Outcome{Kind: Errored, Err: fmt.Errorf("%w: %w", ErrDependency, err)}
}

type Service struct {
	store   Store
	timeout time.Duration
}

func NewService(store Store, timeout time.Duration) *Service {
	return &Service{store: store, timeout: timeout}
}

// Authenticate runs the local username/password strategy.
func (s *Service) Authenticate(
	ctx context.Context,
	username string,
	password string,
) Outcome {

	if username == "" || password == "" {
		return rejected(ReasonMissingCredentials, ErrMissingCredentials)
	}

	// 1. Find user
	lookupCtx, cancel := s.bound(ctx)
	user, err := s.store.FindUser(lookupCtx, username)
	cancel()

	if err != nil {
		return errored(err)
	}
	if user == nil {
		return rejected(ReasonUserNotFound, ErrUserNotFound)
	}

	// 2. Verify password
	ok, err := VerifyPassword(user.PasswordHash, password)
	if err != nil {
		return errored(fmt.Errorf("verify password for user %d: %w", user.ID, err))
	}
	if !ok {
		return rejected(ReasonInvalidPassword, ErrInvalidPassword)
	}

	return authenticated(user)
}

// Register creates a new account with a bcrypt-hashed password.
func (s *Service) Register(
	ctx context.Context,
	username string,
	email string,
	password string,
) (*auth.User, error) {

	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return nil, ErrInvalidRegistration
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	createCtx, cancel := s.bound(ctx)
	defer cancel()

	return s.store.CreateUser(createCtx, auth.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	})
}

func (s *Service) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}
