package session

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNoSession      = errors.New("session: no session cookie")
	ErrInvalidSession = errors.New("session: invalid session")
	ErrSerialization  = errors.New("session: failed to serialize claims")
	ErrSecretRequired = errors.New("session: secret is required")
	ErrPositiveTTL    = errors.New("session: ttl must be positive")
)

// Issuer signs claims into an HS256 token and hands it to the client as
// an httpOnly cookie.
type Issuer struct {
	key    any
	ttl    time.Duration
	cookie CookieOptions
	now    func() time.Time
}

func NewIssuer(secret string, ttl time.Duration, cookie CookieOptions) (*Issuer, error) {
	if secret == "" {
		return nil, ErrSecretRequired
	}
	if ttl <= 0 {
		return nil, ErrPositiveTTL
	}

	return &Issuer{
		key:    []byte(secret),
		ttl:    ttl,
		cookie: cookie.withDefaults(),
		now:    time.Now,
	}, nil
}

// CookieName is the name of the cookie the issuer reads and writes.
func (i *Issuer) CookieName() string {
	return i.cookie.Name
}

// Issue stamps a fresh id and lifetime onto claims and sets the cookie.
// A signing failure is returned and no cookie is written.
func (i *Issuer) Issue(w http.ResponseWriter, claims Claims) error {
	id, err := GenerateID()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSerialization, err)
	}

	now := i.now()
	expiresAt := now.Add(i.ttl)

	claims.ID = id
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(expiresAt)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSerialization, err)
	}

	SetCookie(w, token, expiresAt, i.ttl, i.cookie)
	return nil
}

// Parse verifies a token's signature and expiry.
func (i *Issuer) Parse(token string) (*Claims, error) {
	claims := &Claims{}

	parsed, err := jwt.ParseWithClaims(
		token,
		claims,
		func(*jwt.Token) (any, error) { return i.key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSession, err)
	}
	if !parsed.Valid || claims.ID == "" {
		return nil, ErrInvalidSession
	}

	return claims, nil
}

// Read extracts and verifies the session carried by r.
func (i *Issuer) Read(r *http.Request) (*Claims, error) {
	cookie, err := r.Cookie(i.cookie.Name)
	if err != nil || cookie.Value == "" {
		return nil, ErrNoSession
	}
	return i.Parse(cookie.Value)
}

// Clear expires the session cookie on the client.
func (i *Issuer) Clear(w http.ResponseWriter) {
	ClearCookie(w, i.cookie)
}
