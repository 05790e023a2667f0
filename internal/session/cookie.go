package session

import (
	"net/http"
	"time"
)

const DefaultCookieName = "token"

// CookieOptions controls the attributes of the session cookie. Zero
// values fall back to an HttpOnly, Lax cookie named "token" on "/".
type CookieOptions struct {
	Name     string
	Path     string
	Domain   string
	Secure   bool
	SameSite http.SameSite
}

func (o CookieOptions) withDefaults() CookieOptions {
	if o.Name == "" {
		o.Name = DefaultCookieName
	}
	if o.Path == "" {
		o.Path = "/"
	}
	if o.SameSite == 0 {
		o.SameSite = http.SameSiteLaxMode
	}
	return o
}

func (o CookieOptions) cookie(value string) *http.Cookie {
	return &http.Cookie{
		Name:     o.Name,
		Value:    value,
		Path:     o.Path,
		Domain:   o.Domain,
		HttpOnly: true,
		Secure:   o.Secure,
		SameSite: o.SameSite,
	}
}

// SetCookie writes the signed token with both Expires and Max-Age.
func SetCookie(w http.ResponseWriter, token string, expiresAt time.Time, lifetime time.Duration, opts CookieOptions) {
	c := opts.withDefaults().cookie(token)
	c.Expires = expiresAt
	c.MaxAge = int(lifetime.Seconds())
	http.SetCookie(w, c)
}

// ClearCookie expires the session cookie on the client.
func ClearCookie(w http.ResponseWriter, opts CookieOptions) {
	c := opts.withDefaults().cookie("")
	c.Expires = time.Unix(0, 0)
	c.MaxAge = -1
	http.SetCookie(w, c)
}
