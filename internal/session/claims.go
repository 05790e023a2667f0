package session

import (
	"strconv"

	"github.com/PythonShinobi/Otaku-Store/internal/auth"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the user snapshot carried inside the session cookie.
// It never holds the password hash.
type Claims struct {
	UserID   int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

// NewClaims copies the public fields of u. Registered claims (jti, iat,
// exp) are stamped by the Issuer.
func NewClaims(u auth.User) Claims {
	return Claims{
		UserID:   u.ID,
		Username: u.Username,
		Email:    u.Email,
		IsAdmin:  u.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: strconv.FormatInt(u.ID, 10),
		},
	}
}
