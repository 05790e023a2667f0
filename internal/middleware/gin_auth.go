package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GinHTTP adapts a net/http middleware to Gin. If the wrapped
// middleware answers the request itself the Gin chain is aborted.
func GinHTTP(mw func(http.Handler) http.Handler) gin.HandlerFunc {
	return func(c *gin.Context) {
		called := false

		// Bridge handler to allow net/http middleware execution
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			c.Request = r
			c.Next()
		})

		mw(next).ServeHTTP(c.Writer, c.Request)

		if !called {
			c.Writer.WriteHeaderNow()
			c.Abort()
		}
	}
}

// GinRequireAuth adapts AuthMiddleware.RequireAuth to Gin.
func GinRequireAuth(auth *AuthMiddleware) gin.HandlerFunc {
	return GinHTTP(auth.RequireAuth)
}

// GinRequireAdmin adapts RequireAdmin to Gin.
func GinRequireAdmin() gin.HandlerFunc {
	return GinHTTP(RequireAdmin)
}
