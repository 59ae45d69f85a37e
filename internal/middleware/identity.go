package middleware

// identity.go holds helpers shared across middleware files for identifying
// the clerk behind a request.

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// currentUserID returns the clerk identifier stored in the context by
// JWTAuth, or "anon" for unauthenticated requests.  Rate-limit keys use it
// so each clerk gets an independent token bucket.
func currentUserID(c echo.Context) string {
	switch v := c.Get("user_id").(type) {
	case string:
		if v != "" {
			return v
		}
	case float64:
		// JWT numeric claims decode as float64.
		return strconv.FormatInt(int64(v), 10)
	}
	return "anon"
}
