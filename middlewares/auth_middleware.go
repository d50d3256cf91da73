package middlewares

import (
	"net/http"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/YairCer/iglesia-app/database"
	"github.com/YairCer/iglesia-app/models"
)

// RequireLogin guards pages behind an authenticated session. The user row is
// loaded once and attached to the request context under "current_user";
// anything less than a valid session for an existing user redirects to the
// login page.
func RequireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess, err := session.Get("session", c)
		if err != nil {
			return c.Redirect(http.StatusFound, "/login")
		}
		id, ok := sess.Values["user_id"].(uint)
		if !ok {
			return c.Redirect(http.StatusFound, "/login")
		}

		var u models.User
		if err := database.DB.First(&u, "id = ?", id).Error; err != nil {
			// stale cookie for an account that no longer exists
			delete(sess.Values, "user_id")
			_ = sess.Save(c.Request(), c.Response())
			return c.Redirect(http.StatusFound, "/login")
		}

		c.Set("current_user", &u)
		return next(c)
	}
}
