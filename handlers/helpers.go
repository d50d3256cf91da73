package handlers

import (
	"encoding/gob"
	"strconv"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/YairCer/iglesia-app/models"
)

const sessionName = "session"

// Flash is a one-shot notice stored in the session and shown on the next
// rendered page.
type Flash struct {
	Message  string
	Category string // "success" | "danger"
}

func init() {
	// gorilla/sessions serializes flash values with gob
	gob.Register(Flash{})
}

func flash(c echo.Context, message, category string) {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return
	}
	sess.AddFlash(Flash{Message: message, Category: category})
	_ = sess.Save(c.Request(), c.Response())
}

// popFlashes drains pending flashes; gorilla removes them from the session
// on read, so the cookie has to be re-saved before the body is written.
func popFlashes(c echo.Context) []Flash {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return nil
	}
	raw := sess.Flashes()
	if len(raw) > 0 {
		_ = sess.Save(c.Request(), c.Response())
	}
	out := make([]Flash, 0, len(raw))
	for _, v := range raw {
		if f, ok := v.(Flash); ok {
			out = append(out, f)
		}
	}
	return out
}

func isAuthenticated(c echo.Context) bool {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return false
	}
	_, ok := sess.Values["user_id"].(uint)
	return ok
}

// currentUser returns the user attached by middlewares.RequireLogin, or nil
// on unauthenticated pages.
func currentUser(c echo.Context) *models.User {
	u, _ := c.Get("current_user").(*models.User)
	return u
}

// render executes a page template with the shared data every page expects
// (current user, pending flashes) merged in.
func render(c echo.Context, code int, name string, data echo.Map) error {
	if data == nil {
		data = echo.Map{}
	}
	data["User"] = currentUser(c)
	data["Flashes"] = popFlashes(c)
	return c.Render(code, name, data)
}

// mustID parses a numeric :id path parameter.
func mustID(c echo.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}
