package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/YairCer/iglesia-app/database"
	"github.com/YairCer/iglesia-app/models"
)

type AuthHandler struct{}

func NewAuthHandler() *AuthHandler { return &AuthHandler{} }

// GET /
func (h *AuthHandler) Index(c echo.Context) error {
	if isAuthenticated(c) {
		return c.Redirect(http.StatusFound, "/dashboard")
	}
	return render(c, http.StatusOK, "login.html", nil)
}

// GET|POST /register
func (h *AuthHandler) Register(c echo.Context) error {
	if isAuthenticated(c) {
		return c.Redirect(http.StatusFound, "/dashboard")
	}
	if c.Request().Method == http.MethodGet {
		return render(c, http.StatusOK, "register.html", nil)
	}

	username := strings.TrimSpace(c.FormValue("username"))
	email := strings.TrimSpace(strings.ToLower(c.FormValue("email")))
	password := c.FormValue("password")
	if username == "" || email == "" || password == "" {
		flash(c, "Todos los campos son obligatorios.", "danger")
		return render(c, http.StatusOK, "register.html", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		flash(c, "No se pudo completar el registro.", "danger")
		return render(c, http.StatusOK, "register.html", nil)
	}

	u := models.User{Username: username, Email: email, PasswordHash: string(hash)}
	if err := database.DB.Create(&u).Error; err != nil {
		// unique violation on username or email; never say which one
		flash(c, "Error: El usuario o correo ya existe.", "danger")
		return render(c, http.StatusOK, "register.html", nil)
	}

	flash(c, "¡Registro exitoso! Por favor inicia sesión.", "success")
	return c.Redirect(http.StatusFound, "/login")
}

// GET|POST /login
func (h *AuthHandler) Login(c echo.Context) error {
	if isAuthenticated(c) {
		return c.Redirect(http.StatusFound, "/dashboard")
	}
	if c.Request().Method == http.MethodGet {
		return render(c, http.StatusOK, "login.html", nil)
	}

	email := strings.TrimSpace(strings.ToLower(c.FormValue("email")))
	password := c.FormValue("password")

	var u models.User
	if err := database.DB.Where("email = ?", email).First(&u).Error; err != nil {
		flash(c, "Correo o contraseña incorrectos.", "danger")
		return c.Redirect(http.StatusFound, "/login")
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		flash(c, "Correo o contraseña incorrectos.", "danger")
		return c.Redirect(http.StatusFound, "/login")
	}

	sess, err := session.Get(sessionName, c)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "SESSION_FAILED")
	}
	sess.Values["user_id"] = u.ID
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "SESSION_FAILED")
	}
	return c.Redirect(http.StatusFound, "/dashboard")
}

// GET /logout
func (h *AuthHandler) Logout(c echo.Context) error {
	sess, err := session.Get(sessionName, c)
	if err == nil {
		delete(sess.Values, "user_id")
		_ = sess.Save(c.Request(), c.Response())
	}
	return c.Redirect(http.StatusFound, "/login")
}
