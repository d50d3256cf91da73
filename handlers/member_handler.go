package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/YairCer/iglesia-app/database"
	"github.com/YairCer/iglesia-app/models"
)

const birthDateLayout = "2006-01-02"

type MemberHandler struct{}

func NewMemberHandler() *MemberHandler { return &MemberHandler{} }

type memberForm struct {
	FirstName string
	LastName  string
	Phone     string
	Email     string
	Address   string
	Status    string
	BirthDate string
}

func readMemberForm(c echo.Context) memberForm {
	return memberForm{
		FirstName: strings.TrimSpace(c.FormValue("first_name")),
		LastName:  strings.TrimSpace(c.FormValue("last_name")),
		Phone:     strings.TrimSpace(c.FormValue("phone")),
		Email:     strings.TrimSpace(c.FormValue("email")),
		Address:   strings.TrimSpace(c.FormValue("address")),
		Status:    strings.TrimSpace(c.FormValue("status")),
		BirthDate: strings.TrimSpace(c.FormValue("birth_date")),
	}
}

// birth parses the optional YYYY-MM-DD field; blank or unparseable stays nil.
func (f memberForm) birth() *time.Time {
	if f.BirthDate == "" {
		return nil
	}
	if b, err := time.Parse(birthDateLayout, f.BirthDate); err == nil {
		return &b
	}
	return nil
}

func (f memberForm) apply(m *models.Member) {
	m.FirstName = f.FirstName
	m.LastName = f.LastName
	m.Phone = f.Phone
	m.Email = f.Email
	m.Address = f.Address
	m.Status = f.Status
	m.BirthDate = f.birth()
}

// GET /members
func (h *MemberHandler) List(c echo.Context) error {
	var members []models.Member
	if err := database.DB.Order("last_name ASC").Find(&members).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "DB_QUERY_FAILED")
	}
	return render(c, http.StatusOK, "members.html", echo.Map{"Members": members})
}

// GET|POST /members/new
func (h *MemberHandler) Create(c echo.Context) error {
	if c.Request().Method == http.MethodGet {
		return render(c, http.StatusOK, "member_form.html", echo.Map{
			"Title":  "Nuevo miembro",
			"Action": "/members/new",
			"Member": models.Member{Status: "Activo"},
		})
	}

	f := readMemberForm(c)
	if f.Status == "" {
		f.Status = "Activo"
	}

	var m models.Member
	f.apply(&m)

	if f.FirstName == "" || f.LastName == "" {
		flash(c, "Nombre y apellido son obligatorios.", "danger")
		return render(c, http.StatusOK, "member_form.html", echo.Map{
			"Title":  "Nuevo miembro",
			"Action": "/members/new",
			"Member": m,
		})
	}

	if err := database.DB.Create(&m).Error; err != nil {
		flash(c, err.Error(), "danger")
		return render(c, http.StatusOK, "member_form.html", echo.Map{
			"Title":  "Nuevo miembro",
			"Action": "/members/new",
			"Member": m,
		})
	}

	flash(c, "Miembro agregado exitosamente.", "success")
	return c.Redirect(http.StatusFound, "/members")
}

// GET|POST /members/:id/edit
func (h *MemberHandler) Edit(c echo.Context) error {
	id, err := mustID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "NOT_FOUND")
	}

	var m models.Member
	if err := database.DB.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "NOT_FOUND")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "DB_QUERY_FAILED")
	}

	action := fmt.Sprintf("/members/%d/edit", m.ID)
	if c.Request().Method == http.MethodGet {
		return render(c, http.StatusOK, "member_form.html", echo.Map{
			"Title":  "Editar miembro",
			"Action": action,
			"Member": m,
		})
	}

	f := readMemberForm(c)
	if f.FirstName == "" || f.LastName == "" {
		flash(c, "Nombre y apellido son obligatorios.", "danger")
		return render(c, http.StatusOK, "member_form.html", echo.Map{
			"Title":  "Editar miembro",
			"Action": action,
			"Member": m,
		})
	}

	// every field is overwritten from the form; an empty birthdate clears a
	// previously stored one
	f.apply(&m)

	if err := database.DB.Save(&m).Error; err != nil {
		flash(c, err.Error(), "danger")
		return render(c, http.StatusOK, "member_form.html", echo.Map{
			"Title":  "Editar miembro",
			"Action": action,
			"Member": m,
		})
	}

	flash(c, "Miembro actualizado exitosamente.", "success")
	return c.Redirect(http.StatusFound, "/members")
}
