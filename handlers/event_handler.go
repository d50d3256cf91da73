package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/YairCer/iglesia-app/database"
	"github.com/YairCer/iglesia-app/models"
)

// matches the datetime-local input format YYYY-MM-DDTHH:MM
const eventDateLayout = "2006-01-02T15:04"

type EventHandler struct{}

func NewEventHandler() *EventHandler { return &EventHandler{} }

type eventRow struct {
	models.Event
	AuthorName string
}

// GET /events
func (h *EventHandler) List(c echo.Context) error {
	var events []models.Event
	if err := database.DB.Order("date ASC").Find(&events).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "DB_QUERY_FAILED")
	}

	rows := make([]eventRow, 0, len(events))
	for _, ev := range events {
		row := eventRow{Event: ev}
		if author, err := ev.Author(database.DB); err == nil {
			row.AuthorName = author.Username
		}
		rows = append(rows, row)
	}
	return render(c, http.StatusOK, "events.html", echo.Map{"Events": rows})
}

// GET|POST /events/new
func (h *EventHandler) Create(c echo.Context) error {
	if c.Request().Method == http.MethodGet {
		return render(c, http.StatusOK, "create_event.html", nil)
	}

	title := strings.TrimSpace(c.FormValue("title"))
	description := c.FormValue("description")
	dateStr := strings.TrimSpace(c.FormValue("date"))

	date, err := time.Parse(eventDateLayout, dateStr)
	if err != nil {
		flash(c, "Formato de fecha inválido.", "danger")
		return c.Redirect(http.StatusFound, "/events/new")
	}

	ev := models.Event{
		Title:       title,
		Description: description,
		Date:        date,
		UserID:      currentUser(c).ID,
	}
	if err := database.DB.Create(&ev).Error; err != nil {
		flash(c, "Error al crear el evento.", "danger")
		return render(c, http.StatusOK, "create_event.html", nil)
	}

	flash(c, "Evento creado exitosamente.", "success")
	return c.Redirect(http.StatusFound, "/dashboard")
}
