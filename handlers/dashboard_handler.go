package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/YairCer/iglesia-app/database"
	"github.com/YairCer/iglesia-app/models"
)

type DashboardHandler struct{}

func NewDashboardHandler() *DashboardHandler { return &DashboardHandler{} }

// GET /dashboard — upcoming events, soonest first
func (h *DashboardHandler) Show(c echo.Context) error {
	var events []models.Event
	if err := database.DB.Order("date ASC").Find(&events).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "DB_QUERY_FAILED")
	}
	return render(c, http.StatusOK, "dashboard.html", echo.Map{"Events": events})
}
