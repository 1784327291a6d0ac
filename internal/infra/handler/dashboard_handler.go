package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-car-care/internal/app"
)

type DashboardResponse struct {
	Today                   string   `json:"today"`
	TotalCars               int      `json:"total_cars"`
	TotalMaintenanceRecords int      `json:"total_maintenance_records"`
	TotalCost               float64  `json:"total_cost"`
	UpcomingWithin30Days    int      `json:"upcoming_within_30_days"`
	Partial                 bool     `json:"partial"`
	Unavailable             []string `json:"unavailable"`
}

func FromDashboardDTO(output app.DashboardOutput) DashboardResponse {
	unavailable := output.Unavailable
	if unavailable == nil {
		unavailable = []string{}
	}

	return DashboardResponse{
		Today:                   output.Today,
		TotalCars:               output.TotalCars,
		TotalMaintenanceRecords: output.TotalMaintenanceRecords,
		TotalCost:               output.TotalCost,
		UpcomingWithin30Days:    output.UpcomingWithin30Days,
		Partial:                 output.Partial,
		Unavailable:             unavailable,
	}
}

type DashboardHandler struct {
	useCase app.DashboardUseCase
}

func NewDashboardHandler(useCase app.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{
		useCase: useCase,
	}
}

// GetDashboard answers 200 even when a source failed; the body flags it.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	var query TodayQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		handleBindError(c, err)

		return
	}

	output, err := h.useCase.GetDashboard(c.Request.Context(), app.GetDashboardInput{
		UserID: userID(c),
		Today:  query.Today,
	})
	if err != nil {
		handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromDashboardDTO(output))
}

func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/dashboard", h.GetDashboard)
}
