package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-car-care/internal/app"
)

type MaintenanceHandler struct {
	useCase app.MaintenanceUseCase
}

func NewMaintenanceHandler(useCase app.MaintenanceUseCase) *MaintenanceHandler {
	return &MaintenanceHandler{
		useCase: useCase,
	}
}

func (h *MaintenanceHandler) CreateRecord(c *gin.Context) {
	var req MaintenanceRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)

		return
	}

	output, err := h.useCase.CreateRecord(c.Request.Context(), app.CreateMaintenanceRecordInput{
		UserID: userID(c),
		Record: req.toInput(),
	})
	if err != nil {
		handleError(c, err)

		return
	}

	slog.InfoContext(c.Request.Context(), "maintenance record created",
		"record_id", output.ID,
		"car_id", output.CarID,
	)
	c.JSON(http.StatusCreated, FromMaintenanceRecordDTO(output))
}

func (h *MaintenanceHandler) ListRecords(c *gin.Context) {
	var req ListMaintenanceRecordsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		handleBindError(c, err)

		return
	}

	input := app.ListMaintenanceRecordsInput{UserID: userID(c)}
	if req.CarID != "" {
		input.CarID = &req.CarID
	}

	output, err := h.useCase.ListRecords(c.Request.Context(), input)
	if err != nil {
		handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromMaintenanceRecordDTOs(output))
}

func (h *MaintenanceHandler) GetRecord(c *gin.Context) {
	output, err := h.useCase.GetRecord(c.Request.Context(), app.GetMaintenanceRecordInput{
		UserID: userID(c),
		ID:     c.Param("id"),
	})
	if err != nil {
		handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromMaintenanceRecordDTO(output))
}

func (h *MaintenanceHandler) UpdateRecord(c *gin.Context) {
	var req MaintenanceRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)

		return
	}

	output, err := h.useCase.UpdateRecord(c.Request.Context(), app.UpdateMaintenanceRecordInput{
		UserID: userID(c),
		ID:     c.Param("id"),
		Record: req.toInput(),
	})
	if err != nil {
		handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromMaintenanceRecordDTO(output))
}

func (h *MaintenanceHandler) DeleteRecord(c *gin.Context) {
	if err := h.useCase.DeleteRecord(c.Request.Context(), app.DeleteMaintenanceRecordInput{
		UserID: userID(c),
		ID:     c.Param("id"),
	}); err != nil {
		handleError(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}

func (h *MaintenanceHandler) RegisterRoutes(router *gin.RouterGroup) {
	records := router.Group("/maintenance-records")
	{
		records.POST("", h.CreateRecord)
		records.GET("", h.ListRecords)
		records.GET("/:id", h.GetRecord)
		records.PUT("/:id", h.UpdateRecord)
		records.DELETE("/:id", h.DeleteRecord)
	}
}
