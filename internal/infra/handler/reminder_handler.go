package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-car-care/internal/app"
)

type ReminderHandler struct {
	useCase app.ReminderUseCase
}

func NewReminderHandler(useCase app.ReminderUseCase) *ReminderHandler {
	return &ReminderHandler{
		useCase: useCase,
	}
}

func (h *ReminderHandler) CreateReminder(c *gin.Context) {
	var req ReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)

		return
	}

	output, err := h.useCase.CreateReminder(c.Request.Context(), app.CreateReminderInput{
		UserID:   userID(c),
		Reminder: req.toInput(),
		Today:    c.Query("today"),
	})
	if err != nil {
		handleError(c, err)

		return
	}

	slog.InfoContext(c.Request.Context(), "reminder created",
		"reminder_id", output.ID,
		"target_date", output.TargetDate,
	)
	c.JSON(http.StatusCreated, FromReminderDTO(output))
}

func (h *ReminderHandler) ListReminders(c *gin.Context) {
	var req ListRemindersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		handleBindError(c, err)

		return
	}

	input := app.ListRemindersInput{
		UserID: userID(c),
		Today:  req.Today,
	}
	if req.Status != "" {
		input.Status = &req.Status
	}

	if req.CarID != "" {
		input.CarID = &req.CarID
	}

	output, err := h.useCase.ListReminders(c.Request.Context(), input)
	if err != nil {
		handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromReminderDTOs(output))
}

func (h *ReminderHandler) GetReminder(c *gin.Context) {
	var query TodayQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		handleBindError(c, err)

		return
	}

	output, err := h.useCase.GetReminder(c.Request.Context(), app.GetReminderInput{
		UserID: userID(c),
		ID:     c.Param("id"),
		Today:  query.Today,
	})
	if err != nil {
		handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromReminderDTO(output))
}

func (h *ReminderHandler) UpdateReminder(c *gin.Context) {
	var req ReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)

		return
	}

	output, err := h.useCase.UpdateReminder(c.Request.Context(), app.UpdateReminderInput{
		UserID:   userID(c),
		ID:       c.Param("id"),
		Reminder: req.toInput(),
		Today:    c.Query("today"),
	})
	if err != nil {
		handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromReminderDTO(output))
}

func (h *ReminderHandler) CompleteReminder(c *gin.Context) {
	output, err := h.useCase.CompleteReminder(c.Request.Context(), h.transitionInput(c))
	if err != nil {
		handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromReminderDTO(output))
}

func (h *ReminderHandler) DismissReminder(c *gin.Context) {
	output, err := h.useCase.DismissReminder(c.Request.Context(), h.transitionInput(c))
	if err != nil {
		handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromReminderDTO(output))
}

func (h *ReminderHandler) DeleteReminder(c *gin.Context) {
	id := c.Param("id")

	if err := h.useCase.DeleteReminder(c.Request.Context(), app.DeleteReminderInput{
		UserID: userID(c),
		ID:     id,
	}); err != nil {
		handleError(c, err)

		return
	}

	slog.InfoContext(c.Request.Context(), "reminder deleted",
		"reminder_id", id,
	)
	c.Status(http.StatusNoContent)
}

func (h *ReminderHandler) transitionInput(c *gin.Context) app.ReminderTransitionInput {
	return app.ReminderTransitionInput{
		UserID: userID(c),
		ID:     c.Param("id"),
		Today:  c.Query("today"),
	}
}

func (h *ReminderHandler) RegisterRoutes(router *gin.RouterGroup) {
	reminders := router.Group("/reminders")
	{
		reminders.POST("", h.CreateReminder)
		reminders.GET("", h.ListReminders)
		reminders.GET("/:id", h.GetReminder)
		reminders.PUT("/:id", h.UpdateReminder)
		reminders.POST("/:id/complete", h.CompleteReminder)
		reminders.POST("/:id/dismiss", h.DismissReminder)
		reminders.DELETE("/:id", h.DeleteReminder)
	}
}
