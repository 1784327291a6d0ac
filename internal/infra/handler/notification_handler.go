package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-car-care/internal/app"
)

type NotificationHandler struct {
	useCase app.NotificationUseCase
}

func NewNotificationHandler(useCase app.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{
		useCase: useCase,
	}
}

func (h *NotificationHandler) ListDueNotifications(c *gin.Context) {
	var query TodayQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		handleBindError(c, err)

		return
	}

	output, err := h.useCase.ListDueNotifications(c.Request.Context(), app.ListDueNotificationsInput{
		UserID: userID(c),
		Today:  query.Today,
	})
	if err != nil {
		handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromDueNotificationsDTO(output))
}

func (h *NotificationHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/notifications", h.ListDueNotifications)
}
