package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-car-care/internal/app"
)

type CarHandler struct {
	useCase app.CarUseCase
}

func NewCarHandler(useCase app.CarUseCase) *CarHandler {
	return &CarHandler{
		useCase: useCase,
	}
}

func (h *CarHandler) CreateCar(c *gin.Context) {
	var req CarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)

		return
	}

	output, err := h.useCase.CreateCar(c.Request.Context(), app.CreateCarInput{
		UserID: userID(c),
		Car:    req.toInput(),
	})
	if err != nil {
		handleError(c, err)

		return
	}

	slog.InfoContext(c.Request.Context(), "car created",
		"car_id", output.ID,
	)
	c.JSON(http.StatusCreated, FromCarDTO(output))
}

func (h *CarHandler) ListCars(c *gin.Context) {
	output, err := h.useCase.ListCars(c.Request.Context(), app.ListCarsInput{
		UserID: userID(c),
	})
	if err != nil {
		handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromCarDTOs(output))
}

func (h *CarHandler) GetCar(c *gin.Context) {
	output, err := h.useCase.GetCar(c.Request.Context(), app.GetCarInput{
		UserID: userID(c),
		ID:     c.Param("id"),
	})
	if err != nil {
		handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromCarDTO(output))
}

func (h *CarHandler) UpdateCar(c *gin.Context) {
	var req CarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)

		return
	}

	output, err := h.useCase.UpdateCar(c.Request.Context(), app.UpdateCarInput{
		UserID: userID(c),
		ID:     c.Param("id"),
		Car:    req.toInput(),
	})
	if err != nil {
		handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromCarDTO(output))
}

func (h *CarHandler) DeleteCar(c *gin.Context) {
	id := c.Param("id")

	if err := h.useCase.DeleteCar(c.Request.Context(), app.DeleteCarInput{
		UserID: userID(c),
		ID:     id,
	}); err != nil {
		handleError(c, err)

		return
	}

	slog.InfoContext(c.Request.Context(), "car deleted",
		"car_id", id,
	)
	c.Status(http.StatusNoContent)
}

func (h *CarHandler) RegisterRoutes(router *gin.RouterGroup) {
	cars := router.Group("/cars")
	{
		cars.POST("", h.CreateCar)
		cars.GET("", h.ListCars)
		cars.GET("/:id", h.GetCar)
		cars.PUT("/:id", h.UpdateCar)
		cars.DELETE("/:id", h.DeleteCar)
	}
}
