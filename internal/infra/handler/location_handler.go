package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-car-care/internal/app"
)

type RegisterLocationRequest struct {
	Name      string   `json:"name" binding:"required"`
	Address   string   `json:"address"`
	Category  string   `json:"category"`
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
	Phone     string   `json:"phone"`
}

type NearbyLocationsRequest struct {
	Latitude  *float64 `form:"lat" binding:"required"`
	Longitude *float64 `form:"lon" binding:"required"`
	RadiusKm  float64  `form:"radius_km"`
	Limit     int      `form:"limit"`
}

type LocationResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	Category  string    `json:"category"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type NearbyLocationResponse struct {
	LocationResponse
	DistanceKm float64 `json:"distance_km"`
}

type NearbyLocationsResponse struct {
	Locations []NearbyLocationResponse `json:"locations"`
	Count     int32                    `json:"count"`
	RadiusKm  float64                  `json:"radius_km"`
}

func FromLocationDTO(output app.LocationOutput) LocationResponse {
	return LocationResponse{
		ID:        output.ID,
		Name:      output.Name,
		Address:   output.Address,
		Category:  output.Category,
		Latitude:  output.Latitude,
		Longitude: output.Longitude,
		Phone:     output.Phone,
		CreatedAt: output.CreatedAt,
	}
}

func FromNearbyLocationsDTO(output app.NearbyLocationsOutput) NearbyLocationsResponse {
	locations := make([]NearbyLocationResponse, 0, len(output.Locations))
	for _, l := range output.Locations {
		locations = append(locations, NearbyLocationResponse{
			LocationResponse: FromLocationDTO(l.Location),
			DistanceKm:       l.DistanceKm,
		})
	}

	return NearbyLocationsResponse{
		Locations: locations,
		Count:     output.Count,
		RadiusKm:  output.RadiusKm,
	}
}

type LocationHandler struct {
	useCase app.LocationUseCase
}

func NewLocationHandler(useCase app.LocationUseCase) *LocationHandler {
	return &LocationHandler{
		useCase: useCase,
	}
}

func (h *LocationHandler) RegisterLocation(c *gin.Context) {
	var req RegisterLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)

		return
	}

	output, err := h.useCase.RegisterLocation(c.Request.Context(), app.RegisterLocationInput{
		Name:      req.Name,
		Address:   req.Address,
		Category:  req.Category,
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
		Phone:     req.Phone,
	})
	if err != nil {
		handleError(c, err)

		return
	}

	c.JSON(http.StatusCreated, FromLocationDTO(output))
}

func (h *LocationHandler) FindNearby(c *gin.Context) {
	var req NearbyLocationsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		handleBindError(c, err)

		return
	}

	output, err := h.useCase.FindNearby(c.Request.Context(), app.FindNearbyInput{
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
		RadiusKm:  req.RadiusKm,
		Limit:     req.Limit,
	})
	if err != nil {
		handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromNearbyLocationsDTO(output))
}

func (h *LocationHandler) RegisterRoutes(router *gin.RouterGroup) {
	locations := router.Group("/locations")
	{
		locations.POST("", h.RegisterLocation)
		locations.GET("/nearby", h.FindNearby)
	}
}
