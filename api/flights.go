package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pvoloshyn/airdesk/internal/domain"
	"github.com/pvoloshyn/airdesk/internal/service/flights"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

type flightStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type flightCrewRequest struct {
	CrewGroupID *int64 `json:"crew_group_id"`
}

// flightResponse mirrors domain.Flight with the status label spelled out.
type flightResponse struct {
	domain.Flight
	StatusLabel string `json:"status_label"`
}

func newFlightResponse(flight domain.Flight) flightResponse {
	return flightResponse{Flight: flight, StatusLabel: flight.Status.Label()}
}

func newFlightResponses(items []domain.Flight) []flightResponse {
	out := make([]flightResponse, 0, len(items))
	for _, flight := range items {
		out = append(out, newFlightResponse(flight))
	}
	return out
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.POST("/", h.create)
	router.GET("/:id", h.get)
	router.PUT("/:id", h.update)
	router.PATCH("/:id/status", h.updateStatus)
	router.PUT("/:id/crew", h.assignCrew)
	router.DELETE("/:id", h.delete)
}

func (h *FlightHandler) list(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newFlightResponses(items))
}

func (h *FlightHandler) get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	flight, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newFlightResponse(*flight))
}

func (h *FlightHandler) create(c *gin.Context) {
	var req flights.FlightInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	flight, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newFlightResponse(*flight))
}

func (h *FlightHandler) update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	var req flights.FlightInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	flight, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newFlightResponse(*flight))
}

func (h *FlightHandler) updateStatus(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	var req flightStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	flight, err := h.service.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newFlightResponse(*flight))
}

func (h *FlightHandler) assignCrew(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	var req flightCrewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	flight, err := h.service.AssignCrewGroup(c.Request.Context(), id, req.CrewGroupID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newFlightResponse(*flight))
}

func (h *FlightHandler) delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
