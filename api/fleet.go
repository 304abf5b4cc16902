package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pvoloshyn/airdesk/internal/domain"
	"github.com/pvoloshyn/airdesk/internal/service/fleet"
)

type FleetHandler struct {
	service fleet.FleetUseCase
}

type airplaneTypeRequest struct {
	Name string `json:"name" binding:"required"`
}

// seatConfigResponse adds the class label and derived capacity to the
// stored layout.
type seatConfigResponse struct {
	ID                int64            `json:"id"`
	SeatClass         domain.SeatClass `json:"seat_class"`
	SeatClassLabel    string           `json:"seat_class_label"`
	Rows              int              `json:"rows"`
	SeatsInRow        int              `json:"seats_in_row"`
	Capacity          int              `json:"capacity"`
	AirplaneID        int64            `json:"airplane_id"`
	AirplaneModelName string           `json:"airplane_model_name,omitempty"`
}

func newSeatConfigResponse(config domain.SeatConfiguration) seatConfigResponse {
	return seatConfigResponse{
		ID:                config.ID,
		SeatClass:         config.SeatClass,
		SeatClassLabel:    config.SeatClass.Label(),
		Rows:              config.Rows,
		SeatsInRow:        config.SeatsInRow,
		Capacity:          config.Capacity(),
		AirplaneID:        config.AirplaneID,
		AirplaneModelName: config.AirplaneModelName,
	}
}

func newSeatConfigResponses(configs []domain.SeatConfiguration) []seatConfigResponse {
	out := make([]seatConfigResponse, 0, len(configs))
	for _, config := range configs {
		out = append(out, newSeatConfigResponse(config))
	}
	return out
}

func NewFleetHandler(service fleet.FleetUseCase) *FleetHandler {
	return &FleetHandler{service: service}
}

func (h *FleetHandler) RegisterTypes(router *gin.RouterGroup) {
	router.GET("/", h.listTypes)
	router.POST("/", h.createType)
	router.GET("/:id", h.getType)
	router.PUT("/:id", h.updateType)
	router.DELETE("/:id", h.deleteType)
}

func (h *FleetHandler) RegisterAirplanes(router *gin.RouterGroup) {
	router.GET("/", h.listAirplanes)
	router.POST("/", h.createAirplane)
	router.GET("/:id", h.getAirplane)
	router.PUT("/:id", h.updateAirplane)
	router.DELETE("/:id", h.deleteAirplane)
	router.GET("/:id/seat-configurations", h.listAirplaneSeatConfigs)
}

func (h *FleetHandler) RegisterSeatConfigurations(router *gin.RouterGroup) {
	router.GET("/", h.listSeatConfigs)
	router.POST("/", h.createSeatConfig)
	router.GET("/:id", h.getSeatConfig)
	router.PUT("/:id", h.updateSeatConfig)
	router.DELETE("/:id", h.deleteSeatConfig)
}

func (h *FleetHandler) listTypes(c *gin.Context) {
	types, err := h.service.ListAirplaneTypes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, types)
}

func (h *FleetHandler) getType(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	airplaneType, err := h.service.GetAirplaneType(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, airplaneType)
}

func (h *FleetHandler) createType(c *gin.Context) {
	var req airplaneTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	airplaneType, err := h.service.CreateAirplaneType(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, airplaneType)
}

func (h *FleetHandler) updateType(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	var req airplaneTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	airplaneType, err := h.service.UpdateAirplaneType(c.Request.Context(), id, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, airplaneType)
}

func (h *FleetHandler) deleteType(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	if err := h.service.DeleteAirplaneType(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *FleetHandler) listAirplanes(c *gin.Context) {
	airplanes, err := h.service.ListAirplanes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, airplanes)
}

func (h *FleetHandler) getAirplane(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	airplane, err := h.service.GetAirplane(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, airplane)
}

func (h *FleetHandler) createAirplane(c *gin.Context) {
	var req fleet.AirplaneInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	airplane, err := h.service.CreateAirplane(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, airplane)
}

func (h *FleetHandler) updateAirplane(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	var req fleet.AirplaneInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	airplane, err := h.service.UpdateAirplane(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, airplane)
}

func (h *FleetHandler) deleteAirplane(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	if err := h.service.DeleteAirplane(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *FleetHandler) listAirplaneSeatConfigs(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	if _, err := h.service.GetAirplane(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	configs, err := h.service.ListSeatConfigurationsByAirplane(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newSeatConfigResponses(configs))
}

func (h *FleetHandler) listSeatConfigs(c *gin.Context) {
	configs, err := h.service.ListSeatConfigurations(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newSeatConfigResponses(configs))
}

func (h *FleetHandler) getSeatConfig(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	config, err := h.service.GetSeatConfiguration(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newSeatConfigResponse(*config))
}

func (h *FleetHandler) createSeatConfig(c *gin.Context) {
	var req fleet.SeatConfigurationInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	config, err := h.service.CreateSeatConfiguration(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newSeatConfigResponse(*config))
}

func (h *FleetHandler) updateSeatConfig(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	var req fleet.SeatConfigurationInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	config, err := h.service.UpdateSeatConfiguration(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newSeatConfigResponse(*config))
}

func (h *FleetHandler) deleteSeatConfig(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	if err := h.service.DeleteSeatConfiguration(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
