package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pvoloshyn/airdesk/internal/domain"
	"github.com/pvoloshyn/airdesk/internal/service/orders"
)

type OrderHandler struct {
	service orders.OrderUseCase
}

type ticketResponse struct {
	domain.Ticket
	SeatClassLabel string `json:"seat_class_label"`
}

type orderResponse struct {
	ID           int64            `json:"id"`
	Reference    string           `json:"reference"`
	UserID       int64            `json:"user_id"`
	ContactEmail string           `json:"contact_email"`
	CreatedAt    string           `json:"created_at"`
	Tickets      []ticketResponse `json:"tickets"`
}

func newOrderResponse(order domain.Order) orderResponse {
	tickets := make([]ticketResponse, 0, len(order.Tickets))
	for _, t := range order.Tickets {
		tickets = append(tickets, ticketResponse{Ticket: t, SeatClassLabel: t.SeatClass.Label()})
	}
	return orderResponse{
		ID:           order.ID,
		Reference:    order.Reference,
		UserID:       order.UserID,
		ContactEmail: order.ContactEmail,
		CreatedAt:    order.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		Tickets:      tickets,
	}
}

func NewOrderHandler(service orders.OrderUseCase) *OrderHandler {
	return &OrderHandler{service: service}
}

func (h *OrderHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.listByUser)
	router.POST("/", h.create)
	router.GET("/:reference", h.getByReference)
	router.DELETE("/:reference", h.delete)
}

func (h *OrderHandler) create(c *gin.Context) {
	var req orders.CreateOrderInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	order, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newOrderResponse(*order))
}

func (h *OrderHandler) getByReference(c *gin.Context) {
	order, err := h.service.GetByReference(c.Request.Context(), c.Param("reference"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newOrderResponse(*order))
}

func (h *OrderHandler) listByUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Query("user_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user_id"})
		return
	}
	items, err := h.service.ListByUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]orderResponse, 0, len(items))
	for _, order := range items {
		out = append(out, newOrderResponse(order))
	}
	c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) delete(c *gin.Context) {
	order, err := h.service.GetByReference(c.Request.Context(), c.Param("reference"))
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.service.Delete(c.Request.Context(), order.ID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
