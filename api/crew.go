package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pvoloshyn/airdesk/internal/domain"
	"github.com/pvoloshyn/airdesk/internal/service/crew"
)

type CrewHandler struct {
	service crew.CrewUseCase
}

type roleRequest struct {
	Name string `json:"name" binding:"required"`
}

func NewCrewHandler(service crew.CrewUseCase) *CrewHandler {
	return &CrewHandler{service: service}
}

func (h *CrewHandler) RegisterRoles(router *gin.RouterGroup) {
	router.GET("/", h.listRoles)
	router.POST("/", h.createRole)
	router.GET("/:id", h.getRole)
	router.PUT("/:id", h.updateRole)
	router.DELETE("/:id", h.deleteRole)
}

func (h *CrewHandler) RegisterMembers(router *gin.RouterGroup) {
	router.GET("/", h.listMembers)
	router.POST("/", h.createMember)
	router.GET("/:id", h.getMember)
	router.PUT("/:id", h.updateMember)
	router.DELETE("/:id", h.deleteMember)
}

func (h *CrewHandler) RegisterGroups(router *gin.RouterGroup) {
	router.GET("/", h.listGroups)
	router.POST("/", h.createGroup)
	router.GET("/:id", h.getGroup)
	router.PUT("/:id", h.replaceGroupMembers)
	router.DELETE("/:id", h.deleteGroup)
	router.GET("/:id/flight", h.groupFlight)
}

func (h *CrewHandler) listRoles(c *gin.Context) {
	roles, err := h.service.ListRoles(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, roles)
}

func (h *CrewHandler) getRole(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	role, err := h.service.GetRole(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, role)
}

func (h *CrewHandler) createRole(c *gin.Context) {
	var req roleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	role, err := h.service.CreateRole(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, role)
}

func (h *CrewHandler) updateRole(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	var req roleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	role, err := h.service.UpdateRole(c.Request.Context(), id, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, role)
}

func (h *CrewHandler) deleteRole(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	if err := h.service.DeleteRole(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CrewHandler) listMembers(c *gin.Context) {
	var (
		members []domain.CrewMember
		err     error
	)
	if role := c.Query("role"); role != "" {
		members, err = h.service.ListMembersByRole(c.Request.Context(), role)
	} else {
		members, err = h.service.ListMembers(c.Request.Context())
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

func (h *CrewHandler) getMember(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	member, err := h.service.GetMember(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

func (h *CrewHandler) createMember(c *gin.Context) {
	var req crew.MemberInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	member, err := h.service.CreateMember(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, member)
}

func (h *CrewHandler) updateMember(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	var req crew.MemberInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	member, err := h.service.UpdateMember(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

func (h *CrewHandler) deleteMember(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	if err := h.service.DeleteMember(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CrewHandler) listGroups(c *gin.Context) {
	groups, err := h.service.ListGroups(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, groups)
}

func (h *CrewHandler) getGroup(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	group, err := h.service.GetGroup(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, group)
}

func (h *CrewHandler) createGroup(c *gin.Context) {
	var req domain.CrewGroupMembers
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	group, err := h.service.CreateGroup(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, group)
}

func (h *CrewHandler) replaceGroupMembers(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	var req domain.CrewGroupMembers
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	group, err := h.service.ReplaceGroupMembers(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, group)
}

func (h *CrewHandler) deleteGroup(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	if err := h.service.DeleteGroup(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// groupFlight answers which flight a crew group is assigned to. An
// unassigned group yields a null flight, not a 404.
func (h *CrewHandler) groupFlight(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	if _, err := h.service.GetGroup(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	flight, err := h.service.FlightForGroup(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"flight": flight})
}
