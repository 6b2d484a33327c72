package role

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ticketd/internal/application/role"
	"ticketd/internal/shared/logger"
	"ticketd/internal/shared/utils"
)

type CreateRoleRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=500"`
}

type UpdateRoleRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,max=100"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=500"`
}

type RoleHandler struct {
	roleService *role.Service
	logger      logger.Interface
}

func NewRoleHandler(roleService *role.Service, logger logger.Interface) *RoleHandler {
	return &RoleHandler{
		roleService: roleService,
		logger:      logger,
	}
}

// CreateRole handles POST /roles
func (h *RoleHandler) CreateRole(c *gin.Context) {
	var req CreateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create role", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.roleService.Create(c.Request.Context(), role.CreateRoleCommand{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Role created successfully")
}

// ListRoles handles GET /roles
func (h *RoleHandler) ListRoles(c *gin.Context) {
	page := utils.ParsePageQuery(c)

	results, meta, err := h.roleService.List(c.Request.Context(), page)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.PageSuccessResponse(c, results, meta.TotalRecords, meta.TotalPages, meta.CurrentPage)
}

// GetRole handles GET /roles/:id
func (h *RoleHandler) GetRole(c *gin.Context) {
	roleID, err := utils.ParseIDParam(c, "id", "role")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.roleService.Get(c.Request.Context(), roleID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateRole handles PATCH /roles/:id
func (h *RoleHandler) UpdateRole(c *gin.Context) {
	roleID, err := utils.ParseIDParam(c, "id", "role")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update role", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.roleService.Update(c.Request.Context(), role.UpdateRoleCommand{
		RoleID:      roleID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Role updated successfully", result)
}

// DeleteRole handles DELETE /roles/:id
func (h *RoleHandler) DeleteRole(c *gin.Context) {
	roleID, err := utils.ParseIDParam(c, "id", "role")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.roleService.Delete(c.Request.Context(), roleID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
