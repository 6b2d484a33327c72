package field

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ticketd/internal/application/field"
	"ticketd/internal/shared/logger"
	"ticketd/internal/shared/utils"
)

type CreateFieldRequest struct {
	FieldName string `json:"fieldName" binding:"required,max=100"`
	Type      string `json:"type" binding:"required,max=50"`
}

type UpdateFieldRequest struct {
	FieldName *string `json:"fieldName,omitempty" binding:"omitempty,max=100"`
	Type      *string `json:"type,omitempty" binding:"omitempty,max=50"`
}

type FieldHandler struct {
	fieldService *field.Service
	logger       logger.Interface
}

func NewFieldHandler(fieldService *field.Service, logger logger.Interface) *FieldHandler {
	return &FieldHandler{
		fieldService: fieldService,
		logger:       logger,
	}
}

// CreateField handles POST /fields
func (h *FieldHandler) CreateField(c *gin.Context) {
	var req CreateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create field", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.fieldService.Create(c.Request.Context(), field.CreateFieldCommand{
		FieldName: req.FieldName,
		Type:      req.Type,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Field created successfully")
}

// ListFields handles GET /fields
func (h *FieldHandler) ListFields(c *gin.Context) {
	page := utils.ParsePageQuery(c)

	results, meta, err := h.fieldService.List(c.Request.Context(), page)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.PageSuccessResponse(c, results, meta.TotalRecords, meta.TotalPages, meta.CurrentPage)
}

// GetField handles GET /fields/:id
func (h *FieldHandler) GetField(c *gin.Context) {
	fieldID, err := utils.ParseIDParam(c, "id", "field")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.fieldService.Get(c.Request.Context(), fieldID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateField handles PATCH /fields/:id
func (h *FieldHandler) UpdateField(c *gin.Context) {
	fieldID, err := utils.ParseIDParam(c, "id", "field")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update field", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.fieldService.Update(c.Request.Context(), field.UpdateFieldCommand{
		FieldID:   fieldID,
		FieldName: req.FieldName,
		Type:      req.Type,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Field updated successfully", result)
}

// DeleteField handles DELETE /fields/:id
func (h *FieldHandler) DeleteField(c *gin.Context) {
	fieldID, err := utils.ParseIDParam(c, "id", "field")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.fieldService.Delete(c.Request.Context(), fieldID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
