package handler

import (
	"net/http"

	"pharmastock/internal/dto"
	"pharmastock/internal/service"

	"github.com/gin-gonic/gin"
)

type RoleHandler struct{ svc service.RoleService }

func NewRoleHandler(svc service.RoleService) *RoleHandler { return &RoleHandler{svc: svc} }

// Switch godoc
// @Summary      Switch the UI role
// @Description  patient is always granted; doctor needs the doctor password. Only a label is returned.
// @Tags         role
// @Accept       json
// @Produce      json
// @Param        body body     dto.SwitchRoleRequest true "role and password"
// @Success      200  {object} dto.Envelope{data=dto.RoleResponse}
// @Failure      400  {object} apierror.ValidationError
// @Failure      401  {object} apierror.APIError
// @Failure      429  {object} apierror.APIError
// @Router       /role [post]
func (h *RoleHandler) Switch(c *gin.Context) {
	var req dto.SwitchRoleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Switch(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("role switched", resp))
}
