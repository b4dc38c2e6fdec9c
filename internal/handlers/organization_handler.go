package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
	ucorganization "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/organization"
)

type OrganizationHandler struct {
	settings *ucorganization.Settings
}

func NewOrganizationHandler(settings *ucorganization.Settings) *OrganizationHandler {
	return &OrganizationHandler{settings: settings}
}

type UpdateOrganizationRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *OrganizationHandler) Get(c *gin.Context) {
	org, err := h.settings.Get(c.Request.Context(), middleware.Session(c))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, org)
}

func (h *OrganizationHandler) Update(c *gin.Context) {
	var req UpdateOrganizationRequest
	if !bindJSON(c, &req) {
		return
	}

	org, err := h.settings.Rename(c.Request.Context(), middleware.Session(c), req.Name)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, org)
}
