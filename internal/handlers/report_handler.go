package handlers

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
	ucreport "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/report"
)

type ReportHandler struct {
	summary   *ucreport.GetSummary
	dashboard *ucreport.GetDashboard
	export    *ucreport.ExportAppointments
}

func NewReportHandler(
	summary *ucreport.GetSummary,
	dashboard *ucreport.GetDashboard,
	export *ucreport.ExportAppointments,
) *ReportHandler {
	return &ReportHandler{
		summary:   summary,
		dashboard: dashboard,
		export:    export,
	}
}

// Summary: ?from=YYYY-MM-DD&to=YYYY-MM-DD (sem datas, mês corrente).
func (h *ReportHandler) Summary(c *gin.Context) {
	out, err := h.summary.Execute(c.Request.Context(), middleware.Session(c), c.Query("from"), c.Query("to"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, out)
}

func (h *ReportHandler) Dashboard(c *gin.Context) {
	out, err := h.dashboard.Execute(c.Request.Context(), middleware.Session(c))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, out)
}

// ExportAppointments aceita os mesmos filtros da listagem e ?format=pdf|xlsx.
func (h *ReportHandler) ExportAppointments(c *gin.Context) {
	in, ok := listInput(c)
	if !ok {
		return
	}

	file, err := h.export.Execute(c.Request.Context(), middleware.Session(c), in, c.Query("format"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := file.Render(&buf); err != nil {
		slog.ErrorContext(c.Request.Context(), "export failed",
			"format", file.Format,
			"error", err,
		)
		httperr.Internal(c, "export_failed", httperr.Message("export_failed"))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, file.Filename))
	c.Data(http.StatusOK, file.ContentType, buf.Bytes())
}
