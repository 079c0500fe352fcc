package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/truaxis/storefront/internal/application/report"
)

// ReportHandler serves admin summary reports.
type ReportHandler struct {
	BaseHandler
	dashboardService *report.DashboardService
}

// NewReportHandler creates a report handler
func NewReportHandler(dashboardService *report.DashboardService) *ReportHandler {
	return &ReportHandler{dashboardService: dashboardService}
}

// Dashboard handles GET /api/v1/admin/stats
func (h *ReportHandler) Dashboard(c *gin.Context) {
	stats, err := h.dashboardService.Dashboard(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, stats)
}
