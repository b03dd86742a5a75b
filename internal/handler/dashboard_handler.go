package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/sma-adp-dashboard/internal/models"
	"github.com/noah-isme/sma-adp-dashboard/pkg/response"
)

type dashboardService interface {
	Overview() models.DashboardOverview
}

type resetter interface {
	Reset()
}

// DashboardHandler serves the dashboard home.
type DashboardHandler struct {
	service dashboardService
	stores  []resetter
}

// NewDashboardHandler constructs a DashboardHandler; stores are restored to the seed on reset.
func NewDashboardHandler(svc dashboardService, stores ...resetter) *DashboardHandler {
	return &DashboardHandler{service: svc, stores: stores}
}

// Overview godoc
// @Summary Dashboard totals and recent records
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Router / [get]
func (h *DashboardHandler) Overview(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Overview())
}

// Reset godoc
// @Summary Restore the seed dataset
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /reset [post]
func (h *DashboardHandler) Reset(c *gin.Context) {
	for _, store := range h.stores {
		store.Reset()
	}
	response.Notify(c, http.StatusOK, h.service.Overview(), models.Success("Data Reset", "The sample data has been restored."))
}
