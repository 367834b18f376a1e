package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/bistro/app/services"
	"github.com/shashiranjanraj/bistro/pkg/response"
)

type StatsController struct {
	service *services.StatsService
}

func NewStatsController(service *services.StatsService) *StatsController {
	return &StatsController{service: service}
}

// Dashboard returns the admin summary: user, menu and order counts plus
// total revenue. Admin only.
func (c *StatsController) Dashboard(w http.ResponseWriter, r *http.Request) {
	summary, err := c.service.DashboardSummary(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not compute stats")
		return
	}
	response.Success(w, summary)
}

// OrderStats returns per-category order quantity and revenue. Admin only.
func (c *StatsController) OrderStats(w http.ResponseWriter, r *http.Request) {
	stats, err := c.service.OrderStats(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not compute order stats")
		return
	}
	response.Success(w, stats)
}
