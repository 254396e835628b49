package http

import (
	"net/http"

	"github.com/mealroll/console-backend-go/internal/domain/insights"
	"github.com/mealroll/console-backend-go/internal/handler/http/response"
)

type InsightsHandler interface {
	GetDashboard(w http.ResponseWriter, r *http.Request)
	GetDailySummary(w http.ResponseWriter, r *http.Request)
	GetMonthlySeries(w http.ResponseWriter, r *http.Request)
	GetMenuDistribution(w http.ResponseWriter, r *http.Request)
	GetRecentFeed(w http.ResponseWriter, r *http.Request)
	GetConsumptionLedger(w http.ResponseWriter, r *http.Request)
}

type insightsHandlerImpl struct {
	insightsService insights.InsightsService
}

func NewInsightsHandler(insightsService insights.InsightsService) InsightsHandler {
	return &insightsHandlerImpl{
		insightsService: insightsService,
	}
}

// GetDashboard implements InsightsHandler
func (h *insightsHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.insightsService.GetDashboard(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetDailySummary implements InsightsHandler
func (h *insightsHandlerImpl) GetDailySummary(w http.ResponseWriter, r *http.Request) {
	result, err := h.insightsService.GetDailySummary(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMonthlySeries implements InsightsHandler
func (h *insightsHandlerImpl) GetMonthlySeries(w http.ResponseWriter, r *http.Request) {
	result, err := h.insightsService.GetMonthlySeries(r.Context(), r.URL.Query().Get("month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMenuDistribution implements InsightsHandler
func (h *insightsHandlerImpl) GetMenuDistribution(w http.ResponseWriter, r *http.Request) {
	result, err := h.insightsService.GetMenuDistribution(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetRecentFeed implements InsightsHandler
func (h *insightsHandlerImpl) GetRecentFeed(w http.ResponseWriter, r *http.Request) {
	result, err := h.insightsService.GetRecentFeed(r.Context(), queryInt(r.URL.Query().Get("limit")))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetConsumptionLedger implements InsightsHandler
func (h *insightsHandlerImpl) GetConsumptionLedger(w http.ResponseWriter, r *http.Request) {
	req := insights.LedgerRequest{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	result, err := h.insightsService.GetConsumptionLedger(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
