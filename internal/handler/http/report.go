package http

import (
	"net/http"

	"github.com/c-senju/ponto-fazenda/internal/domain/reconcile"
	"github.com/c-senju/ponto-fazenda/internal/handler/http/response"
)

type ReportHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reconcileService reconcile.Service
}

func NewReportHandler(reconcileService reconcile.Service) ReportHandler {
	return &reportHandlerImpl{
		reconcileService: reconcileService,
	}
}

// Get implements ReportHandler.
func (h *reportHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	filter := reconcile.ReportFilter{}

	if startDate := r.URL.Query().Get("start_date"); startDate != "" {
		filter.StartDate = &startDate
	}

	if endDate := r.URL.Query().Get("end_date"); endDate != "" {
		filter.EndDate = &endDate
	}

	result, err := h.reconcileService.Report(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
