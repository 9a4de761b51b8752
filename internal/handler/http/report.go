package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/staffhub/hrm-backend-go/internal/domain/report"
	"github.com/staffhub/hrm-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	ExportCSV(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// ExportCSV implements ReportHandler. Unlike the JSON endpoints this
// writes the raw document, not the response envelope.
func (h *reportHandlerImpl) ExportCSV(w http.ResponseWriter, r *http.Request) {
	entity := chi.URLParam(r, "entity")

	data, filename, err := h.reportService.ExportCSV(r.Context(), entity)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
