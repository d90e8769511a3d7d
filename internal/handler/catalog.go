package handler

import (
	"net/http"

	"github.com/osse101/Forgeworks_Go/internal/engine"
	"github.com/osse101/Forgeworks_Go/internal/logger"
)

// RecalculateRequest selects between waiting for the pass, scheduling it and
// flushing a debounced pass that is still waiting out its window
type RecalculateRequest struct {
	Mode string `json:"mode" validate:"required,oneof=sync async flush"`
}

// HandlePutCatalog replaces the item and recipe catalog
// @Summary Replace catalog
// @Description Unknown ingredient names do not reject the upload; they are listed in the report with suggestions.
// @Tags catalog
// @Accept json
// @Produce json
// @Param catalog body catalog.Document true "Catalog document"
// @Success 200 {object} catalog.Report
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/catalog [put]
func HandlePutCatalog(svc engine.Service, maxBodyBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, ok := readBody(w, r, maxBodyBytes, "Catalog")
		if !ok {
			return
		}

		report, err := svc.ImportCatalog(r.Context(), data)
		if err != nil {
			respondServiceError(w, r, ErrMsgCatalogRejected, err)
			return
		}

		logger.FromContext(r.Context()).Info("Catalog updated via API",
			"items", report.Items, "recipes", report.Recipes, "unknown", len(report.Unknown))
		respondJSON(w, http.StatusOK, report)
	}
}

// HandleGetCatalog exports the catalog with current crafted values
// @Summary Export catalog
// @Tags catalog
// @Produce json
// @Success 200 {object} catalog.Document
// @Router /api/v1/catalog [get]
func HandleGetCatalog(svc engine.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, svc.CatalogDocument())
	}
}

// HandleGetCatalogReport lists unresolved references in the active catalog
// @Summary Catalog integrity report
// @Tags catalog
// @Produce json
// @Success 200 {object} catalog.Report
// @Router /api/v1/catalog/report [get]
func HandleGetCatalogReport(svc engine.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, svc.CatalogReport())
	}
}

// HandleRecalculate recomputes crafted values, either inline or through the
// debounced background worker
// @Summary Recalculate crafted values
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body RecalculateRequest true "Mode"
// @Success 200 {object} engine.RecalcResult
// @Success 202 {object} SuccessResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/recalculate [post]
func HandleRecalculate(svc engine.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RecalculateRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Recalculate"); err != nil {
			return
		}

		switch req.Mode {
		case RecalcModeAsync:
			svc.ScheduleRecalculation()
			respondJSON(w, http.StatusAccepted, SuccessResponse{Message: MsgRecalcScheduled})
			return
		case RecalcModeFlush:
			if svc.FlushRecalculation() {
				respondJSON(w, http.StatusAccepted, SuccessResponse{Message: MsgRecalcFlushed})
				return
			}
			respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgRecalcNothing})
			return
		}

		result, err := svc.Recalculate(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgRecalcFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Message: MsgRecalcCompleted, Data: result})
	}
}

// HandleGetStats returns engine and cache statistics
// @Summary Engine statistics
// @Tags admin
// @Produce json
// @Success 200 {object} engine.Stats
// @Router /api/v1/stats [get]
func HandleGetStats(svc engine.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, svc.Stats())
	}
}
