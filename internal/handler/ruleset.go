package handler

import (
	"net/http"

	"github.com/osse101/Forgeworks_Go/internal/domain"
	"github.com/osse101/Forgeworks_Go/internal/engine"
	"github.com/osse101/Forgeworks_Go/internal/logger"
)

// RulesetResponse wraps the active ruleset with its weight advisory
type RulesetResponse struct {
	Ruleset   *domain.Ruleset `json:"ruleset"`
	WeightSum float64         `json:"weight_sum"`
	Balanced  bool            `json:"weights_sum_to_one"`
}

func newRulesetResponse(rs *domain.Ruleset) RulesetResponse {
	sum, balanced := rs.WeightSumAdvisory()
	return RulesetResponse{Ruleset: rs, WeightSum: sum, Balanced: balanced}
}

// HandleGetRuleset returns the active ruleset
// @Summary Get active ruleset
// @Tags ruleset
// @Produce json
// @Success 200 {object} RulesetResponse
// @Router /api/v1/ruleset [get]
func HandleGetRuleset(svc engine.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, newRulesetResponse(svc.Ruleset()))
	}
}

// HandlePutRuleset replaces the active ruleset. The new revision keeps the
// ruleset ID and bumps its version, and crafted values are recalculated in
// the background.
// @Summary Replace ruleset
// @Tags ruleset
// @Accept json
// @Produce json
// @Param ruleset body domain.Ruleset true "Ruleset document"
// @Success 200 {object} RulesetResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/ruleset [put]
func HandlePutRuleset(svc engine.Service, maxBodyBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, ok := readBody(w, r, maxBodyBytes, "Ruleset")
		if !ok {
			return
		}

		rs, err := svc.ImportRuleset(r.Context(), data)
		if err != nil {
			respondServiceError(w, r, ErrMsgRulesetRejected, err)
			return
		}

		logger.FromContext(r.Context()).Info("Ruleset updated via API", "ruleset", rs.Key())
		respondJSON(w, http.StatusOK, newRulesetResponse(rs))
	}
}
