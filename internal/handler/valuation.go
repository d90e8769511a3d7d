package handler

import (
	"errors"
	"net/http"

	"github.com/osse101/Forgeworks_Go/internal/domain"
	"github.com/osse101/Forgeworks_Go/internal/engine"
	"github.com/osse101/Forgeworks_Go/internal/logger"
)

// HandleGetPrice returns the seasonal price of one item
// @Summary Get item price
// @Description Price, sell and buy quotes for an item in a season. Omitting season uses the ruleset's current season.
// @Tags valuation
// @Produce json
// @Param name path string true "Item name"
// @Param season query string false "Season"
// @Success 200 {object} engine.PriceQuote
// @Failure 404 {object} NotFoundResponse
// @Router /api/v1/items/{name}/price [get]
func HandleGetPrice(svc engine.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, ok := GetPathParam(r, w, ParamName)
		if !ok {
			return
		}
		season := GetOptionalQueryParam(r, ParamSeason, "")

		quote, err := svc.Price(r.Context(), name, season)
		if err != nil {
			respondLookupError(w, r, svc, name, ErrMsgPriceFailed, err)
			return
		}

		logger.FromContext(r.Context()).Debug("Price served", "item", name, "season", quote.Season, "price", quote.Price)
		respondJSON(w, http.StatusOK, quote)
	}
}

// HandleGetCost returns the crafting economics of one recipe
// @Summary Get recipe cost
// @Description Per-variant ingredient cost, cheapest variant, result value and profit multiplier
// @Tags valuation
// @Produce json
// @Param name path string true "Result item name"
// @Param season query string false "Season"
// @Success 200 {object} engine.CostQuote
// @Failure 404 {object} NotFoundResponse
// @Router /api/v1/recipes/{name}/cost [get]
func HandleGetCost(svc engine.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, ok := GetPathParam(r, w, ParamName)
		if !ok {
			return
		}
		season := GetOptionalQueryParam(r, ParamSeason, "")

		quote, err := svc.Cost(r.Context(), name, season)
		if err != nil {
			respondLookupError(w, r, svc, name, ErrMsgCostFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, quote)
	}
}

// HandleGetTime returns the estimated crafting duration of one recipe
// @Summary Get recipe crafting time
// @Tags valuation
// @Produce json
// @Param name path string true "Result item name"
// @Success 200 {object} engine.TimeQuote
// @Failure 404 {object} NotFoundResponse
// @Router /api/v1/recipes/{name}/time [get]
func HandleGetTime(svc engine.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, ok := GetPathParam(r, w, ParamName)
		if !ok {
			return
		}

		quote, err := svc.Time(r.Context(), name)
		if err != nil {
			respondLookupError(w, r, svc, name, ErrMsgTimeFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, quote)
	}
}

// HandleGetTree returns the dependency tree and raw material totals
// @Summary Get dependency tree
// @Tags valuation
// @Produce json
// @Param name path string true "Root item name"
// @Param quantity query int false "Quantity to produce" default(1)
// @Success 200 {object} engine.TreeResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} NotFoundResponse
// @Router /api/v1/tree/{name} [get]
func HandleGetTree(svc engine.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, ok := GetPathParam(r, w, ParamName)
		if !ok {
			return
		}
		qty, ok := parseQuantity(r, w)
		if !ok {
			return
		}
		LogRequestFields(logger.FromContext(r.Context()), "item", name, "quantity", qty)

		result, err := svc.Tree(r.Context(), name, qty)
		if err != nil {
			respondLookupError(w, r, svc, name, ErrMsgTreeFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}

// HandleSuggest lists catalog names close to the queried one
// @Summary Suggest item names
// @Tags catalog
// @Produce json
// @Param name query string true "Misspelled item name"
// @Success 200 {array} string
// @Router /api/v1/catalog/suggest [get]
func HandleSuggest(svc engine.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, ok := GetQueryParam(r, w, ParamName)
		if !ok {
			return
		}
		suggestions := svc.Suggest(name)
		if suggestions == nil {
			suggestions = []string{}
		}
		respondJSON(w, http.StatusOK, suggestions)
	}
}

// respondLookupError answers a missed item or recipe with suggestions and
// falls back to the generic mapping otherwise
func respondLookupError(w http.ResponseWriter, r *http.Request, svc engine.Service, name, opName string, err error) {
	if !errors.Is(err, domain.ErrItemNotFound) && !errors.Is(err, domain.ErrRecipeNotFound) {
		respondServiceError(w, r, opName, err)
		return
	}

	status, msg := mapServiceErrorToUserMessage(err)
	resp := NotFoundResponse{Error: msg}
	if errors.Is(err, domain.ErrItemNotFound) {
		resp.Suggestions = svc.Suggest(name)
	}
	logger.FromContext(r.Context()).Info(opName, "item", name, "error", err)
	respondJSON(w, status, resp)
}
