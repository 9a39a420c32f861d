// Package server exposes the affordability engine over HTTP: clients post a
// profile and receive the computed calculation.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/homeready/homeready/internal/config"
	"github.com/homeready/homeready/internal/engine"
	"github.com/homeready/homeready/internal/mortgage"
	"github.com/homeready/homeready/pkg/cache"
	"github.com/homeready/homeready/pkg/constants"
	"github.com/homeready/homeready/pkg/output"
	"github.com/homeready/homeready/pkg/taxrates"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type handler struct {
	logger        *zap.Logger
	engine        *engine.Engine
	cache         cache.Cache
	maxUploadSize int64
	version       string
}

// NewHandler constructs the HTTP handler serving the affordability API. The
// cache is optional; pass nil to disable memoization.
func NewHandler(logger *zap.Logger, resultCache cache.Cache, maxUploadSize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxUploadSize <= 0 {
		maxUploadSize = constants.DefaultMaxUploadSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:        logger,
		engine:        engine.New(logger, taxrates.NewSource()),
		cache:         resultCache,
		maxUploadSize: maxUploadSize,
		version:       trimmedVersion,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/affordability", h.handleAffordability)
	mux.HandleFunc("/api/version", h.handleVersion)

	return mux
}

type affordabilityResponse struct {
	Calculation output.CalculationResponse `json:"calculation"`
	Warnings    []string                   `json:"warnings,omitempty"`
	Cached      bool                       `json:"cached,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *handler) handleAffordability(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, h.maxUploadSize+1))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}
	if int64(len(body)) > h.maxUploadSize {
		h.writeError(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("profile exceeds the %d byte limit", h.maxUploadSize))
		return
	}
	if len(body) == 0 {
		h.writeError(w, http.StatusBadRequest, "empty profile body")
		return
	}

	var conf config.Configuration
	if err := yaml.Unmarshal(body, &conf); err != nil {
		h.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid profile: %v", err))
		return
	}
	conf.ApplyDefaults()

	warnings := conf.ValidateConfiguration()

	inputs, err := conf.BuildInputs(nil)
	if err != nil {
		if errors.Is(err, mortgage.ErrUnresolvedRate) || errors.Is(err, mortgage.ErrUnresolvedTerm) {
			h.writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	property := conf.EngineProperty()
	if priceParam := r.URL.Query().Get("price"); priceParam != "" {
		price, err := strconv.ParseFloat(priceParam, 64)
		if err != nil || price < 0 {
			h.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid price %q", priceParam))
			return
		}
		if property == nil {
			property = &engine.Property{}
		}
		property.Price = price
	}

	// Warnings are profile-specific, so only the calculation is memoized;
	// each response carries the warnings of its own upload.
	if cached, ok := h.cachedCalculation(inputs, property); ok {
		h.writeJSON(w, http.StatusOK, affordabilityResponse{
			Calculation: cached,
			Warnings:    warnings,
			Cached:      true,
		})
		return
	}

	calc, err := h.engine.Compute(inputs, property)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	response := affordabilityResponse{
		Calculation: output.NewCalculationResponse(calc),
		Warnings:    warnings,
	}

	h.storeCalculation(inputs, property, response.Calculation)
	h.writeJSON(w, http.StatusOK, response)
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"version": h.version})
}

type cacheEnvelope struct {
	Inputs   engine.Inputs
	Property *engine.Property
}

func (h *handler) cachedCalculation(inputs engine.Inputs, property *engine.Property) (output.CalculationResponse, bool) {
	if h.cache == nil {
		return output.CalculationResponse{}, false
	}
	key, err := cache.Key(cacheEnvelope{Inputs: inputs, Property: property})
	if err != nil {
		return output.CalculationResponse{}, false
	}
	stored, ok := h.cache.Get(key)
	if !ok {
		return output.CalculationResponse{}, false
	}

	var calculation output.CalculationResponse
	if err := json.Unmarshal([]byte(stored), &calculation); err != nil {
		h.logger.Warn("discarding unreadable cached result",
			zap.String("op", "server.cachedCalculation"),
			zap.Error(err),
		)
		return output.CalculationResponse{}, false
	}
	return calculation, true
}

func (h *handler) storeCalculation(inputs engine.Inputs, property *engine.Property, calculation output.CalculationResponse) {
	if h.cache == nil {
		return
	}
	key, err := cache.Key(cacheEnvelope{Inputs: inputs, Property: property})
	if err != nil {
		return
	}
	payload, err := json.Marshal(calculation)
	if err != nil {
		return
	}
	if err := h.cache.Set(key, string(payload)); err != nil {
		h.logger.Warn("failed to cache result",
			zap.String("op", "server.storeCalculation"),
			zap.Error(err),
		)
	}
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
	}
}

func (h *handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, errorResponse{Error: message})
}
