package scan

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/md-tools/revenue-atlas/pkg/adapters"
	"github.com/md-tools/revenue-atlas/pkg/models/api"
	"github.com/md-tools/revenue-atlas/pkg/models/domain"
	scansvc "github.com/md-tools/revenue-atlas/pkg/services/scan"
	"github.com/md-tools/revenue-atlas/pkg/services/usage"
)

const (
	accountHeader  = "X-Account-ID"
	defaultAccount = "anonymous"
)

// Scanner runs single-provider scans.
type Scanner interface {
	ScanOne(ctx context.Context, npi string) (*domain.ScanResult, error)
}

// GroupScanner runs group scans.
type GroupScanner interface {
	ScanGroup(ctx context.Context, npis []string, concurrencyHint int) (*domain.GroupScanResult, error)
}

type Handler struct {
	scanner Scanner
	groups  GroupScanner
	gate    usage.Gate
}

func NewHandler(scanner Scanner, groups GroupScanner, gate usage.Gate) *Handler {
	return &Handler{scanner: scanner, groups: groups, gate: gate}
}

// ScanProvider handles GET /providers/{npi}/scan.
func (h *Handler) ScanProvider(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	npi := chi.URLParam(r, "npi")
	account := accountFrom(r)

	if err := h.gate.CheckAndReserve(ctx, account, usage.CategoryScan); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.scanner.ScanOne(ctx, npi)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, adapters.MapScanResultToAPI(*result))
}

// ScanGroup handles POST /scans/group.
func (h *Handler) ScanGroup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	account := accountFrom(r)

	var req api.GroupScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, r, http.StatusBadRequest, api.Error{
			Code:    "malformed_request",
			Message: "request body must be JSON with an ids array",
		})
		return
	}

	if err := h.gate.CheckAndReserve(ctx, account, usage.CategoryGroup); err != nil {
		writeError(w, r, err)
		return
	}

	group, err := h.groups.ScanGroup(ctx, req.IDs, req.Concurrency)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, adapters.MapGroupScanResultToAPI(*group))
}

func accountFrom(r *http.Request) string {
	if account := r.Header.Get(accountHeader); account != "" {
		return account
	}
	return defaultAccount
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		invalid  *domain.InvalidIdentifierError
		tooLarge *domain.BatchTooLargeError
		limited  *domain.RateLimitError
		upstream *domain.UpstreamError
	)

	switch {
	case errors.As(err, &invalid):
		writeJSON(w, r, http.StatusBadRequest, api.Error{Code: "invalid_identifier", Message: err.Error()})
	case errors.As(err, &tooLarge):
		writeJSON(w, r, http.StatusBadRequest, api.Error{Code: "batch_too_large", Message: err.Error()})
	case errors.As(err, &limited):
		writeJSON(w, r, http.StatusTooManyRequests, api.Error{Code: "rate_limit_exceeded", Message: err.Error()})
	case errors.As(err, &upstream):
		writeJSON(w, r, http.StatusBadGateway, api.Error{Code: "upstream_unavailable", Message: err.Error()})
	default:
		writeJSON(w, r, http.StatusInternalServerError, api.Error{Code: "internal", Message: "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to encode response")
	}
}

// ensure the concrete engine types satisfy the handler contracts
var (
	_ Scanner      = (*scansvc.Coordinator)(nil)
	_ GroupScanner = (*scansvc.Orchestrator)(nil)
)
