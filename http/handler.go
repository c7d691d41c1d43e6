// Package http exposes the engine's single request/response boundary over
// HTTP: one SMART_SCRAPE request in, one success or failure response out.
package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/pagesift/pagesift"
)

// ActionSmartScrape is the only action the boundary accepts.
const ActionSmartScrape = "SMART_SCRAPE"

// Handler serves extraction requests against a bound scraper. The request
// carries no parameters; the scraper always targets the document it was
// constructed over.
type Handler struct {
	scraper pagesift.Scraper
	logger  *slog.Logger
}

// NewHandler creates a Handler over the given scraper.
func NewHandler(scraper pagesift.Scraper, logger *slog.Logger) *Handler {
	return &Handler{scraper: scraper, logger: logger}
}

type scrapeRequest struct {
	Action string `json:"action"`
}

type successResponse struct {
	Success  bool               `json:"success"`
	Rows     []pagesift.Record  `json:"rows"`
	Meta     pagesift.Meta      `json:"meta"`
	Datasets []pagesift.Dataset `json:"datasets"`
}

type failureResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// ServeHTTP handles one SMART_SCRAPE exchange.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()
	w.Header().Set("X-Request-ID", requestID)
	logger := h.logger.With("request_id", requestID)

	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, failureResponse{Error: "method not allowed"})
		return
	}

	var req scrapeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, failureResponse{Error: "malformed request body"})
		return
	}
	if req.Action != ActionSmartScrape {
		writeJSON(w, http.StatusBadRequest, failureResponse{Error: "unsupported action"})
		return
	}

	begin := time.Now()
	result, err := h.scraper.Scrape(r.Context())
	if err != nil {
		logger.Error("scrape failed",
			"code", pagesift.ErrorCode(err),
			"duration", time.Since(begin),
			"err", err,
		)
		writeJSON(w, http.StatusInternalServerError, failureResponse{Error: pagesift.ErrorMessage(err)})
		return
	}

	logger.Info("scrape served",
		"datasets", len(result.Datasets),
		"best_rows", len(result.Rows),
		"duration", time.Since(begin),
	)
	writeJSON(w, http.StatusOK, successResponse{
		Success:  true,
		Rows:     nonNilRows(result.Rows),
		Meta:     result.Meta,
		Datasets: nonNilDatasets(result.Datasets),
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func nonNilRows(rows []pagesift.Record) []pagesift.Record {
	if rows == nil {
		return []pagesift.Record{}
	}
	return rows
}

func nonNilDatasets(ds []pagesift.Dataset) []pagesift.Dataset {
	if ds == nil {
		return []pagesift.Dataset{}
	}
	return ds
}
