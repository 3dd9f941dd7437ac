package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"shopscout-engine/internal/config"
	"shopscout-engine/internal/events"
	"shopscout-engine/internal/pipeline"
)

type SearchHandler struct {
	CfgVal      *atomic.Value // stores config.Config
	Hub         *events.Hub
	BuildEngine func(cfg config.Config) *pipeline.Engine
}

func (h SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req pipeline.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", "invalid JSON: "+err.Error())
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		WriteError(w, r, http.StatusBadRequest, "empty_query", "query is required")
		return
	}

	reqID := RequestIDFrom(r.Context())
	h.Hub.SearchStarted(reqID, req.Query)

	start := time.Now()
	cfg := h.CfgVal.Load().(config.Config)
	resp := h.BuildEngine(cfg).Search(r.Context(), req)

	h.Hub.SearchCompleted(reqID, len(resp.Results), resp.Debug.RawCount, time.Since(start).Milliseconds())
	WriteJSON(w, http.StatusOK, resp)
}
