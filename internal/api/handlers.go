package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/you-dian-tian/graphwalk/pkg/analyze"
	apperrors "github.com/you-dian-tian/graphwalk/pkg/errors"
	"github.com/you-dian-tian/graphwalk/pkg/store"
)

// maxBodyBytes bounds the edge-list request body. MaxVertices caps the
// graph itself, this just stops unbounded reads before parsing.
const maxBodyBytes = 1 << 20

// Handlers wires up all API endpoints.
type Handlers struct {
	runner *analyze.Runner
	store  store.Store
	logger *log.Logger
}

// NewHandlers creates the handler set. A nil store falls back to an
// in-memory one; a nil logger falls back to log.Default().
func NewHandlers(runner *analyze.Runner, st store.Store, logger *log.Logger) *Handlers {
	if st == nil {
		st = store.NewMemoryStore()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Handlers{runner: runner, store: st, logger: logger}
}

func (h *Handlers) healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// createReport analyzes the edge list in the request body and stores
// the result under a fresh id.
//
//	POST /reports?directed=false&start=3
//	body: "4\n1 2\n2 3\n3 1\n"
func (h *Handlers) createReport(w http.ResponseWriter, r *http.Request) {
	input, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeErr(w, http.StatusBadRequest, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "read body"))
		return
	}

	opts := analyze.Options{Directed: true}
	if v := r.URL.Query().Get("directed"); v != "" {
		directed, err := strconv.ParseBool(v)
		if err != nil {
			writeErr(w, http.StatusBadRequest, apperrors.New(apperrors.ErrCodeInvalidInput, "directed: %q is not a boolean", v))
			return
		}
		opts.Directed = directed
	}
	if v := r.URL.Query().Get("start"); v != "" {
		start, err := strconv.Atoi(v)
		if err != nil {
			writeErr(w, http.StatusBadRequest, apperrors.New(apperrors.ErrCodeInvalidInput, "start: %q is not an integer", v))
			return
		}
		opts.Start = start
	}

	rep, cached, err := h.runner.Analyze(r.Context(), input, opts)
	if err != nil {
		writeErr(w, http.StatusBadRequest, err)
		return
	}

	saved := store.SavedReport{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Report:    rep,
	}
	if err := h.store.Put(r.Context(), saved); err != nil {
		writeErr(w, http.StatusInternalServerError, err)
		return
	}

	h.logger.Debugf("report %s created (n=%d, cached=%t)", saved.ID, rep.N, cached)
	writeJSON(w, http.StatusCreated, saved)
}

// getReport fetches a previously stored report.
//
//	GET /reports/{id}
func (h *Handlers) getReport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	saved, err := h.store.Get(r.Context(), id)
	if err != nil {
		status := http.StatusInternalServerError
		if apperrors.Is(err, apperrors.ErrCodeNotFound) {
			status = http.StatusNotFound
		}
		writeErr(w, status, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

// errorResponse is the JSON error body shared by all endpoints.
type errorResponse struct {
	Error string         `json:"error"`
	Code  apperrors.Code `json:"code,omitempty"`
}

func writeErr(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{
		Error: apperrors.UserMessage(err),
		Code:  apperrors.GetCode(err),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
