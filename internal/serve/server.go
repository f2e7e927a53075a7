// Package serve maps the tool registry onto HTTP. It is deliberately thin:
// every route translates query or body parameters into tool arguments,
// dispatches, and serialises the result, so REST clients and ATP clients
// always see the same behavior.
package serve

import (
	"encoding/json"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/anthropics/og/internal/model"
	"github.com/anthropics/og/internal/rag"
	"github.com/anthropics/og/internal/state"
	"github.com/anthropics/og/internal/tools"
)

// maxBodyBytes caps request bodies; batch payloads stay far below this.
const maxBodyBytes = 10 << 20

// safeID constrains path-supplied identifiers. Anything else is rejected
// with a generic 400 so malformed input is never reflected back.
var safeID = regexp.MustCompile(`^[A-Za-z0-9_-]{1,128}$`)

// Server is the REST adapter over one graph state service.
type Server struct {
	state      *state.Service
	dispatcher *tools.Dispatcher
	retriever  *rag.Retriever
	logger     *zap.Logger
}

// NewServer wires the adapter. A nil logger disables logging.
func NewServer(svc *state.Service, d *tools.Dispatcher, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		state:      svc,
		dispatcher: d,
		retriever:  rag.NewRetriever(),
		logger:     logger,
	}
}

// Handler returns the chi router with every route mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Get("/", s.handleIndex)
	r.Get("/health", s.handleHealth)
	r.Get("/statistics", s.handleStatistics)
	r.Get("/entities", s.handleListEntities)
	r.Get("/entities/{id}", s.handleGetEntity)
	r.Get("/entities/{id}/neighbors", s.handleGetNeighbors)
	r.Get("/path/{src}/{tgt}", s.handleShortestPath)
	r.Get("/blast-radius/{id}", s.handleBlastRadius)
	r.Get("/centrality", s.handleCentrality)
	r.Get("/search", s.handleSearch)
	r.Post("/ask", s.handleAsk)
	r.Post("/load", s.handleLoad)
	r.Get("/openai/tools", s.handleOpenAITools)
	r.Post("/openai/call", s.handleOpenAICall)
	r.Post("/relationships", s.handleAddRelationship)
	r.Post("/relationships/batch", s.handleAddRelationshipsBatch)
	r.Delete("/relationships/{id}", s.handleRemoveRelationship)

	return r
}

// ListenAndServe blocks serving the router on addr.
func (s *Server) ListenAndServe(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	s.logger.Info("rest server listening", zap.String("addr", addr))
	return srv.ListenAndServe()
}

// apiError is the error half of a response body, shared by every route.
type apiError struct {
	Kind    model.ErrorKind        `json:"kind"`
	Message string                 `json:"message"`
	Items   []model.BatchItemError `json:"items,omitempty"`
}

func statusFor(kind model.ErrorKind) int {
	switch kind {
	case model.ErrValidation:
		return http.StatusBadRequest
	case model.ErrNotFound:
		return http.StatusNotFound
	case model.ErrNoGraphLoaded:
		return http.StatusConflict
	case model.ErrSchemaViolation, model.ErrBatchRejected:
		return http.StatusUnprocessableEntity
	case model.ErrUnsupported:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("write response failed", zap.Error(err))
	}
}

// writeError maps the error taxonomy onto HTTP statuses. Internal errors
// get a generic body; everything else carries the model message, which
// never contains raw input.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	e := model.AsError(err)
	msg := e.Message
	if e.Kind == model.ErrInternal {
		msg = "internal error"
	}
	s.writeJSON(w, statusFor(e.Kind), map[string]any{
		"error": &apiError{Kind: e.Kind, Message: msg, Items: e.Items},
	})
}

// call dispatches one tool and writes whichever half comes back.
func (s *Server) call(w http.ResponseWriter, tool string, args map[string]any) {
	result, err := s.dispatcher.Call(tool, args)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

// pathID extracts and validates a path-supplied identifier. On failure it
// writes the generic 400 itself.
func (s *Server) pathID(w http.ResponseWriter, r *http.Request, key string) (string, bool) {
	id := chi.URLParam(r, key)
	if !safeID.MatchString(id) {
		s.writeError(w, model.Validationf("invalid id format"))
		return "", false
	}
	return id, true
}

// setQueryString copies a non-empty query parameter into the argument map.
func setQueryString(args map[string]any, r *http.Request, param, arg string) {
	if v := r.URL.Query().Get(param); v != "" {
		args[arg] = v
	}
}

// setQueryInt parses an integer query parameter into the argument map.
// Arguments travel as float64 to match the JSON number handling of the
// other transports.
func setQueryInt(args map[string]any, r *http.Request, param, arg string) error {
	v := r.URL.Query().Get(param)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return model.Validationf("query parameter %q must be an integer", param)
	}
	args[arg] = float64(n)
	return nil
}

// decodeBody decodes a JSON request body into dst without echoing the raw
// payload on failure.
func decodeBody(r *http.Request, dst any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(dst); err != nil {
		return model.Validationf("malformed request body")
	}
	return nil
}
