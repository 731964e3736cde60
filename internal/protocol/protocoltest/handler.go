package protocoltest

import (
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-uo-client/internal/logger"
	"github.com/MKhiriev/go-uo-client/models"
)

// ProcessDataRoute is the URL pattern of the ProcessData endpoint.
const ProcessDataRoute = "/1.0/{apiKey}/ProcessData/{requestID}"

// Handler serves a [Service] over HTTP the way the remote endpoint lays out
// its URLs.
type Handler struct {
	svc    *Service
	calls  atomic.Int32
	logger *logger.Logger

	// Intercept, when set, runs before the service. Returning false means the
	// response was already written.
	Intercept func(w http.ResponseWriter, r *http.Request, call int) bool
}

// NewHandler wraps svc. A nil log discards request logs.
func NewHandler(svc *Service, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	return &Handler{svc: svc, logger: log}
}

// Calls returns how many ProcessData requests reached the handler.
func (h *Handler) Calls() int { return int(h.calls.Load()) }

// Init builds the router.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withLogging)

	router.Post(ProcessDataRoute, h.processData)

	// unknown methods on a known route look like unknown routes
	router.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	return router
}

func (h *Handler) processData(w http.ResponseWriter, r *http.Request) {
	call := int(h.calls.Add(1))
	if h.Intercept != nil && !h.Intercept(w, r, call) {
		return
	}

	if chi.URLParam(r, "apiKey") != h.svc.UO.APIKey {
		http.Error(w, "unknown api key", http.StatusUnauthorized)
		return
	}

	var req models.ProcessDataRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Nonce != chi.URLParam(r, "requestID") {
		http.Error(w, "nonce does not match request id", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(h.svc.Respond(req))
}

func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		h.logger.Debug().
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Int("size", ww.BytesWritten()).
			Send()
	})
}
