package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/badjuice/storefront/internal/playback/usecase/command"
	"github.com/badjuice/storefront/internal/playback/usecase/query"
	"github.com/badjuice/storefront/pkg/httputil"
)

// PlayerHandler handles HTTP requests for the playback panel using CQRS pattern.
// The SPA forwards its audio element notifications to the events endpoints.
type PlayerHandler struct {
	selectHandler   *command.SelectTrackHandler
	toggleHandler   *command.TogglePlayHandler
	nextHandler     *command.SkipNextHandler
	previousHandler *command.SkipPreviousHandler
	timeHandler     *command.ReportTimeHandler
	metadataHandler *command.ReportMetadataHandler
	endedHandler    *command.TrackEndedHandler

	stateHandler *query.GetStateHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	trackSwitches  prometheus.Counter
}

// NewPlayerHandlerWithDI creates a new player handler using dependency injection.
// This is used by Wire for automatic dependency injection.
func NewPlayerHandlerWithDI(
	selectHandler *command.SelectTrackHandler,
	toggleHandler *command.TogglePlayHandler,
	nextHandler *command.SkipNextHandler,
	previousHandler *command.SkipPreviousHandler,
	timeHandler *command.ReportTimeHandler,
	metadataHandler *command.ReportMetadataHandler,
	endedHandler *command.TrackEndedHandler,
	stateHandler *query.GetStateHandler,
) *PlayerHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "player_requests_total",
			Help: "Total number of requests to the player",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "player_request_duration_seconds",
			Help:    "Duration of player requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	trackSwitches := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "player_track_switches_total",
			Help: "Number of track selections, including skips and auto-advance",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(trackSwitches)

	return &PlayerHandler{
		selectHandler:   selectHandler,
		toggleHandler:   toggleHandler,
		nextHandler:     nextHandler,
		previousHandler: previousHandler,
		timeHandler:     timeHandler,
		metadataHandler: metadataHandler,
		endedHandler:    endedHandler,
		stateHandler:    stateHandler,
		requestCounter:  requestCounter,
		requestLatency:  requestLatency,
		trackSwitches:   trackSwitches,
	}
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *PlayerHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := httputil.NewStatusWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.StatusCode())).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

func (h *PlayerHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/player", h.metricsMiddleware("/api/player", h.GetState)).Methods("GET")
	router.HandleFunc("/api/player/select", h.metricsMiddleware("/api/player/select", h.SelectTrack)).Methods("POST")
	router.HandleFunc("/api/player/toggle", h.metricsMiddleware("/api/player/toggle", h.TogglePlay)).Methods("POST")
	router.HandleFunc("/api/player/next", h.metricsMiddleware("/api/player/next", h.SkipNext)).Methods("POST")
	router.HandleFunc("/api/player/previous", h.metricsMiddleware("/api/player/previous", h.SkipPrevious)).Methods("POST")
	router.HandleFunc("/api/player/events/time", h.metricsMiddleware("/api/player/events/time", h.ReportTime)).Methods("POST")
	router.HandleFunc("/api/player/events/metadata", h.metricsMiddleware("/api/player/events/metadata", h.ReportMetadata)).Methods("POST")
	router.HandleFunc("/api/player/events/ended", h.metricsMiddleware("/api/player/events/ended", h.TrackEnded)).Methods("POST")
}

// GetState handles GET /api/player
func (h *PlayerHandler) GetState(w http.ResponseWriter, r *http.Request) {
	view := h.stateHandler.Handle(query.GetStateQuery{})

	httputil.RespondJSON(w, http.StatusOK, httputil.Response{
		Success: true,
		Data:    view,
	})
}

// SelectTrack handles POST /api/player/select
func (h *PlayerHandler) SelectTrack(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Index int `json:"index"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.RespondJSON(w, http.StatusBadRequest, httputil.Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	h.selectHandler.Handle(command.SelectTrackCommand{Index: req.Index})
	h.trackSwitches.Inc()

	h.respondState(w)
}

// TogglePlay handles POST /api/player/toggle
func (h *PlayerHandler) TogglePlay(w http.ResponseWriter, r *http.Request) {
	h.toggleHandler.Handle(command.TogglePlayCommand{})
	h.respondState(w)
}

// SkipNext handles POST /api/player/next
func (h *PlayerHandler) SkipNext(w http.ResponseWriter, r *http.Request) {
	h.nextHandler.Handle(command.SkipNextCommand{})
	h.trackSwitches.Inc()
	h.respondState(w)
}

// SkipPrevious handles POST /api/player/previous
func (h *PlayerHandler) SkipPrevious(w http.ResponseWriter, r *http.Request) {
	h.previousHandler.Handle(command.SkipPreviousCommand{})
	h.trackSwitches.Inc()
	h.respondState(w)
}

// ReportTime handles POST /api/player/events/time
func (h *PlayerHandler) ReportTime(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Position float64 `json:"position"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.RespondJSON(w, http.StatusBadRequest, httputil.Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	h.timeHandler.Handle(command.ReportTimeCommand{Position: req.Position})

	httputil.RespondJSON(w, http.StatusOK, httputil.Response{Success: true})
}

// ReportMetadata handles POST /api/player/events/metadata
func (h *PlayerHandler) ReportMetadata(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Duration float64 `json:"duration"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.RespondJSON(w, http.StatusBadRequest, httputil.Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	h.metadataHandler.Handle(command.ReportMetadataCommand{Duration: req.Duration})

	httputil.RespondJSON(w, http.StatusOK, httputil.Response{Success: true})
}

// TrackEnded handles POST /api/player/events/ended
func (h *PlayerHandler) TrackEnded(w http.ResponseWriter, r *http.Request) {
	h.endedHandler.Handle(command.TrackEndedCommand{})
	h.respondState(w)
}

func (h *PlayerHandler) respondState(w http.ResponseWriter) {
	view := h.stateHandler.Handle(query.GetStateQuery{})
	httputil.RespondJSON(w, http.StatusOK, httputil.Response{
		Success: true,
		Data:    view,
	})
}
