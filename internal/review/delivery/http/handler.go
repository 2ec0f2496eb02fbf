package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/badjuice/storefront/internal/review/domain"
	"github.com/badjuice/storefront/internal/review/usecase/command"
	"github.com/badjuice/storefront/internal/review/usecase/query"
	"github.com/badjuice/storefront/pkg/httputil"
	"github.com/badjuice/storefront/pkg/logger"
)

// ReviewHandler handles HTTP requests for product reviews using CQRS pattern
type ReviewHandler struct {
	submitHandler *command.SubmitReviewHandler

	listHandler    *query.ListReviewsHandler
	summaryHandler *query.GetSummaryHandler

	repo           domain.ReviewRepository
	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	requestSummary *prometheus.SummaryVec
	totalReviews   prometheus.Gauge
}

// NewReviewHandler creates a new review handler (manual DI)
func NewReviewHandler(repo domain.ReviewRepository) *ReviewHandler {
	return NewReviewHandlerWithDI(
		command.NewSubmitReviewHandler(repo),
		query.NewListReviewsHandler(repo),
		query.NewGetSummaryHandler(repo),
		repo,
	)
}

// NewReviewHandlerWithDI creates a new review handler using dependency injection.
// This is used by Wire for automatic dependency injection.
func NewReviewHandlerWithDI(
	submitHandler *command.SubmitReviewHandler,
	listHandler *query.ListReviewsHandler,
	summaryHandler *query.GetSummaryHandler,
	repo domain.ReviewRepository,
) *ReviewHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "review_requests_total",
			Help: "Total number of requests to the review store",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "review_request_duration_seconds",
			Help:    "Duration of review requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	requestSummary := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "review_request_duration_summary",
			Help: "Summary of review request durations with percentiles",
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.95: 0.01,
				0.99: 0.001,
			},
			MaxAge: 10 * time.Minute,
		},
		[]string{"method", "endpoint"},
	)

	totalReviews := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "review_store_reviews_total",
			Help: "Total number of stored reviews",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(requestSummary)
	prometheus.MustRegister(totalReviews)

	return &ReviewHandler{
		submitHandler:  submitHandler,
		listHandler:    listHandler,
		summaryHandler: summaryHandler,
		repo:           repo,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
		requestSummary: requestSummary,
		totalReviews:   totalReviews,
	}
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *ReviewHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := httputil.NewStatusWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.StatusCode())).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestSummary.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

func (h *ReviewHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/catalog/{id}/reviews", h.metricsMiddleware("/api/catalog/{id}/reviews", h.ListReviews)).Methods("GET")
	router.HandleFunc("/api/catalog/{id}/rating", h.metricsMiddleware("/api/catalog/{id}/rating", h.GetRating)).Methods("GET")
	router.HandleFunc("/api/reviews", h.metricsMiddleware("/api/reviews", h.SubmitReview)).Methods("POST")
}

// SubmitReview handles POST /api/reviews
func (h *ReviewHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID int    `json:"product_id"`
		Author    string `json:"author"`
		Rating    int    `json:"rating"`
		Comment   string `json:"comment"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.RespondJSON(w, http.StatusBadRequest, httputil.Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.SubmitReviewCommand{
		ProductID: req.ProductID,
		Author:    req.Author,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}

	review, err := h.submitHandler.Handle(cmd)
	if err != nil {
		logger.Logger.Warn().Err(err).Int("product_id", req.ProductID).Msg("Review rejected")
		httputil.RespondJSON(w, http.StatusBadRequest, httputil.Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	h.totalReviews.Set(float64(h.repo.Count()))

	httputil.RespondJSON(w, http.StatusCreated, httputil.Response{
		Success: true,
		Message: "Review submitted successfully",
		Data:    review,
	})
}

// ListReviews handles GET /api/catalog/{id}/reviews
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		httputil.RespondJSON(w, http.StatusBadRequest, httputil.Response{
			Success: false,
			Error:   "Invalid product ID",
		})
		return
	}

	reviews := h.listHandler.Handle(query.ListReviewsQuery{ProductID: id})

	httputil.RespondJSON(w, http.StatusOK, httputil.Response{
		Success: true,
		Data: map[string]interface{}{
			"reviews": reviews,
			"total":   len(reviews),
		},
	})
}

// GetRating handles GET /api/catalog/{id}/rating
func (h *ReviewHandler) GetRating(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		httputil.RespondJSON(w, http.StatusBadRequest, httputil.Response{
			Success: false,
			Error:   "Invalid product ID",
		})
		return
	}

	summary := h.summaryHandler.Handle(query.GetSummaryQuery{ProductID: id})

	httputil.RespondJSON(w, http.StatusOK, httputil.Response{
		Success: true,
		Data:    summary,
	})
}
