package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/badjuice/storefront/internal/catalog/domain"
	"github.com/badjuice/storefront/internal/catalog/usecase/query"
	"github.com/badjuice/storefront/pkg/httputil"
)

// CatalogHandler handles HTTP requests for the shop view
type CatalogHandler struct {
	listHandler *query.ListCatalogHandler
	getHandler  *query.GetProductHandler

	repo           domain.CatalogRepository
	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	requestSummary *prometheus.SummaryVec
	catalogSize    prometheus.Gauge
}

// NewCatalogHandler creates a new catalog handler (manual DI)
func NewCatalogHandler(repo domain.CatalogRepository, ratings domain.RatingSource) *CatalogHandler {
	return NewCatalogHandlerWithDI(
		query.NewListCatalogHandler(repo, ratings),
		query.NewGetProductHandler(repo, ratings),
		repo,
	)
}

// NewCatalogHandlerWithDI creates a new catalog handler using dependency injection.
// This is used by Wire for automatic dependency injection.
func NewCatalogHandlerWithDI(
	listHandler *query.ListCatalogHandler,
	getHandler *query.GetProductHandler,
	repo domain.CatalogRepository,
) *CatalogHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_requests_total",
			Help: "Total number of requests to the catalog",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_request_duration_seconds",
			Help:    "Duration of catalog requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	requestSummary := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "catalog_request_duration_summary",
			Help: "Summary of catalog request durations with percentiles",
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

	catalogSize := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_products_total",
			Help: "Number of products in the catalog",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(requestSummary)
	prometheus.MustRegister(catalogSize)

	catalogSize.Set(float64(repo.Count()))

	return &CatalogHandler{
		listHandler:    listHandler,
		getHandler:     getHandler,
		repo:           repo,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
		requestSummary: requestSummary,
		catalogSize:    catalogSize,
	}
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *CatalogHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
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

func (h *CatalogHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/catalog", h.metricsMiddleware("/api/catalog", h.ListCatalog)).Methods("GET")
	router.HandleFunc("/api/catalog/{id}", h.metricsMiddleware("/api/catalog/{id}", h.GetProduct)).Methods("GET")
}

// ListCatalog handles GET /api/catalog
func (h *CatalogHandler) ListCatalog(w http.ResponseWriter, r *http.Request) {
	q := query.ListCatalogQuery{}

	if category := r.URL.Query().Get("category"); category != "" && category != "all" {
		q.Category = domain.Category(category)
		if !q.Category.IsValid() {
			httputil.RespondJSON(w, http.StatusBadRequest, httputil.Response{
				Success: false,
				Error:   "Unknown category",
			})
			return
		}
	}

	if minRating := r.URL.Query().Get("min_rating"); minRating != "" && minRating != "all" {
		value, err := strconv.ParseFloat(minRating, 64)
		if err != nil {
			httputil.RespondJSON(w, http.StatusBadRequest, httputil.Response{
				Success: false,
				Error:   "Invalid minimum rating",
			})
			return
		}
		q.MinRating = value
	}

	products := h.listHandler.Handle(q)

	httputil.RespondJSON(w, http.StatusOK, httputil.Response{
		Success: true,
		Data: map[string]interface{}{
			"products": products,
			"total":    len(products),
		},
	})
}

// GetProduct handles GET /api/catalog/{id}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		httputil.RespondJSON(w, http.StatusBadRequest, httputil.Response{
			Success: false,
			Error:   "Invalid product ID",
		})
		return
	}

	product, err := h.getHandler.Handle(query.GetProductQuery{ID: id})
	if err != nil {
		httputil.RespondJSON(w, http.StatusNotFound, httputil.Response{
			Success: false,
			Error:   "Product not found",
		})
		return
	}

	httputil.RespondJSON(w, http.StatusOK, httputil.Response{
		Success: true,
		Data:    product,
	})
}
