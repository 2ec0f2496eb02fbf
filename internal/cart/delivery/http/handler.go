package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/badjuice/storefront/internal/cart/domain"
	"github.com/badjuice/storefront/internal/cart/usecase/command"
	"github.com/badjuice/storefront/internal/cart/usecase/query"
	"github.com/badjuice/storefront/pkg/httputil"
	"github.com/badjuice/storefront/pkg/logger"
)

// CartHandler handles HTTP requests for the session cart using CQRS pattern
type CartHandler struct {
	addHandler      *command.AddItemHandler
	updateHandler   *command.UpdateQuantityHandler
	removeHandler   *command.RemoveItemHandler
	checkoutHandler *command.CheckoutHandler

	getCartHandler *query.GetCartHandler

	repo           domain.CartRepository
	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	requestSummary *prometheus.SummaryVec
	cartLines      prometheus.Gauge
}

// NewCartHandlerWithDI creates a new cart handler using dependency injection.
// This is used by Wire for automatic dependency injection.
func NewCartHandlerWithDI(
	addHandler *command.AddItemHandler,
	updateHandler *command.UpdateQuantityHandler,
	removeHandler *command.RemoveItemHandler,
	checkoutHandler *command.CheckoutHandler,
	getCartHandler *query.GetCartHandler,
	repo domain.CartRepository,
) *CartHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_requests_total",
			Help: "Total number of requests to the cart",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cart_request_duration_seconds",
			Help:    "Duration of cart requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	requestSummary := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "cart_request_duration_summary",
			Help: "Summary of cart request durations with percentiles",
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

	cartLines := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cart_lines_total",
			Help: "Number of distinct product lines in the cart",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(requestSummary)
	prometheus.MustRegister(cartLines)

	return &CartHandler{
		addHandler:      addHandler,
		updateHandler:   updateHandler,
		removeHandler:   removeHandler,
		checkoutHandler: checkoutHandler,
		getCartHandler:  getCartHandler,
		repo:            repo,
		requestCounter:  requestCounter,
		requestLatency:  requestLatency,
		requestSummary:  requestSummary,
		cartLines:       cartLines,
	}
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *CartHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
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

func (h *CartHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/cart", h.metricsMiddleware("/api/cart", h.GetCart)).Methods("GET")
	router.HandleFunc("/api/cart/items", h.metricsMiddleware("/api/cart/items", h.AddItem)).Methods("POST")
	router.HandleFunc("/api/cart/items/{id}", h.metricsMiddleware("/api/cart/items/{id}", h.UpdateQuantity)).Methods("PATCH")
	router.HandleFunc("/api/cart/items/{id}", h.metricsMiddleware("/api/cart/items/{id}", h.RemoveItem)).Methods("DELETE")
	router.HandleFunc("/api/cart/checkout", h.metricsMiddleware("/api/cart/checkout", h.Checkout)).Methods("POST")
}

// GetCart handles GET /api/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	view := h.getCartHandler.Handle(query.GetCartQuery{})

	httputil.RespondJSON(w, http.StatusOK, httputil.Response{
		Success: true,
		Data:    view,
	})
}

// AddItem handles POST /api/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID int `json:"product_id"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.RespondJSON(w, http.StatusBadRequest, httputil.Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	if err := h.addHandler.Handle(command.AddItemCommand{ProductID: req.ProductID}); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to add cart item")
		httputil.RespondJSON(w, http.StatusBadRequest, httputil.Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	h.cartLines.Set(float64(h.repo.LineCount()))

	httputil.RespondJSON(w, http.StatusOK, httputil.Response{
		Success: true,
		Message: "Item added to cart",
	})
}

// UpdateQuantity handles PATCH /api/cart/items/{id}
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		httputil.RespondJSON(w, http.StatusBadRequest, httputil.Response{
			Success: false,
			Error:   "Invalid product ID",
		})
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.RespondJSON(w, http.StatusBadRequest, httputil.Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.UpdateQuantityCommand{ProductID: id, Quantity: req.Quantity}
	if err := h.updateHandler.Handle(cmd); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to update cart quantity")
		httputil.RespondJSON(w, http.StatusBadRequest, httputil.Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	h.cartLines.Set(float64(h.repo.LineCount()))

	httputil.RespondJSON(w, http.StatusOK, httputil.Response{
		Success: true,
		Message: "Quantity updated",
	})
}

// RemoveItem handles DELETE /api/cart/items/{id}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		httputil.RespondJSON(w, http.StatusBadRequest, httputil.Response{
			Success: false,
			Error:   "Invalid product ID",
		})
		return
	}

	if err := h.removeHandler.Handle(command.RemoveItemCommand{ProductID: id}); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to remove cart item")
		httputil.RespondJSON(w, http.StatusBadRequest, httputil.Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	h.cartLines.Set(float64(h.repo.LineCount()))

	httputil.RespondJSON(w, http.StatusOK, httputil.Response{
		Success: true,
		Message: "Item removed from cart",
	})
}

// Checkout handles POST /api/cart/checkout
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name    string `json:"name"`
		Phone   string `json:"phone"`
		Address string `json:"address"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.RespondJSON(w, http.StatusBadRequest, httputil.Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.CheckoutCommand{Name: req.Name, Phone: req.Phone, Address: req.Address}
	result, err := h.checkoutHandler.Handle(cmd)
	if err != nil {
		httputil.RespondJSON(w, http.StatusBadRequest, httputil.Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	httputil.RespondJSON(w, http.StatusOK, httputil.Response{
		Success: true,
		Message: "Order submitted",
		Data:    result,
	})
}
