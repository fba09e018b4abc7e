package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"jobcart/internal/models"
	"jobcart/internal/server/storage"
	"jobcart/pkg/api"
)

// ProductsHandler handles the catalog routes of the shop service.
// Listing is public; creation is reachable only through the admin role
// gate in the router.
type ProductsHandler struct {
	logger   *slog.Logger
	products storage.ProductStorage
}

// NewProductsHandler creates a new handler for product routes
func NewProductsHandler(logger *slog.Logger, products storage.ProductStorage) *ProductsHandler {
	return &ProductsHandler{
		logger:   logger,
		products: products,
	}
}

// List handles GET /products/
func (h *ProductsHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	products, err := h.products.ListProducts(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list products", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := make([]api.ProductResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, toProductResponse(p))
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// Create handles POST /admin/add_product/
func (h *ProductsHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.ProductCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode product request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := req.Validate(); err != nil {
		h.logger.WarnContext(ctx, "invalid product request", slog.Any("error", err))
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
	}

	if err := h.products.CreateProduct(ctx, product); err != nil {
		h.logger.ErrorContext(ctx, "failed to create product", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "product created",
		slog.Int("product_id", product.ID),
		slog.String("name", product.Name))

	sendJSON(h.logger, w, toProductResponse(product), http.StatusCreated)
}

func toProductResponse(p *models.Product) api.ProductResponse {
	return api.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
	}
}
