package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"jobcart/internal/models"
	"jobcart/internal/server/storage"
	"jobcart/pkg/api"
)

// CartHandler handles the per-user cart routes of the shop service.
type CartHandler struct {
	logger   *slog.Logger
	carts    storage.CartStorage
	products storage.ProductStorage
}

// NewCartHandler creates a new handler for cart routes
func NewCartHandler(logger *slog.Logger, carts storage.CartStorage, products storage.ProductStorage) *CartHandler {
	return &CartHandler{
		logger:   logger,
		carts:    carts,
		products: products,
	}
}

// Add handles POST /cart/add/
// Adding a product already in the cart merges quantities. The merged
// quantity may not exceed the product's stock.
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	username, ok := GetUsername(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.CartAddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode cart request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := req.Validate(); err != nil {
		h.logger.WarnContext(ctx, "invalid cart request", slog.Any("error", err))
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	product, err := h.products.GetProductByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, storage.ErrProductNotFound) {
			h.logger.WarnContext(ctx, "product not found", slog.Int("product_id", req.ProductID))
			sendError(h.logger, w, "product not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get product", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	quantity := req.Quantity
	existing, err := h.carts.GetItem(ctx, username, req.ProductID)
	if err == nil {
		quantity += existing.Quantity
	} else if !errors.Is(err, storage.ErrCartItemNotFound) {
		h.logger.ErrorContext(ctx, "failed to get cart item", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	if quantity > product.Stock {
		h.logger.WarnContext(ctx, "insufficient stock",
			slog.Int("product_id", product.ID),
			slog.Int("requested", quantity),
			slog.Int("stock", product.Stock))
		sendError(h.logger, w, "insufficient stock", http.StatusBadRequest)
		return
	}

	item := &models.CartItem{
		Owner:     username,
		ProductID: req.ProductID,
		Quantity:  quantity,
	}

	if err := h.carts.SetItem(ctx, item); err != nil {
		h.logger.ErrorContext(ctx, "failed to save cart item", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "cart item added",
		slog.String("username", username),
		slog.Int("product_id", req.ProductID),
		slog.Int("quantity", quantity))

	resp := api.CartItemResponse{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  quantity,
	}

	sendJSON(h.logger, w, resp, http.StatusCreated)
}

// List handles GET /cart/
// Returns only the caller's cart, joined with product details.
func (h *CartHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	username, ok := GetUsername(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	items, err := h.carts.ListByOwner(ctx, username)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list cart", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := make([]api.CartItemResponse, 0, len(items))
	for _, item := range items {
		product, err := h.products.GetProductByID(ctx, item.ProductID)
		if err != nil {
			// Product removed from the catalog file out of band; skip the line.
			h.logger.WarnContext(ctx, "cart references unknown product",
				slog.Int("product_id", item.ProductID))
			continue
		}

		resp = append(resp, api.CartItemResponse{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  item.Quantity,
		})
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}
