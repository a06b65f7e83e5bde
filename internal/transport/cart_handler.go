package transport

import (
	"errors"
	"net/http"

	"club-merch/internal/domain"
	"club-merch/internal/middleware"
	"club-merch/internal/repository"
	"club-merch/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AddItemRequest represents the add-to-cart request payload. The handler
// snapshots name, price and image from the catalog; clients never supply
// prices.
type AddItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Size      string `json:"size" validate:"required"`
	Variant   string `json:"variant" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gte=1"`
}

// UpdateQuantityRequest represents the quantity update payload. Zero is
// allowed and removes the line.
type UpdateQuantityRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Size      string `json:"size" validate:"required"`
	Variant   string `json:"variant" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gte=0"`
}

// CartResponse is the cart with its derived totals.
type CartResponse struct {
	Items      []domain.CartItem `json:"items"`
	TotalItems int               `json:"totalItems"`
	TotalPrice int               `json:"totalPrice"`
}

func newCartResponse(cart *domain.Cart) CartResponse {
	items := cart.Items
	if items == nil {
		items = []domain.CartItem{}
	}
	return CartResponse{
		Items:      items,
		TotalItems: cart.TotalItems(),
		TotalPrice: cart.TotalPrice(),
	}
}

// CartHandler handles HTTP requests for the shopping cart
type CartHandler struct {
	carts    service.CartService
	products repository.ProductRepository
	logger   *zap.Logger
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(carts service.CartService, products repository.ProductRepository, logger *zap.Logger) *CartHandler {
	return &CartHandler{
		carts:    carts,
		products: products,
		logger:   logger,
	}
}

// RegisterRoutes registers all cart routes
func (h *CartHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/cart", func(r chi.Router) {
		r.Get("/", h.GetCart)
		r.Post("/items", h.AddItem)
		r.Put("/items", h.UpdateQuantity)
		r.Delete("/items", h.RemoveItem)
		r.Delete("/", h.ClearCart)
	})
}

// GetCart returns the session's cart with derived totals.
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.GetCartToken(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusBadRequest, "missing cart session")
		return
	}

	cart := h.carts.Get(r.Context(), token)
	middleware.RespondWithJSON(w, http.StatusOK, newCartResponse(cart))
}

// AddItem merges a catalog product into the cart, snapshotting its display
// fields and price at add time.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.GetCartToken(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusBadRequest, "missing cart session")
		return
	}

	var req AddItemRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Add item validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := h.products.FindByID(r.Context(), req.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "product not found")
			return
		}
		h.logger.Error("Failed to load product", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to add item")
		return
	}

	variant, ok := findVariant(product, req.Variant)
	if !ok {
		middleware.RespondWithError(w, http.StatusBadRequest, "unknown variant")
		return
	}
	if !hasSize(product, req.Size) {
		middleware.RespondWithError(w, http.StatusBadRequest, "unknown size")
		return
	}

	item := domain.CartItem{
		ProductID:    product.ID,
		ProductName:  product.Name,
		Size:         req.Size,
		Variant:      variant.Name,
		VariantColor: variant.Color,
		Quantity:     req.Quantity,
		Price:        product.Price,
		Image:        product.Image,
	}

	cart, err := h.carts.AddItem(r.Context(), token, item)
	if err != nil {
		h.logger.Error("Failed to add cart item", zap.Error(err))
		middleware.RespondWithError(w, http.StatusBadRequest, "failed to add item")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, newCartResponse(cart))
}

// UpdateQuantity replaces a line's quantity; zero removes the line.
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.GetCartToken(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusBadRequest, "missing cart session")
		return
	}

	var req UpdateQuantityRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Update quantity validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cart := h.carts.UpdateQuantity(r.Context(), token, req.ProductID, req.Size, req.Variant, req.Quantity)
	middleware.RespondWithJSON(w, http.StatusOK, newCartResponse(cart))
}

// RemoveItem deletes the line named by the productId, size and variant
// query parameters. Removing an absent line succeeds.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.GetCartToken(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusBadRequest, "missing cart session")
		return
	}

	q := r.URL.Query()
	productID := q.Get("productId")
	if productID == "" {
		middleware.RespondWithError(w, http.StatusBadRequest, "productId is required")
		return
	}

	cart := h.carts.RemoveItem(r.Context(), token, productID, q.Get("size"), q.Get("variant"))
	middleware.RespondWithJSON(w, http.StatusOK, newCartResponse(cart))
}

// ClearCart empties the session's cart.
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.GetCartToken(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusBadRequest, "missing cart session")
		return
	}

	h.carts.Clear(r.Context(), token)
	middleware.RespondWithJSON(w, http.StatusOK, newCartResponse(&domain.Cart{}))
}

func findVariant(product *domain.Product, id string) (domain.ProductVariant, bool) {
	for _, v := range product.Variants {
		if v.ID == id {
			return v, true
		}
	}
	return domain.ProductVariant{}, false
}

func hasSize(product *domain.Product, size string) bool {
	for _, s := range product.Sizes {
		if s == size {
			return true
		}
	}
	return false
}
