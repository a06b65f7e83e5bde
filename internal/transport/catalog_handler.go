package transport

import (
	"errors"
	"net/http"

	"club-merch/internal/domain"
	"club-merch/internal/middleware"
	"club-merch/internal/repository"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// StorefrontResponse is a club together with its active product range.
type StorefrontResponse struct {
	Club     *domain.Club      `json:"club"`
	Products []*domain.Product `json:"products"`
}

// CatalogHandler serves the storefront's read-only catalog routes.
type CatalogHandler struct {
	products repository.ProductRepository
	clubs    repository.ClubRepository
	logger   *zap.Logger
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(products repository.ProductRepository, clubs repository.ClubRepository, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		products: products,
		clubs:    clubs,
		logger:   logger,
	}
}

// RegisterRoutes registers all catalog routes
func (h *CatalogHandler) RegisterRoutes(r chi.Router) {
	r.Get("/api/categories", h.ListCategories)
	r.Route("/api/store/{clubSlug}", func(r chi.Router) {
		r.Get("/", h.Storefront)
		r.Get("/categories/{categoryID}", h.StorefrontCategory)
		r.Get("/products/{productID}", h.ProductDetail)
	})
}

// ListCategories returns the category tabs shared by every storefront.
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.products.Categories(r.Context())
	if err != nil {
		h.logger.Error("Failed to list categories", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to list categories")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, categories)
}

// Storefront returns a club and its full active product range. An unknown
// slug is a plain not-found outcome, never an error the client must parse.
func (h *CatalogHandler) Storefront(w http.ResponseWriter, r *http.Request) {
	club, ok := h.resolveClub(w, r)
	if !ok {
		return
	}

	products, err := h.products.ListByIDs(r.Context(), club.ActiveProductIDs)
	if err != nil {
		h.logger.Error("Failed to list club products", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to load storefront")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, StorefrontResponse{Club: club, Products: products})
}

// StorefrontCategory returns the club's products within one category.
func (h *CatalogHandler) StorefrontCategory(w http.ResponseWriter, r *http.Request) {
	club, ok := h.resolveClub(w, r)
	if !ok {
		return
	}

	categoryID := chi.URLParam(r, "categoryID")
	if _, err := h.products.FindCategory(r.Context(), categoryID); err != nil {
		middleware.RespondWithError(w, http.StatusNotFound, "category not found")
		return
	}

	inCategory, err := h.products.ListByCategory(r.Context(), categoryID)
	if err != nil {
		h.logger.Error("Failed to list category products", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to load category")
		return
	}

	// Keep only what the club actually sells.
	products := []*domain.Product{}
	for _, p := range inCategory {
		if club.Sells(p.ID) {
			products = append(products, p)
		}
	}

	middleware.RespondWithJSON(w, http.StatusOK, StorefrontResponse{Club: club, Products: products})
}

// ProductDetail returns one product within a club's store.
func (h *CatalogHandler) ProductDetail(w http.ResponseWriter, r *http.Request) {
	club, ok := h.resolveClub(w, r)
	if !ok {
		return
	}

	productID := chi.URLParam(r, "productID")
	if !club.Sells(productID) {
		middleware.RespondWithError(w, http.StatusNotFound, "product not found")
		return
	}

	product, err := h.products.FindByID(r.Context(), productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "product not found")
			return
		}
		h.logger.Error("Failed to load product", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to load product")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, product)
}

func (h *CatalogHandler) resolveClub(w http.ResponseWriter, r *http.Request) (*domain.Club, bool) {
	slug := chi.URLParam(r, "clubSlug")
	club, err := h.clubs.FindBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, repository.ErrClubNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "club not found")
			return nil, false
		}
		h.logger.Error("Failed to load club", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to load club")
		return nil, false
	}
	return club, true
}
