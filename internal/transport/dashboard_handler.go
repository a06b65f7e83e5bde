package transport

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"club-merch/internal/domain"
	"club-merch/internal/middleware"
	"club-merch/internal/repository"
	"club-merch/internal/service"

	"github.com/go-chi/chi/v5"
	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

const (
	defaultQRSize = 160
	maxQRSize     = 1024
)

// DashboardHandler serves the staff and club analytics views. Every route
// requires an authenticated session; club admins are pinned to their own
// club while platform staff may aggregate across all of them.
type DashboardHandler struct {
	analytics service.AnalyticsService
	clubs     repository.ClubRepository
	baseURL   string
	now       func() time.Time
	logger    *zap.Logger
}

// NewDashboardHandler creates a new DashboardHandler. now is injected so
// period filtering stays deterministic in tests.
func NewDashboardHandler(
	analytics service.AnalyticsService,
	clubs repository.ClubRepository,
	baseURL string,
	now func() time.Time,
	logger *zap.Logger,
) *DashboardHandler {
	return &DashboardHandler{
		analytics: analytics,
		clubs:     clubs,
		baseURL:   baseURL,
		now:       now,
		logger:    logger,
	}
}

// RegisterRoutes registers all dashboard routes behind the auth middleware.
func (h *DashboardHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/dashboard", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/summary", h.Summary)
		r.Get("/orders", h.Orders)
		r.Get("/store-qr", h.StoreQR)
	})
}

// Summary returns revenue, order count, category breakdown and top products
// for the requested period.
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	user, clubID, period, ok := h.scopeRequest(w, r)
	if !ok {
		return
	}

	summary, err := h.analytics.Summarize(r.Context(), period, clubID, h.now())
	if err != nil {
		h.logger.Error("Failed to build dashboard summary",
			zap.Error(err),
			zap.String("username", user.Username),
		)
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to build summary")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, summary)
}

// Orders returns the period's order list, newest first.
func (h *DashboardHandler) Orders(w http.ResponseWriter, r *http.Request) {
	user, clubID, period, ok := h.scopeRequest(w, r)
	if !ok {
		return
	}

	orders, err := h.analytics.Orders(r.Context(), period, clubID, h.now())
	if err != nil {
		h.logger.Error("Failed to list dashboard orders",
			zap.Error(err),
			zap.String("username", user.Username),
		)
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to list orders")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, orders)
}

// StoreQR renders the club's storefront link as a PNG QR code, colored with
// the club's primary color. The core only builds the URL; the encoding is
// delegated to the QR library.
func (h *DashboardHandler) StoreQR(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	clubID, ok := middleware.ScopeClub(user, r.URL.Query().Get("club"))
	if !ok {
		middleware.RespondWithError(w, http.StatusForbidden, "insufficient permissions")
		return
	}
	if clubID == "" {
		middleware.RespondWithError(w, http.StatusBadRequest, "club is required")
		return
	}

	club, err := h.clubs.FindByID(r.Context(), clubID)
	if err != nil {
		if errors.Is(err, repository.ErrClubNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "club not found")
			return
		}
		h.logger.Error("Failed to load club", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to load club")
		return
	}

	size := defaultQRSize
	if raw := r.URL.Query().Get("size"); raw != "" {
		parsed, perr := strconv.Atoi(raw)
		if perr != nil || parsed < 1 || parsed > maxQRSize {
			middleware.RespondWithError(w, http.StatusBadRequest, "invalid size")
			return
		}
		size = parsed
	}

	url := service.StoreLink(h.baseURL, club.Slug)

	qr, err := qrcode.New(url, qrcode.Medium)
	if err != nil {
		h.logger.Error("Failed to encode QR code", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to encode QR code")
		return
	}
	if fg, perr := parseHexColor(club.PrimaryColor); perr == nil {
		qr.ForegroundColor = fg
	}

	png, err := qr.PNG(size)
	if err != nil {
		h.logger.Error("Failed to render QR code", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to render QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// scopeRequest resolves the authenticated user, the club scope and the
// period for an analytics request.
func (h *DashboardHandler) scopeRequest(w http.ResponseWriter, r *http.Request) (*domain.AuthUser, string, domain.Period, bool) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusUnauthorized, "authentication required")
		return nil, "", "", false
	}

	clubID, ok := middleware.ScopeClub(user, r.URL.Query().Get("club"))
	if !ok {
		middleware.RespondWithError(w, http.StatusForbidden, "insufficient permissions")
		return nil, "", "", false
	}

	period := domain.Period(r.URL.Query().Get("period"))
	if period == "" {
		period = domain.PeriodMonth
	}
	if !period.Valid() {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid period")
		return nil, "", "", false
	}

	return user, clubID, period, true
}
