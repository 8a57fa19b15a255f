package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/roguedev-ai/tokenmarket-revenue-service/internal/delivery/http/handlers"
	"github.com/roguedev-ai/tokenmarket-revenue-service/internal/delivery/http/middleware"
	"github.com/roguedev-ai/tokenmarket-revenue-service/internal/domain"
	"github.com/roguedev-ai/tokenmarket-revenue-service/internal/usecase"
)

type RouterDeps struct {
	Pricing   *handlers.PricingHandler
	Payout    *handlers.PayoutHandler
	Admin     *handlers.AdminHandler
	Ledger    *handlers.LedgerHandler
	Directory usecase.DirectoryUsecase
	JWTSecret string
}

// NewRouter builds the service API. Pricing quotes are open to the
// marketplace checkout; everything that reads or moves money sits behind
// JWT identity plus a capability gate resolved from the live directory.
func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/pricing", func(r chi.Router) {
			r.Post("/quote", deps.Pricing.Quote)
			r.Post("/bulk-discount", deps.Pricing.BulkDiscount)
			r.Post("/volume-discount", deps.Pricing.VolumeDiscount)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuth(deps.JWTSecret))

			guard := func(cap domain.Capability) func(http.Handler) http.Handler {
				return middleware.RequireCapability(deps.Directory, cap)
			}

			r.With(guard(domain.CapPaymentManagement)).Post("/fees/split", deps.Payout.SplitFee)
			r.With(guard(domain.CapPaymentManagement)).Post("/payouts/allocate", deps.Payout.Allocate)

			r.Route("/admins", func(r chi.Router) {
				r.With(guard(domain.CapUserManagement)).Get("/", deps.Admin.List)
				r.With(guard(domain.CapUserManagement)).Post("/", deps.Admin.Invite)
				r.With(guard(domain.CapUserManagement)).Get("/{adminID}", deps.Admin.Get)
				r.With(guard(domain.CapUserManagement)).Patch("/{adminID}/role", deps.Admin.ChangeRole)
				r.With(guard(domain.CapUserManagement)).Patch("/{adminID}/status", deps.Admin.ChangeStatus)
				r.With(guard(domain.CapPaymentManagement)).Patch("/{adminID}/fee-share", deps.Admin.SetFeeShare)
			})

			r.Route("/earnings", func(r chi.Router) {
				r.With(guard(domain.CapRevenueVisibility)).Get("/", deps.Ledger.ListRecords)
				r.With(guard(domain.CapPaymentManagement)).Post("/", deps.Ledger.RecordEarnings)
				r.With(guard(domain.CapDisbursementApproval)).Patch("/{recordID}/paid", deps.Ledger.MarkPaid)
				r.With(guard(domain.CapDisbursementApproval)).Patch("/{recordID}/cancel", deps.Ledger.Cancel)
			})

			r.With(guard(domain.CapAnalytics)).Get("/metrics/admin", deps.Ledger.AdminMetrics)
		})
	})

	return r
}
