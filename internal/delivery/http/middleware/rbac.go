package middleware

import (
	"net/http"

	"github.com/roguedev-ai/tokenmarket-revenue-service/internal/domain"
	"github.com/roguedev-ai/tokenmarket-revenue-service/internal/usecase"
)

// RequireCapability gates a route on one capability. The check loads the
// administrator's current record and derives permissions from its role on
// every request, so a role or status change takes effect immediately.
func RequireCapability(directory usecase.DirectoryUsecase, cap domain.Capability) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			adminID, ok := AdminIDFromContext(r.Context())
			if !ok {
				http.Error(w, "unauthenticated", http.StatusUnauthorized)
				return
			}
			admin, err := directory.GetAdmin(adminID)
			if err != nil {
				http.Error(w, "unknown administrator", http.StatusForbidden)
				return
			}
			if !admin.Active() || !domain.HasPermission(admin, cap) {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
