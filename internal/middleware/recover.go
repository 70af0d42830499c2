package middleware

import (
	"net/http"
	"runtime/debug"

	"adoptme/internal/platform/logger"
	"adoptme/internal/platform/respond"
)

// Recover convierte un panic en 500 con el sobre estándar. El stack solo va al log.
func Recover(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.FromContext(r.Context(), log).Error("panic recovered", map[string]any{
					"panic": rec,
					"stack": string(debug.Stack()),
				})
				respond.Internal(w)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
