package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/m04kA/RST-ReservationService/internal/api/handlers"
)

// AdminTokenHeader заголовок с админским токеном
const AdminTokenHeader = "X-Admin-Token"

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// AdminAuth проверяет админский токен на защищённых маршрутах
// Сравнение токенов за константное время
func AdminAuth(token string, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(AdminTokenHeader)
			if got == "" {
				logger.Warn("%s %s - Missing admin token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, "отсутствует админский токен")
				return
			}
			if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				logger.Warn("%s %s - Invalid admin token", r.Method, r.URL.Path)
				handlers.RespondForbidden(w, "доступ запрещен")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
