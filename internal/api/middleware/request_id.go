package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/aplet360/pricing-service/pkg/requestid"
)

// maxRequestIDLen длиннее идентификатор клиента заменяется новым
const maxRequestIDLen = 128

// RequestID прокидывает X-Request-ID клиента или генерирует новый
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestid.Header)
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}

		w.Header().Set(requestid.Header, id)
		next.ServeHTTP(w, r.WithContext(requestid.WithID(r.Context(), id)))
	})
}
