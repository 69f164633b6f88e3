package requestid

import (
	"context"
	"net/http"
)

// Header заголовок с идентификатором запроса
const Header = "X-Request-ID"

type ctxKey struct{}

// WithID кладет идентификатор запроса в контекст
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext извлекает идентификатор запроса из контекста
func FromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKey{}).(string)
	return id, ok && id != ""
}

// Propagate копирует идентификатор из контекста в исходящий запрос
func Propagate(req *http.Request) {
	if id, ok := FromContext(req.Context()); ok {
		req.Header.Set(Header, id)
	}
}
