package session

import "context"

// Session é a identidade resolvida de uma requisição autenticada: o usuário e
// a única membership dele. Use cases recebem a Session explicitamente.
type Session struct {
	UserID         uint
	OrganizationID uint
	Role           string
}

type contextKey struct{}

func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(contextKey{}).(Session)
	return s, ok
}
