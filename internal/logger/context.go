package logger

import "context"

type contextKey string

const fieldsKey contextKey = "log_fields"

// Fields vão em todo registro de log emitido com um contexto que os carrega.
type Fields struct {
	RequestID      string
	OrganizationID uint
	UserID         uint
}

// WithFields mescla f aos campos já guardados em ctx. Valores zero mantêm o
// valor anterior.
func WithFields(ctx context.Context, f Fields) context.Context {
	cur := FieldsFrom(ctx)
	if f.RequestID != "" {
		cur.RequestID = f.RequestID
	}
	if f.OrganizationID != 0 {
		cur.OrganizationID = f.OrganizationID
	}
	if f.UserID != 0 {
		cur.UserID = f.UserID
	}
	return context.WithValue(ctx, fieldsKey, cur)
}

func FieldsFrom(ctx context.Context) Fields {
	if f, ok := ctx.Value(fieldsKey).(Fields); ok {
		return f
	}
	return Fields{}
}
