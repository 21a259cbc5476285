package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyUserID    contextKey = "user_id"
	ContextKeyUserEmail contextKey = "user_email"
)

const (
	RequestParamLimit  = "limit"
	RequestParamOffset = "offset"
)

const (
	RequestParamID = "id"
)

const (
	DefaultValueLimit  = 20
	DefaultValueOffset = 0
)

const (
	FieldCreatedAt = "created_at"
	FieldUpdatedAt = "updated_at"
)

const (
	PqErrorCodeUniqueViolation = "23505"
	PqErrorCodeFkViolation     = "23503"
)

const (
	DateFormat = time.RFC3339
	DayFormat  = "2006-01-02"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"

	OtelQueryAttributeKey = "query"
)

const (
	RequestHeaderAuthorization = "Authorization"
	RequestHeaderContentType   = "Content-Type"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Empty = ""
)
