package constant

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyRequestID contextKey = "request_id"
)

const (
	RequestParamID           = "id"
	RequestParamRoomID       = "roomId"
	RequestParamCustomerName = "customerName"
	RequestParamDate         = "date"
	RequestParamStartTime    = "startTime"
	RequestParamEndTime      = "endTime"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
)

const (
	RequestHeaderUserAgent    = "User-Agent"
	RequestHeaderContentType  = "Content-Type"
	RequestHeaderRequestID    = "X-Request-ID"
	RequestHeaderForwardedFor = "X-Forwarded-For"
	RequestHeaderRealIP       = "X-Real-IP"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPrepareShutdown = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy       = "SERVER UNHEALTHY"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	DateFormat  = "2006-01-02"
	ClockFormat = "03:04 PM"
)

const (
	Empty = ""
)
