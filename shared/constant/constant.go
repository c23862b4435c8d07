package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyRequestID contextKey = "request_id"
)

const (
	RequestParamID           = "id"
	RequestParamPropertyType = "property_type"
	RequestParamUserID       = "user_id"
	RequestParamMinPrice     = "minprice"
	RequestParamMaxPrice     = "maxprice"
	RequestParamSort         = "sort"
	RequestParamOrder        = "order"
)

const (
	SortCostPerNight = "cost_per_night"
	SortPopularity   = "popularity"

	OrderAscending  = "ascending"
	OrderDescending = "descending"
)

const (
	DefaultValueSort  = SortPopularity
	DefaultValueOrder = OrderDescending
)

const (
	PqErrorCodeExclusionViolation   = "23P01"
	PqErrorCodeSerializationFailure = "40001"
)

const (
	DateFormat = time.RFC3339
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelEventScopeName      = "event"

	OtelQueryAttributeKey = "query"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
	RequestHeaderRetryAfter         = "Retry-After"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPathNotFound         = "Path not found"
	ResponseErrorMethodNotAllowed     = "Method not allowed"
	ResponseErrorInternal             = "Internal Server Error"
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
	ResponseErrorUnhealthy            = "SERVICE UNHEALTHY"
)

const (
	MessageInvalidPrice       = "Please use numbers for minprice and maxprice"
	MessageInvalidPropertyID  = "Invalid property ID"
	MessageInvalidUserID      = "Invalid user ID"
	MessageInvalidReviewID    = "Invalid review ID"
	MessagePropertyNotFound   = "Property not found"
	MessageUserNotFound       = "User not found"
	MessageReviewNotFound     = "Review not found"
	MessageNoProperties       = "No properties found"
	MessageMissingFields      = "Missing required fields"
	MessageBookingClash       = "Booking dates clash with an existing booking"
	MessageBookingSuccessful  = "Booking successful"
	MessageInvalidDateRange   = "check_out_date must be after check_in_date"
	MessageInvalidRequestBody = "Invalid request body"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvTest        = "test"
	ServerEnvProduction  = "production"
)
