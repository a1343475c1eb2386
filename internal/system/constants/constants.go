package constants

const ApiBasePath = "/api"
const AuthApiPath = "auth"
const AppsApiPath = "apps"
const ApiKeysApiPath = "keys"
const EventsApiPath = "events"
const AnalyticsApiPath = "analytics"

// APIKeyHeader carries the raw key on ingestion requests.
const APIKeyHeader = "X-API-Key"

type contextKey string

const (
	UserIDContextKey  contextKey = "user_id"
	TraceIDContextKey contextKey = "trace_id"
)

// API key lifecycle states.
const (
	KeyStateActive  = "active"
	KeyStateRevoked = "revoked"
	KeyStateExpired = "expired"
)

// APIKeyPrefixLength is the number of leading characters of the raw
// key persisted for display purposes.
const APIKeyPrefixLength = 12

// MaxBatchSize bounds the number of events accepted in one batch request.
const MaxBatchSize = 100

// UnknownClient is the fallback classification when the user agent is
// absent or unparseable.
const UnknownClient = "Unknown"

// Timeline bucket intervals.
const (
	IntervalHour = "hour"
	IntervalDay  = "day"
)

// RecentEventsLimit is the number of raw events returned with per-user
// analytics.
const RecentEventsLimit = 10

// TopEventTypesLimit is the number of event types returned in an app
// overview.
const TopEventTypesLimit = 10

// Cache key prefixes for the aggregation cache. Every key is
// registered under the owning user's namespace so a write can
// invalidate the tenant's aggregates as one unit.
const (
	CacheKeySummary     = "analytics:summary"
	CacheKeyTimeline    = "analytics:timeline"
	CacheKeyUser        = "analytics:user"
	CacheKeyAppOverview = "analytics:app-overview"
)
