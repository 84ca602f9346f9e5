package consts

// GinContextKey gin context key
const GinContextKey = "gin-context"

// TraceKey trace id header, echoed back on every response
const TraceKey string = "X-Md-Trace"

// SessionKey dashboard session id
const SessionKey string = "x-md-session"

// CookieHeaderKey forwarded browser cookies
const CookieHeaderKey string = "x-md-cookie"

// SessionIDSize length of generated session ids
const SessionIDSize = 24
