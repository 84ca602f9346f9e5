// Package ctxutil carries request-scoped values through context.Context:
// the trace id, the dashboard session id and the browser Cookie header that is
// forwarded to the backend.
//
// Values set while a *gin.Context is embedded are mirrored into it, so
// handlers and middleware see the same data:
//
//	ctx, traceID := ctxutil.EnsureTraceID(ctx)
//	ctx = ctxutil.SetSessionID(ctx, id)
//	sid := ctxutil.GetSessionID(ctx)
package ctxutil
