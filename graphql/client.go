package graphql

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	gql "github.com/machinebox/graphql"
	"github.com/ncobase/dashboard/config"
	"github.com/ncobase/dashboard/consts"
	"github.com/ncobase/dashboard/ctxutil"
	"github.com/ncobase/dashboard/logging/logger"
	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/ncobase/dashboard/graphql"

// Operation is a GraphQL document and the root field it selects.
type Operation struct {
	Name     string
	Field    string
	Document string
}

// Executor runs operations and returns the raw value of the root field.
type Executor interface {
	Execute(ctx context.Context, op Operation, vars map[string]any) (json.RawMessage, error)
}

// Client executes operations against the backend's GraphQL endpoint.
type Client struct {
	gc       *gql.Client
	endpoint string
	timeout  time.Duration
	breaker  *gobreaker.CircuitBreaker
	logger   *logger.Logger
	tracer   trace.Tracer
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient sets the underlying http client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.gc = gql.NewClient(c.endpoint, gql.WithHTTPClient(hc))
	}
}

// NewClient creates a Client from the graphql config.
func NewClient(cfg *config.GraphQL, l *logger.Logger, opts ...Option) *Client {
	if l == nil {
		l = logger.NewNop()
	}
	c := &Client{
		endpoint: cfg.Endpoint,
		timeout:  cfg.Timeout,
		logger:   l,
		tracer:   otel.Tracer(tracerName),
	}
	c.gc = gql.NewClient(c.endpoint, gql.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}))
	for _, opt := range opts {
		opt(c)
	}

	if b := cfg.Breaker; b != nil && b.Enabled {
		failures := b.Failures
		c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "graphql",
			MaxRequests: b.MaxRequests,
			Interval:    b.Interval,
			Timeout:     b.Timeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= failures
			},
			IsSuccessful: func(err error) bool {
				// errors reported by the server mean the transport is fine
				return err == nil || isRemoteMessage(err)
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				l.Warnf(context.Background(), "circuit breaker %s: %s -> %s", name, from, to)
			},
		})
	}
	return c
}

// Endpoint returns the GraphQL endpoint
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Execute runs op with vars and returns the value of op.Field.
func (c *Client) Execute(ctx context.Context, op Operation, vars map[string]any) (json.RawMessage, error) {
	ctx, span := c.tracer.Start(ctx, "graphql."+op.Name, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(
		attribute.String("graphql.operation.name", op.Name),
		attribute.String("graphql.field", op.Field),
	)

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req := gql.NewRequest(op.Document)
	for k, v := range vars {
		req.Var(k, v)
	}
	if cookies := ctxutil.GetCookieHeader(ctx); cookies != "" {
		req.Header.Set("Cookie", cookies)
	}
	if traceID := ctxutil.GetTraceID(ctx); traceID != "" {
		req.Header.Set(consts.TraceKey, traceID)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	start := time.Now()
	data, err := c.run(ctx, req)
	c.logger.Debugf(ctx, "graphql %s %v took %s", op.Name, vars, time.Since(start))

	if err != nil {
		err = wrapError(op.Name, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	raw, ok := data[op.Field]
	if !ok || len(raw) == 0 || string(raw) == "null" {
		err = &Error{Operation: op.Name, Err: ErrNoData}
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetStatus(codes.Ok, "")
	return raw, nil
}

func (c *Client) run(ctx context.Context, req *gql.Request) (map[string]json.RawMessage, error) {
	call := func() (any, error) {
		var data map[string]json.RawMessage
		if err := c.gc.Run(ctx, req, &data); err != nil {
			return nil, err
		}
		return data, nil
	}

	if c.breaker == nil {
		v, err := call()
		if err != nil {
			return nil, err
		}
		return v.(map[string]json.RawMessage), nil
	}

	v, err := c.breaker.Execute(call)
	if err != nil {
		return nil, err
	}
	return v.(map[string]json.RawMessage), nil
}
