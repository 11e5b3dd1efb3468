// Package apiclient is the Bookit backend client. List reads degrade to the
// bundled sample data; every other call surfaces its error to the caller.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"bookit-web/config"
)

// DataSource selects between the live backend and the bundled sample data.
type DataSource string

const (
	DataSourceBackend DataSource = "backend"
	DataSourceSample  DataSource = "sample"
)

// Client calls the Bookit backend.
type Client struct {
	http      *resty.Client
	endpoints Endpoints
	useSample atomic.Bool
	logger    *zap.Logger
	metrics   *metrics
}

type options struct {
	httpClient *http.Client
	registerer prometheus.Registerer
	endpoints  Endpoints
}

// Option customises a Client.
type Option func(*options)

// WithHTTPClient sends requests through hc instead of a fresh client.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) { o.httpClient = hc }
}

// WithRegisterer registers the client's metrics on reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *options) { o.registerer = reg }
}

// WithEndpoints overrides the endpoint preset chosen from the config.
func WithEndpoints(eps Endpoints) Option {
	return func(o *options) { o.endpoints = eps }
}

// New creates a client for the backend described by cfg.
func New(cfg config.APIConfig, logger *zap.Logger, opts ...Option) (*Client, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if o.endpoints == nil {
		eps, err := EndpointsFor(cfg)
		if err != nil {
			return nil, err
		}
		o.endpoints = eps
	}

	httpClient := resty.New()
	if o.httpClient != nil {
		httpClient = resty.NewWithClient(o.httpClient)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	httpClient.
		SetBaseURL(cfg.BaseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Client{
		http:      httpClient,
		endpoints: o.endpoints,
		logger:    logger.Named("apiclient"),
		metrics:   newMetrics(o.registerer),
	}
	c.useSample.Store(cfg.UseSampleData)
	return c, nil
}

// SetDataSource switches reads between the backend and the sample data.
// The next call observes the change.
func (c *Client) SetDataSource(src DataSource) {
	c.useSample.Store(src == DataSourceSample)
	c.logger.Info("data source changed", zap.String("data_source", string(src)))
}

// DataSource returns the current data source.
func (c *Client) DataSource() DataSource {
	if c.useSample.Load() {
		return DataSourceSample
	}
	return DataSourceBackend
}

type readOptions struct {
	forceSample bool
}

// ReadOption adjusts a single read.
type ReadOption func(*readOptions)

// WithSampleData answers the read from the sample data whatever the switch says.
func WithSampleData() ReadOption {
	return func(o *readOptions) { o.forceSample = true }
}

func (c *Client) sampleRequested(opts []ReadOption) bool {
	var ro readOptions
	for _, opt := range opts {
		opt(&ro)
	}
	return ro.forceSample || c.useSample.Load()
}

// request is one backend call before endpoint resolution.
type request struct {
	op     Operation
	params map[string]string
	query  url.Values
	body   any
}

// send performs the HTTP exchange and returns the raw body of a 2xx answer.
func (c *Client) send(ctx context.Context, req request) ([]byte, error) {
	ep, ok := c.endpoints[req.op]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOperation, req.op)
	}
	path, err := ep.Expand(req.params)
	if err != nil {
		return nil, err
	}

	r := c.http.R().SetContext(ctx)
	if req.body != nil {
		r.SetBody(req.body)
	}
	if len(req.query) > 0 {
		r.SetQueryParamsFromValues(req.query)
	}

	resp, err := r.Execute(ep.Method, path)
	if err != nil {
		c.metrics.observe(req.op, outcomeTransport)
		return nil, fmt.Errorf("%s %s: %w", ep.Method, path, err)
	}

	if !resp.IsSuccess() {
		c.metrics.observe(req.op, outcomeHTTPError)
		return nil, &APIError{
			Op:         req.op,
			Method:     ep.Method,
			Path:       path,
			StatusCode: resp.StatusCode(),
			Body:       resp.String(),
		}
	}

	c.logger.Debug("backend call succeeded",
		zap.String("operation", string(req.op)),
		zap.String("method", ep.Method),
		zap.String("path", path),
		zap.Int("status_code", resp.StatusCode()),
		zap.Duration("elapsed", resp.Time()),
	)
	return resp.Body(), nil
}

// call performs req and decodes a JSON body into T. An empty body yields the
// zero value.
func call[T any](ctx context.Context, c *Client, req request) (T, error) {
	var out T
	body, err := c.send(ctx, req)
	if err != nil {
		return out, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		c.metrics.observe(req.op, outcomeOK)
		return out, nil
	}
	if err := json.Unmarshal(body, &out); err != nil {
		c.metrics.observe(req.op, outcomeDecode)
		return out, &DecodeError{Op: req.op, Err: err}
	}
	c.metrics.observe(req.op, outcomeOK)
	return out, nil
}

// callText performs req and returns the body as text.
func (c *Client) callText(ctx context.Context, req request) (string, error) {
	body, err := c.send(ctx, req)
	if err != nil {
		return "", err
	}
	c.metrics.observe(req.op, outcomeOK)
	return string(bytes.TrimSpace(body)), nil
}

// readSoft answers a list read. Backend failures are absorbed and replaced by
// fallback(); only a cancelled context is returned as an error.
func readSoft[T any](ctx context.Context, c *Client, req request, opts []ReadOption, fallback func() T) (Result[T], error) {
	if c.sampleRequested(opts) {
		c.metrics.observe(req.op, outcomeSample)
		c.logger.Debug("serving sample data", zap.String("operation", string(req.op)))
		return Result[T]{Data: fallback(), Source: SourceSample}, nil
	}

	data, err := call[T](ctx, c, req)
	if err == nil {
		return Result[T]{Data: data, Source: SourceLive}, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return Result[T]{}, err
	}

	c.metrics.fallback(req.op)
	c.logger.Warn("backend read failed, falling back to sample data",
		zap.String("operation", string(req.op)),
		zap.Error(err),
	)
	return Result[T]{Data: fallback(), Source: SourceFallback, Cause: err}, nil
}

// readOne answers a by-id read. With sample data on it resolves against
// lookup; otherwise backend failures are returned.
func readOne[T any](ctx context.Context, c *Client, req request, id string, opts []ReadOption, lookup func(string) (T, bool)) (Result[T], error) {
	if c.sampleRequested(opts) {
		c.metrics.observe(req.op, outcomeSample)
		v, ok := lookup(id)
		if !ok {
			return Result[T]{}, fmt.Errorf("%s %q: %w", req.op, id, ErrNotFound)
		}
		return Result[T]{Data: v, Source: SourceSample}, nil
	}

	data, err := call[T](ctx, c, req)
	if err != nil {
		c.logFailure(req.op, err)
		return Result[T]{}, err
	}
	return Result[T]{Data: data, Source: SourceLive}, nil
}

// mutate performs a call whose failure must reach the caller.
func mutate[T any](ctx context.Context, c *Client, req request) (T, error) {
	data, err := call[T](ctx, c, req)
	if err != nil {
		c.logFailure(req.op, err)
	}
	return data, err
}

func (c *Client) mutateText(ctx context.Context, req request) (string, error) {
	msg, err := c.callText(ctx, req)
	if err != nil {
		c.logFailure(req.op, err)
	}
	return msg, err
}

func (c *Client) logFailure(op Operation, err error) {
	c.logger.Error("backend call failed",
		zap.String("operation", string(op)),
		zap.Int("status_code", StatusCode(err)),
		zap.Error(err),
	)
}

func idParam(id string) map[string]string {
	return map[string]string{"id": id}
}
