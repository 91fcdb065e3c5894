// Package spacex provides a client for the SpaceX launch GraphQL API. The
// client issues exactly two read operations, a bounded list of past launches
// and the detail of a single launch, and normalizes transport and GraphQL
// failures into RequestError, ErrInterrupted, and ErrFetchDetails.
package spacex

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/99designs/gqlgen/graphql"
	"go.uber.org/zap"
)

// DefaultURL is the public SpaceX GraphQL endpoint.
const DefaultURL = "https://api.spacex.land/graphql/"

// maxResponseBytes bounds the size of a response body the client will read.
const maxResponseBytes = 10 << 20

// NewClient creates a new Client instance that sends requests to url.
func NewClient(logger *zap.Logger, url string, options ...Option) *Client {
	c := &Client{
		logger: logger,
		url:    url,
		http:   http.DefaultClient,
	}

	for _, option := range options {
		option(c)
	}

	return c
}

// Option is a function that configures a Client. This is typically used with
// NewClient.
type Option func(*Client)

// WithHTTPClient configures the Client to issue requests with hc.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout bounds every Client call to d. A call exceeding d fails with a
// RequestError. A zero d disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// Client issues launch queries against a GraphQL endpoint. A Client holds no
// per-call state and is safe for concurrent use.
type Client struct {
	logger  *zap.Logger
	http    *http.Client
	url     string
	timeout time.Duration
}

// FetchLaunches retrieves at most pageSize past launches in the order the
// server returns them.
func (c Client) FetchLaunches(ctx context.Context, pageSize int) ([]LaunchSummary, error) {
	if pageSize < 1 {
		return nil, ErrInvalidPageSize
	}

	var data launchesPastData
	vars := map[string]interface{}{"limit": pageSize}
	if err := c.do(ctx, launchesPastQuery, vars, &data); err != nil {
		return nil, err
	}
	if data.LaunchesPast == nil {
		return nil, newRequestError("launchesPast absent from response data")
	}

	launches := make([]LaunchSummary, 0, len(*data.LaunchesPast))
	for _, launch := range *data.LaunchesPast {
		if launch == nil || launch.id() == "" {
			continue
		}
		launches = append(launches, launch.toSummary())
		if len(launches) == pageSize {
			break
		}
	}

	return launches, nil
}

// FetchLaunchDetail retrieves the launch identified by id. An empty id fails
// with ErrFetchDetails without contacting the server.
func (c Client) FetchLaunchDetail(ctx context.Context, id string) (*LaunchDetail, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrFetchDetails
	}

	var data launchDetailsData
	vars := map[string]interface{}{"id": id}
	if err := c.do(ctx, launchDetailsQuery, vars, &data); err != nil {
		return nil, err
	}
	if data.Launch == nil {
		return nil, fmt.Errorf("launch not found; id: %s, error: %w", id, ErrFetchDetails)
	}
	if data.Launch.id() != id {
		return nil, fmt.Errorf(
			"launch id mismatch; requested: %s, received: %s, error: %w",
			id,
			data.Launch.id(),
			ErrFetchDetails,
		)
	}

	detail := data.Launch.toDetail()
	return &detail, nil
}

// --- helpers ---

// do sends query with vars and decodes the response data into dst. This is
// the single suspension point of every Client call; cancellation of ctx is
// checked once the round trip returns.
func (c Client) do(
	ctx context.Context,
	query Query,
	vars map[string]interface{},
	dst interface{},
) error {
	logger := c.logger.With(zap.String("operation", query.OperationName))

	callCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	body, err := json.Marshal(graphql.RawParams{
		Query:         query.Document,
		OperationName: query.OperationName,
		Variables:     vars,
	})
	if err != nil {
		return newRequestError("encode request; error: %w", err)
	}

	req, err := http.NewRequestWithContext(callCtx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return newRequestError("build request; error: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	logger.Debug("sending launch query")
	res, err := c.http.Do(req)
	if interrupted(ctx) {
		if res != nil {
			res.Body.Close()
		}
		return ErrInterrupted
	}
	if err != nil {
		logger.Warn("launch query transport failure", zap.Error(err))
		return newRequestError("send request; error: %w", err)
	}
	defer res.Body.Close()

	b, err := io.ReadAll(io.LimitReader(res.Body, maxResponseBytes))
	if interrupted(ctx) {
		return ErrInterrupted
	}
	if err != nil {
		return newRequestError("read response; error: %w", err)
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		logger.Warn("launch query unexpected status", zap.Int("status", res.StatusCode))
		return newRequestError("unexpected status; status: %d", res.StatusCode)
	}

	var resp graphql.Response
	if err := json.Unmarshal(b, &resp); err != nil {
		return newRequestError("decode response; error: %w", err)
	}
	if len(resp.Errors) > 0 {
		logger.Warn("launch query reported errors", zap.Error(resp.Errors))
		return newRequestError("graphql errors; error: %w", resp.Errors)
	}
	if len(resp.Data) == 0 || bytes.Equal(resp.Data, []byte("null")) {
		return newRequestError("response data absent")
	}

	if err := json.Unmarshal(resp.Data, dst); err != nil {
		return newRequestError("decode response data; error: %w", err)
	}

	return nil
}

// interrupted reports whether the caller cancelled ctx. Deadline expiry is
// not an interruption; it surfaces as a transport failure.
func interrupted(ctx context.Context) bool {
	return errors.Is(ctx.Err(), context.Canceled)
}
