package what3words

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"runtime"
	"time"

	"go.uber.org/zap"

	"github.com/w3w-geocoder/internal/address"
	"github.com/w3w-geocoder/internal/domain"
	"github.com/w3w-geocoder/internal/domain/repository"
	"github.com/w3w-geocoder/internal/pkg/errors"
	"github.com/w3w-geocoder/internal/pkg/metrics"
	"github.com/w3w-geocoder/internal/request"
)

// Version is reported in the X-W3W-Wrapper header.
const Version = "1.0.0"

const (
	headerAPIKey  = "X-Api-Key"
	headerWrapper = "X-W3W-Wrapper"
)

var _ repository.GeocoderRepository = (*Client)(nil)

// Client executes built requests against the what3words API. It holds no
// mutable state after construction and is safe for concurrent use.
type Client struct {
	httpClient    *http.Client
	baseURL       string
	legacyBaseURL string
	apiKey        string
	referer       string
	headers       map[string]string
	timeout       time.Duration
	wrapper       string
	logger        *zap.Logger
}

// NewClient returns a client authenticated with apiKey.
func NewClient(apiKey string, logger *zap.Logger, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, errors.MissingField("api key")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Client{
		baseURL:       DefaultBaseURL,
		legacyBaseURL: DefaultLegacyBaseURL,
		apiKey:        apiKey,
		timeout:       DefaultTimeout,
		wrapper:       wrapperHeader(),
		logger:        logger,
	}
	for _, o := range opts {
		o(c)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: c.timeout}
	}

	return c, nil
}

func wrapperHeader() string {
	return fmt.Sprintf("what3words-Go/%s (Go %s; %s %s)", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// Execute sends spec and decodes a successful body into out. A nil out
// discards the body after checking it for an error object.
func (c *Client) Execute(ctx context.Context, spec *request.Spec, out any) error {
	body, err := c.do(ctx, spec)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		c.logger.Error("Failed to decode response",
			zap.String("operation", string(spec.Operation)),
			zap.Error(err))
		return errors.BadResponse(http.StatusOK, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, spec *request.Spec) (json.RawMessage, error) {
	start := time.Now()
	body, err := c.roundTrip(ctx, spec)

	metrics.ObserveUpstream(string(spec.Operation), outcome(err), time.Since(start))

	return body, err
}

// outcome is the metrics label for err: OutcomeOK, the kind of a
// GeocoderError anywhere in the chain, or KindInternal.
func outcome(err error) string {
	if err == nil {
		return metrics.OutcomeOK
	}
	var gerr *errors.GeocoderError
	if stderrors.As(err, &gerr) {
		return string(gerr.Kind)
	}
	return string(errors.KindInternal)
}

func (c *Client) roundTrip(ctx context.Context, spec *request.Spec) (json.RawMessage, error) {
	url := spec.URL(c.base(spec.Operation))

	c.logger.Debug("Calling what3words API",
		zap.String("operation", string(spec.Operation)),
		zap.String("url", url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, errors.Transport(fmt.Errorf("failed to create request: %w", err))
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request",
			zap.String("operation", string(spec.Operation)),
			zap.Error(err))
		return nil, errors.Transport(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("Failed to read response", zap.Error(err))
		return nil, errors.Transport(fmt.Errorf("failed to read response: %w", err))
	}

	var envelope struct {
		Error *domain.APIError `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		c.logger.Error("what3words API returned undecodable body",
			zap.String("operation", string(spec.Operation)),
			zap.Int("status_code", resp.StatusCode),
			zap.Error(err))
		return nil, errors.BadResponse(resp.StatusCode, err)
	}
	if envelope.Error != nil {
		c.logger.Error("what3words API returned error",
			zap.String("operation", string(spec.Operation)),
			zap.Int("status_code", resp.StatusCode),
			zap.String("code", envelope.Error.Code))
		return nil, errors.Remote(envelope.Error.Code, envelope.Error.Message, resp.StatusCode)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		c.logger.Error("what3words API returned error status",
			zap.String("operation", string(spec.Operation)),
			zap.Int("status_code", resp.StatusCode))
		return nil, errors.BadResponse(resp.StatusCode, fmt.Errorf("status %d without error object", resp.StatusCode))
	}

	c.logger.Debug("what3words API call successful",
		zap.String("operation", string(spec.Operation)),
		zap.Int("bytes", len(body)))

	return bytes.TrimSpace(body), nil
}

func (c *Client) base(op request.Operation) string {
	if op.Version() == request.V2 {
		return c.legacyBaseURL
	}
	return c.baseURL
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set(headerWrapper, c.wrapper)
	req.Header.Set(headerAPIKey, c.apiKey)
	if c.referer != "" {
		req.Header.Set("Referer", c.referer)
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
}

func (c *Client) call(ctx context.Context, op request.Operation, p request.Params, out any) error {
	spec, err := request.Build(op, p)
	if err != nil {
		return err
	}
	return c.Execute(ctx, spec, out)
}

func (c *Client) ConvertTo3wa(ctx context.Context, coord domain.Coordinate, language string) (*domain.ConvertedAddress, error) {
	var result domain.ConvertedAddress
	if err := c.call(ctx, request.ConvertTo3wa, request.Params{Coordinates: &coord, Language: language}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) ConvertToCoordinates(ctx context.Context, words string) (*domain.ConvertedAddress, error) {
	var result domain.ConvertedAddress
	if err := c.call(ctx, request.ConvertToCoordinates, request.Params{Words: words}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) Autosuggest(ctx context.Context, input string, opts ...request.AutosuggestOption) (*domain.AutosuggestResult, error) {
	var result domain.AutosuggestResult
	if err := c.call(ctx, request.Autosuggest, request.Params{Input: input, Options: opts}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) GridSection(ctx context.Context, box domain.BoundingBox) (*domain.GridSection, error) {
	var result domain.GridSection
	if err := c.call(ctx, request.GridSection, request.Params{BoundingBox: &box}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) AvailableLanguages(ctx context.Context) (*domain.Languages, error) {
	var result domain.Languages
	if err := c.call(ctx, request.AvailableLanguages, request.Params{}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Suggest is an address.SuggestFunc backed by Autosuggest.
func (c *Client) Suggest(ctx context.Context, input string, nResults int) ([]string, error) {
	result, err := c.Autosuggest(ctx, input, request.NumberResults(nResults))
	if err != nil {
		return nil, err
	}
	return result.Words(), nil
}

func (c *Client) IsValid3wa(ctx context.Context, text string) (bool, error) {
	return address.IsValid3wa(ctx, text, c.Suggest)
}

func (c *Client) Raw(ctx context.Context, op request.Operation, params request.Params) (json.RawMessage, error) {
	spec, err := request.Build(op, params)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, spec)
}
