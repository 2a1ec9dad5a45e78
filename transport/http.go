package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/viant/datastore/log"
	"github.com/viant/datastore/token"
)

// Service is the default HTTP transport. Every request carries a freshly
// issued access token; no state is shared between calls beyond the base URL
// and the HTTP client, so concurrent use is safe.
type Service struct {
	baseURL string
	issuer  *token.Issuer
	client  *http.Client
	header  http.Header
}

// Option customises the HTTP transport.
type Option func(s *Service)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Service) {
		s.client = client
	}
}

// WithHeader adds a header to every outgoing request.
func WithHeader(name, value string) Option {
	return func(s *Service) {
		s.header.Set(name, value)
	}
}

// New creates an HTTP transport for the store at baseURL, authenticating
// with tokens from issuer.
func New(baseURL string, issuer *token.Issuer, options ...Option) *Service {
	ret := &Service{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		issuer:  issuer,
		client:  http.DefaultClient,
		header:  http.Header{},
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

func (s *Service) SendGet(ctx context.Context, request *Request, logger log.Logger) (json.RawMessage, error) {
	return s.send(ctx, http.MethodGet, request, logger)
}

func (s *Service) SendPost(ctx context.Context, request *Request, logger log.Logger) (json.RawMessage, error) {
	return s.send(ctx, http.MethodPost, request, logger)
}

func (s *Service) send(ctx context.Context, method string, request *Request, logger log.Logger) (json.RawMessage, error) {
	if logger == nil {
		logger = log.Nop{}
	}
	var body io.Reader
	if request.Payload != nil {
		data, err := json.Marshal(request.Payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(data)
	}
	httpRequest, err := http.NewRequestWithContext(ctx, method, s.baseURL+request.URL, body)
	if err != nil {
		return nil, err
	}
	accessToken, err := s.issuer.Generate(s.tokenClaims(request))
	if err != nil {
		return nil, err
	}
	requestID := uuid.NewString()
	httpRequest.Header.Set("X-Access-Token", accessToken)
	httpRequest.Header.Set("X-Request-Id", requestID)
	if request.Payload != nil {
		httpRequest.Header.Set("Content-Type", "application/json")
	}
	for name, values := range s.header {
		for _, value := range values {
			httpRequest.Header.Add(name, value)
		}
	}
	logger.Debugf("%s %s requestId=%s", method, httpRequest.URL, requestID)
	response, err := s.client.Do(httpRequest)
	if err != nil {
		logger.Errorf("%s %s failed: %v", method, httpRequest.URL, err)
		return nil, err
	}
	defer response.Body.Close()
	data, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}
	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		statusErr := &StatusError{StatusCode: response.StatusCode, Body: string(data)}
		logger.Errorf("%s %s requestId=%s: %v", method, httpRequest.URL, requestID, statusErr)
		return nil, statusErr
	}
	return data, nil
}

// tokenClaims picks what the access token checksum covers: the outgoing
// payload for a write, the request context for a read. The verifying side
// recomputes the checksum from the same material.
func (s *Service) tokenClaims(request *Request) any {
	if request.Payload != nil {
		return request.Payload
	}
	return request.Context
}
