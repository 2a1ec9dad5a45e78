package datastore

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/viant/datastore/cipher"
	"github.com/viant/datastore/config"
	"github.com/viant/datastore/endpoint"
	"github.com/viant/datastore/log"
	"github.com/viant/datastore/schema"
	"github.com/viant/datastore/token"
	"github.com/viant/datastore/transport"
)

// DataTemplate addresses one user's record within a service namespace. Both
// reads and writes target the same resource.
const DataTemplate = "/service/:serviceSlug/user/:userId"

// Client reads and writes one user's encrypted answers in the remote store.
// All fields are read-only after construction, so a single Client is safe
// for concurrent use; each call builds its own request context and envelope.
type Client struct {
	config     *config.Config
	issuer     *token.Issuer
	transport  transport.Transport
	httpClient *http.Client
}

// New creates a data store client for the given configuration. The
// configuration is validated before any collaborator is built; no partial
// client is ever returned.
func New(cfg *config.Config, options ...Option) (*Client, error) {
	if cfg == nil {
		cfg = &config.Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ret := &Client{config: cfg}
	for _, opt := range options {
		opt(ret)
	}
	if ret.issuer == nil {
		ret.issuer = token.New(cfg.ServiceToken)
	}
	if ret.transport == nil {
		var transportOptions []transport.Option
		if ret.httpClient != nil {
			transportOptions = append(transportOptions, transport.WithHTTPClient(ret.httpClient))
		}
		ret.transport = transport.New(cfg.URL, ret.issuer, transportOptions...)
	}
	return ret, nil
}

// GetData fetches and decrypts the user's stored payload. Remote failures
// propagate unchanged; a response that cannot be decrypted fails with
// InvalidPayload.
func (c *Client) GetData(ctx context.Context, userID, userToken string, logger log.Logger) (any, error) {
	request, err := c.newRequest(userID)
	if err != nil {
		return nil, err
	}
	data, err := c.transport.SendGet(ctx, request, logger)
	if err != nil {
		return nil, err
	}
	response := &schema.GetResponse{}
	if err := json.Unmarshal(data, response); err != nil {
		return nil, schema.NewInvalidPayload()
	}
	return cipher.Decrypt(userToken, response.Payload)
}

// SetData encrypts payload with the user's token and writes it to the store.
// The store acknowledges with no content; remote failures propagate
// unchanged.
func (c *Client) SetData(ctx context.Context, userID, userToken string, payload any, logger log.Logger) error {
	envelope, err := cipher.Encrypt(userToken, payload)
	if err != nil {
		return err
	}
	request, err := c.newRequest(userID)
	if err != nil {
		return err
	}
	request.Payload = &schema.SetRequest{Payload: envelope}
	_, err = c.transport.SendPost(ctx, request, logger)
	return err
}

func (c *Client) newRequest(userID string) (*transport.Request, error) {
	requestContext := &schema.RequestContext{ServiceSlug: c.config.ServiceSlug, UserID: userID}
	URL, err := endpoint.Expand(DataTemplate, requestContext.Map())
	if err != nil {
		return nil, err
	}
	return &transport.Request{URL: URL, Context: requestContext}, nil
}
