package datastore

import (
	"net/http"

	"github.com/viant/datastore/token"
	"github.com/viant/datastore/transport"
)

// Option represents a client option.
type Option func(c *Client)

// WithTransport injects a custom remote transport, replacing the default
// HTTP implementation. Tests substitute the collaborator this way instead of
// patching methods.
func WithTransport(aTransport transport.Transport) Option {
	return func(c *Client) {
		c.transport = aTransport
	}
}

// WithTokenIssuer overrides the access token issuer used by the default
// transport.
func WithTokenIssuer(issuer *token.Issuer) Option {
	return func(c *Client) {
		c.issuer = issuer
	}
}

// WithHTTPClient sets the HTTP client used by the default transport.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}
