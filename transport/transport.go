// Package transport defines the remote collaborator contract of the data
// store client and provides the default HTTP implementation.
package transport

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/viant/datastore/log"
	"github.com/viant/datastore/schema"
)

// Request describes one outgoing call to the remote store.
type Request struct {
	// URL is the resolved resource path, relative to the store base URL.
	URL string
	// Context identifies the scoped resource being addressed.
	Context *schema.RequestContext
	// Payload is the POST body; nil for GET.
	Payload any
}

// Transport is the injected remote collaborator. Implementations own
// timeout and cancellation policy; the data store client adds neither retry
// nor error wrapping, so rejections surface to callers unchanged.
type Transport interface {
	SendGet(ctx context.Context, request *Request, logger log.Logger) (json.RawMessage, error)
	SendPost(ctx context.Context, request *Request, logger log.Logger) (json.RawMessage, error)
}

// StatusError reports a non-2xx response from the remote store. It keeps its
// own identity end to end: the data store client never re-wraps it.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}
