package schema

// RequestContext carries the per-invocation values substituted into an
// endpoint template. One instance per call, never shared.
type RequestContext struct {
	ServiceSlug string `json:"serviceSlug"`
	UserID      string `json:"userId"`
}

// Map exposes the context as the substitution map consumed by the endpoint
// resolver. Keys match the template placeholder names.
func (c *RequestContext) Map() map[string]string {
	return map[string]string{
		"serviceSlug": c.ServiceSlug,
		"userId":      c.UserID,
	}
}

// GetResponse is the wire shape the store returns for a read.
type GetResponse struct {
	Iat     int64  `json:"iat"`
	Payload string `json:"payload"`
}

// SetRequest is the wire body sent to the store for a write. The store
// acknowledges with no content.
type SetRequest struct {
	Payload string `json:"payload"`
}
