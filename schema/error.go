package schema

import "fmt"

// Error kinds raised by this library. Transport failures are never converted
// to this type; they keep their original identity.
const (
	KindNoServiceToken      = "NoServiceToken"
	KindNoServiceSlug       = "NoServiceSlug"
	KindNoMicroserviceUrl   = "NoMicroserviceUrl"
	KindNoServiceSecret     = "NoServiceSecret"
	KindInvalidPayload      = "InvalidPayload"
	KindMissingContextValue = "MissingContextValue"
)

// Error is the single client-raised error variant, tagged with a kind name,
// a machine-readable code and a fixed message.
type Error struct {
	Kind    string
	Code    int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s(%d): %s", e.Kind, e.Code, e.Message)
}

// Is matches two Errors by kind, so errors.Is(err, schema.NewInvalidPayload())
// holds regardless of how the instance was constructed.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// NewError creates a tagged client error.
func NewError(kind string, code int, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

// NewNoServiceToken reports a missing service token at construction time.
func NewNoServiceToken() *Error {
	return NewError(KindNoServiceToken, 500, "ENOSERVICETOKEN")
}

// NewNoServiceSlug reports a missing service slug at construction time.
func NewNoServiceSlug() *Error {
	return NewError(KindNoServiceSlug, 500, "ENOSERVICESLUG")
}

// NewNoMicroserviceUrl reports a missing store base URL at construction time.
func NewNoMicroserviceUrl() *Error {
	return NewError(KindNoMicroserviceUrl, 500, "ENOMICROSERVICEURL")
}

// NewNoServiceSecret reports a missing service secret at construction time.
func NewNoServiceSecret() *Error {
	return NewError(KindNoServiceSecret, 500, "ENOSERVICESECRET")
}

// NewInvalidPayload covers any malformed or undecodable encrypted envelope.
func NewInvalidPayload() *Error {
	return NewError(KindInvalidPayload, 500, "EINVALIDPAYLOAD")
}

// NewMissingContextValue reports an endpoint template placeholder with no
// matching context key.
func NewMissingContextValue(name string) *Error {
	return NewError(KindMissingContextValue, 500, "EMISSINGCONTEXTVALUE "+name)
}
