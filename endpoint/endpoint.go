// Package endpoint expands URL path templates against a request context.
package endpoint

import (
	"strings"

	"github.com/viant/datastore/schema"
)

// Expand replaces each ":"-prefixed path segment of template with the
// matching context value, verbatim and in order. Values are inserted as-is;
// callers are responsible for passing safe path segments. A placeholder with
// no matching key fails with MissingContextValue.
func Expand(template string, context map[string]string) (string, error) {
	segments := strings.Split(template, "/")
	for i, segment := range segments {
		if !strings.HasPrefix(segment, ":") {
			continue
		}
		name := segment[1:]
		value, ok := context[name]
		if !ok {
			return "", schema.NewMissingContextValue(name)
		}
		segments[i] = value
	}
	return strings.Join(segments, "/"), nil
}
