package endpoint

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/datastore/schema"
)

func TestExpand(t *testing.T) {
	testCases := []struct {
		description string
		template    string
		context     map[string]string
		expect      string
	}{
		{
			description: "service scoped user resource",
			template:    "/service/:serviceSlug/user/:userId",
			context:     map[string]string{"serviceSlug": "testServiceSlug", "userId": "testUserId"},
			expect:      "/service/testServiceSlug/user/testUserId",
		},
		{
			description: "no placeholders",
			template:    "/healthz",
			context:     map[string]string{},
			expect:      "/healthz",
		},
		{
			description: "values inserted verbatim",
			template:    "/service/:serviceSlug",
			context:     map[string]string{"serviceSlug": "a b"},
			expect:      "/service/a b",
		},
	}
	for _, testCase := range testCases {
		actual, err := Expand(testCase.template, testCase.context)
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}

func TestExpandMissingContextValue(t *testing.T) {
	_, err := Expand("/service/:serviceSlug/user/:userId", map[string]string{"serviceSlug": "testServiceSlug"})
	require.Error(t, err)
	clientErr := &schema.Error{}
	require.True(t, errors.As(err, &clientErr))
	assert.Equal(t, schema.KindMissingContextValue, clientErr.Kind)
}
