package cipher

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/datastore/schema"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	testCases := []struct {
		description string
		key         string
		payload     any
	}{
		{
			description: "flat object",
			key:         "testUserToken",
			payload:     map[string]any{"name": "Jane", "age": float64(41)},
		},
		{
			description: "nested answers",
			key:         "another-token",
			payload: map[string]any{
				"steps": []any{"one", "two"},
				"answers": map[string]any{
					"email": "jane@example.com",
				},
			},
		},
		{
			description: "scalar payload",
			key:         "k",
			payload:     "just a string",
		},
	}
	for _, testCase := range testCases {
		envelope, err := Encrypt(testCase.key, testCase.payload)
		require.NoError(t, err, testCase.description)
		actual, err := Decrypt(testCase.key, envelope)
		require.NoError(t, err, testCase.description)
		assert.EqualValues(t, testCase.payload, actual, testCase.description)
	}
}

func TestEncryptFreshIV(t *testing.T) {
	payload := map[string]any{"answer": "the same plaintext"}
	first, err := Encrypt("testUserToken", payload)
	require.NoError(t, err)
	second, err := Encrypt("testUserToken", payload)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	firstPayload, err := Decrypt("testUserToken", first)
	require.NoError(t, err)
	secondPayload, err := Decrypt("testUserToken", second)
	require.NoError(t, err)
	assert.EqualValues(t, firstPayload, secondPayload)
}

func TestDecryptInvalidEnvelope(t *testing.T) {
	envelope, err := Encrypt("testUserToken", map[string]any{"answer": "value worth protecting"})
	require.NoError(t, err)

	testCases := []struct {
		description string
		key         string
		envelope    string
	}{
		{description: "not an envelope", key: "testUserToken", envelope: "invalid"},
		{description: "bad iv hex", key: "testUserToken", envelope: "zz:00ff"},
		{description: "truncated iv", key: "testUserToken", envelope: "00ff:00ff"},
		{description: "bad ciphertext hex", key: "testUserToken", envelope: "00000000000000000000000000000000:xyz"},
		{description: "wrong key", key: "otherToken", envelope: envelope},
	}
	for _, testCase := range testCases {
		_, err := Decrypt(testCase.key, testCase.envelope)
		require.Error(t, err, testCase.description)
		clientErr := &schema.Error{}
		require.True(t, errors.As(err, &clientErr), testCase.description)
		assert.Equal(t, schema.KindInvalidPayload, clientErr.Kind, testCase.description)
		assert.Equal(t, 500, clientErr.Code, testCase.description)
		assert.Equal(t, "EINVALIDPAYLOAD", clientErr.Message, testCase.description)
	}
}

func TestDecryptInto(t *testing.T) {
	type answers struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	envelope, err := Encrypt("testUserToken", &answers{Email: "jane@example.com", Name: "Jane"})
	require.NoError(t, err)
	actual := &answers{}
	require.NoError(t, DecryptInto("testUserToken", envelope, actual))
	assert.Equal(t, &answers{Email: "jane@example.com", Name: "Jane"}, actual)
}
