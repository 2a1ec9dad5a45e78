package datastore_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/datastore"
	"github.com/viant/datastore/config"
	"github.com/viant/datastore/log"
	"github.com/viant/datastore/mockstore"
	"github.com/viant/datastore/token"
	"github.com/viant/datastore/transport"
)

// TestRoundTrip writes and reads back a user's answers through the full
// stack: endpoint templating, token issuance and verification, payload
// encryption, and the HTTP wire contract.
func TestRoundTrip(t *testing.T) {
	issuer := token.New("testServiceToken")
	server := httptest.NewServer(mockstore.New(mockstore.WithTokenVerification(issuer)).Handler())
	defer server.Close()

	cfg, err := config.New("testServiceSecret", "testServiceToken", "testServiceSlug", server.URL)
	require.NoError(t, err)
	client, err := datastore.New(cfg)
	require.NoError(t, err)

	ctx := context.Background()
	payload := map[string]any{
		"answers": map[string]any{
			"email": "jane@example.com",
			"name":  "Jane",
		},
	}
	require.NoError(t, client.SetData(ctx, "testUserId", "testUserToken", payload, log.Nop{}))

	actual, err := client.GetData(ctx, "testUserId", "testUserToken", log.Nop{})
	require.NoError(t, err)
	assert.EqualValues(t, payload, actual)
}

func TestRoundTripUnknownUser(t *testing.T) {
	server := httptest.NewServer(mockstore.New().Handler())
	defer server.Close()

	cfg, err := config.New("testServiceSecret", "testServiceToken", "testServiceSlug", server.URL)
	require.NoError(t, err)
	client, err := datastore.New(cfg)
	require.NoError(t, err)

	_, err = client.GetData(context.Background(), "unknownUser", "testUserToken", log.Nop{})
	require.Error(t, err)
	statusErr, ok := err.(*transport.StatusError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
}

func TestRoundTripRejectsForgedServiceToken(t *testing.T) {
	server := httptest.NewServer(mockstore.New(mockstore.WithTokenVerification(token.New("testServiceToken"))).Handler())
	defer server.Close()

	cfg, err := config.New("testServiceSecret", "someOtherToken", "testServiceSlug", server.URL)
	require.NoError(t, err)
	client, err := datastore.New(cfg)
	require.NoError(t, err)

	err = client.SetData(context.Background(), "testUserId", "testUserToken", map[string]any{"k": "v"}, log.Nop{})
	require.Error(t, err)
	statusErr, ok := err.(*transport.StatusError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
}
