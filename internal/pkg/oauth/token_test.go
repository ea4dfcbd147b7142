package oauth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cmlabs-hris/hris-mobile-go/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpstreamTokenSource_Static(t *testing.T) {
	src := NewUpstreamTokenSource(context.Background(), config.UpstreamConfig{Token: "static-token"})
	require.NotNil(t, src)

	tok, err := AccessToken(src)
	require.NoError(t, err)
	assert.Equal(t, "static-token", tok)
}

func TestNewUpstreamTokenSource_None(t *testing.T) {
	src := NewUpstreamTokenSource(context.Background(), config.UpstreamConfig{})
	assert.Nil(t, src)

	_, err := AccessToken(src)
	assert.ErrorIs(t, err, ErrNoCredentials)
}

func TestNewUpstreamTokenSource_ClientCredentials(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"cc-token","token_type":"Bearer","expires_in":3600}`))
	}))
	defer srv.Close()

	src := NewUpstreamTokenSource(context.Background(), config.UpstreamConfig{
		ClientID:     "mobile",
		ClientSecret: "secret",
		TokenURL:     srv.URL,
		Token:        "ignored",
	})

	for i := 0; i < 2; i++ {
		tok, err := AccessToken(src)
		require.NoError(t, err)
		assert.Equal(t, "cc-token", tok)
	}
	assert.Equal(t, 1, calls, "token should be reused until it expires")
}
