package oauth

import (
	"context"
	"errors"

	"github.com/cmlabs-hris/hris-mobile-go/internal/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// ErrNoCredentials is returned by a source that has nothing configured.
var ErrNoCredentials = errors.New("no upstream credentials configured")

// NewUpstreamTokenSource returns the token source used when a request does not
// carry the caller's own token. Client credentials win over a static token.
// Without either it returns nil and such requests go out unauthenticated.
func NewUpstreamTokenSource(ctx context.Context, cfg config.UpstreamConfig) oauth2.TokenSource {
	switch {
	case cfg.ClientID != "":
		cc := &clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     cfg.TokenURL,
			Scopes:       cfg.Scopes,
		}
		return cc.TokenSource(ctx)
	case cfg.Token != "":
		return oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: cfg.Token,
			TokenType:   "Bearer",
		})
	default:
		return nil
	}
}

// AccessToken fetches a token from src, treating a nil source as an error.
func AccessToken(src oauth2.TokenSource) (string, error) {
	if src == nil {
		return "", ErrNoCredentials
	}
	tok, err := src.Token()
	if err != nil {
		return "", err
	}
	return tok.AccessToken, nil
}
