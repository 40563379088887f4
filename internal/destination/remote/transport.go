// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package remote

import (
	"context"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// newTransport returns a RoundTripper that authenticates requests with the
// client-credentials flow or the static token, when one of them is configured.
func newTransport(ctx context.Context, cfg *config) http.RoundTripper {
	var source oauth2.TokenSource
	switch {
	case cfg.usesClientCredentials():
		ccConfig := clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     cfg.AuthEndpoint,
			AuthStyle:    oauth2.AuthStyleInHeader,
		}
		source = ccConfig.TokenSource(ctx)
	case cfg.Token != "":
		source = oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: cfg.Token,
			TokenType:   "Bearer",
		})
	}

	if source == nil {
		return http.DefaultTransport
	}

	return &oauth2.Transport{
		Source: source,
		Base:   http.DefaultTransport,
	}
}
