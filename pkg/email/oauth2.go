package email

import (
	"context"
	"errors"
	"net/smtp"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"
)

// OAuthConfig is the Gmail OAuth2 credential set. When complete it replaces
// password authentication.
type OAuthConfig struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
}

// Enabled reports whether all three values are present.
func (o OAuthConfig) Enabled() bool {
	return o.ClientID != "" && o.ClientSecret != "" && o.RefreshToken != ""
}

// TokenSource returns a cached, auto-refreshing access token source.
func (o OAuthConfig) TokenSource(ctx context.Context) oauth2.TokenSource {
	cfg := &oauth2.Config{
		ClientID:     o.ClientID,
		ClientSecret: o.ClientSecret,
		Endpoint:     endpoints.Google,
		RedirectURL:  "https://developers.google.com/oauthplayground",
	}
	return cfg.TokenSource(ctx, &oauth2.Token{RefreshToken: o.RefreshToken})
}

// xoauth2 implements the SASL XOAUTH2 mechanism used by Gmail SMTP.
type xoauth2 struct {
	user   string
	tokens oauth2.TokenSource
}

func newXOAuth2(user string, tokens oauth2.TokenSource) smtp.Auth {
	return &xoauth2{user: user, tokens: tokens}
}

func (a *xoauth2) Start(server *smtp.ServerInfo) (string, []byte, error) {
	if !server.TLS {
		return "", nil, errors.New("xoauth2: refusing to send token over unencrypted connection")
	}
	tok, err := a.tokens.Token()
	if err != nil {
		return "", nil, err
	}
	return "XOAUTH2", []byte("user=" + a.user + "\x01auth=Bearer " + tok.AccessToken + "\x01\x01"), nil
}

// Next answers the server's error challenge with an empty response so the
// server can finish with its final status code.
func (a *xoauth2) Next(_ []byte, more bool) ([]byte, error) {
	if more {
		return []byte{}, nil
	}
	return nil, nil
}
