package client

import (
	"context"
	"fmt"
	nethttp "net/http"
	"net/url"

	"github.com/fivetwenty-io/modio-client/internal/auth"
	"github.com/fivetwenty-io/modio-client/internal/constants"
	"github.com/fivetwenty-io/modio-client/internal/http"
	"github.com/fivetwenty-io/modio-client/pkg/modio"
)

// AuthClient implements modio.AuthClient. Both endpoints authenticate
// with the API key even when a bearer token is held.
type AuthClient struct {
	httpClient *http.Client
	creds      *auth.Credentials
}

// NewAuthClient creates a new auth client.
func NewAuthClient(httpClient *http.Client, creds *auth.Credentials) *AuthClient {
	return &AuthClient{httpClient: httpClient, creds: creds}
}

// EmailRequest implements modio.AuthClient.EmailRequest.
func (c *AuthClient) EmailRequest(ctx context.Context, email string) error {
	form := url.Values{}
	form.Set("email", email)

	_, err := c.httpClient.Do(ctx, &http.Request{
		Method:  nethttp.MethodPost,
		Path:    "/oauth/emailrequest",
		Form:    form,
		KeyOnly: true,
	})
	if err != nil {
		return fmt.Errorf("requesting security code: %w", err)
	}

	return nil
}

// EmailExchange implements modio.AuthClient.EmailExchange. On success
// the returned token is installed on the client.
func (c *AuthClient) EmailExchange(ctx context.Context, code string) (string, error) {
	if len(code) != constants.SecurityCodeLength {
		return "", modio.ErrSecurityCodeLength
	}

	form := url.Values{}
	form.Set("security_code", code)

	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method:  nethttp.MethodPost,
		Path:    "/oauth/emailexchange",
		Form:    form,
		KeyOnly: true,
	})
	if err != nil {
		return "", fmt.Errorf("exchanging security code: %w", err)
	}

	token, err := decode[modio.AccessToken](resp, "access token")
	if err != nil {
		return "", err
	}

	c.creds.SetToken(token.AccessToken)

	return token.AccessToken, nil
}
