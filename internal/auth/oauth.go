package auth

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	exchangeTokenPath = "/webdev.v1.WebDevAuthPublicService/ExchangeToken"
	userInfoPath      = "/webdev.v1.WebDevAuthPublicService/GetUserInfo"
)

// OAuthClient talks to the external identity service used by the web
// frontend. NewOAuthClient returns nil when the server URL or app id is not
// configured; callers treat a nil client as "OAuth disabled".
type OAuthClient struct {
	baseURL    string
	appID      string
	httpClient *http.Client
}

type TokenResponse struct {
	AccessToken string `json:"accessToken"`
}

type UserInfo struct {
	OpenID    string   `json:"openId"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Platforms []string `json:"platforms"`
}

func NewOAuthClient(serverURL, appID string) *OAuthClient {
	if strings.TrimSpace(serverURL) == "" || strings.TrimSpace(appID) == "" {
		return nil
	}
	return &OAuthClient{
		baseURL:    strings.TrimRight(serverURL, "/"),
		appID:      appID,
		httpClient: &http.Client{Timeout: 8 * time.Second},
	}
}

// ExchangeCode trades an authorization code for an access token. The state
// parameter carries the base64-encoded redirect URI the frontend initiated
// the flow with.
func (c *OAuthClient) ExchangeCode(ctx context.Context, code, state string) (*TokenResponse, error) {
	if c == nil {
		return nil, errors.New("oauth client is nil")
	}
	redirectURI, err := base64.StdEncoding.DecodeString(state)
	if err != nil {
		return nil, fmt.Errorf("oauth decode state: %w", err)
	}
	payload := map[string]string{
		"clientId":    c.appID,
		"grantType":   "authorization_code",
		"code":        code,
		"redirectUri": string(redirectURI),
	}
	var out TokenResponse
	if err := c.post(ctx, exchangeTokenPath, payload, &out); err != nil {
		return nil, err
	}
	if strings.TrimSpace(out.AccessToken) == "" {
		return nil, errors.New("oauth response missing access token")
	}
	return &out, nil
}

func (c *OAuthClient) UserInfo(ctx context.Context, accessToken string) (*UserInfo, error) {
	if c == nil {
		return nil, errors.New("oauth client is nil")
	}
	payload := map[string]string{"accessToken": accessToken}
	var out UserInfo
	if err := c.post(ctx, userInfoPath, payload, &out); err != nil {
		return nil, err
	}
	if strings.TrimSpace(out.OpenID) == "" {
		return nil, errors.New("oauth user info missing openId")
	}
	return &out, nil
}

// LoginMethod maps the identity platform list to a login method label.
func (u *UserInfo) LoginMethod() string {
	if u == nil || len(u.Platforms) == 0 {
		return "oauth"
	}
	return strings.ToLower(u.Platforms[0])
}

func (c *OAuthClient) post(ctx context.Context, path string, payload, out interface{}) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("oauth marshal payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("oauth create request: %w", err)
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("content-type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("oauth request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("oauth call failed: status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("oauth decode response: %w", err)
	}
	return nil
}
