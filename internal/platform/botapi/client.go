// Package botapi talks to the remote bot service's REST API. The panel
// forwards almost every data operation here verbatim, authenticated with an
// API key header.
package botapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"bot-admin-panel/internal/common/logger"
	"bot-admin-panel/internal/features/auth/models"
)

const apiKeyHeader = "X-API-Key"

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Request forwards a JSON request to the bot API and returns the decoded
// response body. Transport failures come back as a {"success": false,
// "error": ...} payload so callers can relay them unchanged.
func (c *Client) Request(ctx context.Context, method, endpoint string, payload any) map[string]any {
	var body io.Reader
	contentType := ""
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return failure(fmt.Errorf("encode request body: %w", err))
		}
		body = bytes.NewReader(data)
		contentType = "application/json"
	}
	return c.do(ctx, method, endpoint, contentType, body)
}

// RequestRaw relays a pre-encoded body, keeping the original content type.
// Used for multipart passthrough (broadcast attachments, plugin uploads).
func (c *Client) RequestRaw(ctx context.Context, method, endpoint, contentType string, body io.Reader) map[string]any {
	return c.do(ctx, method, endpoint, contentType, body)
}

func (c *Client) do(ctx context.Context, method, endpoint, contentType string, body io.Reader) map[string]any {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return failure(err)
	}
	req.Header.Set(apiKeyHeader, c.apiKey)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	logger.Debug().Str("method", method).Str("endpoint", endpoint).Msg("Bot API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error().Err(err).Str("method", method).Str("endpoint", endpoint).Msg("Bot API request failed")
		return failure(err)
	}
	defer resp.Body.Close()

	var result map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		logger.Error().Err(err).Str("endpoint", endpoint).Msg("Bot API response decode failed")
		return failure(fmt.Errorf("decode response: %w", err))
	}

	logger.Debug().Int("status", resp.StatusCode).Str("endpoint", endpoint).Msg("Bot API response")
	return result
}

func failure(err error) map[string]any {
	return map[string]any{"success": false, "error": err.Error()}
}

type userFactsResponse struct {
	Success bool `json:"success"`
	User    struct {
		Role         string `json:"role"`
		IsBlocked    bool   `json:"is_blocked"`
		LastActivity string `json:"last_activity"`
	} `json:"user"`
}

// UserFacts fetches role, block status and last activity for one user. A
// non-found user yields Found=false without an error; transport failures
// return an error and the caller treats both as access denied.
func (c *Client) UserFacts(ctx context.Context, userID int64) (models.UserFacts, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/api/users/%d", c.baseURL, userID), nil)
	if err != nil {
		return models.UserFacts{}, err
	}
	req.Header.Set(apiKeyHeader, c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.UserFacts{}, fmt.Errorf("fetch user facts: %w", err)
	}
	defer resp.Body.Close()

	var decoded userFactsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return models.UserFacts{}, fmt.Errorf("decode user facts: %w", err)
	}
	if !decoded.Success {
		return models.UserFacts{Found: false}, nil
	}

	return models.UserFacts{
		Found:        true,
		Role:         decoded.User.Role,
		IsBlocked:    decoded.User.IsBlocked,
		LastActivity: decoded.User.LastActivity,
	}, nil
}
