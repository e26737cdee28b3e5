// Package unsplash looks up a background image URL for an event theme.
// It is a presentation concern only: failures never propagate, callers
// always get a usable URL, falling back to documented placeholders.
package unsplash

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"countdown/internal/utils/logger/sl"
)

const (
	defaultBaseURL = "https://api.unsplash.com"

	PlaceholderNoKey    = "https://via.placeholder.com/1920x1080?text=No+Image+Available"
	PlaceholderNotFound = "https://via.placeholder.com/1920x1080?text=No+Image+Found"
	PlaceholderError    = "https://via.placeholder.com/1920x1080?text=Error+Loading+Image"
)

type searchResponse struct {
	Results []struct {
		URLs struct {
			Full string `json:"full"`
		} `json:"urls"`
	} `json:"results"`
}

type Client struct {
	log        *slog.Logger
	accessKey  string
	baseURL    string
	httpClient *http.Client
}

func NewClient(log *slog.Logger, accessKey string) *Client {
	return &Client{
		log:        log,
		accessKey:  accessKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// SearchImage returns the full-size URL of the first photo matching query.
func (c *Client) SearchImage(ctx context.Context, query string) string {
	op := "unsplash.Client.SearchImage()"
	log := c.log.With(slog.String("op", op), slog.String("query", query))

	if c.accessKey == "" {
		log.Warn("unsplash access key not configured, using placeholder")
		return PlaceholderNoKey
	}

	reqURL := fmt.Sprintf("%s/search/photos?query=%s&per_page=1&client_id=%s",
		c.baseURL, url.QueryEscape(query), url.QueryEscape(c.accessKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		log.Error("failed to build request", sl.Err(err))
		return PlaceholderError
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("unsplash request failed", sl.Err(err))
		return PlaceholderError
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Error("unsplash request failed", slog.Int("status", resp.StatusCode))
		return PlaceholderError
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		log.Error("failed to decode unsplash response", sl.Err(err))
		return PlaceholderError
	}

	if len(body.Results) == 0 {
		return PlaceholderNotFound
	}

	return body.Results[0].URLs.Full
}
