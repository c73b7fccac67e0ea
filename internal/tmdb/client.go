package tmdb

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client talks to the TMDB v3 API. Responses come back as raw JSON so the
// caching layer can store them without another encode round.
type Client struct {
	apiKey  string
	baseUrl string
	http    *http.Client
}

func NewClient(apiKey string, baseUrl string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseUrl: baseUrl,
		http: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (c *Client) Get(path string, query url.Values) (json.RawMessage, error) {
	if query == nil {
		query = url.Values{}
	}
	query.Set("api_key", c.apiKey)
	query.Set("language", "en-US")

	reqUrl := fmt.Sprintf("%s%s?%s", c.baseUrl, path, query.Encode())

	resp, err := c.http.Get(reqUrl)
	if err != nil {
		return nil, fmt.Errorf("tmdb request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("tmdb response read failed: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tmdb returned status %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}
