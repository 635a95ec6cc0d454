package trafficapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"github.com/chrisdamba/trafficwatch/internal/models"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Fetcher retrieves flow, incident and routing data for a trip.
type Fetcher interface {
	FetchTraffic(ctx context.Context, from, to *string, subscriptionKey string) (*models.TrafficResponse, error)
}

type Client struct {
	endpoint   string
	accessCode string
	client     *http.Client
}

func NewClient(endpoint, accessCode string, timeout time.Duration) *Client {
	return &Client{
		endpoint:   endpoint,
		accessCode: accessCode,
		client:     &http.Client{Timeout: timeout},
	}
}

// tripPayload sends absent locations as null.
type tripPayload struct {
	From *string `json:"from"`
	To   *string `json:"to"`
}

// FetchTraffic posts the trip to the upstream API. Transport failures,
// non-2xx statuses and undecodable bodies are all returned as errors.
func (c *Client) FetchTraffic(ctx context.Context, from, to *string, subscriptionKey string) (*models.TrafficResponse, error) {
	target, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid traffic API url: %w", err)
	}
	query := target.Query()
	query.Set("code", c.accessCode)
	target.RawQuery = query.Encode()

	body, err := json.Marshal(tripPayload{From: from, To: to})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target.String(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("subscription_key", subscriptionKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(msg))
	}

	var data models.TrafficResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return &data, nil
}
