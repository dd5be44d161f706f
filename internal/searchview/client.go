package searchview

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"advocate-directory/internal/delivery/dto"
	"advocate-directory/pkg/response"

	"github.com/goccy/go-json"
)

const searchPath = "/api/v1/advocates"

// Searcher fetches one page of advocates from the query service.
type Searcher interface {
	SearchAdvocates(ctx context.Context, search string, page int) (*Result, error)
}

type Result struct {
	Advocates  []dto.AdvocateResponse
	Pagination response.Pagination
}

type Client struct {
	baseURL    string
	limit      int
	httpClient *http.Client
}

func NewClient(baseURL string, limit int, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		limit:      limit,
		httpClient: httpClient,
	}
}

type searchEnvelope struct {
	Success    bool                   `json:"success"`
	Message    string                 `json:"message"`
	Data       []dto.AdvocateResponse `json:"data"`
	Pagination *response.Pagination   `json:"pagination"`
}

func (c *Client) SearchAdvocates(ctx context.Context, search string, page int) (*Result, error) {
	values := url.Values{}
	values.Set("search", search)
	values.Set("page", strconv.Itoa(page))
	values.Set("limit", strconv.Itoa(c.limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+searchPath+"?"+values.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to search advocates: %w", err)
	}
	defer resp.Body.Close()

	var envelope searchEnvelope
	decodeErr := json.NewDecoder(resp.Body).Decode(&envelope)

	if resp.StatusCode != http.StatusOK {
		message := envelope.Message
		if decodeErr != nil || message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		return nil, fmt.Errorf("failed to search advocates: %d %s", resp.StatusCode, message)
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", decodeErr)
	}

	result := &Result{Advocates: envelope.Data}
	if envelope.Pagination != nil {
		result.Pagination = *envelope.Pagination
	}
	return result, nil
}
