// Package portal implements the checklist repository on top of the
// operations portal backend's REST API.
package portal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"jumpnjoy-ops/internal/checklist/repository"
)

const defaultTimeout = 15 * time.Second

// Client is the HTTP wrapper for one checklist resource of the portal
// backend (cafe-checklists or marshal-checklists).
type Client struct {
	baseURL    string
	resource   string // e.g. "cafe-checklists"
	authToken  string
	httpClient *http.Client
}

// NewClient creates a portal API client for the given resource.
func NewClient(baseURL, resource, authToken string) *Client {
	return &Client{
		baseURL:   baseURL,
		resource:  resource,
		authToken: authToken,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// ListItems fetches every checklist record for one date via
// GET /{resource}/?date=YYYY-MM-DD.
func (c *Client) ListItems(ctx context.Context, date string) ([]Record, error) {
	url := fmt.Sprintf("%s/%s/?date=%s", c.baseURL, c.resource, date)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build list request: %w", err)
	}
	c.setHeaders(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &repository.NetworkError{Op: "list", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, serverError("list", resp)
	}

	return decodeRecordList(resp.Body)
}

// CreateBatch materializes records via
// POST /{resource}/create_checklist_batch/. An idempotency key is attached
// so a retried batch does not double-create rows.
func (c *Client) CreateBatch(ctx context.Context, req CreateBatchRequest) ([]Record, error) {
	url := fmt.Sprintf("%s/%s/create_checklist_batch/", c.baseURL, c.resource)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal batch request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build batch request: %w", err)
	}
	c.setHeaders(httpReq)
	httpReq.Header.Set("Idempotency-Key", uuid.NewString())

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &repository.NetworkError{Op: "create batch", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, serverError("create batch", resp)
	}

	return decodeRecordList(resp.Body)
}

// ToggleItem flips completion server-side via POST /{resource}/{id}/toggle/
// and returns the authoritative record.
func (c *Client) ToggleItem(ctx context.Context, id string) (Record, error) {
	url := fmt.Sprintf("%s/%s/%s/toggle/", c.baseURL, c.resource, id)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return Record{}, fmt.Errorf("failed to build toggle request: %w", err)
	}
	c.setHeaders(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return Record{}, &repository.NetworkError{Op: "toggle", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Record{}, serverError("toggle", resp)
	}

	var rec Record
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		return Record{}, fmt.Errorf("failed to decode toggle response: %w", err)
	}
	return rec, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Token %s", c.authToken))
}

func serverError(op string, resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return &repository.ServerError{
		Op:         op,
		StatusCode: resp.StatusCode,
		Body:       string(raw),
	}
}

// decodeRecordList tolerates both the bare-array and the DRF-paginated
// {"results": [...]} list shapes the portal backend has served over time.
func decodeRecordList(r io.Reader) ([]Record, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read list response: %w", err)
	}

	var records []Record
	if err := json.Unmarshal(raw, &records); err == nil {
		return records, nil
	}

	var paged struct {
		Results []Record `json:"results"`
	}
	if err := json.Unmarshal(raw, &paged); err != nil {
		return nil, fmt.Errorf("failed to decode list response: %w", err)
	}
	return paged.Results, nil
}
