// Package client is the Go consumer of the dairycoop-data API. Every
// endpoint answers the same envelope, so one generic CRUD core covers all
// resources; the typed helpers on top exist for the non-CRUD extras.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Record is a wire-format record: snake_case keys as served by the API.
type Record = map[string]any

// FieldError mirrors the server's validation error item.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Envelope is the uniform response shape.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Errors  []FieldError    `json:"errors,omitempty"`
}

// APIError carries a failed envelope back to the caller.
type APIError struct {
	StatusCode int
	Message    string
	Errors     []FieldError
}

func (e *APIError) Error() string {
	if len(e.Errors) > 0 {
		return fmt.Sprintf("api error (status %d): %s: %v", e.StatusCode, e.Message, e.Errors)
	}
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is an APIError with HTTP 404.
func IsNotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == 404
}

// IsValidation reports whether err is an APIError carrying field errors.
func IsValidation(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && len(apiErr.Errors) > 0
}

type Client struct {
	httpClient *resty.Client
}

func New(baseURL string) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	return &Client{httpClient: c}
}

// do executes the request and decodes the envelope; a non-success envelope
// becomes an APIError.
func (c *Client) do(ctx context.Context, method, path string, body any) (*Envelope, error) {
	req := c.httpClient.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, fmt.Errorf("request %s %s failed: %w", method, path, err)
	}

	var env Envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return nil, fmt.Errorf("decode response for %s %s: %w", method, path, err)
	}
	if !env.Success {
		return nil, &APIError{
			StatusCode: resp.StatusCode(),
			Message:    env.Message,
			Errors:     env.Errors,
		}
	}
	return &env, nil
}

// ============================================
// Generic CRUD
// ============================================

// List fetches all records of a resource, e.g. List(ctx, "farmers").
func (c *Client) List(ctx context.Context, resource string) ([]Record, error) {
	env, err := c.do(ctx, "GET", "/api/"+resource, nil)
	if err != nil {
		return nil, err
	}
	var records []Record
	if err := json.Unmarshal(env.Data, &records); err != nil {
		return nil, fmt.Errorf("decode %s list: %w", resource, err)
	}
	return records, nil
}

func (c *Client) Get(ctx context.Context, resource, id string) (Record, error) {
	env, err := c.do(ctx, "GET", "/api/"+resource+"/"+id, nil)
	if err != nil {
		return nil, err
	}
	var record Record
	if err := json.Unmarshal(env.Data, &record); err != nil {
		return nil, fmt.Errorf("decode %s record: %w", resource, err)
	}
	return record, nil
}

func (c *Client) Create(ctx context.Context, resource string, body Record) (Record, error) {
	env, err := c.do(ctx, "POST", "/api/"+resource, body)
	if err != nil {
		return nil, err
	}
	var record Record
	if err := json.Unmarshal(env.Data, &record); err != nil {
		return nil, fmt.Errorf("decode created %s record: %w", resource, err)
	}
	return record, nil
}

func (c *Client) Update(ctx context.Context, resource, id string, body Record) (Record, error) {
	env, err := c.do(ctx, "PUT", "/api/"+resource+"/"+id, body)
	if err != nil {
		return nil, err
	}
	var record Record
	if err := json.Unmarshal(env.Data, &record); err != nil {
		return nil, fmt.Errorf("decode updated %s record: %w", resource, err)
	}
	return record, nil
}

func (c *Client) Delete(ctx context.Context, resource, id string) error {
	_, err := c.do(ctx, "DELETE", "/api/"+resource+"/"+id, nil)
	return err
}

// ============================================
// Non-CRUD extras
// ============================================

// PaymentStats mirrors GET /api/payments/stats.
type PaymentStats struct {
	Total       int     `json:"total"`
	Pending     int     `json:"pending"`
	Paid        int     `json:"paid"`
	Failed      int     `json:"failed"`
	TotalAmount float64 `json:"total_amount"`
	PaidAmount  float64 `json:"paid_amount"`
}

func (c *Client) PaymentStats(ctx context.Context) (*PaymentStats, error) {
	env, err := c.do(ctx, "GET", "/api/payments/stats", nil)
	if err != nil {
		return nil, err
	}
	var stats PaymentStats
	if err := json.Unmarshal(env.Data, &stats); err != nil {
		return nil, fmt.Errorf("decode payment stats: %w", err)
	}
	return &stats, nil
}

// CertificationStats mirrors GET /api/certifications/stats.
type CertificationStats struct {
	Total        int `json:"total"`
	Valid        int `json:"valid"`
	Expired      int `json:"expired"`
	Suspended    int `json:"suspended"`
	ExpiringSoon int `json:"expiring_soon"`
}

func (c *Client) CertificationStats(ctx context.Context) (*CertificationStats, error) {
	env, err := c.do(ctx, "GET", "/api/certifications/stats", nil)
	if err != nil {
		return nil, err
	}
	var stats CertificationStats
	if err := json.Unmarshal(env.Data, &stats); err != nil {
		return nil, fmt.Errorf("decode certification stats: %w", err)
	}
	return &stats, nil
}

// ExpiringCertifications lists certifications expiring within the next days.
func (c *Client) ExpiringCertifications(ctx context.Context, days int) ([]Record, error) {
	env, err := c.do(ctx, "GET", fmt.Sprintf("/api/certifications/expiring/%d", days), nil)
	if err != nil {
		return nil, err
	}
	var records []Record
	if err := json.Unmarshal(env.Data, &records); err != nil {
		return nil, fmt.Errorf("decode expiring certifications: %w", err)
	}
	return records, nil
}

func (c *Client) UpdateDeliveryStatus(ctx context.Context, id, status string) error {
	_, err := c.do(ctx, "PATCH", "/api/deliveries/"+id+"/status", Record{"status": status})
	return err
}

func (c *Client) UpdateMessageStatus(ctx context.Context, id, status string) error {
	_, err := c.do(ctx, "PATCH", "/api/messages/"+id+"/status", Record{"status": status})
	return err
}
