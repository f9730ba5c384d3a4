// Package checkout drives the customer-facing submission workflows: the
// checkout flow that turns the cart into an immutable order, and the
// visit-request flow for on-site measurement bookings. Both validate with
// the shared rule set before touching the network.
package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/qimma-sa/kitchens-api/validation"
	"github.com/shopspring/decimal"
)

// Client talks to the storefront API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// OrderItemPayload is a frozen copy of one cart line at submission time.
type OrderItemPayload struct {
	ProductID        uint             `json:"productId"`
	Meters           decimal.Decimal  `json:"meters"`
	PricePerMeter    *decimal.Decimal `json:"pricePerMeter"`
	LineTotal        *decimal.Decimal `json:"lineTotal"`
	TitleSnapshotAr  string           `json:"titleSnapshotAr"`
	MaterialSnapshot string           `json:"materialSnapshot"`
}

type OrderPayload struct {
	validation.CheckoutForm
	Items          []OrderItemPayload `json:"items"`
	SubtotalAmount *decimal.Decimal   `json:"subtotalAmount"`
}

type VisitPayload struct {
	validation.VisitRequestForm
}

// OrderConfirmation carries the generated identifier shown to the customer.
type OrderConfirmation struct {
	ID uint `json:"id"`
}

type VisitConfirmation struct {
	ID uint `json:"id"`
}

// APIError is a non-2xx response decoded into the server's error message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

func (c *Client) CreateOrder(ctx context.Context, payload OrderPayload) (*OrderConfirmation, error) {
	var conf OrderConfirmation
	if err := c.post(ctx, "/api/orders", payload, &conf); err != nil {
		return nil, err
	}
	return &conf, nil
}

func (c *Client) CreateVisitRequest(ctx context.Context, payload VisitPayload) (*VisitConfirmation, error) {
	var conf VisitConfirmation
	if err := c.post(ctx, "/api/visit-requests", payload, &conf); err != nil {
		return nil, err
	}
	return &conf, nil
}

func (c *Client) post(ctx context.Context, path string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var e struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(data, &e) == nil {
			apiErr.Message = e.Error
		}
		return apiErr
	}

	if out != nil {
		return json.Unmarshal(data, out)
	}
	return nil
}
