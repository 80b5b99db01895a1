package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/wrenchworks/shop/internal/shop/entity"
	"github.com/wrenchworks/shop/internal/shop/service"
)

// =============================================================================
// Client — HTTP client for the shop REST API
// Used by the console tool; wraps every endpoint with typed requests
// and responses.
// =============================================================================

// APIError carries the status code and error message of a failed call.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error [%d]: %s", e.StatusCode, e.Message)
}

// Client talks to a running shop server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// doRequest executes an API request.
// body is JSON-serialized when non-nil; result is filled from the
// response body when non-nil. Non-2xx responses become an *APIError
// with the server's error message.
func (c *Client) doRequest(ctx context.Context, method, path string, body interface{}, result interface{}) error {
	var reqBody io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errBody struct {
			Error string `json:"error"`
		}
		message := resp.Status
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errBody); decodeErr == nil && errBody.Error != "" {
			message = errBody.Error
		}
		return &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	if result != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// === Customers ===

func (c *Client) ListCustomers(ctx context.Context) ([]entity.Customer, error) {
	var customers []entity.Customer
	err := c.doRequest(ctx, http.MethodGet, "/api/customers", nil, &customers)
	return customers, err
}

func (c *Client) GetCustomer(ctx context.Context, id int) (*entity.Customer, error) {
	var customer entity.Customer
	if err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/api/customers/%d", id), nil, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (c *Client) CreateCustomer(ctx context.Context, req service.CreateCustomerRequest) (*entity.Customer, error) {
	var customer entity.Customer
	if err := c.doRequest(ctx, http.MethodPost, "/api/customers", req, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (c *Client) DeleteCustomer(ctx context.Context, id int) error {
	return c.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/api/customers/%d", id), nil, nil)
}

func (c *Client) CustomerOrders(ctx context.Context, id int) (*service.CustomerWithOrders, error) {
	var view service.CustomerWithOrders
	if err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/api/customers/%d/orders", id), nil, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

// === Vehicles ===

func (c *Client) ListVehicles(ctx context.Context) ([]entity.Vehicle, error) {
	var vehicles []entity.Vehicle
	err := c.doRequest(ctx, http.MethodGet, "/api/vehicles", nil, &vehicles)
	return vehicles, err
}

func (c *Client) GetVehicle(ctx context.Context, id int) (*entity.Vehicle, error) {
	var vehicle entity.Vehicle
	if err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/api/vehicles/%d", id), nil, &vehicle); err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (c *Client) CreateVehicle(ctx context.Context, req service.CreateVehicleRequest) (*entity.Vehicle, error) {
	var vehicle entity.Vehicle
	if err := c.doRequest(ctx, http.MethodPost, "/api/vehicles", req, &vehicle); err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (c *Client) DeleteVehicle(ctx context.Context, id int) error {
	return c.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/api/vehicles/%d", id), nil, nil)
}

func (c *Client) VehicleHistory(ctx context.Context, id int) (*service.VehicleHistory, error) {
	var view service.VehicleHistory
	if err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/api/vehicles/%d/history", id), nil, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

// === Repair orders ===

func (c *Client) ListOrders(ctx context.Context) ([]entity.RepairOrder, error) {
	var orders []entity.RepairOrder
	err := c.doRequest(ctx, http.MethodGet, "/api/repairorders", nil, &orders)
	return orders, err
}

func (c *Client) GetOrder(ctx context.Context, id int) (*entity.RepairOrder, error) {
	var order entity.RepairOrder
	if err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/api/repairorders/%d", id), nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) CreateOrder(ctx context.Context, req service.CreateOrderRequest) (*entity.RepairOrder, error) {
	var order entity.RepairOrder
	if err := c.doRequest(ctx, http.MethodPost, "/api/repairorders", req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) SearchOrders(ctx context.Context, lastName string) ([]entity.RepairOrder, error) {
	var orders []entity.RepairOrder
	path := "/api/repairorders/search?lastName=" + url.QueryEscape(lastName)
	err := c.doRequest(ctx, http.MethodGet, path, nil, &orders)
	return orders, err
}

func (c *Client) OrdersByStatus(ctx context.Context, status string) ([]entity.RepairOrder, error) {
	var orders []entity.RepairOrder
	path := "/api/repairorders/status/" + url.PathEscape(status)
	err := c.doRequest(ctx, http.MethodGet, path, nil, &orders)
	return orders, err
}

func (c *Client) UpdateOrderStatus(ctx context.Context, id int, status string) (*entity.RepairOrder, error) {
	var order entity.RepairOrder
	body := map[string]string{"status": status}
	if err := c.doRequest(ctx, http.MethodPatch, fmt.Sprintf("/api/repairorders/%d/status", id), body, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) DeleteOrder(ctx context.Context, id int) error {
	return c.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/api/repairorders/%d", id), nil, nil)
}

// === Dashboard ===

func (c *Client) Statistics(ctx context.Context) (*service.Statistics, error) {
	var stats service.Statistics
	if err := c.doRequest(ctx, http.MethodGet, "/api/dashboard/statistics", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
