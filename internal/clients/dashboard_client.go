package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/MosaabBleik/pharmacy-service/internal/dashboard"
)

var (
	ErrTimeout     = errors.New("request timed out")
	ErrCanceled    = errors.New("request canceled")
	ErrNetwork     = errors.New("network error")
	ErrUnavailable = errors.New("dashboard service unavailable")
)

// APIError is a non-2xx answer from the dashboard service.
type APIError struct {
	Status  int
	Code    string
	Message string
	Notice  *dashboard.Notice
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s (%d %s)", e.Message, e.Status, e.Code)
	}
	return fmt.Sprintf("%s (%d)", e.Message, e.Status)
}

// ActionResult is the body of a successful action.
type ActionResult struct {
	Notice dashboard.Notice `json:"notice"`
}

type DashboardClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewDashboardClient(baseURL string, timeout time.Duration) *DashboardClient {
	return &DashboardClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *DashboardClient) Dashboard(ctx context.Context) (*dashboard.View, error) {
	var view dashboard.View
	if err := c.do(ctx, http.MethodGet, "/api/dashboard", nil, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

func (c *DashboardClient) Restock(ctx context.Context, itemID string, amount int) (*ActionResult, error) {
	var body any
	if amount > 0 {
		body = map[string]int{"amount": amount}
	}
	return c.action(ctx, http.MethodPost, "/api/inventory/"+url.PathEscape(itemID)+"/restock", body)
}

func (c *DashboardClient) Accept(ctx context.Context, requestID string) (*ActionResult, error) {
	return c.action(ctx, http.MethodPost, "/api/requests/"+url.PathEscape(requestID)+"/accept", nil)
}

func (c *DashboardClient) Reject(ctx context.Context, requestID string) (*ActionResult, error) {
	return c.action(ctx, http.MethodPost, "/api/requests/"+url.PathEscape(requestID)+"/reject", nil)
}

func (c *DashboardClient) Complete(ctx context.Context, requestID string) (*ActionResult, error) {
	return c.action(ctx, http.MethodPost, "/api/handoffs/"+url.PathEscape(requestID)+"/complete", nil)
}

func (c *DashboardClient) SetOffline(ctx context.Context, offline bool) (*ActionResult, error) {
	return c.action(ctx, http.MethodPut, "/api/mode", map[string]bool{"offline": offline})
}

func (c *DashboardClient) Notices(ctx context.Context, limit int) ([]dashboard.Notice, error) {
	var out struct {
		Notices []dashboard.Notice `json:"notices"`
	}
	path := "/api/notices"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Notices, nil
}

func (c *DashboardClient) action(ctx context.Context, method, path string, body any) (*ActionResult, error) {
	var res ActionResult
	if err := c.do(ctx, method, path, body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *DashboardClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return classify(err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
		return nil

	case resp.StatusCode == http.StatusGatewayTimeout, resp.StatusCode == http.StatusServiceUnavailable:
		return fmt.Errorf("%w: %s", ErrUnavailable, resp.Status)

	default:
		var e struct {
			Error  string            `json:"error"`
			Code   string            `json:"code"`
			Notice *dashboard.Notice `json:"notice"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&e); err != nil || e.Error == "" {
			e.Error = "unexpected response from dashboard service"
		}
		return &APIError{Status: resp.StatusCode, Code: e.Code, Message: e.Error, Notice: e.Notice}
	}
}

func classify(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %w", ErrCanceled, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return fmt.Errorf("%w: %w", ErrTimeout, err)
		}
		return fmt.Errorf("%w: %w", ErrNetwork, err)
	}

	return fmt.Errorf("failed to reach dashboard service: %w", err)
}
