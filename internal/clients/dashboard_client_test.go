package clients

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardClient_Restock(t *testing.T) {
	var gotPath, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"notice": map[string]string{"title": "Inventory updated", "description": "Added +5 units."},
		})
	}))
	defer srv.Close()

	c := NewDashboardClient(srv.URL, time.Second)
	res, err := c.Restock(context.Background(), "paracetamol", 5)
	require.NoError(t, err)

	assert.Equal(t, "/api/inventory/paracetamol/restock", gotPath)
	assert.JSONEq(t, `{"amount":5}`, gotBody)
	assert.Equal(t, "Inventory updated", res.Notice.Title)
}

func TestDashboardClient_apiError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error":  "Insufficient stock for Acyclovir 400mg",
			"code":   "FAILED_PRECONDITION",
			"notice": map[string]string{"title": "Insufficient stock"},
		})
	}))
	defer srv.Close()

	_, err := NewDashboardClient(srv.URL, time.Second).Accept(context.Background(), "r4")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "FAILED_PRECONDITION", apiErr.Code)
	require.NotNil(t, apiErr.Notice)
	assert.Equal(t, "Insufficient stock", apiErr.Notice.Title)
}

func TestDashboardClient_unavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewDashboardClient(srv.URL, time.Second).Dashboard(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestDashboardClient_timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	_, err := NewDashboardClient(srv.URL, 50*time.Millisecond).Notices(context.Background(), 5)
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestDashboardClient_canceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewDashboardClient(srv.URL, time.Second).SetOffline(ctx, true)
	assert.ErrorIs(t, err, ErrCanceled)
}

func TestDashboardClient_networkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := srv.URL
	srv.Close()

	_, err := NewDashboardClient(addr, time.Second).Complete(context.Background(), "r1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNetwork) || errors.Is(err, ErrTimeout), err.Error())
}
