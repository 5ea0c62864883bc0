package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const optionsBody = `{
	"optionChain": {
		"result": [
			{
				"quote": {
					"symbol": "INTU",
					"regularMarketPrice": 612.43,
					"regularMarketDayHigh": 618.20
				}
			}
		],
		"error": null
	}
}`

func TestGetQuote(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(optionsBody))
	}))
	defer server.Close()

	c := NewClient(server.URL, WithTimeout(5*time.Second))

	q, err := c.GetQuote(context.Background(), "INTU")
	if err != nil {
		t.Fatalf("GetQuote failed: %v", err)
	}

	if gotPath != "/v7/finance/options/INTU" {
		t.Errorf("request path = %q, want %q", gotPath, "/v7/finance/options/INTU")
	}
	if q.LastPrice != 612.43 {
		t.Errorf("LastPrice = %v, want 612.43", q.LastPrice)
	}
	if q.DayHigh != 618.20 {
		t.Errorf("DayHigh = %v, want 618.20", q.DayHigh)
	}
}

func TestGetQuoteMalformedResponse(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "empty result list",
			body: `{"optionChain": {"result": [], "error": null}}`,
		},
		{
			name: "missing regularMarketPrice",
			body: `{"optionChain": {"result": [{"quote": {"symbol": "INTU", "regularMarketDayHigh": 618.20}}], "error": null}}`,
		},
		{
			name: "missing regularMarketDayHigh",
			body: `{"optionChain": {"result": [{"quote": {"symbol": "INTU", "regularMarketPrice": 612.43}}], "error": null}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			c := NewClient(server.URL)

			_, err := c.GetQuote(context.Background(), "INTU")
			if err == nil {
				t.Fatal("GetQuote expected error, got nil")
			}
			if !errors.Is(err, ErrMalformedResponse) {
				t.Errorf("GetQuote error = %v, want ErrMalformedResponse", err)
			}
		})
	}
}

func TestGetQuoteHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	c := NewClient(server.URL)

	_, err := c.GetQuote(context.Background(), "NOPE")
	if err == nil {
		t.Fatal("GetQuote expected error, got nil")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("GetQuote error = %v, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want %d", apiErr.StatusCode, http.StatusNotFound)
	}
}

func TestGetQuoteTransportError(t *testing.T) {
	// Point at a server that is already closed.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	c := NewClient(server.URL, WithTimeout(time.Second))

	_, err := c.GetQuote(context.Background(), "INTU")
	if err == nil {
		t.Fatal("GetQuote expected transport error, got nil")
	}
}
