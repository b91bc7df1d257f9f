package payments

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateInvoice(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var gotMethod, gotPath, gotContentType string
		var gotBody map[string]interface{}

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotPath = r.URL.Path
			gotContentType = r.Header.Get("Content-Type")

			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			require.NoError(t, json.Unmarshal(body, &gotBody))

			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"invoice_id": 4077}`))
		}))
		defer server.Close()

		gateway := NewRESTGateway(Config{})
		invoiceID, err := gateway.CreateInvoice(context.Background(), server.URL+"/", 32000)
		require.NoError(t, err)
		assert.Equal(t, int64(4077), invoiceID)

		assert.Equal(t, http.MethodPost, gotMethod)
		assert.Equal(t, "/invoice/", gotPath)
		assert.Equal(t, "application/json", gotContentType)
		assert.Equal(t, "9090", gotBody["api_key"])
		assert.Equal(t, float64(32000), gotBody["amount"])
		assert.Equal(t, []interface{}{}, gotBody["metadata"])
	})

	t.Run("Custom API Key", func(t *testing.T) {
		var gotBody map[string]interface{}

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			json.Unmarshal(body, &gotBody)
			w.Write([]byte(`{"invoice_id": 1}`))
		}))
		defer server.Close()

		gateway := NewRESTGateway(Config{APIKey: "1234"})
		_, err := gateway.CreateInvoice(context.Background(), server.URL+"/", 100)
		require.NoError(t, err)
		assert.Equal(t, "1234", gotBody["api_key"])
	})

	t.Run("Provider Error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		gateway := NewRESTGateway(Config{})
		_, err := gateway.CreateInvoice(context.Background(), server.URL+"/", 32000)
		require.Error(t, err)

		var providerErr *ProviderError
		require.True(t, errors.As(err, &providerErr))
		assert.Equal(t, http.StatusServiceUnavailable, providerErr.StatusCode)
		assert.Equal(t, "Error: Service Unavailable", err.Error())
	})

	t.Run("Malformed Response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json`))
		}))
		defer server.Close()

		gateway := NewRESTGateway(Config{})
		_, err := gateway.CreateInvoice(context.Background(), server.URL+"/", 32000)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse provider response")
	})

	t.Run("Unreachable Provider", func(t *testing.T) {
		gateway := NewRESTGateway(Config{})
		_, err := gateway.CreateInvoice(context.Background(), "http://127.0.0.1:1/", 32000)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to call payment provider")
	})
}

func TestInvoiceStatus(t *testing.T) {
	t.Run("Paid", func(t *testing.T) {
		var gotMethod, gotPath string
		var gotBody map[string]interface{}

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotPath = r.URL.Path

			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			require.NoError(t, json.Unmarshal(body, &gotBody))

			w.Write([]byte(`{"paid": true}`))
		}))
		defer server.Close()

		gateway := NewRESTGateway(Config{})
		paid, err := gateway.InvoiceStatus(context.Background(), server.URL+"/", 4077)
		require.NoError(t, err)
		assert.True(t, paid)

		assert.Equal(t, http.MethodGet, gotMethod)
		assert.Equal(t, "/invoice/4077/", gotPath)
		assert.Equal(t, "9090", gotBody["api_key"])
	})

	t.Run("Unpaid", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"paid": false}`))
		}))
		defer server.Close()

		gateway := NewRESTGateway(Config{})
		paid, err := gateway.InvoiceStatus(context.Background(), server.URL+"/", 4077)
		require.NoError(t, err)
		assert.False(t, paid)
	})

	t.Run("Provider Error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		gateway := NewRESTGateway(Config{})
		_, err := gateway.InvoiceStatus(context.Background(), server.URL+"/", 4077)
		require.Error(t, err)

		var providerErr *ProviderError
		require.True(t, errors.As(err, &providerErr))
		assert.Equal(t, "Error: Not Found", err.Error())
	})
}
