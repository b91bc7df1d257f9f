package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultAPIKey is the shared key the provider group agreed on
const DefaultAPIKey = "9090"

// RESTGateway implements Gateway against the providers' invoice REST API
type RESTGateway struct {
	apiKey string
	client *http.Client
}

// Config holds configuration for the REST payment gateway
type Config struct {
	APIKey  string
	Timeout time.Duration
}

// NewRESTGateway creates a new REST payment gateway client
func NewRESTGateway(config Config) *RESTGateway {
	apiKey := config.APIKey
	if apiKey == "" {
		apiKey = DefaultAPIKey
	}
	timeout := config.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &RESTGateway{
		apiKey: apiKey,
		client: &http.Client{Timeout: timeout},
	}
}

// createInvoiceRequest is the payload for the provider's invoice-creation endpoint
type createInvoiceRequest struct {
	APIKey   string        `json:"api_key"`
	Amount   int64         `json:"amount"`
	Metadata []interface{} `json:"metadata"`
}

// createInvoiceResponse is the provider's invoice-creation response body
type createInvoiceResponse struct {
	InvoiceID int64 `json:"invoice_id"`
}

// statusRequest is the payload for the provider's invoice-status endpoint
type statusRequest struct {
	APIKey string `json:"api_key"`
}

// statusResponse is the provider's invoice-status response body
type statusResponse struct {
	Paid bool `json:"paid"`
}

// CreateInvoice POSTs an invoice request to <providerURL>invoice/ and
// returns the invoice id from the response
func (g *RESTGateway) CreateInvoice(ctx context.Context, providerURL string, amountMinor int64) (int64, error) {
	payload := createInvoiceRequest{
		APIKey:   g.apiKey,
		Amount:   amountMinor,
		Metadata: []interface{}{},
	}

	var result createInvoiceResponse
	url := providerURL + "invoice/"
	if err := g.call(ctx, http.MethodPost, url, payload, &result); err != nil {
		return 0, err
	}
	return result.InvoiceID, nil
}

// InvoiceStatus GETs <providerURL>invoice/<invoiceID>/ and returns the
// reported paid flag
func (g *RESTGateway) InvoiceStatus(ctx context.Context, providerURL string, invoiceID int64) (bool, error) {
	payload := statusRequest{APIKey: g.apiKey}

	var result statusResponse
	url := fmt.Sprintf("%sinvoice/%d/", providerURL, invoiceID)
	if err := g.call(ctx, http.MethodGet, url, payload, &result); err != nil {
		return false, err
	}
	return result.Paid, nil
}

// call sends one JSON request to a provider and decodes the 200 response
// into result. Any non-200 status becomes a ProviderError carrying the
// reason phrase.
func (g *RESTGateway) call(ctx context.Context, method, url string, payload, result interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal provider request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to create provider request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call payment provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &ProviderError{
			StatusCode: resp.StatusCode,
			Reason:     http.StatusText(resp.StatusCode),
		}
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read provider response: %w", err)
	}
	if err := json.Unmarshal(respBody, result); err != nil {
		return fmt.Errorf("failed to parse provider response: %w", err)
	}
	return nil
}

var _ Gateway = (*RESTGateway)(nil)
