package productcatalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client talks to the product catalog that holds the sellable
// products services are linked to.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        Logger
}

// Logger is the logging surface the client needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// NewClient creates a catalog client
func NewClient(baseURL, token string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetProduct fetches one product with its variants
func (c *Client) GetProduct(ctx context.Context, productID string) (*Product, error) {
	endpoint := fmt.Sprintf("%s/products/%s", c.baseURL, url.PathEscape(productID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, ErrProductNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var product Product
	if err := json.NewDecoder(resp.Body).Decode(&product); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &product, nil
}

// GetProductWithGracefulDegradation fetches a product but tolerates
// catalog outages. Services remain editable without catalog data;
// only the product preview on the review screen degrades.
func (c *Client) GetProductWithGracefulDegradation(ctx context.Context, productID string) (*Product, error) {
	product, err := c.GetProduct(ctx, productID)
	if err != nil {
		if err == ErrProductNotFound {
			c.log.Warn("Product %s not found in catalog", productID)
			return nil, err
		}

		c.log.Error("Product catalog unavailable, degrading for product=%s: %v", productID, err)
		return nil, fmt.Errorf("%w: product=%s, error=%v", ErrServiceDegraded, productID, err)
	}

	return product, nil
}
