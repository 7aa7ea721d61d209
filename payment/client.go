package payment

import (
	"fmt"
	"log"

	"github.com/go-resty/resty/v2"
)

// Order is the payment provider's order object. It is never persisted
// locally; the id is handed back to the client and correlated again at
// confirmation time.
type Order struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"` // smallest currency unit
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// Client talks to the Razorpay Orders API
type Client struct {
	http *resty.Client
}

// NewClient builds a Razorpay API client authenticated with the key pair
func NewClient(baseURL, keyID, keySecret string) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetBasicAuth(keyID, keySecret),
	}
}

// CreateOrder requests a new order for the given amount in the smallest
// currency unit (paise for INR)
func (c *Client) CreateOrder(amount int64, currency, receipt string, notes map[string]string) (*Order, error) {
	var order Order

	resp, err := c.http.R().
		SetBody(map[string]interface{}{
			"amount":   amount,
			"currency": currency,
			"receipt":  receipt,
			"notes":    notes,
		}).
		SetResult(&order).
		Post("orders")
	if err != nil {
		log.Printf("Razorpay order request failed: %v", err)
		return nil, err
	}
	if resp.StatusCode() != 200 {
		log.Printf("Razorpay order creation rejected: %s", resp.String())
		return nil, fmt.Errorf("order creation failed with status %d", resp.StatusCode())
	}

	return &order, nil
}
