// Package email sends customer notifications through the email service.
package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"ordering/internal/core/domain/model/order"
)

// Notifier implements Notifier by POSTing send requests to the email
// service's HTTP API.
type Notifier struct {
	serviceURL string
	httpClient *http.Client
}

// NewNotifier creates a notifier for the email service at the given base URL.
// A nil client falls back to http.DefaultClient.
func NewNotifier(serviceURL string, client *http.Client) *Notifier {
	if client == nil {
		client = http.DefaultClient
	}
	return &Notifier{
		serviceURL: serviceURL,
		httpClient: client,
	}
}

type sendRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// SendOrderConfirmation sends the confirmation email for a placed order.
func (n *Notifier) SendOrderConfirmation(ctx context.Context, placedOrder *order.Order) error {
	payload := sendRequest{
		To:      placedOrder.CustomerID().String() + "@example.com",
		Subject: "Order Confirmation: " + placedOrder.ID().String(),
		Body: fmt.Sprintf("Your order %s has been placed. Total: %s.",
			placedOrder.ID(), placedOrder.TotalValue()),
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.serviceURL+"/send", bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("email service returned status %d", resp.StatusCode)
	}

	return nil
}
