package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"padelmania/internal/domain"
)

var (
	ErrEmptyCart    = errors.New("checkout: no items to pay for")
	ErrInvalidTotal = errors.New("checkout: total must be positive")
)

// PreferenceItem is the line-item shape the payment gateway expects.
type PreferenceItem struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
	Category string `json:"category"`
}

// Preference is the opaque redirect target the gateway hands back.
type Preference struct {
	ID               string `json:"id"`
	InitPoint        string `json:"init_point"`
	SandboxInitPoint string `json:"sandbox_init_point,omitempty"`
}

// PreferenceItems maps cart lines to the gateway's item shape.
func PreferenceItems(items []domain.CartItem) []PreferenceItem {
	out := make([]PreferenceItem, 0, len(items))
	for _, it := range items {
		out = append(out, PreferenceItem{
			ID:       it.ID,
			Title:    it.Title,
			Price:    it.Price,
			Quantity: it.Quantity,
			Category: it.Category,
		})
	}
	return out
}

// PreferenceClient creates payment preferences against an external
// gateway endpoint. The gateway's protocol beyond {items,total} in and
// {id,init_point} out is none of our business.
type PreferenceClient struct {
	baseURL string
	http    *http.Client
}

func NewPreferenceClient(baseURL string) *PreferenceClient {
	return &PreferenceClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type preferenceRequest struct {
	Items             []PreferenceItem `json:"items"`
	Total             int              `json:"total"`
	ExternalReference string           `json:"external_reference"`
}

// Create posts the cart contents and returns the gateway's preference.
// Empty items and non-positive totals are rejected before any network
// traffic, matching the gateway's own validation.
func (c *PreferenceClient) Create(ctx context.Context, items []PreferenceItem, total int) (Preference, error) {
	if len(items) == 0 {
		return Preference{}, ErrEmptyCart
	}
	if total <= 0 {
		return Preference{}, ErrInvalidTotal
	}

	body, err := json.Marshal(preferenceRequest{
		Items:             items,
		Total:             total,
		ExternalReference: "ORDER-" + uuid.NewString(),
	})
	if err != nil {
		return Preference{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/create-preference", bytes.NewReader(body))
	if err != nil {
		return Preference{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Preference{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Preference{}, fmt.Errorf("checkout: gateway returned %s", resp.Status)
	}

	var pref Preference
	if err := json.NewDecoder(resp.Body).Decode(&pref); err != nil {
		return Preference{}, fmt.Errorf("checkout: decode gateway response: %w", err)
	}
	return pref, nil
}
