package models

import (
	"encoding/json"
	"log"
	"strings"
)

// Storage keys. Each shopper session gets its own pair, composed as
// "<key>:<session_id>" by the repository layer.
const (
	CartKey     = "dcreativeCart"
	CheckoutKey = "dcreativeCheckout"
)

// LineItem is one product entry in a cart. Price keeps the original
// display-formatted string (e.g. "₱350.00") verbatim; it is never rewritten
// after the item enters the cart.
type LineItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Image    string `json:"image"`
	Quantity int    `json:"quantity"`
}

// Cart is the ordered line-item sequence. Insertion order is display order
// and ids are unique across the sequence (enforced by merge-on-add).
type Cart []LineItem

// IndexOf returns the position of the item with the given id, or -1.
func (c Cart) IndexOf(id string) int {
	for i, item := range c {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// ItemCount is the counter-badge value: the sum of all quantities.
func (c Cart) ItemCount() int {
	count := 0
	for _, item := range c {
		count += item.Quantity
	}
	return count
}

// Encode serializes the cart as the whole-document JSON array the store
// persists under a single key.
func (c Cart) Encode() (string, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DecodeCart parses a persisted cart document. The store is advisory, not
// authoritative: malformed JSON or a wrong shape reads as an empty cart
// rather than an error.
func DecodeCart(raw string) Cart {
	if raw == "" {
		return Cart{}
	}

	var cart Cart
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		log.Printf("Discarding malformed cart document: %v", err)
		return Cart{}
	}
	if cart == nil {
		return Cart{}
	}
	return cart
}

// ResolveProductID derives the stable identifier used as the merge key. An
// explicit id from the product markup wins verbatim; otherwise the id is the
// name lower-cased with everything outside [a-z0-9] stripped. A name that
// reduces to the empty string yields an empty id, which is degenerate but
// valid.
func ResolveProductID(explicitID, name string) string {
	if explicitID != "" {
		return explicitID
	}

	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
