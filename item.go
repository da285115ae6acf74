package kakeibo

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Item is a single ledger entry.
type Item struct {
	ID          uint
	Label       string
	Amount      uint64 // in the currency minor unit
	Description string
	CreatedAt   Timestamp
	UpdatedAt   Timestamp
}

// MarshalJSON writes the item fields in their canonical order.
func (it Item) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", it.ID)
	w.Append("item", it.Label)
	w.Append("money", it.Amount)
	w.Append("description", it.Description)
	w.Append("created_at", it.CreatedAt)
	w.Append("update_at", it.UpdatedAt)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// Every field is required, the id must be positive and the amount at most MaxAmount.
func (it *Item) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return errors.New("item must be an object, got null")
	}
	var temp struct {
		ID          *uint      `json:"id"`
		Label       *string    `json:"item"`
		Amount      *uint64    `json:"money"`
		Description *string    `json:"description"`
		CreatedAt   *Timestamp `json:"created_at"`
		UpdatedAt   *Timestamp `json:"update_at"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return fmt.Errorf("could not decode item %s: %w", data, err)
	}

	var missing []string
	for _, f := range []struct {
		name string
		set  bool
	}{
		{"id", temp.ID != nil},
		{"item", temp.Label != nil},
		{"money", temp.Amount != nil},
		{"description", temp.Description != nil},
		{"created_at", temp.CreatedAt != nil},
		{"update_at", temp.UpdatedAt != nil},
	} {
		if !f.set {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("item %s: missing fields %q", data, missing)
	}
	if *temp.ID == 0 {
		return fmt.Errorf("item %s: %w", data, ErrInvalidID)
	}
	if *temp.Amount > MaxAmount {
		return fmt.Errorf("item %d: %w", *temp.ID, ErrAmountOverflow)
	}

	*it = Item{
		ID:          *temp.ID,
		Label:       *temp.Label,
		Amount:      *temp.Amount,
		Description: *temp.Description,
		CreatedAt:   *temp.CreatedAt,
		UpdatedAt:   *temp.UpdatedAt,
	}
	return nil
}
