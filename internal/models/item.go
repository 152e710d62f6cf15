package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ItemID identifies an item. The external store may send it as a JSON
// string or a JSON number; both decode to the same textual form.
type ItemID string

// UnmarshalJSON accepts both `"42"` and `42`
func (id *ItemID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ItemID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("item id must be a string or number: %w", err)
	}
	*id = ItemID(n.String())
	return nil
}

// String returns the id as rendered in report rows
func (id ItemID) String() string {
	return string(id)
}

// Item represents a record supplied by the external store
type Item struct {
	ID    ItemID  `json:"id"`
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// AnnotatedItem is a copy of an Item produced by a visibility policy.
// Priority is only ever set on the ADMIN path.
type AnnotatedItem struct {
	Item
	Priority bool `json:"priority"`
}

// FormatValue renders a numeric value the shortest way that round-trips,
// so 300 prints as "300" and 1.5 as "1.5".
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
