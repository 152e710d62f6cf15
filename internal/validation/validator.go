package validation

import (
	"fmt"
	"math"
	"strings"

	"github.com/item-report-generator/internal/models"
)

// ValidationError represents a single validation error
type ValidationError struct {
	Index   int         `json:"index"` // position in the item list, -1 for the user
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// Error implements the error interface
func (e ValidationError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("items[%d].%s: %s", e.Index, e.Field, e.Message)
	}
	return fmt.Sprintf("user.%s: %s", e.Field, e.Message)
}

// Validator checks report inputs at the system boundary.
// Report generation itself never fails; callers that want stricter input
// checks run these first.
type Validator struct {
	seenItemIDs map[models.ItemID]bool
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		seenItemIDs: make(map[models.ItemID]bool),
	}
}

// Reset clears the duplicate-id cache
func (v *Validator) Reset() {
	v.seenItemIDs = make(map[models.ItemID]bool)
}

// ValidateUser validates the report viewer
func (v *Validator) ValidateUser(user *models.User) []ValidationError {
	var errors []ValidationError

	if user == nil {
		return []ValidationError{{Index: -1, Field: "user", Message: "user is required"}}
	}

	// Validate name
	if strings.TrimSpace(user.Name) == "" {
		errors = append(errors, ValidationError{Index: -1, Field: "name", Message: "name is required"})
	}

	// Unknown roles are legal and see nothing, so only emptiness is rejected
	if user.Role == "" {
		errors = append(errors, ValidationError{Index: -1, Field: "role", Message: "role is required"})
	}

	return errors
}

// ValidateItem validates a single item at position index
func (v *Validator) ValidateItem(item *models.Item, index int) []ValidationError {
	var errors []ValidationError

	// Validate ID
	if item.ID == "" {
		errors = append(errors, ValidationError{Index: index, Field: "id", Message: "id is required"})
	} else if v.seenItemIDs[item.ID] {
		errors = append(errors, ValidationError{Index: index, Field: "id", Message: "duplicate id", Value: item.ID})
	} else {
		v.seenItemIDs[item.ID] = true
	}

	// Validate name
	if item.Name == "" {
		errors = append(errors, ValidationError{Index: index, Field: "name", Message: "name is required"})
	}

	// Validate value
	if math.IsNaN(item.Value) || math.IsInf(item.Value, 0) {
		errors = append(errors, ValidationError{Index: index, Field: "value", Message: "value must be a finite number", Value: models.FormatValue(item.Value)})
	}

	return errors
}

// ValidateItems validates every item and reports duplicates across the list
func (v *Validator) ValidateItems(items []models.Item) []ValidationError {
	var errors []ValidationError
	for i := range items {
		errors = append(errors, v.ValidateItem(&items[i], i)...)
	}
	return errors
}
