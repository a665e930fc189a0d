package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maison-decor/models"
)

func TestValidateStructUsesJSONFieldNames(t *testing.T) {
	details := ValidateStruct(models.ContactRequest{})
	require.NotEmpty(t, details)
	for _, d := range details {
		assert.NotContains(t, d.Field, "Name")
	}
}

func TestValidateStructPassesValidContact(t *testing.T) {
	details := ValidateStruct(models.ContactRequest{
		Name:    "Jane O'Neill-Doe",
		Email:   "jane@example.com",
		Phone:   "+1 (555) 123-4567",
		Message: "Interested in the lamp",
	})
	assert.Nil(t, details)
}

func TestValidateStructRejectsBadName(t *testing.T) {
	details := ValidateStruct(models.ContactRequest{
		Name:    "Jane123",
		Email:   "jane@example.com",
		Phone:   "+15551234567",
		Message: "Interested in the lamp",
	})
	require.Len(t, details, 1)
	assert.Equal(t, "name", details[0].Field)
}

func TestValidateStructReportsNestedItemFields(t *testing.T) {
	details := ValidateStruct(models.EnquiryRequest{
		Name:       "Jane Doe",
		Email:      "jane@example.com",
		Phone:      "+15551234567",
		Message:    "Interested in the lamp",
		Items:      []models.EnquiryItem{{ID: "a1", Name: "Lamp", Price: 20000, Quantity: 1}},
		TotalItems: 1,
		TotalValue: 20000,
		Timestamp:  "2024-01-01T00:00:00Z",
	})
	require.Len(t, details, 1)
	assert.Contains(t, details[0].Field, "items[0]")
	assert.Contains(t, details[0].Field, "price")
}

func TestValidateStructRejectsBadTimestamp(t *testing.T) {
	req := models.EnquiryRequest{
		Name:       "Jane Doe",
		Email:      "jane@example.com",
		Phone:      "+15551234567",
		Message:    "Interested in the lamp",
		Items:      []models.EnquiryItem{{ID: "a1", Name: "Lamp", Price: 100, Quantity: 2}},
		TotalItems: 2,
		TotalValue: 200,
		Timestamp:  "yesterday",
	}
	details := ValidateStruct(req)
	require.Len(t, details, 1)
	assert.Equal(t, "timestamp", details[0].Field)
}
