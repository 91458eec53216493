package expense

import (
	"testing"

	"github.com/petrodesk/petrodesk-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateExpenseRequestValidate(t *testing.T) {
	req := CreateExpenseRequest{
		Date:        "2024-01-15",
		Category:    CategorySalary,
		Description: "January payroll",
		Amount:      45000,
	}
	assert.NoError(t, req.Validate())

	req.Date = "15/01/2024"
	var verrs validator.ValidationErrors
	require.ErrorAs(t, req.Validate(), &verrs)
	assert.Contains(t, verrs.ToMap(), "date")
}

func TestUpdateExpenseRequestValidate(t *testing.T) {
	// All fields optional; a nil date must not be touched.
	req := UpdateExpenseRequest{ID: "exp-1"}
	assert.NoError(t, req.Validate())

	bad := "someday"
	req.Date = &bad
	var verrs validator.ValidationErrors
	require.ErrorAs(t, req.Validate(), &verrs)
	assert.Contains(t, verrs.ToMap(), "date")
}
