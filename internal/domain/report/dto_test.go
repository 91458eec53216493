package report

import (
	"testing"

	"github.com/petrodesk/petrodesk-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportSalesRequestValidate(t *testing.T) {
	req := ExportSalesRequest{Format: FormatCSV, DateFrom: "2024-01-01", DateTo: "2024-01-31"}
	assert.NoError(t, req.Validate())

	// Date bounds are optional.
	req = ExportSalesRequest{Format: FormatPDF}
	assert.NoError(t, req.Validate())
}

func TestExportSalesRequestValidateRejectsBadInput(t *testing.T) {
	tests := []struct {
		name  string
		req   ExportSalesRequest
		field string
	}{
		{"unknown format", ExportSalesRequest{Format: "docx"}, "format"},
		{"malformed date_from", ExportSalesRequest{Format: FormatCSV, DateFrom: "31-01-2024"}, "date_from"},
		{"malformed date_to", ExportSalesRequest{Format: FormatCSV, DateTo: "2024/01/31"}, "date_to"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()

			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs.ToMap(), tt.field)
		})
	}
}
