package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worklog-hq/attendance-backend-go/internal/pkg/validator"
)

func TestExportRequestValidateParsesRange(t *testing.T) {
	req := ExportRequest{StartDate: "2026-03-01", EndDate: "2026-03-31"}
	require.NoError(t, req.Validate())

	start, end := req.Range()
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC), end)
}

func TestExportRequestValidateRejectsBadRanges(t *testing.T) {
	cases := []struct {
		name string
		req  ExportRequest
	}{
		{"missing start", ExportRequest{EndDate: "2026-03-31"}},
		{"missing end", ExportRequest{StartDate: "2026-03-01"}},
		{"malformed start", ExportRequest{StartDate: "01-03-2026", EndDate: "2026-03-31"}},
		{"end before start", ExportRequest{StartDate: "2026-03-31", EndDate: "2026-03-01"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			require.Error(t, err)

			var verrs validator.ValidationErrors
			assert.ErrorAs(t, err, &verrs)
		})
	}
}
