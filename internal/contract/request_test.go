package contract

import (
	"testing"

	"github.com/alexanderramin/fieldbook/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestNewDashboardRequest_SetsDefaults(t *testing.T) {
	req := NewDashboardRequest()

	assert.Equal(t, BreakdownAll, req.BreakdownPeriod)
	assert.Nil(t, req.Now)
	assert.False(t, req.NoCache)
}

func TestNewComparisonRequest_KeepsKind(t *testing.T) {
	req := NewComparisonRequest(domain.PeriodMonth)
	assert.Equal(t, "month", req.Kind)
	assert.Nil(t, req.Now)
}

func TestReportError_ErrorString(t *testing.T) {
	err := &ReportError{Code: ReportErrInvalidPeriod, Message: `unknown period "decade"`}
	assert.Equal(t, `INVALID_PERIOD: unknown period "decade"`, err.Error())
}

func TestReportErrorCodes_AreDistinct(t *testing.T) {
	codes := []ReportErrorCode{ReportErrInvalidPeriod, ReportErrUnknownProject, ReportErrDataIntegrity}
	seen := make(map[ReportErrorCode]bool)
	for _, c := range codes {
		assert.False(t, seen[c], "duplicate code %s", c)
		seen[c] = true
	}
}
