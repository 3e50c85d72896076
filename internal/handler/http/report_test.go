package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c-senju/ponto-fazenda/internal/domain/reconcile"
)

type fakeReconcileService struct {
	lastFilter reconcile.ReportFilter
	report     reconcile.ReportResponse
}

func (f *fakeReconcileService) Report(ctx context.Context, filter reconcile.ReportFilter) (reconcile.ReportResponse, error) {
	f.lastFilter = filter
	if err := filter.Validate(); err != nil {
		return reconcile.ReportResponse{}, err
	}
	return f.report, nil
}

func TestReportHandler_Get(t *testing.T) {
	t.Parallel()
	svc := &fakeReconcileService{report: reconcile.ReportResponse{
		MissingPunches: []reconcile.MissingPunch{
			{EmployeeName: "Maria", Date: "05/08/2025", ExpectedTime: "13:00"},
		},
		Hours: map[string]reconcile.HoursSummary{
			"Maria": {Normal: "4h 0m", Extra50: "0h 0m", Extra100: "0h 0m"},
		},
	}}
	h := NewReportHandler(svc)

	rec := httptest.NewRecorder()
	h.Get(rec, httptest.NewRequest(http.MethodGet, "/api/v1/report?start_date=2025-08-01&end_date=2025-08-05", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.lastFilter.StartDate)
	assert.Equal(t, "2025-08-01", *svc.lastFilter.StartDate)
	require.NotNil(t, svc.lastFilter.EndDate)
	assert.Equal(t, "2025-08-05", *svc.lastFilter.EndDate)

	var body struct {
		Success bool                      `json:"success"`
		Data    reconcile.ReportResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	require.Len(t, body.Data.MissingPunches, 1)
	assert.Equal(t, "13:00", body.Data.MissingPunches[0].ExpectedTime)
	assert.Equal(t, "4h 0m", body.Data.Hours["Maria"].Normal)
}

func TestReportHandler_Get_NoFilter(t *testing.T) {
	t.Parallel()
	svc := &fakeReconcileService{}
	h := NewReportHandler(svc)

	rec := httptest.NewRecorder()
	h.Get(rec, httptest.NewRequest(http.MethodGet, "/api/v1/report", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, svc.lastFilter.StartDate)
	assert.Nil(t, svc.lastFilter.EndDate)
}

func TestReportHandler_Get_InvalidDate(t *testing.T) {
	t.Parallel()
	h := NewReportHandler(&fakeReconcileService{})

	rec := httptest.NewRecorder()
	h.Get(rec, httptest.NewRequest(http.MethodGet, "/api/v1/report?start_date=05-08-2025", nil))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body struct {
		Success bool `json:"success"`
		Error   struct {
			Code    string            `json:"code"`
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	assert.Contains(t, body.Error.Details, "start_date")
}
