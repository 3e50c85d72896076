package punch

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c-senju/ponto-fazenda/internal/domain/employee"
	"github.com/c-senju/ponto-fazenda/internal/domain/punch"
	"github.com/c-senju/ponto-fazenda/internal/pkg/validator"
)

type fakePunchRepo struct {
	punch.PunchRepository
	created    []punch.Punch
	listed     []punch.Punch
	lastFilter punch.ListFilter
}

func (f *fakePunchRepo) Create(ctx context.Context, p punch.Punch) (punch.Punch, error) {
	p.ID = int64(len(f.created) + 1)
	p.CreatedAt = time.Now()
	f.created = append(f.created, p)
	return p, nil
}

func (f *fakePunchRepo) List(ctx context.Context, filter punch.ListFilter) ([]punch.Punch, error) {
	f.lastFilter = filter
	return f.listed, nil
}

var testDirectory = employee.Directory{"12": "Maria"}

func TestPunchService_CreateManual(t *testing.T) {
	t.Parallel()
	repo := &fakePunchRepo{}
	svc := NewPunchService(repo, testDirectory)

	resp, err := svc.CreateManual(context.Background(), punch.CreateManualPunchRequest{
		EmployeeID:    "12",
		PunchedAt:     "2025-08-05 07:00:00",
		Justification: "esqueceu de bater o ponto",
	})
	require.NoError(t, err)

	assert.Equal(t, "Maria", resp.EmployeeName)
	assert.Equal(t, "2025-08-05 07:00:00", resp.PunchedAt)
	assert.Equal(t, punch.OriginManual, resp.Origin)
	require.NotNil(t, resp.Justification)
	assert.Equal(t, "esqueceu de bater o ponto", *resp.Justification)

	require.Len(t, repo.created, 1)
	assert.Equal(t, punch.OriginManual, repo.created[0].Origin)
}

func TestPunchService_CreateManual_Validation(t *testing.T) {
	t.Parallel()
	svc := NewPunchService(&fakePunchRepo{}, testDirectory)

	_, err := svc.CreateManual(context.Background(), punch.CreateManualPunchRequest{
		EmployeeID: "12",
		PunchedAt:  "05/08/2025 07:00",
	})
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	fields := errs.ToMap()
	assert.Contains(t, fields, "punched_at")
	assert.Contains(t, fields, "justification")
}

func TestPunchService_List(t *testing.T) {
	t.Parallel()
	repo := &fakePunchRepo{listed: []punch.Punch{
		{ID: 2, EmployeeID: "12", PunchedAt: time.Date(2025, 8, 5, 11, 0, 0, 0, time.Local), Origin: punch.OriginDevice},
		{ID: 1, EmployeeID: "99", PunchedAt: time.Date(2025, 8, 5, 7, 0, 0, 0, time.Local), Origin: punch.OriginDevice},
	}}
	svc := NewPunchService(repo, testDirectory)

	employeeID := "12"
	responses, err := svc.List(context.Background(), punch.ListFilter{EmployeeID: &employeeID})
	require.NoError(t, err)
	require.Len(t, responses, 2)

	assert.Equal(t, "Maria", responses[0].EmployeeName)
	assert.Equal(t, employee.UnknownName, responses[1].EmployeeName)
	require.NotNil(t, repo.lastFilter.EmployeeID)
	assert.Equal(t, "12", *repo.lastFilter.EmployeeID)
}

func TestPunchService_List_InvalidDates(t *testing.T) {
	t.Parallel()
	svc := NewPunchService(&fakePunchRepo{}, testDirectory)

	bad := "yesterday"
	_, err := svc.List(context.Background(), punch.ListFilter{StartDate: &bad})
	require.Error(t, err)
}
