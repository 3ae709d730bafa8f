package attendance

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/Varunmathiazhagan/tap-academy-sub000/internal/domain/attendance"
	"github.com/Varunmathiazhagan/tap-academy-sub000/internal/domain/employee"
	"github.com/Varunmathiazhagan/tap-academy-sub000/internal/pkg/workcalendar"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAttendanceRepo is an in-memory AttendanceRepository enforcing the
// (employee, day) uniqueness constraint the real store provides.
type fakeAttendanceRepo struct {
	records map[string]attendance.Record
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]attendance.Record)}
}

func recordKey(employeeID string, date time.Time) string {
	return employeeID + "|" + workcalendar.DayKey(date)
}

func (f *fakeAttendanceRepo) Create(_ context.Context, record attendance.Record) (attendance.Record, error) {
	key := recordKey(record.EmployeeID, record.Date)
	if _, exists := f.records[key]; exists {
		return attendance.Record{}, attendance.ErrAlreadyCheckedIn
	}
	record.ID = uuid.NewString()
	f.records[key] = record
	return record, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (*attendance.Record, error) {
	if record, ok := f.records[recordKey(employeeID, date)]; ok {
		return &record, nil
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) Update(_ context.Context, record attendance.Record) error {
	key := recordKey(record.EmployeeID, record.Date)
	if _, ok := f.records[key]; !ok {
		return attendance.ErrRecordNotFound
	}
	f.records[key] = record
	return nil
}

func (f *fakeAttendanceRepo) ListByEmployeeBetween(_ context.Context, employeeID string, start, end time.Time) ([]attendance.Record, error) {
	return f.listBetween(map[string]bool{employeeID: true}, start, end), nil
}

func (f *fakeAttendanceRepo) ListByEmployeesBetween(_ context.Context, employeeIDs []string, start, end time.Time) ([]attendance.Record, error) {
	ids := make(map[string]bool, len(employeeIDs))
	for _, id := range employeeIDs {
		ids[id] = true
	}
	return f.listBetween(ids, start, end), nil
}

func (f *fakeAttendanceRepo) listBetween(ids map[string]bool, start, end time.Time) []attendance.Record {
	startKey := workcalendar.DayKey(start)
	endKey := workcalendar.DayKey(end)
	var result []attendance.Record
	for _, record := range f.records {
		dayKey := workcalendar.DayKey(record.Date)
		if ids[record.EmployeeID] && dayKey >= startKey && dayKey <= endKey {
			result = append(result, record)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return workcalendar.DayKey(result[i].Date) > workcalendar.DayKey(result[j].Date)
	})
	return result
}

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByEmail(_ context.Context, email string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.Email == email {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) ListByDepartment(_ context.Context, department string) ([]employee.Employee, error) {
	var result []employee.Employee
	for _, e := range f.employees {
		if e.Department == department {
			result = append(result, e)
		}
	}
	return result, nil
}

func (f *fakeEmployeeRepo) List(_ context.Context) ([]employee.Employee, error) {
	return f.employees, nil
}

// stepClock is a Clock whose instant tests advance by hand.
type stepClock struct {
	t time.Time
}

func (c *stepClock) Now() time.Time {
	return c.t
}

func authedContext(t *testing.T, employeeID string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret-key"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"employee_id": employeeID,
		"type":        "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func newTestService(clk *stepClock, employees ...employee.Employee) (attendance.AttendanceService, *fakeAttendanceRepo) {
	repo := newFakeAttendanceRepo()
	svc := NewAttendanceService(repo, &fakeEmployeeRepo{employees: employees}, clk, testSettings())
	return svc, repo
}

func TestAttendanceService_CheckIn(t *testing.T) {
	clk := &stepClock{t: juneDay(3).Add(9 * time.Hour)}
	svc, _ := newTestService(clk)
	ctx := authedContext(t, "emp-1")

	resp, err := svc.CheckIn(ctx)
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "emp-1", resp.EmployeeID)
	assert.Equal(t, "2026-06-03", resp.Date)
	assert.Equal(t, string(attendance.StatusPresent), resp.Status)
	require.NotNil(t, resp.CheckInTime)
	assert.Nil(t, resp.CheckOutTime)
}

func TestAttendanceService_CheckIn_LateArrival(t *testing.T) {
	clk := &stepClock{t: juneDay(3).Add(9*time.Hour + 20*time.Minute)}
	svc, _ := newTestService(clk)

	resp, err := svc.CheckIn(authedContext(t, "emp-1"))
	require.NoError(t, err)
	assert.Equal(t, string(attendance.StatusLate), resp.Status)
}

func TestAttendanceService_CheckIn_Duplicate(t *testing.T) {
	clk := &stepClock{t: juneDay(3).Add(9 * time.Hour)}
	svc, _ := newTestService(clk)
	ctx := authedContext(t, "emp-1")

	_, err := svc.CheckIn(ctx)
	require.NoError(t, err)

	_, err = svc.CheckIn(ctx)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

// A writer losing the insert race gets the same duplicate outcome as one
// caught by the pre-check.
func TestAttendanceService_CheckIn_LostRace(t *testing.T) {
	clk := &stepClock{t: juneDay(3).Add(9 * time.Hour)}
	repo := newFakeAttendanceRepo()

	_, err := repo.Create(context.Background(), attendance.Record{
		EmployeeID: "emp-1",
		Date:       workcalendar.StartOfDay(clk.Now()),
		Status:     attendance.StatusPresent,
	})
	require.NoError(t, err)

	_, err = repo.Create(context.Background(), attendance.Record{
		EmployeeID: "emp-1",
		Date:       workcalendar.StartOfDay(clk.Now()),
		Status:     attendance.StatusPresent,
	})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestAttendanceService_CheckOut(t *testing.T) {
	clk := &stepClock{t: juneDay(3).Add(8*time.Hour + 50*time.Minute)}
	svc, _ := newTestService(clk)
	ctx := authedContext(t, "emp-1")

	_, err := svc.CheckIn(ctx)
	require.NoError(t, err)

	clk.t = juneDay(3).Add(17 * time.Hour)
	resp, err := svc.CheckOut(ctx)
	require.NoError(t, err)

	assert.Equal(t, string(attendance.StatusPresent), resp.Status)
	assert.InDelta(t, 8.17, resp.TotalHours, 1e-9)
	require.NotNil(t, resp.CheckOutTime)
}

func TestAttendanceService_CheckOut_ShortShift(t *testing.T) {
	clk := &stepClock{t: juneDay(3).Add(8*time.Hour + 50*time.Minute)}
	svc, _ := newTestService(clk)
	ctx := authedContext(t, "emp-1")

	_, err := svc.CheckIn(ctx)
	require.NoError(t, err)

	clk.t = juneDay(3).Add(9*time.Hour + 10*time.Minute)
	resp, err := svc.CheckOut(ctx)
	require.NoError(t, err)

	assert.Equal(t, string(attendance.StatusHalfDay), resp.Status)
	assert.InDelta(t, 0.33, resp.TotalHours, 1e-9)
}

func TestAttendanceService_CheckOut_WithoutCheckIn(t *testing.T) {
	clk := &stepClock{t: juneDay(3).Add(17 * time.Hour)}
	svc, _ := newTestService(clk)

	_, err := svc.CheckOut(authedContext(t, "emp-1"))
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
}

func TestAttendanceService_CheckOut_Twice(t *testing.T) {
	clk := &stepClock{t: juneDay(3).Add(9 * time.Hour)}
	svc, _ := newTestService(clk)
	ctx := authedContext(t, "emp-1")

	_, err := svc.CheckIn(ctx)
	require.NoError(t, err)

	clk.t = juneDay(3).Add(17 * time.Hour)
	_, err = svc.CheckOut(ctx)
	require.NoError(t, err)

	_, err = svc.CheckOut(ctx)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestAttendanceService_GetMyAttendance(t *testing.T) {
	clk := &stepClock{t: juneDay(1).Add(9 * time.Hour)}
	svc, _ := newTestService(clk)
	ctx := authedContext(t, "emp-1")

	// Work June 1 and 3, skip June 2.
	_, err := svc.CheckIn(ctx)
	require.NoError(t, err)
	clk.t = juneDay(1).Add(17 * time.Hour)
	_, err = svc.CheckOut(ctx)
	require.NoError(t, err)

	clk.t = juneDay(3).Add(9 * time.Hour)
	_, err = svc.CheckIn(ctx)
	require.NoError(t, err)
	clk.t = juneDay(3).Add(17 * time.Hour)
	_, err = svc.CheckOut(ctx)
	require.NoError(t, err)

	// Friday June 5: June 1-4 have elapsed.
	clk.t = juneDay(5).Add(8 * time.Hour)
	resp, err := svc.GetMyAttendance(ctx, attendance.MyAttendanceRequest{Month: "2026-06"})
	require.NoError(t, err)

	assert.Equal(t, "2026-06", resp.Month)
	require.Len(t, resp.Records, 4)

	// Newest first, virtual absences filling the gaps.
	assert.Equal(t, "2026-06-04", resp.Records[0].Date)
	assert.True(t, resp.Records[0].IsVirtual)
	assert.Equal(t, "2026-06-03", resp.Records[1].Date)
	assert.False(t, resp.Records[1].IsVirtual)
	assert.Equal(t, "2026-06-02", resp.Records[2].Date)
	assert.True(t, resp.Records[2].IsVirtual)
	assert.Equal(t, "2026-06-01", resp.Records[3].Date)

	assert.Equal(t, 2, resp.Summary.Counts[string(attendance.StatusPresent)])
	assert.Equal(t, 2, resp.Summary.Counts[string(attendance.StatusAbsent)])
	assert.InDelta(t, 16, resp.Summary.TotalHours, 1e-9)
}

func TestAttendanceService_GetMyAttendance_BadMonth(t *testing.T) {
	clk := &stepClock{t: juneDay(5).Add(8 * time.Hour)}
	svc, _ := newTestService(clk)

	_, err := svc.GetMyAttendance(authedContext(t, "emp-1"), attendance.MyAttendanceRequest{Month: "June 2026"})
	assert.Error(t, err)
}

func TestAttendanceService_GetTeamSummary(t *testing.T) {
	clk := &stepClock{t: juneDay(3).Add(10 * time.Hour)}
	members := []employee.Employee{
		{ID: "emp-1", Name: "Asha", Department: "engineering"},
		{ID: "emp-2", Name: "Ben", Department: "engineering"},
		{ID: "emp-3", Name: "Chao", Department: "engineering"},
		{ID: "emp-9", Name: "Dita", Department: "sales"},
	}
	svc, repo := newTestService(clk, members...)

	seed := []attendance.Record{
		presentRecord("emp-1", juneDay(1)),
		presentRecord("emp-1", juneDay(2)),
		lateRecord("emp-2", juneDay(1)),
		halfDayRecord("emp-3", juneDay(1)),
		// Another department, must not leak into the summary.
		presentRecord("emp-9", juneDay(1)),
	}
	for _, rec := range seed {
		_, err := repo.Create(context.Background(), rec)
		require.NoError(t, err)
	}

	resp, err := svc.GetTeamSummary(authedContext(t, "emp-1"), attendance.TeamSummaryRequest{
		Department: "engineering",
		StartDate:  "2026-06-01",
		EndDate:    "2026-06-30",
	})
	require.NoError(t, err)

	assert.Equal(t, 3, resp.MemberCount)
	assert.Equal(t, 2, resp.Counts[string(attendance.StatusPresent)])
	assert.Equal(t, 1, resp.Counts[string(attendance.StatusLate)])
	assert.Equal(t, 1, resp.Counts[string(attendance.StatusHalfDay)])
	assert.Equal(t, 2, resp.Counts[string(attendance.StatusAbsent)])
}

func TestAttendanceService_GetTeamSummary_NoMembers(t *testing.T) {
	clk := &stepClock{t: juneDay(15).Add(10 * time.Hour)}
	svc, _ := newTestService(clk)

	resp, err := svc.GetTeamSummary(authedContext(t, "emp-1"), attendance.TeamSummaryRequest{
		Department: "ghost-town",
		StartDate:  "2026-06-01",
		EndDate:    "2026-06-30",
	})
	require.NoError(t, err)

	assert.Zero(t, resp.MemberCount)
	assert.Empty(t, resp.Counts)
}

func TestAttendanceService_GetTeamSummary_BadRange(t *testing.T) {
	clk := &stepClock{t: juneDay(15).Add(10 * time.Hour)}
	svc, _ := newTestService(clk)

	_, err := svc.GetTeamSummary(authedContext(t, "emp-1"), attendance.TeamSummaryRequest{
		Department: "engineering",
		StartDate:  "2026-06-30",
		EndDate:    "2026-06-01",
	})
	assert.Error(t, err)
}
