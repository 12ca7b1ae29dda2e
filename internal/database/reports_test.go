package database

import (
	"context"
	"testing"
	"time"

	"AI_PROCTOR/go-backend/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
)

var reportColumns = []string{"id", "employee_id", "score", "frame_count", "delivered", "started_at", "ended_at"}

func withMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	prev := DB
	DB = db
	t.Cleanup(func() {
		DB = prev
		db.Close()
	})
	return mock
}

func TestListReports(t *testing.T) {
	mock := withMockDB(t)

	now := time.Now()
	mock.ExpectQuery("SELECT id, employee_id, score").
		WillReturnRows(sqlmock.NewRows(reportColumns).
			AddRow(uuid.New().String(), "E1", 94, 3, true, now.Add(-time.Minute), now).
			AddRow(uuid.New().String(), "E2", 88, 10, false, now.Add(-time.Hour), now.Add(-59*time.Minute)))

	reports, err := ListReports(context.Background(), "")
	if err != nil {
		t.Fatalf("ListReports: %v", err)
	}
	if len(reports) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(reports))
	}
	if reports[0].EmployeeID != "E1" || reports[0].Score != 94 || reports[0].FrameCount != 3 {
		t.Fatalf("unexpected first report: %+v", reports[0])
	}
}

func TestListReportsFilter(t *testing.T) {
	mock := withMockDB(t)

	mock.ExpectQuery("WHERE employee_id").
		WithArgs("E7").
		WillReturnRows(sqlmock.NewRows(reportColumns))

	if _, err := ListReports(context.Background(), "E7"); err != nil {
		t.Fatalf("ListReports: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestListReportsScanFailure(t *testing.T) {
	mock := withMockDB(t)

	now := time.Now()
	mock.ExpectQuery("SELECT id, employee_id, score").
		WillReturnRows(sqlmock.NewRows(reportColumns).
			AddRow("not-a-uuid", "E1", 94, 3, true, now, now))

	// A row that cannot be scanned fails the whole listing instead of being
	// silently dropped.
	if _, err := ListReports(context.Background(), ""); err == nil {
		t.Fatal("expected a scan error, got nil")
	}
}

func TestListReportsWithoutDB(t *testing.T) {
	prev := DB
	DB = nil
	defer func() { DB = prev }()

	if _, err := ListReports(context.Background(), ""); err == nil {
		t.Fatal("expected an error when the database is not initialized")
	}
}

func TestSaveReport(t *testing.T) {
	mock := withMockDB(t)

	report := models.CredibilityReport{
		ID:         uuid.New(),
		EmployeeID: "E1",
		Score:      94,
		FrameCount: 3,
		Delivered:  true,
		StartedAt:  time.Now().Add(-time.Minute),
		EndedAt:    time.Now(),
	}
	mock.ExpectExec("INSERT INTO credibility_reports").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := SaveReport(context.Background(), report); err != nil {
		t.Fatalf("SaveReport: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
