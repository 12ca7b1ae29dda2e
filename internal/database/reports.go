package database

import (
	"context"
	"fmt"

	"AI_PROCTOR/go-backend/internal/models"
)

// SaveReport archives the final score of one completed session.
func SaveReport(ctx context.Context, report models.CredibilityReport) error {
	if DB == nil {
		return fmt.Errorf("database is not initialized")
	}

	_, err := DB.ExecContext(ctx,
		`INSERT INTO credibility_reports (id, employee_id, score, frame_count, delivered, started_at, ended_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		report.ID, report.EmployeeID, report.Score, report.FrameCount,
		report.Delivered, report.StartedAt, report.EndedAt,
	)
	if err != nil {
		return fmt.Errorf("could not save report: %w", err)
	}
	return nil
}

// ListReports returns archived reports, newest first, optionally filtered by
// employee id.
func ListReports(ctx context.Context, employeeID string) ([]models.CredibilityReport, error) {
	if DB == nil {
		return nil, fmt.Errorf("database is not initialized")
	}

	query := `SELECT id, employee_id, score, frame_count, delivered, started_at, ended_at
		  FROM credibility_reports ORDER BY ended_at DESC LIMIT 100`
	args := []interface{}{}
	if employeeID != "" {
		query = `SELECT id, employee_id, score, frame_count, delivered, started_at, ended_at
			 FROM credibility_reports WHERE employee_id = $1 ORDER BY ended_at DESC LIMIT 100`
		args = append(args, employeeID)
	}

	rows, err := DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("could not list reports: %w", err)
	}
	defer rows.Close()

	var reports []models.CredibilityReport
	for rows.Next() {
		var r models.CredibilityReport
		if err := rows.Scan(&r.ID, &r.EmployeeID, &r.Score, &r.FrameCount,
			&r.Delivered, &r.StartedAt, &r.EndedAt); err != nil {
			return nil, fmt.Errorf("could not scan report: %w", err)
		}
		reports = append(reports, r)
	}
	return reports, rows.Err()
}
