package db

import (
	"context"
	"fmt"
)

// ListSchools retrieves medical schools with optional filters
func (db *DB) ListSchools(ctx context.Context, filters SchoolFilters) ([]MedicalSchool, error) {
	if filters.Limit == 0 {
		filters.Limit = 200
	}

	query := `SELECT id, school_name, degree_type, application_system,
	          mission_statement, primary_category, created_at
	          FROM medical_schools WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.Search != "" {
		query += fmt.Sprintf(" AND school_name ILIKE $%d", argNum)
		args = append(args, "%"+filters.Search+"%")
		argNum++
	}
	if filters.Degree != "" {
		query += fmt.Sprintf(" AND degree_type = $%d", argNum)
		args = append(args, filters.Degree)
		argNum++
	}
	if filters.System != "" {
		query += fmt.Sprintf(" AND application_system = $%d", argNum)
		args = append(args, filters.System)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY school_name ASC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list schools: %w", err)
	}
	defer rows.Close()

	var schools []MedicalSchool
	for rows.Next() {
		var s MedicalSchool
		if err := rows.Scan(&s.ID, &s.SchoolName, &s.DegreeType, &s.ApplicationSystem,
			&s.MissionStatement, &s.PrimaryCategory, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan school: %w", err)
		}
		schools = append(schools, s)
	}
	return schools, nil
}

// UpsertSchool inserts or updates a catalog entry keyed by school name
func (db *DB) UpsertSchool(ctx context.Context, s MedicalSchool) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO medical_schools (school_name, degree_type, application_system, mission_statement, primary_category)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (school_name) DO UPDATE SET
		     degree_type = $2, application_system = $3,
		     mission_statement = $4, primary_category = $5`,
		s.SchoolName, s.DegreeType, s.ApplicationSystem, s.MissionStatement, s.PrimaryCategory,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert school %s: %w", s.SchoolName, err)
	}
	return nil
}
