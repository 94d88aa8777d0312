package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/activity-planner/internal/types"
)

// FetchAll returns all activity records owned by the user, oldest slot first
func (db *DB) FetchAll(ctx context.Context, userID uuid.UUID) ([]types.Activity, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, title, organization, experience_type, city, country,
		        date_ranges, contact_name, contact_title, contact_email, contact_phone,
		        status, is_most_meaningful, description,
		        mme_action, mme_result, mme_essay, competencies, COALESCE(due_date, '')
		 FROM activities WHERE user_id = $1 ORDER BY id ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	defer rows.Close()

	var records []types.Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, a)
	}
	return records, nil
}

// Save upserts one activity record by (user_id, id) and returns it as
// persisted. Client-assigned IDs are kept; the returned record carries
// whatever ID the database holds after the upsert.
func (db *DB) Save(ctx context.Context, userID uuid.UUID, a types.Activity) (*types.Activity, error) {
	rangesJSON, err := json.Marshal(a.DateRanges)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal date ranges: %w", err)
	}
	competenciesJSON, err := json.Marshal(a.Competencies)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal competencies: %w", err)
	}

	row := db.pool.QueryRow(ctx,
		`INSERT INTO activities (
		     user_id, id, title, organization, experience_type, city, country,
		     date_ranges, contact_name, contact_title, contact_email, contact_phone,
		     status, is_most_meaningful, description,
		     mme_action, mme_result, mme_essay, competencies, due_date
		 ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, NULLIF($20, ''))
		 ON CONFLICT (user_id, id) DO UPDATE SET
		     title = $3, organization = $4, experience_type = $5, city = $6, country = $7,
		     date_ranges = $8, contact_name = $9, contact_title = $10,
		     contact_email = $11, contact_phone = $12, status = $13,
		     is_most_meaningful = $14, description = $15, mme_action = $16,
		     mme_result = $17, mme_essay = $18, competencies = $19,
		     due_date = NULLIF($20, ''), updated_at = NOW()
		 RETURNING id, title, organization, experience_type, city, country,
		     date_ranges, contact_name, contact_title, contact_email, contact_phone,
		     status, is_most_meaningful, description,
		     mme_action, mme_result, mme_essay, competencies, COALESCE(due_date, '')`,
		userID, a.ID, a.Title, a.Organization, a.ExperienceType, a.City, a.Country,
		rangesJSON, a.ContactName, a.ContactTitle, a.ContactEmail, a.ContactPhone,
		string(a.Status), a.MostMeaningful, a.Description,
		a.MMEAction, a.MMEResult, a.MMEEssay, competenciesJSON, a.DueDate,
	)

	saved, err := scanActivity(row)
	if err != nil {
		return nil, fmt.Errorf("failed to save activity %d: %w", a.ID, err)
	}
	return &saved, nil
}

// Delete removes an activity record by ID, scoped to the owning user
func (db *DB) Delete(ctx context.Context, userID uuid.UUID, id int64) error {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM activities WHERE user_id = $1 AND id = $2`,
		userID, id,
	)
	if err != nil {
		return fmt.Errorf("failed to delete activity: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("activity not found: %d", id)
	}
	return nil
}

// rowScanner covers both pgx.Row and pgx.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanActivity(row rowScanner) (types.Activity, error) {
	var a types.Activity
	var rangesJSON, competenciesJSON []byte
	var status string

	err := row.Scan(
		&a.ID, &a.Title, &a.Organization, &a.ExperienceType, &a.City, &a.Country,
		&rangesJSON, &a.ContactName, &a.ContactTitle, &a.ContactEmail, &a.ContactPhone,
		&status, &a.MostMeaningful, &a.Description,
		&a.MMEAction, &a.MMEResult, &a.MMEEssay, &competenciesJSON, &a.DueDate,
	)
	if err != nil {
		return types.Activity{}, fmt.Errorf("failed to scan activity: %w", err)
	}

	a.Status = types.ActivityStatus(status)
	if len(rangesJSON) > 0 {
		if err := json.Unmarshal(rangesJSON, &a.DateRanges); err != nil {
			return types.Activity{}, fmt.Errorf("failed to unmarshal date ranges: %w", err)
		}
	}
	if len(competenciesJSON) > 0 {
		if err := json.Unmarshal(competenciesJSON, &a.Competencies); err != nil {
			return types.Activity{}, fmt.Errorf("failed to unmarshal competencies: %w", err)
		}
	}
	return a, nil
}
