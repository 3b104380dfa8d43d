package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/diegoclair/duty-roster/internal/domain"
	"github.com/diegoclair/duty-roster/internal/domain/contract"
	"github.com/diegoclair/duty-roster/internal/domain/entity"
)

type dutyRepo struct {
	db dbConn
}

func newDutyRepo(db dbConn) contract.DutyRepo {
	return &dutyRepo{db: db}
}

// ReplaceRange drops every duty of the pool in [start, end) and stores the given ones instead.
// Callers should run it inside a transaction.
func (r *dutyRepo) ReplaceRange(poolID int64, start, end time.Time, duties []*entity.Duty) error {
	_, err := r.db.Exec(
		`DELETE FROM duties WHERE pool_id = ? AND duty_date >= ? AND duty_date < ?`,
		poolID, start.Format(domain.DateLayout), end.Format(domain.DateLayout),
	)
	if err != nil {
		return fmt.Errorf("failed to clear duties: %w", err)
	}

	if len(duties) == 0 {
		return nil
	}

	stmt, err := r.db.PrepareContext(context.Background(), `
		INSERT INTO duties (pool_id, duty_date, role, professional_name)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare duty insert: %w", err)
	}
	defer stmt.Close()

	for _, duty := range duties {
		result, err := stmt.Exec(
			poolID,
			duty.DutyDate.Format(domain.DateLayout),
			duty.Role.String(),
			nullString(duty.ProfessionalName),
		)
		if err != nil {
			return fmt.Errorf("failed to create duty: %w", err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get last insert id: %w", err)
		}
		duty.ID = id
		duty.PoolID = poolID
	}

	return nil
}

func (r *dutyRepo) ListRange(poolID int64, start, end time.Time) ([]*entity.Duty, error) {
	query := `
		SELECT id, pool_id, duty_date, role, professional_name, created_at
		FROM duties
		WHERE pool_id = ? AND duty_date >= ? AND duty_date < ?
		ORDER BY duty_date ASC, role = 'external' ASC
	`

	return r.list(query, poolID, start.Format(domain.DateLayout), end.Format(domain.DateLayout))
}

func (r *dutyRepo) ListByDate(poolID int64, date time.Time) ([]*entity.Duty, error) {
	query := `
		SELECT id, pool_id, duty_date, role, professional_name, created_at
		FROM duties
		WHERE pool_id = ? AND duty_date = ?
		ORDER BY role = 'external' ASC
	`

	return r.list(query, poolID, date.Format(domain.DateLayout))
}

func (r *dutyRepo) list(query string, args ...interface{}) ([]*entity.Duty, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get duties: %w", err)
	}
	defer rows.Close()

	var duties []*entity.Duty
	for rows.Next() {
		duty := &entity.Duty{}
		var (
			dutyDate     string
			role         string
			professional sql.NullString
		)

		err := rows.Scan(
			&duty.ID,
			&duty.PoolID,
			&dutyDate,
			&role,
			&professional,
			&duty.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan duty: %w", err)
		}

		duty.DutyDate, err = time.Parse(domain.DateLayout, dutyDate)
		if err != nil {
			return nil, fmt.Errorf("failed to parse duty date %q: %w", dutyDate, err)
		}
		duty.Role, err = domain.ParseDutyRole(role)
		if err != nil {
			return nil, err
		}
		duty.ProfessionalName = professional.String

		duties = append(duties, duty)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate duties: %w", err)
	}

	return duties, nil
}
