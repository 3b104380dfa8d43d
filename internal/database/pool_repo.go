package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/diegoclair/duty-roster/internal/domain/contract"
	"github.com/diegoclair/duty-roster/internal/domain/entity"
)

type poolRepo struct {
	db dbConn
}

func newPoolRepo(db dbConn) contract.PoolRepo {
	return &poolRepo{db: db}
}

const poolColumns = `id, name, slack_channel_id, slack_team_id, notification_time, is_enabled, created_at, updated_at`

func (r *poolRepo) Create(pool *entity.Pool) error {
	query := `
		INSERT INTO pools (name, slack_channel_id, slack_team_id, notification_time, is_enabled)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		pool.Name,
		nullString(pool.SlackChannelID),
		pool.SlackTeamID,
		pool.NotificationTime,
		pool.IsEnabled,
	)
	if err != nil {
		return fmt.Errorf("failed to create pool: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	pool.ID = id
	return nil
}

func (r *poolRepo) GetBySlackID(slackChannelID string) (*entity.Pool, error) {
	query := `SELECT ` + poolColumns + ` FROM pools WHERE slack_channel_id = ?`

	pool, err := scanPool(r.db.QueryRow(query, slackChannelID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get pool: %w", err)
	}

	return pool, nil
}

func (r *poolRepo) GetByID(id int64) (*entity.Pool, error) {
	query := `SELECT ` + poolColumns + ` FROM pools WHERE id = ?`

	pool, err := scanPool(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get pool: %w", err)
	}

	return pool, nil
}

func (r *poolRepo) Update(pool *entity.Pool) error {
	query := `
		UPDATE pools SET
			name = ?,
			slack_team_id = ?,
			notification_time = ?,
			is_enabled = ?,
			updated_at = ?
		WHERE id = ?
	`

	_, err := r.db.Exec(query,
		pool.Name,
		pool.SlackTeamID,
		pool.NotificationTime,
		pool.IsEnabled,
		time.Now(),
		pool.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update pool: %w", err)
	}

	return nil
}

func (r *poolRepo) GetEnabled() ([]*entity.Pool, error) {
	query := `SELECT ` + poolColumns + ` FROM pools WHERE is_enabled = 1 ORDER BY id`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get enabled pools: %w", err)
	}
	defer rows.Close()

	var pools []*entity.Pool
	for rows.Next() {
		pool, err := scanPool(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pool: %w", err)
		}
		pools = append(pools, pool)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate pools: %w", err)
	}

	return pools, nil
}

func (r *poolRepo) SetEnabled(poolID int64, enabled bool) error {
	query := `
		UPDATE pools SET
			is_enabled = ?,
			updated_at = ?
		WHERE id = ?
	`

	_, err := r.db.Exec(query, enabled, time.Now(), poolID)
	if err != nil {
		return fmt.Errorf("failed to set pool enabled status: %w", err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPool(row rowScanner) (*entity.Pool, error) {
	pool := &entity.Pool{}
	var slackChannelID sql.NullString

	err := row.Scan(
		&pool.ID,
		&pool.Name,
		&slackChannelID,
		&pool.SlackTeamID,
		&pool.NotificationTime,
		&pool.IsEnabled,
		&pool.CreatedAt,
		&pool.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	pool.SlackChannelID = slackChannelID.String
	return pool, nil
}

// nullString stores empty strings as NULL so that UNIQUE columns allow many unset values
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
