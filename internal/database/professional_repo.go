package database

import (
	"database/sql"
	"fmt"

	"github.com/diegoclair/duty-roster/internal/domain/contract"
	"github.com/diegoclair/duty-roster/internal/domain/entity"
)

type professionalRepo struct {
	db dbConn
}

func newProfessionalRepo(db dbConn) contract.ProfessionalRepo {
	return &professionalRepo{db: db}
}

const professionalColumns = `id, pool_id, name, slack_user_id, position, joined_at`

// Create appends the professional at the end of the pool order
func (r *professionalRepo) Create(professional *entity.Professional) error {
	var position int
	err := r.db.QueryRow(
		`SELECT COALESCE(MAX(position), 0) + 1 FROM professionals WHERE pool_id = ?`,
		professional.PoolID,
	).Scan(&position)
	if err != nil {
		return fmt.Errorf("failed to get next position: %w", err)
	}

	query := `
		INSERT INTO professionals (pool_id, name, slack_user_id, position)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		professional.PoolID,
		professional.Name,
		professional.SlackUserID,
		position,
	)
	if err != nil {
		return fmt.Errorf("failed to create professional: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	professional.ID = id
	professional.Position = position
	return nil
}

func (r *professionalRepo) GetByPoolAndName(poolID int64, name string) (*entity.Professional, error) {
	query := `SELECT ` + professionalColumns + ` FROM professionals WHERE pool_id = ? AND name = ?`

	professional, err := scanProfessional(r.db.QueryRow(query, poolID, name))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get professional: %w", err)
	}

	return professional, nil
}

func (r *professionalRepo) GetBySlackUserID(poolID int64, slackUserID string) (*entity.Professional, error) {
	query := `SELECT ` + professionalColumns + ` FROM professionals WHERE pool_id = ? AND slack_user_id = ? LIMIT 1`

	professional, err := scanProfessional(r.db.QueryRow(query, poolID, slackUserID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get professional: %w", err)
	}

	return professional, nil
}

// ListByPool returns the pool members in rotation order
func (r *professionalRepo) ListByPool(poolID int64) ([]*entity.Professional, error) {
	query := `SELECT ` + professionalColumns + ` FROM professionals WHERE pool_id = ? ORDER BY position ASC, id ASC`

	rows, err := r.db.Query(query, poolID)
	if err != nil {
		return nil, fmt.Errorf("failed to get professionals: %w", err)
	}
	defer rows.Close()

	var professionals []*entity.Professional
	for rows.Next() {
		professional, err := scanProfessional(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan professional: %w", err)
		}
		professionals = append(professionals, professional)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate professionals: %w", err)
	}

	return professionals, nil
}

func (r *professionalRepo) Delete(professionalID int64) error {
	query := `DELETE FROM professionals WHERE id = ?`

	_, err := r.db.Exec(query, professionalID)
	if err != nil {
		return fmt.Errorf("failed to delete professional: %w", err)
	}

	return nil
}

func scanProfessional(row rowScanner) (*entity.Professional, error) {
	professional := &entity.Professional{}
	err := row.Scan(
		&professional.ID,
		&professional.PoolID,
		&professional.Name,
		&professional.SlackUserID,
		&professional.Position,
		&professional.JoinedAt,
	)
	if err != nil {
		return nil, err
	}
	return professional, nil
}
