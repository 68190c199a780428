package profileinfra

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pgvector/pgvector-go"

	"github.com/talentgate/talentgate/pkg/kernel"
	"github.com/talentgate/talentgate/recruitment/profile"
)

type PostgresProfileRepository struct {
	db *sqlx.DB
}

func NewPostgresProfileRepository(db *sqlx.DB) profile.Repository {
	return &PostgresProfileRepository{db: db}
}

// dbProfile is the row model; the profile document lives in a JSONB column.
type dbProfile struct {
	CandidateID string         `db:"candidate_id"`
	Data        []byte         `db:"data"`
	ResumeURL   sql.NullString `db:"resume_url"`
	FileName    sql.NullString `db:"file_name"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func (r *PostgresProfileRepository) Upsert(ctx context.Context, p *profile.Profile) error {
	query := `
		INSERT INTO candidate_profiles (
			candidate_id, data, resume_url, file_name, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (candidate_id) DO UPDATE SET
			data = EXCLUDED.data,
			resume_url = EXCLUDED.resume_url,
			file_name = EXCLUDED.file_name,
			updated_at = EXCLUDED.updated_at`

	data, err := json.Marshal(p.Data)
	if err != nil {
		return fmt.Errorf("marshal profile data: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query,
		p.CandidateID.String(), data,
		nullString(p.ResumeURL.String()), nullString(p.FileName),
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}

func (r *PostgresProfileRepository) GetByCandidateID(ctx context.Context, id kernel.CandidateID) (*profile.Profile, error) {
	query := `
		SELECT candidate_id, data, resume_url, file_name, created_at, updated_at
		FROM candidate_profiles
		WHERE candidate_id = $1`

	var row dbProfile
	if err := r.db.GetContext(ctx, &row, query, id.String()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, profile.ErrProfileNotFound().WithDetail("candidate_id", id)
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}

	return rowToProfile(&row)
}

func (r *PostgresProfileRepository) Delete(ctx context.Context, id kernel.CandidateID) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM candidate_profiles WHERE candidate_id = $1`, id.String())
	if err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete profile rows affected: %w", err)
	}
	if affected == 0 {
		return profile.ErrProfileNotFound().WithDetail("candidate_id", id)
	}
	return nil
}

func (r *PostgresProfileRepository) Exists(ctx context.Context, id kernel.CandidateID) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS(SELECT 1 FROM candidate_profiles WHERE candidate_id = $1)`, id.String())
	if err != nil {
		return false, fmt.Errorf("check profile exists: %w", err)
	}
	return exists, nil
}

func (r *PostgresProfileRepository) UpdateEmbedding(ctx context.Context, id kernel.CandidateID, embedding kernel.ProfileEmbedding) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE candidate_profiles SET embedding = $1, updated_at = $2 WHERE candidate_id = $3`,
		pgvector.NewVector(embedding), time.Now(), id.String())
	if err != nil {
		return fmt.Errorf("update profile embedding: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update profile embedding rows affected: %w", err)
	}
	if affected == 0 {
		return profile.ErrProfileNotFound().WithDetail("candidate_id", id)
	}
	return nil
}

func rowToProfile(row *dbProfile) (*profile.Profile, error) {
	p := &profile.Profile{
		CandidateID: kernel.NewCandidateID(row.CandidateID),
		ResumeURL:   kernel.BucketURL(row.ResumeURL.String),
		FileName:    row.FileName.String,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}

	if len(row.Data) > 0 {
		if err := json.Unmarshal(row.Data, &p.Data); err != nil {
			return nil, fmt.Errorf("unmarshal profile data: %w", err)
		}
	}
	p.Data.Normalize()

	return p, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
