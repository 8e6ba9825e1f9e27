package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jjrsoftware/backend/internal/model"
)

// LeadRepository defines the persistence interface for lead submissions.
// Insert-only: the anon role has no select/update/delete on leads, so no
// read path exists.
type LeadRepository interface {
	Insert(ctx context.Context, lead *model.Lead) error
}

// PgLeadRepository is the PostgreSQL implementation of LeadRepository.
type PgLeadRepository struct {
	pool *pgxpool.Pool
}

// NewPgLeadRepository creates a PgLeadRepository backed by the given pool.
func NewPgLeadRepository(pool *pgxpool.Pool) *PgLeadRepository {
	return &PgLeadRepository{pool: pool}
}

var _ LeadRepository = (*PgLeadRepository)(nil)

// Insert writes a single leads row. No read-back; created_at comes from
// the table default.
func (r *PgLeadRepository) Insert(ctx context.Context, lead *model.Lead) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO leads (name, email, phone, subject, message, page)
		 VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5, NULLIF($6, ''))`,
		lead.Name, lead.Email, lead.Phone, lead.Subject, lead.Message, lead.Page,
	)
	if err != nil {
		return fmt.Errorf("insert lead: %w", err)
	}
	return nil
}
