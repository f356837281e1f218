package database

import (
	"context"
	"database/sql"
	"strings"

	"github.com/bigtree-group/marketing-webhooks/internal/entity"
)

// EnquiryRepository is the insert-only Postgres audit log. Rows are never
// updated or deleted, and duplicate submissions are kept as duplicates.
type EnquiryRepository struct {
	DB *sql.DB
}

func NewEnquiryRepository(db *sql.DB) *EnquiryRepository {
	return &EnquiryRepository{DB: db}
}

func (r *EnquiryRepository) InsertProductEnquiry(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO product_enquiries
		(id, name, email, phone, company, project, message, request_sample, cart_items, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		lead.ID,
		lead.FullName(),
		lead.Email,
		nullString(lead.Phone),
		nullString(lead.Company),
		nullString(lead.Project),
		nullString(lead.Message),
		lead.RequestSample,
		strings.Join(lead.ProductIDStrings(), ","),
		lead.CreatedAt,
	)
	return err
}

func (r *EnquiryRepository) InsertSampleRequest(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO sample_requests
		(id, first_name, last_name, email, phone, company, project, quantity, product_ids, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		lead.ID,
		lead.FirstName,
		lead.LastName,
		lead.Email,
		nullString(lead.Phone),
		nullString(lead.Company),
		nullString(lead.Project),
		lead.Quantity,
		strings.Join(lead.ProductIDStrings(), ","),
		nullString(lead.Message),
		lead.CreatedAt,
	)
	return err
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
