package usecase

import (
	"context"

	"github.com/bigtree-group/marketing-webhooks/internal/entity"
)

// SheetAppender appends one audit row to a named tab. Implementations fail
// closed when credentials cannot be refreshed.
type SheetAppender interface {
	AppendRow(ctx context.Context, tab string, values []string) error
}

// ProductGateway fetches read-only product data from the e-commerce store.
// Any upstream failure folds into ErrProductNotFound.
type ProductGateway interface {
	GetProduct(ctx context.Context, id int) (*entity.Product, error)
	// LookupAll fans out over ids and fails the whole batch on the first
	// missing product. No partial result is returned.
	LookupAll(ctx context.Context, ids []int) ([]*entity.Product, error)
}

// SpecsheetRenderer produces a PDF for a product and returns its path.
// The caller owns the file and removes it after use.
type SpecsheetRenderer interface {
	Render(ctx context.Context, product *entity.Product) (string, error)
}

// MailService sends the specsheet email with zero or more PDF attachments.
type MailService interface {
	SendSpecsheets(to string, attachments []string) error
}

// CRMService forwards a lead to the CRM's lead-capture endpoint. The
// endpoint answers 200 even on some validation failures, so a nil error
// means "accepted as far as we can tell".
type CRMService interface {
	SubmitLead(ctx context.Context, lead *entity.Lead) error
}

// EnquiryRepositoryInterface is the insert-only Postgres audit log for
// enquiries and sample requests.
type EnquiryRepositoryInterface interface {
	InsertProductEnquiry(ctx context.Context, lead *entity.Lead) error
	InsertSampleRequest(ctx context.Context, lead *entity.Lead) error
}
