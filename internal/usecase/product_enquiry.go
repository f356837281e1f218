package usecase

import (
	"context"
	"log"
	"strings"

	"github.com/bigtree-group/marketing-webhooks/internal/entity"
	"github.com/bigtree-group/marketing-webhooks/internal/infra/http/middleware"
)

// ProductEnquiryUseCase handles the cart enquiry flow. Prepare runs the
// synchronous part (validation + product fan-out, so the client still gets
// a 404 for a dead product ID); Fulfill runs the heavy side-effect chain
// and may be deferred to the queue worker.
type ProductEnquiryUseCase struct {
	Repo     EnquiryRepositoryInterface
	Sheets   SheetAppender
	Tab      string
	Products ProductGateway
	Renderer SpecsheetRenderer
	Mail     MailService
	CRM      CRMService

	FailOnSheetError bool
}

func NewProductEnquiryUseCase(
	repo EnquiryRepositoryInterface,
	sheets SheetAppender,
	tab string,
	products ProductGateway,
	renderer SpecsheetRenderer,
	mail MailService,
	crm CRMService,
	failOnSheetError bool,
) *ProductEnquiryUseCase {
	return &ProductEnquiryUseCase{
		Repo:             repo,
		Sheets:           sheets,
		Tab:              tab,
		Products:         products,
		Renderer:         renderer,
		Mail:             mail,
		CRM:              crm,
		FailOnSheetError: failOnSheetError,
	}
}

func (uc *ProductEnquiryUseCase) Prepare(ctx context.Context, input ProductEnquiryInput) (*entity.Lead, []*entity.Product, error) {
	if errs := ValidateProductEnquiryInput(input); len(errs) > 0 {
		return nil, nil, ValidationErrors(errs)
	}

	lead := input.ToLead()

	// One missing product aborts the entire enquiry.
	products, err := uc.Products.LookupAll(ctx, lead.ReferencedProductIDs())
	if err != nil {
		return nil, nil, err
	}

	return lead, products, nil
}

func (uc *ProductEnquiryUseCase) Fulfill(ctx context.Context, lead *entity.Lead, products []*entity.Product) error {
	if uc.Repo != nil {
		if err := uc.Repo.InsertProductEnquiry(ctx, lead); err != nil {
			// The Postgres copy is a secondary audit; the sheet is the
			// canonical log.
			middleware.RecordIntegrationError("database")
			log.Printf("⚠️ Enquiry audit insert failed (continuing): %v", err)
		}
	}

	row := []string{
		lead.FullName(), lead.Email, lead.Phone, lead.Company,
		lead.Project, lead.Message, lead.RequestSample,
		strings.Join(lead.ProductIDStrings(), ", "), lead.Timestamp(),
	}
	if err := uc.Sheets.AppendRow(ctx, uc.Tab, row); err != nil {
		if uc.FailOnSheetError {
			return &TechnicalError{Code: "SHEET_APPEND_FAILED", Message: "failed to append row to sheet"}
		}
		middleware.RecordIntegrationError("sheets")
		log.Printf("⚠️ Sheet append failed for enquiry (continuing): %v", err)
	}

	var pdfs []string
	defer func() { removeTempFiles(pdfs...) }()

	for _, product := range products {
		pdf, err := uc.Renderer.Render(ctx, product)
		if err != nil {
			return err
		}
		pdfs = append(pdfs, pdf)
		middleware.RecordSpecsheet()
	}

	if err := uc.Mail.SendSpecsheets(lead.Email, pdfs); err != nil {
		middleware.RecordIntegrationError("smtp")
		return &TechnicalError{Code: "EMAIL_SEND_FAILED", Message: "failed to send enquiry email"}
	}

	if err := uc.CRM.SubmitLead(ctx, lead); err != nil {
		middleware.RecordIntegrationError("salesforce")
		return &TechnicalError{Code: "CRM_SUBMIT_FAILED", Message: "failed to submit lead to CRM"}
	}

	return nil
}

// Execute runs the whole flow synchronously. The queue worker uses
// ExecuteJob instead, re-resolving products from the persisted lead.
func (uc *ProductEnquiryUseCase) Execute(ctx context.Context, input ProductEnquiryInput) error {
	lead, products, err := uc.Prepare(ctx, input)
	if err != nil {
		return err
	}
	return uc.Fulfill(ctx, lead, products)
}

func (uc *ProductEnquiryUseCase) ExecuteJob(ctx context.Context, lead *entity.Lead) error {
	products, err := uc.Products.LookupAll(ctx, lead.ReferencedProductIDs())
	if err != nil {
		return err
	}
	return uc.Fulfill(ctx, lead, products)
}
