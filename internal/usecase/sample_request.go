package usecase

import (
	"context"
	"log"
	"strings"

	"github.com/bigtree-group/marketing-webhooks/internal/entity"
	"github.com/bigtree-group/marketing-webhooks/internal/infra/http/middleware"
)

// SampleRequestUseCase persists a sample request (Postgres + sheet) and
// forwards it to the CRM. No document is rendered for samples.
type SampleRequestUseCase struct {
	Repo   EnquiryRepositoryInterface
	Sheets SheetAppender
	Tab    string
	CRM    CRMService

	FailOnSheetError bool
}

func NewSampleRequestUseCase(
	repo EnquiryRepositoryInterface,
	sheets SheetAppender,
	tab string,
	crm CRMService,
	failOnSheetError bool,
) *SampleRequestUseCase {
	return &SampleRequestUseCase{
		Repo:             repo,
		Sheets:           sheets,
		Tab:              tab,
		CRM:              crm,
		FailOnSheetError: failOnSheetError,
	}
}

func (uc *SampleRequestUseCase) Execute(ctx context.Context, input SampleRequestInput) error {
	if errs := ValidateSampleRequestInput(input); len(errs) > 0 {
		return ValidationErrors(errs)
	}
	return uc.Process(ctx, input.ToLead())
}

// Process is the worker entry point: the lead has already been validated
// before it was queued.
func (uc *SampleRequestUseCase) Process(ctx context.Context, lead *entity.Lead) error {
	if uc.Repo != nil {
		if err := uc.Repo.InsertSampleRequest(ctx, lead); err != nil {
			middleware.RecordIntegrationError("database")
			log.Printf("⚠️ Sample request audit insert failed (continuing): %v", err)
		}
	}

	row := []string{
		lead.FirstName, lead.LastName, lead.Email, lead.Phone,
		lead.Company, lead.Project, lead.Quantity,
		strings.Join(lead.ProductIDStrings(), ", "), lead.Message, lead.Timestamp(),
	}
	if err := uc.Sheets.AppendRow(ctx, uc.Tab, row); err != nil {
		if uc.FailOnSheetError {
			return &TechnicalError{Code: "SHEET_APPEND_FAILED", Message: "failed to append row to sheet"}
		}
		middleware.RecordIntegrationError("sheets")
		log.Printf("⚠️ Sheet append failed for sample request (continuing): %v", err)
	}

	if err := uc.CRM.SubmitLead(ctx, lead); err != nil {
		middleware.RecordIntegrationError("salesforce")
		return &TechnicalError{Code: "CRM_SUBMIT_FAILED", Message: "failed to submit lead to CRM"}
	}

	return nil
}
