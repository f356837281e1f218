package usecase

import (
	"context"
	"log"

	"github.com/bigtree-group/marketing-webhooks/internal/infra/http/middleware"
)

// ContactUseCase handles the plain contact form: sheet row plus CRM lead.
type ContactUseCase struct {
	Sheets SheetAppender
	Tab    string
	CRM    CRMService

	FailOnSheetError bool
}

func NewContactUseCase(sheets SheetAppender, tab string, crm CRMService, failOnSheetError bool) *ContactUseCase {
	return &ContactUseCase{
		Sheets:           sheets,
		Tab:              tab,
		CRM:              crm,
		FailOnSheetError: failOnSheetError,
	}
}

func (uc *ContactUseCase) Execute(ctx context.Context, input ContactInput) error {
	if errs := ValidateContactInput(input); len(errs) > 0 {
		return ValidationErrors(errs)
	}

	lead := input.ToLead()

	row := []string{
		lead.FirstName, lead.LastName, lead.Email, lead.Phone,
		lead.Company, lead.Location, lead.Project, lead.Message, lead.Timestamp(),
	}
	if err := uc.Sheets.AppendRow(ctx, uc.Tab, row); err != nil {
		if uc.FailOnSheetError {
			return &TechnicalError{Code: "SHEET_APPEND_FAILED", Message: "failed to append row to sheet"}
		}
		middleware.RecordIntegrationError("sheets")
		log.Printf("⚠️ Sheet append failed for contact form (continuing): %v", err)
	}

	if err := uc.CRM.SubmitLead(ctx, lead); err != nil {
		middleware.RecordIntegrationError("salesforce")
		return &TechnicalError{Code: "CRM_SUBMIT_FAILED", Message: "failed to submit lead to CRM"}
	}

	return nil
}
