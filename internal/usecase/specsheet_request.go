package usecase

import (
	"context"
	"log"
	"os"

	"github.com/bigtree-group/marketing-webhooks/internal/entity"
	"github.com/bigtree-group/marketing-webhooks/internal/infra/http/middleware"
)

// SpecsheetRequestUseCase handles the single-product specsheet flow:
// lookup → audit row → render → email → cleanup.
type SpecsheetRequestUseCase struct {
	Sheets   SheetAppender
	Tab      string
	Products ProductGateway
	Renderer SpecsheetRenderer
	Mail     MailService

	// FailOnSheetError decides whether a failed audit row fails the whole
	// request or is logged and skipped. The endpoints disagree on this on
	// purpose; it is configured per endpoint in main.
	FailOnSheetError bool
}

func NewSpecsheetRequestUseCase(
	sheets SheetAppender,
	tab string,
	products ProductGateway,
	renderer SpecsheetRenderer,
	mail MailService,
	failOnSheetError bool,
) *SpecsheetRequestUseCase {
	return &SpecsheetRequestUseCase{
		Sheets:           sheets,
		Tab:              tab,
		Products:         products,
		Renderer:         renderer,
		Mail:             mail,
		FailOnSheetError: failOnSheetError,
	}
}

func (uc *SpecsheetRequestUseCase) Execute(ctx context.Context, input SpecsheetRequestInput) error {
	if errs := ValidateSpecsheetRequestInput(input); len(errs) > 0 {
		return ValidationErrors(errs)
	}

	product, err := uc.Products.GetProduct(ctx, input.ProductID)
	if err != nil {
		return err
	}

	lead := entity.NewLead("Specsheet Request")
	lead.Email = input.Email

	row := []string{"No Name", input.Email, "Specsheet Request", product.Name, product.SKU, lead.Timestamp()}
	if err := uc.Sheets.AppendRow(ctx, uc.Tab, row); err != nil {
		if uc.FailOnSheetError {
			return &TechnicalError{Code: "SHEET_APPEND_FAILED", Message: "failed to append row to sheet"}
		}
		middleware.RecordIntegrationError("sheets")
		log.Printf("⚠️ Sheet append failed for specsheet request (continuing): %v", err)
	}

	pdf, err := uc.Renderer.Render(ctx, product)
	if err != nil {
		return err
	}
	defer removeTempFiles(pdf)
	middleware.RecordSpecsheet()

	if err := uc.Mail.SendSpecsheets(input.Email, []string{pdf}); err != nil {
		middleware.RecordIntegrationError("smtp")
		return &TechnicalError{Code: "EMAIL_SEND_FAILED", Message: "failed to send specsheet email"}
	}

	return nil
}

// removeTempFiles is best-effort: a failed delete leaks the file and is
// only logged, never retried.
func removeTempFiles(paths ...string) {
	for _, p := range paths {
		if p == "" {
			continue
		}
		if err := os.Remove(p); err != nil {
			log.Printf("⚠️ Failed to remove temp file %s: %v", p, err)
		}
	}
}
