package usecase

import (
	"context"
)

// NewsletterUseCase appends a subscription row to the newsletter tab.
// Sheet failure always fails the request here: the row is the only side
// effect, so there is nothing to degrade to.
type NewsletterUseCase struct {
	Sheets SheetAppender
	Tab    string
}

func NewNewsletterUseCase(sheets SheetAppender, tab string) *NewsletterUseCase {
	return &NewsletterUseCase{Sheets: sheets, Tab: tab}
}

func (uc *NewsletterUseCase) Execute(ctx context.Context, input NewsletterInput) error {
	if errs := ValidateNewsletterInput(input); len(errs) > 0 {
		return ValidationErrors(errs)
	}

	// Historical row shape: the signup form has no name field.
	row := []string{"No Name", input.Email, "Subscribed"}

	if err := uc.Sheets.AppendRow(ctx, uc.Tab, row); err != nil {
		return &TechnicalError{
			Code:    "SHEET_APPEND_FAILED",
			Message: "failed to append row to sheet",
		}
	}

	return nil
}
