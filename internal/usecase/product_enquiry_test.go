package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/bigtree-group/marketing-webhooks/internal/entity"
)

func enquiryInput() ProductEnquiryInput {
	return ProductEnquiryInput{
		Name:          "Jane Doe",
		Email:         "jane@example.com",
		Phone:         "+971501234567",
		Company:       "Studio 9",
		Project:       "Hotel lobby refit",
		Message:       "Need lead times",
		RequestSample: "Yes",
		CartItems:     []CartItemInput{{ID: 101, Quantity: 2}, {ID: 205, Quantity: 1}},
	}
}

func TestProductEnquiryUseCase_Prepare(t *testing.T) {
	t.Run("resolves every cart product", func(t *testing.T) {
		products := new(MockProductGateway)
		resolved := []*entity.Product{{ID: 101}, {ID: 205}}
		products.On("LookupAll", mock.Anything, []int{101, 205}).Return(resolved, nil)

		uc := NewProductEnquiryUseCase(nil, nil, "Product Enquiries", products, nil, nil, nil, false)
		lead, got, err := uc.Prepare(context.Background(), enquiryInput())

		assert.NoError(t, err)
		assert.Equal(t, resolved, got)
		assert.Equal(t, "Jane Doe", lead.FullName())
		assert.Equal(t, "Product Inquiry", lead.Source)
	})

	t.Run("one dead product id aborts the whole enquiry", func(t *testing.T) {
		products := new(MockProductGateway)
		products.On("LookupAll", mock.Anything, []int{101, 205}).Return(nil, ErrProductNotFound)

		uc := NewProductEnquiryUseCase(nil, nil, "Product Enquiries", products, nil, nil, nil, false)
		_, _, err := uc.Prepare(context.Background(), enquiryInput())

		assert.ErrorIs(t, err, ErrProductNotFound)
	})

	t.Run("validation failure skips the product lookup", func(t *testing.T) {
		products := new(MockProductGateway)

		uc := NewProductEnquiryUseCase(nil, nil, "Product Enquiries", products, nil, nil, nil, false)
		_, _, err := uc.Prepare(context.Background(), ProductEnquiryInput{})

		_, ok := AsValidationErrors(err)
		assert.True(t, ok)
		products.AssertNotCalled(t, "LookupAll", mock.Anything, mock.Anything)
	})
}

func TestProductEnquiryUseCase_Fulfill(t *testing.T) {
	resolved := []*entity.Product{
		{ID: 101, Name: "Velvet Lounge Chair"},
		{ID: 205, Name: "Linen Drapery"},
	}

	t.Run("runs the full side-effect chain and cleans up", func(t *testing.T) {
		pdf1 := tempPDF(t)
		pdf2 := tempPDF(t)

		repo := new(MockEnquiryRepository)
		sheets := new(MockSheetAppender)
		products := new(MockProductGateway)
		renderer := new(MockRenderer)
		mailer := new(MockMailService)
		crm := new(MockCRMService)

		products.On("LookupAll", mock.Anything, []int{101, 205}).Return(resolved, nil)
		repo.On("InsertProductEnquiry", mock.Anything, mock.Anything).Return(nil)
		sheets.On("AppendRow", mock.Anything, "Product Enquiries", mock.MatchedBy(func(row []string) bool {
			return len(row) == 9 && row[0] == "Jane Doe" && row[7] == "101, 205"
		})).Return(nil)
		renderer.On("Render", mock.Anything, resolved[0]).Return(pdf1, nil)
		renderer.On("Render", mock.Anything, resolved[1]).Return(pdf2, nil)
		mailer.On("SendSpecsheets", "jane@example.com", []string{pdf1, pdf2}).Return(nil)
		crm.On("SubmitLead", mock.Anything, mock.Anything).Return(nil)

		uc := NewProductEnquiryUseCase(repo, sheets, "Product Enquiries", products, renderer, mailer, crm, false)
		err := uc.Execute(context.Background(), enquiryInput())

		assert.NoError(t, err)
		assert.NoFileExists(t, pdf1)
		assert.NoFileExists(t, pdf2)
		repo.AssertExpectations(t)
		sheets.AssertExpectations(t)
		mailer.AssertExpectations(t)
		crm.AssertExpectations(t)
	})

	t.Run("audit insert failure never blocks the enquiry", func(t *testing.T) {
		pdf1 := tempPDF(t)
		pdf2 := tempPDF(t)

		repo := new(MockEnquiryRepository)
		sheets := new(MockSheetAppender)
		products := new(MockProductGateway)
		renderer := new(MockRenderer)
		mailer := new(MockMailService)
		crm := new(MockCRMService)

		products.On("LookupAll", mock.Anything, mock.Anything).Return(resolved, nil)
		repo.On("InsertProductEnquiry", mock.Anything, mock.Anything).Return(errors.New("connection refused"))
		sheets.On("AppendRow", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		renderer.On("Render", mock.Anything, resolved[0]).Return(pdf1, nil)
		renderer.On("Render", mock.Anything, resolved[1]).Return(pdf2, nil)
		mailer.On("SendSpecsheets", mock.Anything, mock.Anything).Return(nil)
		crm.On("SubmitLead", mock.Anything, mock.Anything).Return(nil)

		uc := NewProductEnquiryUseCase(repo, sheets, "Product Enquiries", products, renderer, mailer, crm, false)
		assert.NoError(t, uc.Execute(context.Background(), enquiryInput()))
	})

	t.Run("render failure removes already rendered pdfs", func(t *testing.T) {
		pdf1 := tempPDF(t)

		sheets := new(MockSheetAppender)
		products := new(MockProductGateway)
		renderer := new(MockRenderer)
		mailer := new(MockMailService)
		crm := new(MockCRMService)

		products.On("LookupAll", mock.Anything, mock.Anything).Return(resolved, nil)
		sheets.On("AppendRow", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		renderer.On("Render", mock.Anything, resolved[0]).Return(pdf1, nil)
		renderer.On("Render", mock.Anything, resolved[1]).
			Return("", &TechnicalError{Code: "PDF_CONVERT_FAILED", Message: "conversion failed"})

		uc := NewProductEnquiryUseCase(nil, sheets, "Product Enquiries", products, renderer, mailer, crm, false)
		err := uc.Execute(context.Background(), enquiryInput())

		assert.True(t, IsTechnicalError(err))
		assert.NoFileExists(t, pdf1)
		mailer.AssertNotCalled(t, "SendSpecsheets", mock.Anything, mock.Anything)
		crm.AssertNotCalled(t, "SubmitLead", mock.Anything, mock.Anything)
	})

	t.Run("crm failure after a sent email still fails the request", func(t *testing.T) {
		pdf1 := tempPDF(t)
		pdf2 := tempPDF(t)

		sheets := new(MockSheetAppender)
		products := new(MockProductGateway)
		renderer := new(MockRenderer)
		mailer := new(MockMailService)
		crm := new(MockCRMService)

		products.On("LookupAll", mock.Anything, mock.Anything).Return(resolved, nil)
		sheets.On("AppendRow", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		renderer.On("Render", mock.Anything, resolved[0]).Return(pdf1, nil)
		renderer.On("Render", mock.Anything, resolved[1]).Return(pdf2, nil)
		mailer.On("SendSpecsheets", mock.Anything, mock.Anything).Return(nil)
		crm.On("SubmitLead", mock.Anything, mock.Anything).Return(errors.New("endpoint down"))

		uc := NewProductEnquiryUseCase(nil, sheets, "Product Enquiries", products, renderer, mailer, crm, false)
		err := uc.Execute(context.Background(), enquiryInput())

		assert.True(t, IsTechnicalError(err))
		mailer.AssertExpectations(t)
	})
}

func TestProductEnquiryUseCase_ExecuteJob(t *testing.T) {
	// Worker path: products are re-resolved from the persisted lead.
	lead := enquiryInput().ToLead()
	resolved := []*entity.Product{{ID: 101}, {ID: 205}}

	products := new(MockProductGateway)
	sheets := new(MockSheetAppender)
	renderer := new(MockRenderer)
	mailer := new(MockMailService)
	crm := new(MockCRMService)

	pdf1 := tempPDF(t)
	pdf2 := tempPDF(t)

	products.On("LookupAll", mock.Anything, []int{101, 205}).Return(resolved, nil)
	sheets.On("AppendRow", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	renderer.On("Render", mock.Anything, resolved[0]).Return(pdf1, nil)
	renderer.On("Render", mock.Anything, resolved[1]).Return(pdf2, nil)
	mailer.On("SendSpecsheets", lead.Email, []string{pdf1, pdf2}).Return(nil)
	crm.On("SubmitLead", mock.Anything, lead).Return(nil)

	uc := NewProductEnquiryUseCase(nil, sheets, "Product Enquiries", products, renderer, mailer, crm, false)
	assert.NoError(t, uc.ExecuteJob(context.Background(), lead))
	products.AssertExpectations(t)
}
