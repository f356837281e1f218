package queue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/bigtree-group/marketing-webhooks/internal/entity"
	"github.com/bigtree-group/marketing-webhooks/internal/usecase"
)

type mockSheets struct{ mock.Mock }

func (m *mockSheets) AppendRow(ctx context.Context, tab string, values []string) error {
	return m.Called(ctx, tab, values).Error(0)
}

type mockGateway struct{ mock.Mock }

func (m *mockGateway) GetProduct(ctx context.Context, id int) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *mockGateway) LookupAll(ctx context.Context, ids []int) ([]*entity.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Product), args.Error(1)
}

type mockRenderer struct{ mock.Mock }

func (m *mockRenderer) Render(ctx context.Context, product *entity.Product) (string, error) {
	args := m.Called(ctx, product)
	return args.String(0), args.Error(1)
}

type mockMail struct{ mock.Mock }

func (m *mockMail) SendSpecsheets(to string, attachments []string) error {
	return m.Called(to, attachments).Error(0)
}

type mockCRM struct{ mock.Mock }

func (m *mockCRM) SubmitLead(ctx context.Context, lead *entity.Lead) error {
	return m.Called(ctx, lead).Error(0)
}

func TestWorker_Process(t *testing.T) {
	t.Run("enquiry job re-resolves products and fulfills", func(t *testing.T) {
		sheets := new(mockSheets)
		gateway := new(mockGateway)
		renderer := new(mockRenderer)
		mailer := new(mockMail)
		crm := new(mockCRM)

		product := &entity.Product{ID: 101, Name: "Velvet Lounge Chair"}
		gateway.On("LookupAll", mock.Anything, []int{101}).Return([]*entity.Product{product}, nil)
		sheets.On("AppendRow", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		renderer.On("Render", mock.Anything, product).Return("", nil)
		mailer.On("SendSpecsheets", "jane@example.com", mock.Anything).Return(nil)
		crm.On("SubmitLead", mock.Anything, mock.Anything).Return(nil)

		enquiries := usecase.NewProductEnquiryUseCase(
			nil, sheets, "Product Enquiries", gateway, renderer, mailer, crm, false,
		)
		w := NewWorker(nil, enquiries, nil)

		lead := entity.NewLead("Product Inquiry")
		lead.FirstName = "Jane Doe"
		lead.Email = "jane@example.com"
		lead.CartItems = []entity.CartItem{{ProductID: 101, Quantity: 1}}

		err := w.process(context.Background(), LeadJob{Kind: KindEnquiryFulfillment, Lead: *lead})
		assert.NoError(t, err)
		gateway.AssertExpectations(t)
		mailer.AssertExpectations(t)
	})

	t.Run("sample job runs the sample chain", func(t *testing.T) {
		sheets := new(mockSheets)
		crm := new(mockCRM)
		sheets.On("AppendRow", mock.Anything, "Sample Requests", mock.Anything).Return(nil)
		crm.On("SubmitLead", mock.Anything, mock.Anything).Return(nil)

		samples := usecase.NewSampleRequestUseCase(nil, sheets, "Sample Requests", crm, true)
		w := NewWorker(nil, nil, samples)

		lead := entity.NewLead("Sample Request")
		lead.FirstName = "Jane"
		lead.LastName = "Doe"
		lead.Email = "jane@example.com"
		lead.ProductIDs = []int{301}

		err := w.process(context.Background(), LeadJob{Kind: KindSampleRequest, Lead: *lead})
		assert.NoError(t, err)
		sheets.AssertExpectations(t)
		crm.AssertExpectations(t)
	})

	t.Run("unknown kind is swallowed", func(t *testing.T) {
		w := NewWorker(nil, nil, nil)
		err := w.process(context.Background(), LeadJob{Kind: "unexpected"})
		assert.NoError(t, err)
	})
}
