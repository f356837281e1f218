package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/bigtree-group/marketing-webhooks/internal/entity"
)

type MockSheetAppender struct {
	mock.Mock
}

func (m *MockSheetAppender) AppendRow(ctx context.Context, tab string, values []string) error {
	args := m.Called(ctx, tab, values)
	return args.Error(0)
}

type MockProductGateway struct {
	mock.Mock
}

func (m *MockProductGateway) GetProduct(ctx context.Context, id int) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *MockProductGateway) LookupAll(ctx context.Context, ids []int) ([]*entity.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Product), args.Error(1)
}

type MockRenderer struct {
	mock.Mock
}

func (m *MockRenderer) Render(ctx context.Context, product *entity.Product) (string, error) {
	args := m.Called(ctx, product)
	return args.String(0), args.Error(1)
}

type MockMailService struct {
	mock.Mock
}

func (m *MockMailService) SendSpecsheets(to string, attachments []string) error {
	args := m.Called(to, attachments)
	return args.Error(0)
}

type MockCRMService struct {
	mock.Mock
}

func (m *MockCRMService) SubmitLead(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

type MockEnquiryRepository struct {
	mock.Mock
}

func (m *MockEnquiryRepository) InsertProductEnquiry(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockEnquiryRepository) InsertSampleRequest(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}
