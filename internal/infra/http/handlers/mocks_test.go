package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/bigtree-group/marketing-webhooks/internal/entity"
	"github.com/bigtree-group/marketing-webhooks/internal/infra/queue"
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

type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) PublishLeadJob(ctx context.Context, job queue.LeadJob) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}
