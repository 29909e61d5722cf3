package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tableorder/internal/domain/model"
	repo "tableorder/internal/repository"
)

// handler層のテストはmock repoの上に本物のusecaseを組んで回す

type handlerTxManagerMock struct {
	mock.Mock
	Repos repo.TxRepos
}

func (m *handlerTxManagerMock) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	m.Called(ctx)
	return fn(m.Repos)
}

type handlerTxReposMock struct {
	orders repo.OrderRepository
}

func (r *handlerTxReposMock) Orders() repo.OrderRepository { return r.orders }

type handlerOrderRepoMock struct{ mock.Mock }

func (m *handlerOrderRepoMock) Create(ctx context.Context, order model.Order) (int64, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(int64), args.Error(1)
}

func (m *handlerOrderRepoMock) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *handlerOrderRepoMock) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

func (m *handlerOrderRepoMock) List(ctx context.Context, f repo.ListFilter) ([]model.Order, error) {
	args := m.Called(ctx, f)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

func (m *handlerOrderRepoMock) ListByIdentifier(ctx context.Context, identifier string, includeDone bool) ([]model.Order, error) {
	args := m.Called(ctx, identifier, includeDone)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

func (m *handlerOrderRepoMock) Summary(ctx context.Context) (repo.OrderSummary, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).(repo.OrderSummary)
	return s, args.Error(1)
}
