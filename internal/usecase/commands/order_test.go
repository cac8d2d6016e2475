//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"order-service/internal/domain/order"
	"order-service/internal/infra/catalog"
	"order-service/internal/pkg/clock"
	"order-service/internal/pkg/errs"
	"order-service/internal/usecase/commands"
	"order-service/internal/usecase/queries"
	"order-service/tests/common/builder"
	commandsmock "order-service/tests/mock/commands"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderCommandsTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockCatalog *commandsmock.MockProductCatalog
	mockRepo    *commandsmock.MockOrderRepository
	commands    commands.OrderCommands
}

func (s *OrderCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCatalog = commandsmock.NewMockProductCatalog(s.mockCtrl)
	s.mockRepo = commandsmock.NewMockOrderRepository(s.mockCtrl)

	factory := order.NewFactory(clock.NewMockClock(builder.NewOrderBuilder().CreatedAt))
	s.commands = commands.NewOrderCommands(s.mockCatalog, s.mockRepo, factory)
}

func (s *OrderCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderCommandsSuite(t *testing.T) {
	suite.Run(t, new(OrderCommandsTestSuite))
}

func (s *OrderCommandsTestSuite) TestCreate() {
	ctx := context.Background()

	s.Run("success: snapshots price, writes once, returns stored view", func() {
		b := builder.NewOrderBuilder()
		returnView := b.BuildView()

		s.mockCatalog.EXPECT().FetchProduct(gomock.Any(), b.ProductID).
			Return(b.BuildSnapshot(), nil).Times(1)
		s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, o *order.Order) (*queries.OrderView, error) {
				// the persisted order carries catalog data, not client input
				s.Require().Len(o.Lines(), 1)
				s.Equal(b.ProductName, o.Lines()[0].ProductName())
				s.True(o.TotalAmount().Decimal().Equal(decimal.RequireFromString("21.98")))
				s.Equal(order.StatusPlaced, o.Status())
				return returnView, nil
			}).Times(1)

		view, err := s.commands.Create(ctx, b.BuildCreateParams())
		s.Require().NoError(err)
		s.Equal(returnView.ID, view.ID)
		s.True(view.TotalAmount.Equal(decimal.RequireFromString("21.98")))
	})

	s.Run("error: unknown product fails with ProductNotFound and no store write", func() {
		b := builder.NewOrderBuilder()

		s.mockCatalog.EXPECT().FetchProduct(gomock.Any(), b.ProductID).
			Return(b.BuildSnapshot(), catalog.NewError(catalog.KindAbsent, b.ProductID, nil)).Times(1)
		// repo.Create must never be called

		view, err := s.commands.Create(ctx, b.BuildCreateParams())
		s.Nil(view)
		s.ErrorIs(err, errs.ErrProductNotFound)
	})

	s.Run("error: insufficient stock fails without store write", func() {
		b := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
			b.Stock = 1 // requested quantity is 2
		})

		s.mockCatalog.EXPECT().FetchProduct(gomock.Any(), b.ProductID).
			Return(b.BuildSnapshot(), nil).Times(1)

		view, err := s.commands.Create(ctx, b.BuildCreateParams())
		s.Nil(view)
		s.ErrorIs(err, errs.ErrInsufficientStock)

		var stockErr *order.InsufficientStockError
		s.Require().ErrorAs(err, &stockErr)
		s.Equal(int32(2), stockErr.Requested)
		s.Equal(int32(1), stockErr.Available)
	})

	s.Run("error: transient catalog failure surfaces as CatalogUnavailable", func() {
		b := builder.NewOrderBuilder()

		s.mockCatalog.EXPECT().FetchProduct(gomock.Any(), b.ProductID).
			Return(b.BuildSnapshot(), catalog.NewError(catalog.KindUnavailable, b.ProductID, errors.New("connection refused"))).Times(1)

		view, err := s.commands.Create(ctx, b.BuildCreateParams())
		s.Nil(view)
		s.ErrorIs(err, errs.ErrCatalogUnavailable)
		s.NotErrorIs(err, errs.ErrProductNotFound)
	})

	s.Run("error: validation fails fast before any catalog call", func() {
		cases := []struct {
			name   string
			mutate func(*commands.CreateOrderParams)
		}{
			{name: "blank customer name", mutate: func(p *commands.CreateOrderParams) { p.CustomerName = "  " }},
			{name: "invalid email", mutate: func(p *commands.CreateOrderParams) { p.CustomerEmail = "not-an-email" }},
			{name: "no line items", mutate: func(p *commands.CreateOrderParams) { p.LineItems = nil }},
			{name: "blank product id", mutate: func(p *commands.CreateOrderParams) { p.LineItems[0].ProductID = "" }},
			{name: "zero quantity", mutate: func(p *commands.CreateOrderParams) { p.LineItems[0].Quantity = 0 }},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				params := builder.NewOrderBuilder().BuildCreateParams()
				tc.mutate(&params)

				// neither the catalog nor the store may be touched
				view, err := s.commands.Create(ctx, params)
				s.Nil(view)
				s.ErrorIs(err, errs.ErrDomainValidationFailed)
			})
		}
	})

	s.Run("error: store failure is marked as database operation failure", func() {
		b := builder.NewOrderBuilder()

		s.mockCatalog.EXPECT().FetchProduct(gomock.Any(), b.ProductID).
			Return(b.BuildSnapshot(), nil).Times(1)
		s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection reset")).Times(1)

		view, err := s.commands.Create(ctx, b.BuildCreateParams())
		s.Nil(view)
		s.ErrorIs(err, errs.ErrDatabaseOperationFailed)
	})

	s.Run("duplicate product ids are fetched once", func() {
		b := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
			b.Stock = 10
		})
		params := b.BuildCreateParams()
		params.LineItems = append(params.LineItems, commands.LineItemParams{ProductID: b.ProductID, Quantity: 3})

		s.mockCatalog.EXPECT().FetchProduct(gomock.Any(), b.ProductID).
			Return(b.BuildSnapshot(), nil).Times(1)
		s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, o *order.Order) (*queries.OrderView, error) {
				s.Require().Len(o.Lines(), 2)
				// 10.99 * (2 + 3)
				s.True(o.TotalAmount().Decimal().Equal(decimal.RequireFromString("54.95")))
				return b.BuildView(), nil
			}).Times(1)

		_, err := s.commands.Create(ctx, params)
		s.NoError(err)
	})
}
