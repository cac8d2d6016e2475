//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"order-service/internal/infra"
	"order-service/internal/pkg/errs"
	"order-service/internal/usecase/queries"
	"order-service/tests/common/builder"
	queriesmock "order-service/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderQueriesTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockReadStore *queriesmock.MockOrderReadStore
	queries       queries.OrderQueries
}

func (s *OrderQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockReadStore = queriesmock.NewMockOrderReadStore(s.mockCtrl)
	s.queries = queries.NewOrderQueries(s.mockReadStore)
}

func (s *OrderQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderQueriesSuite(t *testing.T) {
	suite.Run(t, new(OrderQueriesTestSuite))
}

func (s *OrderQueriesTestSuite) TestGet() {
	ctx := context.Background()

	s.Run("success: returns the stored view as-is", func() {
		b := builder.NewOrderBuilder()
		stored := b.BuildView()

		s.mockReadStore.EXPECT().FindByID(gomock.Any(), b.ID).
			Return(stored, nil).Times(1)

		view, err := s.queries.Get(ctx, b.ID)
		s.Require().NoError(err)
		s.Equal(stored, view)
	})

	s.Run("error: unknown id yields ErrOrderNotFound", func() {
		id := uuid.New()

		s.mockReadStore.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("order not found", nil, infra.KindNotFound)).Times(1)

		view, err := s.queries.Get(ctx, id)
		s.Nil(view)
		s.ErrorIs(err, errs.ErrOrderNotFound)
	})

	s.Run("error: store failure is wrapped, not mapped to not-found", func() {
		id := uuid.New()

		s.mockReadStore.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("query failed", errors.New("connection reset"))).Times(1)

		view, err := s.queries.Get(ctx, id)
		s.Nil(view)
		s.Require().Error(err)
		s.NotErrorIs(err, errs.ErrOrderNotFound)
	})
}

func (s *OrderQueriesTestSuite) TestList() {
	ctx := context.Background()

	s.Run("success: passes through every stored view", func() {
		first := builder.NewOrderBuilder().BuildView()
		second := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
			b.CustomerName = "Jane Doe"
			b.CustomerEmail = "jane@example.com"
		}).BuildView()

		s.mockReadStore.EXPECT().FindAll(gomock.Any()).
			Return([]*queries.OrderView{first, second}, nil).Times(1)

		views, err := s.queries.List(ctx)
		s.Require().NoError(err)
		s.Require().Len(views, 2)
		s.Equal(first.ID, views[0].ID)
		s.Equal(second.ID, views[1].ID)
	})

	s.Run("error: store failure propagates", func() {
		s.mockReadStore.EXPECT().FindAll(gomock.Any()).
			Return(nil, infra.WrapRepoErr("query failed", errors.New("connection reset"))).Times(1)

		views, err := s.queries.List(ctx)
		s.Nil(views)
		s.Error(err)
	})
}

func (s *OrderQueriesTestSuite) TestListByCustomerEmail() {
	ctx := context.Background()

	s.Run("success: returns only that customer's orders", func() {
		b := builder.NewOrderBuilder()

		s.mockReadStore.EXPECT().FindByCustomerEmail(gomock.Any(), b.CustomerEmail).
			Return([]*queries.OrderView{b.BuildView()}, nil).Times(1)

		views, err := s.queries.ListByCustomerEmail(ctx, b.CustomerEmail)
		s.Require().NoError(err)
		s.Require().Len(views, 1)
		s.Equal(b.CustomerEmail, views[0].CustomerEmail)
	})

	s.Run("success: customer with no orders gets an empty slice, not an error", func() {
		s.mockReadStore.EXPECT().FindByCustomerEmail(gomock.Any(), "nobody@example.com").
			Return([]*queries.OrderView{}, nil).Times(1)

		views, err := s.queries.ListByCustomerEmail(ctx, "nobody@example.com")
		s.Require().NoError(err)
		s.Empty(views)
	})

	s.Run("error: store failure propagates", func() {
		s.mockReadStore.EXPECT().FindByCustomerEmail(gomock.Any(), "john@example.com").
			Return(nil, infra.WrapRepoErr("query failed", errors.New("connection reset"))).Times(1)

		views, err := s.queries.ListByCustomerEmail(ctx, "john@example.com")
		s.Nil(views)
		s.Error(err)
	})
}
