package orderrepo_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/camdiaz/xuma/internal/adapters/out/postgres/orderrepo"
	"github.com/camdiaz/xuma/internal/core/domain/model/kernel"
	"github.com/camdiaz/xuma/internal/core/domain/model/order"
	"github.com/camdiaz/xuma/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OrderRepositoryIntegrationTestSuite provides integration tests for
// GormOrderRepository using PostgreSQL containers to verify persistence
// behavior, including the conditional status update.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestSave_ValidOrder_Persists() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("jane@example.com", order.Pending)
	suite.Require().NoError(suite.repository.Save(ctx, testOrder))

	suite.assertOrderCount(1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestSave_SameID_Overwrites() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("jane@example.com", order.Pending)
	suite.Require().NoError(suite.repository.Save(ctx, testOrder))

	suite.Require().NoError(testOrder.ChangeStatus(order.Processing))
	suite.Require().NoError(suite.repository.Save(ctx, testOrder))

	suite.assertOrderCount(1)
	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Processing, retrieved.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTrips() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("jane@example.com", order.Pending)
	suite.Require().NoError(suite.repository.Save(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(testOrder.ID(), retrieved.ID())
	suite.WithinDuration(testOrder.Date(), retrieved.Date(), time.Millisecond)
	suite.Equal(order.Pending, retrieved.Status())
	suite.Equal("Jane Doe", retrieved.Customer().Name())
	suite.Equal("jane@example.com", retrieved.Customer().Email())
	suite.Equal(testOrder.Products(), retrieved.Products())
	suite.Equal(testOrder.Total(), retrieved.Total())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	retrieved, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByCustomerEmail_MatchesExactly() {
	ctx := context.Background()

	matching := suite.createTestOrder("jane@example.com", order.Pending)
	differentCase := suite.createTestOrder("Jane@Example.com", order.Pending)
	unrelated := suite.createTestOrder("john@example.com", order.Pending)
	for _, o := range []*order.Order{matching, differentCase, unrelated} {
		suite.Require().NoError(suite.repository.Save(ctx, o))
	}

	found, err := suite.repository.GetByCustomerEmail(ctx, "jane@example.com")
	suite.Require().NoError(err)
	suite.Len(found, 1)
	suite.Equal(matching.ID(), found[0].ID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByCustomerEmail_NoMatches_ReturnsEmpty() {
	found, err := suite.repository.GetByCustomerEmail(context.Background(), "nobody@example.com")
	suite.Require().NoError(err)
	suite.Empty(found)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByStatus_FiltersByCurrentStatus() {
	ctx := context.Background()

	statuses := []order.Status{order.Pending, order.Pending, order.Processing, order.Completed}
	for _, status := range statuses {
		o := suite.createTestOrder("customer@example.com", status)
		suite.Require().NoError(suite.repository.Save(ctx, o))
	}

	pending, err := suite.repository.GetByStatus(ctx, order.Pending)
	suite.Require().NoError(err)
	suite.Len(pending, 2)
	for _, o := range pending {
		suite.Equal(order.Pending, o.Status())
	}

	cancelled, err := suite.repository.GetByStatus(ctx, order.Cancelled)
	suite.Require().NoError(err)
	suite.Empty(cancelled)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAll_PreservesInsertionOrder() {
	ctx := context.Background()

	first := suite.createTestOrder("a@example.com", order.Pending)
	second := suite.createTestOrder("b@example.com", order.Pending)
	third := suite.createTestOrder("c@example.com", order.Pending)
	for _, o := range []*order.Order{first, second, third} {
		suite.Require().NoError(suite.repository.Save(ctx, o))
	}

	all, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(all, 3)
	suite.Equal(first.ID(), all[0].ID())
	suite.Equal(second.ID(), all[1].ID())
	suite.Equal(third.ID(), all[2].ID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatus_ExpectedStatus_Succeeds() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("jane@example.com", order.Pending)
	suite.Require().NoError(suite.repository.Save(ctx, testOrder))

	updated, err := suite.repository.UpdateStatus(ctx, testOrder.ID(), order.Pending, order.Processing)
	suite.Require().NoError(err)
	suite.Equal(order.Processing, updated.Status())

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Processing, retrieved.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatus_NonExistentOrder_ReturnsNotFoundError() {
	updated, err := suite.repository.UpdateStatus(
		context.Background(), kernel.NewUUID(), order.Pending, order.Processing,
	)

	suite.Nil(updated)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatus_StaleExpectedStatus_ReturnsConflict() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("jane@example.com", order.Processing)
	suite.Require().NoError(suite.repository.Save(ctx, testOrder))

	updated, err := suite.repository.UpdateStatus(ctx, testOrder.ID(), order.Pending, order.Processing)

	suite.Nil(updated)
	var conflictErr *errs.ConcurrentModificationError
	suite.Require().ErrorAs(err, &conflictErr)

	// The stored status is untouched
	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Processing, retrieved.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatus_ConcurrentTransitions_OneWins() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("jane@example.com", order.Processing)
	suite.Require().NoError(suite.repository.Save(ctx, testOrder))

	const attempts = 8
	results := make(chan error, attempts)
	for i := range attempts {
		target := order.Completed
		if i%2 == 1 {
			target = order.Cancelled
		}
		go func(to order.Status) {
			_, err := suite.repository.UpdateStatus(ctx, testOrder.ID(), order.Processing, to)
			results <- err
		}(target)
	}

	var successes int
	for range attempts {
		if err := <-results; err == nil {
			successes++
		} else {
			var conflictErr *errs.ConcurrentModificationError
			suite.Require().ErrorAs(err, &conflictErr)
		}
	}
	suite.Equal(1, successes)

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.Status().IsTerminal())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestErrorScenarios() {
	testCases := []struct {
		name      string
		operation func() error
		expected  string
	}{
		{
			name: "get with unconstructed UUID",
			operation: func() error {
				_, err := suite.repository.Get(context.Background(), kernel.UUID{})
				return err
			},
			expected: "required",
		},
		{
			name: "get non-existent order",
			operation: func() error {
				_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
				return err
			},
			expected: "not found",
		},
		{
			name: "update status with unconstructed UUID",
			operation: func() error {
				_, err := suite.repository.UpdateStatus(
					context.Background(), kernel.UUID{}, order.Pending, order.Processing,
				)
				return err
			},
			expected: "required",
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			err := tc.operation()
			suite.Require().Error(err)
			suite.Contains(strings.ToLower(err.Error()), strings.ToLower(tc.expected))
		})
	}
}

// createTestOrder builds a valid order for the given customer email and status.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(
	email string, status order.Status,
) *order.Order {
	customer, err := order.NewCustomer("Jane Doe", email)
	suite.Require().NoError(err)

	widget, err := order.NewProduct("Widget", 19.99, 2)
	suite.Require().NoError(err)
	gadget, err := order.NewProduct("Gadget", 5, 1)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(),
		time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC),
		status,
		customer,
		[]order.Product{widget, gadget},
	)
	suite.Require().NoError(err)
	return testOrder
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
