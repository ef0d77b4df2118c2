package commands_test

import (
	"testing"
	"time"

	"github.com/camdiaz/xuma/internal/core/application/usecases/commands"
	"github.com/camdiaz/xuma/internal/core/domain/model/kernel"
	"github.com/camdiaz/xuma/internal/core/domain/model/order"
	"github.com/camdiaz/xuma/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func storedOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	customer, err := order.NewCustomer("Jane Doe", "jane@example.com")
	require.NoError(t, err)
	product, err := order.NewProduct("Widget", 100, 2)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), time.Now(), status, customer, []order.Product{product})
	require.NoError(t, err)
	return o
}

func TestUpdateOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	existing := storedOrder(t, order.Pending)
	updated := storedOrder(t, order.Processing)
	cmd, _ := commands.NewUpdateOrderStatusCommand(existing.ID(), order.Processing)

	repo := new(MockOrderRepository)
	mock.InOrder(
		repo.On("Get", ctx, existing.ID()).Return(existing, nil).Once(),
		repo.On("UpdateStatus", ctx, existing.ID(), order.Pending, order.Processing).Return(updated, nil).Once(),
	)

	h := commands.NewUpdateOrderStatusCommandHandler(repo)

	got, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Processing, got.Status())
	repo.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.UpdateOrderStatusCommand{} // not constructed properly

	repo := new(MockOrderRepository)
	h := commands.NewUpdateOrderStatusCommandHandler(repo)

	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestUpdateOrderStatusCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewUpdateOrderStatusCommand(id, order.Processing)

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("order", id.String())).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(repo)

	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()

	testCases := []struct {
		name    string
		current order.Status
		target  order.Status
	}{
		{"pending to completed", order.Pending, order.Completed},
		{"pending to cancelled", order.Pending, order.Cancelled},
		{"pending to pending", order.Pending, order.Pending},
		{"processing to pending", order.Processing, order.Pending},
		{"processing to processing", order.Processing, order.Processing},
		{"completed to processing", order.Completed, order.Processing},
		{"completed to completed", order.Completed, order.Completed},
		{"cancelled to pending", order.Cancelled, order.Pending},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			existing := storedOrder(t, tc.current)
			cmd, _ := commands.NewUpdateOrderStatusCommand(existing.ID(), tc.target)

			repo := new(MockOrderRepository)
			repo.On("Get", ctx, existing.ID()).Return(existing, nil).Once()

			h := commands.NewUpdateOrderStatusCommandHandler(repo)

			_, err := h.Handle(ctx, cmd)
			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
			repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestUpdateOrderStatusCommandHandler_Handle_ConcurrentModification(t *testing.T) {
	ctx := t.Context()
	existing := storedOrder(t, order.Pending)
	cmd, _ := commands.NewUpdateOrderStatusCommand(existing.ID(), order.Processing)

	repo := new(MockOrderRepository)
	mock.InOrder(
		repo.On("Get", ctx, existing.ID()).Return(existing, nil).Once(),
		repo.On("UpdateStatus", ctx, existing.ID(), order.Pending, order.Processing).
			Return(nil, errs.NewConcurrentModificationError("order", existing.ID().String())).Once(),
	)

	h := commands.NewUpdateOrderStatusCommandHandler(repo)

	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrConcurrentModification)
	repo.AssertExpectations(t)
}
