package commands_test

import (
	"testing"
	"time"

	"github.com/camdiaz/xuma/internal/core/application/usecases/commands"
	"github.com/camdiaz/xuma/internal/core/domain/model/order"
	"github.com/camdiaz/xuma/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCustomerInput() commands.CustomerInput {
	return commands.CustomerInput{Name: "Jane Doe", Email: "jane@example.com"}
}

func validProductInputs() []commands.ProductInput {
	return []commands.ProductInput{{Name: "Widget", Price: 100, Quantity: 2}}
}

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("should create command with valid input", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(validCustomerInput(), validProductInputs(), "", time.Time{})

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "jane@example.com", cmd.Customer().Email())
		assert.Len(t, cmd.Products(), 1)
		assert.Equal(t, order.Unknown, cmd.Status())
		assert.True(t, cmd.Date().IsZero())
	})

	t.Run("should honor supplied status and date", func(t *testing.T) {
		date := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
		cmd, err := commands.NewCreateOrderCommand(validCustomerInput(), validProductInputs(), "processing", date)

		require.NoError(t, err)
		assert.Equal(t, order.Processing, cmd.Status())
		assert.Equal(t, date, cmd.Date())
	})

	t.Run("should reject missing customer name", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			commands.CustomerInput{Email: "jane@example.com"},
			validProductInputs(), "", time.Time{},
		)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject malformed email", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			commands.CustomerInput{Name: "Jane Doe", Email: "not-an-email"},
			validProductInputs(), "", time.Time{},
		)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject empty product list", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(validCustomerInput(), nil, "", time.Time{})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "order products")
	})

	t.Run("should reject invalid products", func(t *testing.T) {
		testCases := []struct {
			name    string
			product commands.ProductInput
		}{
			{"empty name", commands.ProductInput{Price: 100, Quantity: 2}},
			{"zero price", commands.ProductInput{Name: "Widget", Price: 0, Quantity: 2}},
			{"negative price", commands.ProductInput{Name: "Widget", Price: -1, Quantity: 2}},
			{"zero quantity", commands.ProductInput{Name: "Widget", Price: 100, Quantity: 0}},
			{"negative quantity", commands.ProductInput{Name: "Widget", Price: 100, Quantity: -1}},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := commands.NewCreateOrderCommand(
					validCustomerInput(),
					[]commands.ProductInput{tc.product},
					"", time.Time{},
				)
				require.Error(t, err)
			})
		}
	})

	t.Run("should reject unknown status string", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(validCustomerInput(), validProductInputs(), "shipped", time.Time{})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should accumulate violations across fields", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			commands.CustomerInput{},
			[]commands.ProductInput{{Name: "", Price: -1, Quantity: 0}},
			"bogus", time.Time{},
		)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		var cmd commands.CreateOrderCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
