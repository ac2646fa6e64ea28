package order_test

import (
	"testing"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allStatuses() []order.Status {
	return []order.Status{
		order.Unknown, order.Pending, order.Paid,
		order.Approved, order.Cancelling, order.Cancelled,
	}
}

func TestStatus_Pay(t *testing.T) {
	for _, s := range allStatuses() {
		if s == order.Pending {
			continue
		}
		t.Run("should reject pay from "+s.String(), func(t *testing.T) {
			_, err := s.Pay()

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrInvariantViolation)
			assert.Contains(t, err.Error(), "pay operation")
		})
	}

	t.Run("should transition Pending to Paid", func(t *testing.T) {
		newStatus, err := order.Pending.Pay()

		require.NoError(t, err)
		assert.Equal(t, order.Paid, newStatus)
	})
}

func TestStatus_Approve(t *testing.T) {
	for _, s := range allStatuses() {
		if s == order.Paid {
			continue
		}
		t.Run("should reject approve from "+s.String(), func(t *testing.T) {
			_, err := s.Approve()

			require.ErrorIs(t, err, errs.ErrInvariantViolation)
			assert.Contains(t, err.Error(), "approve operation")
		})
	}

	t.Run("should transition Paid to Approved", func(t *testing.T) {
		newStatus, err := order.Paid.Approve()

		require.NoError(t, err)
		assert.Equal(t, order.Approved, newStatus)
	})
}

func TestStatus_InitCancel(t *testing.T) {
	for _, s := range allStatuses() {
		if s == order.Paid {
			continue
		}
		t.Run("should reject initCancel from "+s.String(), func(t *testing.T) {
			_, err := s.InitCancel()

			require.ErrorIs(t, err, errs.ErrInvariantViolation)
			assert.Contains(t, err.Error(), "payment cancellation")
		})
	}

	t.Run("should transition Paid to Cancelling", func(t *testing.T) {
		newStatus, err := order.Paid.InitCancel()

		require.NoError(t, err)
		assert.Equal(t, order.Cancelling, newStatus)
	})
}

func TestStatus_Cancel(t *testing.T) {
	for _, s := range allStatuses() {
		if s == order.Pending || s == order.Cancelling {
			continue
		}
		t.Run("should reject cancel from "+s.String(), func(t *testing.T) {
			_, err := s.Cancel()

			require.ErrorIs(t, err, errs.ErrInvariantViolation)
			assert.Contains(t, err.Error(), "cancel operation")
		})
	}

	t.Run("should transition Pending to Cancelled", func(t *testing.T) {
		newStatus, err := order.Pending.Cancel()

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, newStatus)
	})

	t.Run("should transition Cancelling to Cancelled", func(t *testing.T) {
		newStatus, err := order.Cancelling.Cancel()

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, newStatus)
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should reject Unknown and out-of-range values", func(t *testing.T) {
		require.Error(t, order.Unknown.Validate())
		require.Error(t, order.Status(42).Validate())
	})

	t.Run("should accept all lifecycle states", func(t *testing.T) {
		for _, s := range allStatuses()[1:] {
			require.NoError(t, s.Validate())
		}
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Pending", order.Pending.String())
	assert.Equal(t, "Paid", order.Paid.String())
	assert.Equal(t, "Approved", order.Approved.String())
	assert.Equal(t, "Cancelling", order.Cancelling.String())
	assert.Equal(t, "Cancelled", order.Cancelled.String())
	assert.Equal(t, "Unknown", order.Status(42).String())
}
