package order_test

import (
	"testing"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type itemSpec struct {
	productPrice string
	quantity     int
	price        string
	subTotal     string
}

func buildOrder(t *testing.T, totalPrice string, specs ...itemSpec) *order.Order {
	t.Helper()

	items := make([]*order.OrderItem, 0, len(specs))
	for _, spec := range specs {
		item, err := order.NewOrderItem(
			catalogProduct(t, spec.productPrice),
			spec.quantity,
			mustMoney(t, spec.price),
			mustMoney(t, spec.subTotal),
		)
		require.NoError(t, err)
		items = append(items, item)
	}

	address, err := order.NewStreetAddress("1 Main Street", "10115", "Berlin")
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), address, mustMoney(t, totalPrice), items)
	require.NoError(t, err)
	return o
}

func initiatedOrder(t *testing.T) *order.Order {
	t.Helper()
	o := buildOrder(t, "100.00",
		itemSpec{"20.00", 2, "20.00", "40.00"},
		itemSpec{"30.00", 2, "30.00", "60.00"},
	)
	require.NoError(t, o.ValidateOrder())
	o.InitializeOrder()
	return o
}

func TestNewOrder(t *testing.T) {
	address, err := order.NewStreetAddress("1 Main Street", "10115", "Berlin")
	require.NoError(t, err)

	item, err := order.NewOrderItem(catalogProduct(t, "50.00"), 1, mustMoney(t, "50.00"), mustMoney(t, "50.00"))
	require.NoError(t, err)
	items := []*order.OrderItem{item}

	t.Run("should create unsaved order with no identity and Unknown status", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), address, mustMoney(t, "50.00"), items)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		require.Error(t, o.ID().Validate())
		require.Error(t, o.TrackingID().Validate())
		assert.Equal(t, order.Unknown, o.Status())
		assert.Empty(t, o.FailureMessages())
	})

	t.Run("should fail with invalid customer id", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := order.NewOrder(invalidID, kernel.NewUUID(), address, mustMoney(t, "50.00"), items)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "customer id")
	})

	t.Run("should fail with invalid restaurant id", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := order.NewOrder(kernel.NewUUID(), invalidID, address, mustMoney(t, "50.00"), items)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "restaurant id")
	})

	t.Run("should fail with unconstructed address", func(t *testing.T) {
		var zeroAddress order.StreetAddress

		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), zeroAddress, mustMoney(t, "50.00"), items)

		require.Error(t, err)
	})

	t.Run("should fail without items", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), address, mustMoney(t, "50.00"), nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "order items")
	})

	t.Run("should join multiple construction errors", func(t *testing.T) {
		var invalidID kernel.UUID
		var zeroAddress order.StreetAddress

		_, err := order.NewOrder(invalidID, invalidID, zeroAddress, mustMoney(t, "50.00"), nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "customer id")
		assert.Contains(t, err.Error(), "restaurant id")
		assert.Contains(t, err.Error(), "order items")
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var o order.Order

		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})
}

func TestOrder_ValidateOrder(t *testing.T) {
	t.Run("should accept order whose items sum to the declared total", func(t *testing.T) {
		o := buildOrder(t, "100.00",
			itemSpec{"20.00", 2, "20.00", "40.00"},
			itemSpec{"30.00", 2, "30.00", "60.00"},
		)

		require.NoError(t, o.ValidateOrder())
	})

	t.Run("should reject items total one cent below the declared total", func(t *testing.T) {
		o := buildOrder(t, "100.00",
			itemSpec{"20.00", 2, "20.00", "40.00"},
			itemSpec{"29.995", 2, "29.995", "59.99"},
		)

		err := o.ValidateOrder()

		require.ErrorIs(t, err, errs.ErrInvariantViolation)
		assert.Contains(t, err.Error(), "not equal to order items total")
	})

	t.Run("should reject items total one cent above the declared total", func(t *testing.T) {
		o := buildOrder(t, "99.99",
			itemSpec{"20.00", 2, "20.00", "40.00"},
			itemSpec{"30.00", 2, "30.00", "60.00"},
		)

		err := o.ValidateOrder()

		require.ErrorIs(t, err, errs.ErrInvariantViolation)
		assert.Contains(t, err.Error(), "not equal to order items total")
	})

	t.Run("should reject non-positive total price", func(t *testing.T) {
		o := buildOrder(t, "0.00", itemSpec{"20.00", 2, "20.00", "40.00"})

		err := o.ValidateOrder()

		require.ErrorIs(t, err, errs.ErrInvariantViolation)
		assert.Contains(t, err.Error(), "total price must be greater than zero")
	})

	t.Run("should reject item whose price disagrees with the product", func(t *testing.T) {
		o := buildOrder(t, "40.00", itemSpec{"25.00", 2, "20.00", "40.00"})

		err := o.ValidateOrder()

		require.ErrorIs(t, err, errs.ErrInvariantViolation)
		assert.Contains(t, err.Error(), "is not valid for product")
	})

	t.Run("should reject an already initialized order", func(t *testing.T) {
		o := initiatedOrder(t)

		err := o.ValidateOrder()

		require.ErrorIs(t, err, errs.ErrInvariantViolation)
		assert.Contains(t, err.Error(), "not in correct state for initialization")
	})
}

func TestOrder_InitializeOrder(t *testing.T) {
	t.Run("should assign identities and sequential item ids", func(t *testing.T) {
		o := buildOrder(t, "100.00",
			itemSpec{"20.00", 2, "20.00", "40.00"},
			itemSpec{"30.00", 2, "30.00", "60.00"},
		)
		require.NoError(t, o.ValidateOrder())

		o.InitializeOrder()

		require.NoError(t, o.ID().Validate())
		require.NoError(t, o.TrackingID().Validate())
		assert.False(t, o.ID().IsEqual(o.TrackingID()))
		assert.Equal(t, order.Pending, o.Status())

		items := o.Items()
		require.Len(t, items, 2)
		for i, item := range items {
			assert.Equal(t, int64(i+1), item.ID())
			assert.True(t, item.OrderID().IsEqual(o.ID()))
		}
	})
}

func TestOrder_Pay(t *testing.T) {
	t.Run("should move Pending order to Paid", func(t *testing.T) {
		o := initiatedOrder(t)

		require.NoError(t, o.Pay())
		assert.Equal(t, order.Paid, o.Status())
	})

	t.Run("should reject second pay and leave status unchanged", func(t *testing.T) {
		o := initiatedOrder(t)
		require.NoError(t, o.Pay())

		err := o.Pay()

		require.ErrorIs(t, err, errs.ErrInvariantViolation)
		assert.Equal(t, order.Paid, o.Status())
	})
}

func TestOrder_Approve(t *testing.T) {
	t.Run("should move Paid order to Approved", func(t *testing.T) {
		o := initiatedOrder(t)
		require.NoError(t, o.Pay())

		require.NoError(t, o.Approve())
		assert.Equal(t, order.Approved, o.Status())
	})

	t.Run("should reject approve on Pending order", func(t *testing.T) {
		o := initiatedOrder(t)

		err := o.Approve()

		require.ErrorIs(t, err, errs.ErrInvariantViolation)
		assert.Equal(t, order.Pending, o.Status())
	})
}

func TestOrder_InitCancel(t *testing.T) {
	t.Run("should move Paid order to Cancelling", func(t *testing.T) {
		o := initiatedOrder(t)
		require.NoError(t, o.Pay())

		require.NoError(t, o.InitCancel([]string{"approval rejected"}))
		assert.Equal(t, order.Cancelling, o.Status())
		assert.Equal(t, []string{"approval rejected"}, o.FailureMessages())
	})

	t.Run("should reject initCancel on a never-paid order", func(t *testing.T) {
		o := initiatedOrder(t)

		err := o.InitCancel([]string{"approval rejected"})

		require.ErrorIs(t, err, errs.ErrInvariantViolation)
		assert.Equal(t, order.Pending, o.Status())
		assert.Empty(t, o.FailureMessages())
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("should cancel a Pending order directly", func(t *testing.T) {
		o := initiatedOrder(t)

		require.NoError(t, o.Cancel([]string{"payment failed"}))
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("should cancel a Cancelling order", func(t *testing.T) {
		o := initiatedOrder(t)
		require.NoError(t, o.Pay())
		require.NoError(t, o.InitCancel([]string{"approval rejected"}))

		require.NoError(t, o.Cancel([]string{"payment refunded"}))
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("should reject cancel on a Paid order", func(t *testing.T) {
		o := initiatedOrder(t)
		require.NoError(t, o.Pay())

		err := o.Cancel([]string{"too late"})

		require.ErrorIs(t, err, errs.ErrInvariantViolation)
		assert.Equal(t, order.Paid, o.Status())
	})
}

func TestOrder_FailureMessageAccumulation(t *testing.T) {
	t.Run("should keep only non-blank messages in call order", func(t *testing.T) {
		o := initiatedOrder(t)
		require.NoError(t, o.Pay())

		require.NoError(t, o.InitCancel([]string{"approval rejected", "", "   "}))
		require.NoError(t, o.Cancel([]string{"", "payment refunded", "approval rejected"}))

		assert.Equal(t,
			[]string{"approval rejected", "payment refunded", "approval rejected"},
			o.FailureMessages())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should rebuild an initialized order from persistence", func(t *testing.T) {
		source := initiatedOrder(t)
		require.NoError(t, source.Pay())

		items := make([]*order.OrderItem, 0, len(source.Items()))
		for _, item := range source.Items() {
			restored, err := order.RestoreOrderItem(item.ID(), item.OrderID(), item.Product(),
				item.Quantity(), item.Price(), item.SubTotal())
			require.NoError(t, err)
			items = append(items, restored)
		}

		restored, err := order.RestoreOrder(
			source.ID(), source.TrackingID(), source.CustomerID(), source.RestaurantID(),
			source.DeliveryAddress(), source.Price(), items, source.Status(), []string{"late delivery"},
		)

		require.NoError(t, err)
		assert.True(t, restored.IsEqual(source))
		assert.Equal(t, order.Paid, restored.Status())
		assert.Equal(t, []string{"late delivery"}, restored.FailureMessages())
	})

	t.Run("should reject an invalid stored status", func(t *testing.T) {
		source := initiatedOrder(t)

		_, err := order.RestoreOrder(
			source.ID(), source.TrackingID(), source.CustomerID(), source.RestaurantID(),
			source.DeliveryAddress(), source.Price(), source.Items(), order.Unknown, nil,
		)

		require.Error(t, err)
	})
}
