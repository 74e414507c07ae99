package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder_Defaults(t *testing.T) {
	o := NewOrder()

	assert.Equal(t, OrderStatusPending, o.Status)
	assert.Equal(t, PaymentStatusPending, o.PaymentStatus)
	assert.Equal(t, PaymentMethodCash, o.PaymentMethod)
	assert.False(t, o.OrderDate.IsZero())
}

func TestOrder_SetService_DerivesTotalPrice(t *testing.T) {
	o := NewOrder()
	o.SetService(&Service{ID: 7, Name: "Wedding Package", Price: 12500})

	require.NotNil(t, o.ServiceID)
	assert.Equal(t, int64(7), *o.ServiceID)
	assert.Equal(t, "Wedding Package", o.ServiceName)
	assert.Equal(t, 12500.0, o.TotalPrice)

	o.SetService(nil)
	assert.Nil(t, o.ServiceID)
	assert.Empty(t, o.ServiceName)
}

func TestOrder_SetUser_SnapshotsClientIdentity(t *testing.T) {
	o := NewOrder()
	o.SetUser(&User{ID: 3, Name: "Maria Santos", Email: "maria@example.com"})

	assert.Equal(t, int64(3), o.UserID)
	assert.Equal(t, "Maria Santos", o.ClientName)
	assert.Equal(t, "maria@example.com", o.ClientEmail)
}

func TestCheckStatusConsistency(t *testing.T) {
	assert.Error(t, CheckStatusConsistency(OrderStatusCompleted, PaymentStatusPending))
	assert.Error(t, CheckStatusConsistency(OrderStatusCanceled, PaymentStatusCompleted))

	assert.NoError(t, CheckStatusConsistency(OrderStatusCompleted, PaymentStatusCompleted))
	assert.NoError(t, CheckStatusConsistency(OrderStatusCanceled, PaymentStatusFailed))
	assert.NoError(t, CheckStatusConsistency(OrderStatusPending, PaymentStatusPending))
}

func TestCheckOrderDates_NewOrderCannotBeBackdated(t *testing.T) {
	now := time.Date(2026, 8, 29, 15, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)

	assert.Error(t, CheckOrderDates(yesterday, nil, now, true))

	// Existing orders keep their original dates.
	assert.NoError(t, CheckOrderDates(yesterday, nil, now, false))

	// Same-day creation is fine even earlier in the day.
	morning := time.Date(2026, 8, 29, 8, 0, 0, 0, time.UTC)
	assert.NoError(t, CheckOrderDates(morning, nil, now, true))
}

func TestCheckOrderDates_ComparesCalendarDatesAcrossZones(t *testing.T) {
	// Request dates parse as UTC midnight; the server clock may sit in a zone
	// behind UTC. An order dated today must not read as backdated.
	manila := time.FixedZone("UTC+8", 8*60*60)
	newYork := time.FixedZone("UTC-5", -5*60*60)

	orderDate := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	now := time.Date(2026, 3, 10, 10, 0, 0, 0, newYork)
	assert.NoError(t, CheckOrderDates(orderDate, nil, now, true))

	now = time.Date(2026, 3, 10, 2, 0, 0, 0, manila)
	assert.NoError(t, CheckOrderDates(orderDate, nil, now, true))

	// A genuinely backdated order is still rejected.
	yesterday := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	assert.Error(t, CheckOrderDates(yesterday, nil, now, true))
}

func TestCheckOrderDates_DeliveryBeforeOrderRejected(t *testing.T) {
	now := time.Date(2026, 8, 29, 15, 0, 0, 0, time.UTC)
	orderDate := now
	early := now.AddDate(0, 0, -2)
	late := now.AddDate(0, 0, 3)

	assert.Error(t, CheckOrderDates(orderDate, &early, now, false))
	assert.NoError(t, CheckOrderDates(orderDate, &late, now, false))
}

func TestOrder_Validate_RejectsInvalidEnums(t *testing.T) {
	now := time.Now()

	o := NewOrder()
	o.Status = OrderStatus("Shipped")
	assert.Error(t, o.Validate(now, false))

	o = NewOrder()
	o.PaymentMethod = PaymentMethod("Barter")
	assert.Error(t, o.Validate(now, false))
}

func TestOrder_Setters_RejectUnknownValues(t *testing.T) {
	o := NewOrder()

	assert.Error(t, o.SetStatus("Shipped"))
	assert.Error(t, o.SetPaymentStatus("Refunded"))
	assert.Error(t, o.SetPaymentMethod("Barter"))

	require.NoError(t, o.SetStatus(OrderStatusCompleted))
	require.NoError(t, o.SetPaymentStatus(PaymentStatusCompleted))
	require.NoError(t, o.SetPaymentMethod(PaymentMethodGCash))
	assert.Equal(t, OrderStatusCompleted, o.Status)
}
