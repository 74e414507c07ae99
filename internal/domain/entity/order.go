package entity

import (
	"time"

	"floradesk/internal/errors"
)

// OrderStatus is the fulfillment state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusCompleted OrderStatus = "Completed"
	OrderStatusCanceled  OrderStatus = "Canceled"
)

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusCompleted, OrderStatusCanceled:
		return true
	default:
		return false
	}
}

// PaymentStatus is the settlement state of an order's payment.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "Pending"
	PaymentStatusCompleted PaymentStatus = "Completed"
	PaymentStatusFailed    PaymentStatus = "Failed"
)

// IsValid checks if the PaymentStatus is a valid value.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed:
		return true
	default:
		return false
	}
}

// PaymentMethod is how the client pays.
type PaymentMethod string

const (
	PaymentMethodCash       PaymentMethod = "Cash"
	PaymentMethodCreditCard PaymentMethod = "Credit Card"
	PaymentMethodGCash      PaymentMethod = "GCash"
	PaymentMethodOther      PaymentMethod = "Other"
)

// IsValid checks if the PaymentMethod is a valid value.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCreditCard, PaymentMethodGCash, PaymentMethodOther:
		return true
	default:
		return false
	}
}

// Order is a client booking, usually tied to a service offering.
// ClientName/ClientEmail are denormalized from the client at set time so the
// order keeps its face even if the account later changes.
type Order struct {
	ID            int64
	UserID        int64 // The client the order belongs to.
	ClientName    string
	ClientEmail   string
	ServiceID     *int64 // Optional service reference.
	ServiceName   string // Denormalized for report rows; empty when no service.
	Status        OrderStatus
	PaymentStatus PaymentStatus
	PaymentMethod PaymentMethod
	TotalPrice    float64 // Derived from the service price when the service is set.
	Notes         string
	OrderDate     time.Time
	DeliveryDate  *time.Time
	CreatedBy     Actor // The staff/admin who entered the order.
}

// NewOrder returns an order with the defaults a fresh booking carries.
func NewOrder() *Order {
	return &Order{
		Status:        OrderStatusPending,
		PaymentStatus: PaymentStatusPending,
		PaymentMethod: PaymentMethodCash,
		OrderDate:     time.Now(),
	}
}

// SetUser attaches the client and snapshots their display identity.
func (o *Order) SetUser(u *User) {
	o.UserID = u.ID
	o.ClientName = u.Name
	o.ClientEmail = u.Email
}

// SetService attaches a service and derives the order total from its price.
func (o *Order) SetService(s *Service) {
	if s == nil {
		o.ServiceID = nil
		o.ServiceName = ""

		return
	}
	id := s.ID
	o.ServiceID = &id
	o.ServiceName = s.Name
	o.TotalPrice = s.Price
}

// SetStatus applies a requested status, rejecting unknown values.
func (o *Order) SetStatus(status OrderStatus) error {
	if !status.IsValid() {
		return errors.Errorf("invalid order status: %q", status)
	}
	o.Status = status

	return nil
}

// SetPaymentStatus applies a requested payment status, rejecting unknown values.
func (o *Order) SetPaymentStatus(status PaymentStatus) error {
	if !status.IsValid() {
		return errors.Errorf("invalid payment status: %q", status)
	}
	o.PaymentStatus = status

	return nil
}

// SetPaymentMethod applies a requested payment method, rejecting unknown values.
func (o *Order) SetPaymentMethod(method PaymentMethod) error {
	if !method.IsValid() {
		return errors.Errorf("invalid payment method: %q", method)
	}
	o.PaymentMethod = method

	return nil
}

// CheckStatusConsistency rejects status/payment pairs that cannot coexist:
// a completed order with payment still pending, or a canceled order whose
// payment reads completed.
func CheckStatusConsistency(status OrderStatus, payment PaymentStatus) error {
	if status == OrderStatusCompleted && payment == PaymentStatusPending {
		return errors.New("completed orders must have completed payment status")
	}
	if status == OrderStatusCanceled && payment == PaymentStatusCompleted {
		return errors.New("canceled orders cannot have completed payment status")
	}

	return nil
}

// dayOf collapses a timestamp to its calendar date. Dates arrive in mixed
// locations (request dates parse as UTC, now carries the server zone), so
// comparisons must be on date components, not instants.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// CheckOrderDates rejects a delivery date earlier than the order date and,
// for new orders, an order date before today (orders cannot be backdated).
func CheckOrderDates(orderDate time.Time, deliveryDate *time.Time, now time.Time, isNew bool) error {
	if isNew && dayOf(orderDate).Before(dayOf(now)) {
		return errors.New("order date cannot be set before today")
	}
	if deliveryDate != nil && dayOf(*deliveryDate).Before(dayOf(orderDate)) {
		return errors.New("delivery date cannot be earlier than order date")
	}

	return nil
}

// Validate runs the full invariant set against the order. isNew gates the
// no-backdating rule, which applies only at creation time.
func (o *Order) Validate(now time.Time, isNew bool) error {
	if !o.Status.IsValid() {
		return errors.Errorf("invalid order status: %q", o.Status)
	}
	if !o.PaymentStatus.IsValid() {
		return errors.Errorf("invalid payment status: %q", o.PaymentStatus)
	}
	if !o.PaymentMethod.IsValid() {
		return errors.Errorf("invalid payment method: %q", o.PaymentMethod)
	}
	if err := CheckStatusConsistency(o.Status, o.PaymentStatus); err != nil {
		return err
	}

	return CheckOrderDates(o.OrderDate, o.DeliveryDate, now, isNew)
}
