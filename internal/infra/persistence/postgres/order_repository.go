package postgres

import (
	"context"
	"time"

	"floradesk/internal/domain/entity"
	domainerrors "floradesk/internal/domain/errors"
	"floradesk/internal/domain/repository"
	"floradesk/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the domain's OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

func toOrderDomain(m *model.OrderModel) *entity.Order {
	order := &entity.Order{
		ID:            m.ID,
		UserID:        m.UserID,
		ClientName:    m.ClientName,
		ClientEmail:   m.ClientEmail,
		ServiceID:     m.ServiceID,
		Status:        entity.OrderStatus(m.Status),
		PaymentStatus: entity.PaymentStatus(m.PaymentStatus),
		PaymentMethod: entity.PaymentMethod(m.PaymentMethod),
		TotalPrice:    m.TotalPrice,
		Notes:         m.Notes,
		OrderDate:     m.OrderDate,
		DeliveryDate:  m.DeliveryDate,
		CreatedBy:     authorOf(m.CreatedByID, m.CreatedBy),
	}
	if m.Service != nil {
		order.ServiceName = m.Service.Name
	}

	return order
}

func fromOrderDomain(o *entity.Order) *model.OrderModel {
	return &model.OrderModel{
		ID:            o.ID,
		UserID:        o.UserID,
		ClientName:    o.ClientName,
		ClientEmail:   o.ClientEmail,
		ServiceID:     o.ServiceID,
		Status:        string(o.Status),
		PaymentStatus: string(o.PaymentStatus),
		PaymentMethod: string(o.PaymentMethod),
		TotalPrice:    o.TotalPrice,
		Notes:         o.Notes,
		OrderDate:     o.OrderDate,
		DeliveryDate:  o.DeliveryDate,
		CreatedByID:   o.CreatedBy.ID,
	}
}

// FindByID retrieves a single order with its service and author preloaded.
func (repo *orderRepository) FindByID(ctx context.Context, id int64) (*entity.Order, error) {
	var orderM model.OrderModel
	if err := repo.db.WithContext(ctx).
		Preload("Service").Preload("CreatedBy").
		First(&orderM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// List returns orders sorted by order date descending, optionally bounded to
// orderDate within [from, to).
func (repo *orderRepository) List(ctx context.Context, from, to *time.Time) ([]*entity.Order, error) {
	query := repo.db.WithContext(ctx).Model(&model.OrderModel{}).
		Preload("Service").Preload("CreatedBy")
	if from != nil {
		query = query.Where("order_date >= ?", *from)
	}
	if to != nil {
		query = query.Where("order_date < ?", *to)
	}

	var orderMs []*model.OrderModel
	if err := query.Order("order_date DESC").Find(&orderMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderMs))
	for _, m := range orderMs {
		orders = append(orders, toOrderDomain(m))
	}

	return orders, nil
}

// Create persists a new order and writes the generated ID back.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("order references a missing client or service")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID

	return nil
}

// Update modifies an existing order. The author column is immutable.
func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	result := repo.db.WithContext(ctx).Model(&model.OrderModel{}).
		Where("id = ?", orderM.ID).
		Select("user_id", "client_name", "client_email", "service_id", "status",
			"payment_status", "payment_method", "total_price", "notes",
			"order_date", "delivery_date").
		Updates(orderM)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("order references a missing client or service")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// Delete removes an order by ID.
func (repo *orderRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.OrderModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete order")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// Count returns the total number of orders.
func (repo *orderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.OrderModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count orders")
	}

	return count, nil
}

// CountByUser counts the orders belonging to one client.
func (repo *orderRepository) CountByUser(ctx context.Context, userID int64) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.OrderModel{}).
		Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count orders by user")
	}

	return count, nil
}

// CountByService counts the orders referencing one service.
func (repo *orderRepository) CountByService(ctx context.Context, serviceID int64) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.OrderModel{}).
		Where("service_id = ?", serviceID).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count orders by service")
	}

	return count, nil
}

// TotalRevenue sums totalPrice across all orders.
func (repo *orderRepository) TotalRevenue(ctx context.Context) (float64, error) {
	var total float64
	if err := repo.db.WithContext(ctx).Model(&model.OrderModel{}).
		Select("COALESCE(SUM(total_price), 0)").Scan(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to sum order revenue")
	}

	return total, nil
}
