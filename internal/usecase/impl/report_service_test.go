package impl

import (
	"context"
	"testing"
	"time"

	"floradesk/internal/domain/entity"
	domainerrors "floradesk/internal/domain/errors"
	"floradesk/internal/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestReportService() (*reportService, *stubRepoFactory) {
	factory := newStubFactory()

	srv := &reportService{
		userRepo:    factory.users,
		orderRepo:   factory.orders,
		serviceRepo: factory.services,
		now:         func() time.Time { return time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC) },
	}

	return srv, factory
}

func addOrder(factory *stubRepoFactory, date time.Time, serviceName string, total float64) {
	o := entity.NewOrder()
	o.OrderDate = date
	o.ServiceName = serviceName
	o.TotalPrice = total
	factory.orders.add(o)
}

func TestReportService_Generate_UnknownKind(t *testing.T) {
	srv, _ := createTestReportService()

	_, err := srv.Generate(context.Background(), report.Kind("inventory"), nil, nil)
	assert.ErrorIs(t, err, domainerrors.ErrUnknownReportType)
}

func TestReportService_RevenueReport_GroupsByDateAndService(t *testing.T) {
	srv, factory := createTestReportService()

	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	addOrder(factory, day, "Event Styling", 100)
	addOrder(factory, day, "Event Styling", 200)
	addOrder(factory, day.AddDate(0, 0, 1), "Event Styling", 500)
	addOrder(factory, day, "", 50)

	r, err := srv.Generate(context.Background(), report.KindRevenue, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"Date", "Service", "Orders", "Total Revenue", "Average"}, r.Headers)
	require.Len(t, r.Rows, 3)

	// Newest date first, then service name ascending.
	assert.Equal(t, []string{"2024-01-02", "Event Styling", "1", "₱500.00", "₱500.00"}, r.Rows[0])
	assert.Equal(t, []string{"2024-01-01", "Event Styling", "2", "₱300.00", "₱150.00"}, r.Rows[1])
	assert.Equal(t, []string{"2024-01-01", "N/A", "1", "₱50.00", "₱50.00"}, r.Rows[2])
}

func TestReportService_RevenueReport_HonorsDateRange(t *testing.T) {
	srv, factory := createTestReportService()

	addOrder(factory, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "Event Styling", 100)
	addOrder(factory, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), "Event Styling", 200)

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	r, err := srv.Generate(context.Background(), report.KindRevenue, &from, &to)
	require.NoError(t, err)
	require.Len(t, r.Rows, 1)
	assert.Equal(t, "2024-01-01", r.Rows[0][0])
}

func TestReportService_UsersReport_MissingPhoneReadsNA(t *testing.T) {
	srv, factory := createTestReportService()

	factory.users.add(&entity.User{
		ID:        3,
		Name:      "Maria Santos",
		Email:     "maria@example.com",
		Role:      entity.RoleClient,
		CreatedAt: time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC),
	})
	o := entity.NewOrder()
	o.UserID = 3
	factory.orders.add(o)

	r, err := srv.Generate(context.Background(), report.KindUsers, nil, nil)
	require.NoError(t, err)
	require.Len(t, r.Rows, 1)
	assert.Equal(t, []string{"3", "Maria Santos", "maria@example.com", "N/A", "1", "2024-03-15"}, r.Rows[0])
}

func TestReportService_OrdersReport_FormatsRow(t *testing.T) {
	srv, factory := createTestReportService()

	o := entity.NewOrder()
	o.ClientName = "Maria Santos"
	o.ServiceName = "Wedding Package"
	o.TotalPrice = 12500
	o.OrderDate = time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	factory.orders.add(o)

	r, err := srv.Generate(context.Background(), report.KindOrders, nil, nil)
	require.NoError(t, err)
	require.Len(t, r.Rows, 1)
	assert.Equal(t, []string{"1", "Maria Santos", "Wedding Package", "Pending", "₱12,500.00", "2024-05-02"}, r.Rows[0])
}

func TestReportService_ServicesReport_TruncatesDescription(t *testing.T) {
	srv, factory := createTestReportService()

	long := "A very elaborate wedding styling package with flowers, drapes, lighting and more"
	factory.services.add(&entity.Service{
		ID:          7,
		Name:        "Wedding Package",
		Description: long,
		Price:       12500,
		Status:      entity.ServiceStatusActive,
		CreatedAt:   time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
	})

	r, err := srv.Generate(context.Background(), report.KindServices, nil, nil)
	require.NoError(t, err)
	require.Len(t, r.Rows, 1)
	assert.Equal(t, report.Truncate(long), r.Rows[0][2])
	assert.Equal(t, "Active", r.Rows[0][4])
}

func TestReportService_Summary(t *testing.T) {
	srv, factory := createTestReportService()

	factory.users.add(&entity.User{ID: 3, Role: entity.RoleClient, Status: entity.UserStatusActive})
	factory.users.add(&entity.User{ID: 4, Role: entity.RoleClient, Status: entity.UserStatusSuspended})
	factory.users.add(&entity.User{ID: 2, Role: entity.RoleStaff, Status: entity.UserStatusActive})

	factory.services.add(&entity.Service{ID: 7, Status: entity.ServiceStatusActive})
	factory.services.add(&entity.Service{ID: 8, Status: entity.ServiceStatusInactive})

	addOrder(factory, time.Now(), "Event Styling", 100)
	addOrder(factory, time.Now(), "Event Styling", 250)

	summary, err := srv.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(2), summary.TotalClients)
	assert.Equal(t, int64(1), summary.ActiveClients)
	assert.Equal(t, int64(1), summary.SuspendedClients)
	assert.Equal(t, int64(2), summary.TotalOrders)
	assert.Equal(t, 350.0, summary.TotalRevenue)
	assert.Equal(t, int64(1), summary.ActiveServices)
}
