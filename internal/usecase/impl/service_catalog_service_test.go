package impl

import (
	"context"
	"testing"
	"time"

	"floradesk/internal/domain/entity"
	domainerrors "floradesk/internal/domain/errors"
	"floradesk/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestServiceCatalog() (*serviceCatalogService, *stubRepoFactory, *stubActivityRepo) {
	factory := newStubFactory()
	activity := newStubActivityRepo()
	clock := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	srv := &serviceCatalogService{
		txManager:   &stubTxManager{factory: factory},
		serviceRepo: factory.services,
		orderRepo:   factory.orders,
		recorder: &Recorder{
			activityRepo: activity,
			logger:       discardLogger(),
			dedupWindow:  defaultLoginDedupWindow,
			now:          func() time.Time { return clock },
		},
		logger: discardLogger(),
	}

	return srv, factory, activity
}

func validCreateServiceInput() *usecase.CreateServiceInput {
	return &usecase.CreateServiceInput{
		Name:         "Wedding Package",
		Description:  "Full venue styling with fresh flowers",
		Price:        12500,
		PricingModel: "fixed",
		PricingUnit:  "event",
		DeliveryTime: 3,
		Category:     "events",
	}
}

func TestServiceCatalog_Create_DefaultsToActive(t *testing.T) {
	srv, factory, activity := createTestServiceCatalog()
	staff := entity.Actor{ID: 2, Role: entity.RoleStaff}

	svc, err := srv.Create(context.Background(), staff, validCreateServiceInput())
	require.NoError(t, err)

	assert.Equal(t, entity.ServiceStatusActive, svc.Status)
	assert.Equal(t, staff, svc.CreatedBy)
	assert.Len(t, factory.services.byID, 1)

	require.Len(t, activity.entries, 1)
	assert.Equal(t, "CREATE_Service", activity.entries[0].Action)
}

func TestServiceCatalog_Create_RejectsBadFields(t *testing.T) {
	srv, _, _ := createTestServiceCatalog()
	staff := entity.Actor{ID: 2, Role: entity.RoleStaff}

	negative := validCreateServiceInput()
	negative.Price = -1
	_, err := srv.Create(context.Background(), staff, negative)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	badModel := validCreateServiceInput()
	badModel.PricingModel = "subscription"
	_, err = srv.Create(context.Background(), staff, badModel)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	badDelivery := validCreateServiceInput()
	badDelivery.DeliveryTime = 0
	_, err = srv.Create(context.Background(), staff, badDelivery)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestServiceCatalog_Update_StaffCannotTouchAdminService(t *testing.T) {
	srv, factory, _ := createTestServiceCatalog()
	factory.services.add(&entity.Service{
		ID:        7,
		Name:      "Funeral Arrangement",
		CreatedBy: entity.Actor{ID: 1, Role: entity.RoleAdmin},
	})

	input := &usecase.UpdateServiceInput{ID: 7, Name: "Funeral Arrangement", PricingModel: "fixed", PricingUnit: "event", DeliveryTime: 1, Status: "active"}
	_, err := srv.Update(context.Background(), entity.Actor{ID: 2, Role: entity.RoleStaff}, input)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestServiceCatalog_Delete_BlockedWhenOrdersReferenceIt(t *testing.T) {
	srv, factory, activity := createTestServiceCatalog()
	factory.services.add(&entity.Service{
		ID:        7,
		Name:      "Wedding Package",
		CreatedBy: entity.Actor{ID: 2, Role: entity.RoleStaff},
	})

	order := entity.NewOrder()
	serviceID := int64(7)
	order.ServiceID = &serviceID
	factory.orders.add(order)

	err := srv.Delete(context.Background(), entity.Actor{ID: 1, Role: entity.RoleAdmin}, 7)
	assert.ErrorIs(t, err, domainerrors.ErrServiceInUse)
	assert.Len(t, factory.services.byID, 1)
	assert.Empty(t, activity.entries)
}

func TestServiceCatalog_Delete_RecordsAudit(t *testing.T) {
	srv, factory, activity := createTestServiceCatalog()
	factory.services.add(&entity.Service{
		ID:        7,
		Name:      "Wedding Package",
		CreatedBy: entity.Actor{ID: 2, Role: entity.RoleStaff},
	})

	require.NoError(t, srv.Delete(context.Background(), entity.Actor{ID: 2, Role: entity.RoleStaff}, 7))
	assert.Empty(t, factory.services.byID)

	require.Len(t, activity.entries, 1)
	assert.Equal(t, "DELETE_Service", activity.entries[0].Action)
}

func TestServiceCatalog_Get_NotFound(t *testing.T) {
	srv, _, _ := createTestServiceCatalog()

	_, err := srv.Get(context.Background(), 42)
	assert.ErrorIs(t, err, domainerrors.ErrServiceNotFound)
}
