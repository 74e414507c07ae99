package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "floradesk/internal/delivery/context"
	"floradesk/internal/domain/entity"
	domainerrors "floradesk/internal/domain/errors"
	"floradesk/internal/domain/policy"
	"floradesk/internal/domain/repository"
	"floradesk/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// productService implements the ProductUsecase interface.
//
// Product mutations are not written to the activity log; the audited entity
// set is User, Order, and Service only.
type productService struct {
	txManager   repository.TransactionManager
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for productService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		txManager:   params.TxManager,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func validateProductFields(price float64, stock int, category string) error {
	if price < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("price cannot be negative")
	}
	if stock < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("stock cannot be negative")
	}
	if !entity.IsValidProductCategory(category) {
		return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("invalid category: %q", category))
	}

	return nil
}

// Create adds a product to the catalog. The stored status is derived from the
// stock level, so zero-stock products always read out_of_stock.
func (srv *productService) Create(ctx context.Context, actor entity.Actor, input *usecase.CreateProductInput) (*entity.Product, error) {
	if !actor.Role.IsStaff() && !actor.Role.IsAdmin() {
		return nil, domainerrors.ErrForbidden
	}

	if err := validateProductFields(input.Price, input.Stock, input.Category); err != nil {
		return nil, err
	}

	requested := entity.ProductStatus(input.Status)
	if requested == "" {
		requested = entity.ProductStatusActive
	}
	if !requested.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("invalid status: %q", requested))
	}

	product := &entity.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		Stock:       input.Stock,
		Status:      entity.ResolveProductStatus(input.Stock, requested),
		CreatedBy:   actor,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.ProductRepo().Create(ctx, product)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Product created", slog.Int64("productID", product.ID))

	return product, nil
}

// Update edits an existing product, re-deriving status from the new stock.
func (srv *productService) Update(ctx context.Context, actor entity.Actor, input *usecase.UpdateProductInput) (*entity.Product, error) {
	existing, err := srv.productRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to load product for update")
	}

	if !policy.CanEdit(actor, policy.ProductResource(existing)) {
		return nil, domainerrors.ErrForbidden
	}

	if err := validateProductFields(input.Price, input.Stock, input.Category); err != nil {
		return nil, err
	}

	requested := entity.ProductStatus(input.Status)
	if !requested.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("invalid status: %q", requested))
	}

	existing.Name = input.Name
	existing.Description = input.Description
	existing.Price = input.Price
	existing.Category = input.Category
	existing.Stock = input.Stock
	existing.Status = entity.ResolveProductStatus(input.Stock, requested)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.ProductRepo().Update(ctx, existing)
	})
	if err != nil {
		return nil, err
	}

	return existing, nil
}

// Delete removes a product from the catalog.
func (srv *productService) Delete(ctx context.Context, actor entity.Actor, id int64) error {
	existing, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to load product for delete")
	}

	if !policy.CanDelete(actor, policy.ProductResource(existing)) {
		return domainerrors.ErrForbidden
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.ProductRepo().Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Product deleted", slog.Int64("productID", id))

	return nil
}

// Get retrieves one product by ID.
func (srv *productService) Get(ctx context.Context, id int64) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// List returns products newest first.
func (srv *productService) List(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}
