package impl

import (
	"context"
	"sort"
	"time"

	"floradesk/internal/domain/entity"
	domainerrors "floradesk/internal/domain/errors"
	"floradesk/internal/domain/repository"
)

// In-memory repository stubs shared by the service tests. They implement the
// domain repository interfaces without a database.

type stubRepoFactory struct {
	users    *stubUserRepo
	products *stubProductRepo
	services *stubServiceRepo
	orders   *stubOrderRepo
}

func newStubFactory() *stubRepoFactory {
	return &stubRepoFactory{
		users:    newStubUserRepo(),
		products: newStubProductRepo(),
		services: newStubServiceRepo(),
		orders:   newStubOrderRepo(),
	}
}

func (f *stubRepoFactory) UserRepo() repository.UserRepository       { return f.users }
func (f *stubRepoFactory) ProductRepo() repository.ProductRepository { return f.products }
func (f *stubRepoFactory) ServiceRepo() repository.ServiceRepository { return f.services }
func (f *stubRepoFactory) OrderRepo() repository.OrderRepository     { return f.orders }

// stubTxManager runs the callback against the stub factory with no real
// transaction semantics.
type stubTxManager struct {
	factory *stubRepoFactory
	execErr error
}

func (m *stubTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	if m.execErr != nil {
		return m.execErr
	}

	return fn(m.factory)
}

type stubUserRepo struct {
	byID   map[int64]*entity.User
	nextID int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[int64]*entity.User), nextID: 1}
}

func (r *stubUserRepo) add(u *entity.User) *entity.User {
	if u.ID == 0 {
		u.ID = r.nextID
	}
	if u.ID >= r.nextID {
		r.nextID = u.ID + 1
	}
	r.byID[u.ID] = u

	return u
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*entity.User, error) {
	if u, ok := r.byID[id]; ok {
		return u, nil
	}

	return nil, repository.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			return u, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context, from, to *time.Time) ([]*entity.User, error) {
	var users []*entity.User
	for _, u := range r.byID {
		if from != nil && u.CreatedAt.Before(*from) {
			continue
		}
		if to != nil && !u.CreatedAt.Before(*to) {
			continue
		}
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt.After(users[j].CreatedAt) })

	return users, nil
}

func (r *stubUserRepo) Create(_ context.Context, user *entity.User) error {
	for _, u := range r.byID {
		if u.Email == user.Email {
			return domainerrors.ErrUserAlreadyExists
		}
	}
	r.add(user)

	return nil
}

func (r *stubUserRepo) Update(_ context.Context, user *entity.User) error {
	if _, ok := r.byID[user.ID]; !ok {
		return repository.ErrUserNotFound
	}
	r.byID[user.ID] = user

	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return repository.ErrUserNotFound
	}
	delete(r.byID, id)

	return nil
}

func (r *stubUserRepo) CountClients(_ context.Context, status *entity.UserStatus) (int64, error) {
	var count int64
	for _, u := range r.byID {
		if u.Role != entity.RoleClient {
			continue
		}
		if status != nil && u.Status != *status {
			continue
		}
		count++
	}

	return count, nil
}

type stubProductRepo struct {
	byID   map[int64]*entity.Product
	nextID int64
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{byID: make(map[int64]*entity.Product), nextID: 1}
}

func (r *stubProductRepo) add(p *entity.Product) *entity.Product {
	if p.ID == 0 {
		p.ID = r.nextID
	}
	if p.ID >= r.nextID {
		r.nextID = p.ID + 1
	}
	r.byID[p.ID] = p

	return p
}

func (r *stubProductRepo) FindByID(_ context.Context, id int64) (*entity.Product, error) {
	if p, ok := r.byID[id]; ok {
		return p, nil
	}

	return nil, repository.ErrProductNotFound
}

func (r *stubProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	var products []*entity.Product
	for _, p := range r.byID {
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID > products[j].ID })

	return products, nil
}

func (r *stubProductRepo) Create(_ context.Context, product *entity.Product) error {
	r.add(product)

	return nil
}

func (r *stubProductRepo) Update(_ context.Context, product *entity.Product) error {
	if _, ok := r.byID[product.ID]; !ok {
		return repository.ErrProductNotFound
	}
	r.byID[product.ID] = product

	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return repository.ErrProductNotFound
	}
	delete(r.byID, id)

	return nil
}

type stubServiceRepo struct {
	byID   map[int64]*entity.Service
	nextID int64
}

func newStubServiceRepo() *stubServiceRepo {
	return &stubServiceRepo{byID: make(map[int64]*entity.Service), nextID: 1}
}

func (r *stubServiceRepo) add(s *entity.Service) *entity.Service {
	if s.ID == 0 {
		s.ID = r.nextID
	}
	if s.ID >= r.nextID {
		r.nextID = s.ID + 1
	}
	r.byID[s.ID] = s

	return s
}

func (r *stubServiceRepo) FindByID(_ context.Context, id int64) (*entity.Service, error) {
	if s, ok := r.byID[id]; ok {
		return s, nil
	}

	return nil, repository.ErrServiceNotFound
}

func (r *stubServiceRepo) List(_ context.Context) ([]*entity.Service, error) {
	var services []*entity.Service
	for _, s := range r.byID {
		services = append(services, s)
	}
	sort.Slice(services, func(i, j int) bool { return services[i].ID > services[j].ID })

	return services, nil
}

func (r *stubServiceRepo) Create(_ context.Context, service *entity.Service) error {
	r.add(service)

	return nil
}

func (r *stubServiceRepo) Update(_ context.Context, service *entity.Service) error {
	if _, ok := r.byID[service.ID]; !ok {
		return repository.ErrServiceNotFound
	}
	r.byID[service.ID] = service

	return nil
}

func (r *stubServiceRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return repository.ErrServiceNotFound
	}
	delete(r.byID, id)

	return nil
}

func (r *stubServiceRepo) CountActive(_ context.Context) (int64, error) {
	var count int64
	for _, s := range r.byID {
		if s.Status == entity.ServiceStatusActive {
			count++
		}
	}

	return count, nil
}

type stubOrderRepo struct {
	byID   map[int64]*entity.Order
	nextID int64
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{byID: make(map[int64]*entity.Order), nextID: 1}
}

func (r *stubOrderRepo) add(o *entity.Order) *entity.Order {
	if o.ID == 0 {
		o.ID = r.nextID
	}
	if o.ID >= r.nextID {
		r.nextID = o.ID + 1
	}
	r.byID[o.ID] = o

	return o
}

func (r *stubOrderRepo) FindByID(_ context.Context, id int64) (*entity.Order, error) {
	if o, ok := r.byID[id]; ok {
		return o, nil
	}

	return nil, repository.ErrOrderNotFound
}

func (r *stubOrderRepo) List(_ context.Context, from, to *time.Time) ([]*entity.Order, error) {
	var orders []*entity.Order
	for _, o := range r.byID {
		if from != nil && o.OrderDate.Before(*from) {
			continue
		}
		if to != nil && !o.OrderDate.Before(*to) {
			continue
		}
		orders = append(orders, o)
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].OrderDate.After(orders[j].OrderDate) })

	return orders, nil
}

func (r *stubOrderRepo) Create(_ context.Context, order *entity.Order) error {
	r.add(order)

	return nil
}

func (r *stubOrderRepo) Update(_ context.Context, order *entity.Order) error {
	if _, ok := r.byID[order.ID]; !ok {
		return repository.ErrOrderNotFound
	}
	r.byID[order.ID] = order

	return nil
}

func (r *stubOrderRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return repository.ErrOrderNotFound
	}
	delete(r.byID, id)

	return nil
}

func (r *stubOrderRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.byID)), nil
}

func (r *stubOrderRepo) CountByUser(_ context.Context, userID int64) (int64, error) {
	var count int64
	for _, o := range r.byID {
		if o.UserID == userID {
			count++
		}
	}

	return count, nil
}

func (r *stubOrderRepo) CountByService(_ context.Context, serviceID int64) (int64, error) {
	var count int64
	for _, o := range r.byID {
		if o.ServiceID != nil && *o.ServiceID == serviceID {
			count++
		}
	}

	return count, nil
}

func (r *stubOrderRepo) TotalRevenue(_ context.Context) (float64, error) {
	var total float64
	for _, o := range r.byID {
		total += o.TotalPrice
	}

	return total, nil
}

type stubActivityRepo struct {
	entries   []*entity.ActivityLog
	appendErr error
	nextID    int64
}

func newStubActivityRepo() *stubActivityRepo {
	return &stubActivityRepo{nextID: 1}
}

func (r *stubActivityRepo) Append(_ context.Context, log *entity.ActivityLog) error {
	if r.appendErr != nil {
		return r.appendErr
	}
	log.ID = r.nextID
	r.nextID++
	r.entries = append(r.entries, log)

	return nil
}

func (r *stubActivityRepo) LatestByUserAction(_ context.Context, userID int64, action string) (*entity.ActivityLog, error) {
	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.entries[i].UserID == userID && r.entries[i].Action == action {
			return r.entries[i], nil
		}
	}

	return nil, repository.ErrActivityNotFound
}

func (r *stubActivityRepo) List(_ context.Context, limit int) ([]*entity.ActivityLog, error) {
	logs := make([]*entity.ActivityLog, len(r.entries))
	copy(logs, r.entries)
	sort.Slice(logs, func(i, j int) bool { return logs[i].CreatedAt.After(logs[j].CreatedAt) })
	if limit > 0 && len(logs) > limit {
		logs = logs[:limit]
	}

	return logs, nil
}

// stubHasher avoids bcrypt cost in service tests.
type stubHasher struct{}

func (stubHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (stubHasher) Check(password, hash string) bool { return "hashed:"+password == hash }

// stubTokenService issues a fixed token.
type stubTokenService struct{}

func (stubTokenService) GenerateToken(_ entity.Actor) (string, error) { return "test-token", nil }

func (stubTokenService) ValidateToken(_ string) (entity.Actor, error) {
	return entity.Actor{}, nil
}
