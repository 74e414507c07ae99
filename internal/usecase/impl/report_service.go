package impl

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"floradesk/internal/domain/entity"
	domainerrors "floradesk/internal/domain/errors"
	"floradesk/internal/domain/repository"
	"floradesk/internal/report"
	"floradesk/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reportService implements the ReportUsecase interface. Reports are
// recomputed per request; nothing is cached or paginated.
type reportService struct {
	userRepo    repository.UserRepository
	orderRepo   repository.OrderRepository
	serviceRepo repository.ServiceRepository
	now         func() time.Time
}

// ReportServiceParams holds dependencies for reportService, injected by Fx.
type ReportServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	OrderRepo   repository.OrderRepository
	ServiceRepo repository.ServiceRepository
}

// NewReportService is the constructor for reportService.
func NewReportService(params ReportServiceParams) usecase.ReportUsecase {
	return &reportService{
		userRepo:    params.UserRepo,
		orderRepo:   params.OrderRepo,
		serviceRepo: params.ServiceRepo,
		now:         time.Now,
	}
}

// rangeBounds converts an inclusive date-only range into half-open repository
// bounds: the end bound moves to the start of the following day.
func rangeBounds(from, to *time.Time) (*time.Time, *time.Time) {
	var lo, hi *time.Time
	if from != nil {
		start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
		lo = &start
	}
	if to != nil {
		end := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, to.Location()).AddDate(0, 0, 1)
		hi = &end
	}

	return lo, hi
}

func capitalize(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}

// Generate builds a tabular report of the given kind over the inclusive
// date range.
func (srv *reportService) Generate(ctx context.Context, kind report.Kind, from, to *time.Time) (*report.Report, error) {
	r := &report.Report{Kind: kind, GeneratedAt: srv.now()}

	var err error
	switch kind {
	case report.KindUsers:
		err = srv.buildUsersReport(ctx, r, from, to)
	case report.KindOrders:
		err = srv.buildOrdersReport(ctx, r, from, to)
	case report.KindServices:
		err = srv.buildServicesReport(ctx, r, from, to)
	case report.KindRevenue:
		err = srv.buildRevenueReport(ctx, r, from, to)
	default:
		return nil, domainerrors.ErrUnknownReportType
	}
	if err != nil {
		return nil, err
	}

	return r, nil
}

func (srv *reportService) buildUsersReport(ctx context.Context, r *report.Report, from, to *time.Time) error {
	lo, hi := rangeBounds(from, to)
	users, err := srv.userRepo.List(ctx, lo, hi)
	if err != nil {
		return errors.Wrap(err, "failed to list users for report")
	}

	r.Title = "Users Report"
	r.Headers = []string{"ID", "Name", "Email", "Phone", "Orders", "Joined"}
	for _, u := range users {
		orderCount, err := srv.orderRepo.CountByUser(ctx, u.ID)
		if err != nil {
			return errors.Wrap(err, "failed to count user orders for report")
		}
		r.Rows = append(r.Rows, []string{
			strconv.FormatInt(u.ID, 10),
			u.Name,
			u.Email,
			report.OrNA(u.Phone),
			strconv.FormatInt(orderCount, 10),
			u.CreatedAt.Format("2006-01-02"),
		})
	}

	return nil
}

func (srv *reportService) buildOrdersReport(ctx context.Context, r *report.Report, from, to *time.Time) error {
	lo, hi := rangeBounds(from, to)
	orders, err := srv.orderRepo.List(ctx, lo, hi)
	if err != nil {
		return errors.Wrap(err, "failed to list orders for report")
	}

	r.Title = "Orders Report"
	r.Headers = []string{"ID", "Client", "Service", "Status", "Total", "Order Date"}
	for _, o := range orders {
		r.Rows = append(r.Rows, []string{
			strconv.FormatInt(o.ID, 10),
			o.ClientName,
			report.OrNA(o.ServiceName),
			capitalize(string(o.Status)),
			report.FormatPeso(o.TotalPrice),
			o.OrderDate.Format("2006-01-02"),
		})
	}

	return nil
}

func (srv *reportService) buildServicesReport(ctx context.Context, r *report.Report, from, to *time.Time) error {
	services, err := srv.serviceRepo.List(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to list services for report")
	}

	lo, hi := rangeBounds(from, to)

	r.Title = "Services Report"
	r.Headers = []string{"ID", "Name", "Description", "Price", "Status"}
	for _, s := range services {
		if lo != nil && s.CreatedAt.Before(*lo) {
			continue
		}
		if hi != nil && !s.CreatedAt.Before(*hi) {
			continue
		}
		r.Rows = append(r.Rows, []string{
			strconv.FormatInt(s.ID, 10),
			s.Name,
			report.Truncate(s.Description),
			report.FormatPeso(s.Price),
			capitalize(string(s.Status)),
		})
	}

	return nil
}

type revenueKey struct {
	date    string
	service string
}

type revenueGroup struct {
	count int64
	total float64
}

func (srv *reportService) buildRevenueReport(ctx context.Context, r *report.Report, from, to *time.Time) error {
	lo, hi := rangeBounds(from, to)
	orders, err := srv.orderRepo.List(ctx, lo, hi)
	if err != nil {
		return errors.Wrap(err, "failed to list orders for revenue report")
	}

	groups := make(map[revenueKey]*revenueGroup)
	for _, o := range orders {
		key := revenueKey{
			date:    o.OrderDate.Format("2006-01-02"),
			service: report.OrNA(o.ServiceName),
		}
		g, ok := groups[key]
		if !ok {
			g = &revenueGroup{}
			groups[key] = g
		}
		g.count++
		g.total += o.TotalPrice
	}

	keys := make([]revenueKey, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].date != keys[j].date {
			return keys[i].date > keys[j].date
		}

		return keys[i].service < keys[j].service
	})

	r.Title = "Revenue Report"
	r.Headers = []string{"Date", "Service", "Orders", "Total Revenue", "Average"}
	for _, key := range keys {
		g := groups[key]
		r.Rows = append(r.Rows, []string{
			key.date,
			key.service,
			strconv.FormatInt(g.count, 10),
			report.FormatPeso(g.total),
			report.FormatPeso(g.total / float64(g.count)),
		})
	}

	return nil
}

// Summary computes the dashboard headline figures.
func (srv *reportService) Summary(ctx context.Context) (*usecase.DashboardSummary, error) {
	summary := &usecase.DashboardSummary{}

	var err error
	if summary.TotalClients, err = srv.userRepo.CountClients(ctx, nil); err != nil {
		return nil, errors.Wrap(err, "failed to count clients")
	}

	active := entity.UserStatusActive
	if summary.ActiveClients, err = srv.userRepo.CountClients(ctx, &active); err != nil {
		return nil, errors.Wrap(err, "failed to count active clients")
	}

	suspended := entity.UserStatusSuspended
	if summary.SuspendedClients, err = srv.userRepo.CountClients(ctx, &suspended); err != nil {
		return nil, errors.Wrap(err, "failed to count suspended clients")
	}

	if summary.TotalOrders, err = srv.orderRepo.Count(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to count orders")
	}

	if summary.TotalRevenue, err = srv.orderRepo.TotalRevenue(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to sum revenue")
	}

	if summary.ActiveServices, err = srv.serviceRepo.CountActive(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to count active services")
	}

	return summary, nil
}
