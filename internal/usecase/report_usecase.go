package usecase

import (
	"context"
	"time"

	"floradesk/internal/report"
)

// DashboardSummary carries the headline figures shown on the reports page.
type DashboardSummary struct {
	TotalClients     int64
	ActiveClients    int64
	SuspendedClients int64
	TotalOrders      int64
	TotalRevenue     float64
	ActiveServices   int64
}

// ReportUsecase defines the interface for report generation.
type ReportUsecase interface {
	// Generate builds a tabular report of the given kind over the inclusive
	// date range. A nil bound leaves that side open.
	Generate(ctx context.Context, kind report.Kind, from, to *time.Time) (*report.Report, error)

	// Summary computes the dashboard headline figures.
	Summary(ctx context.Context) (*DashboardSummary, error)
}
