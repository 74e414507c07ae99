package entity

import (
	"slices"
	"time"

	"floradesk/internal/errors"
)

// ServiceStatus is the visibility state of a service offering.
type ServiceStatus string

const (
	// ServiceStatusActive means the service can be ordered.
	ServiceStatusActive ServiceStatus = "active"
	// ServiceStatusInactive hides the service from new orders.
	ServiceStatusInactive ServiceStatus = "inactive"
)

// IsValid checks if the ServiceStatus is a valid value.
func (s ServiceStatus) IsValid() bool {
	return s == ServiceStatusActive || s == ServiceStatusInactive
}

// PricingModel describes how a service is billed.
type PricingModel string

const (
	PricingModelFixed     PricingModel = "fixed"
	PricingModelHourly    PricingModel = "hourly"
	PricingModelMilestone PricingModel = "milestone"
)

// IsValid checks if the PricingModel is a valid value.
func (m PricingModel) IsValid() bool {
	switch m {
	case PricingModelFixed, PricingModelHourly, PricingModelMilestone:
		return true
	default:
		return false
	}
}

// PricingUnits enumerates the accepted billing units for services.
var PricingUnits = []string{
	"arrangement", "bouquet", "event", "customization",
	"project", "package", "deliverable", "hour", "day", "week",
	"milestone", "phase", "stage",
}

// IsValidPricingUnit reports whether unit is one of PricingUnits.
func IsValidPricingUnit(unit string) bool {
	return slices.Contains(PricingUnits, unit)
}

// Service is a bookable offering (e.g. event styling, wedding arrangement).
// Orders reference services; a referenced service cannot be deleted.
type Service struct {
	ID           int64
	Name         string
	Description  string
	Price        float64
	Status       ServiceStatus
	PricingModel PricingModel
	PricingUnit  string
	DeliveryTime int // Days until delivery, 1..365.
	Category     string
	CreatedBy    Actor
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SetStatus applies a requested status, rejecting unknown values.
func (s *Service) SetStatus(status ServiceStatus) error {
	if !status.IsValid() {
		return errors.Errorf("invalid service status: %q", status)
	}
	s.Status = status

	return nil
}
