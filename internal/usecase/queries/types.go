package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
	// Keeps (page-1)*page_size well inside the OFFSET range.
	MaxPage = 1_000_000
)

// ContractView is the full read model returned by get, create and update.
type ContractView struct {
	ID                 uuid.UUID
	Number             string
	CustomerID         uuid.UUID
	CustomerName       string
	CreatedByID        uuid.UUID
	CreatedByName      string
	ApprovedByID       *uuid.UUID
	ApprovedByName     *string
	StartDate          time.Time
	EndDate            time.Time
	Status             string
	TotalValue         decimal.Decimal
	TotalDays          int
	Notes              *string
	CancellationReason *string
	Items              []ContractItemView
	ApprovedAt         *time.Time
	ActivatedAt        *time.Time
	FinishedAt         *time.Time
	CancelledAt        *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type ContractItemView struct {
	ID            uuid.UUID
	EquipmentID   uuid.UUID
	EquipmentName string
	Quantity      int
	DailyRate     decimal.Decimal
	Subtotal      decimal.Decimal
	Notes         *string
}

type ContractListItem struct {
	ID           uuid.UUID
	Number       string
	CustomerID   uuid.UUID
	CustomerName string
	StartDate    time.Time
	EndDate      time.Time
	Status       string
	TotalValue   decimal.Decimal
	TotalDays    int
	ItemsCount   int
	CreatedAt    time.Time
}

// ContractFilter narrows the list. Nil fields are not applied.
type ContractFilter struct {
	Status        *string
	CustomerID    *uuid.UUID
	StartDateFrom *time.Time
	StartDateTo   *time.Time
	Search        string
	Page          int
	PageSize      int
}

func (f ContractFilter) Offset() int {
	return (f.Page - 1) * f.PageSize
}

type ContractPage struct {
	Items      []*ContractListItem
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

type EquipmentView struct {
	ID        uuid.UUID
	Name      string
	DailyRate decimal.Decimal
	IsActive  bool
}

type PersonView struct {
	ID       uuid.UUID
	Name     string
	IsActive bool
}

type QuoteLine struct {
	EquipmentID uuid.UUID
	Quantity    int
	DailyRate   decimal.Decimal
}

type QuoteInput struct {
	StartDate time.Time
	EndDate   time.Time
	Items     []QuoteLine
}

// ContractCalculation previews the totals a contract would get.
type ContractCalculation struct {
	StartDate  time.Time
	EndDate    time.Time
	TotalDays  int
	TotalValue decimal.Decimal
	Items      []CalculatedItem
}

type CalculatedItem struct {
	EquipmentID   uuid.UUID
	EquipmentName string
	Quantity      int
	DailyRate     decimal.Decimal
	Subtotal      decimal.Decimal
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID          uuid.UUID
	Email       string
	Name        string
	Role        string
	IsActive    bool
	Permissions []string
}
