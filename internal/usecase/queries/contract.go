package queries

import (
	"context"

	"rental-contracts/internal/domain/contract"
	"rental-contracts/internal/infra"
	"rental-contracts/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrContractNotFound  = errs.ErrContractNotFound
	ErrEquipmentNotFound = errs.ErrEquipmentNotFound
	ErrInvalidPage       = errs.New("page must be between 1 and 1000000")
	ErrInvalidPageSize   = errs.New("page_size must be between 1 and 100")
)

type ContractReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ContractView, error)
	List(ctx context.Context, filter ContractFilter) ([]*ContractListItem, int, error)
}

type EquipmentReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*EquipmentView, error)
}

type ContractQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ContractView, error)
	List(ctx context.Context, filter ContractFilter) (*ContractPage, error)
	Quote(ctx context.Context, in QuoteInput) (*ContractCalculation, error)
}

type contractQueriesImpl struct {
	contracts ContractReadStore
	equipment EquipmentReadStore
	pricing   contract.PriceCalculator
}

func NewContractQueries(contracts ContractReadStore, equipment EquipmentReadStore, pricing contract.PriceCalculator) ContractQueries {
	return &contractQueriesImpl{
		contracts: contracts,
		equipment: equipment,
		pricing:   pricing,
	}
}

func (q *contractQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ContractView, error) {
	view, err := q.contracts.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrContractNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *contractQueriesImpl) List(ctx context.Context, filter ContractFilter) (*ContractPage, error) {
	if filter.Page == 0 {
		filter.Page = 1
	}
	if filter.PageSize == 0 {
		filter.PageSize = DefaultPageSize
	}
	if filter.Page < 1 || filter.Page > MaxPage {
		return nil, ErrInvalidPage
	}
	if filter.PageSize < 1 || filter.PageSize > MaxPageSize {
		return nil, ErrInvalidPageSize
	}
	if filter.Status != nil {
		if _, err := contract.ParseStatus(*filter.Status); err != nil {
			return nil, err
		}
	}

	items, total, err := q.contracts.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ContractPage{
		Items:      items,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages(total, filter.PageSize),
	}, nil
}

// Quote prices a prospective contract without persisting anything.
func (q *contractQueriesImpl) Quote(ctx context.Context, in QuoteInput) (*ContractCalculation, error) {
	if len(in.Items) == 0 {
		return nil, contract.ErrNoItems
	}
	period, err := contract.NewPeriod(in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}

	lines := make([]contract.Line, len(in.Items))
	names := make([]string, len(in.Items))
	for i, it := range in.Items {
		line := contract.Line{EquipmentID: it.EquipmentID, Quantity: it.Quantity, DailyRate: it.DailyRate}
		if err := contract.ValidateLine(line); err != nil {
			return nil, err
		}
		eq, err := q.equipment.FindByID(ctx, it.EquipmentID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.Mark(err, ErrEquipmentNotFound)
			}
			return nil, err
		}
		lines[i] = line
		names[i] = eq.Name
	}

	totals := q.pricing.Calculate(period, lines)
	if err := contract.ValidateTotals(totals); err != nil {
		return nil, err
	}
	calc := &ContractCalculation{
		StartDate:  period.Start(),
		EndDate:    period.End(),
		TotalDays:  totals.TotalDays,
		TotalValue: totals.TotalValue,
		Items:      make([]CalculatedItem, len(lines)),
	}
	for i, l := range lines {
		calc.Items[i] = CalculatedItem{
			EquipmentID:   l.EquipmentID,
			EquipmentName: names[i],
			Quantity:      l.Quantity,
			DailyRate:     l.DailyRate,
			Subtotal:      totals.Subtotals[i],
		}
	}
	return calc, nil
}

func totalPages(total, pageSize int) int {
	if total == 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}
