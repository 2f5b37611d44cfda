package request

import (
	"strings"
	"time"

	"rental-contracts/internal/domain/contract"
	"rental-contracts/internal/usecase/commands"
	"rental-contracts/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ContractItemRequest struct {
	EquipmentID uuid.UUID        `json:"equipmentId" binding:"required"`
	Quantity    int              `json:"quantity" binding:"required,min=1,max=100000"`
	DailyRate   *decimal.Decimal `json:"dailyRate" binding:"required,decimal_gte0,decimal_scale2,daily_rate" swaggertype:"string" example:"80.00"`
	Notes       *string          `json:"notes,omitempty" binding:"omitempty,max=1000"`
}

type CreateContractRequest struct {
	CustomerID uuid.UUID             `json:"customerId" binding:"required"`
	StartDate  string                `json:"startDate" binding:"required,datetime=2006-01-02" example:"2025-03-01"`
	EndDate    string                `json:"endDate" binding:"required,datetime=2006-01-02" example:"2025-03-03"`
	Items      []ContractItemRequest `json:"items" binding:"required,min=1,dive"`
	Notes      *string               `json:"notes,omitempty" binding:"omitempty,max=2000"`
}

func (r CreateContractRequest) ToInput() (commands.CreateContractInput, error) {
	start, err := contract.ParseDate(r.StartDate)
	if err != nil {
		return commands.CreateContractInput{}, err
	}
	end, err := contract.ParseDate(r.EndDate)
	if err != nil {
		return commands.CreateContractInput{}, err
	}

	items := make([]commands.CreateContractItem, len(r.Items))
	for i, it := range r.Items {
		items[i] = commands.CreateContractItem{
			EquipmentID: it.EquipmentID,
			Quantity:    it.Quantity,
			DailyRate:   rateOrZero(it.DailyRate),
			Notes:       trimmed(it.Notes),
		}
	}

	return commands.CreateContractInput{
		CustomerID: r.CustomerID,
		StartDate:  start,
		EndDate:    end,
		Items:      items,
		Notes:      trimmed(r.Notes),
	}, nil
}

type QuoteContractRequest struct {
	StartDate string                `json:"startDate" binding:"required,datetime=2006-01-02" example:"2025-03-01"`
	EndDate   string                `json:"endDate" binding:"required,datetime=2006-01-02" example:"2025-03-03"`
	Items     []ContractItemRequest `json:"items" binding:"required,min=1,dive"`
}

func (r QuoteContractRequest) ToInput() (queries.QuoteInput, error) {
	start, err := contract.ParseDate(r.StartDate)
	if err != nil {
		return queries.QuoteInput{}, err
	}
	end, err := contract.ParseDate(r.EndDate)
	if err != nil {
		return queries.QuoteInput{}, err
	}

	lines := make([]queries.QuoteLine, len(r.Items))
	for i, it := range r.Items {
		lines[i] = queries.QuoteLine{
			EquipmentID: it.EquipmentID,
			Quantity:    it.Quantity,
			DailyRate:   rateOrZero(it.DailyRate),
		}
	}
	return queries.QuoteInput{StartDate: start, EndDate: end, Items: lines}, nil
}

type UpdateContractRequest struct {
	StartDate *string `json:"startDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
	EndDate   *string `json:"endDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Notes     *string `json:"notes,omitempty" binding:"omitempty,max=2000"`
}

func (r UpdateContractRequest) ToInput() (commands.UpdateContractInput, error) {
	var in commands.UpdateContractInput
	if r.StartDate != nil {
		start, err := contract.ParseDate(*r.StartDate)
		if err != nil {
			return in, err
		}
		in.StartDate = &start
	}
	if r.EndDate != nil {
		end, err := contract.ParseDate(*r.EndDate)
		if err != nil {
			return in, err
		}
		in.EndDate = &end
	}
	in.Notes = r.Notes
	return in, nil
}

type UpdateContractStatusRequest struct {
	Status             string  `json:"status" binding:"required,contract_status" example:"approved"`
	Notes              *string `json:"notes,omitempty" binding:"omitempty,max=1000"`
	CancellationReason *string `json:"cancellationReason,omitempty" binding:"omitempty,max=1000"`
}

func (r UpdateContractStatusRequest) ToInput() commands.UpdateStatusInput {
	return commands.UpdateStatusInput{
		Status:             r.Status,
		Note:               r.Notes,
		CancellationReason: r.CancellationReason,
	}
}

type ListContractsQuery struct {
	Status        *string `form:"status" binding:"omitempty,contract_status"`
	CustomerID    *string `form:"customer_id" binding:"omitempty,uuid"`
	StartDateFrom *string `form:"start_date_from" binding:"omitempty,datetime=2006-01-02"`
	StartDateTo   *string `form:"start_date_to" binding:"omitempty,datetime=2006-01-02"`
	Search        string  `form:"search" binding:"max=100"`
	Page          int     `form:"page,default=1" binding:"min=1,max=1000000"`
	PageSize      int     `form:"page_size,default=20" binding:"min=1,max=100"`
}

func (q ListContractsQuery) ToFilter() (queries.ContractFilter, error) {
	filter := queries.ContractFilter{
		Status:   q.Status,
		Search:   strings.TrimSpace(q.Search),
		Page:     q.Page,
		PageSize: q.PageSize,
	}

	if q.CustomerID != nil {
		id, err := uuid.Parse(*q.CustomerID)
		if err != nil {
			return filter, err
		}
		filter.CustomerID = &id
	}

	var err error
	if filter.StartDateFrom, err = parseOptionalDate(q.StartDateFrom); err != nil {
		return filter, err
	}
	if filter.StartDateTo, err = parseOptionalDate(q.StartDateTo); err != nil {
		return filter, err
	}
	return filter, nil
}

func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := contract.ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func rateOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
