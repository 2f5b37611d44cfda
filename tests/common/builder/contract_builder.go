//go:build unit || e2e

package builder

import (
	"time"

	"rental-contracts/internal/domain/contract"
	reqdto "rental-contracts/internal/handler/dto/request"
	sqlc "rental-contracts/internal/infra/sqlc/generated"
	"rental-contracts/internal/pkg/clock"
	"rental-contracts/internal/pkg/pgconv"
	"rental-contracts/internal/usecase/commands"
	"rental-contracts/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var DefaultNow = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

type ItemSpec struct {
	EquipmentID uuid.UUID
	Quantity    int
	DailyRate   decimal.Decimal
	Notes       *string
}

type ContractBuilder struct {
	ID         uuid.UUID
	Number     string
	CustomerID uuid.UUID
	CreatedBy  uuid.UUID
	ApprovedBy *uuid.UUID
	StartDate  string
	EndDate    string
	Status     contract.Status
	Notes      *string
	Items      []ItemSpec
	Deleted    bool
	Now        time.Time
}

// NewContractBuilder returns a three-day draft with one item at 80.00 a day.
func NewContractBuilder() *ContractBuilder {
	return &ContractBuilder{
		ID:         uuid.New(),
		Number:     "CON-2025-0001",
		CustomerID: uuid.New(),
		CreatedBy:  uuid.New(),
		StartDate:  "2025-03-10",
		EndDate:    "2025-03-12",
		Status:     contract.StatusDraft,
		Items: []ItemSpec{
			{EquipmentID: uuid.New(), Quantity: 2, DailyRate: decimal.RequireFromString("80.00")},
		},
		Now: DefaultNow,
	}
}

func (b *ContractBuilder) With(mutate func(*ContractBuilder)) *ContractBuilder {
	mutate(b)
	return b
}

func (b *ContractBuilder) WithID(id uuid.UUID) *ContractBuilder {
	b.ID = id
	return b
}

func (b *ContractBuilder) WithNumber(n string) *ContractBuilder {
	b.Number = n
	return b
}

func (b *ContractBuilder) WithCustomer(id uuid.UUID) *ContractBuilder {
	b.CustomerID = id
	return b
}

func (b *ContractBuilder) WithCreatedBy(id uuid.UUID) *ContractBuilder {
	b.CreatedBy = id
	return b
}

func (b *ContractBuilder) WithPeriod(start, end string) *ContractBuilder {
	b.StartDate = start
	b.EndDate = end
	return b
}

func (b *ContractBuilder) WithStatus(s contract.Status) *ContractBuilder {
	b.Status = s
	return b
}

func (b *ContractBuilder) WithNotes(notes string) *ContractBuilder {
	b.Notes = &notes
	return b
}

// WithItems replaces the default item.
func (b *ContractBuilder) WithItems(items ...ItemSpec) *ContractBuilder {
	b.Items = items
	return b
}

func (b *ContractBuilder) WithEquipment(ids ...uuid.UUID) *ContractBuilder {
	items := make([]ItemSpec, len(ids))
	for i, id := range ids {
		items[i] = ItemSpec{EquipmentID: id, Quantity: 1, DailyRate: decimal.RequireFromString("50.00")}
	}
	b.Items = items
	return b
}

func (b *ContractBuilder) AsDeleted() *ContractBuilder {
	b.Deleted = true
	return b
}

func (b *ContractBuilder) Period() (contract.Period, error) {
	return contract.ParsePeriod(b.StartDate, b.EndDate)
}

func (b *ContractBuilder) itemInputs() []contract.ItemInput {
	inputs := make([]contract.ItemInput, len(b.Items))
	for i, it := range b.Items {
		inputs[i] = contract.ItemInput{
			Line:  contract.Line{EquipmentID: it.EquipmentID, Quantity: it.Quantity, DailyRate: it.DailyRate},
			Notes: it.Notes,
		}
	}
	return inputs
}

// BuildDomain creates the contract through the aggregate constructor and then
// places it in b.Status with the matching timestamps.
func (b *ContractBuilder) BuildDomain() (*contract.Contract, error) {
	period, err := b.Period()
	if err != nil {
		return nil, err
	}
	services := &contract.Services{
		Clock:           clock.NewMockClock(b.Now),
		PriceCalculator: contract.NewDefaultPriceCalculator(),
	}
	c, err := contract.NewContract(services, contract.NewContractParams{
		Number:     contract.Number(b.Number),
		CustomerID: b.CustomerID,
		CreatedBy:  b.CreatedBy,
		Period:     period,
		Items:      b.itemInputs(),
		Notes:      b.Notes,
	})
	if err != nil {
		return nil, err
	}

	state := contract.State{
		ID:         b.ID,
		Number:     c.Number(),
		CustomerID: c.CustomerID(),
		CreatedBy:  c.CreatedBy(),
		Period:     c.Period(),
		Status:     b.Status,
		TotalValue: c.TotalValue(),
		TotalDays:  c.TotalDays(),
		Notes:      c.Notes(),
		Items:      c.Items(),
		CreatedAt:  c.CreatedAt(),
		UpdatedAt:  c.UpdatedAt(),
	}
	now := b.Now
	switch b.Status {
	case contract.StatusApproved, contract.StatusActive, contract.StatusFinished:
		approver := b.CreatedBy
		if b.ApprovedBy != nil {
			approver = *b.ApprovedBy
		}
		state.ApprovedBy = &approver
		state.ApprovedAt = &now
		if b.Status != contract.StatusApproved {
			state.ActivatedAt = &now
		}
		if b.Status == contract.StatusFinished {
			state.FinishedAt = &now
		}
	case contract.StatusCancelled:
		reason := "customer request"
		state.CancellationReason = &reason
		state.CancelledAt = &now
	}
	if b.Deleted {
		state.DeletedAt = &now
	}
	return contract.Reconstruct(state), nil
}

func (b *ContractBuilder) MustBuildDomain() *contract.Contract {
	c, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return c
}

func (b *ContractBuilder) BuildInfra() (sqlc.Contracts, []sqlc.ContractItems) {
	c := b.MustBuildDomain()
	row := sqlc.Contracts{
		ID:                 c.ID(),
		ContractNumber:     c.Number().String(),
		CustomerID:         c.CustomerID(),
		CreatedBy:          c.CreatedBy(),
		ApprovedBy:         pgconv.UUIDPtrToPgtype(c.ApprovedBy()),
		StartDate:          pgconv.DateToPgtype(c.Period().Start()),
		EndDate:            pgconv.DateToPgtype(c.Period().End()),
		Status:             c.Status().String(),
		TotalValue:         pgconv.DecimalToNumeric(c.TotalValue()),
		TotalDays:          int32(c.TotalDays()), // #nosec G115 -- test data
		Notes:              pgconv.StringPtrToPgtype(c.Notes()),
		CancellationReason: pgconv.StringPtrToPgtype(c.CancellationReason()),
		ApprovedAt:         pgconv.TimePtrToPgtype(c.ApprovedAt()),
		ActivatedAt:        pgconv.TimePtrToPgtype(c.ActivatedAt()),
		FinishedAt:         pgconv.TimePtrToPgtype(c.FinishedAt()),
		CancelledAt:        pgconv.TimePtrToPgtype(c.CancelledAt()),
		DeletedAt:          pgconv.TimePtrToPgtype(c.DeletedAt()),
		CreatedAt:          pgconv.TimeToPgtype(c.CreatedAt()),
		UpdatedAt:          pgconv.TimeToPgtype(c.UpdatedAt()),
	}
	items := make([]sqlc.ContractItems, len(c.Items()))
	for i, it := range c.Items() {
		items[i] = sqlc.ContractItems{
			ID:          it.ID(),
			ContractID:  c.ID(),
			EquipmentID: it.EquipmentID(),
			Quantity:    int32(it.Quantity()), // #nosec G115 -- test data
			DailyRate:   pgconv.DecimalToNumeric(it.DailyRate()),
			Subtotal:    pgconv.DecimalToNumeric(it.Subtotal()),
			Notes:       pgconv.StringPtrToPgtype(it.Notes()),
			CreatedAt:   pgconv.TimeToPgtype(it.CreatedAt()),
			UpdatedAt:   pgconv.TimeToPgtype(it.UpdatedAt()),
		}
	}
	return row, items
}

func (b *ContractBuilder) BuildView() *queries.ContractView {
	c := b.MustBuildDomain()
	view := &queries.ContractView{
		ID:                 c.ID(),
		Number:             c.Number().String(),
		CustomerID:         c.CustomerID(),
		CustomerName:       "Acme Builders",
		CreatedByID:        c.CreatedBy(),
		CreatedByName:      "Test Operator",
		ApprovedByID:       c.ApprovedBy(),
		StartDate:          c.Period().Start(),
		EndDate:            c.Period().End(),
		Status:             c.Status().String(),
		TotalValue:         c.TotalValue(),
		TotalDays:          c.TotalDays(),
		Notes:              c.Notes(),
		CancellationReason: c.CancellationReason(),
		ApprovedAt:         c.ApprovedAt(),
		ActivatedAt:        c.ActivatedAt(),
		FinishedAt:         c.FinishedAt(),
		CancelledAt:        c.CancelledAt(),
		CreatedAt:          c.CreatedAt(),
		UpdatedAt:          c.UpdatedAt(),
	}
	for _, it := range c.Items() {
		view.Items = append(view.Items, queries.ContractItemView{
			ID:            it.ID(),
			EquipmentID:   it.EquipmentID(),
			EquipmentName: "Excavator",
			Quantity:      it.Quantity(),
			DailyRate:     it.DailyRate(),
			Subtotal:      it.Subtotal(),
			Notes:         it.Notes(),
		})
	}
	return view
}

func (b *ContractBuilder) BuildCreateInput() commands.CreateContractInput {
	start, _ := contract.ParseDate(b.StartDate)
	end, _ := contract.ParseDate(b.EndDate)
	items := make([]commands.CreateContractItem, len(b.Items))
	for i, it := range b.Items {
		items[i] = commands.CreateContractItem{
			EquipmentID: it.EquipmentID,
			Quantity:    it.Quantity,
			DailyRate:   it.DailyRate,
			Notes:       it.Notes,
		}
	}
	return commands.CreateContractInput{
		CustomerID: b.CustomerID,
		StartDate:  start,
		EndDate:    end,
		Items:      items,
		Notes:      b.Notes,
	}
}

func (b *ContractBuilder) BuildCreateRequest() reqdto.CreateContractRequest {
	items := make([]reqdto.ContractItemRequest, len(b.Items))
	for i, it := range b.Items {
		rate := it.DailyRate
		items[i] = reqdto.ContractItemRequest{
			EquipmentID: it.EquipmentID,
			Quantity:    it.Quantity,
			DailyRate:   &rate,
			Notes:       it.Notes,
		}
	}
	return reqdto.CreateContractRequest{
		CustomerID: b.CustomerID,
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
		Items:      items,
		Notes:      b.Notes,
	}
}
