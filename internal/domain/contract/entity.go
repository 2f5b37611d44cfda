package contract

import (
	"slices"
	"strings"
	"time"

	"rental-contracts/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const noteTimestampLayout = "02/01/2006 15:04"

type Services struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
}

type NewContractParams struct {
	Number     Number
	CustomerID uuid.UUID
	CreatedBy  uuid.UUID
	Period     Period
	Items      []ItemInput
	Notes      *string
}

type Contract struct {
	id                 uuid.UUID
	number             Number
	customerID         uuid.UUID
	createdBy          uuid.UUID
	approvedBy         *uuid.UUID
	period             Period
	status             Status
	totalValue         decimal.Decimal
	totalDays          int
	notes              *string
	cancellationReason *string
	items              []*Item
	approvedAt         *time.Time
	activatedAt        *time.Time
	finishedAt         *time.Time
	cancelledAt        *time.Time
	deletedAt          *time.Time
	createdAt          time.Time
	updatedAt          time.Time
}

func NewContract(services *Services, p NewContractParams) (*Contract, error) {
	if len(p.Items) == 0 {
		return nil, ErrNoItems
	}
	if p.Period.IsZero() {
		return nil, ErrInvalidDateRange
	}
	if p.Number == "" {
		return nil, ErrInvalidNumber
	}

	lines := make([]Line, len(p.Items))
	for i, in := range p.Items {
		if err := ValidateLine(in.Line); err != nil {
			return nil, err
		}
		lines[i] = in.Line
	}
	totals := services.PriceCalculator.Calculate(p.Period, lines)
	if err := ValidateTotals(totals); err != nil {
		return nil, err
	}

	now := services.Clock.Now()
	items := make([]*Item, len(p.Items))
	for i, in := range p.Items {
		item, err := newItem(in, totals.Subtotals[i], now)
		if err != nil {
			return nil, err
		}
		items[i] = item
	}

	return &Contract{
		id:         uuid.New(),
		number:     p.Number,
		customerID: p.CustomerID,
		createdBy:  p.CreatedBy,
		period:     p.Period,
		status:     StatusDraft,
		totalValue: totals.TotalValue,
		totalDays:  totals.TotalDays,
		notes:      normalizeNotes(p.Notes),
		items:      items,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// State is the persisted shape of a contract, used to rebuild the aggregate.
type State struct {
	ID                 uuid.UUID
	Number             Number
	CustomerID         uuid.UUID
	CreatedBy          uuid.UUID
	ApprovedBy         *uuid.UUID
	Period             Period
	Status             Status
	TotalValue         decimal.Decimal
	TotalDays          int
	Notes              *string
	CancellationReason *string
	Items              []*Item
	ApprovedAt         *time.Time
	ActivatedAt        *time.Time
	FinishedAt         *time.Time
	CancelledAt        *time.Time
	DeletedAt          *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func Reconstruct(s State) *Contract {
	return &Contract{
		id:                 s.ID,
		number:             s.Number,
		customerID:         s.CustomerID,
		createdBy:          s.CreatedBy,
		approvedBy:         s.ApprovedBy,
		period:             s.Period,
		status:             s.Status,
		totalValue:         s.TotalValue,
		totalDays:          s.TotalDays,
		notes:              s.Notes,
		cancellationReason: s.CancellationReason,
		items:              s.Items,
		approvedAt:         s.ApprovedAt,
		activatedAt:        s.ActivatedAt,
		finishedAt:         s.FinishedAt,
		cancelledAt:        s.CancelledAt,
		deletedAt:          s.DeletedAt,
		createdAt:          s.CreatedAt,
		updatedAt:          s.UpdatedAt,
	}
}

func (c *Contract) CanBeEdited() bool {
	return c.status == StatusDraft || c.status == StatusPendingApproval
}

func (c *Contract) CanBeDeleted() bool {
	return c.status == StatusDraft
}

func (c *Contract) IsDeleted() bool {
	return c.deletedAt != nil
}

func (c *Contract) IsReserving() bool {
	return !c.IsDeleted() && c.status.IsReserving()
}

// Reschedule moves the contract to period and reprices every item.
func (c *Contract) Reschedule(calc PriceCalculator, period Period, at time.Time) error {
	if !c.CanBeEdited() {
		return ErrNotEditable
	}
	if period.IsZero() {
		return ErrInvalidDateRange
	}
	totals := calc.Calculate(period, c.Lines())
	if err := ValidateTotals(totals); err != nil {
		return err
	}
	c.period = period
	c.applyTotals(totals, at)
	return nil
}

func (c *Contract) ReplaceNotes(notes *string, at time.Time) error {
	if !c.CanBeEdited() {
		return ErrNotEditable
	}
	c.notes = normalizeNotes(notes)
	c.updatedAt = at
	return nil
}

// Apply moves the contract through t. The status table is consulted before
// the variant's payload. note, when non-blank, is appended to the note log
// with the transition time.
func (c *Contract) Apply(t Transition, at time.Time, note string) error {
	if t == nil {
		return ErrInvalidStatus
	}
	if !c.status.CanTransitionTo(t.Target()) {
		return &IllegalTransitionError{From: c.status, To: t.Target()}
	}
	if err := t.validate(); err != nil {
		return err
	}
	t.apply(c, at)
	c.status = t.Target()
	c.AppendNote(note, at)
	c.updatedAt = at
	return nil
}

// AppendNote never rewrites earlier entries.
func (c *Contract) AppendNote(note string, at time.Time) {
	note = strings.TrimSpace(note)
	if note == "" {
		return
	}
	entry := "[" + at.Format(noteTimestampLayout) + "] " + note
	if c.notes == nil || *c.notes == "" {
		c.notes = &entry
		return
	}
	merged := *c.notes + "\n\n" + entry
	c.notes = &merged
}

func (c *Contract) MarkDeleted(at time.Time) error {
	if c.IsDeleted() || !c.CanBeDeleted() {
		return ErrNotDeletable
	}
	c.deletedAt = &at
	c.updatedAt = at
	return nil
}

// EquipmentIDs returns the distinct equipment ids in ascending order, the
// order locks are taken in.
func (c *Contract) EquipmentIDs() []uuid.UUID {
	ids := c.ItemEquipmentIDs()
	SortIDs(ids)
	return ids
}

// ItemEquipmentIDs returns the distinct equipment ids in item order.
func (c *Contract) ItemEquipmentIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(c.items))
	for _, it := range c.items {
		if !slices.Contains(ids, it.equipmentID) {
			ids = append(ids, it.equipmentID)
		}
	}
	return ids
}

func (c *Contract) Lines() []Line {
	lines := make([]Line, len(c.items))
	for i, it := range c.items {
		lines[i] = it.line()
	}
	return lines
}

func (c *Contract) applyTotals(totals Totals, at time.Time) {
	for i, it := range c.items {
		it.subtotal = totals.Subtotals[i]
		it.updatedAt = at
	}
	c.totalDays = totals.TotalDays
	c.totalValue = totals.TotalValue
	c.updatedAt = at
}

func SortIDs(ids []uuid.UUID) {
	slices.SortFunc(ids, func(a, b uuid.UUID) int {
		return strings.Compare(a.String(), b.String())
	})
}

func normalizeNotes(notes *string) *string {
	if notes == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*notes)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (c *Contract) ID() uuid.UUID               { return c.id }
func (c *Contract) Number() Number              { return c.number }
func (c *Contract) CustomerID() uuid.UUID       { return c.customerID }
func (c *Contract) CreatedBy() uuid.UUID        { return c.createdBy }
func (c *Contract) ApprovedBy() *uuid.UUID      { return c.approvedBy }
func (c *Contract) Period() Period              { return c.period }
func (c *Contract) Status() Status              { return c.status }
func (c *Contract) TotalValue() decimal.Decimal { return c.totalValue }
func (c *Contract) TotalDays() int              { return c.totalDays }
func (c *Contract) Notes() *string              { return c.notes }
func (c *Contract) CancellationReason() *string { return c.cancellationReason }
func (c *Contract) Items() []*Item              { return c.items }
func (c *Contract) ApprovedAt() *time.Time      { return c.approvedAt }
func (c *Contract) ActivatedAt() *time.Time     { return c.activatedAt }
func (c *Contract) FinishedAt() *time.Time      { return c.finishedAt }
func (c *Contract) CancelledAt() *time.Time     { return c.cancelledAt }
func (c *Contract) DeletedAt() *time.Time       { return c.deletedAt }
func (c *Contract) CreatedAt() time.Time        { return c.createdAt }
func (c *Contract) UpdatedAt() time.Time        { return c.updatedAt }
