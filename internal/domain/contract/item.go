package contract

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ItemInput struct {
	Line
	Notes *string
}

type Item struct {
	id          uuid.UUID
	equipmentID uuid.UUID
	quantity    int
	dailyRate   decimal.Decimal
	subtotal    decimal.Decimal
	notes       *string
	createdAt   time.Time
	updatedAt   time.Time
}

func newItem(in ItemInput, subtotal decimal.Decimal, now time.Time) (*Item, error) {
	if err := ValidateLine(in.Line); err != nil {
		return nil, err
	}
	return &Item{
		id:          uuid.New(),
		equipmentID: in.EquipmentID,
		quantity:    in.Quantity,
		dailyRate:   in.DailyRate,
		subtotal:    subtotal,
		notes:       in.Notes,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructItem(
	id, equipmentID uuid.UUID,
	quantity int,
	dailyRate, subtotal decimal.Decimal,
	notes *string,
	createdAt, updatedAt time.Time,
) *Item {
	return &Item{
		id:          id,
		equipmentID: equipmentID,
		quantity:    quantity,
		dailyRate:   dailyRate,
		subtotal:    subtotal,
		notes:       notes,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (i *Item) ID() uuid.UUID              { return i.id }
func (i *Item) EquipmentID() uuid.UUID     { return i.equipmentID }
func (i *Item) Quantity() int              { return i.quantity }
func (i *Item) DailyRate() decimal.Decimal { return i.dailyRate }
func (i *Item) Subtotal() decimal.Decimal  { return i.subtotal }
func (i *Item) Notes() *string             { return i.notes }
func (i *Item) CreatedAt() time.Time       { return i.createdAt }
func (i *Item) UpdatedAt() time.Time       { return i.updatedAt }

func (i *Item) line() Line {
	return Line{EquipmentID: i.equipmentID, Quantity: i.quantity, DailyRate: i.dailyRate}
}
