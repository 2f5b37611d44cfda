package shared

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PersonSnapshot struct {
	ID       uuid.UUID
	Name     string
	IsActive bool
}

type EquipmentSnapshot struct {
	ID        uuid.UUID
	Name      string
	DailyRate decimal.Decimal
	IsActive  bool
}

const (
	IdempotencyProcessing = "processing"
	IdempotencyCompleted  = "completed"
)

type IdempotencyRecord struct {
	Key              string
	UserID           uuid.UUID
	Status           string
	RequestHash      string
	ResultContractID *uuid.UUID
	ExpiresAt        time.Time
}

const (
	EventContractCreated       = "contract.created"
	EventContractStatusChanged = "contract.status_changed"
)

type ContractEvent struct {
	ContractID uuid.UUID
	Kind       string
	Payload    []byte
	OccurredAt time.Time
}
