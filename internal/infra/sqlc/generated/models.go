// Maintained by hand in the layout sqlc v1.29.0 emits for sqlc.yaml.
// Running sqlc generate overwrites it; keep queries/ and this file in step.

package sqlc

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ContractEvents struct {
	ID          uuid.UUID
	ContractID  uuid.UUID
	Kind        string
	Payload     []byte
	Status      string
	Attempts    int32
	LastError   pgtype.Text
	CreatedAt   pgtype.Timestamptz
	PublishedAt pgtype.Timestamptz
}

type ContractItems struct {
	ID          uuid.UUID
	ContractID  uuid.UUID
	EquipmentID uuid.UUID
	Quantity    int32
	DailyRate   pgtype.Numeric
	Subtotal    pgtype.Numeric
	Notes       pgtype.Text
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
}

type ContractNumberSequences struct {
	Year    int32
	LastSeq int32
}

type Contracts struct {
	ID                 uuid.UUID
	ContractNumber     string
	CustomerID         uuid.UUID
	CreatedBy          uuid.UUID
	ApprovedBy         pgtype.UUID
	StartDate          pgtype.Date
	EndDate            pgtype.Date
	Status             string
	TotalValue         pgtype.Numeric
	TotalDays          int32
	Notes              pgtype.Text
	CancellationReason pgtype.Text
	ApprovedAt         pgtype.Timestamptz
	ActivatedAt        pgtype.Timestamptz
	FinishedAt         pgtype.Timestamptz
	CancelledAt        pgtype.Timestamptz
	DeletedAt          pgtype.Timestamptz
	CreatedAt          pgtype.Timestamptz
	UpdatedAt          pgtype.Timestamptz
}

type Equipment struct {
	ID        uuid.UUID
	Name      string
	Code      pgtype.Text
	DailyRate pgtype.Numeric
	IsActive  bool
	DeletedAt pgtype.Timestamptz
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

type IdempotencyKeys struct {
	Key              string
	UserID           uuid.UUID
	Endpoint         string
	RequestHash      string
	Status           string
	ResultContractID pgtype.UUID
	ExpiresAt        pgtype.Timestamptz
	CreatedAt        pgtype.Timestamptz
	UpdatedAt        pgtype.Timestamptz
}

type Persons struct {
	ID        uuid.UUID
	Name      string
	Document  pgtype.Text
	Email     pgtype.Text
	Phone     pgtype.Text
	IsActive  bool
	DeletedAt pgtype.Timestamptz
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

type Users struct {
	ID        uuid.UUID
	Email     string
	Name      string
	Role      string
	IsActive  bool
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}
