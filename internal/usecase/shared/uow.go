package shared

import (
	"context"
	"time"

	"rental-contracts/internal/domain/contract"
	sqlc "rental-contracts/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Contracts() ContractRepository
	ContractNumbers() ContractNumberRepository
	Idempotency() IdempotencyRepository
	Events() ContractEventRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

// CommandReads also serves as the availability lookup so that candidate
// periods are read inside the same transaction as the write.
type CommandReads interface {
	contract.ReservationLookup
	PersonByID(ctx context.Context, id uuid.UUID) (*PersonSnapshot, error)
	EquipmentByID(ctx context.Context, id uuid.UUID) (*EquipmentSnapshot, error)
	IdempotencyByKey(ctx context.Context, key string, userID uuid.UUID) (*IdempotencyRecord, error)
}

type ContractRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, c *contract.Contract) error
	// FindForUpdate row-locks the contract until the transaction ends.
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*contract.Contract, error)
	Save(ctx context.Context, tx sqlc.DBTX, c *contract.Contract) error
	// LockEquipment serializes reservation-making writes per equipment id.
	LockEquipment(ctx context.Context, tx sqlc.DBTX, equipmentIDs []uuid.UUID) error
}

type ContractNumberRepository interface {
	// Next issues the next sequence for year, seeding from existing numbers on first use.
	Next(ctx context.Context, tx sqlc.DBTX, year int) (int, error)
}

type IdempotencyRepository interface {
	TryInsert(ctx context.Context, tx sqlc.DBTX, key string, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	Complete(ctx context.Context, tx sqlc.DBTX, key string, userID uuid.UUID, contractID uuid.UUID) error
	ClaimExpired(ctx context.Context, tx sqlc.DBTX, key string, userID uuid.UUID, requestHash string, expiresAt time.Time) (bool, error)
}

type ContractEventRepository interface {
	Enqueue(ctx context.Context, tx sqlc.DBTX, event ContractEvent) error
}
