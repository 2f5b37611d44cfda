//go:build unit

package commands_test

import (
	"context"
	"time"

	"rental-contracts/internal/domain/contract"
	"rental-contracts/internal/infra"
	sqlc "rental-contracts/internal/infra/sqlc/generated"
	"rental-contracts/internal/usecase/shared"

	"github.com/google/uuid"
)

// memStore backs every repository and read port of a fake transaction. It
// keeps committed state only; a failed unit of work restores the snapshot
// taken before it started.
type memStore struct {
	persons   map[uuid.UUID]bool
	equipment map[uuid.UUID]bool
	contracts map[uuid.UUID]*contract.Contract
	sequences map[int]int
	keys      map[string]*shared.IdempotencyRecord
	events    []shared.ContractEvent
	locked    []uuid.UUID

	now     func() time.Time
	saveErr error
}

func newMemStore() *memStore {
	return &memStore{
		persons:   map[uuid.UUID]bool{},
		equipment: map[uuid.UUID]bool{},
		contracts: map[uuid.UUID]*contract.Contract{},
		sequences: map[int]int{},
		keys:      map[string]*shared.IdempotencyRecord{},
		now:       time.Now,
	}
}

func (s *memStore) put(c *contract.Contract) {
	s.contracts[c.ID()] = cloneContract(c)
}

func (s *memStore) get(id uuid.UUID) *contract.Contract {
	return s.contracts[id]
}

func (s *memStore) snapshot() *memStore {
	cp := &memStore{
		persons:   s.persons,
		equipment: s.equipment,
		contracts: make(map[uuid.UUID]*contract.Contract, len(s.contracts)),
		sequences: make(map[int]int, len(s.sequences)),
		keys:      make(map[string]*shared.IdempotencyRecord, len(s.keys)),
		events:    append([]shared.ContractEvent(nil), s.events...),
		saveErr:   s.saveErr,
	}
	for k, v := range s.contracts {
		cp.contracts[k] = cloneContract(v)
	}
	for k, v := range s.sequences {
		cp.sequences[k] = v
	}
	for k, v := range s.keys {
		rec := *v
		cp.keys[k] = &rec
	}
	return cp
}

func (s *memStore) restore(from *memStore) {
	s.contracts = from.contracts
	s.sequences = from.sequences
	s.keys = from.keys
	s.events = from.events
}

func keyOf(key string, userID uuid.UUID) string {
	return userID.String() + "/" + key
}

// ContractRepository

func (s *memStore) Create(_ context.Context, _ sqlc.DBTX, c *contract.Contract) error {
	s.put(c)
	return nil
}

func (s *memStore) FindForUpdate(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*contract.Contract, error) {
	c, ok := s.contracts[id]
	if !ok {
		return nil, infra.WrapRepoErr("contract not found", nil, infra.KindNotFound)
	}
	return cloneContract(c), nil
}

func (s *memStore) Save(_ context.Context, _ sqlc.DBTX, c *contract.Contract) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	if _, ok := s.contracts[c.ID()]; !ok {
		return infra.WrapRepoErr("contract not found", nil, infra.KindNotFound)
	}
	s.put(c)
	return nil
}

func (s *memStore) LockEquipment(_ context.Context, _ sqlc.DBTX, ids []uuid.UUID) error {
	s.locked = append(s.locked, ids...)
	return nil
}

// ContractNumberRepository

func (s *memStore) Next(_ context.Context, _ sqlc.DBTX, year int) (int, error) {
	s.sequences[year]++
	return s.sequences[year], nil
}

// IdempotencyRepository

func (s *memStore) TryInsert(_ context.Context, _ sqlc.DBTX, key string, userID uuid.UUID, _, requestHash string, expiresAt time.Time) (bool, error) {
	k := keyOf(key, userID)
	if _, ok := s.keys[k]; ok {
		return false, nil
	}
	s.keys[k] = &shared.IdempotencyRecord{
		Key:         key,
		UserID:      userID,
		Status:      shared.IdempotencyProcessing,
		RequestHash: requestHash,
		ExpiresAt:   expiresAt,
	}
	return true, nil
}

func (s *memStore) Complete(_ context.Context, _ sqlc.DBTX, key string, userID uuid.UUID, contractID uuid.UUID) error {
	rec := s.keys[keyOf(key, userID)]
	rec.Status = shared.IdempotencyCompleted
	rec.ResultContractID = &contractID
	return nil
}

func (s *memStore) ClaimExpired(_ context.Context, _ sqlc.DBTX, key string, userID uuid.UUID, requestHash string, expiresAt time.Time) (bool, error) {
	rec, ok := s.keys[keyOf(key, userID)]
	if !ok {
		return false, nil
	}
	rec.Status = shared.IdempotencyProcessing
	rec.RequestHash = requestHash
	rec.ResultContractID = nil
	rec.ExpiresAt = expiresAt
	return true, nil
}

// ContractEventRepository

func (s *memStore) Enqueue(_ context.Context, _ sqlc.DBTX, event shared.ContractEvent) error {
	s.events = append(s.events, event)
	return nil
}

// CommandReads

func (s *memStore) ReservingPeriods(_ context.Context, equipmentID uuid.UUID, from time.Time, exclude *uuid.UUID) ([]contract.ReservedPeriod, error) {
	var out []contract.ReservedPeriod
	for _, c := range s.contracts {
		if !c.IsReserving() || c.Period().End().Before(from) {
			continue
		}
		if exclude != nil && c.ID() == *exclude {
			continue
		}
		for _, id := range c.EquipmentIDs() {
			if id == equipmentID {
				out = append(out, contract.ReservedPeriod{ContractID: c.ID(), Number: c.Number(), Period: c.Period()})
			}
		}
	}
	return out, nil
}

func (s *memStore) PersonByID(_ context.Context, id uuid.UUID) (*shared.PersonSnapshot, error) {
	if !s.persons[id] {
		return nil, infra.WrapRepoErr("person not found", nil, infra.KindNotFound)
	}
	return &shared.PersonSnapshot{ID: id, Name: "Acme Builders", IsActive: true}, nil
}

func (s *memStore) EquipmentByID(_ context.Context, id uuid.UUID) (*shared.EquipmentSnapshot, error) {
	if !s.equipment[id] {
		return nil, infra.WrapRepoErr("equipment not found", nil, infra.KindNotFound)
	}
	return &shared.EquipmentSnapshot{ID: id, Name: "Excavator", IsActive: true}, nil
}

func (s *memStore) IdempotencyByKey(_ context.Context, key string, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	rec, ok := s.keys[keyOf(key, userID)]
	if !ok || s.now().After(rec.ExpiresAt) {
		return nil, infra.WrapRepoErr("idempotency key not found", nil, infra.KindNotFound)
	}
	cp := *rec
	return &cp, nil
}

type fakeTx struct {
	store *memStore
}

func (t *fakeTx) Contracts() shared.ContractRepository             { return t.store }
func (t *fakeTx) ContractNumbers() shared.ContractNumberRepository { return t.store }
func (t *fakeTx) Idempotency() shared.IdempotencyRepository        { return t.store }
func (t *fakeTx) Events() shared.ContractEventRepository           { return t.store }
func (t *fakeTx) Reads() shared.CommandReads                       { return t.store }
func (t *fakeTx) DB() sqlc.DBTX                                    { return nil }

type fakeUoW struct {
	store *memStore
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	before := u.store.snapshot()
	if err := fn(ctx, &fakeTx{store: u.store}); err != nil {
		u.store.restore(before)
		return err
	}
	return nil
}

func (u *fakeUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) CommandReads() shared.CommandReads {
	return u.store
}

func cloneContract(c *contract.Contract) *contract.Contract {
	items := make([]*contract.Item, len(c.Items()))
	for i, it := range c.Items() {
		items[i] = contract.ReconstructItem(it.ID(), it.EquipmentID(), it.Quantity(), it.DailyRate(), it.Subtotal(), it.Notes(), it.CreatedAt(), it.UpdatedAt())
	}
	return contract.Reconstruct(contract.State{
		ID:                 c.ID(),
		Number:             c.Number(),
		CustomerID:         c.CustomerID(),
		CreatedBy:          c.CreatedBy(),
		ApprovedBy:         c.ApprovedBy(),
		Period:             c.Period(),
		Status:             c.Status(),
		TotalValue:         c.TotalValue(),
		TotalDays:          c.TotalDays(),
		Notes:              c.Notes(),
		CancellationReason: c.CancellationReason(),
		Items:              items,
		ApprovedAt:         c.ApprovedAt(),
		ActivatedAt:        c.ActivatedAt(),
		FinishedAt:         c.FinishedAt(),
		CancelledAt:        c.CancelledAt(),
		DeletedAt:          c.DeletedAt(),
		CreatedAt:          c.CreatedAt(),
		UpdatedAt:          c.UpdatedAt(),
	})
}
