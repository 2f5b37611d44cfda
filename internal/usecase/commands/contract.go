package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"rental-contracts/internal/domain/contract"
	"rental-contracts/internal/infra"
	"rental-contracts/internal/pkg/clock"
	"rental-contracts/internal/pkg/config"
	"rental-contracts/internal/pkg/errs"
	"rental-contracts/internal/pkg/metrics"
	"rental-contracts/internal/pkg/patch"
	"rental-contracts/internal/usecase/queries"
	"rental-contracts/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const createContractEndpoint = "POST /contracts"

type CreateContractItem struct {
	EquipmentID uuid.UUID       `json:"equipmentId"`
	Quantity    int             `json:"quantity"`
	DailyRate   decimal.Decimal `json:"dailyRate"`
	Notes       *string         `json:"notes,omitempty"`
}

type CreateContractInput struct {
	CustomerID uuid.UUID            `json:"customerId"`
	StartDate  time.Time            `json:"startDate"`
	EndDate    time.Time            `json:"endDate"`
	Items      []CreateContractItem `json:"items"`
	Notes      *string              `json:"notes,omitempty"`
}

// UpdateContractInput leaves nil fields untouched.
type UpdateContractInput struct {
	StartDate *time.Time
	EndDate   *time.Time
	Notes     *string
}

type UpdateStatusInput struct {
	Status             string
	Note               *string
	CancellationReason *string
}

type CreateContractResult struct {
	Contract   *queries.ContractView
	IsReplayed bool
}

type ContractCommands interface {
	Create(ctx context.Context, in CreateContractInput, actorID uuid.UUID, idempotencyKey *string) (*CreateContractResult, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateContractInput, actorID uuid.UUID) (*queries.ContractView, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, in UpdateStatusInput, actorID uuid.UUID) (*queries.ContractView, error)
	Delete(ctx context.Context, id uuid.UUID, actorID uuid.UUID) error
}

type contractUseCaseImpl struct {
	uow            shared.UnitOfWork
	queries        queries.ContractQueries
	pricing        contract.PriceCalculator
	clock          clock.Clock
	metrics        *metrics.ContractMetrics
	idempotencyTTL time.Duration
	numberLocation *time.Location
}

func NewContractUseCase(
	uow shared.UnitOfWork,
	contractQueries queries.ContractQueries,
	pricing contract.PriceCalculator,
	clk clock.Clock,
	m *metrics.ContractMetrics,
	cfg config.ContractsConfig,
) (ContractCommands, error) {
	loc, err := cfg.NumberLocation()
	if err != nil {
		return nil, errs.Wrap(err, "invalid contract number time zone")
	}
	return &contractUseCaseImpl{
		uow:            uow,
		queries:        contractQueries,
		pricing:        pricing,
		clock:          clk,
		metrics:        m,
		idempotencyTTL: cfg.IdempotencyTTL,
		numberLocation: loc,
	}, nil
}

func (uc *contractUseCaseImpl) Create(
	ctx context.Context,
	in CreateContractInput,
	actorID uuid.UUID,
	idempotencyKey *string,
) (*CreateContractResult, error) {
	defer uc.observe("create", time.Now())

	period, items, err := validateCreateInput(in)
	if err != nil {
		return nil, err
	}

	var requestHash string
	if idempotencyKey != nil {
		requestHash, err = calculateRequestHash(in)
		if err != nil {
			return nil, err
		}
	}

	var (
		contractID uuid.UUID
		created    *contract.Contract
		replayed   bool
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, replayed = nil, false

		if idempotencyKey != nil {
			existingID, derr := uc.claimIdempotencyKey(ctx, tx, *idempotencyKey, actorID, requestHash)
			if derr != nil {
				return derr
			}
			if existingID != nil {
				contractID = *existingID
				replayed = true
				return nil
			}
		}

		c, derr := uc.createInTx(ctx, tx, in.CustomerID, period, items, in.Notes, actorID)
		if derr != nil {
			return derr
		}

		if idempotencyKey != nil {
			if derr = tx.Idempotency().Complete(ctx, tx.DB(), *idempotencyKey, actorID, c.ID()); derr != nil {
				return errs.Mark(derr, ErrDatabaseOperationFailed)
			}
		}

		created = c
		contractID = c.ID()
		return nil
	})
	if err != nil {
		return nil, err
	}

	if replayed {
		slog.InfoContext(ctx, "replayed contract creation",
			"contract_id", contractID.String(),
			"idempotency_key", *idempotencyKey)
	} else {
		uc.metrics.IncCreated()
		slog.InfoContext(ctx, "contract created",
			"contract_id", created.ID().String(),
			"contract_number", created.Number().String(),
			"customer_id", created.CustomerID().String(),
			"actor_id", actorID.String())
	}

	// Read-after-write: the view carries the joined customer and equipment names
	view, err := uc.queries.GetByID(ctx, contractID)
	if err != nil {
		return nil, err
	}
	return &CreateContractResult{
		Contract:   view,
		IsReplayed: replayed,
	}, nil
}

func (uc *contractUseCaseImpl) createInTx(
	ctx context.Context,
	tx shared.Tx,
	customerID uuid.UUID,
	period contract.Period,
	items []contract.ItemInput,
	notes *string,
	actorID uuid.UUID,
) (*contract.Contract, error) {
	reads := tx.Reads()

	if _, err := reads.PersonByID(ctx, customerID); err != nil {
		return nil, markNotFound(err, ErrCustomerNotFound)
	}

	equipmentIDs := make([]uuid.UUID, 0, len(items))
	for _, it := range items {
		if _, err := reads.EquipmentByID(ctx, it.EquipmentID); err != nil {
			return nil, markNotFound(err, ErrEquipmentNotFound)
		}
		equipmentIDs = append(equipmentIDs, it.EquipmentID)
	}

	if err := uc.ensureAvailable(ctx, reads, "create", equipmentIDs, period, nil); err != nil {
		return nil, err
	}

	year := uc.clock.Now().In(uc.numberLocation).Year()
	seq, err := tx.ContractNumbers().Next(ctx, tx.DB(), year)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	number, err := contract.FormatNumber(year, seq)
	if err != nil {
		return nil, err
	}

	services := &contract.Services{
		Clock:           uc.clock,
		PriceCalculator: uc.pricing,
	}
	c, err := contract.NewContract(services, contract.NewContractParams{
		Number:     number,
		CustomerID: customerID,
		CreatedBy:  actorID,
		Period:     period,
		Items:      items,
		Notes:      notes,
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := tx.Contracts().Create(ctx, tx.DB(), c); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := uc.enqueue(ctx, tx, c.ID(), shared.EventContractCreated, map[string]any{
		"contractId":     c.ID(),
		"contractNumber": c.Number(),
		"customerId":     c.CustomerID(),
		"status":         c.Status(),
		"totalValue":     c.TotalValue().StringFixed(2),
	}); err != nil {
		return nil, err
	}
	return c, nil
}

// claimIdempotencyKey returns the contract created by an earlier request with
// the same key, or nil when this request owns the key and should proceed.
func (uc *contractUseCaseImpl) claimIdempotencyKey(
	ctx context.Context,
	tx shared.Tx,
	key string,
	userID uuid.UUID,
	requestHash string,
) (*uuid.UUID, error) {
	expiresAt := uc.clock.Now().Add(uc.idempotencyTTL)

	inserted, err := tx.Idempotency().TryInsert(ctx, tx.DB(), key, userID, createContractEndpoint, requestHash, expiresAt)
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}
	if inserted {
		return nil, nil
	}

	existing, err := tx.Reads().IdempotencyByKey(ctx, key, userID)
	if err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
		}
		claimed, cerr := tx.Idempotency().ClaimExpired(ctx, tx.DB(), key, userID, requestHash, expiresAt)
		if cerr != nil {
			return nil, errs.Mark(cerr, ErrIdempotencyCheckFailed)
		}
		if !claimed {
			return nil, ErrIdempotencyInProgress
		}
		return nil, nil
	}

	if existing.RequestHash != requestHash {
		return nil, ErrIdempotencyConflict
	}

	switch existing.Status {
	case shared.IdempotencyCompleted:
		if existing.ResultContractID == nil {
			return nil, errs.New("completed idempotency key is missing its contract")
		}
		return existing.ResultContractID, nil
	case shared.IdempotencyProcessing:
		return nil, ErrIdempotencyInProgress
	default:
		return nil, errs.New("invalid idempotency key status")
	}
}

func (uc *contractUseCaseImpl) Update(
	ctx context.Context,
	id uuid.UUID,
	in UpdateContractInput,
	actorID uuid.UUID,
) (*queries.ContractView, error) {
	defer uc.observe("update", time.Now())

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := loadForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}
		if !c.CanBeEdited() {
			return contract.ErrNotEditable
		}

		now := uc.clock.Now()
		if in.StartDate != nil || in.EndDate != nil {
			current := c.Period()
			period, err := contract.NewPeriod(
				patch.Coalesce(in.StartDate, current.Start()),
				patch.Coalesce(in.EndDate, current.End()),
			)
			if err != nil {
				return err
			}
			if !period.Equal(current) {
				self := c.ID()
				if err := uc.ensureAvailable(ctx, tx.Reads(), "update", c.ItemEquipmentIDs(), period, &self); err != nil {
					return err
				}
				if err := c.Reschedule(uc.pricing, period, now); err != nil {
					return err
				}
			}
		}

		if in.Notes != nil {
			if err := c.ReplaceNotes(in.Notes, now); err != nil {
				return err
			}
		}

		if err := tx.Contracts().Save(ctx, tx.DB(), c); err != nil {
			return markNotFound(err, ErrContractNotFound)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "contract updated",
		"contract_id", id.String(),
		"actor_id", actorID.String())

	return uc.queries.GetByID(ctx, id)
}

func (uc *contractUseCaseImpl) UpdateStatus(
	ctx context.Context,
	id uuid.UUID,
	in UpdateStatusInput,
	actorID uuid.UUID,
) (*queries.ContractView, error) {
	defer uc.observe("update_status", time.Now())

	target, err := contract.ParseStatus(in.Status)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	transition, err := contract.NewTransition(target, actorID, patch.Coalesce(in.CancellationReason, ""))
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var (
		from   contract.Status
		number contract.Number
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := loadForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}
		from = c.Status()
		number = c.Number()

		// Entering a reserving status must not race another contract into the
		// same equipment: lock every piece in sorted order, then re-check.
		if target.IsReserving() && from.CanTransitionTo(target) {
			if err := tx.Contracts().LockEquipment(ctx, tx.DB(), c.EquipmentIDs()); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			self := c.ID()
			if err := uc.ensureAvailable(ctx, tx.Reads(), target.String(), c.ItemEquipmentIDs(), c.Period(), &self); err != nil {
				return err
			}
		}

		if err := c.Apply(transition, uc.clock.Now(), patch.Coalesce(in.Note, "")); err != nil {
			return err
		}

		if err := tx.Contracts().Save(ctx, tx.DB(), c); err != nil {
			return markNotFound(err, ErrContractNotFound)
		}

		payload := map[string]any{
			"contractId":     c.ID(),
			"contractNumber": c.Number(),
			"from":           from,
			"to":             c.Status(),
			"actorId":        actorID,
		}
		if reason := c.CancellationReason(); reason != nil && target == contract.StatusCancelled {
			payload["cancellationReason"] = *reason
		}
		return uc.enqueue(ctx, tx, c.ID(), shared.EventContractStatusChanged, payload)
	})
	if err != nil {
		var illegal *contract.IllegalTransitionError
		if errors.As(err, &illegal) {
			slog.WarnContext(ctx, "illegal contract transition",
				"contract_id", id.String(),
				"from", illegal.From.String(),
				"to", illegal.To.String())
		}
		return nil, err
	}

	uc.metrics.IncTransition(from.String(), target.String())
	slog.InfoContext(ctx, "contract status changed",
		"contract_id", id.String(),
		"contract_number", number.String(),
		"from", from.String(),
		"to", target.String(),
		"actor_id", actorID.String())

	return uc.queries.GetByID(ctx, id)
}

func (uc *contractUseCaseImpl) Delete(ctx context.Context, id uuid.UUID, actorID uuid.UUID) error {
	defer uc.observe("delete", time.Now())

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := loadForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := c.MarkDeleted(uc.clock.Now()); err != nil {
			return err
		}
		if err := tx.Contracts().Save(ctx, tx.DB(), c); err != nil {
			return markNotFound(err, ErrContractNotFound)
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "contract deleted",
		"contract_id", id.String(),
		"actor_id", actorID.String())
	return nil
}

func (uc *contractUseCaseImpl) ensureAvailable(
	ctx context.Context,
	lookup contract.ReservationLookup,
	stage string,
	equipmentIDs []uuid.UUID,
	period contract.Period,
	exclude *uuid.UUID,
) error {
	err := contract.NewAvailabilityChecker(lookup).EnsureAvailable(ctx, equipmentIDs, period, exclude)
	if err == nil {
		return nil
	}

	var unavailable *contract.UnavailableError
	if errors.As(err, &unavailable) {
		uc.metrics.IncConflict(stage)
		slog.WarnContext(ctx, "equipment unavailable",
			"stage", stage,
			"equipment_id", unavailable.EquipmentID.String(),
			"conflicting_contract_id", unavailable.ConflictingContractID.String(),
			"period", period.String())
		return err
	}
	return errs.Mark(err, ErrDatabaseOperationFailed)
}

func (uc *contractUseCaseImpl) enqueue(ctx context.Context, tx shared.Tx, contractID uuid.UUID, kind string, payload map[string]any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errs.Wrap(err, "failed to encode contract event")
	}
	event := shared.ContractEvent{
		ContractID: contractID,
		Kind:       kind,
		Payload:    body,
		OccurredAt: uc.clock.Now(),
	}
	if err := tx.Events().Enqueue(ctx, tx.DB(), event); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (uc *contractUseCaseImpl) observe(command string, start time.Time) {
	uc.metrics.ObserveCommand(command, time.Since(start))
}

func loadForUpdate(ctx context.Context, tx shared.Tx, id uuid.UUID) (*contract.Contract, error) {
	c, err := tx.Contracts().FindForUpdate(ctx, tx.DB(), id)
	if err != nil {
		return nil, markNotFound(err, ErrContractNotFound)
	}
	if c.IsDeleted() {
		return nil, ErrContractNotFound
	}
	return c, nil
}

func markNotFound(err error, notFound error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, notFound)
	}
	return errs.Mark(err, ErrDatabaseOperationFailed)
}

func validateCreateInput(in CreateContractInput) (contract.Period, []contract.ItemInput, error) {
	if len(in.Items) == 0 {
		return contract.Period{}, nil, errs.Mark(contract.ErrNoItems, ErrDomainValidation)
	}

	items := make([]contract.ItemInput, len(in.Items))
	for i, it := range in.Items {
		line := contract.Line{
			EquipmentID: it.EquipmentID,
			Quantity:    it.Quantity,
			DailyRate:   it.DailyRate,
		}
		if err := contract.ValidateLine(line); err != nil {
			return contract.Period{}, nil, errs.Mark(err, ErrDomainValidation)
		}
		items[i] = contract.ItemInput{Line: line, Notes: it.Notes}
	}

	period, err := contract.NewPeriod(in.StartDate, in.EndDate)
	if err != nil {
		return contract.Period{}, nil, err
	}
	return period, items, nil
}

var marshalRequest = json.Marshal

func calculateRequestHash(in CreateContractInput) (string, error) {
	data, err := marshalRequest(in)
	if err != nil {
		return "", errs.Wrap(err, "failed to encode request for idempotency hash")
	}
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:]), nil
}
