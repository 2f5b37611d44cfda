package contract

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ReservedPeriod is a period already held by a reserving contract.
type ReservedPeriod struct {
	ContractID uuid.UUID
	Number     Number
	Period     Period
}

// ReservationLookup lists periods held for equipmentID that end on or after
// from. exclude, when set, leaves that contract out.
type ReservationLookup interface {
	ReservingPeriods(ctx context.Context, equipmentID uuid.UUID, from time.Time, exclude *uuid.UUID) ([]ReservedPeriod, error)
}

type AvailabilityChecker struct {
	lookup ReservationLookup
}

func NewAvailabilityChecker(lookup ReservationLookup) *AvailabilityChecker {
	return &AvailabilityChecker{lookup: lookup}
}

func (a *AvailabilityChecker) IsAvailable(ctx context.Context, equipmentID uuid.UUID, period Period, exclude *uuid.UUID) (bool, error) {
	conflict, err := a.FirstConflict(ctx, equipmentID, period, exclude)
	if err != nil {
		return false, err
	}
	return conflict == nil, nil
}

func (a *AvailabilityChecker) FirstConflict(ctx context.Context, equipmentID uuid.UUID, period Period, exclude *uuid.UUID) (*ReservedPeriod, error) {
	held, err := a.lookup.ReservingPeriods(ctx, equipmentID, period.Start(), exclude)
	if err != nil {
		return nil, err
	}
	for i := range held {
		if exclude != nil && held[i].ContractID == *exclude {
			continue
		}
		if held[i].Period.Overlaps(period) {
			return &held[i], nil
		}
	}
	return nil, nil
}

// EnsureAvailable checks equipment in the order given and reports the first
// conflict. Repeated ids are checked once.
func (a *AvailabilityChecker) EnsureAvailable(ctx context.Context, equipmentIDs []uuid.UUID, period Period, exclude *uuid.UUID) error {
	seen := make(map[uuid.UUID]struct{}, len(equipmentIDs))
	for _, id := range equipmentIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		conflict, err := a.FirstConflict(ctx, id, period, exclude)
		if err != nil {
			return err
		}
		if conflict != nil {
			return &UnavailableError{EquipmentID: id, ConflictingContractID: conflict.ContractID}
		}
	}
	return nil
}
