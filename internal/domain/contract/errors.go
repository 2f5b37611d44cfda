package contract

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrInvalidDateRange           = errors.New("end date must be after start date")
	ErrInvalidDate                = errors.New("invalid date, expected YYYY-MM-DD")
	ErrIllegalTransition          = errors.New("illegal status transition")
	ErrNotEditable                = errors.New("contract cannot be edited in its current status")
	ErrNotDeletable               = errors.New("only draft contracts can be deleted")
	ErrIdentifierExhausted        = errors.New("contract number sequence exhausted for year")
	ErrInvalidNumber              = errors.New("invalid contract number")
	ErrEquipmentUnavailable       = errors.New("equipment unavailable for the requested period")
	ErrInvalidStatus              = errors.New("invalid contract status")
	ErrNoItems                    = errors.New("contract must have at least one item")
	ErrMissingEquipment           = errors.New("item equipment is required")
	ErrInvalidQuantity            = errors.New("item quantity must be at least 1")
	ErrNegativeDailyRate          = errors.New("item daily rate cannot be negative")
	ErrDailyRatePrecision         = errors.New("item daily rate must have at most 2 decimal places")
	ErrDailyRateTooLarge          = errors.New("item daily rate is too large")
	ErrQuantityTooLarge           = errors.New("item quantity is too large")
	ErrAmountTooLarge             = errors.New("contract value exceeds the supported amount")
	ErrCancellationReasonRequired = errors.New("cancellation reason is required")
	ErrMissingApprover            = errors.New("approver is required")
)

type UnavailableError struct {
	EquipmentID           uuid.UUID
	ConflictingContractID uuid.UUID
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("equipment %s is already reserved by contract %s for an overlapping period", e.EquipmentID, e.ConflictingContractID)
}

func (e *UnavailableError) Is(target error) bool {
	return target == ErrEquipmentUnavailable
}

type IllegalTransitionError struct {
	From Status
	To   Status
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("transition from %q to %q is not allowed", e.From, e.To)
}

func (e *IllegalTransitionError) Is(target error) bool {
	return target == ErrIllegalTransition
}
