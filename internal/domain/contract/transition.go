package contract

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Transition is one move through the lifecycle. Each variant carries the
// payload its target state requires and stamps its own side effects.
type Transition interface {
	Target() Status
	validate() error
	apply(c *Contract, at time.Time)
}

type SubmitForApproval struct{}

func (SubmitForApproval) Target() Status                 { return StatusPendingApproval }
func (SubmitForApproval) validate() error                { return nil }
func (SubmitForApproval) apply(_ *Contract, _ time.Time) {}

type ReturnToDraft struct{}

func (ReturnToDraft) Target() Status                 { return StatusDraft }
func (ReturnToDraft) validate() error                { return nil }
func (ReturnToDraft) apply(_ *Contract, _ time.Time) {}

type Approve struct {
	ApproverID uuid.UUID
}

func (Approve) Target() Status { return StatusApproved }

func (a Approve) validate() error {
	if a.ApproverID == uuid.Nil {
		return ErrMissingApprover
	}
	return nil
}

func (a Approve) apply(c *Contract, at time.Time) {
	approver := a.ApproverID
	c.approvedBy = &approver
	c.approvedAt = &at
}

type Activate struct{}

func (Activate) Target() Status  { return StatusActive }
func (Activate) validate() error { return nil }
func (Activate) apply(c *Contract, at time.Time) {
	c.activatedAt = &at
}

type Finish struct{}

func (Finish) Target() Status  { return StatusFinished }
func (Finish) validate() error { return nil }
func (Finish) apply(c *Contract, at time.Time) {
	c.finishedAt = &at
}

type Cancel struct {
	Reason string
}

func (Cancel) Target() Status { return StatusCancelled }

func (c Cancel) validate() error {
	if strings.TrimSpace(c.Reason) == "" {
		return ErrCancellationReasonRequired
	}
	return nil
}

func (c Cancel) apply(ct *Contract, at time.Time) {
	reason := strings.TrimSpace(c.Reason)
	ct.cancellationReason = &reason
	ct.cancelledAt = &at
}

// NewTransition builds the variant for target. actorID becomes the approver
// when target is approved; reason is only read for cancellations. The payload
// is checked by Contract.Apply, after the status table.
func NewTransition(target Status, actorID uuid.UUID, reason string) (Transition, error) {
	switch target {
	case StatusPendingApproval:
		return SubmitForApproval{}, nil
	case StatusDraft:
		return ReturnToDraft{}, nil
	case StatusApproved:
		return Approve{ApproverID: actorID}, nil
	case StatusActive:
		return Activate{}, nil
	case StatusFinished:
		return Finish{}, nil
	case StatusCancelled:
		return Cancel{Reason: reason}, nil
	default:
		return nil, ErrInvalidStatus
	}
}
