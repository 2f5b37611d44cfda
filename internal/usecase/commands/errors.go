package commands

import (
	"rental-contracts/internal/pkg/errs"
)

var (
	ErrContractNotFound        = errs.ErrContractNotFound
	ErrCustomerNotFound        = errs.ErrCustomerNotFound
	ErrEquipmentNotFound       = errs.ErrEquipmentNotFound
	ErrIdempotencyConflict     = errs.ErrIdempotencyConflict
	ErrIdempotencyInProgress   = errs.ErrIdempotencyInProgress
	ErrDomainValidation        = errs.ErrDomainValidation
	ErrDatabaseOperationFailed = errs.ErrDatabaseOperationFailed
	ErrIdempotencyCheckFailed  = errs.New("idempotency check failed")
)
