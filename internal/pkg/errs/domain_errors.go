package errs

import "errors"

// Sentinel errors shared by the command and query layers
var (
	// Contract errors
	ErrContractNotFound = errors.New("contract not found")

	// Reference data errors
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrEquipmentNotFound = errors.New("equipment not found")
	ErrUserNotFound      = errors.New("user not found")

	// Idempotency errors
	ErrIdempotencyConflict   = errors.New("idempotency key reused with a different request")
	ErrIdempotencyInProgress = errors.New("idempotency in progress")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
