package api

import (
	"net/http"

	"rental-contracts/internal/domain/contract"
	"rental-contracts/internal/handler/httperr"
	"rental-contracts/internal/pkg/errs"
	"rental-contracts/internal/usecase/commands"
	"rental-contracts/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type errorClass struct {
	status  int
	code    string
	message string
	detail  any
}

// classifyContractError maps usecase and domain errors to the HTTP contract.
// Order matters: specific kinds are checked before the generic marks that may
// also be attached to them.
func classifyContractError(err error) errorClass {
	var unavailable *contract.UnavailableError
	var illegal *contract.IllegalTransitionError

	switch {
	case errs.Is(err, commands.ErrContractNotFound), errs.Is(err, queries.ErrContractNotFound):
		return errorClass{http.StatusNotFound, httperr.CodeNotFound, "Contract not found", nil}
	case errs.Is(err, commands.ErrCustomerNotFound):
		return errorClass{http.StatusNotFound, httperr.CodeNotFound, "Customer not found", nil}
	case errs.Is(err, commands.ErrEquipmentNotFound), errs.Is(err, queries.ErrEquipmentNotFound):
		return errorClass{http.StatusNotFound, httperr.CodeNotFound, "Equipment not found", nil}
	case errs.As(err, &unavailable):
		return errorClass{http.StatusBadRequest, httperr.CodeEquipmentUnavailable,
			"Equipment is not available for the requested period",
			gin.H{"equipmentId": unavailable.EquipmentID, "conflictingContractId": unavailable.ConflictingContractID}}
	case errs.As(err, &illegal):
		return errorClass{http.StatusBadRequest, httperr.CodeIllegalTransition,
			"Status transition is not allowed",
			gin.H{"from": illegal.From, "to": illegal.To, "allowed": illegal.From.AllowedTargets()}}
	case errs.Is(err, contract.ErrInvalidDateRange):
		return errorClass{http.StatusBadRequest, httperr.CodeInvalidDateRange, "End date must be after start date", nil}
	case errs.Is(err, contract.ErrNotEditable):
		return errorClass{http.StatusBadRequest, httperr.CodeNotEditable, "Contract cannot be edited in its current status", nil}
	case errs.Is(err, contract.ErrNotDeletable):
		return errorClass{http.StatusBadRequest, httperr.CodeNotDeletable, "Only draft contracts can be deleted", nil}
	case errs.Is(err, contract.ErrIdentifierExhausted):
		return errorClass{http.StatusBadRequest, httperr.CodeIdentifierExhausted, "Contract numbers for this year are exhausted", nil}
	case errs.Is(err, commands.ErrIdempotencyConflict):
		return errorClass{http.StatusConflict, httperr.CodeIdempotencyConflict, "Idempotency key was used with a different request", nil}
	case errs.Is(err, commands.ErrIdempotencyInProgress):
		return errorClass{http.StatusConflict, httperr.CodeIdempotencyConflict, "A request with this idempotency key is still being processed", nil}
	case errs.Is(err, commands.ErrDomainValidation),
		errs.Is(err, contract.ErrInvalidDate),
		errs.Is(err, contract.ErrInvalidStatus),
		errs.Is(err, contract.ErrNoItems),
		errs.Is(err, contract.ErrInvalidQuantity),
		errs.Is(err, contract.ErrNegativeDailyRate),
		errs.Is(err, contract.ErrDailyRatePrecision),
		errs.Is(err, contract.ErrDailyRateTooLarge),
		errs.Is(err, contract.ErrQuantityTooLarge),
		errs.Is(err, contract.ErrAmountTooLarge),
		errs.Is(err, contract.ErrMissingEquipment),
		errs.Is(err, contract.ErrCancellationReasonRequired),
		errs.Is(err, queries.ErrInvalidPage),
		errs.Is(err, queries.ErrInvalidPageSize):
		return errorClass{http.StatusBadRequest, httperr.CodeValidation, validationMessage(err), nil}
	default:
		return errorClass{http.StatusInternalServerError, httperr.CodeInternal, "Internal server error", nil}
	}
}

// validationMessage surfaces the domain sentinel text, which is written for clients.
func validationMessage(err error) string {
	for _, sentinel := range []error{
		contract.ErrCancellationReasonRequired,
		contract.ErrNoItems,
		contract.ErrInvalidQuantity,
		contract.ErrNegativeDailyRate,
		contract.ErrDailyRatePrecision,
		contract.ErrDailyRateTooLarge,
		contract.ErrQuantityTooLarge,
		contract.ErrAmountTooLarge,
		contract.ErrMissingEquipment,
		contract.ErrInvalidStatus,
		contract.ErrInvalidDate,
		queries.ErrInvalidPage,
		queries.ErrInvalidPageSize,
	} {
		if errs.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return "Validation failed"
}

func abortWithContractError(c *gin.Context, err error) {
	class := classifyContractError(err)
	httperr.AbortWithError(c, class.status, err, class.code, class.message, class.detail)
}

func abortWithBindingError(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeValidation, "Invalid request", gin.H{"reason": err.Error()})
}
