package request

import (
	"reflect"

	"rental-contracts/internal/domain/contract"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterValidators installs the contract-specific tags on gin's validator.
// Safe to call more than once.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	if err := v.RegisterValidation("contract_status", validateContractStatus); err != nil {
		return err
	}
	if err := v.RegisterValidation("decimal_scale2", validateDecimalScale2); err != nil {
		return err
	}
	if err := v.RegisterValidation("daily_rate", validateDailyRate); err != nil {
		return err
	}
	return v.RegisterValidation("decimal_gte0", validateDecimalGTE0)
}

// decimalValue lets tags see a decimal as its canonical string.
func decimalValue(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

func validateContractStatus(fl validator.FieldLevel) bool {
	return contract.Status(fl.Field().String()).IsValid()
}

func validateDecimalGTE0(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return !d.IsNegative()
}

// validateDecimalScale2 accepts values that are exact at cent precision.
func validateDecimalScale2(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return d.Equal(d.Round(contract.MoneyScale))
}

func validateDailyRate(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return d.LessThan(contract.MaxDailyRate)
}
