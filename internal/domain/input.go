// internal/domain/input.go
package domain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"ledger-service/internal/util"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their JSON names so callers can map errors back to the payload.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// CreateTransactionRequest is the raw payload accepted for transaction creation.
type CreateTransactionRequest struct {
	Name   string           `json:"name" validate:"required"`
	Type   TransactionType  `json:"type" validate:"required,oneof=TRANSFER PAYMENT DIRECT_DEBIT INVESTMENT"`
	Amount *decimal.Decimal `json:"amount"`
	UserID string           `json:"user_id" validate:"required,uuid"`
}

// UpdateTransactionRequest is the raw payload of a partial update. Absent fields stay nil.
type UpdateTransactionRequest struct {
	Name   *string            `json:"name" validate:"omitnil,min=1"`
	Type   *TransactionType   `json:"type" validate:"omitnil,oneof=TRANSFER PAYMENT DIRECT_DEBIT INVESTMENT"`
	Status *TransactionStatus `json:"status" validate:"omitnil,oneof=PENDING PROCESSING COMPLETED FAILED"`
	Amount *decimal.Decimal   `json:"amount"`
	UserID *string            `json:"user_id" validate:"omitnil,uuid"`
}

// CreateTransactionInput is a validated creation payload.
type CreateTransactionInput struct {
	Name   string
	Type   TransactionType
	Amount decimal.Decimal
	UserID string
}

// TransactionPatch is a validated partial update. Only non-nil fields are merged.
type TransactionPatch struct {
	Name   *string
	Type   *TransactionType
	Status *TransactionStatus
	Amount *decimal.Decimal
	UserID *string
}

// IsEmpty reports whether the patch carries no field at all.
func (p TransactionPatch) IsEmpty() bool {
	return p.Name == nil && p.Type == nil && p.Status == nil && p.Amount == nil && p.UserID == nil
}

// NewCreateTransactionInput validates req and returns the input accepted by the service.
// It returns a *util.ValidationError listing every offending field.
func NewCreateTransactionInput(req CreateTransactionRequest) (CreateTransactionInput, error) {
	fields := structErrors(req)
	if req.Amount == nil {
		fields = append(fields, util.FieldError{Field: "amount", Message: "This field is required", Type: "required"})
	} else if fe, ok := amountError(*req.Amount); !ok {
		fields = append(fields, fe)
	}
	if len(fields) > 0 {
		return CreateTransactionInput{}, &util.ValidationError{Fields: fields}
	}

	return CreateTransactionInput{
		Name:   req.Name,
		Type:   req.Type,
		Amount: *req.Amount,
		UserID: req.UserID,
	}, nil
}

// NewTransactionPatch validates the fields present in req.
func NewTransactionPatch(req UpdateTransactionRequest) (TransactionPatch, error) {
	fields := structErrors(req)
	if req.Amount != nil {
		if fe, ok := amountError(*req.Amount); !ok {
			fields = append(fields, fe)
		}
	}
	if len(fields) > 0 {
		return TransactionPatch{}, &util.ValidationError{Fields: fields}
	}

	return TransactionPatch{
		Name:   req.Name,
		Type:   req.Type,
		Status: req.Status,
		Amount: req.Amount,
		UserID: req.UserID,
	}, nil
}

// AmountScale is the number of decimal places stored for an amount.
const AmountScale = 4

// amountError checks that amount is positive and fits the stored scale.
func amountError(amount decimal.Decimal) (util.FieldError, bool) {
	switch {
	case !amount.IsPositive():
		return util.FieldError{Field: "amount", Message: "Value must be greater than 0", Type: "gt"}, false
	case !amount.Equal(amount.Truncate(AmountScale)):
		return util.FieldError{Field: "amount", Message: fmt.Sprintf("Value must have at most %d decimal places", AmountScale), Type: "scale"}, false
	}
	return util.FieldError{}, true
}

func structErrors(obj any) []util.FieldError {
	err := validate.Struct(obj)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []util.FieldError{{Field: "", Message: err.Error(), Type: "invalid"}}
	}

	fields := make([]util.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, util.FieldError{
			Field:   fe.Field(),
			Message: errorMessage(fe),
			Type:    fe.Tag(),
		})
	}
	return fields
}

func errorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "oneof":
		return "Value must be one of: " + fe.Param()
	case "uuid":
		return "Invalid UUID format"
	case "min":
		return "Value is too short"
	default:
		return "Invalid value"
	}
}
