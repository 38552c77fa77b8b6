package invoices

import (
	"strconv"

	"invoice-dashboard-backend/internal/currency"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	fieldCustomerID = "customerId"
	fieldAmount     = "amount"
	fieldStatus     = "status"

	msgCustomerID = "Please select a customer."
	msgAmount     = "Please enter an amount greater than $0."
	msgStatus     = "Please select an invoice status."
)

var validate = validator.New()

// invoiceFields is the typed shape the raw form must conform to.
type invoiceFields struct {
	CustomerID string  `validate:"required,uuid"`
	Amount     float64 `validate:"gt=0"`
	Status     string  `validate:"oneof=pending paid"`
}

// parsedInvoice holds the store-ready values of a valid form.
type parsedInvoice struct {
	CustomerID  uuid.UUID
	AmountCents int64
	Status      string
}

// validateForm checks every field and collects all violations before
// returning; one bad field never hides errors on its siblings.
func validateForm(form Form) (parsedInvoice, map[string][]string) {
	fieldErrs := map[string][]string{}

	fields := invoiceFields{
		CustomerID: form.CustomerID,
		Status:     form.Status,
	}
	amount, parseErr := strconv.ParseFloat(form.Amount, 64)
	if parseErr == nil {
		fields.Amount = amount
	}

	if err := validate.Struct(fields); err != nil {
		for _, fe := range err.(validator.ValidationErrors) {
			switch fe.StructField() {
			case "CustomerID":
				fieldErrs[fieldCustomerID] = append(fieldErrs[fieldCustomerID], msgCustomerID)
			case "Amount":
				fieldErrs[fieldAmount] = append(fieldErrs[fieldAmount], msgAmount)
			case "Status":
				fieldErrs[fieldStatus] = append(fieldErrs[fieldStatus], msgStatus)
			}
		}
	}
	if parseErr != nil && len(fieldErrs[fieldAmount]) == 0 {
		fieldErrs[fieldAmount] = append(fieldErrs[fieldAmount], msgAmount)
	}
	if len(fieldErrs) > 0 {
		return parsedInvoice{}, fieldErrs
	}

	cents, err := currency.ToCents(form.Amount)
	if err != nil {
		fieldErrs[fieldAmount] = append(fieldErrs[fieldAmount], msgAmount)
		return parsedInvoice{}, fieldErrs
	}
	return parsedInvoice{
		CustomerID:  uuid.MustParse(form.CustomerID),
		AmountCents: cents,
		Status:      form.Status,
	}, nil
}
