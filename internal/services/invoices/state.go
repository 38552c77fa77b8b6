package invoices

// Form carries the raw fields of an invoice form submission.
type Form struct {
	CustomerID string `form:"customerId" json:"customerId"`
	Amount     string `form:"amount" json:"amount"`
	Status     string `form:"status" json:"status"`
}

// State is the structured result of a mutation: per-field validation
// messages plus a summary message. A zero State means success.
type State struct {
	Errors  map[string][]string `json:"errors,omitempty"`
	Message string              `json:"message,omitempty"`
}

func (s State) OK() bool {
	return len(s.Errors) == 0 && s.Message == ""
}

const (
	MsgCreateMissingFields = "Missing Fields. Failed to Create Invoice."
	MsgUpdateMissingFields = "Missing Fields. Failed to Update Invoice."
	MsgCreateFailed        = "Database Error: Failed to Create Invoice."
	MsgUpdateFailed        = "Database Error: Failed to Update Invoice."
	MsgDeleteFailed        = "Database Error: Failed to Delete Invoice."
	MsgDeleted             = "Deleted Invoice."
)
