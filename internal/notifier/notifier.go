package notifier

// Order holds the submission fields the notification emails are built
// from. All fields are optional except Email for the confirmation mail,
// the renderer substitutes placeholders for anything missing.
type Order struct {
	Email   string
	Origin  string
	Produit string
	Total   string
	EntryID string
}

// Notifier dispatches checkout notification emails. Implementations
// report delivery failure through the returned error; callers decide
// whether to surface or swallow it.
type Notifier interface {
	// PaymentConfirmed mails the submitter that their payment went through.
	PaymentConfirmed(order Order) error
	// PaymentProblem mails the operator, and the submitter when their
	// address is known, that a submission failed.
	PaymentProblem(order Order, cause error) error
}
