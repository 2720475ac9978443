package domain

// ActivationStatus is the outcome variant of an activation call.
type ActivationStatus string

const (
	ActivationIssued   ActivationStatus = "ISSUED"
	ActivationRejected ActivationStatus = "REJECTED"
)

// ActivationResult is what the activation authority answered. SerialNumber is
// only set when Status is ActivationIssued.
type ActivationResult struct {
	Status       ActivationStatus
	SerialNumber string
	Reason       string
}

// Issued reports whether the authority minted a license code.
func (r ActivationResult) Issued() bool {
	return r.Status == ActivationIssued && r.SerialNumber != ""
}
