package services

import (
	"context"

	"github.com/SscSPs/license_portal/internal/core/domain"
)

// ActivationCaller talks to the activation authority that mints license codes.
//
// A business rejection is reported as an ActivationRejected result with a nil
// error; the error return is reserved for transport and protocol faults.
type ActivationCaller interface {
	GetLicense(ctx context.Context, organizationAccountID string, productNumber string) (domain.ActivationResult, error)
}
