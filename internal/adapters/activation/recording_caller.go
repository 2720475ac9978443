package activation

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/license_portal/internal/core/domain"
	portsrepo "github.com/SscSPs/license_portal/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/license_portal/internal/core/ports/services"
)

// RecordingCaller stores every license code the wrapped caller issues. The
// write uses the caller's context, so it joins any open transaction and is
// discarded with it.
type RecordingCaller struct {
	next portssvc.ActivationCaller
	repo portsrepo.SerialNumberDetailWriter
	now  func() time.Time
}

// NewRecordingCaller wraps next.
func NewRecordingCaller(next portssvc.ActivationCaller, repo portsrepo.SerialNumberDetailWriter) *RecordingCaller {
	return &RecordingCaller{next: next, repo: repo, now: time.Now}
}

var _ portssvc.ActivationCaller = (*RecordingCaller)(nil)

// GetLicense asks the wrapped caller for a license and records the code when one is issued.
func (r *RecordingCaller) GetLicense(ctx context.Context, organizationAccountID string, productNumber string) (domain.ActivationResult, error) {
	result, err := r.next.GetLicense(ctx, organizationAccountID, productNumber)
	if err != nil || !result.Issued() {
		return result, err
	}

	if _, err := r.repo.SaveSerialNumberDetail(ctx, domain.SerialNumberDetail{
		SerialNumber:  result.SerialNumber,
		ProductNumber: productNumber,
		CreatedAt:     r.now().UTC(),
	}); err != nil {
		return domain.ActivationResult{}, fmt.Errorf("failed to record serial number %s: %w", result.SerialNumber, err)
	}
	return result, nil
}
