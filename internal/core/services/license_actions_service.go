package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/license_portal/internal/apperrors"
	"github.com/SscSPs/license_portal/internal/core/domain"
	portsrepo "github.com/SscSPs/license_portal/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/license_portal/internal/core/ports/services"
	"github.com/SscSPs/license_portal/internal/platform/metrics"
	"github.com/shopspring/decimal"
)

const (
	actionGenerate = "generate"
	actionMove     = "move"

	// activationFailedMessage names the upstream protocol on purpose; callers
	// surface it as a diagnostic.
	activationFailedMessage = "WCF service call resulted in ERROR"
)

// LicenseActionsDependencies lists the collaborators of the license actions service.
type LicenseActionsDependencies struct {
	TxManager           portsrepo.TransactionManager
	OrganizationSvc     portssvc.OrganizationAccountSvcFacade
	OrgPackageSvc       portssvc.OrganizationPackageDetailsSvc
	PackageDetailRepo   portsrepo.PackageDetailReader
	SerialNumberSvc     portssvc.SerialNumberDetailSvc
	SerialNumberRepo    portsrepo.SerialNumberDetailReader
	InvoiceSvc          portssvc.InvoiceSvc
	SubscriptionItemSvc portssvc.SubscriptionItemSvc
	Activation          portssvc.ActivationCaller
	Metrics             *metrics.Metrics
}

// licenseActionsService issues and transfers licenses. Every workflow runs
// inside one transaction: nothing it wrote survives a failure.
type licenseActionsService struct {
	BaseService
	deps LicenseActionsDependencies
}

// NewLicenseActionsService creates a new LicenseActionsSvc.
func NewLicenseActionsService(deps LicenseActionsDependencies) portssvc.LicenseActionsSvc {
	return &licenseActionsService{deps: deps}
}

var _ portssvc.LicenseActionsSvc = (*licenseActionsService)(nil)

// GenerateLicense validates the package, organization and reseller entitlement,
// asks the activation authority for a code, records the invoice and
// subscription item and decrements the entitlement.
func (s *licenseActionsService) GenerateLicense(ctx context.Context, input domain.GenerateLicenseInput, resellerOrgAccountID int) (*domain.GeneratedLicense, error) {
	start := time.Now()
	logger := s.GetLogger(ctx).With(
		slog.String("action", actionGenerate),
		slog.Int("organization_account_id", input.OrganizationAccountID),
		slog.Int("package_details_id", input.PackageDetailsID),
		slog.Int("reseller_org_account_id", resellerOrgAccountID),
	)

	var generated *domain.GeneratedLicense
	err := s.inTransaction(ctx, actionGenerate, func(txCtx context.Context) error {
		packageDetail, err := s.deps.PackageDetailRepo.GetByID(txCtx, input.PackageDetailsID)
		if err != nil {
			return err
		}
		if packageDetail == nil {
			return apperrors.NewNotFound(fmt.Sprintf("Package Detail with ID: %d not found", input.PackageDetailsID))
		}

		organization, err := s.deps.OrganizationSvc.GetByID(txCtx, input.OrganizationAccountID)
		if err != nil {
			return err
		}
		if organization == nil {
			return organizationNotFound(input.OrganizationAccountID)
		}

		entitlement, err := s.deps.OrgPackageSvc.GetByOrganizationIDAndPackageDetailsID(txCtx, resellerOrgAccountID, input.PackageDetailsID)
		if err != nil {
			return err
		}
		if entitlement == nil {
			return apperrors.NewNotFound(fmt.Sprintf("Organization Package Detail with ID: %d not found", input.PackageDetailsID))
		}

		quantity := input.Quantity()
		if !entitlement.HasRemaining(quantity) {
			return apperrors.NewNotFound(fmt.Sprintf("Organization Package Detail with ID: %d has no remaining licenses", input.PackageDetailsID))
		}

		activation, err := s.deps.Activation.GetLicense(txCtx, organization.AccountID, packageDetail.ProductNumber)
		if err != nil {
			return err
		}
		if !activation.Issued() {
			logger.Warn("Activation authority rejected license request", slog.String("reason", activation.Reason))
			return apperrors.NewActivationFailed(activationFailedMessage)
		}

		invoice, err := s.deps.InvoiceSvc.Add(txCtx, domain.Invoice{
			OrganizationAccountID: input.OrganizationAccountID,
			Kind:                  domain.InvoiceLicenseIssued,
			ProductNumber:         packageDetail.ProductNumber,
			ProductName:           packageDetail.ProductName,
			SerialNumber:          activation.SerialNumber,
			Quantity:              quantity,
			Amount:                packageDetail.UnitPrice.Mul(decimal.NewFromInt(int64(quantity))),
		})
		if err != nil {
			return err
		}

		serialNumberDetailID, err := s.deps.SerialNumberSvc.GetIDBySerialNumber(txCtx, activation.SerialNumber)
		if err != nil {
			return err
		}

		if _, err := s.deps.SubscriptionItemSvc.Add(txCtx, domain.SubscriptionItem{
			InvoiceID:             invoice.ID,
			OrganizationAccountID: input.OrganizationAccountID,
			SerialNumberDetailID:  serialNumberDetailID,
			ProductNumber:         packageDetail.ProductNumber,
			Quantity:              quantity,
		}); err != nil {
			return err
		}

		if err := s.deps.OrganizationSvc.UpdateOrgPackageDetailCount(txCtx, resellerOrgAccountID, entitlement.ID, entitlement.SerialNumbersCount-quantity); err != nil {
			return err
		}

		generated = &domain.GeneratedLicense{ID: serialNumberDetailID, SerialNumber: activation.SerialNumber}
		return nil
	})

	s.observe(actionGenerate, err, start)
	if err != nil {
		logger.Warn("License generation failed", slog.String("kind", string(apperrors.KindOf(err))), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("License generated", slog.Int("serial_number_detail_id", generated.ID))
	return generated, nil
}

// MoveLicense checks both organizations, the license and its current owner,
// then records a removal line for the source and an addition line for the target.
func (s *licenseActionsService) MoveLicense(ctx context.Context, input domain.MoveLicenseInput) error {
	start := time.Now()
	logger := s.GetLogger(ctx).With(
		slog.String("action", actionMove),
		slog.Int("source_organization_account_id", input.SourceOrganizationAccountID),
		slog.Int("target_organization_account_id", input.TargetOrganizationAccountID),
		slog.Int("serial_number_detail_id", input.SerialNumberDetailID),
	)

	err := s.inTransaction(ctx, actionMove, func(txCtx context.Context) error {
		source, err := s.deps.OrganizationSvc.GetByID(txCtx, input.SourceOrganizationAccountID)
		if err != nil {
			return err
		}
		if source == nil {
			return organizationNotFound(input.SourceOrganizationAccountID)
		}

		target, err := s.deps.OrganizationSvc.GetByID(txCtx, input.TargetOrganizationAccountID)
		if err != nil {
			return err
		}
		if target == nil {
			return organizationNotFound(input.TargetOrganizationAccountID)
		}

		serialNumber, err := s.deps.SerialNumberSvc.GetByID(txCtx, input.SerialNumberDetailID)
		if err != nil {
			return err
		}
		if serialNumber == nil {
			return apperrors.NewNotFound(fmt.Sprintf("License with ID: %d not found", input.SerialNumberDetailID))
		}

		assigned, err := s.deps.SerialNumberRepo.OrganizationHasSerialNumberDetail(txCtx, input.SourceOrganizationAccountID, input.SerialNumberDetailID)
		if err != nil {
			return err
		}
		if !assigned {
			return apperrors.NewNotFound(fmt.Sprintf("License with ID: %d cannot be moved because it is not assigned to the source organization", input.SerialNumberDetailID))
		}

		if err := s.recordLicenseLine(txCtx, input.SourceOrganizationAccountID, domain.InvoiceLicenseMovedOut, input.SerialNumberDetailID, serialNumber, -1); err != nil {
			return err
		}
		return s.recordLicenseLine(txCtx, input.TargetOrganizationAccountID, domain.InvoiceLicenseMovedIn, input.SerialNumberDetailID, serialNumber, 1)
	})

	s.observe(actionMove, err, start)
	if err != nil {
		logger.Warn("License move failed", slog.String("kind", string(apperrors.KindOf(err))), slog.String("error", err.Error()))
		return err
	}

	logger.Info("License moved")
	return nil
}

// recordLicenseLine writes one invoice line and the subscription item mirroring it.
// A negative quantity removes the license from the organization.
func (s *licenseActionsService) recordLicenseLine(ctx context.Context, organizationID int, kind domain.InvoiceKind, serialNumberDetailID int, serialNumber *domain.SerialNumberDetail, quantity int) error {
	invoice, err := s.deps.InvoiceSvc.Add(ctx, domain.Invoice{
		OrganizationAccountID: organizationID,
		Kind:                  kind,
		ProductNumber:         serialNumber.ProductNumber,
		SerialNumber:          serialNumber.SerialNumber,
		Quantity:              quantity,
		Amount:                serialNumber.UnitPrice.Mul(decimal.NewFromInt(int64(quantity))),
	})
	if err != nil {
		return err
	}

	_, err = s.deps.SubscriptionItemSvc.Add(ctx, domain.SubscriptionItem{
		InvoiceID:             invoice.ID,
		OrganizationAccountID: organizationID,
		SerialNumberDetailID:  serialNumberDetailID,
		ProductNumber:         serialNumber.ProductNumber,
		Quantity:              quantity,
	})
	return err
}

// inTransaction runs fn inside the transaction boundary. The transaction is
// committed only when fn succeeds; every other exit, a panic included, rolls
// it back exactly once. Errors from fn are returned as they are.
func (s *licenseActionsService) inTransaction(ctx context.Context, action string, fn func(txCtx context.Context) error) error {
	txCtx, err := s.deps.TxManager.Begin(ctx)
	if err != nil {
		return err
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := s.deps.TxManager.Rollback(txCtx); rbErr != nil {
			s.LogError(ctx, rbErr, "Failed to roll back license action", slog.String("action", action))
		}
	}()

	if err := fn(txCtx); err != nil {
		return err
	}
	if err := s.deps.TxManager.Commit(txCtx); err != nil {
		return err
	}
	committed = true
	return nil
}

func (s *licenseActionsService) observe(action string, err error, start time.Time) {
	outcome := "success"
	if err != nil {
		outcome = strings.ToLower(string(apperrors.KindOf(err)))
	}
	s.deps.Metrics.ObserveLicenseAction(action, outcome, time.Since(start))
}

func organizationNotFound(id int) error {
	return apperrors.NewNotFound(fmt.Sprintf("Organization Account with ID: %d not found", id))
}
