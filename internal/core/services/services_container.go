package services

import (
	portsrepo "github.com/SscSPs/license_portal/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/license_portal/internal/core/ports/services"
	"github.com/SscSPs/license_portal/internal/platform/metrics"
	"github.com/go-playground/validator/v10"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// The activation caller is built by the caller because it needs the serial number repository
// and process configuration.
func NewServiceContainer(repos portsrepo.RepositoryProvider, activation portssvc.ActivationCaller, m *metrics.Metrics) *portssvc.ServiceContainer {
	validate := validator.New(validator.WithRequiredStructEnabled())

	container := &portssvc.ServiceContainer{}
	container.OrganizationAccount = NewOrganizationAccountService(repos.OrganizationAccountRepo, repos.OrganizationPackageRepo)

	container.LicenseActions = NewLicenseActionsService(LicenseActionsDependencies{
		TxManager:           repos.TxManager,
		OrganizationSvc:     container.OrganizationAccount,
		OrgPackageSvc:       NewOrganizationPackageDetailsService(repos.OrganizationPackageRepo),
		PackageDetailRepo:   repos.PackageDetailRepo,
		SerialNumberSvc:     NewSerialNumberDetailService(repos.SerialNumberDetailRepo),
		SerialNumberRepo:    repos.SerialNumberDetailRepo,
		InvoiceSvc:          NewInvoiceService(repos.InvoiceRepo, validate),
		SubscriptionItemSvc: NewSubscriptionItemService(repos.SubscriptionItemRepo, validate),
		Activation:          activation,
		Metrics:             m,
	})

	return container
}
