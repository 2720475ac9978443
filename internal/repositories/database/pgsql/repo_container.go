package pgsql

import (
	portsrepo "github.com/SscSPs/license_portal/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TxManager:               newPgxTransactionManager(dbPool),
		OrganizationAccountRepo: newPgxOrganizationAccountRepository(dbPool),
		OrganizationPackageRepo: newPgxOrganizationPackageRepository(dbPool),
		PackageDetailRepo:       newPgxPackageDetailRepository(dbPool),
		SerialNumberDetailRepo:  newPgxSerialNumberRepository(dbPool),
		InvoiceRepo:             newPgxInvoiceRepository(dbPool),
		SubscriptionItemRepo:    newPgxSubscriptionItemRepository(dbPool),
	}
}
