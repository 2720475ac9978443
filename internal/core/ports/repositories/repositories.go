package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	TxManager               TransactionManager
	OrganizationAccountRepo OrganizationAccountReader
	OrganizationPackageRepo OrganizationPackageDetailRepositoryFacade
	PackageDetailRepo       PackageDetailReader
	SerialNumberDetailRepo  SerialNumberDetailRepositoryFacade
	InvoiceRepo             InvoiceWriter
	SubscriptionItemRepo    SubscriptionItemWriter
}
