package services_test

import (
	"context"

	"github.com/SscSPs/license_portal/internal/core/domain"
	portsrepo "github.com/SscSPs/license_portal/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/license_portal/internal/core/ports/services"
	"github.com/stretchr/testify/mock"
)

type txCtxKey struct{}

// --- Mock TransactionManager ---
type MockTxManager struct {
	mock.Mock
}

var _ portsrepo.TransactionManager = (*MockTxManager)(nil)

func (m *MockTxManager) Begin(ctx context.Context) (context.Context, error) {
	args := m.Called(ctx)
	if err := args.Error(0); err != nil {
		return ctx, err
	}
	return context.WithValue(ctx, txCtxKey{}, "tx"), nil
}

func (m *MockTxManager) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTxManager) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// inTx matches contexts produced by MockTxManager.Begin.
var inTx = mock.MatchedBy(func(ctx context.Context) bool {
	return ctx.Value(txCtxKey{}) == "tx"
})

// --- Mock OrganizationAccountSvcFacade ---
type MockOrganizationService struct {
	mock.Mock
}

var _ portssvc.OrganizationAccountSvcFacade = (*MockOrganizationService)(nil)

func (m *MockOrganizationService) GetByID(ctx context.Context, id int) (*domain.OrganizationAccount, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrganizationAccount), args.Error(1)
}

func (m *MockOrganizationService) GetOrgByUserID(ctx context.Context, userID string) (*int, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*int), args.Error(1)
}

func (m *MockOrganizationService) IsChildOrganizationOfReseller(ctx context.Context, organizationID int, resellerID int) (bool, error) {
	args := m.Called(ctx, organizationID, resellerID)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrganizationService) UpdateOrgPackageDetailCount(ctx context.Context, organizationID int, organizationPackageDetailID int, newCount int) error {
	args := m.Called(ctx, organizationID, organizationPackageDetailID, newCount)
	return args.Error(0)
}

// --- Mock OrganizationPackageDetailsSvc ---
type MockOrgPackageDetailsService struct {
	mock.Mock
}

var _ portssvc.OrganizationPackageDetailsSvc = (*MockOrgPackageDetailsService)(nil)

func (m *MockOrgPackageDetailsService) GetByOrganizationIDAndPackageDetailsID(ctx context.Context, organizationID int, packageDetailsID int) (*domain.OrganizationPackageDetail, error) {
	args := m.Called(ctx, organizationID, packageDetailsID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrganizationPackageDetail), args.Error(1)
}

// --- Mock PackageDetailReader ---
type MockPackageDetailRepository struct {
	mock.Mock
}

var _ portsrepo.PackageDetailReader = (*MockPackageDetailRepository)(nil)

func (m *MockPackageDetailRepository) GetByID(ctx context.Context, id int) (*domain.PackageDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PackageDetail), args.Error(1)
}

// --- Mock SerialNumberDetailSvc ---
type MockSerialNumberService struct {
	mock.Mock
}

var _ portssvc.SerialNumberDetailSvc = (*MockSerialNumberService)(nil)

func (m *MockSerialNumberService) GetByID(ctx context.Context, id int) (*domain.SerialNumberDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SerialNumberDetail), args.Error(1)
}

func (m *MockSerialNumberService) GetIDBySerialNumber(ctx context.Context, serialNumber string) (int, error) {
	args := m.Called(ctx, serialNumber)
	return args.Int(0), args.Error(1)
}

// --- Mock SerialNumberDetailRepositoryFacade ---
type MockSerialNumberRepository struct {
	mock.Mock
}

var _ portsrepo.SerialNumberDetailRepositoryFacade = (*MockSerialNumberRepository)(nil)

func (m *MockSerialNumberRepository) FindSerialNumberDetailByID(ctx context.Context, id int) (*domain.SerialNumberDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SerialNumberDetail), args.Error(1)
}

func (m *MockSerialNumberRepository) FindIDBySerialNumber(ctx context.Context, serialNumber string) (int, error) {
	args := m.Called(ctx, serialNumber)
	return args.Int(0), args.Error(1)
}

func (m *MockSerialNumberRepository) OrganizationHasSerialNumberDetail(ctx context.Context, organizationID int, serialNumberDetailID int) (bool, error) {
	args := m.Called(ctx, organizationID, serialNumberDetailID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSerialNumberRepository) SaveSerialNumberDetail(ctx context.Context, detail domain.SerialNumberDetail) (int, error) {
	args := m.Called(ctx, detail)
	return args.Int(0), args.Error(1)
}

// --- Mock InvoiceSvc ---
type MockInvoiceService struct {
	mock.Mock
}

var _ portssvc.InvoiceSvc = (*MockInvoiceService)(nil)

func (m *MockInvoiceService) Add(ctx context.Context, invoice domain.Invoice) (*domain.Invoice, error) {
	args := m.Called(ctx, invoice)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

// --- Mock SubscriptionItemSvc ---
type MockSubscriptionItemService struct {
	mock.Mock
}

var _ portssvc.SubscriptionItemSvc = (*MockSubscriptionItemService)(nil)

func (m *MockSubscriptionItemService) Add(ctx context.Context, item domain.SubscriptionItem) (*domain.SubscriptionItem, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SubscriptionItem), args.Error(1)
}

// --- Mock ActivationCaller ---
type MockActivationCaller struct {
	mock.Mock
}

var _ portssvc.ActivationCaller = (*MockActivationCaller)(nil)

func (m *MockActivationCaller) GetLicense(ctx context.Context, organizationAccountID string, productNumber string) (domain.ActivationResult, error) {
	args := m.Called(ctx, organizationAccountID, productNumber)
	return args.Get(0).(domain.ActivationResult), args.Error(1)
}

// --- Mock repositories used by the accessor services ---
type MockOrganizationAccountRepository struct {
	mock.Mock
}

var _ portsrepo.OrganizationAccountReader = (*MockOrganizationAccountRepository)(nil)

func (m *MockOrganizationAccountRepository) FindOrganizationAccountByID(ctx context.Context, id int) (*domain.OrganizationAccount, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrganizationAccount), args.Error(1)
}

func (m *MockOrganizationAccountRepository) IsChildOrganizationOfReseller(ctx context.Context, organizationID int, resellerID int) (bool, error) {
	args := m.Called(ctx, organizationID, resellerID)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrganizationAccountRepository) FindOrganizationIDByUserID(ctx context.Context, userID string) (*int, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*int), args.Error(1)
}

type MockOrgPackageDetailRepository struct {
	mock.Mock
}

var _ portsrepo.OrganizationPackageDetailRepositoryFacade = (*MockOrgPackageDetailRepository)(nil)

func (m *MockOrgPackageDetailRepository) FindByOrganizationIDAndPackageDetailsID(ctx context.Context, organizationID int, packageDetailsID int) (*domain.OrganizationPackageDetail, error) {
	args := m.Called(ctx, organizationID, packageDetailsID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrganizationPackageDetail), args.Error(1)
}

func (m *MockOrgPackageDetailRepository) UpdateSerialNumbersCount(ctx context.Context, organizationID int, organizationPackageDetailID int, newCount int) error {
	args := m.Called(ctx, organizationID, organizationPackageDetailID, newCount)
	return args.Error(0)
}

type MockInvoiceRepository struct {
	mock.Mock
}

var _ portsrepo.InvoiceWriter = (*MockInvoiceRepository)(nil)

func (m *MockInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) (*domain.Invoice, error) {
	args := m.Called(ctx, invoice)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

type MockSubscriptionItemRepository struct {
	mock.Mock
}

var _ portsrepo.SubscriptionItemWriter = (*MockSubscriptionItemRepository)(nil)

func (m *MockSubscriptionItemRepository) SaveSubscriptionItem(ctx context.Context, item domain.SubscriptionItem) (*domain.SubscriptionItem, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SubscriptionItem), args.Error(1)
}
