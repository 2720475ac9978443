package mapping

import (
	"github.com/SscSPs/license_portal/internal/core/domain"
	"github.com/SscSPs/license_portal/internal/models"
)

// ToDomainOrganizationAccount converts a model OrganizationAccount to a domain OrganizationAccount
func ToDomainOrganizationAccount(m models.OrganizationAccount) domain.OrganizationAccount {
	return domain.OrganizationAccount{
		ID:                          m.OrganizationAccountID,
		AccountID:                   m.AccountID,
		Name:                        m.Name,
		ParentOrganizationAccountID: m.ParentOrganizationAccountID,
		AuditFields:                 ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainOrganizationPackageDetail converts a model OrganizationPackageDetail to a domain OrganizationPackageDetail
func ToDomainOrganizationPackageDetail(m models.OrganizationPackageDetail) domain.OrganizationPackageDetail {
	return domain.OrganizationPackageDetail{
		ID:                    m.OrganizationPackageDetailID,
		OrganizationAccountID: m.OrganizationAccountID,
		PackageDetailID:       m.PackageDetailID,
		SerialNumbersCount:    m.SerialNumbersCount,
		AuditFields:           ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPackageDetail converts a model PackageDetail to a domain PackageDetail
func ToDomainPackageDetail(m models.PackageDetail) domain.PackageDetail {
	return domain.PackageDetail{
		ID:            m.PackageDetailID,
		ProductNumber: m.ProductNumber,
		ProductName:   m.ProductName,
		UnitPrice:     m.UnitPrice,
	}
}

// ToDomainSerialNumberDetail converts a model SerialNumberDetail to a domain SerialNumberDetail
func ToDomainSerialNumberDetail(m models.SerialNumberDetail) domain.SerialNumberDetail {
	return domain.SerialNumberDetail{
		ID:            m.SerialNumberDetailID,
		SerialNumber:  m.SerialNumber,
		ProductNumber: m.ProductNumber,
		UnitPrice:     m.UnitPrice,
		CreatedAt:     m.CreatedAt,
	}
}
