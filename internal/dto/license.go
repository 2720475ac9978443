package dto

import "github.com/SscSPs/license_portal/internal/core/domain"

// GenerateLicenseRequest defines the data needed to issue licenses.
type GenerateLicenseRequest struct {
	OrganizationAccountID int `json:"organizationAccountId" binding:"required,gt=0"`
	PackageDetailsID      int `json:"packageDetailsId" binding:"required,gt=0"`
	QuantityOfLicenses    int `json:"quantityOfLicenses" binding:"gte=0"` // Optional, defaults to 1
}

// ToInput converts the request to the orchestrator input.
func (r GenerateLicenseRequest) ToInput() domain.GenerateLicenseInput {
	return domain.GenerateLicenseInput{
		OrganizationAccountID: r.OrganizationAccountID,
		PackageDetailsID:      r.PackageDetailsID,
		QuantityOfLicenses:    r.QuantityOfLicenses,
	}
}

// MoveLicenseRequest defines the data needed to move a license between organizations.
type MoveLicenseRequest struct {
	SourceOrganizationAccountID int `json:"sourceOrganizationAccountId" binding:"required,gt=0"`
	TargetOrganizationAccountID int `json:"targetOrganizationAccountId" binding:"required,gt=0,nefield=SourceOrganizationAccountID"`
	SerialNumberDetailID        int `json:"serialNumberDetailId" binding:"required,gt=0"`
}

// ToInput converts the request to the orchestrator input.
func (r MoveLicenseRequest) ToInput() domain.MoveLicenseInput {
	return domain.MoveLicenseInput{
		SourceOrganizationAccountID: r.SourceOrganizationAccountID,
		TargetOrganizationAccountID: r.TargetOrganizationAccountID,
		SerialNumberDetailID:        r.SerialNumberDetailID,
	}
}

// SerialNumberDetailResponse identifies an issued license.
type SerialNumberDetailResponse struct {
	ID           int    `json:"id"`
	SerialNumber string `json:"serialNumber"`
}

// ToSerialNumberDetailResponse converts a domain.GeneratedLicense to its response DTO
func ToSerialNumberDetailResponse(l *domain.GeneratedLicense) SerialNumberDetailResponse {
	return SerialNumberDetailResponse{ID: l.ID, SerialNumber: l.SerialNumber}
}
