package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/license_portal/internal/apperrors"
	portssvc "github.com/SscSPs/license_portal/internal/core/ports/services"
	"github.com/SscSPs/license_portal/internal/dto"
	"github.com/SscSPs/license_portal/internal/middleware"
	"github.com/gin-gonic/gin"
)

const resellerNotFoundMessage = "Reseller organization account not found for logged user."

// errResellerNotFound marks a caller without a reseller organization.
var errResellerNotFound = errors.New(resellerNotFoundMessage)

// licenseActionsHandler handles HTTP requests that issue or move licenses.
type licenseActionsHandler struct {
	organizationService   portssvc.OrganizationAccountSvcFacade
	licenseActionsService portssvc.LicenseActionsSvc
}

func newLicenseActionsHandler(orgSvc portssvc.OrganizationAccountSvcFacade, licenseSvc portssvc.LicenseActionsSvc) *licenseActionsHandler {
	return &licenseActionsHandler{
		organizationService:   orgSvc,
		licenseActionsService: licenseSvc,
	}
}

// RegisterLicenseRoutes registers routes related to license actions.
func RegisterLicenseRoutes(rg *gin.RouterGroup, organizationService portssvc.OrganizationAccountSvcFacade, licenseActionsService portssvc.LicenseActionsSvc) {
	h := newLicenseActionsHandler(organizationService, licenseActionsService)

	licenses := rg.Group("/licenses")
	{
		licenses.POST("/generate", h.generateLicense)
		licenses.POST("/move", h.moveLicense)
	}
}

// generateLicense godoc
// @Summary Issue a license
// @Description Issues a license for an organization below the caller's reseller, drawing on the reseller's package entitlement
// @Tags licenses
// @Accept  json
// @Produce  json
// @Param   request body dto.GenerateLicenseRequest true "License request"
// @Success 200 {object} dto.SerialNumberDetailResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 401 {object} dto.ErrorResponse "Organization is not below the reseller"
// @Failure 404 {object} dto.ErrorResponse "Package, organization or entitlement not found"
// @Failure 500 {object} dto.ErrorResponse "License generation failed"
// @Security BearerAuth
// @Router /licenses/generate [post]
func (h *licenseActionsHandler) generateLicense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.GenerateLicenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for GenerateLicense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: dto.ErrCodeInvalidRequest, Message: "Invalid request format: " + err.Error()})
		return
	}

	resellerOrgID, err := h.resolveReseller(c)
	if err != nil {
		h.writeFailure(c, err, dto.ErrCodeLicenseGenerationFailed)
		return
	}

	logger = logger.With(slog.Int("reseller_org_account_id", resellerOrgID), slog.Int("organization_account_id", req.OrganizationAccountID))

	isChild, err := h.organizationService.IsChildOrganizationOfReseller(c.Request.Context(), req.OrganizationAccountID, resellerOrgID)
	if err != nil {
		h.writeFailure(c, err, dto.ErrCodeLicenseGenerationFailed)
		return
	}
	if !isChild {
		logger.Warn("Organization is not below the caller's reseller")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    dto.ErrCodeInvalidSourceOrganization,
			Message: "Organization is not managed by the reseller.",
		})
		return
	}

	license, err := h.licenseActionsService.GenerateLicense(c.Request.Context(), req.ToInput(), resellerOrgID)
	if err != nil {
		h.writeFailure(c, err, dto.ErrCodeLicenseGenerationFailed)
		return
	}

	logger.Info("License issued", slog.Int("serial_number_detail_id", license.ID))
	c.JSON(http.StatusOK, dto.ToSerialNumberDetailResponse(license))
}

// moveLicense godoc
// @Summary Move a license
// @Description Moves an issued license between two organizations below the caller's reseller
// @Tags licenses
// @Accept  json
// @Produce  json
// @Param   request body dto.MoveLicenseRequest true "Move request"
// @Success 200 "License moved"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 401 {object} dto.ErrorResponse "Source or target organization is not below the reseller"
// @Failure 404 {object} dto.ErrorResponse "Organization or license not found"
// @Failure 500 {object} dto.ErrorResponse "License move failed"
// @Security BearerAuth
// @Router /licenses/move [post]
func (h *licenseActionsHandler) moveLicense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.MoveLicenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for MoveLicense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: dto.ErrCodeInvalidRequest, Message: "Invalid request format: " + err.Error()})
		return
	}

	resellerOrgID, err := h.resolveReseller(c)
	if err != nil {
		h.writeFailure(c, err, dto.ErrCodeLicenseMoveFailed)
		return
	}

	logger = logger.With(slog.Int("reseller_org_account_id", resellerOrgID), slog.Int("serial_number_detail_id", req.SerialNumberDetailID))

	// Source and target answer with the same code.
	for _, orgID := range []int{req.SourceOrganizationAccountID, req.TargetOrganizationAccountID} {
		isChild, err := h.organizationService.IsChildOrganizationOfReseller(c.Request.Context(), orgID, resellerOrgID)
		if err != nil {
			h.writeFailure(c, err, dto.ErrCodeLicenseMoveFailed)
			return
		}
		if !isChild {
			logger.Warn("Organization is not below the caller's reseller", slog.Int("organization_account_id", orgID))
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    dto.ErrCodeInvalidSourceOrganization,
				Message: "Organization is not managed by the reseller.",
			})
			return
		}
	}

	if err := h.licenseActionsService.MoveLicense(c.Request.Context(), req.ToInput()); err != nil {
		h.writeFailure(c, err, dto.ErrCodeLicenseMoveFailed)
		return
	}

	logger.Info("License moved",
		slog.Int("source_organization_account_id", req.SourceOrganizationAccountID),
		slog.Int("target_organization_account_id", req.TargetOrganizationAccountID))
	c.Status(http.StatusOK)
}

// resolveReseller returns the reseller organization the authenticated user acts for.
func (h *licenseActionsHandler) resolveReseller(c *gin.Context) (int, error) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		return 0, errResellerNotFound
	}
	resellerOrgID, err := h.organizationService.GetOrgByUserID(c.Request.Context(), userID)
	if err != nil {
		return 0, err
	}
	if resellerOrgID == nil {
		return 0, errResellerNotFound
	}
	return *resellerOrgID, nil
}

// writeFailure maps a failure to its response. Anything not classified as
// NotFound is reported under failureCode with the raw message as detail.
func (h *licenseActionsHandler) writeFailure(c *gin.Context, err error, failureCode string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if errors.Is(err, errResellerNotFound) {
		logger.Warn("No reseller organization for user")
		c.JSON(http.StatusNotFound, resellerNotFoundMessage)
		return
	}

	if apperrors.KindOf(err) == apperrors.KindNotFound {
		logger.Warn("License action precondition failed", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Code: dto.ErrCodeNotFound, Message: err.Error()})
		return
	}

	logger.Error("License action failed", slog.String("error", err.Error()), slog.String("kind", string(apperrors.KindOf(err))))
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Code:    failureCode,
		Message: "An unexpected error occurred while processing the license request.",
		Details: map[string]string{"error": err.Error()},
	})
}
