package dto

// Error codes returned by the license endpoints.
const (
	ErrCodeInvalidRequest            = "INVALID_REQUEST"
	ErrCodeInvalidSourceOrganization = "INVALID_SOURCE_ORGANIZATION"
	ErrCodeNotFound                  = "NOT_FOUND"
	ErrCodeLicenseGenerationFailed   = "LICENSE_GENERATION_FAILED"
	ErrCodeLicenseMoveFailed         = "LICENSE_MOVE_FAILED"
)

// ErrorResponse is the error body of the license endpoints.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}
