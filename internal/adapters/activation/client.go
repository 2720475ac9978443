package activation

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/license_portal/internal/core/domain"
	portssvc "github.com/SscSPs/license_portal/internal/core/ports/services"
	"github.com/SscSPs/license_portal/internal/middleware"
	"github.com/SscSPs/license_portal/internal/platform/metrics"
)

const (
	// RejectionCode is the literal the activation service answers instead of a license code.
	RejectionCode = "ERROR"

	soapEnvelopeNS    = "http://schemas.xmlsoap.org/soap/envelope/"
	serviceNS         = "http://tempuri.org/"
	getLicenseAction  = serviceNS + "ILicenseService/GetLicense"
	maxResponseLength = 1 << 20
)

type requestEnvelope struct {
	XMLName xml.Name    `xml:"soap:Envelope"`
	SoapNS  string      `xml:"xmlns:soap,attr"`
	Body    requestBody `xml:"soap:Body"`
}

type requestBody struct {
	GetLicense getLicenseRequest `xml:"GetLicense"`
}

type getLicenseRequest struct {
	XMLNS                 string `xml:"xmlns,attr"`
	OrganizationAccountID string `xml:"organizationAccountId"`
	ProductNumber         string `xml:"productNumber"`
}

type responseEnvelope struct {
	Body struct {
		Fault    *soapFault `xml:"Fault"`
		Response *struct {
			Result string `xml:"GetLicenseResult"`
		} `xml:"GetLicenseResponse"`
	} `xml:"Body"`
}

type soapFault struct {
	Code   string `xml:"faultcode"`
	String string `xml:"faultstring"`
}

// Client calls the activation service over SOAP 1.1.
type Client struct {
	endpoint   string
	httpClient *http.Client
	metrics    *metrics.Metrics
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client. Its timeout wins over the one given to NewClient.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithMetrics records call latency and outcome.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// NewClient creates a client for the activation service at endpoint.
func NewClient(endpoint string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ portssvc.ActivationCaller = (*Client)(nil)

// GetLicense asks the activation service to mint a license code. A business
// rejection is returned as an ActivationRejected result, not as an error.
func (c *Client) GetLicense(ctx context.Context, organizationAccountID string, productNumber string) (domain.ActivationResult, error) {
	start := time.Now()
	result, err := c.call(ctx, organizationAccountID, productNumber)

	outcome := strings.ToLower(string(result.Status))
	if err != nil {
		outcome = "error"
	}
	c.metrics.ObserveActivation(outcome, time.Since(start))

	logger := middleware.GetLoggerFromCtx(ctx).With(
		slog.String("organization_account_id", organizationAccountID),
		slog.String("product_number", productNumber),
		slog.Duration("latency", time.Since(start)),
	)
	if err != nil {
		logger.Error("Activation service call failed", slog.String("error", err.Error()))
		return domain.ActivationResult{}, err
	}
	logger.Debug("Activation service answered", slog.String("status", string(result.Status)))
	return result, nil
}

func (c *Client) call(ctx context.Context, organizationAccountID string, productNumber string) (domain.ActivationResult, error) {
	if c.endpoint == "" {
		return domain.ActivationResult{}, fmt.Errorf("activation service endpoint is not configured")
	}

	payload, err := xml.Marshal(requestEnvelope{
		SoapNS: soapEnvelopeNS,
		Body: requestBody{GetLicense: getLicenseRequest{
			XMLNS:                 serviceNS,
			OrganizationAccountID: organizationAccountID,
			ProductNumber:         productNumber,
		}},
	})
	if err != nil {
		return domain.ActivationResult{}, fmt.Errorf("failed to encode activation request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(append([]byte(xml.Header), payload...)))
	if err != nil {
		return domain.ActivationResult{}, fmt.Errorf("failed to build activation request: %w", err)
	}
	req.Header.Set("Content-Type", "text/xml; charset=utf-8")
	req.Header.Set("SOAPAction", `"`+getLicenseAction+`"`)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.ActivationResult{}, fmt.Errorf("activation service call failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseLength))
	if err != nil {
		return domain.ActivationResult{}, fmt.Errorf("failed to read activation response: %w", err)
	}

	var envelope responseEnvelope
	decodeErr := xml.Unmarshal(body, &envelope)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if decodeErr == nil && envelope.Body.Fault != nil {
			return domain.ActivationResult{}, fmt.Errorf("activation service fault (%d): %s", resp.StatusCode, envelope.Body.Fault.String)
		}
		return domain.ActivationResult{}, fmt.Errorf("activation service returned status %d", resp.StatusCode)
	}
	if decodeErr != nil {
		return domain.ActivationResult{}, fmt.Errorf("failed to decode activation response: %w", decodeErr)
	}
	if envelope.Body.Fault != nil {
		return domain.ActivationResult{}, fmt.Errorf("activation service fault: %s", envelope.Body.Fault.String)
	}
	if envelope.Body.Response == nil {
		return domain.ActivationResult{}, fmt.Errorf("activation response has no GetLicenseResult")
	}

	return toResult(envelope.Body.Response.Result), nil
}

// toResult maps the raw service answer onto the tagged result.
func toResult(code string) domain.ActivationResult {
	code = strings.TrimSpace(code)
	if code == "" || code == RejectionCode {
		return domain.ActivationResult{Status: domain.ActivationRejected, Reason: code}
	}
	return domain.ActivationResult{Status: domain.ActivationIssued, SerialNumber: code}
}
