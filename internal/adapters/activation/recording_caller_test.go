package activation_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/license_portal/internal/adapters/activation"
	"github.com/SscSPs/license_portal/internal/apperrors"
	"github.com/SscSPs/license_portal/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockActivationCaller struct {
	mock.Mock
}

func (m *MockActivationCaller) GetLicense(ctx context.Context, organizationAccountID string, productNumber string) (domain.ActivationResult, error) {
	args := m.Called(ctx, organizationAccountID, productNumber)
	return args.Get(0).(domain.ActivationResult), args.Error(1)
}

type MockSerialNumberWriter struct {
	mock.Mock
}

func (m *MockSerialNumberWriter) SaveSerialNumberDetail(ctx context.Context, detail domain.SerialNumberDetail) (int, error) {
	args := m.Called(ctx, detail)
	return args.Int(0), args.Error(1)
}

func TestRecordingCaller_RecordsIssuedCode(t *testing.T) {
	ctx := context.Background()
	next := new(MockActivationCaller)
	repo := new(MockSerialNumberWriter)
	issued := domain.ActivationResult{Status: domain.ActivationIssued, SerialNumber: "SN-99999"}
	next.On("GetLicense", ctx, "ORG-1", "ABC123").Return(issued, nil).Once()
	repo.On("SaveSerialNumberDetail", ctx, mock.MatchedBy(func(d domain.SerialNumberDetail) bool {
		return d.SerialNumber == "SN-99999" && d.ProductNumber == "ABC123" && !d.CreatedAt.IsZero()
	})).Return(77, nil).Once()

	result, err := activation.NewRecordingCaller(next, repo).GetLicense(ctx, "ORG-1", "ABC123")

	require.NoError(t, err)
	assert.Equal(t, issued, result)
	repo.AssertExpectations(t)
}

func TestRecordingCaller_SkipsRejectedAndFailedCalls(t *testing.T) {
	ctx := context.Background()
	cause := errors.New("timeout")
	next := new(MockActivationCaller)
	repo := new(MockSerialNumberWriter)
	next.On("GetLicense", ctx, "ORG-1", "REJECT").Return(domain.ActivationResult{Status: domain.ActivationRejected, Reason: "ERROR"}, nil).Once()
	next.On("GetLicense", ctx, "ORG-1", "FAIL").Return(domain.ActivationResult{}, cause).Once()
	caller := activation.NewRecordingCaller(next, repo)

	result, err := caller.GetLicense(ctx, "ORG-1", "REJECT")
	require.NoError(t, err)
	assert.Equal(t, domain.ActivationRejected, result.Status)

	_, err = caller.GetLicense(ctx, "ORG-1", "FAIL")
	assert.Same(t, cause, err)

	repo.AssertNotCalled(t, "SaveSerialNumberDetail", mock.Anything, mock.Anything)
}

func TestRecordingCaller_SaveFailure(t *testing.T) {
	ctx := context.Background()
	next := new(MockActivationCaller)
	repo := new(MockSerialNumberWriter)
	next.On("GetLicense", ctx, "ORG-1", "ABC123").Return(domain.ActivationResult{Status: domain.ActivationIssued, SerialNumber: "SN-1"}, nil).Once()
	repo.On("SaveSerialNumberDetail", ctx, mock.Anything).Return(0, apperrors.ErrDuplicate).Once()

	result, err := activation.NewRecordingCaller(next, repo).GetLicense(ctx, "ORG-1", "ABC123")

	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	assert.False(t, result.Issued())
}
