package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/license_portal/internal/apperrors"
	"github.com/SscSPs/license_portal/internal/core/domain"
	"github.com/SscSPs/license_portal/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrganizationAccountService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		repo := new(MockOrganizationAccountRepository)
		repo.On("FindOrganizationAccountByID", ctx, 4).Return(&domain.OrganizationAccount{ID: 4, AccountID: "ORG-4"}, nil).Once()
		svc := services.NewOrganizationAccountService(repo, new(MockOrgPackageDetailRepository))

		got, err := svc.GetByID(ctx, 4)

		require.NoError(t, err)
		assert.Equal(t, "ORG-4", got.AccountID)
	})

	t.Run("absent is not an error", func(t *testing.T) {
		repo := new(MockOrganizationAccountRepository)
		repo.On("FindOrganizationAccountByID", ctx, 5).Return(nil, nil).Once()
		svc := services.NewOrganizationAccountService(repo, new(MockOrgPackageDetailRepository))

		got, err := svc.GetByID(ctx, 5)

		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("storage failure is wrapped", func(t *testing.T) {
		cause := errors.New("connection refused")
		repo := new(MockOrganizationAccountRepository)
		repo.On("FindOrganizationAccountByID", ctx, 6).Return(nil, cause).Once()
		svc := services.NewOrganizationAccountService(repo, new(MockOrgPackageDetailRepository))

		_, err := svc.GetByID(ctx, 6)

		assert.ErrorIs(t, err, cause)
	})
}

func TestOrganizationAccountService_GetOrgByUserID(t *testing.T) {
	ctx := context.Background()
	repo := new(MockOrganizationAccountRepository)
	orgID := 99
	repo.On("FindOrganizationIDByUserID", ctx, "user-1").Return(&orgID, nil).Once()
	repo.On("FindOrganizationIDByUserID", ctx, "user-2").Return(nil, nil).Once()
	svc := services.NewOrganizationAccountService(repo, new(MockOrgPackageDetailRepository))

	got, err := svc.GetOrgByUserID(ctx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 99, *got)

	got, err = svc.GetOrgByUserID(ctx, "user-2")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = svc.GetOrgByUserID(ctx, "")
	require.NoError(t, err)
	assert.Nil(t, got)
	repo.AssertNotCalled(t, "FindOrganizationIDByUserID", ctx, "")
}

func TestOrganizationAccountService_IsChildOrganizationOfReseller(t *testing.T) {
	ctx := context.Background()
	repo := new(MockOrganizationAccountRepository)
	repo.On("IsChildOrganizationOfReseller", ctx, 1, 99).Return(true, nil).Once()
	repo.On("IsChildOrganizationOfReseller", ctx, 2, 99).Return(false, nil).Once()
	svc := services.NewOrganizationAccountService(repo, new(MockOrgPackageDetailRepository))

	ok, err := svc.IsChildOrganizationOfReseller(ctx, 1, 99)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.IsChildOrganizationOfReseller(ctx, 2, 99)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.IsChildOrganizationOfReseller(ctx, 99, 99)
	require.NoError(t, err)
	assert.False(t, ok)
	repo.AssertNumberOfCalls(t, "IsChildOrganizationOfReseller", 2)
}

func TestOrganizationAccountService_UpdateOrgPackageDetailCount(t *testing.T) {
	ctx := context.Background()

	t.Run("updates count", func(t *testing.T) {
		pkgRepo := new(MockOrgPackageDetailRepository)
		pkgRepo.On("UpdateSerialNumbersCount", ctx, 99, 100, 9).Return(nil).Once()
		svc := services.NewOrganizationAccountService(new(MockOrganizationAccountRepository), pkgRepo)

		require.NoError(t, svc.UpdateOrgPackageDetailCount(ctx, 99, 100, 9))
		pkgRepo.AssertExpectations(t)
	})

	t.Run("rejects negative count", func(t *testing.T) {
		pkgRepo := new(MockOrgPackageDetailRepository)
		svc := services.NewOrganizationAccountService(new(MockOrganizationAccountRepository), pkgRepo)

		err := svc.UpdateOrgPackageDetailCount(ctx, 99, 100, -1)

		assert.ErrorIs(t, err, apperrors.ErrValidation)
		pkgRepo.AssertNotCalled(t, "UpdateSerialNumbersCount", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("propagates storage error", func(t *testing.T) {
		cause := errors.New("row locked")
		pkgRepo := new(MockOrgPackageDetailRepository)
		pkgRepo.On("UpdateSerialNumbersCount", ctx, 99, 100, 0).Return(cause).Once()
		svc := services.NewOrganizationAccountService(new(MockOrganizationAccountRepository), pkgRepo)

		assert.Same(t, cause, svc.UpdateOrgPackageDetailCount(ctx, 99, 100, 0))
	})
}
