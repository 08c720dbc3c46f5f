package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depang/shopping-mall-api/services/user-service/internal/model"
	"github.com/depang/shopping-mall-api/services/user-service/internal/usecase"
)

type accountFixture struct {
	accountRepo    *fakeAccountRepo
	profileRepo    *fakeProfileRepo
	cartRepo       *fakeCartRepo
	wishlistRepo   *fakeWishlistRepo
	withdrawalRepo *fakeWithdrawalRepo
	mileage        *fakeMileageGateway
	usecase        usecase.AccountUsecase
}

func newAccountFixture() *accountFixture {
	f := &accountFixture{
		accountRepo:    newFakeAccountRepo(),
		profileRepo:    newFakeProfileRepo(),
		cartRepo:       newFakeCartRepo(),
		wishlistRepo:   newFakeWishlistRepo(),
		withdrawalRepo: &fakeWithdrawalRepo{},
		mileage:        &fakeMileageGateway{},
	}

	logger := zerolog.Nop()
	f.usecase = usecase.NewAccountUsecase(
		f.accountRepo,
		f.profileRepo,
		f.cartRepo,
		f.wishlistRepo,
		f.withdrawalRepo,
		f.mileage,
		&logger,
	)

	return f
}

func registerParams(email string) usecase.RegisterAccountParams {
	return usecase.RegisterAccountParams{
		Email:          email,
		EmployeeNumber: 10042,
		Name:           "Dana Kim",
		JoinDate:       time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestRegister(t *testing.T) {
	f := newAccountFixture()
	ctx := context.Background()

	account, err := f.usecase.Register(ctx, registerParams("dana@example.com"))
	require.NoError(t, err)
	require.NotNil(t, account)
	assert.Equal(t, model.AccountActive, account.Status)

	profile, err := f.profileRepo.GetProfileByAccountID(ctx, account.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Dana Kim", profile.Name)
	assert.Equal(t, int64(10042), profile.EmployeeNumber)
	assert.Empty(t, profile.PhoneNumber)
	assert.Empty(t, profile.Address)

	require.Len(t, f.mileage.created, 1)
	assert.Equal(t, account.ID.Hex(), f.mileage.created[0])
}

func TestRegister_DuplicateEmail(t *testing.T) {
	f := newAccountFixture()
	ctx := context.Background()

	_, err := f.usecase.Register(ctx, registerParams("dana@example.com"))
	require.NoError(t, err)

	_, err = f.usecase.Register(ctx, registerParams("dana@example.com"))
	assert.ErrorIs(t, err, usecase.ErrAccountAlreadyExists)

	// The duplicate must not provision a second mileage ledger.
	assert.Len(t, f.mileage.created, 1)
}

func TestRegister_MileageFailure(t *testing.T) {
	f := newAccountFixture()
	f.mileage.createErr = errors.New("mileage service unavailable")
	ctx := context.Background()

	_, err := f.usecase.Register(ctx, registerParams("dana@example.com"))
	require.Error(t, err)

	// Local writes stay committed even though the remote call failed.
	accounts, err := f.accountRepo.ListAccountsByEmail(ctx, "dana", 10, 0)
	require.NoError(t, err)
	require.Len(t, accounts, 1)

	_, err = f.profileRepo.GetProfileByAccountID(ctx, accounts[0].ID.Hex())
	assert.NoError(t, err)
}

func TestDeleteAccount(t *testing.T) {
	f := newAccountFixture()
	ctx := context.Background()

	account, err := f.usecase.Register(ctx, registerParams("dana@example.com"))
	require.NoError(t, err)
	accountID := account.ID.Hex()

	f.cartRepo.carts[accountID] = &model.Cart{AccountID: accountID}
	f.wishlistRepo.wishlists[accountID] = &model.Wishlist{AccountID: accountID}

	err = f.usecase.DeleteAccount(ctx, accountID, usecase.WithdrawParams{
		Reason:  model.ReasonPrivacy,
		Message: "leaving the company",
	})
	require.NoError(t, err)

	_, err = f.accountRepo.GetAccount(ctx, accountID)
	assert.Error(t, err)
	_, err = f.profileRepo.GetProfileByAccountID(ctx, accountID)
	assert.Error(t, err)
	_, err = f.cartRepo.GetCartByAccountID(ctx, accountID)
	assert.Error(t, err)
	_, err = f.wishlistRepo.GetWishlistByAccountID(ctx, accountID)
	assert.Error(t, err)

	require.Len(t, f.withdrawalRepo.withdrawals, 1)
	withdrawal := f.withdrawalRepo.withdrawals[0]
	assert.Equal(t, accountID, withdrawal.AccountID)
	assert.Equal(t, model.ReasonPrivacy, withdrawal.Reason)
	assert.Equal(t, "leaving the company", withdrawal.Message)

	require.Len(t, f.mileage.deleted, 1)
	assert.Equal(t, accountID, f.mileage.deleted[0])
}

func TestDeleteAccount_NotFound(t *testing.T) {
	f := newAccountFixture()

	err := f.usecase.DeleteAccount(context.Background(), "65f000000000000000000000", usecase.WithdrawParams{
		Reason: model.ReasonOther,
	})
	assert.ErrorIs(t, err, usecase.ErrAccountNotFound)
	assert.Empty(t, f.withdrawalRepo.withdrawals)
}

func TestDeleteAccount_SecondDeleteFails(t *testing.T) {
	f := newAccountFixture()
	ctx := context.Background()

	account, err := f.usecase.Register(ctx, registerParams("dana@example.com"))
	require.NoError(t, err)
	accountID := account.ID.Hex()

	params := usecase.WithdrawParams{Reason: model.ReasonNotUsed}
	require.NoError(t, f.usecase.DeleteAccount(ctx, accountID, params))

	err = f.usecase.DeleteAccount(ctx, accountID, params)
	assert.ErrorIs(t, err, usecase.ErrAccountNotFound)

	assert.Len(t, f.withdrawalRepo.withdrawals, 1)
	assert.Len(t, f.mileage.deleted, 1)
}

func TestUpdateAddress(t *testing.T) {
	f := newAccountFixture()
	ctx := context.Background()

	account, err := f.usecase.Register(ctx, registerParams("dana@example.com"))
	require.NoError(t, err)
	accountID := account.ID.Hex()

	err = f.usecase.UpdateAddress(ctx, accountID, usecase.UpdateAddressParams{
		PhoneNumber:   "010-1234-5678",
		ZipCode:       "04524",
		Address:       "110 Sejong-daero, Jung-gu, Seoul",
		DetailAddress: "4th floor",
	})
	require.NoError(t, err)

	profile, err := f.profileRepo.GetProfileByAccountID(ctx, accountID)
	require.NoError(t, err)
	assert.Equal(t, "010-1234-5678", profile.PhoneNumber)
	assert.Equal(t, "04524", profile.ZipCode)
	assert.Equal(t, "110 Sejong-daero, Jung-gu, Seoul", profile.Address)
	assert.Equal(t, "4th floor", profile.DetailAddress)
}

func TestUpdateAddress_ProfileNotFound(t *testing.T) {
	f := newAccountFixture()

	err := f.usecase.UpdateAddress(context.Background(), "65f000000000000000000000", usecase.UpdateAddressParams{
		PhoneNumber: "010-0000-0000",
	})
	assert.ErrorIs(t, err, usecase.ErrProfileNotFound)
}

func TestGetAccount(t *testing.T) {
	f := newAccountFixture()
	ctx := context.Background()

	account, err := f.usecase.Register(ctx, registerParams("dana@example.com"))
	require.NoError(t, err)

	detail, err := f.usecase.GetAccount(ctx, account.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "dana@example.com", detail.Account.Email)
	assert.Equal(t, "Dana Kim", detail.Profile.Name)
}

func TestGetAccount_NotFound(t *testing.T) {
	f := newAccountFixture()

	_, err := f.usecase.GetAccount(context.Background(), "65f000000000000000000000")
	assert.ErrorIs(t, err, usecase.ErrAccountNotFound)
}

func TestListAccounts_ByEmail(t *testing.T) {
	f := newAccountFixture()
	ctx := context.Background()

	_, err := f.usecase.Register(ctx, registerParams("dana@example.com"))
	require.NoError(t, err)

	params := registerParams("jun@example.org")
	params.Name = "Jun Park"
	params.EmployeeNumber = 10043
	_, err = f.usecase.Register(ctx, params)
	require.NoError(t, err)

	profiles, err := f.usecase.ListAccounts(ctx, usecase.ListAccountsParams{
		Category: usecase.CategoryEmail,
		Keyword:  "example.com",
	})
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "Dana Kim", profiles[0].Name)
}

func TestListAccounts_ByName(t *testing.T) {
	f := newAccountFixture()
	ctx := context.Background()

	_, err := f.usecase.Register(ctx, registerParams("dana@example.com"))
	require.NoError(t, err)

	params := registerParams("jun@example.org")
	params.Name = "Jun Park"
	params.EmployeeNumber = 10043
	_, err = f.usecase.Register(ctx, params)
	require.NoError(t, err)

	profiles, err := f.usecase.ListAccounts(ctx, usecase.ListAccountsParams{
		Category: usecase.CategoryName,
		Keyword:  "Jun",
	})
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, int64(10043), profiles[0].EmployeeNumber)
}

func TestListAccounts_ByEmployeeNumber(t *testing.T) {
	f := newAccountFixture()
	ctx := context.Background()

	_, err := f.usecase.Register(ctx, registerParams("dana@example.com"))
	require.NoError(t, err)

	profiles, err := f.usecase.ListAccounts(ctx, usecase.ListAccountsParams{
		Category: usecase.CategoryEmployeeNumber,
		Keyword:  "10042",
	})
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "Dana Kim", profiles[0].Name)
}

func TestListAccounts_EmployeeNumberNonNumericKeyword(t *testing.T) {
	f := newAccountFixture()
	ctx := context.Background()

	_, err := f.usecase.Register(ctx, registerParams("dana@example.com"))
	require.NoError(t, err)

	profiles, err := f.usecase.ListAccounts(ctx, usecase.ListAccountsParams{
		Category: usecase.CategoryEmployeeNumber,
		Keyword:  "dana",
	})
	require.NoError(t, err)
	assert.Empty(t, profiles)
}

func TestListAccounts_All(t *testing.T) {
	f := newAccountFixture()
	ctx := context.Background()

	_, err := f.usecase.Register(ctx, registerParams("dana@example.com"))
	require.NoError(t, err)

	params := registerParams("jun@example.org")
	params.Name = "Jun Park"
	params.EmployeeNumber = 10043
	_, err = f.usecase.Register(ctx, params)
	require.NoError(t, err)

	profiles, err := f.usecase.ListAccounts(ctx, usecase.ListAccountsParams{
		Category: usecase.CategoryAll,
	})
	require.NoError(t, err)
	assert.Len(t, profiles, 2)
}

func TestDeleteAccounts(t *testing.T) {
	f := newAccountFixture()
	ctx := context.Background()

	first, err := f.usecase.Register(ctx, registerParams("dana@example.com"))
	require.NoError(t, err)

	params := registerParams("jun@example.org")
	params.Name = "Jun Park"
	second, err := f.usecase.Register(ctx, params)
	require.NoError(t, err)

	err = f.usecase.DeleteAccounts(ctx, []string{first.ID.Hex(), second.ID.Hex()})
	require.NoError(t, err)

	_, err = f.accountRepo.GetAccount(ctx, first.ID.Hex())
	assert.Error(t, err)
	_, err = f.accountRepo.GetAccount(ctx, second.ID.Hex())
	assert.Error(t, err)
}

func TestDeleteAccounts_UnknownID(t *testing.T) {
	f := newAccountFixture()

	err := f.usecase.DeleteAccounts(context.Background(), []string{"65f000000000000000000000"})
	assert.ErrorIs(t, err, usecase.ErrAccountNotFound)
}

func TestGetProfilesByAccountIDs(t *testing.T) {
	f := newAccountFixture()
	ctx := context.Background()

	first, err := f.usecase.Register(ctx, registerParams("dana@example.com"))
	require.NoError(t, err)

	params := registerParams("jun@example.org")
	params.Name = "Jun Park"
	second, err := f.usecase.Register(ctx, params)
	require.NoError(t, err)

	profiles, err := f.usecase.GetProfilesByAccountIDs(ctx, []string{first.ID.Hex(), second.ID.Hex()})
	require.NoError(t, err)
	assert.Len(t, profiles, 2)
}
