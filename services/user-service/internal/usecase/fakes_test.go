package usecase_test

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/depang/shopping-mall-api/services/user-service/internal/model"
	"github.com/depang/shopping-mall-api/services/user-service/internal/repository"
)

type fakeAccountRepo struct {
	accounts map[string]*model.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[string]*model.Account)}
}

func (f *fakeAccountRepo) CreateAccount(_ context.Context, account *model.Account) (*model.Account, error) {
	for _, existing := range f.accounts {
		if existing.Email == account.Email {
			return nil, mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000}}}
		}
	}

	account.ID = bson.NewObjectID()
	f.accounts[account.ID.Hex()] = account

	return account, nil
}

func (f *fakeAccountRepo) GetAccount(_ context.Context, id string) (*model.Account, error) {
	account, ok := f.accounts[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}

	return account, nil
}

func (f *fakeAccountRepo) ListAccountsByEmail(
	_ context.Context,
	keyword string,
	_, _ uint64,
) ([]*model.Account, error) {
	var accounts []*model.Account
	for _, account := range f.accounts {
		if strings.Contains(account.Email, keyword) {
			accounts = append(accounts, account)
		}
	}

	return accounts, nil
}

func (f *fakeAccountRepo) DeleteAccount(_ context.Context, id string) (*model.Account, error) {
	account, ok := f.accounts[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}

	delete(f.accounts, id)

	return account, nil
}

type fakeProfileRepo struct {
	profiles map[string]*model.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]*model.Profile)}
}

func (f *fakeProfileRepo) CreateProfile(_ context.Context, profile *model.Profile) (*model.Profile, error) {
	profile.ID = bson.NewObjectID()
	f.profiles[profile.AccountID] = profile

	return profile, nil
}

func (f *fakeProfileRepo) GetProfileByAccountID(_ context.Context, accountID string) (*model.Profile, error) {
	profile, ok := f.profiles[accountID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}

	return profile, nil
}

func (f *fakeProfileRepo) GetProfilesByAccountIDs(
	_ context.Context,
	accountIDs []string,
) ([]*model.Profile, error) {
	var profiles []*model.Profile
	for _, accountID := range accountIDs {
		if profile, ok := f.profiles[accountID]; ok {
			profiles = append(profiles, profile)
		}
	}

	return profiles, nil
}

func (f *fakeProfileRepo) UpdateContact(
	_ context.Context,
	accountID string,
	params repository.UpdateContactParams,
) error {
	profile, ok := f.profiles[accountID]
	if !ok {
		return mongo.ErrNoDocuments
	}

	profile.PhoneNumber = params.PhoneNumber
	profile.ZipCode = params.ZipCode
	profile.Address = params.Address
	profile.DetailAddress = params.DetailAddress

	return nil
}

func (f *fakeProfileRepo) ListProfiles(
	_ context.Context,
	params repository.FilterProfilesParams,
) ([]*model.Profile, error) {
	var profiles []*model.Profile
	for _, profile := range f.profiles {
		if params.NameKeyword != nil && !strings.Contains(profile.Name, *params.NameKeyword) {
			continue
		}
		if params.EmployeeNumber != nil && profile.EmployeeNumber != *params.EmployeeNumber {
			continue
		}
		profiles = append(profiles, profile)
	}

	return profiles, nil
}

func (f *fakeProfileRepo) DeleteProfileByAccountID(_ context.Context, accountID string) error {
	delete(f.profiles, accountID)
	return nil
}

type fakeCartRepo struct {
	carts map[string]*model.Cart
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: make(map[string]*model.Cart)}
}

func (f *fakeCartRepo) GetCartByAccountID(_ context.Context, accountID string) (*model.Cart, error) {
	cart, ok := f.carts[accountID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}

	return cart, nil
}

func (f *fakeCartRepo) DeleteCartByAccountID(_ context.Context, accountID string) error {
	delete(f.carts, accountID)
	return nil
}

type fakeWishlistRepo struct {
	wishlists map[string]*model.Wishlist
}

func newFakeWishlistRepo() *fakeWishlistRepo {
	return &fakeWishlistRepo{wishlists: make(map[string]*model.Wishlist)}
}

func (f *fakeWishlistRepo) GetWishlistByAccountID(
	_ context.Context,
	accountID string,
) (*model.Wishlist, error) {
	wishlist, ok := f.wishlists[accountID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}

	return wishlist, nil
}

func (f *fakeWishlistRepo) DeleteWishlistByAccountID(_ context.Context, accountID string) error {
	delete(f.wishlists, accountID)
	return nil
}

type fakeWithdrawalRepo struct {
	withdrawals []*model.Withdrawal
}

func (f *fakeWithdrawalRepo) CreateWithdrawal(
	_ context.Context,
	withdrawal *model.Withdrawal,
) (*model.Withdrawal, error) {
	withdrawal.ID = bson.NewObjectID()
	f.withdrawals = append(f.withdrawals, withdrawal)

	return withdrawal, nil
}

// fakeMileageGateway records provision/deprovision calls and can be made to
// fail either direction.
type fakeMileageGateway struct {
	createErr error
	deleteErr error
	created   []string
	deleted   []string
}

func (f *fakeMileageGateway) CreateMileage(_ context.Context, accountID string) error {
	if f.createErr != nil {
		return f.createErr
	}

	f.created = append(f.created, accountID)

	return nil
}

func (f *fakeMileageGateway) DeleteMileage(_ context.Context, accountID string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}

	f.deleted = append(f.deleted, accountID)

	return nil
}
