package usecase

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/depang/shopping-mall-api/services/user-service/internal/model"
	"github.com/depang/shopping-mall-api/services/user-service/internal/repository"
)

// MileageGateway is the remote mileage service contract. Calls are
// fire-and-forget: a failure is surfaced to the caller but never compensated
// locally.
type MileageGateway interface {
	CreateMileage(ctx context.Context, accountID string) error
	DeleteMileage(ctx context.Context, accountID string) error
}

// SearchCategory selects which field an admin account search matches on.
type SearchCategory string

const (
	CategoryAll            SearchCategory = "ALL"
	CategoryEmail          SearchCategory = "EMAIL"
	CategoryName           SearchCategory = "NAME"
	CategoryEmployeeNumber SearchCategory = "EMPLOYEE_NUMBER"
)

// AccountUsecase defines the business logic for the account lifecycle.
type AccountUsecase interface {
	// Register creates an account with its profile and provisions the
	// mileage ledger for the new identifier.
	Register(ctx context.Context, params RegisterAccountParams) (*model.Account, error)

	// DeleteAccount withdraws an account: records the withdrawal, removes the
	// account, profile, cart and wishlist, and deprovisions mileage.
	DeleteAccount(ctx context.Context, accountID string, params WithdrawParams) error

	// UpdateAddress overwrites the profile's contact fields.
	UpdateAddress(ctx context.Context, accountID string, params UpdateAddressParams) error

	// GetAccount returns the account with its profile.
	GetAccount(ctx context.Context, accountID string) (*AccountDetail, error)

	// ListAccounts is the admin search across accounts and profiles.
	ListAccounts(ctx context.Context, params ListAccountsParams) ([]*model.Profile, error)

	// DeleteAccounts is the admin bulk delete by identifier list.
	DeleteAccounts(ctx context.Context, accountIDs []string) error

	// GetProfilesByAccountIDs is the lookup used by other backend services.
	GetProfilesByAccountIDs(ctx context.Context, accountIDs []string) ([]*model.Profile, error)
}

// RegisterAccountParams defines the parameters for account registration.
type RegisterAccountParams struct {
	Email          string
	EmployeeNumber int64
	Name           string
	JoinDate       time.Time
}

// WithdrawParams carries the user-supplied withdrawal reason.
type WithdrawParams struct {
	Reason  model.WithdrawalReason
	Message string
}

// UpdateAddressParams defines the contact fields for an address update.
type UpdateAddressParams struct {
	PhoneNumber   string
	ZipCode       string
	Address       string
	DetailAddress string
}

// ListAccountsParams defines the admin search parameters.
type ListAccountsParams struct {
	Category SearchCategory
	Keyword  string
	Limit    uint64
	Offset   uint64
}

// AccountDetail pairs an account with its profile.
type AccountDetail struct {
	Account *model.Account
	Profile *model.Profile
}

var (
	ErrAccountAlreadyExists = errors.New("account already exists for email")
	ErrAccountNotFound      = errors.New("account not found")
	ErrProfileNotFound      = errors.New("profile not found")
)

var digitsOnly = regexp.MustCompile(`^\d+$`)

type accountUsecase struct {
	accountRepo    repository.AccountRepository
	profileRepo    repository.ProfileRepository
	cartRepo       repository.CartRepository
	wishlistRepo   repository.WishlistRepository
	withdrawalRepo repository.WithdrawalRepository
	mileageGateway MileageGateway
	logger         *zerolog.Logger
}

// NewAccountUsecase creates a new instance of AccountUsecase.
func NewAccountUsecase(
	accountRepo repository.AccountRepository,
	profileRepo repository.ProfileRepository,
	cartRepo repository.CartRepository,
	wishlistRepo repository.WishlistRepository,
	withdrawalRepo repository.WithdrawalRepository,
	mileageGateway MileageGateway,
	logger *zerolog.Logger,
) AccountUsecase {
	return &accountUsecase{
		accountRepo:    accountRepo,
		profileRepo:    profileRepo,
		cartRepo:       cartRepo,
		wishlistRepo:   wishlistRepo,
		withdrawalRepo: withdrawalRepo,
		mileageGateway: mileageGateway,
		logger:         logger,
	}
}

func (u *accountUsecase) Register(ctx context.Context, params RegisterAccountParams) (*model.Account, error) {
	account, err := u.accountRepo.CreateAccount(ctx, &model.Account{
		Email:  params.Email,
		Status: model.AccountActive,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrAccountAlreadyExists
		}

		return nil, err
	}

	// Contact fields start empty; the user fills them in later through
	// UpdateAddress.
	if _, err := u.profileRepo.CreateProfile(ctx, &model.Profile{
		AccountID:      account.ID.Hex(),
		EmployeeNumber: params.EmployeeNumber,
		Name:           params.Name,
		JoinDate:       params.JoinDate,
		PhoneNumber:    "",
		ZipCode:        "",
		Address:        "",
		DetailAddress:  "",
	}); err != nil {
		return nil, err
	}

	// The mileage ledger is keyed by the generated identifier, so the account
	// must already be persisted. If this call fails the local writes stay
	// committed and the failure propagates.
	if err := u.mileageGateway.CreateMileage(ctx, account.ID.Hex()); err != nil {
		u.logger.Error().Err(err).Str("account_id", account.ID.Hex()).Msg("failed to provision mileage")
		return nil, err
	}

	u.logger.Info().Str("account_id", account.ID.Hex()).Msg("account registered")

	return account, nil
}

func (u *accountUsecase) DeleteAccount(ctx context.Context, accountID string, params WithdrawParams) error {
	account, err := u.accountRepo.GetAccount(ctx, accountID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrAccountNotFound
		}

		return err
	}

	withdrawal, err := u.withdrawalRepo.CreateWithdrawal(ctx, &model.Withdrawal{
		AccountID:      account.ID.Hex(),
		Reason:         params.Reason,
		Message:        params.Message,
		WithdrawalDate: time.Now(),
	})
	if err != nil {
		return err
	}

	// Sequential teardown across independent stores. There is no shared
	// transaction: a failure partway through leaves the earlier deletes
	// committed and surfaces to the caller.
	if _, err := u.accountRepo.DeleteAccount(ctx, accountID); err != nil {
		return err
	}

	if err := u.profileRepo.DeleteProfileByAccountID(ctx, accountID); err != nil {
		return err
	}

	if err := u.cartRepo.DeleteCartByAccountID(ctx, accountID); err != nil {
		return err
	}

	if err := u.wishlistRepo.DeleteWishlistByAccountID(ctx, accountID); err != nil {
		return err
	}

	if err := u.mileageGateway.DeleteMileage(ctx, accountID); err != nil {
		u.logger.Error().Err(err).Str("account_id", accountID).Msg("failed to deprovision mileage")
		return err
	}

	u.logger.Info().
		Str("account_id", accountID).
		Str("withdrawal_id", withdrawal.ID.Hex()).
		Msg("account withdrawn")

	return nil
}

func (u *accountUsecase) UpdateAddress(ctx context.Context, accountID string, params UpdateAddressParams) error {
	err := u.profileRepo.UpdateContact(ctx, accountID, repository.UpdateContactParams{
		PhoneNumber:   params.PhoneNumber,
		ZipCode:       params.ZipCode,
		Address:       params.Address,
		DetailAddress: params.DetailAddress,
	})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrProfileNotFound
		}

		return err
	}

	return nil
}

func (u *accountUsecase) GetAccount(ctx context.Context, accountID string) (*AccountDetail, error) {
	account, err := u.accountRepo.GetAccount(ctx, accountID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrAccountNotFound
		}

		return nil, err
	}

	profile, err := u.profileRepo.GetProfileByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProfileNotFound
		}

		return nil, err
	}

	return &AccountDetail{Account: account, Profile: profile}, nil
}

func (u *accountUsecase) ListAccounts(ctx context.Context, params ListAccountsParams) ([]*model.Profile, error) {
	limit := params.Limit
	if limit == 0 {
		limit = 10
	}

	switch params.Category {
	case CategoryEmail:
		accounts, err := u.accountRepo.ListAccountsByEmail(ctx, params.Keyword, limit, params.Offset)
		if err != nil {
			return nil, err
		}

		accountIDs := make([]string, 0, len(accounts))
		for _, account := range accounts {
			accountIDs = append(accountIDs, account.ID.Hex())
		}

		return u.profileRepo.GetProfilesByAccountIDs(ctx, accountIDs)

	case CategoryName:
		return u.profileRepo.ListProfiles(ctx, repository.FilterProfilesParams{
			NameKeyword: &params.Keyword,
			Limit:       limit,
			Offset:      params.Offset,
		})

	case CategoryEmployeeNumber:
		if !digitsOnly.MatchString(params.Keyword) {
			return nil, nil
		}

		employeeNumber, err := strconv.ParseInt(params.Keyword, 10, 64)
		if err != nil {
			return nil, err
		}

		return u.profileRepo.ListProfiles(ctx, repository.FilterProfilesParams{
			EmployeeNumber: &employeeNumber,
			Limit:          limit,
			Offset:         params.Offset,
		})

	default:
		return u.profileRepo.ListProfiles(ctx, repository.FilterProfilesParams{
			Limit:  limit,
			Offset: params.Offset,
		})
	}
}

func (u *accountUsecase) DeleteAccounts(ctx context.Context, accountIDs []string) error {
	for _, accountID := range accountIDs {
		if _, err := u.accountRepo.DeleteAccount(ctx, accountID); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return ErrAccountNotFound
			}

			return err
		}

		u.logger.Info().Str("account_id", accountID).Msg("account deleted by admin")
	}

	return nil
}

func (u *accountUsecase) GetProfilesByAccountIDs(
	ctx context.Context,
	accountIDs []string,
) ([]*model.Profile, error) {
	return u.profileRepo.GetProfilesByAccountIDs(ctx, accountIDs)
}
