package handler

import (
	"time"

	"github.com/depang/shopping-mall-api/services/user-service/internal/model"
)

type registerRequest struct {
	Email          string    `json:"email"           validate:"required,email"`
	EmployeeNumber int64     `json:"employee_number" validate:"required,gt=0"`
	Name           string    `json:"name"            validate:"required"`
	JoinDate       time.Time `json:"join_date"       validate:"required"`
}

type registerResponse struct {
	AccountID string              `json:"account_id"`
	Email     string              `json:"email"`
	Status    model.AccountStatus `json:"status"`
}

type withdrawRequest struct {
	Reason  string `json:"reason"  validate:"required,oneof=NOT_USED INCONVENIENCE PRIVACY OTHER"`
	Message string `json:"message" validate:"max=500"`
}

type updateAddressRequest struct {
	PhoneNumber   string `json:"phone_number"   validate:"required"`
	ZipCode       string `json:"zip_code"       validate:"required"`
	Address       string `json:"address"        validate:"required"`
	DetailAddress string `json:"detail_address"`
}

type addressResponse struct {
	PhoneNumber   string `json:"phone_number"`
	ZipCode       string `json:"zip_code"`
	Address       string `json:"address"`
	DetailAddress string `json:"detail_address"`
}

type accountDetailResponse struct {
	AccountID      string              `json:"account_id"`
	Email          string              `json:"email"`
	Status         model.AccountStatus `json:"status"`
	EmployeeNumber int64               `json:"employee_number"`
	Name           string              `json:"name"`
	JoinDate       time.Time           `json:"join_date"`
	Address        addressResponse     `json:"address"`
}

type profileResponse struct {
	AccountID      string    `json:"account_id"`
	EmployeeNumber int64     `json:"employee_number"`
	Name           string    `json:"name"`
	JoinDate       time.Time `json:"join_date"`
	PhoneNumber    string    `json:"phone_number"`
}

type deleteAccountsRequest struct {
	AccountIDs []string `json:"account_ids" validate:"required,min=1,dive,required"`
}

func newProfileResponse(profile *model.Profile) profileResponse {
	return profileResponse{
		AccountID:      profile.AccountID,
		EmployeeNumber: profile.EmployeeNumber,
		Name:           profile.Name,
		JoinDate:       profile.JoinDate,
		PhoneNumber:    profile.PhoneNumber,
	}
}

func newProfileResponses(profiles []*model.Profile) []profileResponse {
	responses := make([]profileResponse, 0, len(profiles))
	for _, profile := range profiles {
		responses = append(responses, newProfileResponse(profile))
	}

	return responses
}
