package validators

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"smartystreets-api/internal/errors"
	"smartystreets-api/internal/models"
)

type addressValidator struct {
	validate *validator.Validate
}

func NewAddressValidator() AddressValidator {
	return &addressValidator{validate: validator.New()}
}

func (v *addressValidator) ValidateAddress(req *models.AddressRequest) error {
	return v.validate.Struct(req)
}

func (v *addressValidator) ValidateZipcode(req *models.ZipcodeRequest) error {
	return v.validate.Struct(req)
}

func (v *addressValidator) ValidateSuggest(req *models.SuggestRequest) error {
	return v.validate.Struct(req)
}

func (v *addressValidator) ValidateBatch(size int) error {
	if size == 0 || size > models.MaxBatchSize {
		return errors.NewBadRequest(fmt.Sprintf("batch must contain between 1 and %d items, got %d", models.MaxBatchSize, size), nil)
	}
	return nil
}
