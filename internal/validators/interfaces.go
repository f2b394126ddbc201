package validators

import (
	"smartystreets-api/internal/models"
)

type AddressValidator interface {
	ValidateAddress(req *models.AddressRequest) error
	ValidateZipcode(req *models.ZipcodeRequest) error
	ValidateSuggest(req *models.SuggestRequest) error
	ValidateBatch(size int) error
}
