package services

import (
	"context"
	"fmt"

	"smartystreets-api/internal/errors"
	"smartystreets-api/internal/models"
	"smartystreets-api/internal/validators"
	"smartystreets-api/pkg/logger"
	"smartystreets-api/pkg/smartystreets"
)

// AddressClient is the part of *smartystreets.Client the service depends on.
type AddressClient interface {
	VerifyAddress(ctx context.Context, in smartystreets.Input) (*smartystreets.Result, error)
	LookupZipcode(ctx context.Context, l smartystreets.Lookup) (*smartystreets.Result, error)
	SuggestAddress(ctx context.Context, s smartystreets.Suggestion) (*smartystreets.Result, error)
}

type AddressService struct {
	client    AddressClient
	validator validators.AddressValidator
}

func NewAddressService(client AddressClient, validator validators.AddressValidator) *AddressService {
	return &AddressService{
		client:    client,
		validator: validator,
	}
}

func (s *AddressService) Verify(ctx context.Context, req *models.AddressRequest) (*models.Response, error) {
	if err := s.validator.ValidateAddress(req); err != nil {
		logger.GlobalLogger.Printf("Invalid address request: address=%s, street=%s, error=%v", req.Address, req.Street, err)
		return nil, err
	}

	result, err := s.client.VerifyAddress(ctx, req.Input())
	if err != nil {
		return nil, fmt.Errorf("verify address: %w", err)
	}
	return models.NewResponse(result, req.IncludeRaw), nil
}

// VerifyBatch verifies a list whose items are free-text strings or field objects.
func (s *AddressService) VerifyBatch(ctx context.Context, items []any, includeRaw bool) (*models.Response, error) {
	if err := s.validator.ValidateBatch(len(items)); err != nil {
		return nil, err
	}

	list := make(smartystreets.List, len(items))
	for i, item := range items {
		switch v := item.(type) {
		case string:
			list[i] = smartystreets.Text(v)
		case map[string]any:
			list[i] = smartystreets.Fields(v)
		default:
			return nil, errors.NewBadRequest(fmt.Sprintf("item %d must be a string or an object", i), nil)
		}
	}

	result, err := s.client.VerifyAddress(ctx, list)
	if err != nil {
		return nil, fmt.Errorf("verify addresses: %w", err)
	}
	return models.NewResponse(result, includeRaw), nil
}

func (s *AddressService) LookupZipcode(ctx context.Context, req *models.ZipcodeRequest) (*models.Response, error) {
	if err := s.validator.ValidateZipcode(req); err != nil {
		logger.GlobalLogger.Printf("Invalid zipcode request: city=%s, state=%s, zipcode=%s, error=%v", req.City, req.State, req.Zipcode, err)
		return nil, err
	}

	result, err := s.client.LookupZipcode(ctx, req.Query())
	if err != nil {
		return nil, fmt.Errorf("lookup zipcode: %w", err)
	}
	return models.NewResponse(result, req.IncludeRaw), nil
}

func (s *AddressService) LookupZipcodes(ctx context.Context, items []map[string]any, includeRaw bool) (*models.Response, error) {
	if err := s.validator.ValidateBatch(len(items)); err != nil {
		return nil, err
	}

	list := make(smartystreets.QueryList, len(items))
	for i, item := range items {
		list[i] = smartystreets.Query(item)
	}

	result, err := s.client.LookupZipcode(ctx, list)
	if err != nil {
		return nil, fmt.Errorf("lookup zipcodes: %w", err)
	}
	return models.NewResponse(result, includeRaw), nil
}

func (s *AddressService) Suggest(ctx context.Context, req *models.SuggestRequest) (*models.Response, error) {
	if err := s.validator.ValidateSuggest(req); err != nil {
		logger.GlobalLogger.Printf("Invalid suggest request: prefix=%s, error=%v", req.Prefix, err)
		return nil, err
	}

	result, err := s.client.SuggestAddress(ctx, req.Query())
	if err != nil {
		return nil, fmt.Errorf("suggest address: %w", err)
	}
	return models.NewResponse(result, req.IncludeRaw), nil
}
