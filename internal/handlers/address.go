package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/schema"

	apperrors "smartystreets-api/internal/errors"
	"smartystreets-api/internal/models"
	"smartystreets-api/internal/services"
)

var queryDecoder = func() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}()

type AddressHandler struct {
	addressService *services.AddressService
}

func NewAddressHandler(addressService *services.AddressService) *AddressHandler {
	return &AddressHandler{addressService: addressService}
}

// VerifyAddress godoc
// @Summary Verify a single street address
// @Description Verify free text (address) or structured fields (street, city, state, zipcode)
// @Tags Addresses
// @Produce json
// @Param address query string false "Free-text address"
// @Param street query string false "Street line"
// @Param city query string false "City"
// @Param state query string false "State"
// @Param zipcode query string false "ZIP code"
// @Param raw query bool false "Include the untransformed response"
// @Success 200 {object} models.Response
// @Failure 400 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Failure 502 {object} map[string]interface{}
// @Router /api/v1/street-address [get]
func (h *AddressHandler) VerifyAddress(c *gin.Context) {
	var req models.AddressRequest
	if err := queryDecoder.Decode(&req, c.Request.URL.Query()); err != nil {
		_ = c.Error(err)
		return
	}

	response, err := h.addressService.Verify(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// VerifyAddresses godoc
// @Summary Verify a batch of street addresses
// @Description Body is a JSON array of free-text strings or field objects
// @Tags Addresses
// @Accept json
// @Produce json
// @Param raw query bool false "Include the untransformed response"
// @Success 200 {object} models.Response
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/street-address [post]
func (h *AddressHandler) VerifyAddresses(c *gin.Context) {
	var items []any
	if err := c.ShouldBindJSON(&items); err != nil {
		_ = c.Error(invalidBody(err))
		return
	}

	response, err := h.addressService.VerifyBatch(c.Request.Context(), items, includeRaw(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// LookupZipcode godoc
// @Summary Look up cities, states and ZIP codes
// @Tags ZIP codes
// @Produce json
// @Param city query string false "City"
// @Param state query string false "State"
// @Param zipcode query string false "ZIP code"
// @Success 200 {object} models.Response
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/zipcode [get]
func (h *AddressHandler) LookupZipcode(c *gin.Context) {
	var req models.ZipcodeRequest
	if err := queryDecoder.Decode(&req, c.Request.URL.Query()); err != nil {
		_ = c.Error(err)
		return
	}

	response, err := h.addressService.LookupZipcode(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// LookupZipcodes godoc
// @Summary Look up a batch of city/state/ZIP queries
// @Tags ZIP codes
// @Accept json
// @Produce json
// @Success 200 {object} models.Response
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/zipcode [post]
func (h *AddressHandler) LookupZipcodes(c *gin.Context) {
	var items []map[string]any
	if err := c.ShouldBindJSON(&items); err != nil {
		_ = c.Error(invalidBody(err))
		return
	}

	response, err := h.addressService.LookupZipcodes(c.Request.Context(), items, includeRaw(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// Suggest godoc
// @Summary Autocomplete a partial address
// @Tags Addresses
// @Produce json
// @Param prefix query string true "Partial address"
// @Param city_filter query string false "Comma separated cities"
// @Param state_filter query string false "Comma separated states"
// @Success 200 {object} models.Response
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/suggest [get]
func (h *AddressHandler) Suggest(c *gin.Context) {
	var req models.SuggestRequest
	if err := queryDecoder.Decode(&req, c.Request.URL.Query()); err != nil {
		_ = c.Error(err)
		return
	}

	response, err := h.addressService.Suggest(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, response)
}

func includeRaw(c *gin.Context) bool {
	return c.Query("raw") == "true"
}

func invalidBody(err error) error {
	return apperrors.NewBadRequest(apperrors.MsgInvalidParameters, err)
}
