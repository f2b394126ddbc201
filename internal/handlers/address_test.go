package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartystreets-api/internal/middleware"
	"smartystreets-api/internal/services"
	"smartystreets-api/internal/validators"
	"smartystreets-api/pkg/logger"
	"smartystreets-api/pkg/smartystreets"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.InitLogger(io.Discard, "ERROR")
	os.Exit(m.Run())
}

type fakeClient struct {
	input      smartystreets.Input
	lookup     smartystreets.Lookup
	suggestion smartystreets.Suggestion
	result     *smartystreets.Result
	err        error
}

func (f *fakeClient) VerifyAddress(_ context.Context, in smartystreets.Input) (*smartystreets.Result, error) {
	f.input = in
	return f.result, f.err
}

func (f *fakeClient) LookupZipcode(_ context.Context, l smartystreets.Lookup) (*smartystreets.Result, error) {
	f.lookup = l
	return f.result, f.err
}

func (f *fakeClient) SuggestAddress(_ context.Context, s smartystreets.Suggestion) (*smartystreets.Result, error) {
	f.suggestion = s
	return f.result, f.err
}

func setupRouter(client *fakeClient) *gin.Engine {
	service := services.NewAddressService(client, validators.NewAddressValidator())
	handler := NewAddressHandler(service)

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	v1 := r.Group("/api/v1")
	v1.GET("/street-address", handler.VerifyAddress)
	v1.POST("/street-address", handler.VerifyAddresses)
	v1.GET("/zipcode", handler.LookupZipcode)
	v1.POST("/zipcode", handler.LookupZipcodes)
	v1.GET("/suggest", handler.Suggest)
	return r
}

func okResult() *smartystreets.Result {
	return &smartystreets.Result{
		Data:       []any{map[string]any{"deliveryLine1": "1 Main St"}},
		Raw:        []any{map[string]any{"delivery_line_1": "1 Main St"}},
		StatusCode: http.StatusOK,
	}
}

func serve(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestVerifyAddressFreeText(t *testing.T) {
	client := &fakeClient{result: okResult()}
	w := serve(setupRouter(client), http.MethodGet, "/api/v1/street-address?address=1+Main+St,+Boston,+MA&raw=true", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, smartystreets.Text("1 Main St, Boston, MA"), client.input)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "1 Main St", body["data"].([]any)[0].(map[string]any)["deliveryLine1"])
	assert.Contains(t, body, "raw")
}

func TestVerifyAddressFields(t *testing.T) {
	client := &fakeClient{result: okResult()}
	w := serve(setupRouter(client), http.MethodGet, "/api/v1/street-address?street=1+Main+St&city=Boston&state=MA&candidates=3&unknown=x", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, smartystreets.Address{Street: "1 Main St", City: "Boston", State: "MA", Candidates: 3}, client.input)
	assert.NotContains(t, w.Body.String(), `"raw"`)
}

func TestVerifyAddressValidation(t *testing.T) {
	client := &fakeClient{result: okResult()}
	r := setupRouter(client)

	for _, target := range []string{
		"/api/v1/street-address?city=Boston",
		"/api/v1/street-address?street=1+Main&candidates=50",
		"/api/v1/street-address?street=1+Main&candidates=many",
		"/api/v1/street-address?street=1+Main&match=loose",
	} {
		w := serve(r, http.MethodGet, target, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
	}
	assert.Nil(t, client.input)
}

func TestVerifyAddressesBatch(t *testing.T) {
	client := &fakeClient{result: okResult()}
	w := serve(setupRouter(client), http.MethodPost, "/api/v1/street-address",
		`["1 Main St, Boston, MA", {"street": "2 Elm St", "zipCode": "02101"}]`)

	require.Equal(t, http.StatusOK, w.Code)
	list, ok := client.input.(smartystreets.List)
	require.True(t, ok)
	require.Len(t, list, 2)
	assert.Equal(t, smartystreets.Text("1 Main St, Boston, MA"), list[0])
	assert.Equal(t, smartystreets.Fields{"street": "2 Elm St", "zipCode": "02101"}, list[1])
}

func TestVerifyAddressesRejectsBadBodies(t *testing.T) {
	r := setupRouter(&fakeClient{result: okResult()})

	assert.Equal(t, http.StatusBadRequest, serve(r, http.MethodPost, "/api/v1/street-address", `[]`).Code)
	assert.Equal(t, http.StatusBadRequest, serve(r, http.MethodPost, "/api/v1/street-address", `[42]`).Code)
	assert.Equal(t, http.StatusBadRequest, serve(r, http.MethodPost, "/api/v1/street-address", `{"street":"x"}`).Code)
}

func TestLookupZipcode(t *testing.T) {
	client := &fakeClient{result: okResult()}
	r := setupRouter(client)

	w := serve(r, http.MethodGet, "/api/v1/zipcode?city=Denver&state=CO", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, smartystreets.Query{"city": "Denver", "state": "CO"}, client.lookup)

	w = serve(r, http.MethodGet, "/api/v1/zipcode?state=CO", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = serve(r, http.MethodPost, "/api/v1/zipcode", `[{"zipcode":"90210"},{"city":"Denver","state":"CO"}]`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, smartystreets.QueryList{{"zipcode": "90210"}, {"city": "Denver", "state": "CO"}}, client.lookup)
}

func TestSuggest(t *testing.T) {
	client := &fakeClient{result: &smartystreets.Result{Data: []any{map[string]any{"text": "123 Main St"}}}}
	r := setupRouter(client)

	w := serve(r, http.MethodGet, "/api/v1/suggest?prefix=123+mai&state_filter=CO&suggestions=5", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, smartystreets.Query{"prefix": "123 mai", "state_filter": "CO", "suggestions": 5}, client.suggestion)

	client.suggestion = nil
	w = serve(r, http.MethodGet, "/api/v1/suggest?city_filter=Denver", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, client.suggestion)
}

func TestUpstreamErrorsAreMapped(t *testing.T) {
	client := &fakeClient{err: &smartystreets.Error{Kind: smartystreets.KindTransport, Message: "connection refused"}}
	w := serve(setupRouter(client), http.MethodGet, "/api/v1/street-address?street=1+Main", "")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "SERVICE_UNAVAILABLE")
	assert.NotContains(t, w.Body.String(), "connection refused")
}
