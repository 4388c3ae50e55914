package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dmitrijs2005/reportvault/internal/common"
	"github.com/dmitrijs2005/reportvault/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleCreateLocation(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	body := `{
		"name": "Downtown Hall",
		"phoneNumber": 5551234567,
		"street1": "1 Main St",
		"city": "Springfield",
		"state": "IL",
		"zip": "62701",
		"accessible": true
	}`
	req := httptest.NewRequest(http.MethodPost, "/location/create", strings.NewReader(body))
	req.AddCookie(env.sessionCookie(t, "u1"))
	w := env.do(req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"msg":"Location created!"}`, w.Body.String())

	require.NotNil(t, env.locations.created)
	assert.Equal(t, "Downtown Hall", env.locations.created.Name)
}

func TestHandleCreateLocationInvalid(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/location/create", strings.NewReader(`{"name":"No Address"}`))
	req.AddCookie(env.sessionCookie(t, "u1"))
	w := env.do(req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Errors []string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Errors, "street1 is required")
	assert.Nil(t, env.locations.created)
}

func TestHandleLocationByID(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.locations.getOut = &models.Location{ID: "l1", Name: "Downtown Hall"}

	req := httptest.NewRequest(http.MethodPost, "/location/read", strings.NewReader(`{"locationId":"l1"}`))
	req.AddCookie(env.sessionCookie(t, "u1"))
	w := env.do(req)

	require.Equal(t, http.StatusOK, w.Code)

	var got models.Location
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Downtown Hall", got.Name)
}

func TestHandleLocationByIDNotFound(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.locations.getErr = common.ErrorNotFound

	req := httptest.NewRequest(http.MethodPost, "/location/read", strings.NewReader(`{"locationId":"missing"}`))
	req.AddCookie(env.sessionCookie(t, "u1"))
	w := env.do(req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"msg":"Location not found"}`, w.Body.String())
}

func TestHandleListLocations(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.locations.listOut = []*models.Location{
		{ID: "l1", Name: "Downtown Hall"},
		{ID: "l2", Name: "Riverside Annex"},
	}

	req := httptest.NewRequest(http.MethodPost, "/locations/read", nil)
	req.AddCookie(env.sessionCookie(t, "u1"))
	w := env.do(req)

	require.Equal(t, http.StatusOK, w.Code)

	var got []*models.Location
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Riverside Annex", got[1].Name)
}
