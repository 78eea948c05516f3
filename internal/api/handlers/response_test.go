package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/court-booking/pkg/validation"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestRespondJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondJSON(rec, http.StatusCreated, "создано", map[string]int{"id": 7})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	resp := decode(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, "создано", resp.Message)
	assert.Equal(t, map[string]interface{}{"id": float64(7)}, resp.Data)
	assert.Empty(t, resp.Error)
}

func TestRespondErrors(t *testing.T) {
	tests := []struct {
		name    string
		respond func(w http.ResponseWriter)
		status  int
	}{
		{name: "bad request", respond: func(w http.ResponseWriter) { RespondBadRequest(w, "x") }, status: http.StatusBadRequest},
		{name: "not found", respond: func(w http.ResponseWriter) { RespondNotFound(w, "x") }, status: http.StatusNotFound},
		{name: "conflict", respond: func(w http.ResponseWriter) { RespondConflict(w, "x") }, status: http.StatusConflict},
		{name: "unprocessable", respond: func(w http.ResponseWriter) { RespondUnprocessable(w, "x") }, status: http.StatusUnprocessableEntity},
		{name: "internal", respond: RespondInternalError, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.respond(rec)

			assert.Equal(t, tt.status, rec.Code)
			resp := decode(t, rec)
			assert.False(t, resp.Success)
			assert.Equal(t, http.StatusText(tt.status), resp.Error)
			assert.Nil(t, resp.Data)
		})
	}
}

func TestRespondValidationError(t *testing.T) {
	verr := validation.NewError()
	verr.Add("customer_name", "The customer_name field is required.")

	rec := httptest.NewRecorder()
	RespondValidationError(rec, verr)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	resp := decode(t, rec)
	assert.Equal(t, []string{"The customer_name field is required."}, resp.Errors["customer_name"])
}

func TestDecodeJSON(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"A"}`))
	require.NoError(t, DecodeJSON(r, &v))
	assert.Equal(t, "A", v.Name)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	assert.ErrorIs(t, DecodeJSON(r, &v), ErrEmptyBody)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{"))
	assert.Error(t, DecodeJSON(r, &v))
}

func TestPathID(t *testing.T) {
	r := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"id": "42"})
	id, err := PathID(r, "id")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, raw := range []string{"abc", "0", "-3"} {
		r = mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"id": raw})
		_, err = PathID(r, "id")
		assert.Error(t, err, raw)
	}
}

func TestQueryParams(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?date=2026-10-20&court_id=3&all=true&bad=x", nil)

	assert.Equal(t, "2026-10-20", *QueryString(r, "date"))
	assert.Nil(t, QueryString(r, "status"))

	courtID, err := QueryInt64(r, "court_id")
	require.NoError(t, err)
	assert.Equal(t, int64(3), *courtID)

	missing, err := QueryInt64(r, "missing")
	require.NoError(t, err)
	assert.Nil(t, missing)

	_, err = QueryInt64(r, "bad")
	assert.Error(t, err)

	all, err := QueryBool(r, "all")
	require.NoError(t, err)
	assert.True(t, all)
}
