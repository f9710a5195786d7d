package routes

import (
	"ClinicRecords/config"
	"ClinicRecords/database"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testBearerToken = "test-bearer-token"

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := database.RunMigrations(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	cfg := &config.AppConfig{BearerToken: testBearerToken}
	return SetupRoutes(nil, cfg, db)
}

func doRequest(t *testing.T, handler http.Handler, method, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.Header.Set("Authorization", "Bearer "+testBearerToken)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestIndexReportsInitialization(t *testing.T) {
	srv := newTestServer(t)

	w := doRequest(t, srv, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decodeJSON(t, w)["initialized"])

	w = doRequest(t, srv, http.MethodPost, "/create-tables", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeJSON(t, w)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "Database initialized with sample data!", body["message"])

	w = doRequest(t, srv, http.MethodGet, "/", nil)
	assert.Equal(t, true, decodeJSON(t, w)["initialized"])
}

func TestQueryTablesEndpoint(t *testing.T) {
	srv := newTestServer(t)
	doRequest(t, srv, http.MethodPost, "/create-tables", nil)

	// The selector defaults to person, the search term to empty.
	w := doRequest(t, srv, http.MethodGet, "/query-tables", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeJSON(t, w)["data"].([]interface{})
	assert.Len(t, data, 5)

	w = doRequest(t, srv, http.MethodGet, "/query-tables?table=patient&search=toronto", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	data = decodeJSON(t, w)["data"].([]interface{})
	if assert.Len(t, data, 2) {
		first := data[0].(map[string]interface{})
		assert.Contains(t, []interface{}{"John Doe", "Jane Smith"}, first["name"])
	}

	w = doRequest(t, srv, http.MethodGet, "/query-tables?table=billing", nil)
	data = decodeJSON(t, w)["data"].([]interface{})
	if assert.Len(t, data, 3) {
		amounts := make([]interface{}, 0, 3)
		for _, row := range data {
			amounts = append(amounts, row.(map[string]interface{})["amount"])
		}
		assert.ElementsMatch(t, []interface{}{"150.00", "200.00", "175.00"}, amounts)
	}

	// Unknown selectors yield an empty data array, not an error.
	w = doRequest(t, srv, http.MethodGet, "/query-tables?table=bogus", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeJSON(t, w)["data"])
}

func TestDropTablesEndpoint(t *testing.T) {
	srv := newTestServer(t)
	doRequest(t, srv, http.MethodPost, "/create-tables", nil)

	w := doRequest(t, srv, http.MethodPost, "/drop-tables", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "All tables dropped successfully!", decodeJSON(t, w)["message"])

	w = doRequest(t, srv, http.MethodGet, "/", nil)
	assert.Equal(t, false, decodeJSON(t, w)["initialized"])
}

func TestMutationsRejectWrongMethod(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/create-tables", "/drop-tables", "/add-person"} {
		w := doRequest(t, srv, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code, path)
		assert.Equal(t, "error", decodeJSON(t, w)["status"], path)
	}

	// No side effects: the store is still uninitialized.
	w := doRequest(t, srv, http.MethodGet, "/", nil)
	assert.Equal(t, false, decodeJSON(t, w)["initialized"])
}

func TestAddAndDeletePerson(t *testing.T) {
	srv := newTestServer(t)

	form := url.Values{}
	form.Set("first_name", "Alice")
	form.Set("last_name", "Walker")
	form.Set("email", "alice.walker@email.com")
	form.Set("phone_number", "416-555-0300")
	w := doRequest(t, srv, http.MethodPost, "/add-person", form)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Person added successfully!", decodeJSON(t, w)["message"])

	w = doRequest(t, srv, http.MethodGet, "/query-tables?table=person&search=walker", nil)
	data := decodeJSON(t, w)["data"].([]interface{})
	assert.Len(t, data, 1)

	// Required fields are enforced.
	w = doRequest(t, srv, http.MethodPost, "/add-person", url.Values{"first_name": {"OnlyFirst"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Deleting an unknown person is a distinct not-found condition.
	w = doRequest(t, srv, http.MethodPost, "/delete-person/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Person not found", decodeJSON(t, w)["message"])

	w = doRequest(t, srv, http.MethodPost, "/delete-person/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Person deleted successfully!", decodeJSON(t, w)["message"])

	w = doRequest(t, srv, http.MethodGet, "/", nil)
	assert.Equal(t, false, decodeJSON(t, w)["initialized"])
}

func TestPhoneNumberEndpoints(t *testing.T) {
	srv := newTestServer(t)
	doRequest(t, srv, http.MethodPost, "/create-tables", nil)

	form := url.Values{"phone_number": {"905-555-0102"}}
	w := doRequest(t, srv, http.MethodPost, "/persons/2/phone-numbers", form)
	assert.Equal(t, http.StatusOK, w.Code)

	// Re-adding the same pair conflicts.
	w = doRequest(t, srv, http.MethodPost, "/persons/2/phone-numbers", form)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doRequest(t, srv, http.MethodGet, "/persons/2/phone-numbers", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeJSON(t, w)["data"], 2)

	w = doRequest(t, srv, http.MethodPost, "/persons/77/phone-numbers", form)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestManageRecordsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	w := doRequest(t, srv, http.MethodGet, "/manage", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeJSON(t, w)["tables"], 7)
}

func TestMissingBearerTokenIsRejected(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
