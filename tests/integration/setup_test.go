package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"privatemarkets/internal/logger"
	"privatemarkets/internal/server"
	"privatemarkets/internal/testutil"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
}

// setupApp creates the production router backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	router := server.NewRouter(server.NewServices(db), server.Options{
		ServiceName: "private-markets-api-test",
	})

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// parseJSONArray parses the response body into a slice.
func parseJSONArray(t *testing.T, rec *httptest.ResponseRecorder) []interface{} {
	t.Helper()
	var result []interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON array: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// createFund creates a fund through the API and returns its id.
func (app *testApp) createFund(t *testing.T, name string, target float64, status string) string {
	t.Helper()
	body := fmt.Sprintf(`{"name":%q,"vintage_year":2024,"target_size_usd":%v,"status":%q}`, name, target, status)
	rec := app.request(http.MethodPost, "/funds", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create fund failed: %d %s", rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)["id"].(string)
}

// createInvestor creates an investor through the API and returns its id.
func (app *testApp) createInvestor(t *testing.T, name, investorType, email string) string {
	t.Helper()
	body := fmt.Sprintf(`{"name":%q,"investor_type":%q,"email":%q}`, name, investorType, email)
	rec := app.request(http.MethodPost, "/investors", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create investor failed: %d %s", rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)["id"].(string)
}

// createInvestment records an investment through the API and returns its id.
func (app *testApp) createInvestment(t *testing.T, fundID, investorID string, amount float64, date string) string {
	t.Helper()
	body := fmt.Sprintf(`{"investor_id":%q,"amount_usd":%v,"investment_date":%q}`, investorID, amount, date)
	rec := app.request(http.MethodPost, "/funds/"+fundID+"/investments", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create investment failed: %d %s", rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)["id"].(string)
}

// assertError checks the status and error code of an error response.
func assertError(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) map[string]interface{} {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("expected %d, got %d: %s", status, rec.Code, rec.Body.String())
	}
	body := parseJSON(t, rec)
	if body["code"] != code {
		t.Errorf("expected code %s, got %v", code, body["code"])
	}
	return body
}
