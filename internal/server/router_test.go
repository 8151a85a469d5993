package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"privatemarkets/internal/logger"
	"privatemarkets/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
}

func newTestRouter(t *testing.T, opts Options) *gin.Engine {
	t.Helper()
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })
	return NewRouter(NewServices(db), opts)
}

func serve(r *gin.Engine, method, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestNewRouter_Routes(t *testing.T) {
	r := newTestRouter(t, Options{})

	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{"health", http.MethodGet, "/health", http.StatusOK},
		{"list funds", http.MethodGet, "/funds", http.StatusOK},
		{"list investors", http.MethodGet, "/investors", http.StatusOK},
		{"fund id validated", http.MethodGet, "/funds/123", http.StatusBadRequest},
		{"investor id validated", http.MethodGet, "/investors/abc", http.StatusBadRequest},
		{"investment id validated", http.MethodGet, "/funds/0190a6f2-7c1e-7b3a-9f4e-2d6c8a1b3e5f/investments/xyz", http.StatusBadRequest},
		{"unknown investment", http.MethodGet, "/funds/0190a6f2-7c1e-7b3a-9f4e-2d6c8a1b3e5f/investments/0190a6f2-7c1e-7b3a-9f4e-2d6c8a1b3e61", http.StatusNotFound},
		{"unknown route", http.MethodGet, "/accounts", http.StatusNotFound},
		{"delete not routed", http.MethodDelete, "/funds", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(r, tt.method, tt.path, nil)
			if rec.Code != tt.want {
				t.Errorf("%s %s: expected %d, got %d (%s)", tt.method, tt.path, tt.want, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestNewRouter_Swagger(t *testing.T) {
	t.Run("disabled by default", func(t *testing.T) {
		r := newTestRouter(t, Options{})
		if rec := serve(r, http.MethodGet, "/swagger/doc.json", nil); rec.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("serves doc when enabled", func(t *testing.T) {
		r := newTestRouter(t, Options{EnableSwagger: true})
		if rec := serve(r, http.MethodGet, "/swagger/doc.json", nil); rec.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", rec.Code)
		}
	})
}

func TestNewRouter_CORSAndRequestID(t *testing.T) {
	r := newTestRouter(t, Options{CORSAllowedOrigins: []string{"http://localhost:5173"}})

	rec := serve(r, http.MethodGet, "/health", http.Header{"Origin": {"http://localhost:5173"}})
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("expected allowed origin header, got %q", got)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID on response")
	}

	rec = serve(r, http.MethodGet, "/health", http.Header{"Origin": {"http://evil.test"}})
	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403 for disallowed origin, got %d", rec.Code)
	}
}

func TestNewRouter_Tracing(t *testing.T) {
	r := newTestRouter(t, Options{ServiceName: "test", TracingEnabled: true})
	if rec := serve(r, http.MethodGet, "/health", nil); rec.Code != http.StatusOK {
		t.Errorf("expected 200 with tracing middleware, got %d", rec.Code)
	}
}
