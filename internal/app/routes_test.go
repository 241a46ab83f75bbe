package app

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type stubModule struct{}

func (stubModule) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
}

func newTestEngine(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	if err := RegisterRoutes(r, &RouteDeps{Modules: []Module{stubModule{}}, DB: db}); err != nil {
		t.Fatalf("register routes: %v", err)
	}
	return r
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func TestHealthEndpoint(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		r := newTestEngine(t, openTestDB(t))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		var body struct {
			Status     string            `json:"status"`
			Components map[string]string `json:"components"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatal(err)
		}
		if body.Status != "ok" || body.Components["database"] != "ok" {
			t.Errorf("body = %+v", body)
		}
	})

	t.Run("nil database degrades", func(t *testing.T) {
		r := newTestEngine(t, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("status = %d, want 503", w.Code)
		}
	})
}

func TestModuleRoutesAreGrouped(t *testing.T) {
	r := newTestEngine(t, openTestDB(t))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/ping", nil))
	if w.Code != http.StatusOK || w.Body.String() != "pong" {
		t.Errorf("status %d body %q", w.Code, w.Body.String())
	}
}

func TestNoRouteIsJSON(t *testing.T) {
	r := newTestEngine(t, openTestDB(t))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/nowhere", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	var body struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("body %q is not JSON: %v", w.Body.String(), err)
	}
	if body.Code != http.StatusNotFound || body.Message != "not found" {
		t.Errorf("body = %+v", body)
	}
}

func TestRegisterRoutesValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name string
		r    *gin.Engine
		deps *RouteDeps
	}{
		{"nil router", nil, &RouteDeps{Modules: []Module{stubModule{}}}},
		{"nil deps", gin.New(), nil},
		{"no modules", gin.New(), &RouteDeps{}},
		{"nil module", gin.New(), &RouteDeps{Modules: []Module{nil}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := RegisterRoutes(tt.r, tt.deps); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
