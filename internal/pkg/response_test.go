package pkg

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/somosmas/ong-api/internal/domain"
)

func TestErrorWritesEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"not found", domain.NewAppError(domain.CodeNotFound, "news with id(9) does not exist", nil), http.StatusNotFound, "news with id(9) does not exist"},
		{"invalid state", domain.ErrInvalidState, http.StatusBadRequest, "invalid state"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "forbidden"},
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			Error(c, tt.err)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}

			var resp Response
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("unmarshal response: %v", err)
			}
			if resp.Code != tt.wantStatus {
				t.Errorf("envelope code = %d, want %d", resp.Code, tt.wantStatus)
			}
			if resp.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", resp.Message, tt.wantMsg)
			}
		})
	}
}

func TestErrorSurfacesCause(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Error(c, domain.NewAppError(domain.CodeInternal, "database error", errDriver{}))

	var resp Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(resp.Errors) != 1 || resp.Errors[0] != "constraint failed" {
		t.Errorf("Errors = %v, want the wrapped cause", resp.Errors)
	}
}

type errDriver struct{}

func (errDriver) Error() string { return "constraint failed" }

func TestSuccessWithWarnings(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	SuccessWithWarnings(c, gin.H{"id": 1}, []string{"welcome email could not be delivered"})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(resp.Errors) != 1 {
		t.Errorf("Errors = %v, want one warning", resp.Errors)
	}
	if resp.Data == nil {
		t.Error("Data missing on success with warnings")
	}
}

func TestBindAndValidateUsesJSONTagNames(t *testing.T) {
	gin.SetMode(gin.TestMode)

	type body struct {
		FirstName string `json:"first_name" binding:"required"`
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/api/v1/auth/register", strings.NewReader(`{}`))
	c.Request.Header.Set("Content-Type", "application/json")

	var req body
	if BindAndValidate(c, &req) {
		t.Fatal("BindAndValidate accepted an invalid body")
	}
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var resp ValidationErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if _, ok := resp.Errors["first_name"]; !ok {
		t.Errorf("validation errors keyed by %v, want json tag name first_name", resp.Errors)
	}
}
