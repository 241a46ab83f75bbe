package pkg

import (
	"math"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/somosmas/ong-api/internal/domain"
)

func TestParsePageParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		query    string
		wantPage int
		wantSize int
	}{
		{"defaults", "", 1, 10},
		{"explicit", "?PageNumber=3&PageSize=20", 3, 20},
		{"clamped size", "?PageSize=999", 1, 50},
		{"malformed falls back", "?PageNumber=abc&PageSize=-1", 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/api/v1/news"+tt.query, nil)

			got := ParsePageParams(c)
			if got.PageNumber != tt.wantPage || got.PageSize != tt.wantSize {
				t.Errorf("ParsePageParams() = %+v, want page %d size %d", got, tt.wantPage, tt.wantSize)
			}
		})
	}
}

func TestRequestBaseURL(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "http://api.example.org/api/v1/news?PageNumber=2", nil)

	if got, want := RequestBaseURL(c), "http://api.example.org/api/v1/news"; got != want {
		t.Errorf("RequestBaseURL() = %q, want %q", got, want)
	}
}

func TestNewPagedResponse(t *testing.T) {
	const base = "http://localhost/api/v1/news"

	tests := []struct {
		name     string
		total    int64
		page     int
		size     int
		wantNext string
		wantPrev string
	}{
		{"middle page", 50, 2, 10, base + "?PageNumber=3&PageSize=10", base + "?PageNumber=1&PageSize=10"},
		{"first page", 50, 1, 10, base + "?PageNumber=2&PageSize=10", ""},
		{"last page", 50, 5, 10, "", base + "?PageNumber=4&PageSize=10"},
		{"single page", 7, 1, 10, "", ""},
		{"beyond data", 10, 4, 10, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := domain.PageParams{PageNumber: tt.page, PageSize: tt.size}
			resp := NewPagedResponse([]int{1}, tt.total, params, base)

			wantPages := int(math.Ceil(float64(tt.total) / float64(tt.size)))
			if resp.TotalPages != wantPages {
				t.Errorf("TotalPages = %d, want %d", resp.TotalPages, wantPages)
			}
			if resp.TotalCount != tt.total {
				t.Errorf("TotalCount = %d, want %d", resp.TotalCount, tt.total)
			}
			if resp.NextPage != tt.wantNext {
				t.Errorf("NextPage = %q, want %q", resp.NextPage, tt.wantNext)
			}
			if resp.PreviousPage != tt.wantPrev {
				t.Errorf("PreviousPage = %q, want %q", resp.PreviousPage, tt.wantPrev)
			}
			if resp.HasNext() != (resp.PageNumber < resp.TotalPages) {
				t.Error("HasNext() disagrees with page arithmetic")
			}
		})
	}
}

func TestNewPagedResponseNilItems(t *testing.T) {
	resp := NewPagedResponse[int](nil, 0, domain.PageParams{PageNumber: 1, PageSize: 10}, "http://x/y")
	if resp.Items == nil {
		t.Error("Items is nil, want empty slice for stable JSON")
	}
}
