package pkg

import (
	"fmt"
	"math"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/somosmas/ong-api/internal/domain"
)

// ParsePageParams extracts pagination parameters from the query string.
// PageNumber defaults to 1; PageSize defaults to 10 and is silently clamped
// to 50. Malformed values fall back to the defaults.
func ParsePageParams(c *gin.Context) domain.PageParams {
	page, _ := strconv.Atoi(c.DefaultQuery("PageNumber", strconv.Itoa(domain.DefaultPageNumber)))
	size, _ := strconv.Atoi(c.DefaultQuery("PageSize", strconv.Itoa(domain.DefaultPageSize)))

	return domain.PageParams{PageNumber: page, PageSize: size}.Normalize()
}

// RequestBaseURL rebuilds the absolute URL of the current request without its
// query string: {scheme}://{host}{path}. Handlers thread it into services so
// paged responses can carry navigation links without touching ambient request
// state.
func RequestBaseURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s%s", scheme, c.Request.Host, c.Request.URL.Path)
}

// PagedResponse wraps one page of items with navigation metadata. It is built
// fresh per request and never cached.
type PagedResponse[T any] struct {
	Items        []T    `json:"items"`
	PageNumber   int    `json:"page_number"`
	TotalPages   int    `json:"total_pages"`
	PageSize     int    `json:"page_size"`
	TotalCount   int64  `json:"total_count"`
	NextPage     string `json:"next_page,omitempty"`
	PreviousPage string `json:"previous_page,omitempty"`
}

// HasNext reports whether a page exists after the current one.
func (p *PagedResponse[T]) HasNext() bool {
	return p.PageNumber < p.TotalPages
}

// HasPrevious reports whether a page exists before the current one.
func (p *PagedResponse[T]) HasPrevious() bool {
	return p.PageNumber > 1 && p.PageNumber <= p.TotalPages
}

// NewPagedResponse creates a PagedResponse for the given page slice.
// total counts all matching active rows independent of the page.
// Navigation URLs take the form {baseURL}?PageNumber={n}&PageSize={s} and
// are omitted at the edges.
func NewPagedResponse[T any](items []T, total int64, params domain.PageParams, baseURL string) *PagedResponse[T] {
	if items == nil {
		items = []T{}
	}

	resp := &PagedResponse[T]{
		Items:      items,
		PageNumber: params.PageNumber,
		PageSize:   params.PageSize,
		TotalPages: int(math.Ceil(float64(total) / float64(params.PageSize))),
		TotalCount: total,
	}

	if resp.HasNext() {
		resp.NextPage = pageURL(baseURL, params.PageNumber+1, params.PageSize)
	}
	if resp.HasPrevious() {
		resp.PreviousPage = pageURL(baseURL, params.PageNumber-1, params.PageSize)
	}

	return resp
}

func pageURL(baseURL string, page, size int) string {
	return fmt.Sprintf("%s?PageNumber=%d&PageSize=%d", baseURL, page, size)
}
