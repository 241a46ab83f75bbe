package domain

import "time"

// EntityBase is the common base struct for all domain entities.
// Deletion is always logical: workflows set SoftDelete instead of removing
// rows, so every record stays available for auditing.
type EntityBase struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	LastModified time.Time `json:"last_modified"`
	SoftDelete   bool      `gorm:"default:false" json:"-"`
}

// EntityID returns the primary key.
func (e *EntityBase) EntityID() uint { return e.ID }

// IsDeleted reports whether the entity has been logically deleted.
func (e *EntityBase) IsDeleted() bool { return e.SoftDelete }

// MarkDeleted sets the soft-delete flag and stamps the modification time.
func (e *EntityBase) MarkDeleted(now time.Time) {
	e.SoftDelete = true
	e.LastModified = now
}

// Touch stamps the modification time.
func (e *EntityBase) Touch(now time.Time) { e.LastModified = now }

// Record is the capability bound shared by all entities. Generic service
// code depends on it instead of concrete entity types.
type Record interface {
	EntityID() uint
	IsDeleted() bool
	MarkDeleted(now time.Time)
	Touch(now time.Time)
}

// Pagination limits mirror the public query contract:
// PageNumber >= 1, PageSize defaulting to 10 and silently clamped to 50.
const (
	DefaultPageNumber = 1
	DefaultPageSize   = 10
	MaxPageSize       = 50
)

// PageParams holds validated pagination input for list queries.
type PageParams struct {
	PageNumber int
	PageSize   int
}

// Normalize clamps the parameters into their valid ranges.
func (p PageParams) Normalize() PageParams {
	if p.PageNumber < 1 {
		p.PageNumber = DefaultPageNumber
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}
