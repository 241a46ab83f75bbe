package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/somosmas/ong-api/internal/domain"
)

// Store hands out request-scoped units of work over a shared database handle.
type Store struct {
	db *gorm.DB
}

// NewStore creates a Store over the given database.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// NewUnitOfWork opens a transaction and returns a UnitOfWork bound to it.
// The caller must finish with SaveChanges or Rollback; deferring Rollback
// after a successful SaveChanges is a no-op.
func (s *Store) NewUnitOfWork() *UnitOfWork {
	tx := s.db.Begin()
	return &UnitOfWork{tx: tx, beginErr: tx.Error}
}

// UnitOfWork aggregates one repository handle per entity type, all sharing a
// single transactional session. Changes staged through any of its
// repositories become durable together on SaveChanges, or not at all.
type UnitOfWork struct {
	tx       *gorm.DB
	beginErr error
	done     bool

	organizations *Repository[domain.Organization]
	news          *Repository[domain.News]
	activities    *Repository[domain.Activity]
	categories    *Repository[domain.Category]
	comments      *Repository[domain.Comment]
	members       *Repository[domain.Member]
	testimonials  *Repository[domain.Testimonial]
	slides        *Repository[domain.Slide]
	contacts      *Repository[domain.Contact]
	users         *Repository[domain.User]
	roles         *Repository[domain.Role]
}

// Organizations returns the organization repository for this session.
func (u *UnitOfWork) Organizations() *Repository[domain.Organization] {
	if u.organizations == nil {
		u.organizations = New[domain.Organization](u.tx)
	}
	return u.organizations
}

// News returns the news repository for this session.
func (u *UnitOfWork) News() *Repository[domain.News] {
	if u.news == nil {
		u.news = New[domain.News](u.tx)
	}
	return u.news
}

// Activities returns the activity repository for this session.
func (u *UnitOfWork) Activities() *Repository[domain.Activity] {
	if u.activities == nil {
		u.activities = New[domain.Activity](u.tx)
	}
	return u.activities
}

// Categories returns the category repository for this session.
func (u *UnitOfWork) Categories() *Repository[domain.Category] {
	if u.categories == nil {
		u.categories = New[domain.Category](u.tx)
	}
	return u.categories
}

// Comments returns the comment repository for this session.
func (u *UnitOfWork) Comments() *Repository[domain.Comment] {
	if u.comments == nil {
		u.comments = New[domain.Comment](u.tx)
	}
	return u.comments
}

// Members returns the member repository for this session.
func (u *UnitOfWork) Members() *Repository[domain.Member] {
	if u.members == nil {
		u.members = New[domain.Member](u.tx)
	}
	return u.members
}

// Testimonials returns the testimonial repository for this session.
func (u *UnitOfWork) Testimonials() *Repository[domain.Testimonial] {
	if u.testimonials == nil {
		u.testimonials = New[domain.Testimonial](u.tx)
	}
	return u.testimonials
}

// Slides returns the slide repository for this session.
func (u *UnitOfWork) Slides() *Repository[domain.Slide] {
	if u.slides == nil {
		u.slides = New[domain.Slide](u.tx)
	}
	return u.slides
}

// Contacts returns the contact repository for this session.
func (u *UnitOfWork) Contacts() *Repository[domain.Contact] {
	if u.contacts == nil {
		u.contacts = New[domain.Contact](u.tx)
	}
	return u.contacts
}

// Users returns the user repository for this session.
func (u *UnitOfWork) Users() *Repository[domain.User] {
	if u.users == nil {
		u.users = New[domain.User](u.tx)
	}
	return u.users
}

// Roles returns the role repository for this session.
func (u *UnitOfWork) Roles() *Repository[domain.Role] {
	if u.roles == nil {
		u.roles = New[domain.Role](u.tx)
	}
	return u.roles
}

// Err surfaces a failure to open the underlying transaction.
func (u *UnitOfWork) Err() error {
	if u.beginErr != nil {
		return domain.NewAppError(domain.CodeInternal, "begin transaction", u.beginErr)
	}
	return nil
}

// SaveChanges commits every staged operation atomically. On failure the
// session's changes are discarded and the error is surfaced; no partial
// commit is ever exposed.
func (u *UnitOfWork) SaveChanges(ctx context.Context) error {
	if u.beginErr != nil {
		return u.Err()
	}
	if u.done {
		return domain.NewAppError(domain.CodeInternal, "unit of work already finished", nil)
	}
	u.done = true
	if err := u.tx.WithContext(ctx).Commit().Error; err != nil {
		return domain.NewAppError(domain.CodeInternal, "commit failed", err)
	}
	return nil
}

// Rollback discards all staged changes. Safe to call after SaveChanges.
func (u *UnitOfWork) Rollback() {
	if u.beginErr != nil || u.done {
		return
	}
	u.done = true
	if err := u.tx.Rollback().Error; err != nil && !errors.Is(err, gorm.ErrInvalidTransaction) {
		_ = err // session is gone either way
	}
}
