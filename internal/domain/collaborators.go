package domain

import (
	"context"
	"io"
	"time"
)

// Subject is the authenticated caller derived from a verified token.
// It lives only for the duration of a request.
type Subject struct {
	UserID uint
	Role   string
}

// IsAdministrator reports whether the subject holds the Administrator role.
func (s Subject) IsAdministrator() bool { return s.Role == RoleAdministrator }

// ImageStore is the delegated object storage for uploaded images.
type ImageStore interface {
	// Upload stores the object under key and returns its public URL.
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
	// Delete removes the object identified by key or by its full URL.
	Delete(ctx context.Context, keyOrURL string) error
	// Get retrieves the object body. The caller must close the reader.
	Get(ctx context.Context, key string) (io.ReadCloser, error)
}

// EmailSender delivers templated transactional mail.
type EmailSender interface {
	SendTemplated(ctx context.Context, to, title, bodyHTML, contactHTML string) error
}

// TokenService issues and verifies the signed tokens that carry a Subject.
type TokenService interface {
	Generate(userID uint, role string, expiry time.Duration) (string, error)
	Parse(token string) (Subject, error)
}
