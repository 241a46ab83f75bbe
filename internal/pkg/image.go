package pkg

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/somosmas/ong-api/internal/domain"
)

// UploadImage decodes a base64 image payload and stores it, returning the
// public URL. The payload may carry a data URL prefix
// ("data:image/png;base64,...") which determines the content type; without
// one, image/jpeg is assumed. An empty payload yields an empty URL, and a
// payload that is already an http(s) URL is passed through untouched.
func UploadImage(ctx context.Context, images domain.ImageStore, keyPrefix, encoded string) (string, error) {
	encoded = strings.TrimSpace(encoded)
	if encoded == "" {
		return "", nil
	}
	if strings.HasPrefix(encoded, "http://") || strings.HasPrefix(encoded, "https://") {
		return encoded, nil
	}

	contentType := "image/jpeg"
	if strings.HasPrefix(encoded, "data:") {
		meta, rest, ok := strings.Cut(encoded, ",")
		if !ok {
			return "", domain.NewAppError(domain.CodeInvalidState, "malformed image data", nil)
		}
		meta = strings.TrimPrefix(meta, "data:")
		meta = strings.TrimSuffix(meta, ";base64")
		if meta != "" {
			contentType = meta
		}
		encoded = rest
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", domain.NewAppError(domain.CodeInvalidState, "image is not valid base64", err)
	}

	key := fmt.Sprintf("%s/%d%s", keyPrefix, time.Now().UnixNano(), extensionFor(contentType))
	url, err := images.Upload(ctx, key, bytes.NewReader(data), contentType)
	if err != nil {
		return "", domain.NewAppError(domain.CodeInternal, "image upload failed", err)
	}
	return url, nil
}

// ReplaceImage uploads a new image and best-effort deletes the previous
// object. An empty payload keeps the current URL.
func ReplaceImage(ctx context.Context, images domain.ImageStore, keyPrefix, currentURL, encoded string) (string, error) {
	if strings.TrimSpace(encoded) == "" {
		return currentURL, nil
	}

	url, err := UploadImage(ctx, images, keyPrefix, encoded)
	if err != nil {
		return "", err
	}
	if currentURL != "" && currentURL != url {
		_ = images.Delete(ctx, currentURL)
	}
	return url, nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}
