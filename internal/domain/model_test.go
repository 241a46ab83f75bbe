package domain

import (
	"testing"
	"time"
)

func TestPageParamsNormalize(t *testing.T) {
	tests := []struct {
		name     string
		in       PageParams
		wantPage int
		wantSize int
	}{
		{"defaults", PageParams{}, DefaultPageNumber, DefaultPageSize},
		{"negative page", PageParams{PageNumber: -3, PageSize: 10}, DefaultPageNumber, 10},
		{"oversized clamped", PageParams{PageNumber: 2, PageSize: 500}, 2, MaxPageSize},
		{"in range untouched", PageParams{PageNumber: 4, PageSize: 25}, 4, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()
			if got.PageNumber != tt.wantPage || got.PageSize != tt.wantSize {
				t.Errorf("Normalize() = %+v, want page %d size %d", got, tt.wantPage, tt.wantSize)
			}
		})
	}
}

func TestEntityBaseSoftDelete(t *testing.T) {
	var e EntityBase
	if e.IsDeleted() {
		t.Fatal("new entity reported deleted")
	}

	now := time.Now()
	e.MarkDeleted(now)

	if !e.IsDeleted() {
		t.Error("MarkDeleted did not set the flag")
	}
	if !e.LastModified.Equal(now) {
		t.Errorf("LastModified = %v, want %v", e.LastModified, now)
	}
}
