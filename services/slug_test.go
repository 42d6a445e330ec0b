package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name  string
		title string
		want  string
	}{
		{"simple title", "Hello World", "hello-world"},
		{"already a slug", "hello-world", "hello-world"},
		{"punctuation dropped", "What's new? (2026 edition)", "whats-new-2026-edition"},
		{"collapses separators", "a  -  b__c/d", "a-b-c-d"},
		{"leading and trailing junk", "  --Hello--  ", "hello"},
		{"digits kept", "Top 10 Tips", "top-10-tips"},
		{"empty input", "", ""},
		{"only punctuation", "???", ""},
		{"accents transliterated", "Café Crème", "cafe-creme"},
		{"umlauts transliterated", "Über Fahrer", "uber-fahrer"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Slugify(tc.title))
		})
	}
}

func TestUniqueSlug(t *testing.T) {
	t.Run("returns base when free", func(t *testing.T) {
		slug, err := UniqueSlug("my-post", func(string) (bool, error) {
			return false, nil
		})
		require.NoError(t, err)
		assert.Equal(t, "my-post", slug)
	})

	t.Run("appends counter until free", func(t *testing.T) {
		taken := map[string]bool{"my-post": true, "my-post-2": true}
		slug, err := UniqueSlug("my-post", func(candidate string) (bool, error) {
			return taken[candidate], nil
		})
		require.NoError(t, err)
		assert.Equal(t, "my-post-3", slug)
	})

	t.Run("empty base falls back to untitled", func(t *testing.T) {
		slug, err := UniqueSlug("", func(string) (bool, error) {
			return false, nil
		})
		require.NoError(t, err)
		assert.Equal(t, "untitled", slug)
	})

	t.Run("propagates lookup errors", func(t *testing.T) {
		_, err := UniqueSlug("my-post", func(string) (bool, error) {
			return false, assert.AnError
		})
		require.Error(t, err)
	})
}
