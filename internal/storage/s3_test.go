package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowedContentType(t *testing.T) {
	allowed := []string{
		"image/jpeg", "image/png", "image/gif", "image/webp",
		"application/pdf", "application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		"video/mp4", "video/mpeg",
		"image/png; charset=binary",
	}
	for _, ct := range allowed {
		assert.True(t, AllowedContentType(ct), ct)
	}

	denied := []string{
		"application/zip", "text/html", "application/x-sh",
		"image/svg+xml", "video/quicktime", "", "not a mime type at all//",
	}
	for _, ct := range denied {
		assert.False(t, AllowedContentType(ct), ct)
	}
}

func TestObjectKey(t *testing.T) {
	k1 := ObjectKey("uploads", "Annual Report.PDF")
	k2 := ObjectKey("uploads", "Annual Report.PDF")

	assert.True(t, strings.HasPrefix(k1, "uploads/"))
	assert.True(t, strings.HasSuffix(k1, ".pdf"), "extension is lowercased: %s", k1)
	assert.NotEqual(t, k1, k2, "keys must be unique per upload")
}

func TestExtractKey(t *testing.T) {
	c := &Client{
		bucket:    "regsite",
		endpoint:  "https://objects.example.net",
		publicURL: "https://cdn.example.net",
	}

	key, ok := c.ExtractKey("https://cdn.example.net/uploads/a.pdf")
	assert.True(t, ok)
	assert.Equal(t, "uploads/a.pdf", key)

	key, ok = c.ExtractKey("https://objects.example.net/regsite/uploads/b.png")
	assert.True(t, ok)
	assert.Equal(t, "uploads/b.png", key)

	_, ok = c.ExtractKey("https://elsewhere.example.com/uploads/c.png")
	assert.False(t, ok)
}
