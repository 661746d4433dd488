package cloudinary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"studio-admin-backend/internal/cloudinary"
)

func TestExtractPublicID_VersionedURL(t *testing.T) {
	publicID, ok := cloudinary.ExtractPublicID(
		"https://res.cloudinary.com/demo/image/upload/v1690000000/services/gallery/photo-1.JPG")

	assert.True(t, ok)
	assert.Equal(t, "services/gallery/photo-1", publicID)
}

func TestExtractPublicID_TransformationInvariance(t *testing.T) {
	base := "https://res.cloudinary.com/demo/image/upload/"

	versioned, ok1 := cloudinary.ExtractPublicID(base + "v123/services/photo.jpg")
	transformed, ok2 := cloudinary.ExtractPublicID(base + "w_400,q_80/services/photo.jpg")

	assert.True(t, ok1)
	assert.True(t, ok2)
	assert.Equal(t, "services/photo", versioned)
	assert.Equal(t, versioned, transformed)
}

func TestExtractPublicID_Deterministic(t *testing.T) {
	url := "https://res.cloudinary.com/demo/image/upload/v1/a/b/c.png"

	first, ok1 := cloudinary.ExtractPublicID(url)
	second, ok2 := cloudinary.ExtractPublicID(url)

	assert.True(t, ok1)
	assert.True(t, ok2)
	assert.Equal(t, first, second)
}

func TestExtractPublicID_UnrecognizedURL(t *testing.T) {
	_, ok := cloudinary.ExtractPublicID("https://example.com/not-cloudinary/x.jpg")
	assert.False(t, ok)
}

func TestExtractPublicID_Table(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		want   string
		wantOK bool
	}{
		{
			name:   "bare filename without folder",
			url:    "https://res.cloudinary.com/demo/image/upload/photo.jpg",
			want:   "photo",
			wantOK: true,
		},
		{
			name:   "stacked transformations before filename",
			url:    "https://res.cloudinary.com/demo/image/upload/c_fill,w_300/q_80/v42/folder/pic.webp",
			want:   "folder/pic",
			wantOK: true,
		},
		{
			name:   "transformation with dotted parameter is not a filename",
			url:    "https://res.cloudinary.com/demo/image/upload/dpr_2.0,w_400/folder/pic.png",
			want:   "folder/pic",
			wantOK: true,
		},
		{
			name:   "unrecognized extension kept in key",
			url:    "https://res.cloudinary.com/demo/image/upload/v9/raws/photo.raw",
			want:   "raws/photo.raw",
			wantOK: true,
		},
		{
			name:   "case-insensitive extension stripping",
			url:    "https://res.cloudinary.com/demo/image/upload/folder/PIC.JPEG",
			want:   "folder/PIC",
			wantOK: true,
		},
		{
			name:   "no filename segment",
			url:    "https://res.cloudinary.com/demo/image/upload/v1/folder/subfolder",
			wantOK: false,
		},
		{
			name:   "marker only",
			url:    "https://res.cloudinary.com/demo/image/upload/",
			wantOK: false,
		},
		{
			name:   "avif extension",
			url:    "https://res.cloudinary.com/demo/image/upload/hero/banner.avif",
			want:   "hero/banner",
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := cloudinary.ExtractPublicID(tt.url)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
