package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYouTubeID(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/watch?feature=share&v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://youtu.be/dQw4w9WgXcQ?t=10", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://youtube.com/shorts/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/live/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube-nocookie.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://vimeo.com/123456", ""},
		{"https://youtu.be/short", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, YouTubeID(tt.url), tt.url)
	}
}

func TestVideoURLs(t *testing.T) {
	v := Video{YouTubeID: "dQw4w9WgXcQ"}
	assert.Equal(t, "https://www.youtube.com/embed/dQw4w9WgXcQ", v.EmbedURL())
	assert.Equal(t, "https://img.youtube.com/vi/dQw4w9WgXcQ/hqdefault.jpg", v.ThumbnailURL())

	assert.Empty(t, Video{}.EmbedURL())
	assert.Empty(t, Video{}.ThumbnailURL())
}

func TestAssetURL(t *testing.T) {
	const base = "https://cdn.example.com/storage"
	const placeholder = "https://cdn.example.com/placeholder.png"

	t.Run("joins relative path", func(t *testing.T) {
		got := AssetURL(base, "logos/zk.png", placeholder)
		require.NotNil(t, got)
		assert.Equal(t, "https://cdn.example.com/storage/logos/zk.png", *got)

		got = AssetURL(base, "/logos/zk.png", placeholder)
		require.NotNil(t, got)
		assert.Equal(t, "https://cdn.example.com/storage/logos/zk.png", *got)
	})

	t.Run("absolute url passes through", func(t *testing.T) {
		got := AssetURL(base, "https://other.io/a.png", placeholder)
		require.NotNil(t, got)
		assert.Equal(t, "https://other.io/a.png", *got)
	})

	t.Run("falls back to placeholder", func(t *testing.T) {
		for _, path := range []string{"", "  ", "../secrets.txt"} {
			got := AssetURL(base, path, placeholder)
			require.NotNil(t, got, path)
			assert.Equal(t, placeholder, *got)
		}
		got := AssetURL("", "logos/zk.png", placeholder)
		require.NotNil(t, got)
		assert.Equal(t, placeholder, *got)
	})

	t.Run("nil without placeholder", func(t *testing.T) {
		assert.Nil(t, AssetURL(base, "", ""))
		assert.Nil(t, AssetURL(base, "a/../../b", ""))
	})
}

func TestContentTypeValid(t *testing.T) {
	for _, ct := range contentTypes {
		assert.True(t, ct.Valid(), ct)
	}
	assert.Len(t, contentTypes, 10)
	assert.False(t, ContentType("podcast").Valid())
	assert.False(t, ContentType("").Valid())
}

func TestCounterKnown(t *testing.T) {
	assert.True(t, CampaignClicks.Known())
	assert.True(t, VideoViews.Known())
	assert.False(t, Counter{"ad_campaign", "ad_campaigns", "budget"}.Known())
}

func TestValidCommentable(t *testing.T) {
	assert.True(t, ValidCommentable("article"))
	assert.True(t, ValidCommentable("exchange_listing"))
	assert.False(t, ValidCommentable("user"))
}

func TestCommentVisible(t *testing.T) {
	assert.True(t, Comment{IsApproved: true}.Visible())
	assert.False(t, Comment{IsApproved: true, IsSpam: true}.Visible())
	assert.False(t, Comment{}.Visible())
}
