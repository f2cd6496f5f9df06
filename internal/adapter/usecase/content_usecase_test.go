package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"coinpulse/internal/core/domain"
	"coinpulse/internal/core/port"
	"coinpulse/internal/core/port/mocks"
)

func TestCreateArticle(t *testing.T) {
	repo := mocks.NewMockArticleRepository(t)
	repo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Article")).Return(nil).Once()

	a, err := NewArticleUseCase(repo, mocks.NewMockCounterRepository(t), testClock, nil).
		Create(context.Background(), domain.Article{
			Title: "Ethereum's Pectra Upgrade, Explained",
			Tags:  []string{"Ethereum", " ethereum ", "Layer 2", ""},
		})
	require.NoError(t, err)
	assert.Equal(t, "ethereum-s-pectra-upgrade-explained", a.Slug)
	assert.Equal(t, domain.ContentNews, a.ContentType)
	assert.Equal(t, []string{"ethereum", "layer-2"}, a.Tags)
	require.NotNil(t, a.PublishedAt)
	assert.Equal(t, testNow, *a.PublishedAt)
}

func TestCreateArticleRejectsUnknownType(t *testing.T) {
	uc := NewArticleUseCase(mocks.NewMockArticleRepository(t), mocks.NewMockCounterRepository(t), testClock, nil)

	_, err := uc.Create(context.Background(), domain.Article{Title: "x", ContentType: "rumour"})
	assert.ErrorIs(t, err, port.ErrInvalidInput)

	_, err = uc.List(context.Background(), port.ArticleFilter{ContentType: "rumour"})
	assert.ErrorIs(t, err, port.ErrInvalidInput)
}

func TestShowArticleCountsView(t *testing.T) {
	repo := mocks.NewMockArticleRepository(t)
	counters := mocks.NewMockCounterRepository(t)
	obs := newObserved()
	repo.EXPECT().GetBySlug(mock.Anything, "gm").Return(&domain.Article{ID: 3, ViewCount: 1}, nil).Once()
	counters.EXPECT().Increment(mock.Anything, domain.ArticleViews, int64(3), int64(1), testNow).Return(2, nil).Once()

	a, err := NewArticleUseCase(repo, counters, testClock, obs).ShowBySlug(context.Background(), "gm")
	require.NoError(t, err)
	assert.Equal(t, int64(2), a.ViewCount)
	assert.Equal(t, int64(1), obs.get(domain.ArticleViews))
}

func TestListArticlesNormalisesTag(t *testing.T) {
	repo := mocks.NewMockArticleRepository(t)
	repo.EXPECT().List(mock.Anything, port.ArticleFilter{Tag: "layer-2", ContentType: domain.ContentGuide}).
		Return(nil, nil).Once()

	_, err := NewArticleUseCase(repo, mocks.NewMockCounterRepository(t), testClock, nil).
		List(context.Background(), port.ArticleFilter{Tag: "Layer 2", ContentType: domain.ContentGuide})
	assert.NoError(t, err)
}

func TestCreateVideoExtractsID(t *testing.T) {
	repo := mocks.NewMockVideoRepository(t)
	repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(v *domain.Video) bool {
		return v.YouTubeID == "dQw4w9WgXcQ" && v.Slug == "market-wrap"
	})).Return(nil).Once()
	uc := NewVideoUseCase(repo, mocks.NewMockCounterRepository(t), testClock, nil)

	v, err := uc.Create(context.Background(), domain.Video{Title: "Market Wrap", YouTubeURL: "https://youtu.be/dQw4w9WgXcQ"})
	require.NoError(t, err)
	assert.Equal(t, "https://www.youtube.com/embed/dQw4w9WgXcQ", v.EmbedURL())

	_, err = uc.Create(context.Background(), domain.Video{Title: "Nope", YouTubeURL: "https://vimeo.com/1"})
	assert.ErrorIs(t, err, port.ErrInvalidInput)
}

func TestShowVideoCountsView(t *testing.T) {
	repo := mocks.NewMockVideoRepository(t)
	counters := mocks.NewMockCounterRepository(t)
	counters.EXPECT().Increment(mock.Anything, domain.VideoViews, int64(5), int64(1), testNow).Return(8, nil).Once()
	repo.EXPECT().Get(mock.Anything, int64(5)).Return(&domain.Video{ID: 5}, nil).Once()

	v, err := NewVideoUseCase(repo, counters, testClock, nil).Show(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, int64(8), v.ViewCount)
}
