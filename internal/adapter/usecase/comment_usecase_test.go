package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"coinpulse/internal/core/domain"
	"coinpulse/internal/core/port"
	"coinpulse/internal/core/port/mocks"
)

func TestCreateCommentStartsUnapproved(t *testing.T) {
	repo := mocks.NewMockCommentRepository(t)
	repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(c *domain.Comment) bool {
		return !c.IsApproved && !c.IsSpam && c.Body == "gm"
	})).Return(nil).Once()

	uc := NewCommentUseCase(repo, mocks.NewMockCounterRepository(t), testClock, discard, nil, 3)
	c, err := uc.Create(context.Background(), domain.Comment{
		CommentableType: "article",
		CommentableID:   1,
		UserID:          "u",
		Body:            "  gm ",
		IsApproved:      true,
	})
	require.NoError(t, err)
	assert.False(t, c.Visible())
}

func TestCreateCommentValidation(t *testing.T) {
	uc := NewCommentUseCase(mocks.NewMockCommentRepository(t), mocks.NewMockCounterRepository(t), testClock, discard, nil, 3)
	base := domain.Comment{CommentableType: "article", CommentableID: 1, UserID: "u", Body: "hi"}

	c := base
	c.UserID = ""
	_, err := uc.Create(context.Background(), c)
	assert.ErrorIs(t, err, port.ErrUnauthenticated)

	c = base
	c.CommentableType = "user"
	_, err = uc.Create(context.Background(), c)
	assert.ErrorIs(t, err, port.ErrInvalidInput)

	c = base
	c.Body = strings.Repeat("a", maxCommentLength+1)
	_, err = uc.Create(context.Background(), c)
	assert.ErrorIs(t, err, port.ErrInvalidInput)
}

func TestReplyMustStayInThread(t *testing.T) {
	repo := mocks.NewMockCommentRepository(t)
	parentID := int64(10)
	repo.EXPECT().Get(mock.Anything, parentID).
		Return(&domain.Comment{ID: 10, CommentableType: "video", CommentableID: 1}, nil).Once()

	uc := NewCommentUseCase(repo, mocks.NewMockCounterRepository(t), testClock, discard, nil, 3)
	_, err := uc.Create(context.Background(), domain.Comment{
		CommentableType: "article", CommentableID: 1, ParentID: &parentID, UserID: "u", Body: "reply",
	})
	assert.ErrorIs(t, err, port.ErrInvalidInput)
}

func TestReportFlagsSpamAtThreshold(t *testing.T) {
	repo := mocks.NewMockCommentRepository(t)
	counters := mocks.NewMockCounterRepository(t)
	uc := NewCommentUseCase(repo, counters, testClock, discard, nil, 3)

	counters.EXPECT().Increment(mock.Anything, domain.CommentReports, int64(8), int64(1), testNow).Return(2, nil).Once()
	repo.EXPECT().Get(mock.Anything, int64(8)).Return(&domain.Comment{ID: 8, ReportCount: 2, IsApproved: true}, nil).Once()

	c, err := uc.Report(context.Background(), 8, "u")
	require.NoError(t, err)
	assert.True(t, c.Visible())

	counters.EXPECT().Increment(mock.Anything, domain.CommentReports, int64(8), int64(1), testNow).Return(3, nil).Once()
	repo.EXPECT().SetSpam(mock.Anything, int64(8), true, testNow).Return(nil).Once()
	repo.EXPECT().Get(mock.Anything, int64(8)).
		Return(&domain.Comment{ID: 8, ReportCount: 3, IsApproved: true, IsSpam: true}, nil).Once()

	c, err = uc.Report(context.Background(), 8, "u")
	require.NoError(t, err)
	assert.False(t, c.Visible())
}

func TestReportWithThresholdDisabled(t *testing.T) {
	repo := mocks.NewMockCommentRepository(t)
	counters := mocks.NewMockCounterRepository(t)
	counters.EXPECT().Increment(mock.Anything, domain.CommentReports, int64(8), int64(1), testNow).Return(100, nil).Once()
	repo.EXPECT().Get(mock.Anything, int64(8)).Return(&domain.Comment{ID: 8, ReportCount: 100}, nil).Once()

	_, err := NewCommentUseCase(repo, counters, testClock, discard, nil, 0).Report(context.Background(), 8, "u")
	require.NoError(t, err)
	repo.AssertNotCalled(t, "SetSpam", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestListForHidesModerated(t *testing.T) {
	repo := mocks.NewMockCommentRepository(t)
	repo.EXPECT().ListFor(mock.Anything, "airdrop", int64(2), false).Return([]domain.Comment{{ID: 1}}, nil).Once()
	uc := NewCommentUseCase(repo, mocks.NewMockCounterRepository(t), testClock, discard, nil, 3)

	got, err := uc.ListFor(context.Background(), "airdrop", 2)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = uc.ListFor(context.Background(), "wallet", 2)
	assert.ErrorIs(t, err, port.ErrInvalidInput)
}
