package service

import (
	"IcePlant/internal/model"
	"IcePlant/internal/repo"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFollowService_Toggle(t *testing.T) {
	ctx := context.Background()

	t.Run("self follow rejected without touching storage", func(t *testing.T) {
		fr, ur := new(mockFollowRepo), new(mockUserRepo)
		svc := NewFollowService(fr, ur)

		_, err := svc.Toggle(ctx, 5, 5)
		assert.ErrorIs(t, err, ErrSelfFollow)
		fr.AssertNotCalled(t, "Toggle", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown target", func(t *testing.T) {
		fr, ur := new(mockFollowRepo), new(mockUserRepo)
		svc := NewFollowService(fr, ur)
		ur.On("GetByID", mock.Anything, int64(8)).Return(nil, repo.ErrNotFound).Once()

		_, err := svc.Toggle(ctx, 5, 8)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("flips", func(t *testing.T) {
		fr, ur := new(mockFollowRepo), new(mockUserRepo)
		svc := NewFollowService(fr, ur)
		ur.On("GetByID", mock.Anything, int64(8)).Return(&model.User{ID: 8}, nil)
		fr.On("Toggle", mock.Anything, int64(5), int64(8)).Return(true, nil).Once()
		fr.On("Toggle", mock.Anything, int64(5), int64(8)).Return(false, nil).Once()

		on, err := svc.Toggle(ctx, 5, 8)
		require.NoError(t, err)
		assert.True(t, on)
		on, err = svc.Toggle(ctx, 5, 8)
		require.NoError(t, err)
		assert.False(t, on)
		fr.AssertExpectations(t)
	})
}

func TestFollowService_Counts(t *testing.T) {
	fr := new(mockFollowRepo)
	svc := NewFollowService(fr, new(mockUserRepo))
	fr.On("CountFollowers", mock.Anything, int64(1)).Return(int64(3), nil)
	fr.On("CountFollowing", mock.Anything, int64(1)).Return(int64(2), nil)

	followers, following, err := svc.Counts(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), followers)
	assert.Equal(t, int64(2), following)

	// анонимный зритель и сам владелец: не "подписан"
	ok, err := svc.IsFollowing(context.Background(), 0, 1)
	require.NoError(t, err)
	assert.False(t, ok)
	ok, err = svc.IsFollowing(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMessageService_Send(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop().Sugar()

	t.Run("empty content", func(t *testing.T) {
		mr, ur := new(mockMessageRepo), new(mockUserRepo)
		svc := NewMessageService(mr, ur, logger, false)

		_, err := svc.Send(ctx, 1, 2, "   ")
		assert.ErrorIs(t, err, ErrEmptyContent)
		mr.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unknown receiver", func(t *testing.T) {
		mr, ur := new(mockMessageRepo), new(mockUserRepo)
		svc := NewMessageService(mr, ur, logger, false)
		ur.On("GetByID", mock.Anything, int64(2)).Return(nil, repo.ErrNotFound).Once()

		_, err := svc.Send(ctx, 1, 2, "hi")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("disabled receiver is not enforced by default", func(t *testing.T) {
		mr, ur := new(mockMessageRepo), new(mockUserRepo)
		svc := NewMessageService(mr, ur, logger, false)
		ur.On("GetByID", mock.Anything, int64(2)).Return(&model.User{ID: 2}, nil)
		ur.On("GetSettings", mock.Anything, int64(2)).Return(&model.Settings{UserID: 2, AllowMessages: false}, nil)
		mr.On("Create", mock.Anything, mock.MatchedBy(func(m *model.Message) bool {
			return m.SenderID == 1 && m.ReceiverID == 2 && m.Content == "hi"
		})).Return(nil).Once()

		_, err := svc.Send(ctx, 1, 2, " hi ")
		assert.NoError(t, err)
		mr.AssertExpectations(t)
	})

	t.Run("disabled receiver rejected when enforced", func(t *testing.T) {
		mr, ur := new(mockMessageRepo), new(mockUserRepo)
		svc := NewMessageService(mr, ur, logger, true)
		ur.On("GetByID", mock.Anything, int64(2)).Return(&model.User{ID: 2}, nil)
		ur.On("GetSettings", mock.Anything, int64(2)).Return(&model.Settings{UserID: 2, AllowMessages: false}, nil)

		_, err := svc.Send(ctx, 1, 2, "hi")
		assert.ErrorIs(t, err, ErrMessagesDisabled)
		mr.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestMessageService_Conversations(t *testing.T) {
	mr, ur := new(mockMessageRepo), new(mockUserRepo)
	svc := NewMessageService(mr, ur, nil, false)
	mr.On("CounterpartIDs", mock.Anything, int64(1)).Return([]int64{3, 2}, nil)
	ur.On("ListByIDs", mock.Anything, []int64{3, 2}).Return([]model.User{{ID: 2, Username: "b"}, {ID: 3, Username: "c"}}, nil)

	users, err := svc.Conversations(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestListingService(t *testing.T) {
	ctx := context.Background()

	t.Run("title and location required", func(t *testing.T) {
		lr := new(mockListingRepo)
		svc := NewListingService(lr)
		_, err := svc.Create(ctx, 1, ListingInput{Title: "Plant", Location: "  "})
		assert.ErrorIs(t, err, ErrValidation)
		lr.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("create", func(t *testing.T) {
		lr := new(mockListingRepo)
		svc := NewListingService(lr)
		lr.On("Create", mock.Anything, mock.MatchedBy(func(l *model.Listing) bool {
			return l.Title == "Plant" && l.Location == "Bay" && l.OwnerID == 1 && l.Capacity == ""
		})).Return(nil).Once()
		_, err := svc.Create(ctx, 1, ListingInput{Title: "Plant ", Location: " Bay"})
		assert.NoError(t, err)
	})

	t.Run("toggle on missing listing", func(t *testing.T) {
		lr := new(mockListingRepo)
		svc := NewListingService(lr)
		lr.On("GetByID", mock.Anything, int64(9)).Return(nil, repo.ErrNotFound).Once()
		_, err := svc.ToggleInterested(ctx, 1, 9)
		assert.ErrorIs(t, err, ErrNotFound)
		lr.AssertNotCalled(t, "ToggleInterest", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestSearchService_EmptyQuerySkipsStorage(t *testing.T) {
	ur, lr := new(mockUserRepo), new(mockListingRepo)
	svc := NewSearchService(ur, lr, nil)

	res, err := svc.Search(context.Background(), "   ")
	require.NoError(t, err)
	assert.Empty(t, res.Owners)
	assert.Empty(t, res.Listings)
	assert.Empty(t, res.Posts)
	ur.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}
