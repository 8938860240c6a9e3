package service

import (
	"IcePlant/internal/model"
	"IcePlant/internal/repo"
	"context"

	"github.com/stretchr/testify/mock"
)

// мок для repo.UserRepository
type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.User); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) ListByIDs(ctx context.Context, ids []int64) ([]model.User, error) {
	args := m.Called(ctx, ids)
	if v, ok := args.Get(0).([]model.User); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) Search(ctx context.Context, q string) ([]model.User, error) {
	args := m.Called(ctx, q)
	if v, ok := args.Get(0).([]model.User); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetSettings(ctx context.Context, userID int64) (*model.Settings, error) {
	args := m.Called(ctx, userID)
	if v, ok := args.Get(0).(*model.Settings); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) SaveSettings(ctx context.Context, s *model.Settings) error {
	return m.Called(ctx, s).Error(0)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

type mockFollowRepo struct{ mock.Mock }

func (m *mockFollowRepo) Toggle(ctx context.Context, followerID, followedID int64) (bool, error) {
	args := m.Called(ctx, followerID, followedID)
	return args.Bool(0), args.Error(1)
}

func (m *mockFollowRepo) Exists(ctx context.Context, followerID, followedID int64) (bool, error) {
	args := m.Called(ctx, followerID, followedID)
	return args.Bool(0), args.Error(1)
}

func (m *mockFollowRepo) CountFollowers(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockFollowRepo) CountFollowing(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

var _ repo.FollowRepository = (*mockFollowRepo)(nil)

type mockMessageRepo struct{ mock.Mock }

func (m *mockMessageRepo) Create(ctx context.Context, msg *model.Message) error {
	return m.Called(ctx, msg).Error(0)
}

func (m *mockMessageRepo) CounterpartIDs(ctx context.Context, userID int64) ([]int64, error) {
	args := m.Called(ctx, userID)
	if v, ok := args.Get(0).([]int64); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMessageRepo) Thread(ctx context.Context, userID, otherID int64) ([]model.Message, error) {
	args := m.Called(ctx, userID, otherID)
	if v, ok := args.Get(0).([]model.Message); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.MessageRepository = (*mockMessageRepo)(nil)

type mockListingRepo struct{ mock.Mock }

func (m *mockListingRepo) Create(ctx context.Context, l *model.Listing) error {
	return m.Called(ctx, l).Error(0)
}

func (m *mockListingRepo) GetByID(ctx context.Context, id int64) (*model.Listing, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Listing); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockListingRepo) List(ctx context.Context, limit int) ([]model.Listing, error) {
	args := m.Called(ctx, limit)
	if v, ok := args.Get(0).([]model.Listing); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockListingRepo) ListByOwner(ctx context.Context, ownerID int64) ([]model.Listing, error) {
	args := m.Called(ctx, ownerID)
	if v, ok := args.Get(0).([]model.Listing); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockListingRepo) Search(ctx context.Context, q string) ([]model.Listing, error) {
	args := m.Called(ctx, q)
	if v, ok := args.Get(0).([]model.Listing); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockListingRepo) ToggleInterest(ctx context.Context, userID, listingID int64) (bool, error) {
	args := m.Called(ctx, userID, listingID)
	return args.Bool(0), args.Error(1)
}

func (m *mockListingRepo) HasInterest(ctx context.Context, userID, listingID int64) (bool, error) {
	args := m.Called(ctx, userID, listingID)
	return args.Bool(0), args.Error(1)
}

func (m *mockListingRepo) InterestedUsers(ctx context.Context, listingID int64) ([]model.User, error) {
	args := m.Called(ctx, listingID)
	if v, ok := args.Get(0).([]model.User); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.ListingRepository = (*mockListingRepo)(nil)
