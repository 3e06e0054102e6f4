package auth

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/ledgerkeep/walletd/internal/model"
	mock_model "github.com/ledgerkeep/walletd/internal/service/auth/mocks"
)

const strongPassword = "wallet-pass-123456"

func newTestService(repo model.UsersRepository) *AuthService {
	return NewAuthService(repo, "test-secret", time.Minute)
}

func TestRegister(t *testing.T) {
	slog.SetDefault(slog.New(slog.DiscardHandler))

	t.Run("new owner gets a token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mock_model.NewMockUsersRepository(ctrl)
		repo.EXPECT().
			GetByLogin(gomock.Any(), "alice").
			Return(nil, model.ErrUserNotFound)
		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *model.User) (*model.User, error) {
				assert.Equal(t, "alice", u.Login)
				assert.NotEmpty(t, u.PasswordHash)
				assert.NotEqual(t, strongPassword, u.PasswordHash)
				u.ID = 42
				return u, nil
			})

		token, err := newTestService(repo).
			Register(context.Background(), "alice", strongPassword)
		assert.NoError(t, err)

		userID, err := UserIDFromToken("test-secret", token)
		assert.NoError(t, err)
		assert.Equal(t, 42, userID)
	})

	t.Run("login already taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mock_model.NewMockUsersRepository(ctrl)
		repo.EXPECT().
			GetByLogin(gomock.Any(), "alice").
			Return(&model.User{ID: 1, Login: "alice"}, nil)

		token, err := newTestService(repo).
			Register(context.Background(), "alice", strongPassword)
		assert.ErrorIs(t, err, model.ErrUserExists)
		assert.Empty(t, token)
	})

	t.Run("duplicate login settled by storage", func(t *testing.T) {
		// two registrations race past the existence check; the storage
		// layer reports the constraint violation for the loser
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mock_model.NewMockUsersRepository(ctrl)
		repo.EXPECT().
			GetByLogin(gomock.Any(), "alice").
			Return(nil, model.ErrUserNotFound)
		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil, model.ErrUserExists)

		token, err := newTestService(repo).
			Register(context.Background(), "alice", strongPassword)
		assert.ErrorIs(t, err, model.ErrUserExists)
		assert.Empty(t, token)
	})

	t.Run("short password rejected before hashing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mock_model.NewMockUsersRepository(ctrl)
		repo.EXPECT().
			GetByLogin(gomock.Any(), "alice").
			Return(nil, model.ErrUserNotFound)

		token, err := newTestService(repo).
			Register(context.Background(), "alice", "short")
		assert.ErrorIs(t, err, model.ErrPasswordPolicyViolated)
		assert.Empty(t, token)
	})

	t.Run("lookup failure is not treated as free login", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		lookupErr := errors.New("connection reset")

		repo := mock_model.NewMockUsersRepository(ctrl)
		repo.EXPECT().
			GetByLogin(gomock.Any(), "alice").
			Return(nil, lookupErr)

		token, err := newTestService(repo).
			Register(context.Background(), "alice", strongPassword)
		assert.ErrorIs(t, err, lookupErr)
		assert.Empty(t, token)
	})
}

func TestLogin(t *testing.T) {
	slog.SetDefault(slog.New(slog.DiscardHandler))

	hash, err := HashPassword(strongPassword)
	assert.NoError(t, err)

	owner := &model.User{ID: 7, Login: "alice", PasswordHash: hash}

	t.Run("valid credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mock_model.NewMockUsersRepository(ctrl)
		repo.EXPECT().
			GetByLogin(gomock.Any(), "alice").
			Return(owner, nil)

		token, err := newTestService(repo).
			Login(context.Background(), "alice", strongPassword)
		assert.NoError(t, err)

		userID, err := UserIDFromToken("test-secret", token)
		assert.NoError(t, err)
		assert.Equal(t, owner.ID, userID)
	})

	t.Run("unknown owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mock_model.NewMockUsersRepository(ctrl)
		repo.EXPECT().
			GetByLogin(gomock.Any(), "mallory").
			Return(nil, model.ErrUserNotFound)

		token, err := newTestService(repo).
			Login(context.Background(), "mallory", strongPassword)
		assert.ErrorIs(t, err, model.ErrUserNotFound)
		assert.Empty(t, token)
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mock_model.NewMockUsersRepository(ctrl)
		repo.EXPECT().
			GetByLogin(gomock.Any(), "alice").
			Return(owner, nil)

		token, err := newTestService(repo).
			Login(context.Background(), "alice", "wrong-pass-123456")
		assert.ErrorIs(t, err, model.ErrInvalidCredentials)
		assert.Empty(t, token)
	})
}
