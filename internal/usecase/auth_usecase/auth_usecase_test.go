package auth_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/domain/model"
	"marketplace/internal/repository"
	auth "marketplace/internal/usecase/auth_usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type userRepoMock struct{ mock.Mock }

func (m *userRepoMock) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	if args.Error(0) == nil {
		user.ID = 1
	}
	return args.Error(0)
}

func (m *userRepoMock) FindByLogin(ctx context.Context, login string) (*model.User, error) {
	args := m.Called(ctx, login)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *userRepoMock) FindByID(ctx context.Context, userID int64) (*model.User, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *userRepoMock) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]model.User)
	return users, args.Error(1)
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type issuerStub struct {
	token string
	ttl   time.Duration
	err   error
}

func (i issuerStub) Issue(userID int64, now time.Time) (string, time.Time, error) {
	if i.err != nil {
		return "", time.Time{}, i.err
	}
	return i.token, now.Add(i.ttl), nil
}

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestRegisterUser_HashesPassword(t *testing.T) {
	repo := new(userRepoMock)
	repo.On("FindByLogin", mock.Anything, "alice").Return(nil, repository.ErrUserNotFound)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	//コストは最小（テストを遅くしない）
	hasher := auth.NewBcryptPasswordHasher(4)
	uc := auth.NewRegisterUserUsecase(repo, hasher, fixedClock{testNow})

	out, err := uc.Execute(context.Background(), auth.RegisterUserInput{
		Login:    "  alice  ",
		Password: "correct horse",
	})

	assert.NoError(t, err)
	assert.Equal(t, "alice", out.User.Login)
	assert.NotEqual(t, "correct horse", out.User.PasswordHash)

	//保存されたハッシュは元のパスワードとだけ照合が通る
	verifier := auth.NewBcryptPasswordVerifier()
	assert.True(t, verifier.Verify("correct horse", out.User.PasswordHash))
	assert.False(t, verifier.Verify("wrong horse", out.User.PasswordHash))

	repo.AssertExpectations(t)
}

func TestRegisterUser_DuplicateLogin(t *testing.T) {
	repo := new(userRepoMock)
	repo.On("FindByLogin", mock.Anything, "alice").Return(&model.User{ID: 1, Login: "alice"}, nil)

	uc := auth.NewRegisterUserUsecase(repo, auth.NewBcryptPasswordHasher(4), fixedClock{testNow})

	_, err := uc.Execute(context.Background(), auth.RegisterUserInput{
		Login:    "alice",
		Password: "correct horse",
	})

	assert.ErrorIs(t, err, auth.ErrLoginAlreadyExists)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterUser_Validation(t *testing.T) {
	uc := auth.NewRegisterUserUsecase(new(userRepoMock), auth.NewBcryptPasswordHasher(4), fixedClock{testNow})

	_, err := uc.Execute(context.Background(), auth.RegisterUserInput{Login: "   ", Password: "long enough"})
	assert.ErrorIs(t, err, auth.ErrLoginRequired)

	_, err = uc.Execute(context.Background(), auth.RegisterUserInput{Login: "alice", Password: "short"})
	assert.ErrorIs(t, err, auth.ErrPasswordTooShort)
}

func TestLogin_Success(t *testing.T) {
	hash, err := auth.NewBcryptPasswordHasher(4).Hash("correct horse")
	assert.NoError(t, err)

	repo := new(userRepoMock)
	repo.On("FindByLogin", mock.Anything, "alice").Return(&model.User{
		ID: 1, Login: "alice", PasswordHash: hash,
	}, nil)

	uc := auth.NewLoginUsecase(repo, auth.NewBcryptPasswordVerifier(),
		issuerStub{token: "tok123", ttl: 15 * time.Minute}, fixedClock{testNow})

	out, err := uc.Execute(context.Background(), auth.LoginInput{Login: "alice", Password: "correct horse"})

	assert.NoError(t, err)
	assert.Equal(t, "tok123", out.Token.AccessToken)
	assert.Equal(t, int((15 * time.Minute).Seconds()), out.Token.ExpiresIn)
	//ハッシュは出力から消えている
	assert.Empty(t, out.User.PasswordHash)
	assert.Equal(t, "alice", out.User.Login)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := auth.NewBcryptPasswordHasher(4).Hash("correct horse")
	assert.NoError(t, err)

	repo := new(userRepoMock)
	repo.On("FindByLogin", mock.Anything, "alice").Return(&model.User{
		ID: 1, Login: "alice", PasswordHash: hash,
	}, nil)

	uc := auth.NewLoginUsecase(repo, auth.NewBcryptPasswordVerifier(),
		issuerStub{token: "tok123", ttl: 15 * time.Minute}, fixedClock{testNow})

	_, err = uc.Execute(context.Background(), auth.LoginInput{Login: "alice", Password: "wrong horse"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

// 未知ユーザーもパスワード不一致と同じエラー（存在の有無を漏らさない）
func TestLogin_UnknownUser(t *testing.T) {
	repo := new(userRepoMock)
	repo.On("FindByLogin", mock.Anything, "nobody").Return(nil, repository.ErrUserNotFound)

	uc := auth.NewLoginUsecase(repo, auth.NewBcryptPasswordVerifier(),
		issuerStub{token: "tok123", ttl: 15 * time.Minute}, fixedClock{testNow})

	_, err := uc.Execute(context.Background(), auth.LoginInput{Login: "nobody", Password: "whatever"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}
