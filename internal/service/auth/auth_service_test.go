package auth

import (
	"context"
	"testing"
	"time"

	"flightdesk/internal/domain"
	"flightdesk/internal/repository"
	"flightdesk/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

func (m *MockUserRepository) SetActive(ctx context.Context, id int64, active bool) error {
	args := m.Called(ctx, id, active)
	return args.Error(0)
}

func newTestAuthService() (*Service, *MockUserRepository) {
	users := &MockUserRepository{}
	tokens := NewTokenIssuer("test-secret", time.Hour)
	return NewService(users, tokens, logger.NewNop()), users
}

func TestService_Register_HashesPassword(t *testing.T) {
	service, users := newTestAuthService()
	ctx := context.Background()

	users.On("Create", ctx, mock.AnythingOfType("*domain.User")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.User).ID = 1
		}).
		Return(nil).Once()

	user, err := service.Register(ctx, "agent1", "s3cretpass", "agent")

	assert.NoError(t, err)
	assert.Equal(t, "agent1", user.Username)
	assert.Equal(t, "agent", user.Role)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "s3cretpass", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cretpass")))
}

func TestService_Register_UsernameTaken(t *testing.T) {
	service, users := newTestAuthService()
	ctx := context.Background()

	users.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(repository.ErrDuplicate).Once()

	user, err := service.Register(ctx, "agent1", "s3cretpass", "agent")

	assert.ErrorIs(t, err, ErrUsernameTaken)
	assert.Nil(t, user)
}

func TestService_Login_Success(t *testing.T) {
	service, users := newTestAuthService()
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cretpass"), bcrypt.MinCost)
	assert.NoError(t, err)
	stored := &domain.User{ID: 7, Username: "agent1", PasswordHash: string(hash), Role: "admin", IsActive: true}

	users.On("GetByUsername", ctx, "agent1").Return(stored, nil).Once()
	users.On("UpdateLastLogin", ctx, int64(7), mock.AnythingOfType("time.Time")).Return(nil).Once()

	result, err := service.Login(ctx, "agent1", "s3cretpass")

	assert.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotNil(t, result.User.LastLogin)

	claims, err := service.tokens.ParseToken(result.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestService_Login_WrongPassword(t *testing.T) {
	service, users := newTestAuthService()
	ctx := context.Background()

	hash, _ := bcrypt.GenerateFromPassword([]byte("s3cretpass"), bcrypt.MinCost)
	stored := &domain.User{ID: 7, Username: "agent1", PasswordHash: string(hash), IsActive: true}

	users.On("GetByUsername", ctx, "agent1").Return(stored, nil).Once()

	result, err := service.Login(ctx, "agent1", "wrong")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, result)
	users.AssertNotCalled(t, "UpdateLastLogin", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Login_UnknownUser(t *testing.T) {
	service, users := newTestAuthService()
	ctx := context.Background()

	users.On("GetByUsername", ctx, "ghost").Return(nil, repository.ErrNotFound).Once()

	result, err := service.Login(ctx, "ghost", "whatever")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, result)
}

func TestService_Login_InactiveUser(t *testing.T) {
	service, users := newTestAuthService()
	ctx := context.Background()

	stored := &domain.User{ID: 7, Username: "agent1", IsActive: false}
	users.On("GetByUsername", ctx, "agent1").Return(stored, nil).Once()

	result, err := service.Login(ctx, "agent1", "s3cretpass")

	assert.ErrorIs(t, err, ErrUserInactive)
	assert.Nil(t, result)
}

func TestTokenIssuer_RejectsForeignSignature(t *testing.T) {
	issuer := NewTokenIssuer("secret-a", time.Hour)
	other := NewTokenIssuer("secret-b", time.Hour)

	token, err := issuer.GenerateToken(1, "agent")
	assert.NoError(t, err)

	_, err = other.ParseToken(token)
	assert.Error(t, err)
}

func TestTokenIssuer_RejectsExpiredToken(t *testing.T) {
	issuer := NewTokenIssuer("secret-a", -time.Minute)

	token, err := issuer.GenerateToken(1, "agent")
	assert.NoError(t, err)

	_, err = issuer.ParseToken(token)
	assert.Error(t, err)
}
