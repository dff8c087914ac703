package user

import (
	"PantryChef/domain"
	"PantryChef/entities"
	"PantryChef/internal/testutil"
	"PantryChef/pkg/jwt"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testSecret = "pantry-test-secret"

func TestRegister_HashesPassword(t *testing.T) {
	repo := new(testutil.MockUserRepository)
	svc := NewUserService(repo, jwt.NewJWTServiceWithSecret(testSecret))

	var stored *entities.User
	repo.On("CheckUserByEmail", mock.Anything, "cook@example.com").Return(false, nil)
	repo.On("RegisterUser", mock.Anything, mock.AnythingOfType("*entities.User")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*entities.User) }).
		Return(nil)

	res, err := svc.Register(context.Background(), domain.RegisterRequest{
		Name:     "Cook",
		Email:    " Cook@Example.com ",
		Password: "s3cret-pass",
	})

	require.NoError(t, err)
	assert.Equal(t, "cook@example.com", res.Email)
	assert.Equal(t, domain.RoleUser, res.Role)
	require.NotNil(t, stored)
	assert.NotEqual(t, "s3cret-pass", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("s3cret-pass")))
}

func TestRegister_EmailTaken(t *testing.T) {
	repo := new(testutil.MockUserRepository)
	svc := NewUserService(repo, jwt.NewJWTServiceWithSecret(testSecret))

	repo.On("CheckUserByEmail", mock.Anything, "cook@example.com").Return(true, nil)

	_, err := svc.Register(context.Background(), domain.RegisterRequest{Email: "cook@example.com", Password: "whatever1"})

	assert.ErrorIs(t, err, domain.ErrEmailAlreadyRegistered)
	repo.AssertNotCalled(t, "RegisterUser", mock.Anything, mock.Anything)
}

func TestLogin(t *testing.T) {
	jwtService := jwt.NewJWTServiceWithSecret(testSecret)
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &entities.User{ID: uuid.New(), Email: "cook@example.com", Password: string(hash), Role: domain.RoleUser}

	t.Run("valid credentials", func(t *testing.T) {
		repo := new(testutil.MockUserRepository)
		svc := NewUserService(repo, jwtService)
		repo.On("GetUserByEmail", mock.Anything, "cook@example.com").Return(user, nil)

		res, err := svc.Login(context.Background(), domain.LoginRequest{Email: "cook@example.com", Password: "s3cret-pass"})

		require.NoError(t, err)
		userID, role, err := jwtService.GetUserIDByToken(res.Token)
		require.NoError(t, err)
		assert.Equal(t, user.ID.String(), userID)
		assert.Equal(t, domain.RoleUser, role)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := new(testutil.MockUserRepository)
		svc := NewUserService(repo, jwtService)
		repo.On("GetUserByEmail", mock.Anything, "cook@example.com").Return(user, nil)

		_, err := svc.Login(context.Background(), domain.LoginRequest{Email: "cook@example.com", Password: "nope"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		repo := new(testutil.MockUserRepository)
		svc := NewUserService(repo, jwtService)
		repo.On("GetUserByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Login(context.Background(), domain.LoginRequest{Email: "ghost@example.com", Password: "nope"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestMe_NotFound(t *testing.T) {
	repo := new(testutil.MockUserRepository)
	svc := NewUserService(repo, jwt.NewJWTServiceWithSecret(testSecret))
	id := uuid.NewString()

	repo.On("GetUserByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Me(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
