package user_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/saulo-duarte/coursegen/internal/apperr"
	"github.com/saulo-duarte/coursegen/internal/auth"
	"github.com/saulo-duarte/coursegen/internal/config"
	"github.com/saulo-duarte/coursegen/internal/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := config.Open("sqlite", "file:"+uuid.NewString()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&user.User{}))
	return db
}

func newService(t *testing.T) (user.UserService, *gorm.DB) {
	t.Helper()
	t.Setenv("JWT_SECRET", "user-service-test-secret")
	auth.Init()
	db := newTestDB(t)
	return user.NewService(user.NewRepository(db), bcrypt.MinCost), db
}

func TestRegisterThenLogin(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	reg, err := svc.Register(ctx, user.RegisterDTO{Email: "a@x.com", Password: "pw123", FullName: "Ada"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", reg.TokenType)
	assert.Equal(t, "Ada", reg.FullName)

	login, err := svc.Login(ctx, user.LoginDTO{Email: "a@x.com", Password: "pw123"})
	require.NoError(t, err)

	claims, err := auth.ValidateJWT(login.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, reg.UserID.String(), claims.UserID)

	t.Run("WrongPassword", func(t *testing.T) {
		_, err := svc.Login(ctx, user.LoginDTO{Email: "a@x.com", Password: "nope"})
		assert.True(t, errors.Is(err, user.ErrInvalidCredentials))
		assert.Equal(t, 401, apperr.Status(err))
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		_, err := svc.Login(ctx, user.LoginDTO{Email: "b@x.com", Password: "pw123"})
		assert.Equal(t, 401, apperr.Status(err))
	})

	t.Run("EmailIsCaseInsensitive", func(t *testing.T) {
		_, err := svc.Login(ctx, user.LoginDTO{Email: " A@X.com ", Password: "pw123"})
		assert.NoError(t, err)
	})

	t.Run("DuplicateRegistration", func(t *testing.T) {
		_, err := svc.Register(ctx, user.RegisterDTO{Email: "a@x.com", Password: "other", FullName: "Eve"})
		assert.True(t, errors.Is(err, user.ErrEmailTaken))
		assert.Equal(t, 400, apperr.Status(err))
	})

	t.Run("Me", func(t *testing.T) {
		me, err := svc.Me(ctx, reg.UserID)
		require.NoError(t, err)
		assert.Equal(t, "a@x.com", me.Email)
		assert.True(t, me.IsActive)
	})
}

func TestLoginInactiveUser(t *testing.T) {
	svc, db := newService(t)
	ctx := context.Background()

	reg, err := svc.Register(ctx, user.RegisterDTO{Email: "c@x.com", Password: "pw", FullName: "Cy"})
	require.NoError(t, err)
	require.NoError(t, db.Model(&user.User{}).Where("id = ?", reg.UserID).Update("is_active", false).Error)

	_, err = svc.Login(ctx, user.LoginDTO{Email: "c@x.com", Password: "pw"})
	assert.True(t, errors.Is(err, user.ErrInactive))
}

func TestPasswordIsHashed(t *testing.T) {
	svc, db := newService(t)

	reg, err := svc.Register(context.Background(), user.RegisterDTO{Email: "d@x.com", Password: "secret", FullName: "Di"})
	require.NoError(t, err)

	var stored user.User
	require.NoError(t, db.First(&stored, "id = ?", reg.UserID).Error)
	assert.NotEqual(t, "secret", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret")))
}

// racingRepository misses the lookup, as when a concurrent registration commits in between.
type racingRepository struct {
	user.UserRepository
}

func (racingRepository) GetByEmail(context.Context, string) (*user.User, error) {
	return nil, nil
}

func (racingRepository) Create(context.Context, *user.User) error {
	return gorm.ErrDuplicatedKey
}

func TestRegisterDuplicateInsertIsConflict(t *testing.T) {
	t.Setenv("JWT_SECRET", "user-service-test-secret")
	auth.Init()
	svc := user.NewService(racingRepository{}, bcrypt.MinCost)

	_, err := svc.Register(context.Background(), user.RegisterDTO{Email: "race@x.com", Password: "pw", FullName: "Ra"})
	assert.ErrorIs(t, err, user.ErrEmailTaken)
	assert.Equal(t, 400, apperr.Status(err))
}
