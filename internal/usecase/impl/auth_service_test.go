package impl

import (
	"context"
	"testing"

	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	"shop/internal/domain/service"
	"shop/internal/errors"
	mockRepo "shop/internal/mocks/repository"
	mockSvc "shop/internal/mocks/service"
	"shop/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	factory      *mockRepo.MockRepositoryFactory
	userRepo     *mockRepo.MockUserRepository
	txUserRepo   *mockRepo.MockUserRepository
	txRoleRepo   *mockRepo.MockRoleRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	metrics      *mockSvc.MockMetricsRecorder
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	f := authServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		factory:      mockRepo.NewMockRepositoryFactory(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		txUserRepo:   mockRepo.NewMockUserRepository(t),
		txRoleRepo:   mockRepo.NewMockRoleRepository(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		tokenService: mockSvc.NewMockTokenService(t),
		metrics:      mockSvc.NewMockMetricsRecorder(t),
	}

	f.service = NewAuthService(AuthServiceParams{
		TxManager:    f.txManager,
		UserRepo:     f.userRepo,
		Hasher:       f.hasher,
		TokenService: f.tokenService,
		Metrics:      f.metrics,
		Logger:       newDiscardLogger(),
	})

	return f
}

func (f authServiceFixtures) expectRegisterTransaction() {
	expectTransaction(f.txManager, f.factory)
	f.factory.EXPECT().NewUserRepository().Return(f.txUserRepo)
	f.factory.EXPECT().NewRoleRepository().Return(f.txRoleRepo)
}

var customerRole = &entity.Role{ID: entity.RoleCustomer, Name: "Customer"}

func TestAuthService_Register_Success(t *testing.T) {
	f := createTestAuthService(t)
	ctx := context.Background()
	input := &usecase.RegisterInput{Email: "new@example.com", Password: "Password123"}

	f.expectRegisterTransaction()
	f.txUserRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	f.txRoleRepo.EXPECT().FindByID(ctx, entity.RoleCustomer).Return(customerRole, nil)
	f.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	f.txUserRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == input.Email &&
				u.PasswordHash == "hashed_password" &&
				len(u.Roles) == 1 && u.Roles.Contains(entity.RoleCustomer)
		})).
		Run(func(_ context.Context, user *entity.User) { user.ID = 1 }).
		Return(nil)
	f.metrics.EXPECT().AuthAttempt("register", true).Return()

	output, err := f.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "User successfully registered", output.Message)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	f := createTestAuthService(t)
	ctx := context.Background()
	input := &usecase.RegisterInput{Email: "taken@example.com", Password: "AnotherPass1"}

	f.expectRegisterTransaction()
	f.txUserRepo.EXPECT().FindByEmail(ctx, input.Email).Return(&entity.User{ID: 7, Email: input.Email}, nil)
	f.metrics.EXPECT().AuthAttempt("register", false).Return()

	output, err := f.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestAuthService_Register_InsertRaceReportsConflict(t *testing.T) {
	f := createTestAuthService(t)
	ctx := context.Background()
	input := &usecase.RegisterInput{Email: "race@example.com", Password: "Password123"}

	f.expectRegisterTransaction()
	f.txUserRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	f.txRoleRepo.EXPECT().FindByID(ctx, entity.RoleCustomer).Return(customerRole, nil)
	f.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	f.txUserRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(repository.ErrDuplicateEmail)
	f.metrics.EXPECT().AuthAttempt("register", false).Return()

	_, err := f.service.Register(ctx, input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestAuthService_Register_MissingDefaultRole(t *testing.T) {
	f := createTestAuthService(t)
	ctx := context.Background()
	input := &usecase.RegisterInput{Email: "new@example.com", Password: "Password123"}

	f.expectRegisterTransaction()
	f.txUserRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	f.txRoleRepo.EXPECT().FindByID(ctx, entity.RoleCustomer).Return(nil, repository.ErrRoleNotFound)
	f.metrics.EXPECT().AuthAttempt("register", false).Return()

	_, err := f.service.Register(ctx, input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRoleNotFound))
}

func TestAuthService_Login_Success(t *testing.T) {
	f := createTestAuthService(t)
	ctx := context.Background()
	user := &entity.User{ID: 3, Email: "user@example.com", PasswordHash: "stored_hash"}

	f.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	f.hasher.EXPECT().Check("Password123", "stored_hash").Return(true)
	f.tokenService.EXPECT().GenerateToken(service.TokenPayload{ID: 3, Email: user.Email}).Return("signed.jwt.token", nil)
	f.metrics.EXPECT().AuthAttempt("login", true).Return()

	output, err := f.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "Password123"})

	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", output.AccessToken)
}

func TestAuthService_Login_FailuresAreIndistinguishable(t *testing.T) {
	ctx := context.Background()

	unknown := createTestAuthService(t)
	unknown.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)
	unknown.hasher.EXPECT().Hash(mock.Anything).Return("unknown_hash", nil).Once()
	unknown.hasher.EXPECT().Check("Password123", "unknown_hash").Return(false)
	unknown.metrics.EXPECT().AuthAttempt("login", false).Return()
	_, unknownErr := unknown.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "Password123"})

	wrong := createTestAuthService(t)
	wrong.userRepo.EXPECT().FindByEmail(ctx, "user@example.com").
		Return(&entity.User{ID: 3, Email: "user@example.com", PasswordHash: "stored_hash"}, nil)
	wrong.hasher.EXPECT().Check("WrongPass1", "stored_hash").Return(false)
	wrong.metrics.EXPECT().AuthAttempt("login", false).Return()
	_, wrongErr := wrong.service.Login(ctx, &usecase.LoginInput{Email: "user@example.com", Password: "WrongPass1"})

	unknownApp, ok := errors.AsType[domainerrors.AppError](unknownErr)
	require.True(t, ok)
	wrongApp, ok := errors.AsType[domainerrors.AppError](wrongErr)
	require.True(t, ok)

	assert.Equal(t, unknownApp.HTTPCode(), wrongApp.HTTPCode())
	assert.Equal(t, unknownApp.ErrorCode(), wrongApp.ErrorCode())
	assert.Equal(t, unknownApp.Message(), wrongApp.Message())
	assert.Equal(t, "INVALID_CREDENTIALS", wrongApp.ErrorCode())
}

func TestAuthService_Login_UnknownEmailStillComparesHash(t *testing.T) {
	f := createTestAuthService(t)
	ctx := context.Background()

	f.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound).Twice()
	f.hasher.EXPECT().Hash(mock.Anything).Return("unknown_hash", nil).Once()
	f.hasher.EXPECT().Check("Password123", "unknown_hash").Return(false).Twice()
	f.metrics.EXPECT().AuthAttempt("login", false).Return().Twice()

	for range 2 {
		_, err := f.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "Password123"})
		require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	}
}

func TestAuthService_Login_RepositoryFailureIsNotCredentialError(t *testing.T) {
	f := createTestAuthService(t)
	ctx := context.Background()

	f.userRepo.EXPECT().FindByEmail(ctx, "user@example.com").Return(nil, errors.New("connection reset"))

	_, err := f.service.Login(ctx, &usecase.LoginInput{Email: "user@example.com", Password: "Password123"})

	require.Error(t, err)
	assert.False(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_GenerateToken_SigningFailure(t *testing.T) {
	f := createTestAuthService(t)

	f.tokenService.EXPECT().GenerateToken(service.TokenPayload{ID: 1, Email: "a@example.com"}).
		Return("", errors.New("jwt secret must be provided"))

	output, err := f.service.GenerateToken(context.Background(), service.TokenPayload{ID: 1, Email: "a@example.com"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenGenerationFailed))
}

func TestAuthService_Authenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("valid token", func(t *testing.T) {
		f := createTestAuthService(t)
		user := &entity.User{ID: 5, Email: "m@example.com", Roles: entity.Roles{{ID: entity.RoleMerchant, Name: "Merchant"}}}
		f.tokenService.EXPECT().ValidateToken("good").Return(&service.Claims{ID: 5, Email: user.Email}, nil)
		f.userRepo.EXPECT().FindByID(ctx, int64(5)).Return(user, nil)

		got, err := f.service.Authenticate(ctx, "good")

		require.NoError(t, err)
		assert.Equal(t, user, got)
	})

	t.Run("invalid token", func(t *testing.T) {
		f := createTestAuthService(t)
		f.tokenService.EXPECT().ValidateToken("bad").Return(nil, errors.New("token is expired"))

		_, err := f.service.Authenticate(ctx, "bad")

		assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	})

	t.Run("subject deleted", func(t *testing.T) {
		f := createTestAuthService(t)
		f.tokenService.EXPECT().ValidateToken("orphan").Return(&service.Claims{ID: 9}, nil)
		f.userRepo.EXPECT().FindByID(ctx, int64(9)).Return(nil, repository.ErrUserNotFound)

		_, err := f.service.Authenticate(ctx, "orphan")

		assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	})
}
