package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/crypto/bcrypt"

	"github.com/chekwube-ononuju/movemates/internal/domain/user"
	"github.com/chekwube-ononuju/movemates/internal/infrastructure/config"
	otelinfra "github.com/chekwube-ononuju/movemates/internal/infrastructure/observability/otel"
)

// MinPasswordLength パスワードの最小文字数
const MinPasswordLength = 8

// AuthApplicationService 認証アプリケーションサービス
type AuthApplicationService struct {
	userRepo  user.UserRepository
	jwtConfig *config.JWTConfig
	logger    *otelinfra.Logger
	tracer    trace.Tracer
}

// NewAuthApplicationService 新しいAuthApplicationServiceを作成
func NewAuthApplicationService(
	userRepo user.UserRepository,
	jwtConfig *config.JWTConfig,
	logger *otelinfra.Logger,
) *AuthApplicationService {
	return &AuthApplicationService{
		userRepo:  userRepo,
		jwtConfig: jwtConfig,
		logger:    logger,
		tracer:    otel.Tracer("auth-service"),
	}
}

// Register 新規ユーザーを登録してトークンを発行
func (s *AuthApplicationService) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	ctx, span := s.tracer.Start(ctx, "AuthApplicationService.Register")
	defer span.End()

	// パスワードはログにもスパンにも載せない
	span.SetAttributes(attribute.String("user.email_domain", emailDomain(req.Email)))

	if len(req.Password) < MinPasswordLength {
		span.SetStatus(otelcodes.Error, user.ErrPasswordTooShort.Error())
		return nil, user.ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u, err := user.NewUser(s.generateUserID(), req.Name, req.Email, string(hash))
	if err != nil {
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, err
	}

	if err := s.userRepo.Create(ctx, u); err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		if err == user.ErrEmailAlreadyRegistered {
			return nil, err
		}
		s.logger.Error(ctx, "Failed to create user", err, map[string]interface{}{
			"user_id": u.UserID(),
		})
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, expiresIn, err := s.generateToken(u.UserID())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, err
	}

	s.logger.Info(ctx, "User registered", map[string]interface{}{
		"user_id": u.UserID(),
	})

	return &AuthResponse{
		UserID:    u.UserID(),
		Name:      u.Name(),
		Email:     u.Email(),
		Token:     token,
		ExpiresIn: expiresIn,
		TokenType: "Bearer",
	}, nil
}

// Login メールアドレスとパスワードで認証してトークンを発行
func (s *AuthApplicationService) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	ctx, span := s.tracer.Start(ctx, "AuthApplicationService.Login")
	defer span.End()

	span.SetAttributes(attribute.String("user.email_domain", emailDomain(req.Email)))

	u, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if err == user.ErrUserNotFound {
			// メールアドレスの存在有無は漏らさない
			span.SetStatus(otelcodes.Ok, "invalid credentials")
			return nil, user.ErrInvalidCredentials
		}
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash()), []byte(req.Password)); err != nil {
		span.SetStatus(otelcodes.Ok, "invalid credentials")
		return nil, user.ErrInvalidCredentials
	}

	token, expiresIn, err := s.generateToken(u.UserID())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, err
	}

	s.logger.Info(ctx, "User logged in", map[string]interface{}{
		"user_id": u.UserID(),
	})

	return &AuthResponse{
		UserID:    u.UserID(),
		Name:      u.Name(),
		Email:     u.Email(),
		Token:     token,
		ExpiresIn: expiresIn,
		TokenType: "Bearer",
	}, nil
}

// generateToken JWTトークンを生成
func (s *AuthApplicationService) generateToken(userID string) (string, int64, error) {
	now := time.Now()
	expiresAt := now.Add(s.jwtConfig.Expiration)

	claims := jwt.MapClaims{
		"user_id": userID,
		"iss":     s.jwtConfig.Issuer,
		"iat":     now.Unix(),
		"exp":     expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.jwtConfig.Secret))
	if err != nil {
		return "", 0, fmt.Errorf("failed to generate token: %w", err)
	}

	return tokenString, int64(s.jwtConfig.Expiration.Seconds()), nil
}

// generateUserID ユーザーIDを生成
func (s *AuthApplicationService) generateUserID() string {
	return fmt.Sprintf("user_%d", time.Now().UnixNano())
}

func emailDomain(email string) string {
	for i := len(email) - 1; i >= 0; i-- {
		if email[i] == '@' {
			return email[i+1:]
		}
	}
	return ""
}
