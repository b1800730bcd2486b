package profile

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/chekwube-ononuju/movemates/internal/domain/user"
	otelinfra "github.com/chekwube-ononuju/movemates/internal/infrastructure/observability/otel"
)

// ProfileApplicationService プロフィールアプリケーションサービス
type ProfileApplicationService struct {
	userRepo user.UserRepository
	logger   *otelinfra.Logger
	tracer   trace.Tracer
}

// NewProfileApplicationService 新しいProfileApplicationServiceを作成
func NewProfileApplicationService(userRepo user.UserRepository, logger *otelinfra.Logger) *ProfileApplicationService {
	return &ProfileApplicationService{
		userRepo: userRepo,
		logger:   logger,
		tracer:   otel.Tracer("profile-service"),
	}
}

// GetProfile ユーザーIDでプロフィールを取得
func (s *ProfileApplicationService) GetProfile(ctx context.Context, userID string) (*ProfileResponse, error) {
	ctx, span := s.tracer.Start(ctx, "ProfileApplicationService.GetProfile")
	defer span.End()

	span.SetAttributes(attribute.String("user.user_id", userID))

	u, err := s.userRepo.FindByUserID(ctx, userID)
	if err != nil {
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, err
	}

	span.SetStatus(otelcodes.Ok, "profile found")
	return toProfileResponse(u), nil
}

// UpdateProfile 自分のプロフィールを更新
func (s *ProfileApplicationService) UpdateProfile(ctx context.Context, req *UpdateProfileRequest) (*ProfileResponse, error) {
	ctx, span := s.tracer.Start(ctx, "ProfileApplicationService.UpdateProfile")
	defer span.End()

	span.SetAttributes(attribute.String("user.user_id", req.UserID))

	u, err := s.userRepo.FindByUserID(ctx, req.UserID)
	if err != nil {
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, err
	}

	if err := u.UpdateProfile(req.Name, req.Avatar, req.School, req.Phone, req.Bio, req.Location); err != nil {
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, err
	}

	if err := s.userRepo.Update(ctx, u); err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	s.logger.Info(ctx, "Profile updated", map[string]interface{}{
		"user_id": u.UserID(),
	})

	span.SetStatus(otelcodes.Ok, "profile updated")
	return toProfileResponse(u), nil
}

// BecomeHelper ユーザーをヘルパーとして登録する
func (s *ProfileApplicationService) BecomeHelper(ctx context.Context, req *BecomeHelperRequest) (*ProfileResponse, error) {
	ctx, span := s.tracer.Start(ctx, "ProfileApplicationService.BecomeHelper")
	defer span.End()

	span.SetAttributes(attribute.String("user.user_id", req.UserID))

	u, err := s.userRepo.FindByUserID(ctx, req.UserID)
	if err != nil {
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, err
	}

	if err := u.BecomeHelper(req.Age); err != nil {
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, err
	}

	if err := s.userRepo.Update(ctx, u); err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	s.logger.Info(ctx, "User became helper", map[string]interface{}{
		"user_id": u.UserID(),
	})

	span.SetStatus(otelcodes.Ok, "helper registered")
	return toProfileResponse(u), nil
}

// ListHelpers ヘルパーとして活動しているユーザー一覧を取得
func (s *ProfileApplicationService) ListHelpers(ctx context.Context) ([]*ProfileResponse, error) {
	ctx, span := s.tracer.Start(ctx, "ProfileApplicationService.ListHelpers")
	defer span.End()

	helpers, err := s.userRepo.FindHelpers(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, fmt.Errorf("failed to list helpers: %w", err)
	}

	responses := make([]*ProfileResponse, 0, len(helpers))
	for _, u := range helpers {
		responses = append(responses, toProfileResponse(u))
	}

	span.SetAttributes(attribute.Int("user.helper_count", len(responses)))
	span.SetStatus(otelcodes.Ok, "helpers listed")
	return responses, nil
}

func toProfileResponse(u *user.User) *ProfileResponse {
	return &ProfileResponse{
		UserID:      u.UserID(),
		Name:        u.Name(),
		Email:       u.Email(),
		Avatar:      u.Avatar(),
		School:      u.School(),
		Phone:       u.Phone(),
		Bio:         u.Bio(),
		Location:    u.Location(),
		IsHelper:    u.IsHelper(),
		Rating:      u.Rating(),
		ReviewCount: u.ReviewCount(),
		JoinedAt:    u.JoinedAt().Format(time.RFC3339),
	}
}
