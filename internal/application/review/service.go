package review

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/chekwube-ononuju/movemates/internal/domain/review"
	"github.com/chekwube-ononuju/movemates/internal/domain/user"
	otelinfra "github.com/chekwube-ononuju/movemates/internal/infrastructure/observability/otel"
)

// TransactionManager トランザクション管理インターフェース
type TransactionManager interface {
	// WithTransaction トランザクション内で関数を実行
	WithTransaction(ctx context.Context, fn func(*sql.Tx) error) error
}

// ReviewApplicationService レビューアプリケーションサービス
type ReviewApplicationService struct {
	reviewRepo review.ReviewRepository
	userRepo   user.UserRepository
	txManager  TransactionManager
	logger     *otelinfra.Logger
	metrics    *otelinfra.Metrics
	tracer     trace.Tracer
}

// NewReviewApplicationService 新しいReviewApplicationServiceを作成
func NewReviewApplicationService(
	reviewRepo review.ReviewRepository,
	userRepo user.UserRepository,
	txManager TransactionManager,
	logger *otelinfra.Logger,
	metrics *otelinfra.Metrics,
) *ReviewApplicationService {
	return &ReviewApplicationService{
		reviewRepo: reviewRepo,
		userRepo:   userRepo,
		txManager:  txManager,
		logger:     logger,
		metrics:    metrics,
		tracer:     otel.Tracer("review-service"),
	}
}

// CreateReview レビューを作成し、受取人の平均評価を再計算する
//
// 保存と集計更新は1つのDBトランザクションで行う
func (s *ReviewApplicationService) CreateReview(ctx context.Context, req *CreateReviewRequest) (*CreateReviewResponse, error) {
	ctx, span := s.tracer.Start(ctx, "ReviewApplicationService.CreateReview")
	defer span.End()

	span.SetAttributes(
		attribute.String("review.from_user_id", req.FromUserID),
		attribute.String("review.to_user_id", req.ToUserID),
		attribute.Int("review.rating", req.Rating),
	)

	rv, err := review.NewReview(
		s.generateReviewID(),
		req.FromUserID,
		req.ToUserID,
		req.RequestID,
		req.Rating,
		req.Comment,
	)
	if err != nil {
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, err
	}

	recipient, err := s.userRepo.FindByUserID(ctx, req.ToUserID)
	if err != nil {
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, err
	}

	var updatedRating float64
	var updatedCount int

	err = s.txManager.WithTransaction(ctx, func(tx *sql.Tx) error {
		if err := s.reviewRepo.SaveTx(ctx, tx, rv); err != nil {
			return fmt.Errorf("failed to save review: %w", err)
		}

		reviews, err := s.reviewRepo.FindByToUserIDTx(ctx, tx, req.ToUserID)
		if err != nil {
			return fmt.Errorf("failed to load reviews: %w", err)
		}

		updatedRating = review.AverageRating(reviews)
		updatedCount = len(reviews)

		if err := recipient.SetRating(updatedRating, updatedCount); err != nil {
			return err
		}
		if err := s.userRepo.UpdateTx(ctx, tx, recipient); err != nil {
			return fmt.Errorf("failed to update recipient rating: %w", err)
		}
		return nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, err
	}

	s.metrics.RecordReview(ctx, rv.Rating())
	s.logger.Info(ctx, "Review created", map[string]interface{}{
		"review_id":      rv.ReviewID(),
		"to_user_id":     req.ToUserID,
		"updated_rating": updatedRating,
	})

	span.SetStatus(otelcodes.Ok, "review created")

	return &CreateReviewResponse{
		Review:             toReviewResponse(rv),
		UpdatedRating:      updatedRating,
		UpdatedReviewCount: updatedCount,
	}, nil
}

// ListReviews ユーザーが受け取ったレビュー一覧を取得
func (s *ReviewApplicationService) ListReviews(ctx context.Context, toUserID string) ([]ReviewResponse, error) {
	ctx, span := s.tracer.Start(ctx, "ReviewApplicationService.ListReviews")
	defer span.End()

	span.SetAttributes(attribute.String("review.to_user_id", toUserID))

	reviews, err := s.reviewRepo.FindByToUserID(ctx, toUserID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	responses := make([]ReviewResponse, 0, len(reviews))
	for _, rv := range reviews {
		responses = append(responses, toReviewResponse(rv))
	}

	span.SetAttributes(attribute.Int("review.count", len(responses)))
	span.SetStatus(otelcodes.Ok, "reviews listed")
	return responses, nil
}

// generateReviewID レビューIDを生成
func (s *ReviewApplicationService) generateReviewID() string {
	return fmt.Sprintf("rev_%d", time.Now().UnixNano())
}

func toReviewResponse(rv *review.Review) ReviewResponse {
	return ReviewResponse{
		ReviewID:   rv.ReviewID(),
		FromUserID: rv.FromUserID(),
		ToUserID:   rv.ToUserID(),
		RequestID:  rv.RequestID(),
		Rating:     rv.Rating(),
		Comment:    rv.Comment(),
		CreatedAt:  rv.CreatedAt().Format(time.RFC3339),
	}
}
