package mysql

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
)

// ReviewRepository MySQL実装のReviewRepository
type ReviewRepository struct {
	db     *DB
	tracer trace.Tracer
}

// NewReviewRepository 新しいReviewRepositoryを作成
func NewReviewRepository(db *DB) *ReviewRepository {
	return &ReviewRepository{
		db:     db,
		tracer: otel.Tracer("review-repository"),
	}
}

// Save Reviewを保存
func (r *ReviewRepository) Save(ctx context.Context, rv *review.Review) error {
	return r.save(ctx, r.db, rv)
}

// SaveTx トランザクション内でReviewを保存
func (r *ReviewRepository) SaveTx(ctx context.Context, tx *sql.Tx, rv *review.Review) error {
	return r.save(ctx, tx, rv)
}

func (r *ReviewRepository) save(ctx context.Context, exec executor, rv *review.Review) error {
	ctx, span := r.tracer.Start(ctx, "ReviewRepository.Save")
	defer span.End()

	span.SetAttributes(
		attribute.String("db.review_id", rv.ReviewID()),
		attribute.String("db.operation", "INSERT"),
		attribute.String("db.table", "reviews"),
	)

	query := `
		INSERT INTO reviews (
			review_id, from_user_id, to_user_id, request_id,
			rating, comment, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := exec.ExecContext(ctx, query,
		rv.ReviewID(),
		rv.FromUserID(),
		rv.ToUserID(),
		rv.RequestID(),
		rv.Rating(),
		rv.Comment(),
		rv.CreatedAt(),
	)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return fmt.Errorf("failed to save review: %w", err)
	}

	span.SetStatus(otelcodes.Ok, "review saved")
	return nil
}

// FindByToUserID 受け取ったレビュー一覧を取得（新しい順）
func (r *ReviewRepository) FindByToUserID(ctx context.Context, toUserID string) ([]*review.Review, error) {
	return r.findByToUserID(ctx, r.db, toUserID)
}

// FindByToUserIDTx トランザクション内で受け取ったレビュー一覧を取得（新しい順）
func (r *ReviewRepository) FindByToUserIDTx(ctx context.Context, tx *sql.Tx, toUserID string) ([]*review.Review, error) {
	return r.findByToUserID(ctx, tx, toUserID)
}

func (r *ReviewRepository) findByToUserID(ctx context.Context, exec executor, toUserID string) ([]*review.Review, error) {
	ctx, span := r.tracer.Start(ctx, "ReviewRepository.FindByToUserID")
	defer span.End()

	span.SetAttributes(
		attribute.String("db.to_user_id", toUserID),
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.table", "reviews"),
	)

	query := `
		SELECT review_id, from_user_id, to_user_id, request_id,
			rating, comment, created_at
		FROM reviews
		WHERE to_user_id = ?
		ORDER BY created_at DESC
	`

	rows, err := exec.QueryContext(ctx, query, toUserID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer rows.Close()

	var reviews []*review.Review
	for rows.Next() {
		var reviewID, fromUserID, dbToUserID, requestID, comment string
		var rating int
		var createdAt time.Time

		if err := rows.Scan(
			&reviewID,
			&fromUserID,
			&dbToUserID,
			&requestID,
			&rating,
			&comment,
			&createdAt,
		); err != nil {
			span.RecordError(err)
			span.SetStatus(otelcodes.Error, err.Error())
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}

		reviews = append(reviews, review.Restore(
			reviewID,
			fromUserID,
			dbToUserID,
			requestID,
			rating,
			comment,
			createdAt,
		))
	}
	if err := rows.Err(); err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, fmt.Errorf("failed to iterate reviews: %w", err)
	}

	span.SetAttributes(attribute.Int("db.review_count", len(reviews)))
	span.SetStatus(otelcodes.Ok, "reviews found")
	return reviews, nil
}
