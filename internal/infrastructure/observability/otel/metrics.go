package otel

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics メトリクス定義
type Metrics struct {
	// PaymentIntent作成数
	PaymentIntentCount metric.Int64Counter

	// 請求総額（セント）の分布
	ChargedAmount metric.Int64Histogram

	// MoveRequest作成数
	MoveRequestCount metric.Int64Counter

	// レビュー作成数
	ReviewCount metric.Int64Counter

	// リクエスト数
	RequestCount metric.Int64Counter

	// レスポンス時間
	ResponseTime metric.Float64Histogram

	// エラー率
	ErrorCount metric.Int64Counter
}

// NewMetrics 新しいMetricsを作成
func NewMetrics(meterName string) (*Metrics, error) {
	meter := otel.Meter(meterName)

	paymentIntentCount, err := meter.Int64Counter(
		"payment_intents_total",
		metric.WithDescription("Total number of payment intents created"),
	)
	if err != nil {
		return nil, err
	}

	chargedAmount, err := meter.Int64Histogram(
		"charged_amount_cents",
		metric.WithDescription("Charged totals in minor units"),
	)
	if err != nil {
		return nil, err
	}

	moveRequestCount, err := meter.Int64Counter(
		"move_requests_total",
		metric.WithDescription("Total number of move requests created"),
	)
	if err != nil {
		return nil, err
	}

	reviewCount, err := meter.Int64Counter(
		"reviews_total",
		metric.WithDescription("Total number of reviews created"),
	)
	if err != nil {
		return nil, err
	}

	requestCount, err := meter.Int64Counter(
		"requests_total",
		metric.WithDescription("Total number of requests"),
	)
	if err != nil {
		return nil, err
	}

	responseTime, err := meter.Float64Histogram(
		"response_time_seconds",
		metric.WithDescription("Response time in seconds"),
	)
	if err != nil {
		return nil, err
	}

	errorCount, err := meter.Int64Counter(
		"errors_total",
		metric.WithDescription("Total number of errors"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		PaymentIntentCount: paymentIntentCount,
		ChargedAmount:      chargedAmount,
		MoveRequestCount:   moveRequestCount,
		ReviewCount:        reviewCount,
		RequestCount:       requestCount,
		ResponseTime:       responseTime,
		ErrorCount:         errorCount,
	}, nil
}

// RecordPaymentIntent PaymentIntentの作成を記録
func (m *Metrics) RecordPaymentIntent(ctx context.Context, outcome string, amountMinor int64) {
	m.PaymentIntentCount.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("outcome", outcome),
		),
	)
	if amountMinor > 0 {
		m.ChargedAmount.Record(ctx, amountMinor,
			metric.WithAttributes(
				attribute.String("outcome", outcome),
			),
		)
	}
}

// RecordMoveRequest MoveRequestの作成を記録
func (m *Metrics) RecordMoveRequest(ctx context.Context, status string) {
	m.MoveRequestCount.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("status", status),
		),
	)
}

// RecordReview レビューの作成を記録
func (m *Metrics) RecordReview(ctx context.Context, rating int) {
	m.ReviewCount.Add(ctx, 1,
		metric.WithAttributes(
			attribute.Int("rating", rating),
		),
	)
}

// RecordRequest リクエストを記録
func (m *Metrics) RecordRequest(ctx context.Context, method, path string) {
	m.RequestCount.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("method", method),
			attribute.String("path", path),
		),
	)
}

// RecordResponseTime レスポンス時間を記録
func (m *Metrics) RecordResponseTime(ctx context.Context, method, path string, duration float64) {
	m.ResponseTime.Record(ctx, duration,
		metric.WithAttributes(
			attribute.String("method", method),
			attribute.String("path", path),
		),
	)
}

// RecordError エラーを記録
func (m *Metrics) RecordError(ctx context.Context, errorType string) {
	m.ErrorCount.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("error_type", errorType),
		),
	)
}
