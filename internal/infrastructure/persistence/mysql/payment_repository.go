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

	"github.com/chekwube-ononuju/movemates/internal/domain/payment"
)

// PaymentRepository MySQL実装のPaymentRepository
type PaymentRepository struct {
	db     *DB
	tracer trace.Tracer
}

// NewPaymentRepository 新しいPaymentRepositoryを作成
func NewPaymentRepository(db *DB) *PaymentRepository {
	return &PaymentRepository{
		db:     db,
		tracer: otel.Tracer("payment-repository"),
	}
}

// Save Paymentを保存
func (r *PaymentRepository) Save(ctx context.Context, p *payment.Payment) error {
	ctx, span := r.tracer.Start(ctx, "PaymentRepository.Save")
	defer span.End()

	span.SetAttributes(
		attribute.String("db.payment_id", p.PaymentID()),
		attribute.String("db.operation", "INSERT"),
		attribute.String("db.table", "payments"),
	)

	query := `
		INSERT INTO payments (
			payment_id, payer_id, recipient_id, request_id,
			base_amount, fee_rate, total_amount_minor,
			intent_id, status, description,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			status = VALUES(status),
			description = VALUES(description),
			updated_at = VALUES(updated_at)
	`

	fee := p.Fee()
	_, err := r.db.ExecContext(ctx, query,
		p.PaymentID(),
		p.PayerID(),
		p.RecipientID(),
		nullableString(p.RequestID()),
		fee.BaseAmount(),
		fee.FeeRate(),
		fee.TotalAmountMinor(),
		p.IntentID(),
		p.Status().String(),
		p.Description(),
		p.CreatedAt(),
		p.UpdatedAt(),
	)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return fmt.Errorf("failed to save payment: %w", err)
	}

	span.SetStatus(otelcodes.Ok, "payment saved")
	return nil
}

// FindByPaymentID 決済IDでPaymentを取得
func (r *PaymentRepository) FindByPaymentID(ctx context.Context, paymentID string) (*payment.Payment, error) {
	ctx, span := r.tracer.Start(ctx, "PaymentRepository.FindByPaymentID")
	defer span.End()

	span.SetAttributes(
		attribute.String("db.payment_id", paymentID),
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.table", "payments"),
	)

	query := selectPaymentColumns + ` WHERE payment_id = ?`

	p, err := r.scanPayment(r.db.QueryRowContext(ctx, query, paymentID))
	if err == sql.ErrNoRows {
		span.SetStatus(otelcodes.Ok, "payment not found")
		return nil, payment.ErrPaymentNotFound
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, fmt.Errorf("failed to find payment: %w", err)
	}

	span.SetStatus(otelcodes.Ok, "payment found")
	return p, nil
}

// FindByUserID 支払者または受取人としてのPayment一覧を取得
func (r *PaymentRepository) FindByUserID(ctx context.Context, userID string, limit, offset int) ([]*payment.Payment, error) {
	ctx, span := r.tracer.Start(ctx, "PaymentRepository.FindByUserID")
	defer span.End()

	span.SetAttributes(
		attribute.String("db.user_id", userID),
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.table", "payments"),
	)

	query := selectPaymentColumns + `
		WHERE payer_id = ? OR recipient_id = ?
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?`

	rows, err := r.db.QueryContext(ctx, query, userID, userID, limit, offset)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	var payments []*payment.Payment
	for rows.Next() {
		p, err := r.scanPayment(rows)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(otelcodes.Error, err.Error())
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, fmt.Errorf("failed to iterate payments: %w", err)
	}

	span.SetAttributes(attribute.Int("db.payment_count", len(payments)))
	span.SetStatus(otelcodes.Ok, "payments found")
	return payments, nil
}

// Update Paymentを更新
func (r *PaymentRepository) Update(ctx context.Context, p *payment.Payment) error {
	return r.Save(ctx, p)
}

const selectPaymentColumns = `
	SELECT payment_id, payer_id, recipient_id, request_id,
		base_amount, fee_rate, total_amount_minor,
		intent_id, status, description,
		created_at, updated_at
	FROM payments`

func (r *PaymentRepository) scanPayment(row rowScanner) (*payment.Payment, error) {
	var paymentID, payerID, recipientID string
	var requestID sql.NullString
	var baseAmount, feeRate float64
	var totalAmountMinor int64
	var intentID, dbStatus, description string
	var createdAt, updatedAt time.Time

	err := row.Scan(
		&paymentID,
		&payerID,
		&recipientID,
		&requestID,
		&baseAmount,
		&feeRate,
		&totalAmountMinor,
		&intentID,
		&dbStatus,
		&description,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	status, err := payment.NewPaymentStatus(dbStatus)
	if err != nil {
		return nil, fmt.Errorf("invalid payment status: %w", err)
	}

	return payment.Restore(
		paymentID,
		payerID,
		recipientID,
		requestID.String,
		payment.RestoreFee(baseAmount, feeRate, totalAmountMinor),
		intentID,
		status,
		description,
		createdAt,
		updatedAt,
	), nil
}
