package payment

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/chekwube-ononuju/movemates/internal/domain/payment"
	"github.com/chekwube-ononuju/movemates/internal/domain/user"
	otelinfra "github.com/chekwube-ononuju/movemates/internal/infrastructure/observability/otel"
)

// DefaultListLimit 決済履歴取得のデフォルト件数
const DefaultListLimit = 20

// PaymentApplicationService 決済アプリケーションサービス
//
// 金額は常にサーバー側で再計算する。クライアントが提示した合計や
// 手数料をそのまま使うことはない
type PaymentApplicationService struct {
	paymentRepo payment.PaymentRepository
	userRepo    user.UserRepository
	gateway     payment.Gateway
	logger      *otelinfra.Logger
	metrics     *otelinfra.Metrics
	tracer      trace.Tracer
}

// NewPaymentApplicationService 新しいPaymentApplicationServiceを作成
func NewPaymentApplicationService(
	paymentRepo payment.PaymentRepository,
	userRepo user.UserRepository,
	gateway payment.Gateway,
	logger *otelinfra.Logger,
	metrics *otelinfra.Metrics,
) *PaymentApplicationService {
	return &PaymentApplicationService{
		paymentRepo: paymentRepo,
		userRepo:    userRepo,
		gateway:     gateway,
		logger:      logger,
		metrics:     metrics,
		tracer:      otel.Tracer("payment-service"),
	}
}

// CreateIntent 手数料込みの合計を再計算してPaymentIntentを作成
//
// ガード（支払者の認証、自己支払い、受取人の存在）はプロセッサ呼び出しの
// 前に実行する
func (s *PaymentApplicationService) CreateIntent(ctx context.Context, req *CreateIntentRequest) (*CreateIntentResponse, error) {
	ctx, span := s.tracer.Start(ctx, "PaymentApplicationService.CreateIntent")
	defer span.End()

	span.SetAttributes(
		attribute.String("payment.payer_id", req.PayerID),
		attribute.String("payment.recipient_id", req.RecipientID),
	)

	if req.PayerID == req.RecipientID {
		span.SetStatus(otelcodes.Error, "self payment")
		return nil, payment.ErrSelfPayment
	}

	fee, err := payment.ComputeFee(req.Amount)
	if err != nil {
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, err
	}

	recipient, err := s.userRepo.FindByUserID(ctx, req.RecipientID)
	if err != nil {
		if err == user.ErrUserNotFound {
			span.SetStatus(otelcodes.Error, "recipient not found")
			return nil, err
		}
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, fmt.Errorf("failed to find recipient: %w", err)
	}

	intent, err := s.gateway.CreateIntent(ctx, fee.TotalAmountMinor(), payment.Currency)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		s.metrics.RecordPaymentIntent(ctx, "failed", 0)
		// プロセッサ由来の詳細はログに残すが、呼び出し元には定義済みの
		// エラーだけを返す
		s.logger.Error(ctx, "Failed to create payment intent", err, map[string]interface{}{
			"payer_id":     req.PayerID,
			"recipient_id": req.RecipientID,
		})
		if err == payment.ErrGatewayNotConfigured {
			return nil, err
		}
		return nil, payment.ErrIntentCreationFailed
	}

	p := payment.NewPayment(s.generatePaymentID(), req.PayerID, recipient.UserID(), fee, intent.IntentID)
	if req.RequestID != "" {
		p.SetRequestID(req.RequestID)
	}
	if req.Description != "" {
		p.SetDescription(req.Description)
	}

	if err := s.paymentRepo.Save(ctx, p); err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, fmt.Errorf("failed to save payment: %w", err)
	}

	s.metrics.RecordPaymentIntent(ctx, "created", fee.TotalAmountMinor())
	s.logger.Info(ctx, "Payment intent created", map[string]interface{}{
		"payment_id":         p.PaymentID(),
		"payer_id":           req.PayerID,
		"recipient_id":       recipient.UserID(),
		"total_amount_minor": fee.TotalAmountMinor(),
	})

	span.SetAttributes(attribute.Int64("payment.total_amount_minor", fee.TotalAmountMinor()))
	span.SetStatus(otelcodes.Ok, "intent created")

	return &CreateIntentResponse{
		PaymentID:        p.PaymentID(),
		ClientSecret:     intent.ClientSecret,
		BaseAmount:       fee.BaseAmount(),
		FeeAmount:        fee.FeeAmount(),
		TotalAmount:      fee.TotalAmount(),
		TotalAmountMinor: fee.TotalAmountMinor(),
		Currency:         payment.Currency,
	}, nil
}

// ConfirmPayment 作成済みのPaymentIntentを確認して結果を確定させる
//
// 結果は3通りに分岐する: 成功、プロセッサ失敗（人間可読メッセージを
// そのまま返す）、その他の非終端ステータス
func (s *PaymentApplicationService) ConfirmPayment(ctx context.Context, req *ConfirmPaymentRequest) (*ConfirmPaymentResponse, error) {
	ctx, span := s.tracer.Start(ctx, "PaymentApplicationService.ConfirmPayment")
	defer span.End()

	span.SetAttributes(attribute.String("payment.payment_id", req.PaymentID))

	p, err := s.paymentRepo.FindByPaymentID(ctx, req.PaymentID)
	if err != nil {
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, err
	}

	// 他人のPaymentは存在しないものとして扱う
	if p.PayerID() != req.PayerID {
		span.SetStatus(otelcodes.Error, "payer mismatch")
		return nil, payment.ErrPaymentNotFound
	}

	if p.Status().IsTerminal() {
		span.SetStatus(otelcodes.Error, "payment already finalized")
		return nil, payment.ErrPaymentAlreadyFinalized
	}

	recipient, err := s.userRepo.FindByUserID(ctx, p.RecipientID())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, fmt.Errorf("failed to find recipient: %w", err)
	}

	outcome, err := s.gateway.ConfirmIntent(ctx, p.IntentID(), req.PaymentMethodID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		s.logger.Error(ctx, "Failed to confirm payment intent", err, map[string]interface{}{
			"payment_id": p.PaymentID(),
		})
		return nil, fmt.Errorf("failed to confirm payment: %w", err)
	}

	resp := &ConfirmPaymentResponse{
		PaymentID:     p.PaymentID(),
		RecipientID:   recipient.UserID(),
		RecipientName: recipient.Name(),
		TotalAmount:   p.Fee().TotalAmount(),
	}

	switch outcome.Status {
	case payment.ConfirmStatusSucceeded:
		if err := p.Complete(); err != nil {
			span.SetStatus(otelcodes.Error, err.Error())
			return nil, err
		}
		if err := s.paymentRepo.Update(ctx, p); err != nil {
			span.RecordError(err)
			span.SetStatus(otelcodes.Error, err.Error())
			return nil, fmt.Errorf("failed to update payment: %w", err)
		}
		s.metrics.RecordPaymentIntent(ctx, "succeeded", p.Fee().TotalAmountMinor())
		s.logger.Info(ctx, "Payment completed", map[string]interface{}{
			"payment_id":         p.PaymentID(),
			"recipient_id":       recipient.UserID(),
			"total_amount_minor": p.Fee().TotalAmountMinor(),
		})
		resp.Status = payment.PaymentStatusCompleted.String()

	case payment.ConfirmStatusFailed:
		if err := p.Fail(); err != nil {
			span.SetStatus(otelcodes.Error, err.Error())
			return nil, err
		}
		if err := s.paymentRepo.Update(ctx, p); err != nil {
			span.RecordError(err)
			span.SetStatus(otelcodes.Error, err.Error())
			return nil, fmt.Errorf("failed to update payment: %w", err)
		}
		s.metrics.RecordPaymentIntent(ctx, "declined", 0)
		s.logger.Warn(ctx, "Payment failed", map[string]interface{}{
			"payment_id": p.PaymentID(),
		})
		resp.Status = payment.PaymentStatusFailed.String()
		resp.Message = outcome.Message

	default:
		// 非終端ステータス。成功として扱わず、Paymentはpendingのまま
		s.metrics.RecordPaymentIntent(ctx, "requires_action", 0)
		resp.Status = string(payment.ConfirmStatusRequiresAction)
	}

	span.SetAttributes(attribute.String("payment.outcome", resp.Status))
	span.SetStatus(otelcodes.Ok, "payment confirmed")
	return resp, nil
}

// ListPayments 支払者または受取人としての決済履歴を取得
func (s *PaymentApplicationService) ListPayments(ctx context.Context, req *ListPaymentsRequest) (*ListPaymentsResponse, error) {
	ctx, span := s.tracer.Start(ctx, "PaymentApplicationService.ListPayments")
	defer span.End()

	span.SetAttributes(attribute.String("payment.user_id", req.UserID))

	limit := req.Limit
	if limit <= 0 || limit > 100 {
		limit = DefaultListLimit
	}
	offset := req.Offset
	if offset < 0 {
		offset = 0
	}

	payments, err := s.paymentRepo.FindByUserID(ctx, req.UserID, limit, offset)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	summaries := make([]PaymentSummary, 0, len(payments))
	for _, p := range payments {
		summaries = append(summaries, PaymentSummary{
			PaymentID:   p.PaymentID(),
			PayerID:     p.PayerID(),
			RecipientID: p.RecipientID(),
			RequestID:   p.RequestID(),
			BaseAmount:  p.Fee().BaseAmount(),
			FeeAmount:   p.Fee().FeeAmount(),
			TotalAmount: p.Fee().TotalAmount(),
			Status:      p.Status().String(),
			Description: p.Description(),
			CreatedAt:   p.CreatedAt().Format(time.RFC3339),
		})
	}

	span.SetAttributes(attribute.Int("payment.count", len(summaries)))
	span.SetStatus(otelcodes.Ok, "payments listed")

	return &ListPaymentsResponse{
		Payments: summaries,
		Limit:    limit,
		Offset:   offset,
	}, nil
}

// generatePaymentID 決済IDを生成
func (s *PaymentApplicationService) generatePaymentID() string {
	return fmt.Sprintf("pay_%d", time.Now().UnixNano())
}
