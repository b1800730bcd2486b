package stripe

import (
	"context"
	"errors"
	"fmt"

	stripego "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/chekwube-ononuju/movemates/internal/domain/payment"
	"github.com/chekwube-ononuju/movemates/internal/infrastructure/config"
)

// Gateway Stripe実装のpayment.Gateway
//
// シークレットキーが未設定のままでも構築できる。その場合、各操作は
// ネットワーク呼び出しを行わずにErrGatewayNotConfiguredを返す
type Gateway struct {
	api       *client.API
	secretKey string
	tracer    trace.Tracer
}

// NewGateway 新しいGatewayを作成
func NewGateway(cfg *config.StripeConfig) *Gateway {
	g := &Gateway{
		secretKey: cfg.SecretKey,
		tracer:    otel.Tracer("stripe-gateway"),
	}
	if cfg.SecretKey != "" {
		g.api = &client.API{}
		g.api.Init(cfg.SecretKey, nil)
	}
	return g
}

// CreateIntent 指定金額（セント）のPaymentIntentを作成する
func (g *Gateway) CreateIntent(ctx context.Context, amountMinor int64, currency string) (*payment.Intent, error) {
	ctx, span := g.tracer.Start(ctx, "StripeGateway.CreateIntent")
	defer span.End()

	span.SetAttributes(
		attribute.Int64("stripe.amount_minor", amountMinor),
		attribute.String("stripe.currency", currency),
	)

	if g.api == nil {
		span.SetStatus(otelcodes.Error, "gateway not configured")
		return nil, payment.ErrGatewayNotConfigured
	}

	params := &stripego.PaymentIntentParams{
		Params: stripego.Params{
			Context: ctx,
		},
		Amount:   stripego.Int64(amountMinor),
		Currency: stripego.String(currency),
		AutomaticPaymentMethods: &stripego.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripego.Bool(true),
		},
	}

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, fmt.Errorf("%w: %v", payment.ErrIntentCreationFailed, err)
	}

	span.SetAttributes(attribute.String("stripe.intent_id", pi.ID))
	span.SetStatus(otelcodes.Ok, "intent created")

	return &payment.Intent{
		IntentID:     pi.ID,
		ClientSecret: pi.ClientSecret,
		AmountMinor:  pi.Amount,
		Currency:     string(pi.Currency),
	}, nil
}

// ConfirmIntent 支払手段を指定してPaymentIntentを確認する
//
// カード拒否はエラーではなく失敗Outcomeとして返す。Stripeの人間可読な
// メッセージだけをOutcomeに載せ、それ以外のエラー詳細は伝播させない
func (g *Gateway) ConfirmIntent(ctx context.Context, intentID string, paymentMethodID string) (*payment.ConfirmOutcome, error) {
	ctx, span := g.tracer.Start(ctx, "StripeGateway.ConfirmIntent")
	defer span.End()

	span.SetAttributes(attribute.String("stripe.intent_id", intentID))

	if g.api == nil {
		span.SetStatus(otelcodes.Error, "gateway not configured")
		return nil, payment.ErrGatewayNotConfigured
	}

	params := &stripego.PaymentIntentConfirmParams{
		Params: stripego.Params{
			Context: ctx,
		},
		PaymentMethod: stripego.String(paymentMethodID),
	}

	pi, err := g.api.PaymentIntents.Confirm(intentID, params)
	if err != nil {
		var stripeErr *stripego.Error
		if errors.As(err, &stripeErr) && stripeErr.Type == stripego.ErrorTypeCard {
			span.SetAttributes(attribute.String("stripe.decline_code", string(stripeErr.DeclineCode)))
			span.SetStatus(otelcodes.Ok, "card declined")
			return &payment.ConfirmOutcome{
				Status:  payment.ConfirmStatusFailed,
				Message: stripeErr.Msg,
			}, nil
		}
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, fmt.Errorf("failed to confirm payment intent: %w", err)
	}

	span.SetAttributes(attribute.String("stripe.intent_status", string(pi.Status)))

	switch pi.Status {
	case stripego.PaymentIntentStatusSucceeded:
		span.SetStatus(otelcodes.Ok, "intent succeeded")
		return &payment.ConfirmOutcome{Status: payment.ConfirmStatusSucceeded}, nil
	case stripego.PaymentIntentStatusRequiresAction, stripego.PaymentIntentStatusRequiresConfirmation:
		span.SetStatus(otelcodes.Ok, "intent requires action")
		return &payment.ConfirmOutcome{Status: payment.ConfirmStatusRequiresAction}, nil
	default:
		span.SetStatus(otelcodes.Ok, "intent not completed")
		return &payment.ConfirmOutcome{
			Status:  payment.ConfirmStatusFailed,
			Message: "Your payment could not be completed",
		}, nil
	}
}
