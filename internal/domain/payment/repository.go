package payment

import (
	"context"
)

// PaymentRepository 決済リポジトリインターフェース
type PaymentRepository interface {
	// Save Paymentを保存（同一IDは上書き）
	Save(ctx context.Context, payment *Payment) error

	// FindByPaymentID 決済IDでPaymentを取得
	FindByPaymentID(ctx context.Context, paymentID string) (*Payment, error)

	// FindByUserID 支払者または受取人としてのPayment一覧を取得
	FindByUserID(ctx context.Context, userID string, limit, offset int) ([]*Payment, error)

	// Update Paymentを更新
	Update(ctx context.Context, payment *Payment) error
}
