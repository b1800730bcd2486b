package payment

import (
	"fmt"
)

// PaymentStatus 決済ステータスを表す値オブジェクト
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"   // Intent作成済み・未確定
	PaymentStatusCompleted PaymentStatus = "completed" // 決済成功
	PaymentStatusFailed    PaymentStatus = "failed"    // 決済失敗
	PaymentStatusCancelled PaymentStatus = "cancelled" // キャンセル
)

// NewPaymentStatus 新しいPaymentStatusを作成
func NewPaymentStatus(s string) (PaymentStatus, error) {
	switch s {
	case "pending", "completed", "failed", "cancelled":
		return PaymentStatus(s), nil
	default:
		return "", fmt.Errorf("invalid payment status: %s", s)
	}
}

// String 文字列表現を返す
func (ps PaymentStatus) String() string {
	return string(ps)
}

// Valid 有効な決済ステータスかどうかを返す
func (ps PaymentStatus) Valid() bool {
	switch ps {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed, PaymentStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal 確定済み（成功・失敗・キャンセル）かどうかを返す
func (ps PaymentStatus) IsTerminal() bool {
	return ps != PaymentStatusPending
}
