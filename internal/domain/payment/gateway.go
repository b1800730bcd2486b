package payment

import (
	"context"
)

// Intent プロセッサが発行した決済のオーソリゼーションハンドル
// ClientSecretは不透明トークンであり、ログに出力してはならない
type Intent struct {
	IntentID     string
	ClientSecret string
	AmountMinor  int64
	Currency     string
}

// ConfirmOutcome 確認リクエストの結果
type ConfirmOutcome struct {
	Status ConfirmStatus
	// Message プロセッサの人間可読なエラーメッセージ
	// カード拒否など支払者に提示してよい唯一のプロセッサ由来テキスト
	Message string
}

// ConfirmStatus 確認結果のステータス
type ConfirmStatus string

const (
	ConfirmStatusSucceeded      ConfirmStatus = "succeeded"       // 決済成功
	ConfirmStatusFailed         ConfirmStatus = "failed"          // 決済失敗
	ConfirmStatusRequiresAction ConfirmStatus = "requires_action" // 追加操作が必要（非終端）
)

// Gateway 決済プロセッサへのポート
//
// 資格情報が未設定の場合は、いかなるネットワーク呼び出しも行わずに
// ErrGatewayNotConfiguredを返すこと
type Gateway interface {
	// CreateIntent 指定金額（セント）のPaymentIntentを作成する
	CreateIntent(ctx context.Context, amountMinor int64, currency string) (*Intent, error)

	// ConfirmIntent 支払手段を指定してPaymentIntentを確認する
	ConfirmIntent(ctx context.Context, intentID string, paymentMethodID string) (*ConfirmOutcome, error)
}
