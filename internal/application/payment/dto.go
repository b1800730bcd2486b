package payment

// CreateIntentRequest PaymentIntent作成リクエスト
type CreateIntentRequest struct {
	PayerID     string
	RecipientID string
	RequestID   string // 関連するMoveRequest（任意）
	Amount      float64
	Description string
}

// CreateIntentResponse PaymentIntent作成レスポンス
type CreateIntentResponse struct {
	PaymentID        string
	ClientSecret     string
	BaseAmount       float64
	FeeAmount        float64
	TotalAmount      float64 // 主要単位（ドル）
	TotalAmountMinor int64   // マイナー単位（セント）
	Currency         string
}

// ConfirmPaymentRequest 決済確認リクエスト
type ConfirmPaymentRequest struct {
	PaymentID       string
	PayerID         string
	PaymentMethodID string
}

// ConfirmPaymentResponse 決済確認レスポンス
type ConfirmPaymentResponse struct {
	PaymentID     string
	Status        string // "completed" / "failed" / "requires_action"
	RecipientID   string
	RecipientName string
	TotalAmount   float64
	// Message 失敗時のプロセッサ由来メッセージ（成功時は空）
	Message string
}

// PaymentSummary 決済履歴の1件
type PaymentSummary struct {
	PaymentID   string
	PayerID     string
	RecipientID string
	RequestID   string
	BaseAmount  float64
	FeeAmount   float64
	TotalAmount float64
	Status      string
	Description string
	CreatedAt   string // RFC3339
}

// ListPaymentsRequest 決済履歴取得リクエスト
type ListPaymentsRequest struct {
	UserID string
	Limit  int
	Offset int
}

// ListPaymentsResponse 決済履歴取得レスポンス
type ListPaymentsResponse struct {
	Payments []PaymentSummary
	Limit    int
	Offset   int
}
