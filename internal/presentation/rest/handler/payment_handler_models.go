package handler

// CreateIntentRequest PaymentIntent作成リクエスト
// @Description PaymentIntent作成リクエスト。amountは数値または数値文字列を受け付けます
type CreateIntentRequest struct {
	RecipientID string      `json:"recipient_id" example:"user_1700000000000000001"`
	RequestID   string      `json:"request_id,omitempty" example:"req_1700000000000000002"`
	Amount      interface{} `json:"amount" swaggertype:"number" example:"50.00"`
	Description string      `json:"description,omitempty" example:"Dorm move on Saturday"`
}

// CreateIntentResponse PaymentIntent作成レスポンス
// @Description PaymentIntent作成レスポンス
type CreateIntentResponse struct {
	PaymentID        string  `json:"payment_id" example:"pay_1700000000000000003"`
	ClientSecret     string  `json:"client_secret" example:"pi_3Nxxx_secret_xxx"`
	BaseAmount       float64 `json:"base_amount" example:"50.00"`
	FeeAmount        float64 `json:"fee_amount" example:"5.00"`
	TotalAmount      float64 `json:"total_amount" example:"55.00"`
	TotalAmountMinor int64   `json:"total_amount_minor" example:"5500"`
	Currency         string  `json:"currency" example:"usd"`
}

// ConfirmPaymentRequest 決済確認リクエスト
// @Description 決済確認リクエスト
type ConfirmPaymentRequest struct {
	PaymentID       string `json:"payment_id" example:"pay_1700000000000000003"`
	PaymentMethodID string `json:"payment_method_id" example:"pm_card_visa"`
}

// ConfirmPaymentResponse 決済確認レスポンス
// @Description 決済確認レスポンス
type ConfirmPaymentResponse struct {
	PaymentID     string  `json:"payment_id" example:"pay_1700000000000000003"`
	Status        string  `json:"status" example:"completed"`
	RecipientID   string  `json:"recipient_id" example:"user_1700000000000000001"`
	RecipientName string  `json:"recipient_name" example:"Jordan Lee"`
	TotalAmount   float64 `json:"total_amount" example:"55.00"`
	Message       string  `json:"message,omitempty" example:"Your card was declined."`
}

// PaymentSummary 決済履歴の1件
// @Description 決済履歴の1件
type PaymentSummary struct {
	PaymentID   string  `json:"payment_id" example:"pay_1700000000000000003"`
	PayerID     string  `json:"payer_id" example:"user_1700000000000000000"`
	RecipientID string  `json:"recipient_id" example:"user_1700000000000000001"`
	RequestID   string  `json:"request_id,omitempty" example:"req_1700000000000000002"`
	BaseAmount  float64 `json:"base_amount" example:"50.00"`
	FeeAmount   float64 `json:"fee_amount" example:"5.00"`
	TotalAmount float64 `json:"total_amount" example:"55.00"`
	Status      string  `json:"status" example:"completed"`
	Description string  `json:"description,omitempty" example:"Dorm move on Saturday"`
	CreatedAt   string  `json:"created_at" example:"2024-11-15T09:30:00Z"`
}

// ListPaymentsResponse 決済履歴取得レスポンス
// @Description 決済履歴取得レスポンス
type ListPaymentsResponse struct {
	Payments []PaymentSummary `json:"payments"`
	Limit    int              `json:"limit" example:"20"`
	Offset   int              `json:"offset" example:"0"`
}
