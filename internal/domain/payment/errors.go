package payment

import "errors"

var (
	// ErrInvalidAmount 金額が無効（非正・非有限・上限超過）エラー
	ErrInvalidAmount = errors.New("missing or invalid amount")
	// ErrSelfPayment 自分自身への支払いエラー
	ErrSelfPayment = errors.New("cannot pay yourself")
	// ErrPaymentNotFound 決済が見つからないエラー
	ErrPaymentNotFound = errors.New("payment not found")
	// ErrPaymentAlreadyFinalized 既に確定済みの決済エラー
	ErrPaymentAlreadyFinalized = errors.New("payment already finalized")
	// ErrGatewayNotConfigured 決済プロバイダの資格情報が未設定エラー
	ErrGatewayNotConfigured = errors.New("stripe secret key not configured")
	// ErrIntentCreationFailed PaymentIntent作成失敗エラー（詳細はログのみ）
	ErrIntentCreationFailed = errors.New("failed to create payment intent")
)
