package payment

import (
	"time"
)

// Payment 決済レコードエンティティ
//
// サーバーが作成したPaymentIntentと確認結果を突き合わせるための
// ローカル台帳。金銭移動の真実はプロセッサ側にあり、このレコードは
// 1回のチェックアウトフローの参照としてのみ使う
type Payment struct {
	paymentID   string
	payerID     string
	recipientID string
	requestID   string // 関連するMoveRequest（任意）
	fee         *FeeComputation
	intentID    string
	status      PaymentStatus
	description string
	createdAt   time.Time
	updatedAt   time.Time
}

// NewPayment 新しいPaymentエンティティを作成
func NewPayment(
	paymentID string,
	payerID string,
	recipientID string,
	fee *FeeComputation,
	intentID string,
) *Payment {
	now := time.Now()
	return &Payment{
		paymentID:   paymentID,
		payerID:     payerID,
		recipientID: recipientID,
		fee:         fee,
		intentID:    intentID,
		status:      PaymentStatusPending,
		createdAt:   now,
		updatedAt:   now,
	}
}

// PaymentID 決済IDを返す
func (p *Payment) PaymentID() string {
	return p.paymentID
}

// PayerID 支払者のユーザーIDを返す
func (p *Payment) PayerID() string {
	return p.payerID
}

// RecipientID 受取人のユーザーIDを返す
func (p *Payment) RecipientID() string {
	return p.recipientID
}

// RequestID 関連するMoveRequest IDを返す（未設定なら空文字）
func (p *Payment) RequestID() string {
	return p.requestID
}

// Fee 手数料計算結果を返す
func (p *Payment) Fee() *FeeComputation {
	return p.fee
}

// IntentID プロセッサ発行のPaymentIntent IDを返す
func (p *Payment) IntentID() string {
	return p.intentID
}

// Status ステータスを返す
func (p *Payment) Status() PaymentStatus {
	return p.status
}

// Description 支払いの説明を返す
func (p *Payment) Description() string {
	return p.description
}

// CreatedAt 作成日時を返す
func (p *Payment) CreatedAt() time.Time {
	return p.createdAt
}

// UpdatedAt 更新日時を返す
func (p *Payment) UpdatedAt() time.Time {
	return p.updatedAt
}

// SetRequestID 関連するMoveRequest IDを設定
func (p *Payment) SetRequestID(requestID string) {
	p.requestID = requestID
	p.updatedAt = time.Now()
}

// SetDescription 支払いの説明を設定
func (p *Payment) SetDescription(description string) {
	p.description = description
	p.updatedAt = time.Now()
}

// Complete 決済を成功状態にする
func (p *Payment) Complete() error {
	if p.status.IsTerminal() {
		return ErrPaymentAlreadyFinalized
	}
	p.status = PaymentStatusCompleted
	p.updatedAt = time.Now()
	return nil
}

// Fail 決済を失敗状態にする
func (p *Payment) Fail() error {
	if p.status.IsTerminal() {
		return ErrPaymentAlreadyFinalized
	}
	p.status = PaymentStatusFailed
	p.updatedAt = time.Now()
	return nil
}

// Cancel 決済をキャンセル状態にする
func (p *Payment) Cancel() error {
	if p.status.IsTerminal() {
		return ErrPaymentAlreadyFinalized
	}
	p.status = PaymentStatusCancelled
	p.updatedAt = time.Now()
	return nil
}

// IsCompleted 成功状態かどうかを返す
func (p *Payment) IsCompleted() bool {
	return p.status == PaymentStatusCompleted
}

// IsPending 未確定状態かどうかを返す
func (p *Payment) IsPending() bool {
	return p.status == PaymentStatusPending
}

// Restore 永続化されたデータからPaymentエンティティを復元する
func Restore(
	paymentID string,
	payerID string,
	recipientID string,
	requestID string,
	fee *FeeComputation,
	intentID string,
	status PaymentStatus,
	description string,
	createdAt time.Time,
	updatedAt time.Time,
) *Payment {
	return &Payment{
		paymentID:   paymentID,
		payerID:     payerID,
		recipientID: recipientID,
		requestID:   requestID,
		fee:         fee,
		intentID:    intentID,
		status:      status,
		description: description,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// RestoreFee 永続化された値からFeeComputationを復元する
func RestoreFee(baseAmount float64, feeRate float64, totalAmountMinor int64) *FeeComputation {
	return &FeeComputation{
		baseAmount:       baseAmount,
		feeRate:          feeRate,
		totalAmountMinor: totalAmountMinor,
	}
}
