package payment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPayment(t *testing.T) *Payment {
	t.Helper()
	fee, err := ComputeFee(25.50)
	require.NoError(t, err)
	return NewPayment("pay_123", "user1", "helper1", fee, "pi_abc")
}

func TestNewPayment(t *testing.T) {
	p := newTestPayment(t)

	assert.Equal(t, "pay_123", p.PaymentID())
	assert.Equal(t, "user1", p.PayerID())
	assert.Equal(t, "helper1", p.RecipientID())
	assert.Equal(t, "pi_abc", p.IntentID())
	assert.Equal(t, PaymentStatusPending, p.Status())
	assert.True(t, p.IsPending())
	assert.False(t, p.IsCompleted())
	assert.Equal(t, int64(2805), p.Fee().TotalAmountMinor())
}

func TestPayment_Complete(t *testing.T) {
	p := newTestPayment(t)

	err := p.Complete()
	require.NoError(t, err)
	assert.True(t, p.IsCompleted())

	// 確定後の再遷移は拒否される
	err = p.Complete()
	assert.ErrorIs(t, err, ErrPaymentAlreadyFinalized)
	err = p.Fail()
	assert.ErrorIs(t, err, ErrPaymentAlreadyFinalized)
}

func TestPayment_Fail(t *testing.T) {
	p := newTestPayment(t)

	err := p.Fail()
	require.NoError(t, err)
	assert.Equal(t, PaymentStatusFailed, p.Status())

	err = p.Complete()
	assert.ErrorIs(t, err, ErrPaymentAlreadyFinalized)
}

func TestPayment_Cancel(t *testing.T) {
	p := newTestPayment(t)

	err := p.Cancel()
	require.NoError(t, err)
	assert.Equal(t, PaymentStatusCancelled, p.Status())
	assert.True(t, p.Status().IsTerminal())
}

func TestRestore(t *testing.T) {
	fee := RestoreFee(50.00, 0.10, 5500)
	now := time.Now()
	p := Restore("pay_1", "user1", "helper1", "req1", fee, "pi_1", PaymentStatusCompleted, "moving help", now, now)

	assert.Equal(t, "pay_1", p.PaymentID())
	assert.Equal(t, "req1", p.RequestID())
	assert.Equal(t, "moving help", p.Description())
	assert.True(t, p.IsCompleted())
	assert.Equal(t, int64(5500), p.Fee().TotalAmountMinor())
	assert.InDelta(t, 55.00, p.Fee().TotalAmount(), 1e-9)
}

func TestNewPaymentStatus(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      PaymentStatus
		wantError bool
	}{
		{name: "正常系: pending", input: "pending", want: PaymentStatusPending},
		{name: "正常系: completed", input: "completed", want: PaymentStatusCompleted},
		{name: "正常系: failed", input: "failed", want: PaymentStatusFailed},
		{name: "正常系: cancelled", input: "cancelled", want: PaymentStatusCancelled},
		{name: "異常系: 無効なステータス", input: "unknown", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewPaymentStatus(tt.input)
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.Valid())
		})
	}
}
