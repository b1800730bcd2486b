package mysql

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"github.com/chekwube-ononuju/movemates/internal/domain/payment"
)

func paymentColumns() []string {
	return []string{
		"payment_id", "payer_id", "recipient_id", "request_id",
		"base_amount", "fee_rate", "total_amount_minor",
		"intent_id", "status", "description",
		"created_at", "updated_at",
	}
}

func newTestPayment(t *testing.T) *payment.Payment {
	t.Helper()
	fee, err := payment.ComputeFee(50.00)
	require.NoError(t, err)
	p := payment.NewPayment("pay123", "user123", "helper456", fee, "pi_test_123")
	p.SetRequestID("req123")
	p.SetDescription("Dorm move payment")
	return p
}

func TestPaymentRepository_Save(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := &PaymentRepository{
		db:     &DB{DB: db},
		tracer: otel.Tracer("test"),
	}

	tests := []struct {
		name      string
		setupMock func()
		wantError bool
	}{
		{
			name: "正常系: Paymentを保存",
			setupMock: func() {
				mock.ExpectExec(`INSERT INTO payments`).
					WithArgs(
						"pay123",
						"user123",
						"helper456",
						sqlmock.AnyArg(),
						50.00,
						0.10,
						int64(5500),
						"pi_test_123",
						"pending",
						"Dorm move payment",
						sqlmock.AnyArg(),
						sqlmock.AnyArg(),
					).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
			wantError: false,
		},
		{
			name: "異常系: DBエラー",
			setupMock: func() {
				mock.ExpectExec(`INSERT INTO payments`).
					WillReturnError(sql.ErrConnDone)
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()
			ctx := context.Background()
			err := repo.Save(ctx, newTestPayment(t))

			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPaymentRepository_FindByPaymentID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := &PaymentRepository{
		db:     &DB{DB: db},
		tracer: otel.Tracer("test"),
	}

	now := time.Now()

	tests := []struct {
		name      string
		paymentID string
		setupMock func()
		wantError error
	}{
		{
			name:      "正常系: Paymentを取得",
			paymentID: "pay123",
			setupMock: func() {
				rows := sqlmock.NewRows(paymentColumns()).
					AddRow(
						"pay123", "user123", "helper456", "req123",
						50.00, 0.10, int64(5500),
						"pi_test_123", "completed", "Dorm move payment",
						now, now,
					)
				mock.ExpectQuery(`SELECT .+ FROM payments WHERE payment_id = \?`).
					WithArgs("pay123").
					WillReturnRows(rows)
			},
			wantError: nil,
		},
		{
			name:      "異常系: Paymentが存在しない",
			paymentID: "missing",
			setupMock: func() {
				mock.ExpectQuery(`SELECT .+ FROM payments WHERE payment_id = \?`).
					WithArgs("missing").
					WillReturnError(sql.ErrNoRows)
			},
			wantError: payment.ErrPaymentNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()
			ctx := context.Background()
			p, err := repo.FindByPaymentID(ctx, tt.paymentID)

			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)
				assert.Nil(t, p)
			} else {
				assert.NoError(t, err)
				require.NotNil(t, p)
				assert.Equal(t, tt.paymentID, p.PaymentID())
				assert.Equal(t, payment.PaymentStatusCompleted, p.Status())
				assert.Equal(t, int64(5500), p.Fee().TotalAmountMinor())
				assert.Equal(t, 50.00, p.Fee().BaseAmount())
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPaymentRepository_FindByUserID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := &PaymentRepository{
		db:     &DB{DB: db},
		tracer: otel.Tracer("test"),
	}

	now := time.Now()

	rows := sqlmock.NewRows(paymentColumns()).
		AddRow(
			"pay1", "user123", "helper456", nil,
			10.00, 0.10, int64(1100),
			"pi_test_1", "completed", "",
			now, now,
		).
		AddRow(
			"pay2", "other789", "user123", nil,
			25.50, 0.10, int64(2805),
			"pi_test_2", "pending", "",
			now.Add(-time.Hour), now.Add(-time.Hour),
		)
	mock.ExpectQuery(`SELECT .+ FROM payments WHERE payer_id = \? OR recipient_id = \?`).
		WithArgs("user123", "user123", 20, 0).
		WillReturnRows(rows)

	ctx := context.Background()
	payments, err := repo.FindByUserID(ctx, "user123", 20, 0)

	assert.NoError(t, err)
	require.Len(t, payments, 2)
	assert.Equal(t, "pay1", payments[0].PaymentID())
	assert.Equal(t, "", payments[0].RequestID())
	assert.Equal(t, int64(2805), payments[1].Fee().TotalAmountMinor())

	assert.NoError(t, mock.ExpectationsWereMet())
}
