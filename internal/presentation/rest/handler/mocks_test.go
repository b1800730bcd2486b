package handler

import (
	"context"
	"database/sql"

	"github.com/stretchr/testify/mock"

	"github.com/chekwube-ononuju/movemates/internal/domain/moverequest"
	"github.com/chekwube-ononuju/movemates/internal/domain/payment"
	"github.com/chekwube-ononuju/movemates/internal/domain/review"
	"github.com/chekwube-ononuju/movemates/internal/domain/user"
)

// MockUserRepository モックユーザーリポジトリ
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) FindByUserID(ctx context.Context, userID string) (*user.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) FindHelpers(ctx context.Context) ([]*user.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*user.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateTx(ctx context.Context, tx *sql.Tx, u *user.User) error {
	args := m.Called(ctx, tx, u)
	return args.Error(0)
}

// MockPaymentRepository モック決済リポジトリ
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Save(ctx context.Context, p *payment.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPaymentRepository) FindByPaymentID(ctx context.Context, paymentID string) (*payment.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindByUserID(ctx context.Context, userID string, limit, offset int) ([]*payment.Payment, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*payment.Payment), args.Error(1)
}

func (m *MockPaymentRepository) Update(ctx context.Context, p *payment.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

// MockGateway モック決済ゲートウェイ
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) CreateIntent(ctx context.Context, amountMinor int64, currency string) (*payment.Intent, error) {
	args := m.Called(ctx, amountMinor, currency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Intent), args.Error(1)
}

func (m *MockGateway) ConfirmIntent(ctx context.Context, intentID, paymentMethodID string) (*payment.ConfirmOutcome, error) {
	args := m.Called(ctx, intentID, paymentMethodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.ConfirmOutcome), args.Error(1)
}

// MockMoveRequestRepository モック引越し依頼リポジトリ
type MockMoveRequestRepository struct {
	mock.Mock
}

func (m *MockMoveRequestRepository) Save(ctx context.Context, r *moverequest.MoveRequest) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockMoveRequestRepository) FindByRequestID(ctx context.Context, requestID string) (*moverequest.MoveRequest, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*moverequest.MoveRequest), args.Error(1)
}

func (m *MockMoveRequestRepository) FindOpen(ctx context.Context) ([]*moverequest.MoveRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*moverequest.MoveRequest), args.Error(1)
}

func (m *MockMoveRequestRepository) FindByUserID(ctx context.Context, userID string) ([]*moverequest.MoveRequest, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*moverequest.MoveRequest), args.Error(1)
}

func (m *MockMoveRequestRepository) FindByHelperID(ctx context.Context, helperID string) ([]*moverequest.MoveRequest, error) {
	args := m.Called(ctx, helperID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*moverequest.MoveRequest), args.Error(1)
}

func (m *MockMoveRequestRepository) Update(ctx context.Context, r *moverequest.MoveRequest) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

// MockReviewRepository モックレビューリポジトリ
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Save(ctx context.Context, r *review.Review) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReviewRepository) SaveTx(ctx context.Context, tx *sql.Tx, r *review.Review) error {
	args := m.Called(ctx, tx, r)
	return args.Error(0)
}

func (m *MockReviewRepository) FindByToUserID(ctx context.Context, toUserID string) ([]*review.Review, error) {
	args := m.Called(ctx, toUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*review.Review), args.Error(1)
}

func (m *MockReviewRepository) FindByToUserIDTx(ctx context.Context, tx *sql.Tx, toUserID string) ([]*review.Review, error) {
	args := m.Called(ctx, tx, toUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*review.Review), args.Error(1)
}

// MockTransactionManager モックトランザクションマネージャー
type MockTransactionManager struct {
	mock.Mock
}

func (m *MockTransactionManager) WithTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	args := m.Called(ctx, fn)
	if args.Error(0) != nil {
		return args.Error(0)
	}
	return fn(nil)
}
