package rest

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	authapp "github.com/chekwube-ononuju/movemates/internal/application/auth"
	moverequestapp "github.com/chekwube-ononuju/movemates/internal/application/moverequest"
	paymentapp "github.com/chekwube-ononuju/movemates/internal/application/payment"
	profileapp "github.com/chekwube-ononuju/movemates/internal/application/profile"
	reviewapp "github.com/chekwube-ononuju/movemates/internal/application/review"
	"github.com/chekwube-ononuju/movemates/internal/domain/moverequest"
	"github.com/chekwube-ononuju/movemates/internal/domain/payment"
	"github.com/chekwube-ononuju/movemates/internal/domain/review"
	"github.com/chekwube-ononuju/movemates/internal/domain/user"
	"github.com/chekwube-ononuju/movemates/internal/infrastructure/config"
	otelinfra "github.com/chekwube-ononuju/movemates/internal/infrastructure/observability/otel"
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

type routerTestEnv struct {
	router          *Router
	mockUserRepo    *MockUserRepository
	mockPaymentRepo *MockPaymentRepository
	mockGateway     *MockGateway
	mockRequestRepo *MockMoveRequestRepository
	mockReviewRepo  *MockReviewRepository
}

func newRouterTestEnv(t *testing.T) *routerTestEnv {
	t.Helper()

	cfg := &config.Config{
		JWT: config.JWTConfig{
			Secret:     "test-secret",
			Expiration: 24 * time.Hour,
			Issuer:     "movemates-server",
		},
	}

	tracer := noop.NewTracerProvider().Tracer("test")
	logger := otelinfra.NewLogger(tracer)
	metrics, err := otelinfra.NewMetrics("test")
	require.NoError(t, err)

	mockUserRepo := new(MockUserRepository)
	mockPaymentRepo := new(MockPaymentRepository)
	mockGateway := new(MockGateway)
	mockRequestRepo := new(MockMoveRequestRepository)
	mockReviewRepo := new(MockReviewRepository)
	mockTxManager := new(MockTransactionManager)

	authService := authapp.NewAuthApplicationService(mockUserRepo, &cfg.JWT, logger)
	paymentService := paymentapp.NewPaymentApplicationService(mockPaymentRepo, mockUserRepo, mockGateway, logger, metrics)
	moveRequestService := moverequestapp.NewMoveRequestApplicationService(mockRequestRepo, mockUserRepo, logger, metrics)
	reviewService := reviewapp.NewReviewApplicationService(mockReviewRepo, mockUserRepo, mockTxManager, logger, metrics)
	profileService := profileapp.NewProfileApplicationService(mockUserRepo, logger)

	router, err := NewRouter(cfg, logger, metrics, authService, paymentService, moveRequestService, reviewService, profileService)
	require.NoError(t, err)

	return &routerTestEnv{
		router:          router,
		mockUserRepo:    mockUserRepo,
		mockPaymentRepo: mockPaymentRepo,
		mockGateway:     mockGateway,
		mockRequestRepo: mockRequestRepo,
		mockReviewRepo:  mockReviewRepo,
	}
}

func (env *routerTestEnv) serve(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	env.router.echo.ServeHTTP(rec, req)
	return rec
}

func (env *routerTestEnv) registerAndGetToken(t *testing.T) string {
	t.Helper()

	env.mockUserRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	body, _ := json.Marshal(map[string]interface{}{
		"name":     "Alex Carter",
		"email":    "alex@university.edu",
		"password": "correct-horse-battery",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := env.serve(req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestRouter_HealthCheck(t *testing.T) {
	env := newRouterTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := env.serve(req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRouter_認証なしの決済エンドポイントは401を返す(t *testing.T) {
	env := newRouterTestEnv(t)

	body, _ := json.Marshal(map[string]interface{}{
		"recipient_id": "user_recipient",
		"amount":       50.0,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/intent", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := env.serve(req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_登録からPaymentIntent作成までの一連のフロー(t *testing.T) {
	env := newRouterTestEnv(t)

	token := env.registerAndGetToken(t)

	now := time.Now()
	recipient := user.Restore("user_recipient", "Jordan Lee", "jordan@example.com", "hash", "", "", "", "", "", true, 4.5, 10, now, now)
	env.mockUserRepo.On("FindByUserID", mock.Anything, "user_recipient").Return(recipient, nil)
	env.mockGateway.On("CreateIntent", mock.Anything, int64(5500), "usd").Return(&payment.Intent{
		IntentID:     "pi_123",
		ClientSecret: "pi_123_secret_456",
		AmountMinor:  5500,
		Currency:     "usd",
	}, nil)
	env.mockPaymentRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

	body, _ := json.Marshal(map[string]interface{}{
		"recipient_id": "user_recipient",
		"amount":       50.0,
		"description":  "Dorm move",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/intent", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)

	rec := env.serve(req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		ClientSecret     string  `json:"client_secret"`
		TotalAmount      float64 `json:"total_amount"`
		TotalAmountMinor int64   `json:"total_amount_minor"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "pi_123_secret_456", resp.ClientSecret)
	assert.Equal(t, 55.00, resp.TotalAmount)
	assert.Equal(t, int64(5500), resp.TotalAmountMinor)
}

func TestRouter_募集中の依頼一覧は認証なしで取得できる(t *testing.T) {
	env := newRouterTestEnv(t)

	env.mockRequestRepo.On("FindOpen", mock.Anything).Return([]*moverequest.MoveRequest{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/requests", nil)
	rec := env.serve(req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_存在しないメソッドは405を返す(t *testing.T) {
	env := newRouterTestEnv(t)

	req := httptest.NewRequest(http.MethodDelete, "/health", nil)
	rec := env.serve(req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRouter_認証必須エンドポイントでもメソッド不一致は405を返す(t *testing.T) {
	// 認証判定よりメソッド判定が先。トークンの有無にかかわらず405になること
	env := newRouterTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/payments/intent", nil)
	rec := env.serve(req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Contains(t, rec.Body.String(), "Method Not Allowed")
}

func TestRouter_有効なトークン付きでもメソッド不一致は405を返す(t *testing.T) {
	env := newRouterTestEnv(t)

	token := env.registerAndGetToken(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/payments/intent", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := env.serve(req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Contains(t, rec.Body.String(), "Method Not Allowed")
}

func TestRouter_公開エンドポイントのメソッド不一致も405を返す(t *testing.T) {
	env := newRouterTestEnv(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/auth/register", nil)
	rec := env.serve(req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Contains(t, rec.Body.String(), "Method Not Allowed")
}
