package rest

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	authapp "github.com/chekwube-ononuju/movemates/internal/application/auth"
	moverequestapp "github.com/chekwube-ononuju/movemates/internal/application/moverequest"
	paymentapp "github.com/chekwube-ononuju/movemates/internal/application/payment"
	profileapp "github.com/chekwube-ononuju/movemates/internal/application/profile"
	reviewapp "github.com/chekwube-ononuju/movemates/internal/application/review"
	"github.com/chekwube-ononuju/movemates/internal/infrastructure/config"
	otelinfra "github.com/chekwube-ononuju/movemates/internal/infrastructure/observability/otel"
	"github.com/chekwube-ononuju/movemates/internal/presentation/rest/handler"
	restmiddleware "github.com/chekwube-ononuju/movemates/internal/presentation/rest/middleware"
)

// Router REST APIルーター
type Router struct {
	echo               *echo.Echo
	authHandler        *handler.AuthHandler
	paymentHandler     *handler.PaymentHandler
	moveRequestHandler *handler.MoveRequestHandler
	reviewHandler      *handler.ReviewHandler
	profileHandler     *handler.ProfileHandler
}

// NewRouter 新しいRouterを作成
func NewRouter(
	cfg *config.Config,
	logger *otelinfra.Logger,
	metrics *otelinfra.Metrics,
	authService *authapp.AuthApplicationService,
	paymentService *paymentapp.PaymentApplicationService,
	moveRequestService *moverequestapp.MoveRequestApplicationService,
	reviewService *reviewapp.ReviewApplicationService,
	profileService *profileapp.ProfileApplicationService,
) (*Router, error) {
	e := echo.New()

	// Echoのデフォルトエラーハンドラーを無効化（カスタムエラーハンドラーを使用）
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		// エラーハンドリングミドルウェアで処理される
	}

	// ミドルウェアの設定
	setupMiddleware(e, cfg, logger, metrics)

	// ハンドラーの作成
	authHandler := handler.NewAuthHandler(authService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	moveRequestHandler := handler.NewMoveRequestHandler(moveRequestService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	profileHandler := handler.NewProfileHandler(profileService)

	// ルーティングの設定
	setupRoutes(e, cfg, logger, authHandler, paymentHandler, moveRequestHandler, reviewHandler, profileHandler)

	// Swagger UI / ReDoc統合
	SetupSwagger(e)

	return &Router{
		echo:               e,
		authHandler:        authHandler,
		paymentHandler:     paymentHandler,
		moveRequestHandler: moveRequestHandler,
		reviewHandler:      reviewHandler,
		profileHandler:     profileHandler,
	}, nil
}

// setupMiddleware ミドルウェアを設定
func setupMiddleware(e *echo.Echo, cfg *config.Config, logger *otelinfra.Logger, metrics *otelinfra.Metrics) {
	// リカバリーミドルウェア
	e.Use(middleware.Recover())

	// CORS設定
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"}, // 本番環境では適切に設定
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// リクエストIDの設定
	e.Use(middleware.RequestID())

	// セキュリティヘッダー
	e.Use(restmiddleware.SecurityHeadersMiddleware())

	// トレーシングミドルウェア
	e.Use(restmiddleware.TracingMiddleware())

	// ログミドルウェア
	e.Use(restmiddleware.LoggingMiddleware(logger))

	// メトリクスミドルウェア
	e.Use(restmiddleware.MetricsMiddleware(metrics))

	// エラーハンドリングミドルウェア
	e.Use(restmiddleware.ErrorHandlerMiddleware(logger))
}

// setupRoutes ルーティングを設定
func setupRoutes(
	e *echo.Echo,
	cfg *config.Config,
	logger *otelinfra.Logger,
	authHandler *handler.AuthHandler,
	paymentHandler *handler.PaymentHandler,
	moveRequestHandler *handler.MoveRequestHandler,
	reviewHandler *handler.ReviewHandler,
	profileHandler *handler.ProfileHandler,
) {
	// API v1グループ
	api := e.Group("/api/v1")

	// 認証不要のエンドポイント
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/requests", moveRequestHandler.ListOpenRequests)
	api.GET("/requests/markers", moveRequestHandler.ListMapMarkers)
	api.GET("/requests/:id", moveRequestHandler.GetRequest)
	api.GET("/helpers", profileHandler.ListHelpers)
	api.GET("/users/:id", profileHandler.GetProfile)
	api.GET("/users/:id/reviews", reviewHandler.ListUserReviews)

	// 認証が必要なエンドポイント
	// ミドルウェア付きのサブグループを作るとEchoが全メソッドのキャッチオールを
	// 登録してしまい、メソッド不一致が405ではなく401/404になるため、
	// 認証ミドルウェアはルート単位で付与する
	authMW := restmiddleware.AuthMiddleware(&cfg.JWT, logger)

	// 決済関連エンドポイント
	api.POST("/payments/intent", paymentHandler.CreateIntent, authMW)
	api.POST("/payments/confirm", paymentHandler.ConfirmPayment, authMW)
	api.GET("/payments", paymentHandler.ListPayments, authMW)

	// 引越し依頼関連エンドポイント
	api.POST("/requests", moveRequestHandler.CreateRequest, authMW)
	api.GET("/requests/mine", moveRequestHandler.ListMyRequests, authMW)
	api.GET("/requests/assignments", moveRequestHandler.ListAssignments, authMW)
	api.PUT("/requests/:id", moveRequestHandler.UpdateRequest, authMW)
	api.POST("/requests/:id/assign", moveRequestHandler.AssignHelper, authMW)
	api.POST("/requests/:id/complete", moveRequestHandler.CompleteRequest, authMW)

	// レビュー関連エンドポイント
	api.POST("/reviews", reviewHandler.CreateReview, authMW)

	// プロフィール関連エンドポイント
	api.GET("/profile", profileHandler.GetMyProfile, authMW)
	api.PUT("/profile", profileHandler.UpdateProfile, authMW)
	api.POST("/profile/helper", profileHandler.BecomeHelper, authMW)

	// ヘルスチェックエンドポイント（認証不要）
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})
}

// Start サーバーを起動
func (r *Router) Start(address string) error {
	return r.echo.Start(address)
}

// Shutdown サーバーをシャットダウン
func (r *Router) Shutdown() error {
	return r.echo.Close()
}
