package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	authapp "github.com/chekwube-ononuju/movemates/internal/application/auth"
	moverequestapp "github.com/chekwube-ononuju/movemates/internal/application/moverequest"
	paymentapp "github.com/chekwube-ononuju/movemates/internal/application/payment"
	profileapp "github.com/chekwube-ononuju/movemates/internal/application/profile"
	reviewapp "github.com/chekwube-ononuju/movemates/internal/application/review"
	"github.com/chekwube-ononuju/movemates/internal/infrastructure/config"
	stripegw "github.com/chekwube-ononuju/movemates/internal/infrastructure/gateway/stripe"
	otelinfra "github.com/chekwube-ononuju/movemates/internal/infrastructure/observability/otel"
	"github.com/chekwube-ononuju/movemates/internal/infrastructure/persistence/mysql"
	"github.com/chekwube-ononuju/movemates/internal/presentation/rest"
)

func main() {
	// 設定の読み込み
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// OpenTelemetryの初期化
	tracerShutdown, err := otelinfra.InitTracer(&cfg.OpenTelemetry)
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracerShutdown(ctx); err != nil {
			log.Printf("Failed to shutdown tracer: %v", err)
		}
	}()

	meterShutdown, err := otelinfra.InitMeter(&cfg.OpenTelemetry)
	if err != nil {
		log.Fatalf("Failed to initialize meter: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := meterShutdown(ctx); err != nil {
			log.Printf("Failed to shutdown meter: %v", err)
		}
	}()

	// ロガーとメトリクスの初期化
	tracer := otelinfra.Tracer("movemates-server")
	logger := otelinfra.NewLogger(tracer)
	metrics, err := otelinfra.NewMetrics("movemates-server")
	if err != nil {
		log.Fatalf("Failed to create metrics: %v", err)
	}

	// データベース接続の初期化
	db, err := mysql.NewDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// リポジトリの初期化
	userRepo := mysql.NewUserRepository(db)
	paymentRepo := mysql.NewPaymentRepository(db)
	moveRequestRepo := mysql.NewMoveRequestRepository(db)
	reviewRepo := mysql.NewReviewRepository(db)

	// トランザクションマネージャーの初期化
	txManager := mysql.NewTransactionManager(db)

	// Stripeゲートウェイの初期化
	// シークレットキー未設定でも起動し、決済リクエスト時にエラーを返す
	gateway := stripegw.NewGateway(&cfg.Stripe)

	// アプリケーションサービスの初期化
	authAppService := authapp.NewAuthApplicationService(
		userRepo,
		&cfg.JWT,
		logger,
	)

	paymentAppService := paymentapp.NewPaymentApplicationService(
		paymentRepo,
		userRepo,
		gateway,
		logger,
		metrics,
	)

	moveRequestAppService := moverequestapp.NewMoveRequestApplicationService(
		moveRequestRepo,
		userRepo,
		logger,
		metrics,
	)

	reviewAppService := reviewapp.NewReviewApplicationService(
		reviewRepo,
		userRepo,
		txManager,
		logger,
		metrics,
	)

	profileAppService := profileapp.NewProfileApplicationService(
		userRepo,
		logger,
	)

	// REST APIルーターの初期化
	router, err := rest.NewRouter(
		cfg,
		logger,
		metrics,
		authAppService,
		paymentAppService,
		moveRequestAppService,
		reviewAppService,
		profileAppService,
	)
	if err != nil {
		log.Fatalf("Failed to create router: %v", err)
	}

	// サーバーアドレスの設定
	address := fmt.Sprintf(":%d", cfg.Server.Port)

	// グレースフルシャットダウンの設定
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	// REST APIサーバーを別ゴルーチンで起動
	go func() {
		log.Printf("REST API server starting on %s", address)
		if err := router.Start(address); err != nil {
			log.Printf("REST API server error: %v", err)
		}
	}()

	// シグナルを待機
	<-quit
	log.Println("Shutting down server...")

	// グレースフルシャットダウン
	if err := router.Shutdown(); err != nil {
		log.Printf("Error shutting down REST API server: %v", err)
	}

	log.Println("Server stopped")
}
