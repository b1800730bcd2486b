package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/chekwube-ononuju/movemates/internal/domain/moverequest"
	"github.com/chekwube-ononuju/movemates/internal/domain/payment"
	"github.com/chekwube-ononuju/movemates/internal/domain/review"
	"github.com/chekwube-ononuju/movemates/internal/domain/user"
	otelinfra "github.com/chekwube-ononuju/movemates/internal/infrastructure/observability/otel"
)

// ErrInvalidJSON リクエストボディのJSONが不正
var ErrInvalidJSON = errors.New("invalid json body")

// ErrorResponse エラーレスポンス
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// errorMapping ドメインエラーからHTTPレスポンスへの対応
type errorMapping struct {
	target  error
	status  int
	code    string
	message string // 空ならerr.Error()を使う
}

// クライアントに返すメッセージは固定文字列かドメインエラーの文字列のみ。
// プロセッサやDBの内部エラー詳細はここを通らない
var errorMappings = []errorMapping{
	{payment.ErrInvalidAmount, http.StatusBadRequest, "missing_or_invalid_amount", "Missing or invalid amount"},
	{payment.ErrSelfPayment, http.StatusBadRequest, "self_payment", "You cannot pay yourself"},
	{payment.ErrPaymentNotFound, http.StatusNotFound, "payment_not_found", ""},
	{payment.ErrPaymentAlreadyFinalized, http.StatusConflict, "payment_already_finalized", ""},
	{payment.ErrGatewayNotConfigured, http.StatusInternalServerError, "stripe_not_configured", "Stripe secret key not configured"},
	{payment.ErrIntentCreationFailed, http.StatusInternalServerError, "payment_intent_failed", "Failed to create payment intent"},

	{user.ErrUserNotFound, http.StatusNotFound, "user_not_found", ""},
	{user.ErrEmailAlreadyRegistered, http.StatusConflict, "email_already_registered", ""},
	{user.ErrInvalidCredentials, http.StatusUnauthorized, "invalid_credentials", ""},
	{user.ErrInvalidName, http.StatusBadRequest, "invalid_name", ""},
	{user.ErrInvalidEmail, http.StatusBadRequest, "invalid_email", ""},
	{user.ErrPasswordTooShort, http.StatusBadRequest, "password_too_short", ""},
	{user.ErrHelperUnderage, http.StatusBadRequest, "helper_underage", ""},
	{user.ErrNotHelper, http.StatusBadRequest, "not_helper", ""},

	{moverequest.ErrRequestNotFound, http.StatusNotFound, "request_not_found", ""},
	{moverequest.ErrInvalidTitle, http.StatusBadRequest, "invalid_title", ""},
	{moverequest.ErrInvalidPrice, http.StatusBadRequest, "invalid_price", ""},
	{moverequest.ErrInvalidLocation, http.StatusBadRequest, "invalid_location", ""},
	{moverequest.ErrRequestNotOpen, http.StatusConflict, "request_not_open", ""},
	{moverequest.ErrRequestNotAssigned, http.StatusConflict, "request_not_assigned", ""},
	{moverequest.ErrSelfAssignment, http.StatusBadRequest, "self_assignment", ""},
	{moverequest.ErrNotOwner, http.StatusForbidden, "not_owner", ""},

	{review.ErrReviewNotFound, http.StatusNotFound, "review_not_found", ""},
	{review.ErrInvalidRating, http.StatusBadRequest, "invalid_rating", ""},
	{review.ErrSelfReview, http.StatusBadRequest, "self_review", ""},
	{review.ErrEmptyComment, http.StatusBadRequest, "empty_comment", ""},

	{ErrInvalidJSON, http.StatusBadRequest, "invalid_json", "Invalid JSON"},
}

// ErrorHandlerMiddleware エラーハンドリングミドルウェア
func ErrorHandlerMiddleware(logger *otelinfra.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			if err == nil {
				return nil
			}

			return handleError(c, err, logger)
		}
	}
}

// handleError エラーを処理して適切なHTTPレスポンスを返す
func handleError(c echo.Context, err error, logger *otelinfra.Logger) error {
	ctx := c.Request().Context()

	for _, m := range errorMappings {
		if !errors.Is(err, m.target) {
			continue
		}
		message := m.message
		if message == "" {
			message = m.target.Error()
		}
		logger.Warn(ctx, "Request failed", map[string]interface{}{
			"error":  m.code,
			"status": m.status,
			"path":   c.Request().URL.Path,
		})
		return c.JSON(m.status, ErrorResponse{
			Error:   m.code,
			Message: message,
		})
	}

	// EchoのHTTPエラー（405 Method Not Allowed、404などを含む）
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		logger.Warn(ctx, "HTTP error", map[string]interface{}{
			"status_code": httpErr.Code,
			"message":     httpErr.Message,
		})
		message := ""
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		} else {
			message = http.StatusText(httpErr.Code)
		}
		return c.JSON(httpErr.Code, ErrorResponse{
			Error:   http.StatusText(httpErr.Code),
			Message: message,
		})
	}

	// 予期しないエラー。詳細はログにのみ残す
	logger.Error(ctx, "Internal server error", err, map[string]interface{}{
		"path": c.Request().URL.Path,
	})
	return c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   "internal_server_error",
		Message: "An unexpected error occurred",
	})
}
