package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	paymentapp "github.com/chekwube-ononuju/movemates/internal/application/payment"
	"github.com/chekwube-ononuju/movemates/internal/domain/payment"
	restmiddleware "github.com/chekwube-ononuju/movemates/internal/presentation/rest/middleware"
)

// PaymentHandler 決済関連ハンドラー
type PaymentHandler struct {
	paymentService *paymentapp.PaymentApplicationService
}

// NewPaymentHandler 新しいPaymentHandlerを作成
func NewPaymentHandler(paymentService *paymentapp.PaymentApplicationService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// parseAmount amountフィールドを数値に変換する
//
// クライアントは数値（50.0）と数値文字列（"50.00"）の双方を送ってくるため
// どちらも受け付ける。欠落・非数値はErrInvalidAmount
func parseAmount(v interface{}) (float64, error) {
	switch a := v.(type) {
	case float64:
		return a, nil
	case string:
		f, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return 0, payment.ErrInvalidAmount
		}
		return f, nil
	case json.Number:
		f, err := a.Float64()
		if err != nil {
			return 0, payment.ErrInvalidAmount
		}
		return f, nil
	default:
		return 0, payment.ErrInvalidAmount
	}
}

// CreateIntent PaymentIntent作成ハンドラー
// @Summary PaymentIntentを作成
// @Description 基本金額から10%の手数料込みの合計をサーバー側で再計算し、PaymentIntentを作成します
// @Tags payment
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body CreateIntentRequest true "PaymentIntent作成リクエスト"
// @Success 200 {object} CreateIntentResponse "作成成功"
// @Failure 400 {object} ErrorResponse "不正なリクエスト"
// @Failure 401 {object} ErrorResponse "認証エラー"
// @Failure 500 {object} ErrorResponse "プロセッサエラー"
// @Router /payments/intent [post]
func (h *PaymentHandler) CreateIntent(c echo.Context) error {
	userID, ok := c.Get("user_id").(string)
	if !ok || userID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "user_id not found in token")
	}

	var reqBody CreateIntentRequest
	if err := c.Bind(&reqBody); err != nil {
		return restmiddleware.ErrInvalidJSON
	}

	amount, err := parseAmount(reqBody.Amount)
	if err != nil {
		return err
	}

	req := &paymentapp.CreateIntentRequest{
		PayerID:     userID,
		RecipientID: reqBody.RecipientID,
		RequestID:   reqBody.RequestID,
		Amount:      amount,
		Description: reqBody.Description,
	}

	resp, err := h.paymentService.CreateIntent(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, CreateIntentResponse{
		PaymentID:        resp.PaymentID,
		ClientSecret:     resp.ClientSecret,
		BaseAmount:       resp.BaseAmount,
		FeeAmount:        resp.FeeAmount,
		TotalAmount:      resp.TotalAmount,
		TotalAmountMinor: resp.TotalAmountMinor,
		Currency:         resp.Currency,
	})
}

// ConfirmPayment 決済確認ハンドラー
// @Summary 決済を確認
// @Description 作成済みのPaymentIntentを指定の支払い方法で確認します
// @Tags payment
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body ConfirmPaymentRequest true "決済確認リクエスト"
// @Success 200 {object} ConfirmPaymentResponse "確認処理完了"
// @Failure 400 {object} ErrorResponse "不正なリクエスト"
// @Failure 401 {object} ErrorResponse "認証エラー"
// @Failure 404 {object} ErrorResponse "決済が見つからない"
// @Failure 409 {object} ErrorResponse "決済は既に確定済み"
// @Router /payments/confirm [post]
func (h *PaymentHandler) ConfirmPayment(c echo.Context) error {
	userID, ok := c.Get("user_id").(string)
	if !ok || userID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "user_id not found in token")
	}

	var reqBody ConfirmPaymentRequest
	if err := c.Bind(&reqBody); err != nil {
		return restmiddleware.ErrInvalidJSON
	}

	req := &paymentapp.ConfirmPaymentRequest{
		PaymentID:       reqBody.PaymentID,
		PayerID:         userID,
		PaymentMethodID: reqBody.PaymentMethodID,
	}

	resp, err := h.paymentService.ConfirmPayment(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, ConfirmPaymentResponse{
		PaymentID:     resp.PaymentID,
		Status:        resp.Status,
		RecipientID:   resp.RecipientID,
		RecipientName: resp.RecipientName,
		TotalAmount:   resp.TotalAmount,
		Message:       resp.Message,
	})
}

// ListPayments 決済履歴取得ハンドラー
// @Summary 決済履歴を取得
// @Description ログインユーザーが支払者または受取人である決済の一覧を取得します
// @Tags payment
// @Produce json
// @Security Bearer
// @Param limit query int false "取得件数（デフォルト20、最大100）"
// @Param offset query int false "オフセット"
// @Success 200 {object} ListPaymentsResponse "取得成功"
// @Failure 401 {object} ErrorResponse "認証エラー"
// @Router /payments [get]
func (h *PaymentHandler) ListPayments(c echo.Context) error {
	userID, ok := c.Get("user_id").(string)
	if !ok || userID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "user_id not found in token")
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	req := &paymentapp.ListPaymentsRequest{
		UserID: userID,
		Limit:  limit,
		Offset: offset,
	}

	resp, err := h.paymentService.ListPayments(c.Request().Context(), req)
	if err != nil {
		return err
	}

	payments := make([]PaymentSummary, len(resp.Payments))
	for i, p := range resp.Payments {
		payments[i] = PaymentSummary{
			PaymentID:   p.PaymentID,
			PayerID:     p.PayerID,
			RecipientID: p.RecipientID,
			RequestID:   p.RequestID,
			BaseAmount:  p.BaseAmount,
			FeeAmount:   p.FeeAmount,
			TotalAmount: p.TotalAmount,
			Status:      p.Status,
			Description: p.Description,
			CreatedAt:   p.CreatedAt,
		}
	}

	return c.JSON(http.StatusOK, ListPaymentsResponse{
		Payments: payments,
		Limit:    resp.Limit,
		Offset:   resp.Offset,
	})
}
