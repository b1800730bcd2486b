package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	reviewapp "github.com/chekwube-ononuju/movemates/internal/application/review"
	restmiddleware "github.com/chekwube-ononuju/movemates/internal/presentation/rest/middleware"
)

// ReviewHandler レビュー関連ハンドラー
type ReviewHandler struct {
	reviewService *reviewapp.ReviewApplicationService
}

// NewReviewHandler 新しいReviewHandlerを作成
func NewReviewHandler(reviewService *reviewapp.ReviewApplicationService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

func toReviewModel(r reviewapp.ReviewResponse) ReviewModel {
	return ReviewModel{
		ReviewID:   r.ReviewID,
		FromUserID: r.FromUserID,
		ToUserID:   r.ToUserID,
		RequestID:  r.RequestID,
		Rating:     r.Rating,
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt,
	}
}

// CreateReview レビュー作成ハンドラー
// @Summary レビューを作成
// @Description レビューを保存し、受取人の平均評価を再計算します
// @Tags review
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body CreateReviewRequest true "レビュー作成リクエスト"
// @Success 201 {object} CreateReviewResponse "作成成功"
// @Failure 400 {object} ErrorResponse "不正なリクエスト"
// @Failure 401 {object} ErrorResponse "認証エラー"
// @Failure 404 {object} ErrorResponse "受取人が見つからない"
// @Router /reviews [post]
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	userID, ok := c.Get("user_id").(string)
	if !ok || userID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "user_id not found in token")
	}

	var reqBody CreateReviewRequest
	if err := c.Bind(&reqBody); err != nil {
		return restmiddleware.ErrInvalidJSON
	}

	req := &reviewapp.CreateReviewRequest{
		FromUserID: userID,
		ToUserID:   reqBody.ToUserID,
		RequestID:  reqBody.RequestID,
		Rating:     reqBody.Rating,
		Comment:    reqBody.Comment,
	}

	resp, err := h.reviewService.CreateReview(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, CreateReviewResponse{
		Review:             toReviewModel(resp.Review),
		UpdatedRating:      resp.UpdatedRating,
		UpdatedReviewCount: resp.UpdatedReviewCount,
	})
}

// ListUserReviews ユーザーのレビュー一覧ハンドラー
// @Summary ユーザーが受け取ったレビュー一覧を取得
// @Tags review
// @Produce json
// @Param id path string true "ユーザーID"
// @Success 200 {object} ReviewListResponse "取得成功"
// @Router /users/{id}/reviews [get]
func (h *ReviewHandler) ListUserReviews(c echo.Context) error {
	reviews, err := h.reviewService.ListReviews(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	list := make([]ReviewModel, len(reviews))
	for i, r := range reviews {
		list[i] = toReviewModel(r)
	}

	return c.JSON(http.StatusOK, ReviewListResponse{Reviews: list})
}
