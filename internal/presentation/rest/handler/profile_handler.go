package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	profileapp "github.com/chekwube-ononuju/movemates/internal/application/profile"
	restmiddleware "github.com/chekwube-ononuju/movemates/internal/presentation/rest/middleware"
)

// ProfileHandler プロフィール関連ハンドラー
type ProfileHandler struct {
	profileService *profileapp.ProfileApplicationService
}

// NewProfileHandler 新しいProfileHandlerを作成
func NewProfileHandler(profileService *profileapp.ProfileApplicationService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

func toProfileModel(p *profileapp.ProfileResponse) ProfileResponse {
	return ProfileResponse{
		UserID:      p.UserID,
		Name:        p.Name,
		Email:       p.Email,
		Avatar:      p.Avatar,
		School:      p.School,
		Phone:       p.Phone,
		Bio:         p.Bio,
		Location:    p.Location,
		IsHelper:    p.IsHelper,
		Rating:      p.Rating,
		ReviewCount: p.ReviewCount,
		JoinedAt:    p.JoinedAt,
	}
}

// GetMyProfile 自分のプロフィール取得ハンドラー
// @Summary 自分のプロフィールを取得
// @Tags profile
// @Produce json
// @Security Bearer
// @Success 200 {object} ProfileResponse "取得成功"
// @Failure 401 {object} ErrorResponse "認証エラー"
// @Router /profile [get]
func (h *ProfileHandler) GetMyProfile(c echo.Context) error {
	userID, ok := c.Get("user_id").(string)
	if !ok || userID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "user_id not found in token")
	}

	resp, err := h.profileService.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toProfileModel(resp))
}

// GetProfile 他ユーザーのプロフィール取得ハンドラー
// @Summary ユーザーのプロフィールを取得
// @Tags profile
// @Produce json
// @Param id path string true "ユーザーID"
// @Success 200 {object} ProfileResponse "取得成功"
// @Failure 404 {object} ErrorResponse "ユーザーが見つからない"
// @Router /users/{id} [get]
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	resp, err := h.profileService.GetProfile(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toProfileModel(resp))
}

// UpdateProfile プロフィール更新ハンドラー
// @Summary プロフィールを更新
// @Tags profile
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body UpdateProfileRequest true "プロフィール更新リクエスト"
// @Success 200 {object} ProfileResponse "更新成功"
// @Failure 400 {object} ErrorResponse "不正なリクエスト"
// @Failure 401 {object} ErrorResponse "認証エラー"
// @Router /profile [put]
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	userID, ok := c.Get("user_id").(string)
	if !ok || userID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "user_id not found in token")
	}

	var reqBody UpdateProfileRequest
	if err := c.Bind(&reqBody); err != nil {
		return restmiddleware.ErrInvalidJSON
	}

	req := &profileapp.UpdateProfileRequest{
		UserID:   userID,
		Name:     reqBody.Name,
		Avatar:   reqBody.Avatar,
		School:   reqBody.School,
		Phone:    reqBody.Phone,
		Bio:      reqBody.Bio,
		Location: reqBody.Location,
	}

	resp, err := h.profileService.UpdateProfile(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toProfileModel(resp))
}

// BecomeHelper ヘルパー登録ハンドラー
// @Summary ヘルパーとして登録
// @Description 18歳以上のユーザーをヘルパーとして登録します
// @Tags profile
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body BecomeHelperRequest true "ヘルパー登録リクエスト"
// @Success 200 {object} ProfileResponse "登録成功"
// @Failure 400 {object} ErrorResponse "年齢制限"
// @Failure 401 {object} ErrorResponse "認証エラー"
// @Router /profile/helper [post]
func (h *ProfileHandler) BecomeHelper(c echo.Context) error {
	userID, ok := c.Get("user_id").(string)
	if !ok || userID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "user_id not found in token")
	}

	var reqBody BecomeHelperRequest
	if err := c.Bind(&reqBody); err != nil {
		return restmiddleware.ErrInvalidJSON
	}

	req := &profileapp.BecomeHelperRequest{
		UserID: userID,
		Age:    reqBody.Age,
	}

	resp, err := h.profileService.BecomeHelper(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toProfileModel(resp))
}

// ListHelpers ヘルパー一覧ハンドラー
// @Summary ヘルパー一覧を取得
// @Description 評価の高い順にヘルパーの一覧を返します
// @Tags profile
// @Produce json
// @Success 200 {object} HelperListResponse "取得成功"
// @Router /helpers [get]
func (h *ProfileHandler) ListHelpers(c echo.Context) error {
	profiles, err := h.profileService.ListHelpers(c.Request().Context())
	if err != nil {
		return err
	}

	helpers := make([]ProfileResponse, len(profiles))
	for i, p := range profiles {
		helpers[i] = toProfileModel(p)
	}

	return c.JSON(http.StatusOK, HelperListResponse{Helpers: helpers})
}
