package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	authapp "github.com/chekwube-ononuju/movemates/internal/application/auth"
	restmiddleware "github.com/chekwube-ononuju/movemates/internal/presentation/rest/middleware"
)

// AuthHandler 認証関連ハンドラー
type AuthHandler struct {
	authService *authapp.AuthApplicationService
}

// NewAuthHandler 新しいAuthHandlerを作成
func NewAuthHandler(authService *authapp.AuthApplicationService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register ユーザー登録ハンドラー
// @Summary 新規ユーザーを登録
// @Description 名前・メールアドレス・パスワードで新規ユーザーを登録し、JWTトークンを発行します
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "ユーザー登録リクエスト"
// @Success 201 {object} AuthResponse "登録成功"
// @Failure 400 {object} ErrorResponse "不正なリクエスト"
// @Failure 409 {object} ErrorResponse "メールアドレス重複"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var reqBody RegisterRequest
	if err := c.Bind(&reqBody); err != nil {
		return restmiddleware.ErrInvalidJSON
	}

	req := &authapp.RegisterRequest{
		Name:     reqBody.Name,
		Email:    reqBody.Email,
		Password: reqBody.Password,
	}

	resp, err := h.authService.Register(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, AuthResponse{
		UserID:    resp.UserID,
		Name:      resp.Name,
		Email:     resp.Email,
		Token:     resp.Token,
		ExpiresIn: int(resp.ExpiresIn),
		TokenType: resp.TokenType,
	})
}

// Login ログインハンドラー
// @Summary ログイン
// @Description メールアドレスとパスワードで認証し、JWTトークンを発行します
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "ログインリクエスト"
// @Success 200 {object} AuthResponse "ログイン成功"
// @Failure 400 {object} ErrorResponse "不正なリクエスト"
// @Failure 401 {object} ErrorResponse "認証失敗"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var reqBody LoginRequest
	if err := c.Bind(&reqBody); err != nil {
		return restmiddleware.ErrInvalidJSON
	}

	req := &authapp.LoginRequest{
		Email:    reqBody.Email,
		Password: reqBody.Password,
	}

	resp, err := h.authService.Login(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, AuthResponse{
		UserID:    resp.UserID,
		Name:      resp.Name,
		Email:     resp.Email,
		Token:     resp.Token,
		ExpiresIn: int(resp.ExpiresIn),
		TokenType: resp.TokenType,
	})
}
