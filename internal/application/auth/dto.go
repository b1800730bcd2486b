package auth

// RegisterRequest ユーザー登録リクエスト
type RegisterRequest struct {
	Name     string
	Email    string
	Password string
}

// LoginRequest ログインリクエスト
type LoginRequest struct {
	Email    string
	Password string
}

// AuthResponse 認証レスポンス
type AuthResponse struct {
	UserID    string
	Name      string
	Email     string
	Token     string
	ExpiresIn int64  // 秒単位
	TokenType string // "Bearer"
}
