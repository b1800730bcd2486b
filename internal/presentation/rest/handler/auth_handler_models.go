package handler

// RegisterRequest ユーザー登録リクエスト
// @Description ユーザー登録リクエスト
type RegisterRequest struct {
	Name     string `json:"name" example:"Alex Carter"`
	Email    string `json:"email" example:"alex@university.edu"`
	Password string `json:"password" example:"correct-horse-battery"`
}

// LoginRequest ログインリクエスト
// @Description ログインリクエスト
type LoginRequest struct {
	Email    string `json:"email" example:"alex@university.edu"`
	Password string `json:"password" example:"correct-horse-battery"`
}

// AuthResponse 認証レスポンス
// @Description 認証レスポンス
type AuthResponse struct {
	UserID    string `json:"user_id" example:"user_1700000000000000000"`
	Name      string `json:"name" example:"Alex Carter"`
	Email     string `json:"email" example:"alex@university.edu"`
	Token     string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.eyJ1c2VyX2lkIjoidXNlcjEyMyIsImV4cCI6MTcwMDAwMDAwMH0.signature"`
	ExpiresIn int    `json:"expires_in" example:"86400"`
	TokenType string `json:"token_type" example:"Bearer"`
}

// ErrorResponse エラーレスポンス
// @Description エラーレスポンス
type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_json"`
	Message string `json:"message" example:"Invalid JSON"`
}
