package profile

// ProfileResponse ユーザープロフィールレスポンス
type ProfileResponse struct {
	UserID      string
	Name        string
	Email       string
	Avatar      string
	School      string
	Phone       string
	Bio         string
	Location    string
	IsHelper    bool
	Rating      float64
	ReviewCount int
	JoinedAt    string // RFC3339
}

// UpdateProfileRequest プロフィール更新リクエスト
type UpdateProfileRequest struct {
	UserID   string
	Name     string
	Avatar   string
	School   string
	Phone    string
	Bio      string
	Location string
}

// BecomeHelperRequest ヘルパー登録リクエスト
type BecomeHelperRequest struct {
	UserID string
	Age    int
}
