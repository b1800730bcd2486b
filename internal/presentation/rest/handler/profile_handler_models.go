package handler

// ProfileResponse ユーザープロフィールレスポンス
// @Description ユーザープロフィールレスポンス
type ProfileResponse struct {
	UserID      string  `json:"user_id" example:"user_1700000000000000000"`
	Name        string  `json:"name" example:"Alex Carter"`
	Email       string  `json:"email" example:"alex@university.edu"`
	Avatar      string  `json:"avatar,omitempty" example:"https://example.com/avatar.png"`
	School      string  `json:"school,omitempty" example:"Purdue University"`
	Phone       string  `json:"phone,omitempty" example:"+1-765-555-0123"`
	Bio         string  `json:"bio,omitempty" example:"Junior studying mechanical engineering."`
	Location    string  `json:"location,omitempty" example:"West Lafayette, IN"`
	IsHelper    bool    `json:"is_helper" example:"true"`
	Rating      float64 `json:"rating" example:"4.3"`
	ReviewCount int     `json:"review_count" example:"3"`
	JoinedAt    string  `json:"joined_at" example:"2024-09-01T12:00:00Z"`
}

// UpdateProfileRequest プロフィール更新リクエスト
// @Description プロフィール更新リクエスト
type UpdateProfileRequest struct {
	Name     string `json:"name" example:"Alex Carter"`
	Avatar   string `json:"avatar,omitempty" example:"https://example.com/avatar.png"`
	School   string `json:"school,omitempty" example:"Purdue University"`
	Phone    string `json:"phone,omitempty" example:"+1-765-555-0123"`
	Bio      string `json:"bio,omitempty" example:"Junior studying mechanical engineering."`
	Location string `json:"location,omitempty" example:"West Lafayette, IN"`
}

// BecomeHelperRequest ヘルパー登録リクエスト
// @Description ヘルパー登録リクエスト
type BecomeHelperRequest struct {
	Age int `json:"age" example:"20"`
}

// HelperListResponse ヘルパー一覧レスポンス
// @Description ヘルパー一覧レスポンス
type HelperListResponse struct {
	Helpers []ProfileResponse `json:"helpers"`
}
