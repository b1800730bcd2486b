package handler

// CreateReviewRequest レビュー作成リクエスト
// @Description レビュー作成リクエスト
type CreateReviewRequest struct {
	ToUserID  string `json:"to_user_id" example:"user_1700000000000000001"`
	RequestID string `json:"request_id,omitempty" example:"req_1700000000000000002"`
	Rating    int    `json:"rating" example:"5"`
	Comment   string `json:"comment" example:"Showed up on time and was super careful with my stuff."`
}

// ReviewModel レビュー
// @Description レビュー
type ReviewModel struct {
	ReviewID   string `json:"review_id" example:"rev_1700000000000000004"`
	FromUserID string `json:"from_user_id" example:"user_1700000000000000000"`
	ToUserID   string `json:"to_user_id" example:"user_1700000000000000001"`
	RequestID  string `json:"request_id,omitempty" example:"req_1700000000000000002"`
	Rating     int    `json:"rating" example:"5"`
	Comment    string `json:"comment" example:"Showed up on time and was super careful with my stuff."`
	CreatedAt  string `json:"created_at" example:"2024-11-15T09:30:00Z"`
}

// CreateReviewResponse レビュー作成レスポンス
// @Description レビュー作成レスポンス
type CreateReviewResponse struct {
	Review             ReviewModel `json:"review"`
	UpdatedRating      float64     `json:"updated_rating" example:"4.3"`
	UpdatedReviewCount int         `json:"updated_review_count" example:"3"`
}

// ReviewListResponse レビュー一覧レスポンス
// @Description レビュー一覧レスポンス
type ReviewListResponse struct {
	Reviews []ReviewModel `json:"reviews"`
}
