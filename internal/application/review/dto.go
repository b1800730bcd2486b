package review

// CreateReviewRequest レビュー作成リクエスト
type CreateReviewRequest struct {
	FromUserID string
	ToUserID   string
	RequestID  string // 関連するMoveRequest（任意）
	Rating     int
	Comment    string
}

// ReviewResponse レビューレスポンス
type ReviewResponse struct {
	ReviewID   string
	FromUserID string
	ToUserID   string
	RequestID  string
	Rating     int
	Comment    string
	CreatedAt  string // RFC3339
}

// CreateReviewResponse レビュー作成レスポンス
type CreateReviewResponse struct {
	Review ReviewResponse
	// UpdatedRating 再計算後の受取人の平均評価（小数1桁）
	UpdatedRating float64
	// UpdatedReviewCount 再計算後のレビュー件数
	UpdatedReviewCount int
}
