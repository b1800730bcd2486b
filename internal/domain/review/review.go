package review

import (
	"strings"
	"time"
)

// Review レビューエンティティ
type Review struct {
	reviewID   string
	fromUserID string
	toUserID   string
	requestID  string // 関連するMoveRequest（任意）
	rating     int
	comment    string
	createdAt  time.Time
}

// NewReview 新しいReviewエンティティを作成
func NewReview(reviewID, fromUserID, toUserID, requestID string, rating int, comment string) (*Review, error) {
	if fromUserID == toUserID {
		return nil, ErrSelfReview
	}
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}
	if strings.TrimSpace(comment) == "" {
		return nil, ErrEmptyComment
	}
	return &Review{
		reviewID:   reviewID,
		fromUserID: fromUserID,
		toUserID:   toUserID,
		requestID:  requestID,
		rating:     rating,
		comment:    comment,
		createdAt:  time.Now(),
	}, nil
}

// ReviewID レビューIDを返す
func (r *Review) ReviewID() string {
	return r.reviewID
}

// FromUserID レビューしたユーザーIDを返す
func (r *Review) FromUserID() string {
	return r.fromUserID
}

// ToUserID レビューされたユーザーIDを返す
func (r *Review) ToUserID() string {
	return r.toUserID
}

// RequestID 関連するMoveRequest IDを返す（未設定なら空文字）
func (r *Review) RequestID() string {
	return r.requestID
}

// Rating 評価値（1〜5）を返す
func (r *Review) Rating() int {
	return r.rating
}

// Comment コメントを返す
func (r *Review) Comment() string {
	return r.comment
}

// CreatedAt 作成日時を返す
func (r *Review) CreatedAt() time.Time {
	return r.createdAt
}

// AverageRating レビュー一覧から平均評価（小数第1位まで）を計算する
func AverageRating(reviews []*Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	total := 0
	for _, r := range reviews {
		total += r.rating
	}
	avg := float64(total) / float64(len(reviews))
	// 表示仕様に合わせ小数第1位へ丸める
	return float64(int(avg*10+0.5)) / 10
}

// Restore 永続化されたデータからReviewエンティティを復元する
func Restore(reviewID, fromUserID, toUserID, requestID string, rating int, comment string, createdAt time.Time) *Review {
	return &Review{
		reviewID:   reviewID,
		fromUserID: fromUserID,
		toUserID:   toUserID,
		requestID:  requestID,
		rating:     rating,
		comment:    comment,
		createdAt:  createdAt,
	}
}
