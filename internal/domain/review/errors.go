package review

import "errors"

var (
	// ErrReviewNotFound レビューが見つからないエラー
	ErrReviewNotFound = errors.New("review not found")
	// ErrInvalidRating 評価値が1〜5の範囲外エラー
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	// ErrSelfReview 自分自身へのレビューエラー
	ErrSelfReview = errors.New("cannot review yourself")
	// ErrEmptyComment コメントが空エラー
	ErrEmptyComment = errors.New("comment is required")
)
