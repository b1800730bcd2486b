package review

import (
	"context"
	"database/sql"
)

// ReviewRepository レビューリポジトリインターフェース
type ReviewRepository interface {
	// Save Reviewを保存
	Save(ctx context.Context, review *Review) error

	// SaveTx トランザクション内でReviewを保存
	SaveTx(ctx context.Context, tx *sql.Tx, review *Review) error

	// FindByToUserID 受け取ったレビュー一覧を取得（新しい順）
	FindByToUserID(ctx context.Context, toUserID string) ([]*Review, error)

	// FindByToUserIDTx トランザクション内で受け取ったレビュー一覧を取得（新しい順）
	FindByToUserIDTx(ctx context.Context, tx *sql.Tx, toUserID string) ([]*Review, error)
}
