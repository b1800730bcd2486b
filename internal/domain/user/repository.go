package user

import (
	"context"
	"database/sql"
)

// UserRepository ユーザーリポジトリインターフェース
type UserRepository interface {
	// Create Userを新規作成（メールアドレス重複はErrEmailAlreadyRegistered）
	Create(ctx context.Context, user *User) error

	// FindByUserID ユーザーIDでUserを取得
	FindByUserID(ctx context.Context, userID string) (*User, error)

	// FindByEmail メールアドレスでUserを取得
	FindByEmail(ctx context.Context, email string) (*User, error)

	// FindHelpers ヘルパーとして活動しているUser一覧を取得
	FindHelpers(ctx context.Context) ([]*User, error)

	// Update Userを更新
	Update(ctx context.Context, user *User) error

	// UpdateTx トランザクション内でUserを更新
	UpdateTx(ctx context.Context, tx *sql.Tx, user *User) error
}
