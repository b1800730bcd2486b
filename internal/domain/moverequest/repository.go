package moverequest

import (
	"context"
)

// MoveRequestRepository MoveRequestリポジトリインターフェース
type MoveRequestRepository interface {
	// Save MoveRequestを保存（同一IDは上書き）
	Save(ctx context.Context, request *MoveRequest) error

	// FindByRequestID リクエストIDでMoveRequestを取得
	FindByRequestID(ctx context.Context, requestID string) (*MoveRequest, error)

	// FindOpen 募集中のMoveRequest一覧を取得
	FindOpen(ctx context.Context) ([]*MoveRequest, error)

	// FindByUserID 依頼者のMoveRequest一覧を取得
	FindByUserID(ctx context.Context, userID string) ([]*MoveRequest, error)

	// FindByHelperID ヘルパーに割り当てられたMoveRequest一覧を取得
	FindByHelperID(ctx context.Context, helperID string) ([]*MoveRequest, error)

	// Update MoveRequestを更新
	Update(ctx context.Context, request *MoveRequest) error
}
