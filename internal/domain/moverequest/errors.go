package moverequest

import "errors"

var (
	// ErrRequestNotFound MoveRequestが見つからないエラー
	ErrRequestNotFound = errors.New("move request not found")
	// ErrInvalidTitle タイトルが無効エラー
	ErrInvalidTitle = errors.New("invalid title")
	// ErrInvalidPrice 価格が無効エラー
	ErrInvalidPrice = errors.New("invalid price")
	// ErrInvalidLocation 位置情報が無効エラー
	ErrInvalidLocation = errors.New("invalid location")
	// ErrRequestNotOpen 募集中でないリクエストへの割り当てエラー
	ErrRequestNotOpen = errors.New("move request is not open")
	// ErrRequestNotAssigned 割り当て済みでないリクエストの完了エラー
	ErrRequestNotAssigned = errors.New("move request is not assigned")
	// ErrSelfAssignment 依頼者自身によるヘルパー割り当てエラー
	ErrSelfAssignment = errors.New("cannot assign yourself to your own request")
	// ErrNotOwner 依頼者以外による更新エラー
	ErrNotOwner = errors.New("not the owner of this request")
)
