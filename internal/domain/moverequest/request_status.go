package moverequest

import (
	"fmt"
)

// RequestStatus MoveRequestのステータスを表す値オブジェクト
type RequestStatus string

const (
	RequestStatusOpen      RequestStatus = "open"      // 募集中
	RequestStatusAssigned  RequestStatus = "assigned"  // ヘルパー割り当て済み
	RequestStatusCompleted RequestStatus = "completed" // 完了
)

// NewRequestStatus 新しいRequestStatusを作成
func NewRequestStatus(s string) (RequestStatus, error) {
	switch s {
	case "open", "assigned", "completed":
		return RequestStatus(s), nil
	default:
		return "", fmt.Errorf("invalid request status: %s", s)
	}
}

// String 文字列表現を返す
func (rs RequestStatus) String() string {
	return string(rs)
}

// Valid 有効なステータスかどうかを返す
func (rs RequestStatus) Valid() bool {
	switch rs {
	case RequestStatusOpen, RequestStatusAssigned, RequestStatusCompleted:
		return true
	default:
		return false
	}
}

// IsOpen 募集中かどうかを返す
func (rs RequestStatus) IsOpen() bool {
	return rs == RequestStatusOpen
}
