package moverequest

import (
	"strings"
	"time"
)

// Location 作業場所（住所と座標）
type Location struct {
	Address string
	Lat     float64
	Lng     float64
}

// Valid 位置情報が有効かどうかを返す
func (l Location) Valid() bool {
	if strings.TrimSpace(l.Address) == "" {
		return false
	}
	return l.Lat >= -90 && l.Lat <= 90 && l.Lng >= -180 && l.Lng <= 180
}

// MoveRequest 引越し依頼エンティティ
type MoveRequest struct {
	requestID      string
	userID         string
	title          string
	description    string
	location       Location
	date           string // YYYY-MM-DD
	timeOfDay      string // HH:MM
	price          float64
	isHourly       bool
	estimatedHours int
	status         RequestStatus
	helperID       string
	createdAt      time.Time
	updatedAt      time.Time
}

// NewMoveRequest 新しいMoveRequestエンティティを作成
func NewMoveRequest(
	requestID string,
	userID string,
	title string,
	description string,
	location Location,
	date string,
	timeOfDay string,
	price float64,
	isHourly bool,
	estimatedHours int,
) (*MoveRequest, error) {
	title = strings.TrimSpace(title)
	if title == "" || len(title) > 255 {
		return nil, ErrInvalidTitle
	}
	if price <= 0 {
		return nil, ErrInvalidPrice
	}
	if !location.Valid() {
		return nil, ErrInvalidLocation
	}
	now := time.Now()
	return &MoveRequest{
		requestID:      requestID,
		userID:         userID,
		title:          title,
		description:    description,
		location:       location,
		date:           date,
		timeOfDay:      timeOfDay,
		price:          price,
		isHourly:       isHourly,
		estimatedHours: estimatedHours,
		status:         RequestStatusOpen,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// RequestID リクエストIDを返す
func (r *MoveRequest) RequestID() string {
	return r.requestID
}

// UserID 依頼者のユーザーIDを返す
func (r *MoveRequest) UserID() string {
	return r.userID
}

// Title タイトルを返す
func (r *MoveRequest) Title() string {
	return r.title
}

// Description 詳細説明を返す
func (r *MoveRequest) Description() string {
	return r.description
}

// Location 作業場所を返す
func (r *MoveRequest) Location() Location {
	return r.location
}

// Date 希望日（YYYY-MM-DD）を返す
func (r *MoveRequest) Date() string {
	return r.date
}

// TimeOfDay 希望時刻（HH:MM）を返す
func (r *MoveRequest) TimeOfDay() string {
	return r.timeOfDay
}

// Price 価格（時給または固定額、ドル）を返す
func (r *MoveRequest) Price() float64 {
	return r.price
}

// IsHourly 時給制かどうかを返す
func (r *MoveRequest) IsHourly() bool {
	return r.isHourly
}

// EstimatedHours 見込み作業時間を返す
func (r *MoveRequest) EstimatedHours() int {
	return r.estimatedHours
}

// Status ステータスを返す
func (r *MoveRequest) Status() RequestStatus {
	return r.status
}

// HelperID 割り当て済みヘルパーのユーザーIDを返す（未割り当てなら空文字）
func (r *MoveRequest) HelperID() string {
	return r.helperID
}

// CreatedAt 作成日時を返す
func (r *MoveRequest) CreatedAt() time.Time {
	return r.createdAt
}

// UpdatedAt 更新日時を返す
func (r *MoveRequest) UpdatedAt() time.Time {
	return r.updatedAt
}

// UpdateDetails 依頼内容を更新する（募集中のみ）
func (r *MoveRequest) UpdateDetails(title, description string, location Location, date, timeOfDay string, price float64, isHourly bool, estimatedHours int) error {
	if !r.status.IsOpen() {
		return ErrRequestNotOpen
	}
	title = strings.TrimSpace(title)
	if title == "" || len(title) > 255 {
		return ErrInvalidTitle
	}
	if price <= 0 {
		return ErrInvalidPrice
	}
	if !location.Valid() {
		return ErrInvalidLocation
	}
	r.title = title
	r.description = description
	r.location = location
	r.date = date
	r.timeOfDay = timeOfDay
	r.price = price
	r.isHourly = isHourly
	r.estimatedHours = estimatedHours
	r.updatedAt = time.Now()
	return nil
}

// Assign ヘルパーを割り当てる（募集中のみ、依頼者自身は不可）
func (r *MoveRequest) Assign(helperID string) error {
	if !r.status.IsOpen() {
		return ErrRequestNotOpen
	}
	if helperID == r.userID {
		return ErrSelfAssignment
	}
	r.helperID = helperID
	r.status = RequestStatusAssigned
	r.updatedAt = time.Now()
	return nil
}

// Complete 依頼を完了状態にする（割り当て済みのみ）
func (r *MoveRequest) Complete() error {
	if r.status != RequestStatusAssigned {
		return ErrRequestNotAssigned
	}
	r.status = RequestStatusCompleted
	r.updatedAt = time.Now()
	return nil
}

// Restore 永続化されたデータからMoveRequestエンティティを復元する
func Restore(
	requestID string,
	userID string,
	title string,
	description string,
	location Location,
	date string,
	timeOfDay string,
	price float64,
	isHourly bool,
	estimatedHours int,
	status RequestStatus,
	helperID string,
	createdAt time.Time,
	updatedAt time.Time,
) *MoveRequest {
	return &MoveRequest{
		requestID:      requestID,
		userID:         userID,
		title:          title,
		description:    description,
		location:       location,
		date:           date,
		timeOfDay:      timeOfDay,
		price:          price,
		isHourly:       isHourly,
		estimatedHours: estimatedHours,
		status:         status,
		helperID:       helperID,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}
