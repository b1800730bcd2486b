package handler

// LocationModel 位置情報
// @Description 位置情報
type LocationModel struct {
	Address string  `json:"address" example:"123 College Ave"`
	Lat     float64 `json:"lat" example:"40.4237"`
	Lng     float64 `json:"lng" example:"-86.9212"`
}

// CreateMoveRequestRequest 引越し依頼作成リクエスト
// @Description 引越し依頼作成リクエスト
type CreateMoveRequestRequest struct {
	Title          string        `json:"title" example:"Dorm move to West Campus"`
	Description    string        `json:"description,omitempty" example:"Two boxes and a mini fridge"`
	Location       LocationModel `json:"location"`
	Date           string        `json:"date" example:"2025-01-18"`
	TimeOfDay      string        `json:"time_of_day" example:"morning"`
	Price          float64       `json:"price" example:"50.00"`
	IsHourly       bool          `json:"is_hourly" example:"false"`
	EstimatedHours int           `json:"estimated_hours,omitempty" example:"2"`
}

// UpdateMoveRequestRequest 引越し依頼更新リクエスト
// @Description 引越し依頼更新リクエスト
type UpdateMoveRequestRequest struct {
	Title          string        `json:"title" example:"Dorm move to West Campus"`
	Description    string        `json:"description,omitempty" example:"Two boxes and a mini fridge"`
	Location       LocationModel `json:"location"`
	Date           string        `json:"date" example:"2025-01-18"`
	TimeOfDay      string        `json:"time_of_day" example:"morning"`
	Price          float64       `json:"price" example:"50.00"`
	IsHourly       bool          `json:"is_hourly" example:"false"`
	EstimatedHours int           `json:"estimated_hours,omitempty" example:"2"`
}

// MoveRequestResponse 引越し依頼レスポンス
// @Description 引越し依頼レスポンス
type MoveRequestResponse struct {
	RequestID      string        `json:"request_id" example:"req_1700000000000000002"`
	UserID         string        `json:"user_id" example:"user_1700000000000000000"`
	Title          string        `json:"title" example:"Dorm move to West Campus"`
	Description    string        `json:"description,omitempty" example:"Two boxes and a mini fridge"`
	Location       LocationModel `json:"location"`
	Date           string        `json:"date" example:"2025-01-18"`
	TimeOfDay      string        `json:"time_of_day" example:"morning"`
	Price          float64       `json:"price" example:"50.00"`
	IsHourly       bool          `json:"is_hourly" example:"false"`
	EstimatedHours int           `json:"estimated_hours,omitempty" example:"2"`
	Status         string        `json:"status" example:"open"`
	HelperID       string        `json:"helper_id,omitempty" example:"user_1700000000000000001"`
	CreatedAt      string        `json:"created_at" example:"2024-11-15T09:30:00Z"`
}

// MoveRequestListResponse 引越し依頼一覧レスポンス
// @Description 引越し依頼一覧レスポンス
type MoveRequestListResponse struct {
	Requests []MoveRequestResponse `json:"requests"`
}

// MapMarkerModel 地図表示用マーカー
// @Description 地図表示用マーカー
type MapMarkerModel struct {
	ID       string        `json:"id" example:"req_1700000000000000002"`
	Position PositionModel `json:"position"`
	Title    string        `json:"title" example:"Dorm move to West Campus"`
	Price    float64       `json:"price" example:"50.00"`
}

// PositionModel 地図上の座標
// @Description 地図上の座標
type PositionModel struct {
	Lat float64 `json:"lat" example:"40.4237"`
	Lng float64 `json:"lng" example:"-86.9212"`
}

// MapMarkersResponse マーカー一覧レスポンス
// @Description マーカー一覧レスポンス
type MapMarkersResponse struct {
	Markers []MapMarkerModel `json:"markers"`
}
