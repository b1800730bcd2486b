package moverequest

// LocationDTO 位置情報
type LocationDTO struct {
	Address string
	Lat     float64
	Lng     float64
}

// CreateRequestRequest MoveRequest作成リクエスト
type CreateRequestRequest struct {
	UserID         string
	Title          string
	Description    string
	Location       LocationDTO
	Date           string
	TimeOfDay      string
	Price          float64
	IsHourly       bool
	EstimatedHours int
}

// UpdateRequestRequest MoveRequest更新リクエスト
type UpdateRequestRequest struct {
	RequestID      string
	UserID         string // 呼び出し元（所有者チェックに使用）
	Title          string
	Description    string
	Location       LocationDTO
	Date           string
	TimeOfDay      string
	Price          float64
	IsHourly       bool
	EstimatedHours int
}

// AssignRequestRequest ヘルパー割り当てリクエスト
type AssignRequestRequest struct {
	RequestID string
	HelperID  string
}

// CompleteRequestRequest MoveRequest完了リクエスト
type CompleteRequestRequest struct {
	RequestID string
	UserID    string // 所有者のみ完了できる
}

// RequestResponse MoveRequestレスポンス
type RequestResponse struct {
	RequestID      string
	UserID         string
	Title          string
	Description    string
	Location       LocationDTO
	Date           string
	TimeOfDay      string
	Price          float64
	IsHourly       bool
	EstimatedHours int
	Status         string
	HelperID       string
	CreatedAt      string // RFC3339
}

// MapMarker 地図表示用のマーカー
type MapMarker struct {
	ID       string
	Position Position
	Title    string
	Price    float64
}

// Position 地図上の座標
type Position struct {
	Lat float64
	Lng float64
}
