package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	moverequestapp "github.com/chekwube-ononuju/movemates/internal/application/moverequest"
	restmiddleware "github.com/chekwube-ononuju/movemates/internal/presentation/rest/middleware"
)

// MoveRequestHandler 引越し依頼関連ハンドラー
type MoveRequestHandler struct {
	requestService *moverequestapp.MoveRequestApplicationService
}

// NewMoveRequestHandler 新しいMoveRequestHandlerを作成
func NewMoveRequestHandler(requestService *moverequestapp.MoveRequestApplicationService) *MoveRequestHandler {
	return &MoveRequestHandler{
		requestService: requestService,
	}
}

func toMoveRequestResponse(r *moverequestapp.RequestResponse) MoveRequestResponse {
	return MoveRequestResponse{
		RequestID:   r.RequestID,
		UserID:      r.UserID,
		Title:       r.Title,
		Description: r.Description,
		Location: LocationModel{
			Address: r.Location.Address,
			Lat:     r.Location.Lat,
			Lng:     r.Location.Lng,
		},
		Date:           r.Date,
		TimeOfDay:      r.TimeOfDay,
		Price:          r.Price,
		IsHourly:       r.IsHourly,
		EstimatedHours: r.EstimatedHours,
		Status:         r.Status,
		HelperID:       r.HelperID,
		CreatedAt:      r.CreatedAt,
	}
}

func toMoveRequestListResponse(requests []*moverequestapp.RequestResponse) MoveRequestListResponse {
	list := make([]MoveRequestResponse, len(requests))
	for i, r := range requests {
		list[i] = toMoveRequestResponse(r)
	}
	return MoveRequestListResponse{Requests: list}
}

// CreateRequest 引越し依頼作成ハンドラー
// @Summary 引越し依頼を作成
// @Description 新しい引越し依頼を募集中ステータスで作成します
// @Tags moverequest
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body CreateMoveRequestRequest true "引越し依頼作成リクエスト"
// @Success 201 {object} MoveRequestResponse "作成成功"
// @Failure 400 {object} ErrorResponse "不正なリクエスト"
// @Failure 401 {object} ErrorResponse "認証エラー"
// @Router /requests [post]
func (h *MoveRequestHandler) CreateRequest(c echo.Context) error {
	userID, ok := c.Get("user_id").(string)
	if !ok || userID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "user_id not found in token")
	}

	var reqBody CreateMoveRequestRequest
	if err := c.Bind(&reqBody); err != nil {
		return restmiddleware.ErrInvalidJSON
	}

	req := &moverequestapp.CreateRequestRequest{
		UserID:      userID,
		Title:       reqBody.Title,
		Description: reqBody.Description,
		Location: moverequestapp.LocationDTO{
			Address: reqBody.Location.Address,
			Lat:     reqBody.Location.Lat,
			Lng:     reqBody.Location.Lng,
		},
		Date:           reqBody.Date,
		TimeOfDay:      reqBody.TimeOfDay,
		Price:          reqBody.Price,
		IsHourly:       reqBody.IsHourly,
		EstimatedHours: reqBody.EstimatedHours,
	}

	resp, err := h.requestService.CreateRequest(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toMoveRequestResponse(resp))
}

// GetRequest 引越し依頼取得ハンドラー
// @Summary 引越し依頼を取得
// @Description IDを指定して引越し依頼を取得します
// @Tags moverequest
// @Produce json
// @Param id path string true "リクエストID"
// @Success 200 {object} MoveRequestResponse "取得成功"
// @Failure 404 {object} ErrorResponse "依頼が見つからない"
// @Router /requests/{id} [get]
func (h *MoveRequestHandler) GetRequest(c echo.Context) error {
	resp, err := h.requestService.GetRequest(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toMoveRequestResponse(resp))
}

// ListOpenRequests 募集中の引越し依頼一覧ハンドラー
// @Summary 募集中の引越し依頼一覧を取得
// @Tags moverequest
// @Produce json
// @Success 200 {object} MoveRequestListResponse "取得成功"
// @Router /requests [get]
func (h *MoveRequestHandler) ListOpenRequests(c echo.Context) error {
	requests, err := h.requestService.ListOpenRequests(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toMoveRequestListResponse(requests))
}

// ListMyRequests 自分の引越し依頼一覧ハンドラー
// @Summary 自分が作成した引越し依頼一覧を取得
// @Tags moverequest
// @Produce json
// @Security Bearer
// @Success 200 {object} MoveRequestListResponse "取得成功"
// @Failure 401 {object} ErrorResponse "認証エラー"
// @Router /requests/mine [get]
func (h *MoveRequestHandler) ListMyRequests(c echo.Context) error {
	userID, ok := c.Get("user_id").(string)
	if !ok || userID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "user_id not found in token")
	}

	requests, err := h.requestService.ListUserRequests(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toMoveRequestListResponse(requests))
}

// ListAssignments 請け負った引越し依頼一覧ハンドラー
// @Summary ヘルパーとして割り当てられた引越し依頼一覧を取得
// @Tags moverequest
// @Produce json
// @Security Bearer
// @Success 200 {object} MoveRequestListResponse "取得成功"
// @Failure 401 {object} ErrorResponse "認証エラー"
// @Router /requests/assignments [get]
func (h *MoveRequestHandler) ListAssignments(c echo.Context) error {
	userID, ok := c.Get("user_id").(string)
	if !ok || userID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "user_id not found in token")
	}

	requests, err := h.requestService.ListAssignments(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toMoveRequestListResponse(requests))
}

// UpdateRequest 引越し依頼更新ハンドラー
// @Summary 引越し依頼を更新
// @Description 所有者のみが募集中の依頼を更新できます
// @Tags moverequest
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "リクエストID"
// @Param request body UpdateMoveRequestRequest true "引越し依頼更新リクエスト"
// @Success 200 {object} MoveRequestResponse "更新成功"
// @Failure 400 {object} ErrorResponse "不正なリクエスト"
// @Failure 403 {object} ErrorResponse "所有者でない"
// @Failure 404 {object} ErrorResponse "依頼が見つからない"
// @Router /requests/{id} [put]
func (h *MoveRequestHandler) UpdateRequest(c echo.Context) error {
	userID, ok := c.Get("user_id").(string)
	if !ok || userID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "user_id not found in token")
	}

	var reqBody UpdateMoveRequestRequest
	if err := c.Bind(&reqBody); err != nil {
		return restmiddleware.ErrInvalidJSON
	}

	req := &moverequestapp.UpdateRequestRequest{
		RequestID:   c.Param("id"),
		UserID:      userID,
		Title:       reqBody.Title,
		Description: reqBody.Description,
		Location: moverequestapp.LocationDTO{
			Address: reqBody.Location.Address,
			Lat:     reqBody.Location.Lat,
			Lng:     reqBody.Location.Lng,
		},
		Date:           reqBody.Date,
		TimeOfDay:      reqBody.TimeOfDay,
		Price:          reqBody.Price,
		IsHourly:       reqBody.IsHourly,
		EstimatedHours: reqBody.EstimatedHours,
	}

	resp, err := h.requestService.UpdateRequest(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toMoveRequestResponse(resp))
}

// AssignHelper ヘルパー割り当てハンドラー
// @Summary 引越し依頼を請け負う
// @Description ログイン中のヘルパーを募集中の依頼に割り当てます
// @Tags moverequest
// @Produce json
// @Security Bearer
// @Param id path string true "リクエストID"
// @Success 200 {object} MoveRequestResponse "割り当て成功"
// @Failure 400 {object} ErrorResponse "不正なリクエスト"
// @Failure 404 {object} ErrorResponse "依頼が見つからない"
// @Failure 409 {object} ErrorResponse "依頼が募集中でない"
// @Router /requests/{id}/assign [post]
func (h *MoveRequestHandler) AssignHelper(c echo.Context) error {
	userID, ok := c.Get("user_id").(string)
	if !ok || userID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "user_id not found in token")
	}

	req := &moverequestapp.AssignRequestRequest{
		RequestID: c.Param("id"),
		HelperID:  userID,
	}

	resp, err := h.requestService.AssignHelper(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toMoveRequestResponse(resp))
}

// CompleteRequest 引越し依頼完了ハンドラー
// @Summary 引越し依頼を完了
// @Description 所有者が割り当て済みの依頼を完了にします
// @Tags moverequest
// @Produce json
// @Security Bearer
// @Param id path string true "リクエストID"
// @Success 200 {object} MoveRequestResponse "完了成功"
// @Failure 403 {object} ErrorResponse "所有者でない"
// @Failure 404 {object} ErrorResponse "依頼が見つからない"
// @Failure 409 {object} ErrorResponse "ヘルパー未割り当て"
// @Router /requests/{id}/complete [post]
func (h *MoveRequestHandler) CompleteRequest(c echo.Context) error {
	userID, ok := c.Get("user_id").(string)
	if !ok || userID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "user_id not found in token")
	}

	req := &moverequestapp.CompleteRequestRequest{
		RequestID: c.Param("id"),
		UserID:    userID,
	}

	resp, err := h.requestService.CompleteRequest(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toMoveRequestResponse(resp))
}

// ListMapMarkers 地図マーカー一覧ハンドラー
// @Summary 地図表示用のマーカー一覧を取得
// @Description 募集中の引越し依頼を地図マーカー形式で返します
// @Tags moverequest
// @Produce json
// @Success 200 {object} MapMarkersResponse "取得成功"
// @Router /requests/markers [get]
func (h *MoveRequestHandler) ListMapMarkers(c echo.Context) error {
	markers, err := h.requestService.ListMapMarkers(c.Request().Context())
	if err != nil {
		return err
	}

	list := make([]MapMarkerModel, len(markers))
	for i, m := range markers {
		list[i] = MapMarkerModel{
			ID: m.ID,
			Position: PositionModel{
				Lat: m.Position.Lat,
				Lng: m.Position.Lng,
			},
			Title: m.Title,
			Price: m.Price,
		}
	}

	return c.JSON(http.StatusOK, MapMarkersResponse{Markers: list})
}
