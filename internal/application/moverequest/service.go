package moverequest

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/chekwube-ononuju/movemates/internal/domain/moverequest"
	"github.com/chekwube-ononuju/movemates/internal/domain/user"
	otelinfra "github.com/chekwube-ononuju/movemates/internal/infrastructure/observability/otel"
)

// MoveRequestApplicationService 引っ越しリクエストアプリケーションサービス
type MoveRequestApplicationService struct {
	requestRepo moverequest.MoveRequestRepository
	userRepo    user.UserRepository
	logger      *otelinfra.Logger
	metrics     *otelinfra.Metrics
	tracer      trace.Tracer
}

// NewMoveRequestApplicationService 新しいMoveRequestApplicationServiceを作成
func NewMoveRequestApplicationService(
	requestRepo moverequest.MoveRequestRepository,
	userRepo user.UserRepository,
	logger *otelinfra.Logger,
	metrics *otelinfra.Metrics,
) *MoveRequestApplicationService {
	return &MoveRequestApplicationService{
		requestRepo: requestRepo,
		userRepo:    userRepo,
		logger:      logger,
		metrics:     metrics,
		tracer:      otel.Tracer("move-request-service"),
	}
}

// CreateRequest 新しいMoveRequestを作成
func (s *MoveRequestApplicationService) CreateRequest(ctx context.Context, req *CreateRequestRequest) (*RequestResponse, error) {
	ctx, span := s.tracer.Start(ctx, "MoveRequestApplicationService.CreateRequest")
	defer span.End()

	span.SetAttributes(attribute.String("request.user_id", req.UserID))

	r, err := moverequest.NewMoveRequest(
		s.generateRequestID(),
		req.UserID,
		req.Title,
		req.Description,
		moverequest.Location{
			Address: req.Location.Address,
			Lat:     req.Location.Lat,
			Lng:     req.Location.Lng,
		},
		req.Date,
		req.TimeOfDay,
		req.Price,
		req.IsHourly,
		req.EstimatedHours,
	)
	if err != nil {
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, err
	}

	if err := s.requestRepo.Save(ctx, r); err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, fmt.Errorf("failed to save move request: %w", err)
	}

	s.metrics.RecordMoveRequest(ctx, r.Status().String())
	s.logger.Info(ctx, "Move request created", map[string]interface{}{
		"request_id": r.RequestID(),
		"user_id":    req.UserID,
	})

	span.SetAttributes(attribute.String("request.request_id", r.RequestID()))
	span.SetStatus(otelcodes.Ok, "move request created")
	return toRequestResponse(r), nil
}

// GetRequest リクエストIDでMoveRequestを取得
func (s *MoveRequestApplicationService) GetRequest(ctx context.Context, requestID string) (*RequestResponse, error) {
	ctx, span := s.tracer.Start(ctx, "MoveRequestApplicationService.GetRequest")
	defer span.End()

	span.SetAttributes(attribute.String("request.request_id", requestID))

	r, err := s.requestRepo.FindByRequestID(ctx, requestID)
	if err != nil {
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, err
	}

	span.SetStatus(otelcodes.Ok, "move request found")
	return toRequestResponse(r), nil
}

// ListOpenRequests 募集中のMoveRequest一覧を取得
func (s *MoveRequestApplicationService) ListOpenRequests(ctx context.Context) ([]*RequestResponse, error) {
	ctx, span := s.tracer.Start(ctx, "MoveRequestApplicationService.ListOpenRequests")
	defer span.End()

	requests, err := s.requestRepo.FindOpen(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, fmt.Errorf("failed to list open requests: %w", err)
	}

	span.SetAttributes(attribute.Int("request.count", len(requests)))
	span.SetStatus(otelcodes.Ok, "open requests listed")
	return toRequestResponses(requests), nil
}

// ListUserRequests 依頼者のMoveRequest一覧を取得
func (s *MoveRequestApplicationService) ListUserRequests(ctx context.Context, userID string) ([]*RequestResponse, error) {
	ctx, span := s.tracer.Start(ctx, "MoveRequestApplicationService.ListUserRequests")
	defer span.End()

	span.SetAttributes(attribute.String("request.user_id", userID))

	requests, err := s.requestRepo.FindByUserID(ctx, userID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, fmt.Errorf("failed to list user requests: %w", err)
	}

	span.SetStatus(otelcodes.Ok, "user requests listed")
	return toRequestResponses(requests), nil
}

// ListAssignments ヘルパーに割り当てられたMoveRequest一覧を取得
func (s *MoveRequestApplicationService) ListAssignments(ctx context.Context, helperID string) ([]*RequestResponse, error) {
	ctx, span := s.tracer.Start(ctx, "MoveRequestApplicationService.ListAssignments")
	defer span.End()

	span.SetAttributes(attribute.String("request.helper_id", helperID))

	requests, err := s.requestRepo.FindByHelperID(ctx, helperID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}

	span.SetStatus(otelcodes.Ok, "assignments listed")
	return toRequestResponses(requests), nil
}

// UpdateRequest MoveRequestの内容を更新（所有者のみ、openの間のみ）
func (s *MoveRequestApplicationService) UpdateRequest(ctx context.Context, req *UpdateRequestRequest) (*RequestResponse, error) {
	ctx, span := s.tracer.Start(ctx, "MoveRequestApplicationService.UpdateRequest")
	defer span.End()

	span.SetAttributes(attribute.String("request.request_id", req.RequestID))

	r, err := s.requestRepo.FindByRequestID(ctx, req.RequestID)
	if err != nil {
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, err
	}

	if r.UserID() != req.UserID {
		span.SetStatus(otelcodes.Error, "not the owner")
		return nil, moverequest.ErrNotOwner
	}

	if err := r.UpdateDetails(
		req.Title,
		req.Description,
		moverequest.Location{
			Address: req.Location.Address,
			Lat:     req.Location.Lat,
			Lng:     req.Location.Lng,
		},
		req.Date,
		req.TimeOfDay,
		req.Price,
		req.IsHourly,
		req.EstimatedHours,
	); err != nil {
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, err
	}

	if err := s.requestRepo.Update(ctx, r); err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, fmt.Errorf("failed to update move request: %w", err)
	}

	s.logger.Info(ctx, "Move request updated", map[string]interface{}{
		"request_id": r.RequestID(),
	})

	span.SetStatus(otelcodes.Ok, "move request updated")
	return toRequestResponse(r), nil
}

// AssignHelper ヘルパーをMoveRequestに割り当てる
func (s *MoveRequestApplicationService) AssignHelper(ctx context.Context, req *AssignRequestRequest) (*RequestResponse, error) {
	ctx, span := s.tracer.Start(ctx, "MoveRequestApplicationService.AssignHelper")
	defer span.End()

	span.SetAttributes(
		attribute.String("request.request_id", req.RequestID),
		attribute.String("request.helper_id", req.HelperID),
	)

	r, err := s.requestRepo.FindByRequestID(ctx, req.RequestID)
	if err != nil {
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, err
	}

	// ヘルパーとして登録済みのユーザーのみ割り当てられる
	helper, err := s.userRepo.FindByUserID(ctx, req.HelperID)
	if err != nil {
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, err
	}
	if !helper.IsHelper() {
		span.SetStatus(otelcodes.Error, "user is not a helper")
		return nil, user.ErrNotHelper
	}

	if err := r.Assign(req.HelperID); err != nil {
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, err
	}

	if err := s.requestRepo.Update(ctx, r); err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, fmt.Errorf("failed to update move request: %w", err)
	}

	s.metrics.RecordMoveRequest(ctx, r.Status().String())
	s.logger.Info(ctx, "Helper assigned", map[string]interface{}{
		"request_id": r.RequestID(),
		"helper_id":  req.HelperID,
	})

	span.SetStatus(otelcodes.Ok, "helper assigned")
	return toRequestResponse(r), nil
}

// CompleteRequest MoveRequestを完了にする（所有者のみ）
func (s *MoveRequestApplicationService) CompleteRequest(ctx context.Context, req *CompleteRequestRequest) (*RequestResponse, error) {
	ctx, span := s.tracer.Start(ctx, "MoveRequestApplicationService.CompleteRequest")
	defer span.End()

	span.SetAttributes(attribute.String("request.request_id", req.RequestID))

	r, err := s.requestRepo.FindByRequestID(ctx, req.RequestID)
	if err != nil {
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, err
	}

	if r.UserID() != req.UserID {
		span.SetStatus(otelcodes.Error, "not the owner")
		return nil, moverequest.ErrNotOwner
	}

	if err := r.Complete(); err != nil {
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, err
	}

	if err := s.requestRepo.Update(ctx, r); err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, fmt.Errorf("failed to update move request: %w", err)
	}

	s.metrics.RecordMoveRequest(ctx, r.Status().String())
	s.logger.Info(ctx, "Move request completed", map[string]interface{}{
		"request_id": r.RequestID(),
	})

	span.SetStatus(otelcodes.Ok, "move request completed")
	return toRequestResponse(r), nil
}

// ListMapMarkers 募集中のリクエストを地図マーカーに射影する
func (s *MoveRequestApplicationService) ListMapMarkers(ctx context.Context) ([]MapMarker, error) {
	ctx, span := s.tracer.Start(ctx, "MoveRequestApplicationService.ListMapMarkers")
	defer span.End()

	requests, err := s.requestRepo.FindOpen(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, fmt.Errorf("failed to list open requests: %w", err)
	}

	markers := make([]MapMarker, 0, len(requests))
	for _, r := range requests {
		markers = append(markers, MapMarker{
			ID: r.RequestID(),
			Position: Position{
				Lat: r.Location().Lat,
				Lng: r.Location().Lng,
			},
			Title: r.Title(),
			Price: r.Price(),
		})
	}

	span.SetAttributes(attribute.Int("request.marker_count", len(markers)))
	span.SetStatus(otelcodes.Ok, "markers listed")
	return markers, nil
}

// generateRequestID リクエストIDを生成
func (s *MoveRequestApplicationService) generateRequestID() string {
	return fmt.Sprintf("req_%d", time.Now().UnixNano())
}

func toRequestResponse(r *moverequest.MoveRequest) *RequestResponse {
	return &RequestResponse{
		RequestID:   r.RequestID(),
		UserID:      r.UserID(),
		Title:       r.Title(),
		Description: r.Description(),
		Location: LocationDTO{
			Address: r.Location().Address,
			Lat:     r.Location().Lat,
			Lng:     r.Location().Lng,
		},
		Date:           r.Date(),
		TimeOfDay:      r.TimeOfDay(),
		Price:          r.Price(),
		IsHourly:       r.IsHourly(),
		EstimatedHours: r.EstimatedHours(),
		Status:         r.Status().String(),
		HelperID:       r.HelperID(),
		CreatedAt:      r.CreatedAt().Format(time.RFC3339),
	}
}

func toRequestResponses(requests []*moverequest.MoveRequest) []*RequestResponse {
	responses := make([]*RequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, toRequestResponse(r))
	}
	return responses
}
