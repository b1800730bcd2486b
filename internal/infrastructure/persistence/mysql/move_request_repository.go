package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/chekwube-ononuju/movemates/internal/domain/moverequest"
)

// MoveRequestRepository MySQL実装のMoveRequestRepository
type MoveRequestRepository struct {
	db     *DB
	tracer trace.Tracer
}

// NewMoveRequestRepository 新しいMoveRequestRepositoryを作成
func NewMoveRequestRepository(db *DB) *MoveRequestRepository {
	return &MoveRequestRepository{
		db:     db,
		tracer: otel.Tracer("move-request-repository"),
	}
}

// Save MoveRequestを保存
func (r *MoveRequestRepository) Save(ctx context.Context, req *moverequest.MoveRequest) error {
	ctx, span := r.tracer.Start(ctx, "MoveRequestRepository.Save")
	defer span.End()

	span.SetAttributes(
		attribute.String("db.request_id", req.RequestID()),
		attribute.String("db.operation", "INSERT"),
		attribute.String("db.table", "move_requests"),
	)

	query := `
		INSERT INTO move_requests (
			request_id, user_id, title, description,
			location_address, location_lat, location_lng,
			date, time_of_day, price, is_hourly, estimated_hours,
			status, helper_id, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			title = VALUES(title),
			description = VALUES(description),
			location_address = VALUES(location_address),
			location_lat = VALUES(location_lat),
			location_lng = VALUES(location_lng),
			date = VALUES(date),
			time_of_day = VALUES(time_of_day),
			price = VALUES(price),
			is_hourly = VALUES(is_hourly),
			estimated_hours = VALUES(estimated_hours),
			status = VALUES(status),
			helper_id = VALUES(helper_id),
			updated_at = VALUES(updated_at)
	`

	loc := req.Location()
	_, err := r.db.ExecContext(ctx, query,
		req.RequestID(),
		req.UserID(),
		req.Title(),
		req.Description(),
		loc.Address,
		loc.Lat,
		loc.Lng,
		req.Date(),
		req.TimeOfDay(),
		req.Price(),
		req.IsHourly(),
		req.EstimatedHours(),
		req.Status().String(),
		nullableString(req.HelperID()),
		req.CreatedAt(),
		req.UpdatedAt(),
	)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return fmt.Errorf("failed to save move request: %w", err)
	}

	span.SetStatus(otelcodes.Ok, "move request saved")
	return nil
}

// FindByRequestID リクエストIDでMoveRequestを取得
func (r *MoveRequestRepository) FindByRequestID(ctx context.Context, requestID string) (*moverequest.MoveRequest, error) {
	ctx, span := r.tracer.Start(ctx, "MoveRequestRepository.FindByRequestID")
	defer span.End()

	span.SetAttributes(
		attribute.String("db.request_id", requestID),
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.table", "move_requests"),
	)

	query := selectMoveRequestColumns + ` WHERE request_id = ?`

	req, err := r.scanMoveRequest(r.db.QueryRowContext(ctx, query, requestID))
	if err == sql.ErrNoRows {
		span.SetStatus(otelcodes.Ok, "move request not found")
		return nil, moverequest.ErrRequestNotFound
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, fmt.Errorf("failed to find move request: %w", err)
	}

	span.SetStatus(otelcodes.Ok, "move request found")
	return req, nil
}

// FindOpen 募集中のMoveRequest一覧を取得
func (r *MoveRequestRepository) FindOpen(ctx context.Context) ([]*moverequest.MoveRequest, error) {
	ctx, span := r.tracer.Start(ctx, "MoveRequestRepository.FindOpen")
	defer span.End()

	span.SetAttributes(
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.table", "move_requests"),
	)

	query := selectMoveRequestColumns + ` WHERE status = 'open' ORDER BY created_at DESC`

	return r.queryMoveRequests(ctx, span, query)
}

// FindByUserID 依頼者のMoveRequest一覧を取得
func (r *MoveRequestRepository) FindByUserID(ctx context.Context, userID string) ([]*moverequest.MoveRequest, error) {
	ctx, span := r.tracer.Start(ctx, "MoveRequestRepository.FindByUserID")
	defer span.End()

	span.SetAttributes(
		attribute.String("db.user_id", userID),
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.table", "move_requests"),
	)

	query := selectMoveRequestColumns + ` WHERE user_id = ? ORDER BY created_at DESC`

	return r.queryMoveRequests(ctx, span, query, userID)
}

// FindByHelperID ヘルパーに割り当てられたMoveRequest一覧を取得
func (r *MoveRequestRepository) FindByHelperID(ctx context.Context, helperID string) ([]*moverequest.MoveRequest, error) {
	ctx, span := r.tracer.Start(ctx, "MoveRequestRepository.FindByHelperID")
	defer span.End()

	span.SetAttributes(
		attribute.String("db.helper_id", helperID),
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.table", "move_requests"),
	)

	query := selectMoveRequestColumns + ` WHERE helper_id = ? ORDER BY created_at DESC`

	return r.queryMoveRequests(ctx, span, query, helperID)
}

// Update MoveRequestを更新
func (r *MoveRequestRepository) Update(ctx context.Context, req *moverequest.MoveRequest) error {
	return r.Save(ctx, req)
}

const selectMoveRequestColumns = `
	SELECT request_id, user_id, title, description,
		location_address, location_lat, location_lng,
		date, time_of_day, price, is_hourly, estimated_hours,
		status, helper_id, created_at, updated_at
	FROM move_requests`

func (r *MoveRequestRepository) queryMoveRequests(ctx context.Context, span trace.Span, query string, args ...interface{}) ([]*moverequest.MoveRequest, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, fmt.Errorf("failed to query move requests: %w", err)
	}
	defer rows.Close()

	var requests []*moverequest.MoveRequest
	for rows.Next() {
		req, err := r.scanMoveRequest(rows)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(otelcodes.Error, err.Error())
			return nil, fmt.Errorf("failed to scan move request: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, fmt.Errorf("failed to iterate move requests: %w", err)
	}

	span.SetAttributes(attribute.Int("db.request_count", len(requests)))
	span.SetStatus(otelcodes.Ok, "move requests found")
	return requests, nil
}

func (r *MoveRequestRepository) scanMoveRequest(row rowScanner) (*moverequest.MoveRequest, error) {
	var requestID, userID, title, description string
	var locationAddress string
	var locationLat, locationLng float64
	var date, timeOfDay string
	var price float64
	var isHourly bool
	var estimatedHours int
	var dbStatus string
	var helperID sql.NullString
	var createdAt, updatedAt time.Time

	err := row.Scan(
		&requestID,
		&userID,
		&title,
		&description,
		&locationAddress,
		&locationLat,
		&locationLng,
		&date,
		&timeOfDay,
		&price,
		&isHourly,
		&estimatedHours,
		&dbStatus,
		&helperID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	status, err := moverequest.NewRequestStatus(dbStatus)
	if err != nil {
		return nil, fmt.Errorf("invalid request status: %w", err)
	}

	return moverequest.Restore(
		requestID,
		userID,
		title,
		description,
		moverequest.Location{
			Address: locationAddress,
			Lat:     locationLat,
			Lng:     locationLng,
		},
		date,
		timeOfDay,
		price,
		isHourly,
		estimatedHours,
		status,
		helperID.String,
		createdAt,
		updatedAt,
	), nil
}

// nullableString 空文字をNULLとして保存するためのヘルパー
func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
