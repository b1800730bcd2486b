package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/chekwube-ononuju/movemates/internal/domain/user"
)

// UserRepository MySQL実装のUserRepository
type UserRepository struct {
	db     *DB
	tracer trace.Tracer
}

// NewUserRepository 新しいUserRepositoryを作成
func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{
		db:     db,
		tracer: otel.Tracer("user-repository"),
	}
}

// Create Userを新規作成
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	ctx, span := r.tracer.Start(ctx, "UserRepository.Create")
	defer span.End()

	span.SetAttributes(
		attribute.String("db.user_id", u.UserID()),
		attribute.String("db.operation", "INSERT"),
		attribute.String("db.table", "users"),
	)

	query := `
		INSERT INTO users (
			user_id, name, email, password_hash, avatar, school, phone,
			bio, location, is_helper, rating, review_count,
			joined_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		u.UserID(),
		u.Name(),
		u.Email(),
		u.PasswordHash(),
		u.Avatar(),
		u.School(),
		u.Phone(),
		u.Bio(),
		u.Location(),
		u.IsHelper(),
		u.Rating(),
		u.ReviewCount(),
		u.JoinedAt(),
		u.UpdatedAt(),
	)

	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			span.SetStatus(otelcodes.Ok, "email already registered")
			return user.ErrEmailAlreadyRegistered
		}
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return fmt.Errorf("failed to create user: %w", err)
	}

	span.SetStatus(otelcodes.Ok, "user created")
	return nil
}

// FindByUserID ユーザーIDでUserを取得
func (r *UserRepository) FindByUserID(ctx context.Context, userID string) (*user.User, error) {
	ctx, span := r.tracer.Start(ctx, "UserRepository.FindByUserID")
	defer span.End()

	span.SetAttributes(
		attribute.String("db.user_id", userID),
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.table", "users"),
	)

	query := `
		SELECT user_id, name, email, password_hash, avatar, school, phone,
			bio, location, is_helper, rating, review_count,
			joined_at, updated_at
		FROM users
		WHERE user_id = ?
	`

	u, err := r.scanUser(r.db.QueryRowContext(ctx, query, userID))
	if err == sql.ErrNoRows {
		span.SetStatus(otelcodes.Ok, "user not found")
		return nil, user.ErrUserNotFound
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	span.SetStatus(otelcodes.Ok, "user found")
	return u, nil
}

// FindByEmail メールアドレスでUserを取得
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	ctx, span := r.tracer.Start(ctx, "UserRepository.FindByEmail")
	defer span.End()

	span.SetAttributes(
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.table", "users"),
	)

	query := `
		SELECT user_id, name, email, password_hash, avatar, school, phone,
			bio, location, is_helper, rating, review_count,
			joined_at, updated_at
		FROM users
		WHERE email = ?
	`

	u, err := r.scanUser(r.db.QueryRowContext(ctx, query, email))
	if err == sql.ErrNoRows {
		span.SetStatus(otelcodes.Ok, "user not found")
		return nil, user.ErrUserNotFound
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	span.SetStatus(otelcodes.Ok, "user found")
	return u, nil
}

// FindHelpers ヘルパーとして活動しているUser一覧を取得
func (r *UserRepository) FindHelpers(ctx context.Context) ([]*user.User, error) {
	ctx, span := r.tracer.Start(ctx, "UserRepository.FindHelpers")
	defer span.End()

	span.SetAttributes(
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.table", "users"),
	)

	query := `
		SELECT user_id, name, email, password_hash, avatar, school, phone,
			bio, location, is_helper, rating, review_count,
			joined_at, updated_at
		FROM users
		WHERE is_helper = TRUE
		ORDER BY rating DESC, review_count DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, fmt.Errorf("failed to find helpers: %w", err)
	}
	defer rows.Close()

	var helpers []*user.User
	for rows.Next() {
		u, err := r.scanUser(rows)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(otelcodes.Error, err.Error())
			return nil, fmt.Errorf("failed to scan helper: %w", err)
		}
		helpers = append(helpers, u)
	}
	if err := rows.Err(); err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, fmt.Errorf("failed to iterate helpers: %w", err)
	}

	span.SetAttributes(attribute.Int("db.helper_count", len(helpers)))
	span.SetStatus(otelcodes.Ok, "helpers found")
	return helpers, nil
}

// Update Userを更新
func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	return r.update(ctx, r.db, u)
}

// UpdateTx トランザクション内でUserを更新
func (r *UserRepository) UpdateTx(ctx context.Context, tx *sql.Tx, u *user.User) error {
	return r.update(ctx, tx, u)
}

func (r *UserRepository) update(ctx context.Context, exec executor, u *user.User) error {
	ctx, span := r.tracer.Start(ctx, "UserRepository.Update")
	defer span.End()

	span.SetAttributes(
		attribute.String("db.user_id", u.UserID()),
		attribute.String("db.operation", "UPDATE"),
		attribute.String("db.table", "users"),
	)

	query := `
		UPDATE users
		SET name = ?, avatar = ?, school = ?, phone = ?, bio = ?,
			location = ?, is_helper = ?, rating = ?, review_count = ?,
			updated_at = ?
		WHERE user_id = ?
	`

	result, err := exec.ExecContext(ctx, query,
		u.Name(),
		u.Avatar(),
		u.School(),
		u.Phone(),
		u.Bio(),
		u.Location(),
		u.IsHelper(),
		u.Rating(),
		u.ReviewCount(),
		u.UpdatedAt(),
		u.UserID(),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return fmt.Errorf("failed to update user: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		span.SetStatus(otelcodes.Ok, "user not found")
		return user.ErrUserNotFound
	}

	span.SetStatus(otelcodes.Ok, "user updated")
	return nil
}

// rowScanner QueryRowContextとrows.Nextの両方のScanを受けるための共通インターフェース
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *UserRepository) scanUser(row rowScanner) (*user.User, error) {
	var userID, name, email, passwordHash string
	var avatar, school, phone, bio, location sql.NullString
	var isHelper bool
	var rating float64
	var reviewCount int
	var joinedAt, updatedAt time.Time

	err := row.Scan(
		&userID,
		&name,
		&email,
		&passwordHash,
		&avatar,
		&school,
		&phone,
		&bio,
		&location,
		&isHelper,
		&rating,
		&reviewCount,
		&joinedAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	return user.Restore(
		userID,
		name,
		email,
		passwordHash,
		avatar.String,
		school.String,
		phone.String,
		bio.String,
		location.String,
		isHelper,
		rating,
		reviewCount,
		joinedAt,
		updatedAt,
	), nil
}
