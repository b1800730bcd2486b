package mysql

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"github.com/chekwube-ononuju/movemates/internal/domain/user"
)

func userColumns() []string {
	return []string{
		"user_id", "name", "email", "password_hash", "avatar", "school",
		"phone", "bio", "location", "is_helper", "rating", "review_count",
		"joined_at", "updated_at",
	}
}

func TestUserRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := &UserRepository{
		db:     &DB{DB: db},
		tracer: otel.Tracer("test"),
	}

	newUser := func() *user.User {
		u, err := user.NewUser("user123", "Jordan Smith", "jordan@university.edu", "hashed-password")
		require.NoError(t, err)
		return u
	}

	tests := []struct {
		name      string
		user      *user.User
		setupMock func()
		wantError error
	}{
		{
			name: "正常系: Userを作成",
			user: newUser(),
			setupMock: func() {
				mock.ExpectExec(`INSERT INTO users`).
					WithArgs(
						"user123",
						"Jordan Smith",
						"jordan@university.edu",
						"hashed-password",
						sqlmock.AnyArg(),
						sqlmock.AnyArg(),
						sqlmock.AnyArg(),
						sqlmock.AnyArg(),
						sqlmock.AnyArg(),
						false,
						float64(0),
						0,
						sqlmock.AnyArg(),
						sqlmock.AnyArg(),
					).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
			wantError: nil,
		},
		{
			name: "異常系: メールアドレス重複",
			user: newUser(),
			setupMock: func() {
				mock.ExpectExec(`INSERT INTO users`).
					WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})
			},
			wantError: user.ErrEmailAlreadyRegistered,
		},
		{
			name: "異常系: DBエラー",
			user: newUser(),
			setupMock: func() {
				mock.ExpectExec(`INSERT INTO users`).
					WillReturnError(sql.ErrConnDone)
			},
			wantError: sql.ErrConnDone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()
			ctx := context.Background()
			err := repo.Create(ctx, tt.user)

			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_FindByUserID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := &UserRepository{
		db:     &DB{DB: db},
		tracer: otel.Tracer("test"),
	}

	now := time.Now()

	tests := []struct {
		name      string
		userID    string
		setupMock func()
		wantError error
	}{
		{
			name:   "正常系: Userを取得",
			userID: "user123",
			setupMock: func() {
				rows := sqlmock.NewRows(userColumns()).
					AddRow(
						"user123", "Jordan Smith", "jordan@university.edu", "hashed-password",
						"https://example.com/avatar.png", "State University", "555-0100",
						"Happy to help with moves", "Campus North", true, 4.8, 12,
						now, now,
					)
				mock.ExpectQuery(`SELECT .+ FROM users WHERE user_id = \?`).
					WithArgs("user123").
					WillReturnRows(rows)
			},
			wantError: nil,
		},
		{
			name:   "異常系: Userが存在しない",
			userID: "missing",
			setupMock: func() {
				mock.ExpectQuery(`SELECT .+ FROM users WHERE user_id = \?`).
					WithArgs("missing").
					WillReturnError(sql.ErrNoRows)
			},
			wantError: user.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()
			ctx := context.Background()
			u, err := repo.FindByUserID(ctx, tt.userID)

			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)
				assert.Nil(t, u)
			} else {
				assert.NoError(t, err)
				require.NotNil(t, u)
				assert.Equal(t, tt.userID, u.UserID())
				assert.True(t, u.IsHelper())
				assert.Equal(t, 4.8, u.Rating())
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_FindByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := &UserRepository{
		db:     &DB{DB: db},
		tracer: otel.Tracer("test"),
	}

	now := time.Now()

	rows := sqlmock.NewRows(userColumns()).
		AddRow(
			"user123", "Jordan Smith", "jordan@university.edu", "hashed-password",
			nil, nil, nil, nil, nil, false, float64(0), 0,
			now, now,
		)
	mock.ExpectQuery(`SELECT .+ FROM users WHERE email = \?`).
		WithArgs("jordan@university.edu").
		WillReturnRows(rows)

	ctx := context.Background()
	u, err := repo.FindByEmail(ctx, "jordan@university.edu")

	assert.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "user123", u.UserID())
	assert.Equal(t, "", u.Avatar())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindHelpers(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := &UserRepository{
		db:     &DB{DB: db},
		tracer: otel.Tracer("test"),
	}

	now := time.Now()

	rows := sqlmock.NewRows(userColumns()).
		AddRow(
			"helper1", "Alex Carter", "alex@university.edu", "hash1",
			nil, nil, nil, nil, nil, true, 4.9, 20,
			now, now,
		).
		AddRow(
			"helper2", "Sam Rivera", "sam@university.edu", "hash2",
			nil, nil, nil, nil, nil, true, 4.5, 8,
			now, now,
		)
	mock.ExpectQuery(`SELECT .+ FROM users WHERE is_helper = TRUE`).
		WillReturnRows(rows)

	ctx := context.Background()
	helpers, err := repo.FindHelpers(ctx)

	assert.NoError(t, err)
	require.Len(t, helpers, 2)
	assert.Equal(t, "helper1", helpers[0].UserID())
	assert.Equal(t, "helper2", helpers[1].UserID())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpdateTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := &UserRepository{
		db:     &DB{DB: db},
		tracer: otel.Tracer("test"),
	}

	u, err := user.NewUser("user123", "Jordan Smith", "jordan@university.edu", "hashed-password")
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE users`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	ctx := context.Background()
	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)

	require.NoError(t, repo.UpdateTx(ctx, tx, u))
	require.NoError(t, tx.Commit())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := &UserRepository{
		db:     &DB{DB: db},
		tracer: otel.Tracer("test"),
	}

	newUser := func() *user.User {
		u, err := user.NewUser("user123", "Jordan Smith", "jordan@university.edu", "hashed-password")
		require.NoError(t, err)
		return u
	}

	tests := []struct {
		name      string
		setupMock func()
		wantError error
	}{
		{
			name: "正常系: Userを更新",
			setupMock: func() {
				mock.ExpectExec(`UPDATE users`).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			wantError: nil,
		},
		{
			name: "異常系: Userが存在しない",
			setupMock: func() {
				mock.ExpectExec(`UPDATE users`).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantError: user.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()
			ctx := context.Background()
			err := repo.Update(ctx, newUser())

			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
