package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	tests := []struct {
		name      string
		userName  string
		email     string
		wantError error
	}{
		{
			name:     "正常系: 有効なユーザーを作成",
			userName: "Alex Chen",
			email:    "alex.chen@nyu.edu",
		},
		{
			name:      "異常系: 名前が空",
			userName:  "",
			email:     "alex.chen@nyu.edu",
			wantError: ErrInvalidName,
		},
		{
			name:      "異常系: 名前が空白のみ",
			userName:  "   ",
			email:     "alex.chen@nyu.edu",
			wantError: ErrInvalidName,
		},
		{
			name:      "異常系: メールアドレスが無効",
			userName:  "Alex Chen",
			email:     "not-an-email",
			wantError: ErrInvalidEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := NewUser("user1", tt.userName, tt.email, "hash")

			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)
				assert.Nil(t, u)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "user1", u.UserID())
			assert.Equal(t, tt.userName, u.Name())
			assert.Equal(t, tt.email, u.Email())
			assert.False(t, u.IsHelper())
			assert.Zero(t, u.Rating())
		})
	}
}

func TestUser_BecomeHelper(t *testing.T) {
	tests := []struct {
		name      string
		age       int
		wantError error
	}{
		{name: "正常系: 18歳はヘルパー登録できる", age: 18},
		{name: "正常系: 25歳はヘルパー登録できる", age: 25},
		{name: "異常系: 17歳は登録できない", age: 17, wantError: ErrHelperUnderage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := NewUser("helper1", "Jordan Martinez", "jordan@columbia.edu", "hash")
			require.NoError(t, err)

			err = u.BecomeHelper(tt.age)
			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)
				assert.False(t, u.IsHelper())
				return
			}
			require.NoError(t, err)
			assert.True(t, u.IsHelper())
		})
	}
}

func TestUser_SetRating(t *testing.T) {
	u, err := NewUser("helper1", "Jordan Martinez", "jordan@columbia.edu", "hash")
	require.NoError(t, err)

	err = u.SetRating(4.8, 15)
	require.NoError(t, err)
	assert.Equal(t, 4.8, u.Rating())
	assert.Equal(t, 15, u.ReviewCount())

	assert.ErrorIs(t, u.SetRating(5.1, 1), ErrInvalidRating)
	assert.ErrorIs(t, u.SetRating(-0.1, 1), ErrInvalidRating)
	assert.ErrorIs(t, u.SetRating(4.0, -1), ErrInvalidRating)
}

func TestUser_UpdateProfile(t *testing.T) {
	u, err := NewUser("user1", "Alex Chen", "alex.chen@nyu.edu", "hash")
	require.NoError(t, err)

	err = u.UpdateProfile("Alex C.", "https://example.com/a.png", "NYU", "(646) 555-0123", "Senior studying Business", "Greenwich Village")
	require.NoError(t, err)
	assert.Equal(t, "Alex C.", u.Name())
	assert.Equal(t, "NYU", u.School())
	assert.Equal(t, "Greenwich Village", u.Location())

	assert.ErrorIs(t, u.UpdateProfile("", "", "", "", "", ""), ErrInvalidName)
}
