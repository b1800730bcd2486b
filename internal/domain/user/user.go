package user

import (
	"regexp"
	"strings"
	"time"
)

const (
	// HelperMinAge ヘルパー登録の最低年齢
	HelperMinAge = 18
	// HelperMaxDistanceMiles ヘルパーの対応可能距離（マイル）
	HelperMaxDistanceMiles = 25
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// User ユーザーエンティティ（依頼者・ヘルパー共通）
type User struct {
	userID       string
	name         string
	email        string
	passwordHash string
	avatar       string
	school       string
	phone        string
	bio          string
	location     string
	isHelper     bool
	rating       float64
	reviewCount  int
	joinedAt     time.Time
	updatedAt    time.Time
}

// NewUser 新しいUserエンティティを作成
func NewUser(userID, name, email, passwordHash string) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > 255 {
		return nil, ErrInvalidName
	}
	if !emailRegex.MatchString(email) {
		return nil, ErrInvalidEmail
	}
	now := time.Now()
	return &User{
		userID:       userID,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		joinedAt:     now,
		updatedAt:    now,
	}, nil
}

// UserID ユーザーIDを返す
func (u *User) UserID() string {
	return u.userID
}

// Name 名前を返す
func (u *User) Name() string {
	return u.name
}

// Email メールアドレスを返す
func (u *User) Email() string {
	return u.email
}

// PasswordHash パスワードハッシュを返す
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// Avatar アバターURLを返す
func (u *User) Avatar() string {
	return u.avatar
}

// School 所属校を返す
func (u *User) School() string {
	return u.school
}

// Phone 電話番号を返す
func (u *User) Phone() string {
	return u.phone
}

// Bio 自己紹介を返す
func (u *User) Bio() string {
	return u.bio
}

// Location 居住エリアを返す
func (u *User) Location() string {
	return u.location
}

// IsHelper ヘルパーとして活動しているかどうかを返す
func (u *User) IsHelper() bool {
	return u.isHelper
}

// Rating 平均評価を返す
func (u *User) Rating() float64 {
	return u.rating
}

// ReviewCount 受け取ったレビュー数を返す
func (u *User) ReviewCount() int {
	return u.reviewCount
}

// JoinedAt 登録日時を返す
func (u *User) JoinedAt() time.Time {
	return u.joinedAt
}

// UpdatedAt 更新日時を返す
func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

// UpdateProfile プロフィール項目を更新する
func (u *User) UpdateProfile(name, avatar, school, phone, bio, location string) error {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > 255 {
		return ErrInvalidName
	}
	u.name = name
	u.avatar = avatar
	u.school = school
	u.phone = phone
	u.bio = bio
	u.location = location
	u.updatedAt = time.Now()
	return nil
}

// BecomeHelper ヘルパーとして登録する
func (u *User) BecomeHelper(age int) error {
	if age < HelperMinAge {
		return ErrHelperUnderage
	}
	u.isHelper = true
	u.updatedAt = time.Now()
	return nil
}

// SetRating レビュー集計から平均評価とレビュー数を更新する
func (u *User) SetRating(rating float64, reviewCount int) error {
	if rating < 0 || rating > 5 || reviewCount < 0 {
		return ErrInvalidRating
	}
	u.rating = rating
	u.reviewCount = reviewCount
	u.updatedAt = time.Now()
	return nil
}

// Restore 永続化されたデータからUserエンティティを復元する
func Restore(
	userID string,
	name string,
	email string,
	passwordHash string,
	avatar string,
	school string,
	phone string,
	bio string,
	location string,
	isHelper bool,
	rating float64,
	reviewCount int,
	joinedAt time.Time,
	updatedAt time.Time,
) *User {
	return &User{
		userID:       userID,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		avatar:       avatar,
		school:       school,
		phone:        phone,
		bio:          bio,
		location:     location,
		isHelper:     isHelper,
		rating:       rating,
		reviewCount:  reviewCount,
		joinedAt:     joinedAt,
		updatedAt:    updatedAt,
	}
}
