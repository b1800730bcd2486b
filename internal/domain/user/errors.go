package user

import "errors"

var (
	// ErrUserNotFound ユーザーが見つからないエラー
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailAlreadyRegistered メールアドレスが登録済みエラー
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	// ErrInvalidCredentials 認証情報が無効エラー
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidName 名前が無効エラー
	ErrInvalidName = errors.New("invalid name")
	// ErrInvalidEmail メールアドレスが無効エラー
	ErrInvalidEmail = errors.New("invalid email")
	// ErrPasswordTooShort パスワードが短すぎるエラー
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
	// ErrInvalidRating 評価値が無効エラー
	ErrInvalidRating = errors.New("invalid rating")
	// ErrHelperUnderage ヘルパー登録の年齢条件未満エラー
	ErrHelperUnderage = errors.New("helper must be at least 18 years old")
	// ErrNotHelper ヘルパー未登録のユーザーへの割り当てエラー
	ErrNotHelper = errors.New("user is not registered as a helper")
)
