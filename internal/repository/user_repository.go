package repository

import (
	"context"
	"errors"

	"marketplace/internal/domain/model"
)

// ユーザーが見つかりませんを統一
var ErrUserNotFound = errors.New("user not found")

// 保存・取得を約束
type UserRepository interface {
	//新規ユーザー作成
	Create(ctx context.Context, user *model.User) error
	//loginからユーザーを1件取得する。
	FindByLogin(ctx context.Context, login string) (*model.User, error)
	// IDからユーザーを1件取得する。
	FindByID(ctx context.Context, userID int64) (*model.User, error)
	//全ユーザー取得（GET /users）
	List(ctx context.Context) ([]model.User, error)
}
