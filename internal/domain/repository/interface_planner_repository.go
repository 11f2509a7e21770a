package repository

import (
	"context"

	"BostonBound-App/internal/domain/model"
)

// PlannerRepository リモートプランナーサービスへの境界インターフェース
// 実装は internal/infrastructure/planner にある
type PlannerRepository interface {
	// Plan は正規化済みリクエストをプランナーに送り、旅程を取得する
	// リクエストの strategy フィールドは呼び出し側が設定済みであること
	Plan(ctx context.Context, req *model.PlanRequest) (*model.PlanResponse, error)

	// SubmitFeedback はスポットへの評価をプランナーに送信する
	SubmitFeedback(ctx context.Context, fb *model.FeedbackRequest) error
}
