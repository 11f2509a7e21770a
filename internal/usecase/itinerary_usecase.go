package usecase

import (
	"context"
	"fmt"
	"log"

	"BostonBound-App/internal/domain/model"
	"BostonBound-App/internal/domain/repository"
	"BostonBound-App/internal/domain/service"
)

// ItineraryUseCase 旅程作成フローのユースケース
type ItineraryUseCase interface {
	// BuildItinerary は生のユーザー入力から旅程ビューを作成する
	// 入力の正規化 → 戦略実行 → 日別ビューへの集約、の一連の流れを担う
	BuildItinerary(ctx context.Context, input *model.ItineraryInput) (*model.ItineraryView, error)

	// CompareStrategyMetrics は同一条件で両戦略を実行し、メトリクス比較を返す
	CompareStrategyMetrics(ctx context.Context, input *model.ItineraryInput) (*model.MetricsComparison, error)

	// SubmitFeedback はスポットへの評価をプランナーに転送する
	SubmitFeedback(ctx context.Context, fb *model.FeedbackRequest) error
}

// itineraryUseCaseImpl はItineraryUseCaseの実装
type itineraryUseCaseImpl struct {
	orchestrationService service.PlanOrchestrationService
	aggregateService     *service.ItineraryAggregateService
	plannerRepo          repository.PlannerRepository
}

// NewItineraryUseCase 新しいItineraryUseCaseインスタンスを作成
func NewItineraryUseCase(
	orchestrationService service.PlanOrchestrationService,
	aggregateService *service.ItineraryAggregateService,
	plannerRepo repository.PlannerRepository,
) ItineraryUseCase {
	return &itineraryUseCaseImpl{
		orchestrationService: orchestrationService,
		aggregateService:     aggregateService,
		plannerRepo:          plannerRepo,
	}
}

// BuildItinerary は生のユーザー入力から旅程ビューを作成する
func (u *itineraryUseCaseImpl) BuildItinerary(ctx context.Context, input *model.ItineraryInput) (*model.ItineraryView, error) {
	log.Printf("🚀 旅程作成開始 (モード: %s, 予算: $%.0f)", input.Mode, input.BudgetTotal)

	// Step 1: 入力を正規化してプランニングリクエストを構築
	req := model.NewPlanRequest(input)

	// Step 2: 戦略を実行（idealモードでは両戦略を並行実行して採用を決定）
	outcome, err := u.orchestrationService.Run(ctx, req, input.Mode)
	if err != nil {
		return nil, fmt.Errorf("旅程の生成に失敗: %w", err)
	}

	log.Printf("✅ プラン取得完了 (戦略: %s, スポット数: %d)", outcome.Strategy, len(outcome.Response.Stops))

	// Step 3: フラットな結果を日別の表示行に集約
	rows := u.aggregateService.Aggregate(outcome.Response, req.Days)

	return &model.ItineraryView{
		ItineraryID: outcome.Response.ItineraryID,
		Strategy:    outcome.Strategy,
		Label:       outcome.Label,
		Days:        req.Days,
		Rows:        rows,
		CostSummary: outcome.Response.CostSummary,
		Metrics:     outcome.Response.Metrics,
	}, nil
}

// CompareStrategyMetrics は同一条件で両戦略を実行し、メトリクス比較を返す
func (u *itineraryUseCaseImpl) CompareStrategyMetrics(ctx context.Context, input *model.ItineraryInput) (*model.MetricsComparison, error) {
	log.Printf("📊 戦略メトリクス比較開始")

	req := model.NewPlanRequest(input)

	comparison, err := u.orchestrationService.CompareStrategyMetrics(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("メトリクス比較に失敗: %w", err)
	}

	log.Printf("✅ メトリクス比較完了 (効率が良いのは: %s, Δ≈%.2fms)", comparison.MoreEfficient, comparison.DeltaMS)
	return comparison, nil
}

// SubmitFeedback はスポットへの評価をプランナーに転送する
func (u *itineraryUseCaseImpl) SubmitFeedback(ctx context.Context, fb *model.FeedbackRequest) error {
	if err := u.plannerRepo.SubmitFeedback(ctx, fb); err != nil {
		return fmt.Errorf("フィードバック送信に失敗: %w", err)
	}
	return nil
}
