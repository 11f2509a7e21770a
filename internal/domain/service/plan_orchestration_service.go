package service

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"BostonBound-App/internal/domain/model"
	"BostonBound-App/internal/domain/repository"
)

// PlanOrchestrationService 戦略の選択・実行を行うオーケストレーションサービス
type PlanOrchestrationService interface {
	// Run はモードに応じて1回または2回プランナーを呼び出し、採用結果を返す
	// mode は "greedy"・"astar"・"ideal" のいずれか
	Run(ctx context.Context, req *model.PlanRequest, mode string) (*model.PlanOutcome, error)

	// CompareStrategyMetrics は両戦略を実行し、メトリクスを比較して返す
	CompareStrategyMetrics(ctx context.Context, req *model.PlanRequest) (*model.MetricsComparison, error)
}

type planOrchestrationService struct {
	plannerRepo repository.PlannerRepository
}

// NewPlanOrchestrationService 新しいPlanOrchestrationServiceインスタンスを作成
func NewPlanOrchestrationService(plannerRepo repository.PlannerRepository) PlanOrchestrationService {
	return &planOrchestrationService{
		plannerRepo: plannerRepo,
	}
}

// Run はモードに応じて処理を振り分ける単一のエントリーポイント
func (s *planOrchestrationService) Run(ctx context.Context, req *model.PlanRequest, mode string) (*model.PlanOutcome, error) {
	if mode == model.ModeIdeal {
		return s.runIdeal(ctx, req)
	}

	strategy, ok := model.StrategyForMode(mode)
	if !ok {
		return nil, fmt.Errorf("対応していないモードです: %s", mode)
	}

	resp, err := s.plannerRepo.Plan(ctx, req.WithStrategy(strategy))
	if err != nil {
		return nil, fmt.Errorf("プランナー呼び出しに失敗 (%s): %w", strategy, err)
	}

	return &model.PlanOutcome{
		Response: resp,
		Strategy: strategy,
		Label:    model.GetStrategyLabel(strategy),
	}, nil
}

// runIdeal は両戦略を並行実行し、runtime_msが小さい方を採用する
// どちらか一方でも失敗した場合は全体を失敗とし、部分結果は返さない
func (s *planOrchestrationService) runIdeal(ctx context.Context, req *model.PlanRequest) (*model.PlanOutcome, error) {
	greedyResp, astarResp, err := s.planBoth(ctx, req)
	if err != nil {
		return nil, err
	}

	// タイブレーク：runtime_msが同値ならGreedyを採用する
	winner := model.StrategyGreedy
	resp := greedyResp
	if astarResp.Metrics.RuntimeMS < greedyResp.Metrics.RuntimeMS {
		winner = model.StrategyAstar
		resp = astarResp
	}

	log.Printf("⚖️ idealモード採用結果: %s (greedy=%.2fms, astar=%.2fms)",
		winner, greedyResp.Metrics.RuntimeMS, astarResp.Metrics.RuntimeMS)

	return &model.PlanOutcome{
		Response: resp,
		Strategy: winner,
		Label:    model.GetStrategyLabel(winner),
	}, nil
}

// CompareStrategyMetrics は両戦略を並行実行し、メトリクス比較を返す
func (s *planOrchestrationService) CompareStrategyMetrics(ctx context.Context, req *model.PlanRequest) (*model.MetricsComparison, error) {
	greedyResp, astarResp, err := s.planBoth(ctx, req)
	if err != nil {
		return nil, err
	}

	comparison := &model.MetricsComparison{
		Greedy: greedyResp.Metrics,
		Astar:  astarResp.Metrics,
	}

	// 効率判定は runtime_ms の比較（同値ならGreedy）
	if greedyResp.Metrics.RuntimeMS <= astarResp.Metrics.RuntimeMS {
		comparison.MoreEfficient = model.GetStrategyLabel(model.StrategyGreedy)
		comparison.DeltaMS = astarResp.Metrics.RuntimeMS - greedyResp.Metrics.RuntimeMS
	} else {
		comparison.MoreEfficient = model.GetStrategyLabel(model.StrategyAstar)
		comparison.DeltaMS = greedyResp.Metrics.RuntimeMS - astarResp.Metrics.RuntimeMS
	}

	return comparison, nil
}

// planBoth は両戦略のプランナー呼び出しを並行して発行し、両方の完了を待つ
// 2つの呼び出しは互いに独立しており、完了順序に依存しない
func (s *planOrchestrationService) planBoth(ctx context.Context, req *model.PlanRequest) (*model.PlanResponse, *model.PlanResponse, error) {
	var greedyResp, astarResp *model.PlanResponse

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		resp, err := s.plannerRepo.Plan(gctx, req.WithStrategy(model.StrategyGreedy))
		if err != nil {
			return fmt.Errorf("プランナー呼び出しに失敗 (%s): %w", model.StrategyGreedy, err)
		}
		greedyResp = resp
		return nil
	})
	g.Go(func() error {
		resp, err := s.plannerRepo.Plan(gctx, req.WithStrategy(model.StrategyAstar))
		if err != nil {
			return fmt.Errorf("プランナー呼び出しに失敗 (%s): %w", model.StrategyAstar, err)
		}
		astarResp = resp
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return greedyResp, astarResp, nil
}
