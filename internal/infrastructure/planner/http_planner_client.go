package planner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"BostonBound-App/internal/domain/model"
	"BostonBound-App/internal/domain/repository"
)

// HTTPPlannerClient はリモートプランナーサービスへのHTTPクライアント実装
// プロセス起動時に1つだけ生成し、各サービスに注入して使い回す
type HTTPPlannerClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPPlannerClient は新しいプランナークライアントを生成する
func NewHTTPPlannerClient(baseURL string) repository.PlannerRepository {
	return &HTTPPlannerClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Plan はプランナーサービスのPOST /planを呼び出して旅程を取得する
func (c *HTTPPlannerClient) Plan(ctx context.Context, req *model.PlanRequest) (*model.PlanResponse, error) {
	// 1. リクエストボディをJSONに変換
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("リクエストのJSON変換に失敗: %w", err)
	}

	// 2. HTTPリクエストを作成・実行
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/plan", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("リクエストの作成に失敗: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("プランナーAPIリクエストに失敗: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("プランナーAPIからエラーステータスが返されました: %s", resp.Status)
	}

	// 3. JSONレスポンスをパース
	var planResp model.PlanResponse
	if err := json.NewDecoder(resp.Body).Decode(&planResp); err != nil {
		return nil, fmt.Errorf("レスポンスJSONのパースに失敗: %w", err)
	}

	return &planResp, nil
}

// SubmitFeedback はプランナーサービスのPOST /feedbackに評価を送信する
func (c *HTTPPlannerClient) SubmitFeedback(ctx context.Context, fb *model.FeedbackRequest) error {
	body, err := json.Marshal(fb)
	if err != nil {
		return fmt.Errorf("フィードバックのJSON変換に失敗: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/feedback", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("リクエストの作成に失敗: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("プランナーAPIリクエストに失敗: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("プランナーAPIからエラーステータスが返されました: %s", resp.Status)
	}

	return nil
}
