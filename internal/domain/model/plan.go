package model

import (
	"strconv"
	"time"
)

// PreferencesPayload "preferences": { "like": [...] } に対応するペイロード
type PreferencesPayload struct {
	Like []string `json:"like"`
}

// PlanRequest プランナーサービス POST /plan のリクエストボディ
type PlanRequest struct {
	City             string             `json:"city"`
	Date             string             `json:"date"`       // ISO形式 (YYYY-MM-DD)
	StartTime        string             `json:"start_time"` // "HH:MM"
	EndTime          string             `json:"end_time"`   // "HH:MM"
	BudgetTotal      float64            `json:"budget_total"`
	Mobility         string             `json:"mobility"` // "walk", "mbta", "rideshare"
	Preferences      PreferencesPayload `json:"preferences"`
	Strategy         string             `json:"strategy"` // 送信直前にオーケストレーターが必ず上書きする
	MustSee          []string           `json:"must_see"`
	Days             int                `json:"days"`
	HasCar           bool               `json:"has_car"`
	MaxDistanceMiles float64            `json:"max_distance_miles"`
}

// ItineraryInput ユーザー入力そのままの生の希望条件
// Days は入力欄の生文字列のまま受け取り、NewPlanRequest 側で許容的にパースする
type ItineraryInput struct {
	Days             string   `json:"days"`
	HasCar           bool     `json:"has_car"`
	BudgetTotal      float64  `json:"budget_total"`
	MaxDistanceMiles float64  `json:"max_distance_miles"`
	Like             []string `json:"like"`
	Mode             string   `json:"mode"` // "greedy", "astar", "ideal"
}

// NewPlanRequest 生のユーザー入力を正規化してプランニングリクエストを構築する
// 純粋な変換であり、ネットワークアクセスや副作用は持たない
func NewPlanRequest(input *ItineraryInput) *PlanRequest {
	// パース不能・未入力・0以下の日数は1日に丸める（エラーにはしない）
	days, err := strconv.Atoi(input.Days)
	if err != nil || days < 1 {
		days = 1
	}

	mobility := MobilityWalk
	if input.HasCar {
		mobility = MobilityRideshare
	}

	like := input.Like
	if like == nil {
		like = []string{}
	}

	return &PlanRequest{
		City:             DefaultCity,
		Date:             time.Now().Format("2006-01-02"),
		StartTime:        DefaultStartTime,
		EndTime:          DefaultEndTime,
		BudgetTotal:      input.BudgetTotal,
		Mobility:         mobility,
		Preferences:      PreferencesPayload{Like: like},
		Strategy:         StrategyGreedy, // プレースホルダー（送信時に上書きされる）
		MustSee:          []string{},
		Days:             days,
		HasCar:           input.HasCar,
		MaxDistanceMiles: input.MaxDistanceMiles,
	}
}

// WithStrategy strategy だけ差し替えたコピーを返す（元のリクエストは不変のまま）
func (r *PlanRequest) WithStrategy(strategy string) *PlanRequest {
	req := *r
	req.Strategy = strategy
	return &req
}

// Metrics プランナーが返す実行メトリクス
type Metrics struct {
	Planner        string  `json:"planner"`
	RuntimeMS      float64 `json:"runtime_ms"`
	TotalStops     int     `json:"total_stops"`
	TotalTravelMin int     `json:"total_travel_min"`
	TotalScore     float64 `json:"total_score"`
	SearchEffort   int     `json:"search_effort"`
}

// PlanResponse プランナーサービス POST /plan のレスポンス
type PlanResponse struct {
	ItineraryID string          `json:"itinerary_id"`
	Stops       []ItineraryStop `json:"stops"`
	Legs        []Leg           `json:"legs"`
	CostSummary CostSummary     `json:"cost_summary"`
	Metrics     Metrics         `json:"metrics"`
}

// ItineraryStop 1つのスポット訪問（時間枠と入場料見積もり付き）
type ItineraryStop struct {
	POIID        string  `json:"poi_id"`
	Name         string  `json:"name"`
	Start        string  `json:"start"` // "HH:MM"
	End          string  `json:"end"`   // "HH:MM"
	DwellMin     int     `json:"dwell_min"`
	AdmissionEst float64 `json:"admission_est"`
	Day          int     `json:"day"`
}

// Leg 連続するスポット間の移動区間
type Leg struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Mode   string `json:"mode"`
	ETAMin int    `json:"eta_min"`
	Day    int    `json:"day"` // プランナーはlegsにもdayを含める
}

// CostSummary 旅程全体のコスト集計
type CostSummary struct {
	Admissions float64 `json:"admissions"`
	Transport  float64 `json:"transport"`
	Total      float64 `json:"total"`
}

// PlanOutcome 戦略実行の結果（採用された結果と表示用ラベル）
type PlanOutcome struct {
	Response *PlanResponse `json:"response"`
	Strategy string        `json:"strategy"` // 採用された戦略（ワイヤ値）
	Label    string        `json:"label"`    // 表示用ラベル
}

// MetricsComparison Greedy と A* のメトリクス比較結果
type MetricsComparison struct {
	Greedy        Metrics `json:"greedy"`
	Astar         Metrics `json:"astar"`
	MoreEfficient string  `json:"more_efficient"` // runtime_ms が小さい方のラベル
	DeltaMS       float64 `json:"delta_ms"`
}

// FeedbackRequest プランナーサービス POST /feedback のリクエストボディ
type FeedbackRequest struct {
	ItineraryID string `json:"itinerary_id"`
	POIID       string `json:"poi_id"`
	Rating      int    `json:"rating"`
}
