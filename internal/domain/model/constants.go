package model

import "strings"

// DefaultConstants プランニングリクエストの固定値
const (
	DefaultCity      = "Boston"
	DefaultStartTime = "09:00"
	DefaultEndTime   = "19:00"
)

// StrategyConstants プランナーサービスが受け付ける戦略のワイヤ値
const (
	StrategyGreedy = "static_budget"
	StrategyAstar  = "astar_budget"
)

// ModeConstants クライアント側の実行モード
const (
	ModeGreedy = "greedy"
	ModeAstar  = "astar"
	ModeIdeal  = "ideal" // 両戦略を実行し、効率の良い方を採用する
)

// MobilityConstants 移動手段のワイヤ値
const (
	MobilityWalk      = "walk"
	MobilityRideshare = "rideshare"
	MobilityTransit   = "mbta"
)

// StrategyLabelMap 戦略ワイヤ値から表示用ラベルへのマッピング
var StrategyLabelMap = map[string]string{
	StrategyGreedy: "Greedy (static_budget)",
	StrategyAstar:  "A* (astar_budget)",
}

// GetStrategyLabel 戦略ワイヤ値から表示用ラベルを取得する
func GetStrategyLabel(strategy string) string {
	if label, ok := StrategyLabelMap[strategy]; ok {
		return label
	}
	return strategy // デフォルトはそのまま返す
}

// StrategyForMode 実行モードから戦略ワイヤ値を取得する
// ideal モードは単一の戦略に対応しないため ok=false を返す
func StrategyForMode(mode string) (string, bool) {
	switch mode {
	case ModeGreedy:
		return StrategyGreedy, true
	case ModeAstar:
		return StrategyAstar, true
	default:
		return "", false
	}
}

// GetAllModes 全実行モードの一覧を取得する
func GetAllModes() []string {
	return []string{
		ModeGreedy,
		ModeAstar,
		ModeIdeal,
	}
}

// NeighborhoodMap カテゴリから地区ラベルへのマッピング（小文字キー）
var NeighborhoodMap = map[string]string{
	"museums":  "Fenway / Museum District",
	"history":  "Freedom Trail",
	"outdoors": "Parks & Greenways",
	"food":     "Downtown / Waterfront",
	"seafood":  "Downtown / Waterfront",
}

// GetNeighborhoodForCategory カテゴリから地区ラベルを取得する（大文字小文字は区別しない）
func GetNeighborhoodForCategory(category string) string {
	if neighborhood, ok := NeighborhoodMap[strings.ToLower(category)]; ok {
		return neighborhood
	}
	return "Boston" // 未対応カテゴリのデフォルト
}
