package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNewPlanRequest_Days は日数入力の許容的なパースをテストする
func TestNewPlanRequest_Days(t *testing.T) {
	tests := []struct {
		name     string
		days     string
		expected int
	}{
		{"通常の日数", "3", 3},
		{"パース不能な文字列は1日に補完", "abc", 1},
		{"未入力は1日に補完", "", 1},
		{"0は1日に丸める", "0", 1},
		{"負数は1日に丸める", "-2", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := NewPlanRequest(&ItineraryInput{Days: tt.days})
			assert.Equal(t, tt.expected, req.Days)
		})
	}
}

// TestNewPlanRequest_Mobility は車の有無による移動手段の決定をテストする
func TestNewPlanRequest_Mobility(t *testing.T) {
	t.Run("車ありはrideshare", func(t *testing.T) {
		req := NewPlanRequest(&ItineraryInput{Days: "1", HasCar: true})
		assert.Equal(t, MobilityRideshare, req.Mobility)
		assert.True(t, req.HasCar)
	})

	t.Run("車なしはwalk", func(t *testing.T) {
		req := NewPlanRequest(&ItineraryInput{Days: "1", HasCar: false})
		assert.Equal(t, MobilityWalk, req.Mobility)
		assert.False(t, req.HasCar)
	})
}

// TestNewPlanRequest_Passthrough は予算・距離・カテゴリのパススルーをテストする
func TestNewPlanRequest_Passthrough(t *testing.T) {
	input := &ItineraryInput{
		Days:             "2",
		BudgetTotal:      150,
		MaxDistanceMiles: 10,
		Like:             []string{"museums", "food"},
	}

	req := NewPlanRequest(input)

	assert.Equal(t, 150.0, req.BudgetTotal)
	assert.Equal(t, 10.0, req.MaxDistanceMiles)
	assert.Equal(t, []string{"museums", "food"}, req.Preferences.Like)
	assert.Equal(t, DefaultCity, req.City)
	assert.Equal(t, DefaultStartTime, req.StartTime)
	assert.Equal(t, DefaultEndTime, req.EndTime)
	assert.Empty(t, req.MustSee)

	// strategyはプレースホルダーであり、送信前にオーケストレーターが必ず上書きする
	assert.Equal(t, StrategyGreedy, req.Strategy)
}

// TestNewPlanRequest_NilLike は未指定のカテゴリリストが空集合になることをテストする
func TestNewPlanRequest_NilLike(t *testing.T) {
	req := NewPlanRequest(&ItineraryInput{Days: "1"})
	assert.NotNil(t, req.Preferences.Like)
	assert.Empty(t, req.Preferences.Like)
}

// TestWithStrategy は元のリクエストを変更せずにコピーを返すことをテストする
func TestWithStrategy(t *testing.T) {
	base := NewPlanRequest(&ItineraryInput{Days: "1"})

	astar := base.WithStrategy(StrategyAstar)

	assert.Equal(t, StrategyAstar, astar.Strategy)
	assert.Equal(t, StrategyGreedy, base.Strategy) // 元は不変のまま
}

// TestFormatAdmission は入場料の表示整形をテストする
func TestFormatAdmission(t *testing.T) {
	tests := []struct {
		name      string
		admission float64
		expected  string
	}{
		{"0はFree", 0, "Free"},
		{"負数もFree", -1, "Free"},
		{"整数表示", 25, "$25"},
		{"端数は切り捨て", 19.99, "$19"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatAdmission(tt.admission))
		})
	}
}

// TestStrategyForMode はモードから戦略ワイヤ値への変換をテストする
func TestStrategyForMode(t *testing.T) {
	strategy, ok := StrategyForMode(ModeGreedy)
	assert.True(t, ok)
	assert.Equal(t, StrategyGreedy, strategy)

	strategy, ok = StrategyForMode(ModeAstar)
	assert.True(t, ok)
	assert.Equal(t, StrategyAstar, strategy)

	// idealは単一戦略に対応しない
	_, ok = StrategyForMode(ModeIdeal)
	assert.False(t, ok)

	// プランナー契約で未定義の値
	_, ok = StrategyForMode("static_explorer")
	assert.False(t, ok)
}

// TestGetNeighborhoodForCategory はカテゴリから地区ラベルへの変換をテストする
func TestGetNeighborhoodForCategory(t *testing.T) {
	assert.Equal(t, "Fenway / Museum District", GetNeighborhoodForCategory("museums"))
	assert.Equal(t, "Fenway / Museum District", GetNeighborhoodForCategory("MUSEUMS")) // 大文字小文字は区別しない
	assert.Equal(t, "Freedom Trail", GetNeighborhoodForCategory("history"))
	assert.Equal(t, "Parks & Greenways", GetNeighborhoodForCategory("outdoors"))
	assert.Equal(t, "Downtown / Waterfront", GetNeighborhoodForCategory("food"))
	assert.Equal(t, "Downtown / Waterfront", GetNeighborhoodForCategory("seafood"))
	assert.Equal(t, "Boston", GetNeighborhoodForCategory("nightlife")) // 未対応カテゴリ
}
