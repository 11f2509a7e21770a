package service

import (
	"sort"

	"BostonBound-App/internal/domain/model"
)

// ItineraryAggregateService フラットなプラン結果を日別の表示行に変換するサービス
// 純粋な変換であり失敗しない
type ItineraryAggregateService struct{}

// NewItineraryAggregateService 新しいItineraryAggregateServiceインスタンスを作成
func NewItineraryAggregateService() *ItineraryAggregateService {
	return &ItineraryAggregateService{}
}

// Aggregate はプラン結果を日1..daysの順に区切った表示行の列に変換する
// 各日は必ず「見出し行 → 内容行（スポット行または空の日の案内行）→ 集計行」の順で出力される
func (s *ItineraryAggregateService) Aggregate(resp *model.PlanResponse, days int) []model.ItineraryRow {
	rows := make([]model.ItineraryRow, 0, len(resp.Stops)+3*days)

	for day := 1; day <= days; day++ {
		rows = append(rows, model.NewDayHeaderRow(day))

		stops := selectStopsForDay(resp.Stops, day)

		if len(stops) == 0 {
			// スポットのない日も必ず案内行とゼロ集計行を出力する
			rows = append(rows, model.NewEmptyDayRow(day))
			rows = append(rows, model.NewDaySummaryRow(day, 0, 0, 0, 0))
			continue
		}

		travelMin := sumLegETAsForDay(resp.Legs, day)

		var admissions float64
		for _, stop := range stops {
			rows = append(rows, model.NewStopRow(stop))
			admissions += stop.AdmissionEst
		}

		rows = append(rows, model.NewDaySummaryRow(day, len(stops), travelMin, admissions, 0))
	}

	return rows
}

// selectStopsForDay 指定日のスポットを開始時刻の昇順で取り出す
// "HH:MM"はゼロ埋めされているため文字列比較で時刻順になる
func selectStopsForDay(stops []model.ItineraryStop, day int) []model.ItineraryStop {
	var selected []model.ItineraryStop
	for _, stop := range stops {
		if stop.Day == day {
			selected = append(selected, stop)
		}
	}
	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].Start < selected[j].Start
	})
	return selected
}

// sumLegETAsForDay 指定日の移動区間のeta_min合計を求める
func sumLegETAsForDay(legs []model.Leg, day int) int {
	total := 0
	for _, leg := range legs {
		if leg.Day == day {
			total += leg.ETAMin
		}
	}
	return total
}
