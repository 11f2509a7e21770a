package model

import "fmt"

// RowKind 旅程表示行の種別タグ
type RowKind string

const (
	RowKindDayHeader RowKind = "day_header"
	RowKindStop      RowKind = "stop"
	RowKindEmptyDay  RowKind = "empty_day"
	RowKindSummary   RowKind = "day_summary"
)

// ItineraryRow 旅程表示行（直和型）
// 描画側は Kind() で網羅的に分岐する
type ItineraryRow interface {
	Kind() RowKind
}

// DayHeaderRow 日ごとのセクション見出し
type DayHeaderRow struct {
	Type RowKind `json:"type"`
	Day  int     `json:"day"`
}

func (r DayHeaderRow) Kind() RowKind { return RowKindDayHeader }

// StopRow 1スポット分の表示行
type StopRow struct {
	Type         RowKind `json:"type"`
	POIID        string  `json:"poi_id"`
	Name         string  `json:"name"`
	TimeRange    string  `json:"time_range"` // "start – end"
	CostLabel    string  `json:"cost_label"` // "$25" もしくは "Free"
	AdmissionEst float64 `json:"admission_est"`
}

func (r StopRow) Kind() RowKind { return RowKindStop }

// EmptyDayRow スポットが1つも割り当てられなかった日の案内行
type EmptyDayRow struct {
	Type    RowKind `json:"type"`
	Day     int     `json:"day"`
	Message string  `json:"message"`
}

func (r EmptyDayRow) Kind() RowKind { return RowKindEmptyDay }

// DaySummaryRow 日ごとの集計行（スポットが空の日でも必ず出力される）
type DaySummaryRow struct {
	Type       RowKind `json:"type"`
	Day        int     `json:"day"`
	StopCount  int     `json:"stop_count"`
	TravelMin  int     `json:"travel_min"`
	Admissions float64 `json:"admissions"`
	Transport  float64 `json:"transport"` // クライアント側では交通費モデルを持たないため常に0
	Total      float64 `json:"total"`
}

func (r DaySummaryRow) Kind() RowKind { return RowKindSummary }

// ItineraryView 表示レイヤーに渡す日別旅程ビュー
// 各行は不変であり、追加の計算なしにそのまま描画できる
type ItineraryView struct {
	ItineraryID string         `json:"itinerary_id"`
	Strategy    string         `json:"strategy"`
	Label       string         `json:"label"`
	Days        int            `json:"days"`
	Rows        []ItineraryRow `json:"rows"`
	CostSummary CostSummary    `json:"cost_summary"`
	Metrics     Metrics        `json:"metrics"`
}

// NewDayHeaderRow 日見出し行を作成
func NewDayHeaderRow(day int) DayHeaderRow {
	return DayHeaderRow{Type: RowKindDayHeader, Day: day}
}

// NewStopRow スポット行を作成（時間帯とコストラベルの整形込み）
func NewStopRow(stop ItineraryStop) StopRow {
	return StopRow{
		Type:         RowKindStop,
		POIID:        stop.POIID,
		Name:         stop.Name,
		TimeRange:    fmt.Sprintf("%s – %s", stop.Start, stop.End),
		CostLabel:    FormatAdmission(stop.AdmissionEst),
		AdmissionEst: stop.AdmissionEst,
	}
}

// NewEmptyDayRow 空の日の案内行を作成
func NewEmptyDayRow(day int) EmptyDayRow {
	return EmptyDayRow{
		Type:    RowKindEmptyDay,
		Day:     day,
		Message: fmt.Sprintf("No stops planned for Day %d. Try a bigger budget or more categories.", day),
	}
}

// NewDaySummaryRow 日集計行を作成（total = admissions + transport）
func NewDaySummaryRow(day, stopCount, travelMin int, admissions, transport float64) DaySummaryRow {
	return DaySummaryRow{
		Type:       RowKindSummary,
		Day:        day,
		StopCount:  stopCount,
		TravelMin:  travelMin,
		Admissions: admissions,
		Transport:  transport,
		Total:      admissions + transport,
	}
}

// FormatAdmission 入場料の表示用整形
// 0以下は "Free"、それ以外は切り捨てたドル整数表示
func FormatAdmission(admissionEst float64) string {
	if admissionEst <= 0 {
		return "Free"
	}
	return fmt.Sprintf("$%d", int(admissionEst))
}
