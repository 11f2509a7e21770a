package model

import (
	"fmt"
	"strings"
)

// LocalPOI ブラウズ用カタログのPOIレコード
// CSVまたはDBから読み込まれ、ロード後は読み取り専用
type LocalPOI struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	PriceTier     string  `json:"price_tier"`
	Lat           float64 `json:"lat"`
	Lon           float64 `json:"lon"`
	OpenFrom      string  `json:"open_from"` // "HH:MM"
	OpenTo        string  `json:"open_to"`   // "HH:MM"
	AvgDwellMin   int     `json:"avg_dwell_min"`
	AdmissionCost float64 `json:"admission_cost"`

	// 表示を豊かにするための派生フィールド
	Neighborhood string  `json:"neighborhood"`
	Rating       float64 `json:"rating"` // 当面は固定のプレースホルダー評価
	Description  string  `json:"description"`
}

// DefaultValues 不正なフィールドに適用するデフォルト値
const (
	DefaultAvgDwellMin   = 60
	DefaultAdmissionCost = 0.0
	DefaultRating        = 4.5
)

// BuildPOIDescription 名前・カテゴリ・滞在時間・入場料から説明文を組み立てる
func BuildPOIDescription(name, category string, avgDwellMin int, admissionCost float64) string {
	return fmt.Sprintf(
		"%s is a %s spot in Boston. Typical visit ~%d minutes with an estimated admission of $%d.",
		name, strings.ToLower(category), avgDwellMin, int(admissionCost),
	)
}

// HasAdmissionFee 入場料が発生するかチェック
func (p *LocalPOI) HasAdmissionFee() bool {
	return p.AdmissionCost > 0
}

// MatchesCategory カテゴリが一致するかチェック（大文字小文字は区別しない）
func (p *LocalPOI) MatchesCategory(category string) bool {
	return strings.EqualFold(p.Category, category)
}
