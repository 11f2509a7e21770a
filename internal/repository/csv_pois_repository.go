package repository

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"BostonBound-App/internal/domain/model"
	"BostonBound-App/internal/domain/repository"
)

// CSVLayout POIカタログCSVの列レイアウト
// リポジトリには互換性のない2種類の列順が存在するため、どちらを使うかは
// 呼び出し側が明示的に選択する（自動判別はしない）
type CSVLayout string

const (
	// CSVLayoutSeed id,name,lat,lon,category,price_tier,open_from,open_to,avg_dwell_min,admission_cost
	CSVLayoutSeed CSVLayout = "seed"
	// CSVLayoutCurated name,category,neighborhood,price_tier,rating,description
	CSVLayoutCurated CSVLayout = "curated"
)

const (
	seedMinColumns    = 10
	curatedMinColumns = 6
)

// CSVPOIsRepository CSVファイルから読み込んだPOIカタログ
// ロードは起動時に1回だけ行われ、以降レコードは読み取り専用
type CSVPOIsRepository struct {
	pois []model.LocalPOI
}

// NewCSVPOIsRepository CSVファイルをパースしてカタログを構築する
// 不正な行は仕様どおり黙ってスキップまたはフィールド単位でデフォルト補完され、
// ファイルが開けた後のパースは失敗しない
func NewCSVPOIsRepository(path string, layout CSVLayout) (repository.LocalPOIsRepository, error) {
	if layout != CSVLayoutSeed && layout != CSVLayoutCurated {
		return nil, fmt.Errorf("対応していないCSVレイアウトです: %s", layout)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("POIカタログCSVのオープンに失敗: %w", err)
	}
	defer f.Close()

	pois := loadPOIs(f, layout)
	log.Printf("📍 POIカタログ読み込み完了: %d件 (layout=%s)", len(pois), layout)

	return &CSVPOIsRepository{pois: pois}, nil
}

// loadPOIs CSVソースを1行ずつパースしてPOIレコードに変換する
// 注意：フィールド内のカンマには対応していない（クォート・エスケープなし）
func loadPOIs(r io.Reader, layout CSVLayout) []model.LocalPOI {
	var pois []model.LocalPOI

	scanner := bufio.NewScanner(r)

	// ヘッダー行を読み捨てる
	if !scanner.Scan() {
		return pois // 空のソース
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Split(line, ",")

		var poi *model.LocalPOI
		switch layout {
		case CSVLayoutSeed:
			poi = parseSeedRow(parts)
		case CSVLayoutCurated:
			poi = parseCuratedRow(parts)
		}
		if poi == nil {
			continue // 不正な行はエラーにせずスキップする
		}

		pois = append(pois, *poi)
	}

	return pois
}

// parseSeedRow seedレイアウトの1行をパースする
// 列数不足・緯度経度の数値パース失敗は行ごとスキップ、
// 滞在時間・入場料のパース失敗はデフォルト値で補完する
func parseSeedRow(parts []string) *model.LocalPOI {
	if len(parts) < seedMinColumns {
		return nil
	}

	lat, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return nil
	}
	lon, err := strconv.ParseFloat(parts[3], 64)
	if err != nil {
		return nil
	}

	avgDwellMin, err := strconv.Atoi(parts[8])
	if err != nil {
		avgDwellMin = model.DefaultAvgDwellMin
	}
	admissionCost, err := strconv.ParseFloat(parts[9], 64)
	if err != nil {
		admissionCost = model.DefaultAdmissionCost
	}

	name := parts[1]
	category := parts[4]

	return &model.LocalPOI{
		ID:            parts[0],
		Name:          name,
		Category:      category,
		PriceTier:     parts[5],
		Lat:           lat,
		Lon:           lon,
		OpenFrom:      parts[6],
		OpenTo:        parts[7],
		AvgDwellMin:   avgDwellMin,
		AdmissionCost: admissionCost,
		Neighborhood:  model.GetNeighborhoodForCategory(category),
		Rating:        model.DefaultRating,
		Description:   model.BuildPOIDescription(name, category, avgDwellMin, admissionCost),
	}
}

// parseCuratedRow curatedレイアウトの1行をパースする
// このレイアウトはIDと座標を持たないため、IDは採番し座標はゼロ値のままにする
func parseCuratedRow(parts []string) *model.LocalPOI {
	if len(parts) < curatedMinColumns {
		return nil
	}

	rating, err := strconv.ParseFloat(parts[4], 64)
	if err != nil {
		rating = model.DefaultRating
	}

	return &model.LocalPOI{
		ID:            uuid.New().String(),
		Name:          parts[0],
		Category:      parts[1],
		PriceTier:     parts[3],
		AvgDwellMin:   model.DefaultAvgDwellMin,
		AdmissionCost: model.DefaultAdmissionCost,
		Neighborhood:  parts[2],
		Rating:        rating,
		Description:   parts[5],
	}
}

func (r *CSVPOIsRepository) GetAll(ctx context.Context) ([]model.LocalPOI, error) {
	return r.pois, nil
}

func (r *CSVPOIsRepository) GetByID(ctx context.Context, id string) (*model.LocalPOI, error) {
	for i := range r.pois {
		if r.pois[i].ID == id {
			return &r.pois[i], nil
		}
	}
	return nil, fmt.Errorf("POI ID %s が見つかりません", id)
}

func (r *CSVPOIsRepository) GetByCategory(ctx context.Context, category string) ([]model.LocalPOI, error) {
	var matched []model.LocalPOI
	for i := range r.pois {
		if r.pois[i].MatchesCategory(category) {
			matched = append(matched, r.pois[i])
		}
	}
	return matched, nil
}

func (r *CSVPOIsRepository) GetNearbyPOIs(ctx context.Context, lat, lon float64, radiusMeters int) ([]model.LocalPOI, error) {
	var matched []model.LocalPOI
	for i := range r.pois {
		if WithinRadius(&r.pois[i], lat, lon, radiusMeters) {
			matched = append(matched, r.pois[i])
		}
	}
	return matched, nil
}
