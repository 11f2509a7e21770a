package repository

import (
	"context"
	"database/sql"
	"fmt"

	"BostonBound-App/internal/domain/model"
	"BostonBound-App/internal/domain/repository"
	"BostonBound-App/internal/infrastructure/database"
)

// PostgresPOIsRepository Supabase PostgreSQLをバックエンドとするPOIカタログ
// CSV版と同じインターフェースを実装し、シード済み環境で差し替えて使う
type PostgresPOIsRepository struct {
	client *database.PostgreSQLClient
}

// NewPostgresPOIsRepository 新しいPostgresPOIsRepositoryを作成
func NewPostgresPOIsRepository(client *database.PostgreSQLClient) repository.LocalPOIsRepository {
	return &PostgresPOIsRepository{
		client: client,
	}
}

// poiRow poisテーブルの1行を受け取るための構造体
type poiRow struct {
	ID            string
	Name          string
	Lat           float64
	Lon           float64
	Category      string
	PriceTier     string
	OpenFrom      string
	OpenTo        string
	AvgDwellMin   sql.NullInt64
	AdmissionCost sql.NullFloat64
}

// toLocalPOI poiRowをmodel.LocalPOIに変換（派生フィールドの補完込み）
func (row *poiRow) toLocalPOI() model.LocalPOI {
	avgDwellMin := model.DefaultAvgDwellMin
	if row.AvgDwellMin.Valid {
		avgDwellMin = int(row.AvgDwellMin.Int64)
	}
	admissionCost := model.DefaultAdmissionCost
	if row.AdmissionCost.Valid {
		admissionCost = row.AdmissionCost.Float64
	}

	return model.LocalPOI{
		ID:            row.ID,
		Name:          row.Name,
		Category:      row.Category,
		PriceTier:     row.PriceTier,
		Lat:           row.Lat,
		Lon:           row.Lon,
		OpenFrom:      row.OpenFrom,
		OpenTo:        row.OpenTo,
		AvgDwellMin:   avgDwellMin,
		AdmissionCost: admissionCost,
		Neighborhood:  model.GetNeighborhoodForCategory(row.Category),
		Rating:        model.DefaultRating,
		Description:   model.BuildPOIDescription(row.Name, row.Category, avgDwellMin, admissionCost),
	}
}

const poiSelectColumns = `id, name, lat, lon, category, price_tier, open_from, open_to, avg_dwell_min, admission_cost`

func (r *PostgresPOIsRepository) GetAll(ctx context.Context) ([]model.LocalPOI, error) {
	query := `SELECT ` + poiSelectColumns + ` FROM pois ORDER BY name`

	rows, err := r.client.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("POIデータの取得失敗: %w", err)
	}
	defer rows.Close()

	return scanPOIRows(rows)
}

func (r *PostgresPOIsRepository) GetByID(ctx context.Context, id string) (*model.LocalPOI, error) {
	query := `SELECT ` + poiSelectColumns + ` FROM pois WHERE id = $1`

	row := r.client.DB.QueryRowContext(ctx, query, id)

	var result poiRow
	err := row.Scan(&result.ID, &result.Name, &result.Lat, &result.Lon, &result.Category,
		&result.PriceTier, &result.OpenFrom, &result.OpenTo, &result.AvgDwellMin, &result.AdmissionCost)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("POI ID %s が見つかりません", id)
		}
		return nil, fmt.Errorf("POIデータの取得失敗: %w", err)
	}

	poi := result.toLocalPOI()
	return &poi, nil
}

func (r *PostgresPOIsRepository) GetByCategory(ctx context.Context, category string) ([]model.LocalPOI, error) {
	query := `SELECT ` + poiSelectColumns + ` FROM pois WHERE LOWER(category) = LOWER($1) ORDER BY name`

	rows, err := r.client.DB.QueryContext(ctx, query, category)
	if err != nil {
		return nil, fmt.Errorf("カテゴリ別POI検索失敗: %w", err)
	}
	defer rows.Close()

	return scanPOIRows(rows)
}

func (r *PostgresPOIsRepository) GetNearbyPOIs(ctx context.Context, lat, lon float64, radiusMeters int) ([]model.LocalPOI, error) {
	// テーブルは素のlat/lon列のため、距離判定はアプリ側で行う
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("周辺POI検索失敗: %w", err)
	}

	var matched []model.LocalPOI
	for i := range all {
		if WithinRadius(&all[i], lat, lon, radiusMeters) {
			matched = append(matched, all[i])
		}
	}
	return matched, nil
}

// scanPOIRows クエリ結果をスキャンしてLocalPOIのスライスに変換
func scanPOIRows(rows *sql.Rows) ([]model.LocalPOI, error) {
	var pois []model.LocalPOI
	for rows.Next() {
		var result poiRow
		err := rows.Scan(&result.ID, &result.Name, &result.Lat, &result.Lon, &result.Category,
			&result.PriceTier, &result.OpenFrom, &result.OpenTo, &result.AvgDwellMin, &result.AdmissionCost)
		if err != nil {
			return nil, fmt.Errorf("POIデータスキャンエラー: %w", err)
		}
		pois = append(pois, result.toLocalPOI())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("行イテレーション中のエラー: %w", err)
	}

	return pois, nil
}
