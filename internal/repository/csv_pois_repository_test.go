package repository

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"BostonBound-App/internal/domain/model"
)

const seedHeader = "id,name,lat,lon,category,price_tier,open_from,open_to,avg_dwell_min,admission_cost\n"

// TestLoadPOIs_Seed はseedレイアウトの正常系パースをテストする
func TestLoadPOIs_Seed(t *testing.T) {
	src := seedHeader +
		"poi-001,Museum of Fine Arts,42.3394,-71.0942,museums,$$$,10:00,17:00,120,27.0\n" +
		"poi-007,Boston Common,42.3550,-71.0656,outdoors,$,06:00,23:00,60,0.0\n"

	pois := loadPOIs(strings.NewReader(src), CSVLayoutSeed)
	require.Len(t, pois, 2)

	mfa := pois[0]
	assert.Equal(t, "poi-001", mfa.ID)
	assert.Equal(t, "Museum of Fine Arts", mfa.Name)
	assert.Equal(t, "museums", mfa.Category)
	assert.Equal(t, "$$$", mfa.PriceTier)
	assert.Equal(t, 42.3394, mfa.Lat)
	assert.Equal(t, -71.0942, mfa.Lon)
	assert.Equal(t, 120, mfa.AvgDwellMin)
	assert.Equal(t, 27.0, mfa.AdmissionCost)

	// seedレイアウトは付加情報をカテゴリから導出する
	assert.Equal(t, "Fenway / Museum District", mfa.Neighborhood)
	assert.Equal(t, model.DefaultRating, mfa.Rating)
	assert.Equal(t, "Museum of Fine Arts is a museums spot in Boston. Typical visit ~120 minutes with an estimated admission of $27.", mfa.Description)

	common := pois[1]
	assert.Equal(t, "Parks & Greenways", common.Neighborhood)
}

// TestLoadPOIs_SeedSkipsMalformedRows は行単位のスキップ規則をテストする
func TestLoadPOIs_SeedSkipsMalformedRows(t *testing.T) {
	src := seedHeader +
		"poi-001,Short Row,42.0\n" + // 列数不足
		"poi-002,Bad Lat,not-a-number,-71.0,museums,$,09:00,17:00,60,0\n" + // 緯度パース不能
		"poi-003,Bad Lon,42.0,not-a-number,museums,$,09:00,17:00,60,0\n" + // 経度パース不能
		"\n" + // 空行
		"poi-004,Valid,42.36,-71.06,history,$,09:00,17:00,45,6.0\n"

	pois := loadPOIs(strings.NewReader(src), CSVLayoutSeed)
	require.Len(t, pois, 1)
	assert.Equal(t, "poi-004", pois[0].ID)
}

// TestLoadPOIs_SeedFieldDefaults は滞在時間・入場料のフィールド単位の補完をテストする
func TestLoadPOIs_SeedFieldDefaults(t *testing.T) {
	src := seedHeader +
		"poi-001,Defaults,42.36,-71.06,outdoors,$,09:00,17:00,oops,bad\n"

	pois := loadPOIs(strings.NewReader(src), CSVLayoutSeed)
	require.Len(t, pois, 1)

	// パース不能な値は行をスキップせずデフォルトで補完する
	assert.Equal(t, model.DefaultAvgDwellMin, pois[0].AvgDwellMin)
	assert.Equal(t, model.DefaultAdmissionCost, pois[0].AdmissionCost)
}

// TestLoadPOIs_Curated はcuratedレイアウトのパースをテストする
func TestLoadPOIs_Curated(t *testing.T) {
	src := "name,category,neighborhood,price_tier,rating,description\n" +
		"Union Oyster House,seafood,Downtown / Waterfront,$$$,4.4,Historic oyster bar near Faneuil Hall.\n" +
		"Bad Rating,food,Boston,$,not-a-number,Casual spot.\n"

	pois := loadPOIs(strings.NewReader(src), CSVLayoutCurated)
	require.Len(t, pois, 2)

	oyster := pois[0]
	assert.Equal(t, "Union Oyster House", oyster.Name)
	assert.Equal(t, "seafood", oyster.Category)
	assert.Equal(t, "Downtown / Waterfront", oyster.Neighborhood)
	assert.Equal(t, "$$$", oyster.PriceTier)
	assert.Equal(t, 4.4, oyster.Rating)
	assert.Equal(t, "Historic oyster bar near Faneuil Hall.", oyster.Description)

	// IDは採番され、座標は持たない
	assert.NotEmpty(t, oyster.ID)
	assert.Equal(t, 0.0, oyster.Lat)
	assert.Equal(t, 0.0, oyster.Lon)

	// rating不正はデフォルトで補完
	assert.Equal(t, model.DefaultRating, pois[1].Rating)
}

// TestLoadPOIs_EmptySource はヘッダーのみ・完全に空のソースをテストする
func TestLoadPOIs_EmptySource(t *testing.T) {
	assert.Empty(t, loadPOIs(strings.NewReader(""), CSVLayoutSeed))
	assert.Empty(t, loadPOIs(strings.NewReader(seedHeader), CSVLayoutSeed))
}

// TestNewCSVPOIsRepository_UnknownLayout は未対応レイアウトの拒否をテストする
func TestNewCSVPOIsRepository_UnknownLayout(t *testing.T) {
	_, err := NewCSVPOIsRepository("data/pois_boston_seed.csv", CSVLayout("tsv"))
	assert.Error(t, err)
}

func seededRepo() *CSVPOIsRepository {
	src := seedHeader +
		"poi-001,Museum of Fine Arts,42.3394,-71.0942,museums,$$$,10:00,17:00,120,27.0\n" +
		"poi-004,Freedom Trail,42.3554,-71.0640,history,$,08:00,20:00,120,0.0\n" +
		"poi-007,Boston Common,42.3550,-71.0656,outdoors,$,06:00,23:00,60,0.0\n"
	return &CSVPOIsRepository{pois: loadPOIs(strings.NewReader(src), CSVLayoutSeed)}
}

// TestCSVPOIsRepository_GetByID はID検索をテストする
func TestCSVPOIsRepository_GetByID(t *testing.T) {
	repo := seededRepo()

	poi, err := repo.GetByID(context.Background(), "poi-004")
	require.NoError(t, err)
	assert.Equal(t, "Freedom Trail", poi.Name)

	_, err = repo.GetByID(context.Background(), "poi-999")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "見つかりません")
}

// TestCSVPOIsRepository_GetByCategory はカテゴリ検索をテストする
func TestCSVPOIsRepository_GetByCategory(t *testing.T) {
	repo := seededRepo()

	pois, err := repo.GetByCategory(context.Background(), "History")
	require.NoError(t, err)
	require.Len(t, pois, 1, "カテゴリは大文字小文字を区別せず一致すること")
	assert.Equal(t, "poi-004", pois[0].ID)

	pois, err = repo.GetByCategory(context.Background(), "nightlife")
	require.NoError(t, err)
	assert.Empty(t, pois)
}

// TestCSVPOIsRepository_GetNearbyPOIs は半径検索をテストする
func TestCSVPOIsRepository_GetNearbyPOIs(t *testing.T) {
	repo := seededRepo()

	// Boston Common付近から500m: Freedom TrailとBoston Commonのみ（MFAは約3km離れている）
	pois, err := repo.GetNearbyPOIs(context.Background(), 42.3550, -71.0656, 500)
	require.NoError(t, err)
	require.Len(t, pois, 2)

	ids := []string{pois[0].ID, pois[1].ID}
	assert.Contains(t, ids, "poi-004")
	assert.Contains(t, ids, "poi-007")
}

// TestWithinRadius_SkipsUnlocatedPOIs は座標を持たないレコードが半径検索から除外されることをテストする
func TestWithinRadius_SkipsUnlocatedPOIs(t *testing.T) {
	curated := &model.LocalPOI{ID: "x", Name: "Curated", Lat: 0, Lon: 0}
	assert.False(t, WithinRadius(curated, 0, 0, 1000000))
}

// TestMilesToMeters はマイル→メートル変換をテストする
func TestMilesToMeters(t *testing.T) {
	assert.Equal(t, 1609, MilesToMeters(1))
	assert.Equal(t, 8046, MilesToMeters(5))
	assert.Equal(t, 0, MilesToMeters(0))
}

// TestDistanceMeters は既知の2地点間の距離をテストする
func TestDistanceMeters(t *testing.T) {
	// Boston Common → Museum of Fine Arts はおよそ2.9km
	d := DistanceMeters(42.3550, -71.0656, 42.3394, -71.0942)
	assert.Greater(t, d, 2500.0)
	assert.Less(t, d, 3500.0)
}
