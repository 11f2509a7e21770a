package repository

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"

	"BostonBound-App/internal/domain/model"
)

const metersPerMile = 1609.344

// MilesToMeters マイルをメートルに変換
func MilesToMeters(miles float64) int {
	return int(miles * metersPerMile)
}

// DistanceMeters 2地点間の距離をメートルで求める
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	// orb.Point は [longitude, latitude] の順
	return geo.Distance(orb.Point{lon1, lat1}, orb.Point{lon2, lat2})
}

// WithinRadius POIが中心点から指定半径内にあるかチェック
// 座標を持たないレコード（curatedレイアウト由来）は常に対象外
func WithinRadius(poi *model.LocalPOI, lat, lon float64, radiusMeters int) bool {
	if poi.Lat == 0 && poi.Lon == 0 {
		return false
	}
	return DistanceMeters(lat, lon, poi.Lat, poi.Lon) <= float64(radiusMeters)
}
