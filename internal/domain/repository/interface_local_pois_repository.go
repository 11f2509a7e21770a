package repository

import (
	"context"

	"BostonBound-App/internal/domain/model"
)

// LocalPOIsRepository ブラウズ用POIカタログの読み取りインターフェース
// ロード後のレコードは読み取り専用であり、複数の読み手から安全に共有できる
type LocalPOIsRepository interface {
	GetAll(ctx context.Context) ([]model.LocalPOI, error)
	GetByID(ctx context.Context, id string) (*model.LocalPOI, error)
	GetByCategory(ctx context.Context, category string) ([]model.LocalPOI, error)
	GetNearbyPOIs(ctx context.Context, lat, lon float64, radiusMeters int) ([]model.LocalPOI, error)
}
