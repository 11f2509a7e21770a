package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"BostonBound-App/internal/domain/repository"
)

// POIsHandler ブラウズ用POIカタログのHTTPハンドラー
type POIsHandler struct {
	poisRepo repository.LocalPOIsRepository
}

// NewPOIsHandler POIsHandlerの新しいインスタンスを作成
func NewPOIsHandler(poisRepo repository.LocalPOIsRepository) *POIsHandler {
	return &POIsHandler{
		poisRepo: poisRepo,
	}
}

// GetPOIs GET /api/v1/pois - POI一覧の取得
// クエリパラメータ: category（カテゴリ絞り込み）、near_lat/near_lng/radius_m（周辺検索）
func (h *POIsHandler) GetPOIs(c *gin.Context) {
	ctx := c.Request.Context()

	// 周辺検索パラメータが指定されている場合
	nearLat := c.Query("near_lat")
	nearLng := c.Query("near_lng")
	if nearLat != "" || nearLng != "" {
		lat, err1 := strconv.ParseFloat(nearLat, 64)
		lng, err2 := strconv.ParseFloat(nearLng, 64)
		if err1 != nil || err2 != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid_parameter",
				"message": "near_lat and near_lng must be valid numbers",
			})
			return
		}

		radiusMeters := 3000 // デフォルト半径
		if radiusStr := c.Query("radius_m"); radiusStr != "" {
			radius, err := strconv.Atoi(radiusStr)
			if err != nil || radius <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{
					"error":   "invalid_parameter",
					"message": "radius_m must be a positive integer",
				})
				return
			}
			radiusMeters = radius
		}

		pois, err := h.poisRepo.GetNearbyPOIs(ctx, lat, lng, radiusMeters)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "internal_error",
				"message": "Failed to search nearby POIs: " + err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{"pois": pois})
		return
	}

	// カテゴリ絞り込み
	if category := c.Query("category"); category != "" {
		pois, err := h.poisRepo.GetByCategory(ctx, category)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "internal_error",
				"message": "Failed to fetch POIs by category: " + err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{"pois": pois})
		return
	}

	// 全件取得
	pois, err := h.poisRepo.GetAll(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to fetch POIs: " + err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"pois": pois})
}

// GetPOIByID GET /api/v1/pois/:id - 単一POIの取得
func (h *POIsHandler) GetPOIByID(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "missing_parameter",
			"message": "id parameter is required",
		})
		return
	}

	poi, err := h.poisRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		// エラーメッセージから404か500かを判定
		if strings.Contains(err.Error(), "見つかりません") {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "not_found",
				"message": "POI not found: " + id,
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "internal_error",
				"message": "Failed to fetch POI: " + err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, poi)
}
