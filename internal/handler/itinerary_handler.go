package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"BostonBound-App/internal/domain/model"
	"BostonBound-App/internal/usecase"
)

// ItineraryHandler 旅程作成APIのハンドラー
type ItineraryHandler struct {
	itineraryUseCase usecase.ItineraryUseCase
}

// NewItineraryHandler 新しいItineraryHandlerインスタンスを作成
func NewItineraryHandler(itineraryUseCase usecase.ItineraryUseCase) *ItineraryHandler {
	return &ItineraryHandler{
		itineraryUseCase: itineraryUseCase,
	}
}

// PostItinerary は旅程を作成するエンドポイント
// POST /api/v1/itinerary
func (h *ItineraryHandler) PostItinerary(c *gin.Context) {
	var input model.ItineraryInput

	// リクエストボディのバインド
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "リクエストの形式が正しくありません",
			"details": err.Error(),
		})
		return
	}

	// バリデーション
	if err := h.validateInput(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "バリデーションエラー",
			"details": err.Error(),
		})
		return
	}

	// UseCase呼び出し
	view, err := h.itineraryUseCase.BuildItinerary(c.Request.Context(), &input)
	if err != nil {
		// プランナー呼び出しの失敗は部分結果を返さず単一のエラーとして返す
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "旅程の生成に失敗しました",
			"details": err.Error(),
		})
		return
	}

	// 成功レスポンス
	c.JSON(http.StatusOK, view)
}

// PostMetricsComparison は両戦略のメトリクスを比較するエンドポイント
// POST /api/v1/itinerary/metrics
func (h *ItineraryHandler) PostMetricsComparison(c *gin.Context) {
	var input model.ItineraryInput

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "リクエストの形式が正しくありません",
			"details": err.Error(),
		})
		return
	}

	// メトリクス比較はモードに依存しないため、モードのバリデーションは行わない
	if err := h.validateRanges(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "バリデーションエラー",
			"details": err.Error(),
		})
		return
	}

	comparison, err := h.itineraryUseCase.CompareStrategyMetrics(c.Request.Context(), &input)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "メトリクス比較に失敗しました",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, comparison)
}

// PostFeedback はスポットへの評価をプランナーに転送するエンドポイント
// POST /api/v1/feedback
func (h *ItineraryHandler) PostFeedback(c *gin.Context) {
	var fb model.FeedbackRequest

	if err := c.ShouldBindJSON(&fb); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "リクエストの形式が正しくありません",
			"details": err.Error(),
		})
		return
	}

	if fb.ItineraryID == "" || fb.POIID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "バリデーションエラー",
			"details": "itinerary_idとpoi_idは必須です",
		})
		return
	}

	if err := h.itineraryUseCase.SubmitFeedback(c.Request.Context(), &fb); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "フィードバックの送信に失敗しました",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// validateInput はリクエストの詳細バリデーションを行う
func (h *ItineraryHandler) validateInput(input *model.ItineraryInput) error {
	// モードのチェック（"static_explorer"などプランナー契約で未定義の値はここで弾く）
	switch input.Mode {
	case model.ModeGreedy, model.ModeAstar, model.ModeIdeal:
	default:
		return &ValidationError{Field: "mode", Message: "modeは'greedy'・'astar'・'ideal'のいずれかを指定してください"}
	}

	return h.validateRanges(input)
}

// validateRanges は数値入力の範囲チェックを行う
// 日数のパース失敗は拒否せずNewPlanRequest側でデフォルト補完されるため、ここでは見ない
func (h *ItineraryHandler) validateRanges(input *model.ItineraryInput) error {
	if input.BudgetTotal < 0 || input.BudgetTotal > 10000 {
		return &ValidationError{Field: "budget_total", Message: "予算は0から10000の範囲で指定してください"}
	}
	if input.MaxDistanceMiles < 0 || input.MaxDistanceMiles > 100 {
		return &ValidationError{Field: "max_distance_miles", Message: "距離は0から100マイルの範囲で指定してください"}
	}
	return nil
}

// ValidationError はバリデーションエラーを表す
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
