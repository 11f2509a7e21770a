package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"BostonBound-App/internal/domain/repository"
	"BostonBound-App/internal/domain/service"
	"BostonBound-App/internal/handler"
	"BostonBound-App/internal/infrastructure/database"
	"BostonBound-App/internal/infrastructure/planner"
	repoImpl "BostonBound-App/internal/repository"
	"BostonBound-App/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using system environment variables")
	}

	plannerBaseURL := os.Getenv("PLANNER_BASE_URL")
	if plannerBaseURL == "" {
		fmt.Println("⚠️  環境変数が設定されていません:")
		fmt.Println("必要な環境変数: PLANNER_BASE_URL (例: http://localhost:8000)")
		fmt.Println("\n.envファイルを作成するか、環境変数を設定してください")
		log.Fatal("Environment variables not set")
	}

	// プランナークライアントはプロセスで1つだけ生成し、各層に注入する
	fmt.Println("Initializing planner client...")
	plannerClient := planner.NewHTTPPlannerClient(plannerBaseURL)

	// POIカタログの選択（デフォルトはCSV、シード済み環境ではPostgres）
	poisRepo, err := buildPOIsRepository()
	if err != nil {
		log.Fatalf("POIカタログ初期化失敗: %v", err)
	}

	// サービスとユースケースの組み立て
	orchestrationService := service.NewPlanOrchestrationService(plannerClient)
	aggregateService := service.NewItineraryAggregateService()
	itineraryUseCase := usecase.NewItineraryUseCase(orchestrationService, aggregateService, plannerClient)

	itineraryHandler := handler.NewItineraryHandler(itineraryUseCase)
	poisHandler := handler.NewPOIsHandler(poisRepo)

	// ルーティングの設定
	r := gin.Default()

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "BostonBound-App"})
	})

	v1 := r.Group("/api/v1")
	{
		v1.POST("/itinerary", itineraryHandler.PostItinerary)
		v1.POST("/itinerary/metrics", itineraryHandler.PostMetricsComparison)
		v1.POST("/feedback", itineraryHandler.PostFeedback)
		v1.GET("/pois", poisHandler.GetPOIs)
		v1.GET("/pois/:id", poisHandler.GetPOIByID)
	}

	fmt.Println("BostonBound-App server starting on :8080...")
	log.Fatal(r.Run(":8080"))
}

// buildPOIsRepository はPOI_SOURCE環境変数に応じてカタログ実装を選択する
func buildPOIsRepository() (repository.LocalPOIsRepository, error) {
	switch os.Getenv("POI_SOURCE") {
	case "postgres":
		fmt.Println("Initializing Supabase client...")
		supabaseClient, err := database.NewSupabaseClient()
		if err != nil {
			return nil, fmt.Errorf("supabaseクライアント初期化失敗: %w", err)
		}

		fmt.Println("Performing Supabase health check...")
		if err := supabaseClient.HealthCheck(); err != nil {
			return nil, fmt.Errorf("supabaseヘルスチェック失敗: %w", err)
		}
		fmt.Println("✅ Supabase connection successful!")

		dbClient, err := database.NewPostgreSQLClient()
		if err != nil {
			return nil, fmt.Errorf("postgreSQLクライアント初期化失敗: %w", err)
		}
		return repoImpl.NewPostgresPOIsRepository(dbClient), nil

	default:
		// CSVカタログ（レイアウトは明示指定、未指定ならseed）
		path := os.Getenv("POI_CSV_PATH")
		if path == "" {
			path = "data/pois_boston_seed.csv"
		}
		layout := repoImpl.CSVLayout(os.Getenv("POI_CSV_LAYOUT"))
		if layout == "" {
			layout = repoImpl.CSVLayoutSeed
		}
		return repoImpl.NewCSVPOIsRepository(path, layout)
	}
}
