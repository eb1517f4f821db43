package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"flexicoach/internal/handlers"
	"flexicoach/internal/logger"
	"flexicoach/internal/middleware"
	"flexicoach/internal/models"
	"flexicoach/internal/services"
	"flexicoach/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
	decimal.MarshalJSONWithoutQuotes = true
}

// stubCoach answers every question with a fixed line so chat flows can be
// exercised without a live model behind them.
type stubCoach struct{}

func (stubCoach) Ask(_ context.Context, _ string, _ *models.AnalysisSnapshot) (string, error) {
	return "Track your wants for a week before cutting them.", nil
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:integdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&models.Challenge{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Services
	normalizerService := services.NewNormalizerService()
	categorizerService := services.NewCategorizerService()
	aggregatorService := services.NewAggregatorService()
	scorerService := services.NewScorerService()
	templateService := services.NewTemplateService()
	challengeService := services.NewChallengeService(db)
	profileService := services.NewProfileService(
		normalizerService, categorizerService, aggregatorService,
		scorerService, templateService, challengeService,
	)

	// Handlers
	analyzeHandler := handlers.NewAnalyzeHandler(profileService)
	chatHandler := handlers.NewChatHandler(stubCoach{})
	challengeHandler := handlers.NewChallengeHandler(challengeService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	v1.POST("/analyze", analyzeHandler.Analyze)
	v1.POST("/chat", chatHandler.Chat)

	challenges := v1.Group("/users/:user_id/challenges")
	challenges.GET("", challengeHandler.ListChallenges)
	challenges.GET("/history", challengeHandler.ChallengeHistory)
	challenges.POST("/:challenge_id/accept", challengeHandler.AcceptChallenge)
	challenges.PUT("/:challenge_id/progress", challengeHandler.UpdateProgress)

	router.NoRoute(handlers.NotFound)

	return &testApp{DB: db, Router: router}
}

// request makes a JSON request to the test router and returns the recorder.
func (app *testApp) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// analyze uploads a CSV statement for the user and returns the recorder.
func (app *testApp) analyze(t *testing.T, userID, csv string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if err := writer.WriteField("user_id", userID); err != nil {
		t.Fatalf("failed to write user_id field: %v", err)
	}
	part, err := writer.CreateFormFile("file", "statement.csv")
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	if _, err := part.Write([]byte(csv)); err != nil {
		t.Fatalf("failed to write CSV payload: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}

	req := httptest.NewRequest("POST", "/api/v1/analyze", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// errorCode extracts the application error code from an error response.
func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	result := parseJSON(t, rec)
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %s", rec.Body.String())
	}
	code, _ := errObj["code"].(string)
	return code
}
