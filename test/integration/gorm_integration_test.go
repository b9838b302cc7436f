package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/Vaujx/BAAC/internal/entity"
	"github.com/Vaujx/BAAC/internal/repository/unitofwork"
	"github.com/Vaujx/BAAC/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.ChatRepository())
	assert.NotNil(t, uow.ChatMessageRepository())
	assert.NotNil(t, uow.DocumentRepository())
	assert.NotNil(t, uow.AnalyticsRepository())
	assert.NotNil(t, uow.SettingRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check User Repository", func(t *testing.T) {
		count, err := uow.UserRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("User count: %d", count)
	})

	t.Run("Check Document Repository", func(t *testing.T) {
		count, err := uow.DocumentRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Document submission count: %d", count)
	})

	t.Run("Check Transactional Document Submission", func(t *testing.T) {
		userId := uuid.New()
		user := &entity.User{
			Id:       userId,
			Email:    "test-integration-" + uuid.New().String() + "@example.com",
			FullName: "Integration Test User",
			Role:     "user",
			Status:   "active",
		}

		err := uow.UserRepository().Create(context.Background(), user)
		assert.NoError(t, err)

		submission := &entity.DocumentSubmission{
			UserId:        &userId,
			FullName:      user.FullName,
			Area:          "Sitio Lawak",
			Purpose:       "integration check",
			Copies:        1,
			DocumentTypes: []string{"barangay clearance"},
			Status:        entity.DocumentStatusPending,
		}
		err = uow.DocumentRepository().Create(context.Background(), submission)
		assert.NoError(t, err)
		assert.NotZero(t, submission.Id)

		found, err := uow.DocumentRepository().FindOne(context.Background())
		assert.NoError(t, err)
		assert.NotNil(t, found)

		pickup := time.Now()
		err = uow.DocumentRepository().UpdateStatus(context.Background(), submission.Id, string(entity.DocumentStatusClaimed), &pickup)
		assert.NoError(t, err)

		// Cleanup
		gormDB.Exec("DELETE FROM document_submissions WHERE id = ?", submission.Id)
		gormDB.Exec("DELETE FROM users WHERE id = ?", userId)
	})

	t.Run("Check Request Series Aggregates Per Day", func(t *testing.T) {
		today := time.Now()
		err := uow.AnalyticsRepository().IncrementDocumentRequest(context.Background(), today, "barangay clearance")
		assert.NoError(t, err)
		err = uow.AnalyticsRepository().IncrementDocumentRequest(context.Background(), today, "barangay indigency")
		assert.NoError(t, err)

		series, err := uow.AnalyticsRepository().RequestSeries(context.Background(), 7)
		assert.NoError(t, err)
		assert.NotEmpty(t, series)

		// One row per day, types summed together.
		seen := map[string]bool{}
		for _, row := range series {
			day := row.RequestDate.Format("2006-01-02")
			assert.False(t, seen[day], "duplicate day %s in request series", day)
			seen[day] = true
		}
		assert.GreaterOrEqual(t, series[0].RequestCount, 2)
	})

	t.Run("Check Analytics Upserts", func(t *testing.T) {
		today := time.Now()
		err := uow.AnalyticsRepository().IncrementWebsiteVisit(context.Background(), today)
		assert.NoError(t, err)
		err = uow.AnalyticsRepository().IncrementWebsiteVisit(context.Background(), today)
		assert.NoError(t, err)

		count, err := uow.AnalyticsRepository().VisitCount(context.Background(), today)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, count, 2)
		t.Logf("Visit count today: %d", count)
	})
}
