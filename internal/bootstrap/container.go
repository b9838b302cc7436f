package bootstrap

import (
	"context"
	"log"

	"github.com/Vaujx/BAAC/internal/config"
	"github.com/Vaujx/BAAC/internal/controller"
	"github.com/Vaujx/BAAC/internal/pkg/logger"
	"github.com/Vaujx/BAAC/internal/pkg/mailer"
	"github.com/Vaujx/BAAC/internal/repository/unitofwork"
	"github.com/Vaujx/BAAC/internal/service"
	"github.com/Vaujx/BAAC/pkg/chatbot"
	"github.com/Vaujx/BAAC/pkg/conversation"
	"github.com/Vaujx/BAAC/pkg/intent"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const analyticsTopic = "analytics.events"

type Container struct {
	// Controllers
	ChatController     controller.IChatController
	AuthController     controller.IAuthController
	OAuthController    controller.IOAuthController
	DocumentController controller.IDocumentController
	AdminController    controller.IAdminController

	// Background services, exposed for main.go to run
	ConsumerService service.IConsumerService

	// Runtime settings; reloadable through the admin surface
	Settings *config.Settings

	AdminService service.IAdminService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
		cfg.App.ClientURL,
	)

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Runtime settings + classifier
	settings := config.NewSettings(cfg)
	classifier := intent.NewClassifier(settings)

	// 4. Generative client
	generator := chatbot.NewGeminiClient(cfg.Keys.GoogleGemini, cfg.Keys.GeminiModel)

	// 5. Anonymous conversation store: Redis when configured, else in-memory.
	var sessionStore conversation.Store
	if cfg.App.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Invalid REDIS_URL, falling back to in-memory context store: %v", err)
			sessionStore = conversation.NewMemoryStore()
		} else {
			sessionStore = conversation.NewRedisStore(redis.NewClient(opts))
			log.Printf("[INFO] Using Redis conversation store")
		}
	} else {
		sessionStore = conversation.NewMemoryStore()
		log.Printf("[INFO] Using in-memory conversation store")
	}

	// 6. Services
	publisherService := service.NewPublisherService(analyticsTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, analyticsTopic, uowFactory)

	chatService := service.NewChatService(uowFactory, classifier, generator, sessionStore, publisherService, sysLogger)
	authService := service.NewAuthService(uowFactory, emailService)
	oauthService := service.NewOAuthService(uowFactory)
	documentService := service.NewDocumentService(uowFactory)
	adminService := service.NewAdminService(uowFactory, settings, sysLogger)

	// Pick up credential overrides left in the database by a previous run.
	if _, err := adminService.ReloadSettings(context.Background()); err != nil {
		log.Printf("[WARN] Could not load admin settings from database: %v", err)
	}

	// 7. Controllers
	return &Container{
		ChatController:     controller.NewChatController(chatService),
		AuthController:     controller.NewAuthController(authService),
		OAuthController:    controller.NewOAuthController(oauthService),
		DocumentController: controller.NewDocumentController(documentService),
		AdminController:    controller.NewAdminController(adminService, documentService, sysLogger),

		ConsumerService: consumerService,
		Settings:        settings,
		AdminService:    adminService,
	}
}
