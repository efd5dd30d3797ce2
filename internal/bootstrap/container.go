package bootstrap

import (
	"context"
	"log"
	"time"

	"groupchat-be/internal/config"
	"groupchat-be/internal/controller"
	"groupchat-be/internal/handler"
	"groupchat-be/internal/pkg/logger"
	"groupchat-be/internal/repository/unitofwork"
	"groupchat-be/internal/service"
	"groupchat-be/internal/websocket"

	pktNats "groupchat-be/pkg/nats"

	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController    controller.IAuthController
	OAuthController   controller.IOAuthController
	UserController    controller.IUserController
	GroupController   controller.IGroupController
	TopicController   controller.ITopicController
	MessageController controller.IMessageController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	RealtimeHandler *handler.RealtimeHandler
	WebSocketHub    *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// Shared cache for group topic sets. Services invalidate on topic
	// creation, the TTL covers writes arriving from other instances.
	topicCache := cache.New(30*time.Second, time.Minute)

	// 2. Infrastructure
	// NATS: the app runs without the bus, fan-out just degrades to local
	// delivery only.
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	var rdb *redis.Client
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{Addr: cfg.App.RedisURL}
		}
		rdb = redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
			rdb = nil
		}
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/realtime.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Services
	publisherService := service.NewPublisherService(uowFactory, natsPub, sysLogger)
	consumerService := service.NewConsumerService(natsSub, wsHub, wsLogger)

	userService := service.NewUserService(uowFactory)
	authService := service.NewAuthService(uowFactory, cfg)
	oauthService := service.NewOAuthService(userService, cfg)
	groupService := service.NewGroupService(uowFactory)
	topicService := service.NewTopicService(uowFactory, publisherService, topicCache, cfg)
	messageService := service.NewMessageService(uowFactory, publisherService, topicCache, cfg)

	// 4. Controllers
	return &Container{
		AuthController:    controller.NewAuthController(authService, userService),
		OAuthController:   controller.NewOAuthController(oauthService),
		UserController:    controller.NewUserController(userService),
		GroupController:   controller.NewGroupController(groupService),
		TopicController:   controller.NewTopicController(topicService),
		MessageController: controller.NewMessageController(messageService),

		ConsumerService: consumerService,

		RealtimeHandler: handler.NewRealtimeHandler(wsHub, wsLogger),
		WebSocketHub:    wsHub,
	}
}
