package routes

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	_ "vitrine_industrial/docs"
	"vitrine_industrial/internal/adapter/http/handlers"
	"vitrine_industrial/internal/adapter/http/middleware"
	"vitrine_industrial/internal/adapter/persistence/datalayer"
	"vitrine_industrial/internal/adapter/persistence/localdb"
	"vitrine_industrial/internal/adapter/persistence/repository"
	"vitrine_industrial/internal/adapter/persistence/storage"
	"vitrine_industrial/internal/infrastructure/config"
	"vitrine_industrial/internal/infrastructure/database"
	"vitrine_industrial/internal/infrastructure/metrics"
	"vitrine_industrial/internal/infrastructure/notifications"
	"vitrine_industrial/internal/usecase"
	"vitrine_industrial/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	setMiddlewares(cfg)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	store, err := buildStorage(ctx, cfg)
	if err != nil {
		cancel()
		log.Fatalf("Failed to connect the storage: %v", err)
	}
	getRoutes(ctx, cfg, store)
	cancel()

	err = router.Run(":" + strconv.Itoa(cfg.Port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// buildStorage returns a nil IStorage for the "none" driver: the stores then
// serve empty reads and refuse creations.
func buildStorage(ctx context.Context, cfg config.Config) (interfaces.IStorage, error) {
	switch cfg.StorageDriver {
	case config.DriverNone:
		log.Printf("[routes][storage] running without storage")
		return nil, nil
	case config.DriverRedis:
		client, err := database.ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, err
		}
		return storage.NewRedisStorage(client), nil
	case config.DriverDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			return nil, err
		}
		s := storage.NewDynamoStorage(ddb)
		if err := database.EnsureStorageTable(ctx, ddb, s.TableName()); err != nil {
			return nil, err
		}
		return s, nil
	case config.DriverPostgres:
		db, err := database.ConnectPostgres(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		s := storage.NewPostgresStorage(db)
		if err := s.Migrate(ctx); err != nil {
			return nil, fmt.Errorf("failed to migrate kv_store: %w", err)
		}
		return s, nil
	default:
		log.Printf("[routes][storage] using in-memory storage, data is lost on restart")
		return storage.NewMemoryStorage(), nil
	}
}

func buildNotifier(cfg config.Config) interfaces.INotifier {
	if len(cfg.KafkaBrokers) == 0 {
		return notifications.LogNotifier{}
	}
	client, err := notifications.NewKafkaClient(cfg.KafkaBrokers)
	if err != nil {
		log.Printf("Kafka notifier not configured: %v", err)
		return notifications.LogNotifier{}
	}
	return notifications.NewKafkaNotifier(client, cfg.KafkaTopic)
}

func getRoutes(ctx context.Context, cfg config.Config, store interfaces.IStorage) {
	catalog := repository.New(store, repository.WithNamespace(cfg.CatalogNamespace))
	painel := datalayer.New(store, datalayer.WithNamespace(cfg.PainelNamespace))
	legacy := localdb.NewClient(store, localdb.WithKey(cfg.LocalDBKey))

	if err := catalog.Init(ctx); err != nil {
		log.Printf("[routes][catalog] init failed: %v", err)
	}
	if err := painel.Init(ctx); err != nil {
		log.Printf("[routes][painel] init failed: %v", err)
	}

	catalogUseCase := usecase.NewCatalogUseCase(catalog.Products, catalog.Categories)
	contentUseCase := usecase.NewContentUseCase(catalog.Downloads, catalog.News, catalog.Distributors)
	quoteUseCase := usecase.NewQuoteUseCase(catalog.Quotes)
	orcamentoUseCase := usecase.NewOrcamentoUseCase(painel.Orcamentos, painel.Settings, buildNotifier(cfg))
	backupUseCase := usecase.NewBackupUseCase(catalog, painel)

	h := routeHandlers{
		catalog:   handlers.NewCatalogHandler(catalogUseCase),
		content:   handlers.NewContentHandler(contentUseCase),
		quote:     handlers.NewQuoteHandler(quoteUseCase),
		orcamento: handlers.NewOrcamentoHandler(orcamentoUseCase),
		backup:    handlers.NewBackupHandler(backupUseCase),
		legacy:    handlers.NewLegacyHandler(legacy),
	}

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPublicRoutes(v1, h, middleware.NewIPRateLimiter(cfg.PublicRatePerMin))

	// Painel administrativo
	addAdminRoutes(v1.Group("/admin"), h)
}

func setMiddlewares(cfg config.Config) {
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(metrics.Middleware())
	router.Use(middleware.CORS(cfg.CORSOrigins))
}
