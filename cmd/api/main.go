package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/repuestos-erp/internal/application/assistant"
	"github.com/tu-usuario/repuestos-erp/internal/application/auth"
	"github.com/tu-usuario/repuestos-erp/internal/application/catalog"
	"github.com/tu-usuario/repuestos-erp/internal/application/company"
	"github.com/tu-usuario/repuestos-erp/internal/application/inventory"
	"github.com/tu-usuario/repuestos-erp/internal/application/purchasing"
	"github.com/tu-usuario/repuestos-erp/internal/application/reports"
	"github.com/tu-usuario/repuestos-erp/internal/application/vouchers"
	infraai "github.com/tu-usuario/repuestos-erp/internal/infrastructure/ai"
	"github.com/tu-usuario/repuestos-erp/internal/infrastructure/events"
	"github.com/tu-usuario/repuestos-erp/internal/infrastructure/export"
	infrapdf "github.com/tu-usuario/repuestos-erp/internal/infrastructure/pdf"
	"github.com/tu-usuario/repuestos-erp/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/repuestos-erp/internal/interfaces/http"
	"github.com/tu-usuario/repuestos-erp/pkg/config"
	"github.com/tu-usuario/repuestos-erp/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Repositorios
	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	partRepo := postgres.NewPartRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	brandRepo := postgres.NewBrandRepository(pool)
	storeRepo := postgres.NewStoreRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	orderRepo := postgres.NewPurchaseOrderRepository(pool)
	voucherRepo := postgres.NewVoucherRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)
	purchasingTxRunner := postgres.NewPurchasingTxRunner(pool)

	// Publicador de eventos de movimientos, solo con broker configurado.
	var publisher inventory.MovementPublisher
	if cfg.Kafka.Brokers != "" {
		kafkaPublisher := events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
		log.Info().Str("brokers", cfg.Kafka.Brokers).Str("topic", cfg.Kafka.Topic).Msg("publicador Kafka habilitado")
	}

	// Asistente IA, solo con API key configurada.
	var llm assistant.LLMService
	if cfg.AI.AnthropicAPIKey != "" {
		llm = infraai.NewAnthropicService(cfg.AI.AnthropicAPIKey, cfg.AI.AnthropicModel)
	}

	// Casos de uso
	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.TokenConfig{
		Secret:     cfg.JWT.Secret,
		Issuer:     cfg.JWT.Issuer,
		ExpMinutes: cfg.JWT.Expiration,
	})
	companyUC := company.NewCompanyUseCase(companyRepo)
	partUC := catalog.NewPartUseCase(partRepo)
	taxonomyUC := catalog.NewTaxonomyUseCase(categoryRepo, brandRepo, storeRepo)
	movementUC := inventory.NewRegisterMovementUseCase(movementRepo, partRepo, storeRepo, txRunner, publisher)
	balanceUC := inventory.NewBalanceUseCase(movementRepo, partRepo)
	analysisUC := inventory.NewAnalysisUseCase(partRepo, movementRepo, categoryRepo)
	supplierUC := purchasing.NewSupplierUseCase(supplierRepo)
	orderUC := purchasing.NewPurchaseOrderUseCase(orderRepo, supplierRepo, partRepo, storeRepo, purchasingTxRunner)
	voucherUC := vouchers.NewVoucherUseCase(voucherRepo, companyRepo, infrapdf.NewMarotoVoucherGenerator())
	reportUC := reports.NewReportUseCase(reportRepo, export.NewXMLReportExporter())
	assistantUC := assistant.NewAssistantUseCase(partRepo, movementRepo, llm)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Repuestos ERP API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		CompanyUC:   companyUC,
		PartUC:      partUC,
		TaxonomyUC:  taxonomyUC,
		MovementUC:  movementUC,
		BalanceUC:   balanceUC,
		AnalysisUC:  analysisUC,
		SupplierUC:  supplierUC,
		OrderUC:     orderUC,
		VoucherUC:   voucherUC,
		ReportUC:    reportUC,
		AssistantUC: assistantUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
