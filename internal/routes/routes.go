package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/estetify/clinic-admin/internal/audit"
	"github.com/estetify/clinic-admin/internal/auth"
	"github.com/estetify/clinic-admin/internal/config"
	"github.com/estetify/clinic-admin/internal/handlers"
	"github.com/estetify/clinic-admin/internal/middleware"
	"github.com/estetify/clinic-admin/internal/payments"
	"github.com/estetify/clinic-admin/internal/repository"
	"github.com/estetify/clinic-admin/internal/storage"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	tokenStore := auth.NewRedisTokenStore(redisClient)

	store := newStorage(cfg)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	var mp *payments.MercadoPago
	if cfg.MercadoPagoAccessToken != "" {
		client, err := payments.NewMercadoPago(cfg.MercadoPagoAccessToken)
		if err != nil {
			log.Println("mercado pago desabilitado:", err)
		} else {
			mp = client
		}
	}

	// ======================================================
	// REPOSITÓRIOS
	// ======================================================
	profileRepo := repository.NewProfileRepository(db)
	userRepo := repository.NewUserRepository(db, store)
	clientRepo := repository.NewClientRepository(db, store)
	appointmentRepo := repository.NewAppointmentRepository(db, store)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(userRepo, tokenStore, cfg)
	profileHandler := handlers.NewProfileHandler(profileRepo, auditDispatcher)
	userHandler := handlers.NewUserHandler(userRepo, profileRepo, auditDispatcher, cfg)
	clientHandler := handlers.NewClientHandler(clientRepo, auditDispatcher, cfg)
	appointmentHandler := handlers.NewAppointmentHandler(
		appointmentRepo,
		clientRepo,
		userRepo,
		mp,
		auditDispatcher,
		cfg,
	)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// fotos servidas direto do disco quando o driver é local
	if cfg.StorageDriver != "s3" {
		r.Static("/storage", cfg.StorageDir)
	}

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.POST("/login", authHandler.Login)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg, tokenStore))
		{
			secured.POST("/logout", authHandler.Logout)
			secured.GET("/user", authHandler.Me)

			// ------------------------------
			// PROFILES
			// ------------------------------
			secured.GET("/profiles", profileHandler.List)
			secured.GET("/profiles/combo", profileHandler.Combo)
			secured.POST("/profiles", profileHandler.Create)
			secured.GET("/profiles/:id", profileHandler.Show)
			secured.PUT("/profiles/:id", profileHandler.Update)
			secured.POST("/profiles/:id", methodOverride(profileHandler.Update))
			secured.DELETE("/profiles/:id", profileHandler.Delete)

			// ------------------------------
			// USERS
			// ------------------------------
			secured.GET("/users", userHandler.List)
			secured.POST("/users", userHandler.Create)
			secured.GET("/users/:id", userHandler.Show)
			secured.PUT("/users/:id", userHandler.Update)
			secured.POST("/users/:id", methodOverride(userHandler.Update))
			secured.DELETE("/users/:id", userHandler.Delete)

			// ------------------------------
			// CLIENTS
			// ------------------------------
			secured.GET("/clients", clientHandler.List)
			secured.POST("/clients", clientHandler.Create)
			secured.GET("/clients/:id", clientHandler.Show)
			secured.PUT("/clients/:id", clientHandler.Update)
			secured.POST("/clients/:id", methodOverride(clientHandler.Update))
			secured.DELETE("/clients/:id", clientHandler.Delete)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/appointments", appointmentHandler.List)
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments/:id", appointmentHandler.Show)
			secured.PUT("/appointments/:id", appointmentHandler.Update)
			secured.POST("/appointments/:id", methodOverride(appointmentHandler.Update))
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)
			secured.POST("/appointments/:id/payment-link", appointmentHandler.PaymentLink)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}

// methodOverride aceita POST com _method=PUT, usado pelos forms
// multipart do painel, que não conseguem enviar PUT com arquivos.
func methodOverride(update gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.PostForm("_method") == "PUT" || c.Query("_method") == "PUT" {
			update(c)
			return
		}
		c.JSON(404, gin.H{"message": "Not found."})
	}
}

func newStorage(cfg *config.Config) storage.Storage {
	if cfg.StorageDriver == "s3" {
		return storage.NewS3Storage(storage.S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Endpoint:  cfg.S3Endpoint,
		})
	}
	return storage.NewLocalStorage(cfg.StorageDir)
}
