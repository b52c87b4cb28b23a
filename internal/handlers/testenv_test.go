package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/estetify/clinic-admin/internal/audit"
	"github.com/estetify/clinic-admin/internal/auth"
	"github.com/estetify/clinic-admin/internal/config"
	dbpkg "github.com/estetify/clinic-admin/internal/db"
	"github.com/estetify/clinic-admin/internal/middleware"
	"github.com/estetify/clinic-admin/internal/models"
	"github.com/estetify/clinic-admin/internal/repository"
)

// memoryTokenStore substitui o Redis nos testes de handler.
type memoryTokenStore struct {
	mu     sync.Mutex
	tokens map[uint]map[string]bool
}

func newMemoryTokenStore() *memoryTokenStore {
	return &memoryTokenStore{tokens: map[uint]map[string]bool{}}
}

func (s *memoryTokenStore) Save(_ context.Context, userID uint, jti string, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tokens[userID] == nil {
		s.tokens[userID] = map[string]bool{}
	}
	s.tokens[userID][jti] = true
	return nil
}

func (s *memoryTokenStore) Exists(_ context.Context, userID uint, jti string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tokens[userID][jti], nil
}

func (s *memoryTokenStore) RevokeAll(_ context.Context, userID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, userID)
	return nil
}

var _ auth.TokenStore = (*memoryTokenStore)(nil)

type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
	store  *memoryTokenStore
	cfg    *config.Config
}

// newTestEnv monta a API completa sobre sqlite, sem Redis nem S3.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)

	// busy_timeout evita lock do sqlite com o worker de auditoria
	path := filepath.Join(t.TempDir(), "clinic_test.db") + "?_busy_timeout=5000"
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("falha ao abrir sqlite: %v", err)
	}
	if err := dbpkg.Migrate(db); err != nil {
		t.Fatalf("falha ao migrar schema: %v", err)
	}

	cfg := &config.Config{
		JWTSecret:           "test-secret",
		AppURL:              "http://localhost:8080",
		DefaultUserPassword: "123456",
	}
	store := newMemoryTokenStore()
	dispatcher := audit.NewDispatcher(audit.New(db))

	profileRepo := repository.NewProfileRepository(db)
	userRepo := repository.NewUserRepository(db, nil)
	clientRepo := repository.NewClientRepository(db, nil)
	appointmentRepo := repository.NewAppointmentRepository(db, nil)

	authHandler := NewAuthHandler(userRepo, store, cfg)
	profileHandler := NewProfileHandler(profileRepo, dispatcher)
	userHandler := NewUserHandler(userRepo, profileRepo, dispatcher, cfg)
	clientHandler := NewClientHandler(clientRepo, dispatcher, cfg)
	appointmentHandler := NewAppointmentHandler(appointmentRepo, clientRepo, userRepo, nil, dispatcher, cfg)

	r := gin.New()
	api := r.Group("/api")
	api.POST("/login", authHandler.Login)

	secured := api.Group("/")
	secured.Use(middleware.AuthMiddleware(cfg, store))
	{
		secured.POST("/logout", authHandler.Logout)
		secured.GET("/user", authHandler.Me)

		secured.GET("/profiles", profileHandler.List)
		secured.GET("/profiles/combo", profileHandler.Combo)
		secured.POST("/profiles", profileHandler.Create)
		secured.GET("/profiles/:id", profileHandler.Show)
		secured.PUT("/profiles/:id", profileHandler.Update)
		secured.DELETE("/profiles/:id", profileHandler.Delete)

		secured.GET("/users", userHandler.List)
		secured.POST("/users", userHandler.Create)
		secured.GET("/users/:id", userHandler.Show)
		secured.PUT("/users/:id", userHandler.Update)
		secured.DELETE("/users/:id", userHandler.Delete)

		secured.GET("/clients", clientHandler.List)
		secured.POST("/clients", clientHandler.Create)
		secured.GET("/clients/:id", clientHandler.Show)
		secured.PUT("/clients/:id", clientHandler.Update)
		secured.DELETE("/clients/:id", clientHandler.Delete)

		secured.GET("/appointments", appointmentHandler.List)
		secured.POST("/appointments", appointmentHandler.Create)
		secured.GET("/appointments/:id", appointmentHandler.Show)
		secured.PUT("/appointments/:id", appointmentHandler.Update)
		secured.DELETE("/appointments/:id", appointmentHandler.Delete)
		secured.POST("/appointments/:id/payment-link", appointmentHandler.PaymentLink)
	}

	return &testEnv{router: r, db: db, store: store, cfg: cfg}
}

// seedLogin cria um usuário com perfil e devolve um token válido.
func (env *testEnv) seedLogin(t *testing.T) (models.User, string) {
	t.Helper()

	profile := models.Profile{Name: "Administrador", Active: true}
	if err := env.db.Create(&profile).Error; err != nil {
		t.Fatalf("falha ao criar perfil: %v", err)
	}

	userRepo := repository.NewUserRepository(env.db, nil)
	name := "Admin Teste"
	email := "admin@example.com"
	cpf := "52998224725"
	password := "segredo123"
	profileID := profile.ID

	user, err := userRepo.Create(context.Background(), repository.UserPayload{
		Name:      &name,
		Email:     &email,
		CPF:       &cpf,
		Password:  &password,
		ProfileID: &profileID,
	})
	if err != nil {
		t.Fatalf("falha ao criar usuário: %v", err)
	}

	token, jti, err := auth.GenerateToken(user.ID, env.cfg.JWTSecret)
	if err != nil {
		t.Fatalf("falha ao gerar token: %v", err)
	}
	if err := env.store.Save(context.Background(), user.ID, jti, auth.TokenTTL); err != nil {
		t.Fatalf("falha ao registrar token: %v", err)
	}

	return *user, token
}

func (env *testEnv) request(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("falha ao serializar corpo: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("resposta não é JSON válido: %v (%s)", err, w.Body.String())
	}
	return body
}
