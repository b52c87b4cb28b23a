package repository

import (
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	dbpkg "github.com/estetify/clinic-admin/internal/db"
	"github.com/estetify/clinic-admin/internal/models"
)

// newTestDB abre um banco sqlite descartável com o schema completo.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "clinic_test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("falha ao abrir sqlite: %v", err)
	}

	if err := dbpkg.Migrate(db); err != nil {
		t.Fatalf("falha ao migrar schema: %v", err)
	}
	return db
}

func seedProfile(t *testing.T, db *gorm.DB, name string, active bool) models.Profile {
	t.Helper()

	profile := models.Profile{Name: name, Active: active}
	if err := db.Create(&profile).Error; err != nil {
		t.Fatalf("falha ao criar perfil: %v", err)
	}
	return profile
}

func seedUser(t *testing.T, db *gorm.DB, name, email, cpf string, profileID uint) models.User {
	t.Helper()

	user := models.User{
		Name:      name,
		Email:     email,
		CPF:       cpf,
		Password:  "hash",
		ProfileID: profileID,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("falha ao criar usuário: %v", err)
	}
	return user
}

func seedClient(t *testing.T, db *gorm.DB, fullName, cpf, email, status string) models.Client {
	t.Helper()

	client := models.Client{
		FullName: fullName,
		CPF:      cpf,
		Email:    email,
		Status:   status,
	}
	if err := db.Create(&client).Error; err != nil {
		t.Fatalf("falha ao criar cliente: %v", err)
	}
	return client
}

func seedAppointment(t *testing.T, db *gorm.DB, clientID, userID uint, date, hour, status string) models.Appointment {
	t.Helper()

	appointment := models.Appointment{
		ClientID:  clientID,
		UserID:    userID,
		Date:      date,
		Time:      hour,
		Procedure: "Limpeza de pele",
		Status:    status,
	}
	if err := db.Create(&appointment).Error; err != nil {
		t.Fatalf("falha ao criar atendimento: %v", err)
	}
	return appointment
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func uintPtr(u uint) *uint { return &u }

func floatPtr(f float64) *float64 { return &f }
