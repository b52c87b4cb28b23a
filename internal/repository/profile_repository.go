package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/estetify/clinic-admin/internal/models"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

var profileFilters = []FilterRule{
	{Param: "name", Column: "name"},
}

type ProfilePayload struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Active      *bool   `json:"active"`
}

func (r *ProfileRepository) List(ctx context.Context, params ListParams) ([]models.Profile, int64, error) {
	return ListPage[models.Profile](ctx, r.db, profileFilters, params, "id ASC")
}

// Combo lista apenas perfis ativos, ordenados por nome, para preencher
// o seletor de perfil do cadastro de usuário.
func (r *ProfileRepository) Combo(ctx context.Context) ([]models.Profile, error) {
	var profiles []models.Profile
	err := r.db.WithContext(ctx).
		Select("id", "name").
		Where("active = ?", true).
		Order("name ASC").
		Find(&profiles).Error
	return profiles, err
}

func (r *ProfileRepository) FindByID(ctx context.Context, id uint) (*models.Profile, error) {
	return findByID[models.Profile](ctx, r.db, id)
}

func (r *ProfileRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Profile{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *ProfileRepository) Create(ctx context.Context, p ProfilePayload) (*models.Profile, error) {
	profile := models.Profile{Active: true}
	applyProfilePayload(&profile, p)

	if err := r.db.WithContext(ctx).Create(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepository) Update(ctx context.Context, id uint, p ProfilePayload) (*models.Profile, error) {
	profile, err := r.FindByID(ctx, id)
	if err != nil || profile == nil {
		return nil, err
	}

	applyProfilePayload(profile, p)

	if err := r.db.WithContext(ctx).Save(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

func (r *ProfileRepository) Delete(ctx context.Context, id uint) (bool, error) {
	profile, err := r.FindByID(ctx, id)
	if err != nil || profile == nil {
		return false, err
	}

	if err := r.db.WithContext(ctx).Delete(profile).Error; err != nil {
		return false, err
	}
	return true, nil
}

func applyProfilePayload(profile *models.Profile, p ProfilePayload) {
	if p.Name != nil {
		profile.Name = *p.Name
	}
	if p.Description != nil {
		profile.Description = *p.Description
	}
	if p.Active != nil {
		profile.Active = *p.Active
	}
}
