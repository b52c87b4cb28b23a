package repository

import (
	"context"
	"mime/multipart"

	"gorm.io/gorm"

	"github.com/estetify/clinic-admin/internal/models"
	"github.com/estetify/clinic-admin/internal/storage"
)

type ClientRepository struct {
	db    *gorm.DB
	store storage.Storage
}

func NewClientRepository(db *gorm.DB, store storage.Storage) *ClientRepository {
	return &ClientRepository{db: db, store: store}
}

var clientFilters = []FilterRule{
	{Param: "full_name", Column: "full_name"},
	{Param: "cpf", Column: "cpf", Exact: true},
	{Param: "email", Column: "email"},
	{Param: "phone", Column: "phone"},
	{Param: "status", Column: "status", Exact: true},
}

type ClientPayload struct {
	FullName      *string `json:"full_name"`
	BirthDate     *string `json:"birth_date"`
	Gender        *string `json:"gender"`
	MaritalStatus *string `json:"marital_status"`
	CPF           *string `json:"cpf"`
	RG            *string `json:"rg"`
	Profession    *string `json:"profession"`
	Nationality   *string `json:"nationality"`
	PlaceOfBirth  *string `json:"place_of_birth"`

	Phone    *string `json:"phone"`
	Landline *string `json:"landline"`
	Email    *string `json:"email"`
	Whatsapp *string `json:"whatsapp"`

	ZipCode      *string `json:"zip_code"`
	Address      *string `json:"address"`
	Number       *string `json:"number"`
	Complement   *string `json:"complement"`
	Neighborhood *string `json:"neighborhood"`
	City         *string `json:"city"`
	State        *string `json:"state"`

	Weight                  *float64 `json:"weight"`
	Height                  *float64 `json:"height"`
	ChronicDiseases         *string  `json:"chronic_diseases"`
	Allergies               *string  `json:"allergies"`
	Medications             *string  `json:"medications"`
	PreviousSurgeries       *string  `json:"previous_surgeries"`
	FamilyHistory           *string  `json:"family_history"`
	PregnantOrBreastfeeding *bool    `json:"pregnant_or_breastfeeding"`
	UsesBirthControl        *bool    `json:"uses_birth_control"`
	Lifestyle               *string  `json:"lifestyle"`
	MainComplaint           *string  `json:"main_complaint"`

	SkinType       *string `json:"skin_type"`
	HairType       *string `json:"hair_type"`
	TreatmentAreas *string `json:"treatment_areas"`
	AestheticGoals *string `json:"aesthetic_goals"`

	Notes              *string `json:"notes"`
	ConsentToTreatment *bool   `json:"consent_to_treatment"`
	AcceptsPromotions  *bool   `json:"accepts_promotions"`
	Status             *string `json:"status"`

	BeforePhoto *multipart.FileHeader `json:"-"`
}

func (r *ClientRepository) List(ctx context.Context, params ListParams) ([]models.Client, int64, error) {
	return ListPage[models.Client](ctx, r.db, clientFilters, params, "id ASC")
}

func (r *ClientRepository) FindByID(ctx context.Context, id uint) (*models.Client, error) {
	return findByID[models.Client](ctx, r.db, id)
}

func (r *ClientRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *ClientRepository) EmailInUse(ctx context.Context, email string, exceptID uint) (bool, error) {
	return r.fieldInUse(ctx, "email", email, exceptID)
}

func (r *ClientRepository) CPFInUse(ctx context.Context, cpf string, exceptID uint) (bool, error) {
	return r.fieldInUse(ctx, "cpf", cpf, exceptID)
}

func (r *ClientRepository) fieldInUse(ctx context.Context, column, value string, exceptID uint) (bool, error) {
	q := r.db.WithContext(ctx).Model(&models.Client{}).Where(column+" = ?", value)
	if exceptID > 0 {
		q = q.Where("id <> ?", exceptID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ClientRepository) Create(ctx context.Context, p ClientPayload) (*models.Client, error) {
	client := models.Client{Status: "active"}
	if err := r.applyPayload(ctx, &client, p); err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Create(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *ClientRepository) Update(ctx context.Context, id uint, p ClientPayload) (*models.Client, error) {
	client, err := r.FindByID(ctx, id)
	if err != nil || client == nil {
		return nil, err
	}

	if err := r.applyPayload(ctx, client, p); err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Save(client).Error; err != nil {
		return nil, err
	}
	return client, nil
}

// Delete remove o cliente e, em cascata, seus atendimentos.
func (r *ClientRepository) Delete(ctx context.Context, id uint) (bool, error) {
	client, err := r.FindByID(ctx, id)
	if err != nil || client == nil {
		return false, err
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("client_id = ?", id).
			Delete(&models.Appointment{}).Error; err != nil {
			return err
		}
		return tx.Delete(client).Error
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *ClientRepository) applyPayload(ctx context.Context, client *models.Client, p ClientPayload) error {
	if p.BeforePhoto != nil {
		path, err := storage.SavePhoto(ctx, r.store, "clients", p.BeforePhoto)
		if err != nil {
			return err
		}
		client.BeforePhoto = path
	}

	setStr(&client.FullName, p.FullName)
	setStr(&client.BirthDate, p.BirthDate)
	setStr(&client.Gender, p.Gender)
	setStr(&client.MaritalStatus, p.MaritalStatus)
	setStr(&client.CPF, p.CPF)
	setStr(&client.RG, p.RG)
	setStr(&client.Profession, p.Profession)
	setStr(&client.Nationality, p.Nationality)
	setStr(&client.PlaceOfBirth, p.PlaceOfBirth)
	setStr(&client.Phone, p.Phone)
	setStr(&client.Landline, p.Landline)
	setStr(&client.Email, p.Email)
	setStr(&client.Whatsapp, p.Whatsapp)
	setStr(&client.ZipCode, p.ZipCode)
	setStr(&client.Address, p.Address)
	setStr(&client.Number, p.Number)
	setStr(&client.Complement, p.Complement)
	setStr(&client.Neighborhood, p.Neighborhood)
	setStr(&client.City, p.City)
	setStr(&client.State, p.State)
	setStr(&client.ChronicDiseases, p.ChronicDiseases)
	setStr(&client.Allergies, p.Allergies)
	setStr(&client.Medications, p.Medications)
	setStr(&client.PreviousSurgeries, p.PreviousSurgeries)
	setStr(&client.FamilyHistory, p.FamilyHistory)
	setStr(&client.Lifestyle, p.Lifestyle)
	setStr(&client.MainComplaint, p.MainComplaint)
	setStr(&client.SkinType, p.SkinType)
	setStr(&client.HairType, p.HairType)
	setStr(&client.TreatmentAreas, p.TreatmentAreas)
	setStr(&client.AestheticGoals, p.AestheticGoals)
	setStr(&client.Notes, p.Notes)
	setStr(&client.Status, p.Status)

	if p.Weight != nil {
		client.Weight = p.Weight
	}
	if p.Height != nil {
		client.Height = p.Height
	}
	if p.PregnantOrBreastfeeding != nil {
		client.PregnantOrBreastfeeding = p.PregnantOrBreastfeeding
	}
	if p.UsesBirthControl != nil {
		client.UsesBirthControl = p.UsesBirthControl
	}
	if p.ConsentToTreatment != nil {
		client.ConsentToTreatment = p.ConsentToTreatment
	}
	if p.AcceptsPromotions != nil {
		client.AcceptsPromotions = *p.AcceptsPromotions
	}

	return nil
}
