package repository

import (
	"context"
	"mime/multipart"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/estetify/clinic-admin/internal/models"
	"github.com/estetify/clinic-admin/internal/storage"
)

type UserRepository struct {
	db    *gorm.DB
	store storage.Storage
}

func NewUserRepository(db *gorm.DB, store storage.Storage) *UserRepository {
	return &UserRepository{db: db, store: store}
}

var userFilters = []FilterRule{
	{Param: "name", Column: "name"},
	{Param: "email", Column: "email"},
	{Param: "cpf", Column: "cpf", Exact: true},
	{Param: "phone", Column: "phone"},
}

type UserPayload struct {
	Name          *string `json:"name"`
	Email         *string `json:"email"`
	CPF           *string `json:"cpf"`
	RG            *string `json:"rg"`
	BirthDate     *string `json:"birth_date"`
	Gender        *string `json:"gender"`
	MaritalStatus *string `json:"marital_status"`
	Phone         *string `json:"phone"`

	AddressStreet       *string `json:"address_street"`
	AddressNumber       *string `json:"address_number"`
	AddressComplement   *string `json:"address_complement"`
	AddressNeighborhood *string `json:"address_neighborhood"`
	AddressCity         *string `json:"address_city"`
	AddressState        *string `json:"address_state"`
	AddressZipCode      *string `json:"address_zip_code"`

	Password  *string `json:"password"`
	ProfileID *uint   `json:"profile_id"`

	// Upload multipart; quando presente, é gravado no storage antes da linha
	Photo *multipart.FileHeader `json:"-"`
}

func (r *UserRepository) List(ctx context.Context, params ListParams) ([]models.User, int64, error) {
	return ListPage[models.User](ctx, r.db, userFilters, params, "id ASC", "Profile")
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	return findByID[models.User](ctx, r.db, id, "Profile")
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// EmailInUse / CPFInUse excluem a própria linha no update (exceptID > 0).
func (r *UserRepository) EmailInUse(ctx context.Context, email string, exceptID uint) (bool, error) {
	return r.fieldInUse(ctx, "email", NormalizeEmail(email), exceptID)
}

func (r *UserRepository) CPFInUse(ctx context.Context, cpf string, exceptID uint) (bool, error) {
	return r.fieldInUse(ctx, "cpf", cpf, exceptID)
}

func (r *UserRepository) fieldInUse(ctx context.Context, column, value string, exceptID uint) (bool, error) {
	q := r.db.WithContext(ctx).Model(&models.User{}).Where(column+" = ?", value)
	if exceptID > 0 {
		q = q.Where("id <> ?", exceptID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) Create(ctx context.Context, p UserPayload) (*models.User, error) {
	var user models.User
	if err := r.applyPayload(ctx, &user, p); err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}
	return r.FindByID(ctx, user.ID)
}

func (r *UserRepository) Update(ctx context.Context, id uint, p UserPayload) (*models.User, error) {
	user, err := findByID[models.User](ctx, r.db, id)
	if err != nil || user == nil {
		return nil, err
	}

	if err := r.applyPayload(ctx, user, p); err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return nil, err
	}
	return r.FindByID(ctx, user.ID)
}

// Delete remove o usuário e, em cascata, seus atendimentos.
func (r *UserRepository) Delete(ctx context.Context, id uint) (bool, error) {
	user, err := findByID[models.User](ctx, r.db, id)
	if err != nil || user == nil {
		return false, err
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).
			Delete(&models.Appointment{}).Error; err != nil {
			return err
		}
		return tx.Delete(user).Error
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *UserRepository) applyPayload(ctx context.Context, user *models.User, p UserPayload) error {
	if p.Photo != nil {
		path, err := storage.SavePhoto(ctx, r.store, "users", p.Photo)
		if err != nil {
			return err
		}
		user.Photo = path
	}

	// a senha só é rehasheada quando informada
	if p.Password != nil && *p.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*p.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user.Password = string(hashed)
	}

	setStr(&user.Name, p.Name)

	// e-mail sempre minúsculo para casar com a comparação exata do login
	if p.Email != nil {
		user.Email = NormalizeEmail(*p.Email)
	}
	setStr(&user.CPF, p.CPF)
	setStr(&user.RG, p.RG)
	setStr(&user.BirthDate, p.BirthDate)
	setStr(&user.Gender, p.Gender)
	setStr(&user.MaritalStatus, p.MaritalStatus)
	setStr(&user.Phone, p.Phone)
	setStr(&user.AddressStreet, p.AddressStreet)
	setStr(&user.AddressNumber, p.AddressNumber)
	setStr(&user.AddressComplement, p.AddressComplement)
	setStr(&user.AddressNeighborhood, p.AddressNeighborhood)
	setStr(&user.AddressCity, p.AddressCity)
	setStr(&user.AddressState, p.AddressState)
	setStr(&user.AddressZipCode, p.AddressZipCode)

	if p.ProfileID != nil {
		user.ProfileID = *p.ProfileID
		user.Profile = nil
	}

	return nil
}

func setStr(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// NormalizeEmail deixa o e-mail na forma canônica usada na coluna.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
