package services

import (
	"errors"

	"findly/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

// UserInput carries the fields a signup or profile-update form submits.
// Points is a pointer so a form that doesn't carry the field (the profile
// edit page) leaves the stored gameplay points alone.
type UserInput struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Password string `json:"pass" form:"pass"`
	Points   *int64 `json:"points" form:"points"`
	Rewards  string `json:"rewards" form:"rewards"`
}

func (s *UserService) GetAll() ([]models.User, error) {
	var users []models.User
	if err := s.DB.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// GetByID returns (nil, nil) when no user exists with the given id.
func (s *UserService) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// FindByName looks a user up by their unique name. (nil, nil) when absent.
func (s *UserService) FindByName(name string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("name = ?", name).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserService) Create(in UserInput) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: string(hash),
	}
	if in.Points != nil {
		user.Points = *in.Points
	}
	if in.Rewards != "" {
		user.Rewards = in.Rewards
	}
	if err := s.DB.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Update writes the submitted fields and reports false when nothing was
// written — either the user is gone or the row was untouched. Callers that
// need to tell those apart do their own existence fetch first.
func (s *UserService) Update(id uint, in UserInput) (bool, error) {
	values := map[string]interface{}{
		"name":  in.Name,
		"email": in.Email,
	}
	if in.Points != nil {
		values["points"] = *in.Points
	}
	if in.Rewards != "" {
		values["rewards"] = in.Rewards
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return false, err
		}
		values["password"] = string(hash)
	}

	res := s.DB.Model(&models.User{}).Where("id = ?", id).Updates(values)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *UserService) Delete(id uint) (bool, error) {
	res := s.DB.Delete(&models.User{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// CheckLogin verifies credentials and returns the stored user on success.
// (nil, nil) means unknown name or wrong password — the caller cannot tell
// which, on purpose.
func (s *UserService) CheckLogin(name, password string) (*models.User, error) {
	user, err := s.FindByName(name)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, nil
	}
	return user, nil
}
