package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/energeist/dockerized-climbunity/models"
	"github.com/energeist/dockerized-climbunity/utils"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

type RegisterRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address   string `json:"address"`
	HasGear   bool   `json:"has_gear"`
	StyleIDs  []uint `json:"style_ids"`
}

// Register creates a new user account. Username and email are pre-checked
// for uniqueness before the insert; the unique indexes remain the backstop
// for concurrent signups.
func (s *UserService) Register(req RegisterRequest) (*models.User, error) {
	if req.Username == "" {
		return nil, &ValidationError{Field: "username", Message: "username is required"}
	}
	if len(req.Password) < 8 {
		return nil, &ValidationError{Field: "password", Message: "password must be at least 8 characters"}
	}
	if req.Email == "" {
		return nil, &ValidationError{Field: "email", Message: "email is required"}
	}
	if req.FirstName == "" {
		return nil, &ValidationError{Field: "first_name", Message: "first name is required"}
	}
	if req.Address == "" {
		return nil, &ValidationError{Field: "address", Message: "address is required"}
	}

	var existing models.User
	if err := s.db.Where("username = ?", req.Username).First(&existing).Error; err == nil {
		return nil, &ValidationError{Field: "username", Message: "that username is taken"}
	}
	if err := s.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return nil, &ValidationError{Field: "email", Message: "that email address is already associated with an account"}
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:  req.Username,
		Password:  hashed,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Address:   req.Address,
		HasGear:   req.HasGear,
		IsAdmin:   false,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return &IntegrityError{Err: err}
		}
		if len(req.StyleIDs) > 0 {
			styles, err := findStyles(tx, req.StyleIDs)
			if err != nil {
				return err
			}
			if err := tx.Model(&user).Association("Styles").Replace(styles); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Authenticate verifies a username/password pair. Unknown usernames and
// wrong passwords fail with distinct errors so callers can tell the cases
// apart.
func (s *UserService) Authenticate(username, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "user"}
		}
		return nil, err
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, &InvalidCredentialsError{}
	}
	return &user, nil
}

func (s *UserService) GetUser(id uint) (*models.User, error) {
	var user models.User
	err := s.db.Preload("Styles").
		Preload("Projects").
		Preload("Appointments").
		First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "user", ID: id}
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserService) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("username").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

type ProfileUpdateRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address   string `json:"address"`
	HasGear   bool   `json:"has_gear"`
	StyleIDs  []uint `json:"style_ids"`
}

// UpdateProfile replaces the editable profile fields and the full style
// preference set.
func (s *UserService) UpdateProfile(id uint, req ProfileUpdateRequest) (*models.User, error) {
	if req.FirstName == "" {
		return nil, &ValidationError{Field: "first_name", Message: "first name is required"}
	}
	if req.Address == "" {
		return nil, &ValidationError{Field: "address", Message: "address is required"}
	}

	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "user", ID: id}
		}
		return nil, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		user.FirstName = req.FirstName
		user.LastName = req.LastName
		user.Address = req.Address
		user.HasGear = req.HasGear
		if err := tx.Save(&user).Error; err != nil {
			return err
		}
		styles, err := findStyles(tx, req.StyleIDs)
		if err != nil {
			return err
		}
		return tx.Model(&user).Association("Styles").Replace(styles)
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func findStyles(tx *gorm.DB, ids []uint) ([]models.Style, error) {
	if len(ids) == 0 {
		return []models.Style{}, nil
	}
	var styles []models.Style
	if err := tx.Find(&styles, ids).Error; err != nil {
		return nil, err
	}
	if len(styles) != len(ids) {
		return nil, &ValidationError{Field: "style_ids", Message: "unknown style selected"}
	}
	return styles, nil
}
