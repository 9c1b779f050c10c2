// services/user_service.go
package services

import (
	"errors"
	"fmt"
	"net/mail"
	"regexp"
	"strings"

	"sangamstay/models"

	mysqldriver "github.com/go-sql-driver/mysql"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var phoneRe = regexp.MustCompile(`^[0-9]{10}$`)

// ErrEmailTaken is returned when registration hits the unique email index.
var ErrEmailTaken = errors.New("email_taken")

// ErrBadCredentials covers both unknown email and wrong password so the two
// are indistinguishable to the caller.
var ErrBadCredentials = errors.New("bad_credentials")

type RegisterInput struct {
	Username string
	Email    string
	Phone    string
	Password string
}

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

// Register creates a user with the user role. Admins are only ever seeded.
func (s *UserService) Register(input RegisterInput) (*models.User, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	phone := strings.TrimSpace(input.Phone)

	if username == "" || input.Password == "" {
		return nil, ErrInvalidInput
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, ErrInvalidInput
	}
	if !phoneRe.MatchString(phone) {
		return nil, ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Username:     username,
		Email:        email,
		Phone:        phone,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		var mysqlErr *mysqldriver.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return nil, ErrEmailTaken
		}
		lc := strings.ToLower(err.Error())
		if strings.Contains(lc, "duplicate") || strings.Contains(lc, "unique") {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

// Authenticate checks email + password and returns the user on success.
func (s *UserService) Authenticate(email, password string) (*models.User, error) {
	var user models.User
	err := s.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBadCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrBadCredentials
	}
	return &user, nil
}

// ByID loads a user.
func (s *UserService) ByID(userID uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}
	return &user, nil
}

// Profile loads a user together with their bookings and the booked hotels.
func (s *UserService) Profile(userID uint) (*models.User, error) {
	var user models.User
	if err := s.DB.
		Preload("Bookings", func(db *gorm.DB) *gorm.DB { return db.Order("created_at DESC") }).
		Preload("Bookings.Hotel").
		First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to retrieve profile: %w", err)
	}
	return &user, nil
}

// All lists users for the admin view.
func (s *UserService) All() ([]models.User, error) {
	var list []models.User
	if err := s.DB.Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve users: %w", err)
	}
	return list, nil
}
