package core

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/common"
	"github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/models"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

func userLogger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryAuth),
	)
}

func (b *BreathSafe) registerUser(email, name, password string, isAdmin bool) (*models.User, error) {
	logger := userLogger()

	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		IsAdmin:      isAdmin,
	}
	if err := b.Db.Conn.Create(&user).Error; err != nil {
		return nil, err
	}

	logger.Info("User registered", zap.String("email", email), zap.Bool("is_admin", isAdmin))
	return &user, nil
}

func (b *BreathSafe) authenticateUser(email, password string) (*models.User, error) {
	var user models.User
	if err := b.Db.Conn.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

func (b *BreathSafe) getUser(id uint) (*models.User, error) {
	var user models.User
	if err := b.Db.Conn.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

type IUsersImpl struct {
	core *BreathSafe
}

func (iu *IUsersImpl) Register(email, name, password string, isAdmin bool) (*models.User, error) {
	return iu.core.registerUser(email, name, password, isAdmin)
}

func (iu *IUsersImpl) Authenticate(email, password string) (*models.User, error) {
	return iu.core.authenticateUser(email, password)
}

func (iu *IUsersImpl) Get(id uint) (*models.User, error) {
	return iu.core.getUser(id)
}

func (b *BreathSafe) GetIUsers() IUsers {
	return &IUsersImpl{core: b}
}
