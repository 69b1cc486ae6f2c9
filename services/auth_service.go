package services

import (
	"context"
	stderrors "errors"
	"strings"

	"hikebook/dto"
	"hikebook/errors"
	"hikebook/models"
	"hikebook/services/logger"
	"hikebook/validator"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService xác thực thông tin đăng nhập, dùng chung cho HTML và API
type AuthService struct {
	db  *gorm.DB
	log logger.Logger
}

func NewAuthService(db *gorm.DB, log logger.Logger) *AuthService {
	return &AuthService{db: db, log: log}
}

func (s *AuthService) findByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("lower(email) = ?", strings.ToLower(email)).First(&user).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn user", err)
	}
	return &user, nil
}

// Register tạo tài khoản mới. requireConfirmation bật với form HTML.
func (s *AuthService) Register(ctx context.Context, in dto.RegisterInput, requireConfirmation bool) (*models.User, error) {
	if err := validator.ValidateRegistration(&in, requireConfirmation); err != nil {
		return nil, err
	}

	existing, err := s.findByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewAppError(errors.ErrCodeUserExists, "Email sudah terdaftar", errors.ErrUserAlreadyExists)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể mã hóa mật khẩu", err)
	}

	user := &models.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: string(hashed),
	}
	if phone := strings.TrimSpace(in.Phone); phone != "" {
		user.Phone = &phone
	}

	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errors.NewAppError(errors.ErrCodeUserExists, "Email sudah terdaftar", errors.ErrUserAlreadyExists)
		}
		s.log.Error("Tạo user thất bại: %v", err)
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể tạo user", err)
	}

	s.log.Info("Đăng ký user mới: %s", user.Email)
	return user, nil
}

// Authenticate kiểm tra email và mật khẩu, mọi sai lệch đều trả về cùng một lỗi
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	invalid := errors.NewAppError(errors.ErrCodeInvalidCredentials, "Email atau password salah", errors.ErrInvalidCredentials)

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, invalid
	}

	user, err := s.findByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, invalid
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, invalid
	}
	return user, nil
}

// GetProfile lấy user kèm danh sách booking mới nhất trước
func (s *AuthService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).
		Preload("Bookings", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		First(&user, "id = ?", userID).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.NewAppError(errors.ErrCodeUserNotFound, "User tidak ditemukan", errors.ErrUserNotFound)
	}
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn user", err)
	}
	return &user, nil
}
