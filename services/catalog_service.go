package services

import (
	"context"
	stderrors "errors"
	"time"

	"hikebook/errors"
	"hikebook/models"
	"hikebook/services/logger"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	packagesCacheKey  = "catalog:packages"
	basecampsCacheKey = "catalog:basecamps"
	catalogCacheTTL   = 10 * time.Minute
)

// CatalogService đọc paket pendakian và basecamp. rdb có thể nil,
// khi đó không dùng cache.
type CatalogService struct {
	db  *gorm.DB
	rdb *redis.Client
	log logger.Logger
}

func NewCatalogService(db *gorm.DB, rdb *redis.Client, log logger.Logger) *CatalogService {
	return &CatalogService{db: db, rdb: rdb, log: log}
}

func (s *CatalogService) readCache(ctx context.Context, key string, target interface{}) bool {
	if s.rdb == nil {
		return false
	}
	found, err := GetFromRedis(ctx, s.rdb, key, target)
	if err != nil {
		s.log.Debug("Đọc cache %s lỗi: %v", key, err)
		return false
	}
	return found
}

func (s *CatalogService) writeCache(ctx context.Context, key string, value interface{}) {
	if s.rdb == nil {
		return
	}
	if err := SetToRedis(ctx, s.rdb, key, value, catalogCacheTTL); err != nil {
		s.log.Debug("Ghi cache %s lỗi: %v", key, err)
	}
}

// InvalidateCache xóa cache catalog sau khi seed
func (s *CatalogService) InvalidateCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := DeleteFromRedis(ctx, s.rdb, packagesCacheKey, basecampsCacheKey); err != nil {
		s.log.Debug("Xóa cache catalog lỗi: %v", err)
	}
}

// ListPackages trả về các paket theo thứ tự tạo
func (s *CatalogService) ListPackages(ctx context.Context) ([]models.HikingPackage, error) {
	var packages []models.HikingPackage
	if s.readCache(ctx, packagesCacheKey, &packages) {
		return packages, nil
	}

	if err := s.db.WithContext(ctx).Order("created_at ASC, name ASC").Find(&packages).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn paket", err)
	}
	s.writeCache(ctx, packagesCacheKey, packages)
	return packages, nil
}

func (s *CatalogService) GetPackage(ctx context.Context, id string) (*models.HikingPackage, error) {
	var pkg models.HikingPackage
	err := s.db.WithContext(ctx).First(&pkg, "id = ?", id).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.NewAppError(errors.ErrCodeNotFound, "Paket tidak ditemukan", errors.ErrPackageNotFound)
	}
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn paket", err)
	}
	return &pkg, nil
}

// ListBasecamps trả về basecamp theo giá tăng dần
func (s *CatalogService) ListBasecamps(ctx context.Context) ([]models.Basecamp, error) {
	var basecamps []models.Basecamp
	if s.readCache(ctx, basecampsCacheKey, &basecamps) {
		return basecamps, nil
	}

	if err := s.db.WithContext(ctx).Order("price ASC, name ASC").Find(&basecamps).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn basecamp", err)
	}
	s.writeCache(ctx, basecampsCacheKey, basecamps)
	return basecamps, nil
}

func (s *CatalogService) GetBasecamp(ctx context.Context, id string) (*models.Basecamp, error) {
	var basecamp models.Basecamp
	err := s.db.WithContext(ctx).First(&basecamp, "id = ?", id).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.NewAppError(errors.ErrCodeNotFound, "Basecamp tidak ditemukan", errors.ErrBasecampNotFound)
	}
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn basecamp", err)
	}
	return &basecamp, nil
}
