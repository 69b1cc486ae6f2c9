package services

import (
	"context"
	"time"

	"hikebook/models"

	"github.com/goccy/go-json"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	DemoUserEmail    = "demo@hikebook.com"
	DemoUserPassword = "demo123"
)

func facilities(items ...string) datatypes.JSON {
	b, _ := json.Marshal(items)
	return datatypes.JSON(b)
}

func seedPackages() []models.HikingPackage {
	return []models.HikingPackage{
		{Name: "Jalur A - Rute Klasik", Price: 120000, Duration: "2 Hari 1 Malam", Difficulty: "Mudah", Distance: "5 km",
			Description: "Rute pendakian klasik yang cocok untuk pemula dengan pemandangan yang menakjubkan"},
		{Name: "Jalur B - Petualangan Menantang", Price: 150000, Duration: "3 Hari 2 Malam", Difficulty: "Sedang", Distance: "8 km",
			Description: "Jalur menantang dengan medan yang beragam dan pemandangan spektakuler"},
		{Name: "Jalur C - Ekspedisi Puncak", Price: 200000, Duration: "4 Hari 3 Malam", Difficulty: "Sulit", Distance: "12 km",
			Description: "Ekspedisi menuju puncak tertinggi dengan pemandangan luar biasa"},
		{Name: "Jalur D - Sunrise Track", Price: 100000, Duration: "1 Hari", Difficulty: "Mudah", Distance: "3 km",
			Description: "Jalur cepat menuju spot sunrise terbaik, cocok untuk pendakian sehari"},
	}
}

func seedBasecamps() []models.Basecamp {
	return []models.Basecamp{
		{Name: "Basecamp Pos 1", Price: 20000, Capacity: 50, Location: "Ketinggian 1.500 mdpl",
			Facilities:  facilities("Toilet", "Mushola", "Area Camping", "Warung Makan", "Air Bersih"),
			Description: "Basecamp pertama yang cocok untuk aklimatisasi. Memiliki fasilitas lengkap dan pemandangan yang indah."},
		{Name: "Basecamp Pos 2", Price: 25000, Capacity: 30, Location: "Ketinggian 2.000 mdpl",
			Facilities:  facilities("Toilet", "Area Camping", "Shelter", "Air Bersih"),
			Description: "Basecamp menengah dengan fasilitas memadai. Spot yang bagus untuk istirahat sebelum melanjutkan pendakian."},
		{Name: "Basecamp Pos 3", Price: 30000, Capacity: 20, Location: "Ketinggian 2.500 mdpl",
			Facilities:  facilities("Shelter", "Area Camping", "Air Terbatas"),
			Description: "Basecamp terakhir sebelum puncak. Fasilitas terbatas namun pemandangan bintang sangat menakjubkan."},
		{Name: "Basecamp Alternatif", Price: 22000, Capacity: 40, Location: "Ketinggian 1.800 mdpl",
			Facilities:  facilities("Toilet", "Mushola", "Area Camping", "Air Bersih", "Tempat Parkir"),
			Description: "Basecamp alternatif dengan akses yang lebih mudah. Cocok untuk pendaki yang membutuhkan jalur berbeda."},
	}
}

// Seed nạp dữ liệu mẫu. reset=false chỉ nạp khi bảng paket đang trống;
// reset=true xóa toàn bộ dữ liệu cũ trước.
func (s *CatalogService) Seed(ctx context.Context, reset bool) error {
	db := s.db.WithContext(ctx)

	if !reset {
		var count int64
		if err := db.Model(&models.HikingPackage{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			s.log.Info("Bỏ qua seed, đã có %d paket", count)
			return nil
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(DemoUserPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if reset {
			for _, model := range []interface{}{&models.Booking{}, &models.HikingPackage{}, &models.Basecamp{}, &models.User{}} {
				if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
					return err
				}
			}
		}

		// tạo lần lượt để created_at giữ đúng thứ tự hiển thị
		base := time.Now()
		packages := seedPackages()
		for i := range packages {
			packages[i].CreatedAt = base.Add(time.Duration(i) * time.Second)
			if err := tx.Create(&packages[i]).Error; err != nil {
				return err
			}
		}

		basecamps := seedBasecamps()
		if err := tx.Create(&basecamps).Error; err != nil {
			return err
		}

		phone := "081234567890"
		demo := &models.User{Name: "Demo User", Email: DemoUserEmail, Phone: &phone, Password: string(hashed)}
		return tx.Where(models.User{Email: DemoUserEmail}).FirstOrCreate(demo).Error
	})
	if err != nil {
		s.log.Error("Seed thất bại: %v", err)
		return err
	}

	s.InvalidateCache(ctx)
	s.log.Info("Seed xong: %d paket, %d basecamp", len(seedPackages()), len(seedBasecamps()))
	return nil
}
