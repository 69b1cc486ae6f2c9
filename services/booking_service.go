package services

import (
	"context"
	"crypto/rand"
	stderrors "errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"hikebook/builders"
	"hikebook/commands"
	"hikebook/dto"
	"hikebook/errors"
	"hikebook/metrics"
	"hikebook/models"
	"hikebook/services/logger"
	"hikebook/utils"
	"hikebook/validator"

	"github.com/goccy/go-json"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	ChannelWizard = "wizard"
	ChannelAPI    = "api"
)

// BookingService gom các thao tác ghi/đọc booking cho cả trang HTML và API
type BookingService struct {
	db      *gorm.DB
	catalog *CatalogService
	log     logger.Logger
	now     func() time.Time
}

func NewBookingService(db *gorm.DB, catalog *CatalogService, log logger.Logger) *BookingService {
	return &BookingService{
		db:      db,
		catalog: catalog,
		log:     log,
		now:     time.Now,
	}
}

// NewBookingNumber tạo mã dạng BK<unix millis><3 chữ số ngẫu nhiên>
func NewBookingNumber(now time.Time) string {
	n, err := rand.Int(rand.Reader, big.NewInt(1000))
	if err != nil {
		n = big.NewInt(now.UnixNano() % 1000)
	}
	return fmt.Sprintf("BK%d%03d", now.UnixMilli(), n.Int64())
}

func bookingNotFound(message string) error {
	return errors.NewAppError(errors.ErrCodeNotFound, message, errors.ErrBookingNotFound)
}

func (s *BookingService) persist(ctx context.Context, booking *models.Booking, channel string) error {
	if err := commands.NewCreateBookingCommand(booking, s.db).Execute(ctx); err != nil {
		s.log.Error("Tạo booking thất bại (%s): %v", channel, err)
		return errors.NewAppError(errors.ErrCodeDBError, "Không thể tạo booking", err)
	}
	metrics.IncBookingCreated(channel)
	s.log.Info("Tạo booking %s (%s)", booking.BookingNumber, channel)
	return nil
}

func (s *BookingService) withOfferings(db *gorm.DB) *gorm.DB {
	return db.Preload("HikingPackage").Preload("Basecamp")
}

// CreateFromDraft lưu booking từ draft đã checkout. Đơn giá đọc lại từ paket.
func (s *BookingService) CreateFromDraft(ctx context.Context, draft *models.BookingDraft, owner *models.SessionUser) (*models.Booking, error) {
	if draft == nil || draft.Step != models.DraftCheckout {
		return nil, errors.NewAppError(errors.ErrCodeDraftStep, "Draft chưa tới bước thanh toán", nil)
	}

	pkg, err := s.catalog.GetPackage(ctx, draft.PackageID)
	if err != nil {
		return nil, err
	}

	hikingDate, err := utils.ParseDate(draft.HikingDate)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "Format tanggal tidak valid", err)
	}

	total, err := validator.LineTotal(pkg.Price, draft.NumberOfPeople)
	if err != nil {
		return nil, err
	}

	ownerID := ""
	if owner != nil {
		ownerID = owner.ID
	}

	booking, err := builders.NewBookingBuilder().
		WithNumber(NewBookingNumber(s.now())).
		WithCustomer(draft.CustomerName, draft.CustomerEmail, draft.CustomerPhone).
		WithPackage(pkg).
		WithHikingDate(hikingDate).
		WithGroup(draft.NumberOfPeople, draft.Participants).
		WithTotalPrice(total).
		WithPaymentMethod(draft.PaymentMethod).
		WithOwner(ownerID).
		Build()
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "Format data peserta tidak valid", err)
	}

	if err := s.persist(ctx, booking, ChannelWizard); err != nil {
		return nil, err
	}
	return booking, nil
}

// Get đọc booking kèm paket, không kiểm tra chủ sở hữu
func (s *BookingService) Get(ctx context.Context, id string) (*models.Booking, error) {
	var booking models.Booking
	err := s.withOfferings(s.db.WithContext(ctx)).First(&booking, "id = ?", id).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, bookingNotFound("Booking tidak ditemukan")
	}
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn booking", err)
	}
	return &booking, nil
}

func (s *BookingService) ownerScope(db *gorm.DB, owner *models.SessionUser) *gorm.DB {
	return db.Where("user_id = ? OR lower(customer_email) = ?", owner.ID, strings.ToLower(owner.Email))
}

// ListForOwner trả về booking của tài khoản hoặc có email khách trùng, mới nhất trước
func (s *BookingService) ListForOwner(ctx context.Context, owner *models.SessionUser) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.ownerScope(s.withOfferings(s.db.WithContext(ctx)), owner).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn booking", err)
	}
	return bookings, nil
}

// GetOwned đọc booking thuộc về tài khoản đang đăng nhập
func (s *BookingService) GetOwned(ctx context.Context, id string, owner *models.SessionUser) (*models.Booking, error) {
	var booking models.Booking
	err := s.ownerScope(s.withOfferings(s.db.WithContext(ctx)), owner).
		Where("id = ?", id).
		First(&booking).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, bookingNotFound("Booking tidak ditemukan")
	}
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn booking", err)
	}
	return &booking, nil
}

func lockedError(err error) error {
	return errors.NewAppError(errors.ErrCodeBookingLocked, "Booking tidak dapat diubah pada status ini", err)
}

// UpdateFromEdit áp dụng form sửa booking. Tổng giá giữ nguyên như lúc tạo.
func (s *BookingService) UpdateFromEdit(ctx context.Context, id string, owner *models.SessionUser, form dto.EditBookingForm) (*models.Booking, error) {
	hikingDate, err := utils.ParseDate(strings.TrimSpace(form.HikingDate))
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "Format tanggal tidak valid", err)
	}
	people, err := validator.ParsePeople(form.NumberOfPeople)
	if err != nil {
		return nil, err
	}

	booking, err := s.GetOwned(ctx, id, owner)
	if err != nil {
		return nil, err
	}
	if err := models.GetBookingState(booking.BookingStatus).Edit(booking); err != nil {
		return nil, lockedError(err)
	}

	booking.HikingDate = hikingDate
	booking.NumberOfPeople = people
	booking.Notes = nil
	if notes := strings.TrimSpace(form.Notes); notes != "" {
		booking.Notes = &notes
	}

	if err := commands.NewUpdateBookingCommand(booking, s.db, "hiking_date", "number_of_people", "notes").Execute(ctx); err != nil {
		s.log.Error("Cập nhật booking %s thất bại: %v", id, err)
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể cập nhật booking", err)
	}
	return booking, nil
}

// DeleteOwned xóa hẳn booking của tài khoản
func (s *BookingService) DeleteOwned(ctx context.Context, id string, owner *models.SessionUser) (*models.Booking, error) {
	booking, err := s.GetOwned(ctx, id, owner)
	if err != nil {
		return nil, err
	}
	return booking, s.delete(ctx, booking)
}

func (s *BookingService) delete(ctx context.Context, booking *models.Booking) error {
	if err := models.GetBookingState(booking.BookingStatus).Delete(booking); err != nil {
		return lockedError(err)
	}
	if err := commands.NewDeleteBookingCommand(booking.ID, s.db).Execute(ctx); err != nil {
		if stderrors.Is(err, errors.ErrBookingNotFound) {
			return bookingNotFound("Booking tidak ditemukan")
		}
		s.log.Error("Xóa booking %s thất bại: %v", booking.ID, err)
		return errors.NewAppError(errors.ErrCodeDBError, "Không thể xóa booking", err)
	}
	s.log.Info("Xóa booking %s", booking.BookingNumber)
	return nil
}

// ListByUser trả về booking của user (API), mới nhất trước
func (s *BookingService) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	bookings := []models.Booking{}
	err := s.withOfferings(s.db.WithContext(ctx)).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn booking", err)
	}
	return bookings, nil
}

func (s *BookingService) findForUser(ctx context.Context, id, userID, notFoundMessage string) (*models.Booking, error) {
	var booking models.Booking
	err := s.withOfferings(s.db.WithContext(ctx)).
		Where("id = ? AND user_id = ?", id, userID).
		First(&booking).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, bookingNotFound(notFoundMessage)
	}
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn booking", err)
	}
	return &booking, nil
}

// GetForUser đọc một booking thuộc user
func (s *BookingService) GetForUser(ctx context.Context, id, userID string) (*models.Booking, error) {
	booking, err := s.findForUser(ctx, id, userID, "Booking tidak ditemukan")
	if err != nil {
		return nil, err
	}
	var user models.User
	if err := s.db.WithContext(ctx).Select("id", "name", "email").First(&user, "id = ?", userID).Error; err == nil {
		booking.User = &user
	}
	return booking, nil
}

func addLine(total, price int64, people int) (int64, error) {
	line, err := validator.LineTotal(price, people)
	if err != nil {
		return 0, err
	}
	return validator.AddTotal(total, line)
}

// CreateForUser tạo booking qua API. Tổng giá = tổng đơn giá paket và basecamp × số người.
func (s *BookingService) CreateForUser(ctx context.Context, claims *TokenClaims, req dto.CreateBookingRequest) (*models.Booking, error) {
	if err := validator.ValidateCreateBooking(&req); err != nil {
		return nil, err
	}
	hikingDate, _ := utils.ParseDate(req.HikingDate)
	people := int(req.NumberOfPeople)

	participants, err := ParseParticipants(req.Participants)
	if err != nil {
		return nil, err
	}

	var (
		pkg      *models.HikingPackage
		basecamp *models.Basecamp
		total    int64
	)
	if id := strings.TrimSpace(req.HikingPackageID); id != "" {
		if p, err := s.catalog.GetPackage(ctx, id); err == nil {
			pkg = p
			if total, err = addLine(total, p.Price, people); err != nil {
				return nil, err
			}
		} else if !errors.HasCode(err, errors.ErrCodeNotFound) {
			return nil, err
		}
	}
	if id := strings.TrimSpace(req.BasecampID); id != "" {
		if b, err := s.catalog.GetBasecamp(ctx, id); err == nil {
			basecamp = b
			if total, err = addLine(total, b.Price, people); err != nil {
				return nil, err
			}
		} else if !errors.HasCode(err, errors.ErrCodeNotFound) {
			return nil, err
		}
	}
	if pkg == nil && basecamp == nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidOffer, "Paket atau basecamp tidak ditemukan", errors.ErrPackageNotFound)
	}

	booking, err := builders.NewBookingBuilder().
		WithNumber(NewBookingNumber(s.now())).
		WithCustomer(claims.Name, claims.Email, strings.TrimSpace(req.CustomerPhone)).
		WithPackage(pkg).
		WithBasecamp(basecamp).
		WithHikingDate(hikingDate).
		WithGroup(people, participants).
		WithTotalPrice(total).
		WithPaymentMethod(strings.TrimSpace(req.PaymentMethod)).
		WithNotes(strings.TrimSpace(req.Notes)).
		WithOwner(claims.ID).
		Build()
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "Format data peserta tidak valid", err)
	}

	if err := s.persist(ctx, booking, ChannelAPI); err != nil {
		return nil, err
	}
	booking.HikingPackage = pkg
	booking.Basecamp = basecamp
	return booking, nil
}

// UpdateForUser cập nhật từng phần booking của user qua API
func (s *BookingService) UpdateForUser(ctx context.Context, id, userID string, req dto.UpdateBookingRequest) (*models.Booking, error) {
	if err := validator.ValidateUpdateBooking(&req); err != nil {
		return nil, err
	}

	booking, err := s.findForUser(ctx, id, userID, "Booking tidak ditemukan atau bukan milik Anda")
	if err != nil {
		return nil, err
	}
	if err := models.GetBookingState(booking.BookingStatus).Edit(booking); err != nil {
		return nil, lockedError(err)
	}

	columns := make([]string, 0, 5)
	if req.HikingDate != nil {
		booking.HikingDate, _ = utils.ParseDate(*req.HikingDate)
		columns = append(columns, "hiking_date")
	}
	if req.NumberOfPeople != nil {
		booking.NumberOfPeople = int(*req.NumberOfPeople)
		columns = append(columns, "number_of_people")
	}
	if req.Participants != nil {
		participants, err := ParseParticipants(req.Participants)
		if err != nil {
			return nil, err
		}
		data, err := json.Marshal(participants)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "Format data peserta tidak valid", err)
		}
		booking.Participants = datatypes.JSON(data)
		columns = append(columns, "participants")
	}
	if req.PaymentMethod != nil {
		booking.PaymentMethod = nil
		if m := strings.TrimSpace(*req.PaymentMethod); m != "" {
			booking.PaymentMethod = &m
		}
		columns = append(columns, "payment_method")
	}
	if req.Notes != nil {
		booking.Notes = nil
		if n := strings.TrimSpace(*req.Notes); n != "" {
			booking.Notes = &n
		}
		columns = append(columns, "notes")
	}

	if err := commands.NewUpdateBookingCommand(booking, s.db, columns...).Execute(ctx); err != nil {
		s.log.Error("Cập nhật booking %s thất bại: %v", id, err)
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể cập nhật booking", err)
	}
	return booking, nil
}

// DeleteForUser xóa booking của user, trả về bản ghi đã xóa
func (s *BookingService) DeleteForUser(ctx context.Context, id, userID string) (*models.Booking, error) {
	booking, err := s.findForUser(ctx, id, userID, "Booking tidak ditemukan atau bukan milik Anda")
	if err != nil {
		return nil, err
	}
	return booking, s.delete(ctx, booking)
}
