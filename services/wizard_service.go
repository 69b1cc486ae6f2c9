package services

import (
	"context"
	"strings"

	"hikebook/dto"
	"hikebook/errors"
	"hikebook/models"
	"hikebook/services/logger"
	"hikebook/utils"
	"hikebook/validator"
)

// WizardService điều khiển các bước đặt chỗ lưu trong session.
// Mọi kiểm tra chạy trước khi draft bị thay đổi.
type WizardService struct {
	catalog  *CatalogService
	bookings *BookingService
	log      logger.Logger
}

func NewWizardService(catalog *CatalogService, bookings *BookingService, log logger.Logger) *WizardService {
	return &WizardService{catalog: catalog, bookings: bookings, log: log}
}

func draftMissing() error {
	return errors.NewAppError(errors.ErrCodeDraftMissing, "Sesi booking tidak ditemukan", errors.ErrSessionNotFound)
}

// requireStep trả về draft nếu đã tới ít nhất bước min
func requireStep(sess *models.Session, min models.DraftStep) (*models.BookingDraft, error) {
	if sess == nil || sess.Draft == nil || sess.Draft.Step < min {
		return nil, draftMissing()
	}
	return sess.Draft, nil
}

// copy để chỉ ghi vào session khi mọi bước đã thành công
func cloneDraft(d *models.BookingDraft) *models.BookingDraft {
	c := *d
	if d.Participants != nil {
		c.Participants = append([]models.Participant(nil), d.Participants...)
	}
	return &c
}

func summarize(draft *models.BookingDraft, pkg *models.HikingPackage) (*dto.DraftSummary, error) {
	total, err := validator.LineTotal(pkg.Price, draft.NumberOfPeople)
	if err != nil {
		return nil, err
	}
	summary := &dto.DraftSummary{
		Draft:               draft,
		Package:             pkg,
		TotalPrice:          total,
		TotalPriceFormatted: utils.FormatRupiah(total),
		HikingDateFormatted: draft.HikingDate,
	}
	if date, err := utils.ParseDate(draft.HikingDate); err == nil {
		summary.HikingDateFormatted = utils.FormatDateID(date, true)
	}
	return summary, nil
}

// Start bắt đầu draft mới cho paket, draft cũ bị thay thế
func (s *WizardService) Start(ctx context.Context, sess *models.Session, packageID string) (*models.HikingPackage, error) {
	pkg, err := s.catalog.GetPackage(ctx, packageID)
	if err != nil {
		return nil, err
	}
	sess.SetDraft(&models.BookingDraft{
		Step:         models.DraftEmpty,
		PackageID:    pkg.ID,
		PackageName:  pkg.Name,
		PackagePrice: pkg.Price,
	})
	return pkg, nil
}

// Package đọc paket của draft hiện tại
func (s *WizardService) Package(ctx context.Context, sess *models.Session) (*models.HikingPackage, error) {
	draft, err := requireStep(sess, models.DraftEmpty)
	if err != nil {
		return nil, err
	}
	return s.catalog.GetPackage(ctx, draft.PackageID)
}

// SubmitPersonalInfo gộp thông tin người đặt vào draft, giữ lựa chọn paket
func (s *WizardService) SubmitPersonalInfo(ctx context.Context, sess *models.Session, in dto.PersonalInfoInput) error {
	current, err := requireStep(sess, models.DraftEmpty)
	if err != nil {
		return err
	}
	if err := validator.ValidatePersonalInfo(&in); err != nil {
		return err
	}

	draft := cloneDraft(current)
	draft.CustomerName = in.CustomerName
	draft.CustomerEmail = in.CustomerEmail
	draft.CustomerPhone = in.CustomerPhone
	draft.HikingDate = in.HikingDate
	draft.Step = models.DraftPersonalInfo
	sess.SetDraft(draft)
	return nil
}

// Group trả về draft ở bước 2
func (s *WizardService) Group(sess *models.Session) (*models.BookingDraft, error) {
	return requireStep(sess, models.DraftPersonalInfo)
}

// SubmitGroupInfo ghi số người và danh sách người tham gia
func (s *WizardService) SubmitGroupInfo(ctx context.Context, sess *models.Session, in dto.GroupInfoInput) error {
	current, err := requireStep(sess, models.DraftPersonalInfo)
	if err != nil {
		return err
	}
	people, err := validator.ParsePeople(in.NumberOfPeople)
	if err != nil {
		return err
	}
	participants, err := ParseParticipants(in.Participants)
	if err != nil {
		return err
	}

	draft := cloneDraft(current)
	draft.NumberOfPeople = people
	draft.Participants = participants
	draft.Step = models.DraftWithGroup
	sess.SetDraft(draft)
	return nil
}

// Review tính tổng giá từ giá paket hiện tại
func (s *WizardService) Review(ctx context.Context, sess *models.Session) (*dto.DraftSummary, error) {
	current, err := requireStep(sess, models.DraftWithGroup)
	if err != nil {
		return nil, err
	}
	pkg, err := s.catalog.GetPackage(ctx, current.PackageID)
	if err != nil {
		return nil, err
	}

	draft := cloneDraft(current)
	draft.PackageName = pkg.Name
	draft.PackagePrice = pkg.Price
	if draft.Step < models.DraftReviewed {
		draft.Step = models.DraftReviewed
	}
	summary, err := summarize(draft, pkg)
	if err != nil {
		return nil, err
	}
	sess.SetDraft(draft)
	return summary, nil
}

// Checkout ghi phương thức thanh toán
func (s *WizardService) Checkout(ctx context.Context, sess *models.Session, in dto.CheckoutInput) error {
	current, err := requireStep(sess, models.DraftReviewed)
	if err != nil {
		return err
	}
	if err := validator.ValidatePaymentMethod(in.PaymentMethod); err != nil {
		return err
	}

	draft := cloneDraft(current)
	draft.PaymentMethod = strings.TrimSpace(in.PaymentMethod)
	draft.Step = models.DraftCheckout
	sess.SetDraft(draft)
	return nil
}

func requireCheckout(sess *models.Session) (*models.BookingDraft, error) {
	draft, err := requireStep(sess, models.DraftCheckout)
	if err != nil {
		return nil, err
	}
	return draft, nil
}

// Payment trả về tóm tắt để xác nhận thanh toán
func (s *WizardService) Payment(ctx context.Context, sess *models.Session) (*dto.DraftSummary, error) {
	draft, err := requireCheckout(sess)
	if err != nil {
		return nil, err
	}
	pkg, err := s.catalog.GetPackage(ctx, draft.PackageID)
	if err != nil {
		return nil, err
	}
	return summarize(draft, pkg)
}

// ProcessPayment lưu booking rồi mới xóa draft. Lỗi thì draft giữ nguyên.
func (s *WizardService) ProcessPayment(ctx context.Context, sess *models.Session) (*models.Booking, error) {
	draft, err := requireCheckout(sess)
	if err != nil {
		return nil, err
	}

	booking, err := s.bookings.CreateFromDraft(ctx, draft, sess.User)
	if err != nil {
		return nil, err
	}

	sess.ClearDraft()
	return booking, nil
}

// Restart bỏ draft hiện tại
func (s *WizardService) Restart(sess *models.Session) {
	if sess.Draft != nil {
		sess.ClearDraft()
	}
}
