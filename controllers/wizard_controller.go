package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"hikebook/dto"
	"hikebook/errors"
	"hikebook/middleware"
	"hikebook/models"
	"hikebook/services"
	"hikebook/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/goccy/go-json"
)

// WizardController điều khiển các bước đặt chỗ dạng HTML
type WizardController struct {
	wizard   *services.WizardService
	bookings *services.BookingService
	log      logger.Logger
}

func NewWizardController(wizard *services.WizardService, bookings *services.BookingService, log logger.Logger) *WizardController {
	return &WizardController{wizard: wizard, bookings: bookings, log: log}
}

func isValidationError(err error) bool {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		return false
	}
	switch appErr.Code {
	case errors.ErrCodeValidation, errors.ErrCodeRequiredField, errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidEmail, errors.ErrCodeInvalidPeople, errors.ErrCodeInvalidPayment:
		return true
	}
	return false
}

// fail: draft thiếu thì về trang chủ, lỗi nhập liệu trả 400 dạng text
func (wc *WizardController) fail(c *gin.Context, err error) {
	switch {
	case errors.HasCode(err, errors.ErrCodeDraftMissing), errors.HasCode(err, errors.ErrCodeDraftStep):
		c.Redirect(http.StatusFound, "/")
	case errors.HasCode(err, errors.ErrCodeNotFound):
		c.String(http.StatusNotFound, errors.GetAppError(err).Message)
	case isValidationError(err):
		c.String(http.StatusBadRequest, errors.GetAppError(err).Message)
	default:
		wc.log.Error("Wizard %s lỗi: %v", c.FullPath(), err)
		renderServerError(c)
	}
}

func renderStep(c *gin.Context, name, title string, step int, extra gin.H) {
	if extra == nil {
		extra = gin.H{}
	}
	extra["step"] = step
	renderPage(c, http.StatusOK, name, title, extra)
}

// prefill lấy dữ liệu đã nhập trong draft, nếu chưa có thì lấy từ user đang đăng nhập
func prefill(draft *models.BookingDraft, user *models.SessionUser) dto.PersonalInfoInput {
	form := dto.PersonalInfoInput{}
	if draft != nil {
		form = dto.PersonalInfoInput{
			CustomerName:  draft.CustomerName,
			CustomerEmail: draft.CustomerEmail,
			CustomerPhone: draft.CustomerPhone,
			HikingDate:    draft.HikingDate,
		}
	}
	if user != nil {
		if form.CustomerName == "" {
			form.CustomerName = user.Name
		}
		if form.CustomerEmail == "" {
			form.CustomerEmail = user.Email
		}
		if form.CustomerPhone == "" {
			form.CustomerPhone = user.Phone
		}
	}
	return form
}

// Start mở wizard cho paket trong URL, draft cũ bị thay thế
func (wc *WizardController) Start(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	pkg, err := wc.wizard.Start(c.Request.Context(), sess, c.Param("packageId"))
	if err != nil {
		wc.fail(c, err)
		return
	}

	renderStep(c, "booking/step1", "Booking - Data Diri", 1, gin.H{
		"package": pkg,
		"form":    prefill(nil, sess.User),
	})
}

// Step1 hiển thị lại bước 1 của draft hiện tại
func (wc *WizardController) Step1(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	pkg, err := wc.wizard.Package(c.Request.Context(), sess)
	if err != nil {
		wc.fail(c, err)
		return
	}

	renderStep(c, "booking/step1", "Booking - Data Diri", 1, gin.H{
		"package": pkg,
		"form":    prefill(sess.Draft, sess.User),
	})
}

func (wc *WizardController) SubmitStep1(c *gin.Context) {
	var input dto.PersonalInfoInput
	if err := c.ShouldBind(&input); err != nil {
		c.String(http.StatusBadRequest, "Semua field harus diisi")
		return
	}

	if err := wc.wizard.SubmitPersonalInfo(c.Request.Context(), middleware.CurrentSession(c), input); err != nil {
		wc.fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/booking/step2")
}

func (wc *WizardController) Step2(c *gin.Context) {
	draft, err := wc.wizard.Group(middleware.CurrentSession(c))
	if err != nil {
		wc.fail(c, err)
		return
	}

	renderStep(c, "booking/step2", "Booking - Data Kelompok", 2, gin.H{"bookingData": draft})
}

// bindGroupInfo đọc số người và người tham gia. Participants có thể là chuỗi
// JSON trong field "participants" hoặc các cặp participantName/participantAge.
func bindGroupInfo(c *gin.Context) (dto.GroupInfoInput, error) {
	if c.ContentType() == binding.MIMEJSON {
		var body struct {
			NumberOfPeople dto.FlexInt     `json:"numberOfPeople"`
			Participants   json.RawMessage `json:"participants"`
		}
		if err := json.NewDecoder(c.Request.Body).Decode(&body); err != nil {
			return dto.GroupInfoInput{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "Format data tidak valid", err)
		}
		people := ""
		if body.NumberOfPeople != 0 {
			people = strconv.Itoa(int(body.NumberOfPeople))
		}
		return dto.GroupInfoInput{NumberOfPeople: people, Participants: body.Participants}, nil
	}

	input := dto.GroupInfoInput{NumberOfPeople: c.PostForm("numberOfPeople")}
	if raw := strings.TrimSpace(c.PostForm("participants")); raw != "" {
		input.Participants = []byte(raw)
		return input, nil
	}

	names := c.PostFormArray("participantName")
	ages := c.PostFormArray("participantAge")
	participants := make([]models.Participant, 0, len(names))
	for i, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		p := models.Participant{Name: name}
		if i < len(ages) && strings.TrimSpace(ages[i]) != "" {
			age, err := strconv.Atoi(strings.TrimSpace(ages[i]))
			if err != nil || age < 0 {
				return dto.GroupInfoInput{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "Format data peserta tidak valid", err)
			}
			p.Age = age
		}
		participants = append(participants, p)
	}
	raw, err := json.Marshal(participants)
	if err != nil {
		return dto.GroupInfoInput{}, err
	}
	input.Participants = raw
	return input, nil
}

func (wc *WizardController) SubmitStep2(c *gin.Context) {
	input, err := bindGroupInfo(c)
	if err != nil {
		wc.fail(c, err)
		return
	}

	if err := wc.wizard.SubmitGroupInfo(c.Request.Context(), middleware.CurrentSession(c), input); err != nil {
		wc.fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/booking/review")
}

func (wc *WizardController) Review(c *gin.Context) {
	summary, err := wc.wizard.Review(c.Request.Context(), middleware.CurrentSession(c))
	if err != nil {
		wc.fail(c, err)
		return
	}

	renderStep(c, "booking/review", "Booking - Review", 3, gin.H{"summary": summary})
}

func (wc *WizardController) Checkout(c *gin.Context) {
	var input dto.CheckoutInput
	if err := c.ShouldBind(&input); err != nil {
		c.String(http.StatusBadRequest, "Metode pembayaran harus dipilih")
		return
	}

	if err := wc.wizard.Checkout(c.Request.Context(), middleware.CurrentSession(c), input); err != nil {
		wc.fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/booking/payment")
}

func (wc *WizardController) Payment(c *gin.Context) {
	summary, err := wc.wizard.Payment(c.Request.Context(), middleware.CurrentSession(c))
	if err != nil {
		wc.fail(c, err)
		return
	}

	renderStep(c, "booking/payment", "Booking - Pembayaran", 4, gin.H{"summary": summary})
}

// ProcessPayment lưu booking. Lỗi lưu trả trang 500 và giữ nguyên draft.
func (wc *WizardController) ProcessPayment(c *gin.Context) {
	booking, err := wc.wizard.ProcessPayment(c.Request.Context(), middleware.CurrentSession(c))
	if err != nil {
		if errors.HasCode(err, errors.ErrCodeDraftMissing) {
			c.Redirect(http.StatusFound, "/")
			return
		}
		wc.log.Error("Xử lý thanh toán lỗi: %v", err)
		renderServerError(c)
		return
	}
	c.Redirect(http.StatusFound, "/booking/success/"+booking.ID)
}

// Success chỉ đọc booking, tải lại trang bao nhiêu lần cũng được
func (wc *WizardController) Success(c *gin.Context) {
	booking, err := wc.bookings.Get(c.Request.Context(), c.Param("bookingId"))
	if errors.HasCode(err, errors.ErrCodeNotFound) {
		c.String(http.StatusNotFound, "Booking tidak ditemukan")
		return
	}
	if err != nil {
		wc.log.Error("Đọc booking %s lỗi: %v", c.Param("bookingId"), err)
		renderServerError(c)
		return
	}

	renderPage(c, http.StatusOK, "booking/success", "Booking Berhasil", gin.H{
		"booking": dto.NewBookingView(booking),
		"updated": c.Query("updated") == "true",
	})
}

func (wc *WizardController) Restart(c *gin.Context) {
	wc.wizard.Restart(middleware.CurrentSession(c))
	c.Redirect(http.StatusFound, "/")
}
