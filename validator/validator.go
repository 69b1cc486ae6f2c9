package validator

import (
	"bytes"
	"math"
	"strconv"
	"strings"
	"sync"

	"hikebook/constants"
	"hikebook/dto"
	"hikebook/errors"
	"hikebook/utils"

	playground "github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	validate *playground.Validate
)

func engine() *playground.Validate {
	once.Do(func() {
		validate = playground.New(playground.WithRequiredStructEnabled())
	})
	return validate
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ValidateRegistration kiểm tra form đăng ký, lỗi đầu tiên được trả về.
// requireConfirmation bật với form HTML.
func ValidateRegistration(in *dto.RegisterInput, requireConfirmation bool) error {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Name = strings.TrimSpace(in.Name)

	if blank(in.Name) || blank(in.Email) || in.Password == "" || (requireConfirmation && in.ConfirmPassword == "") {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Semua field wajib diisi kecuali telepon", errors.ErrMissingRequired)
	}

	if err := engine().Var(in.Email, "email"); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Format email tidak valid", errors.ErrInvalidFormat)
	}

	if requireConfirmation && in.Password != in.ConfirmPassword {
		return errors.NewAppError(errors.ErrCodeInvalidPassword, "Password dan konfirmasi password tidak sama", errors.ErrInvalidInput)
	}

	if len(in.Password) < constants.MinPasswordLength {
		return errors.NewAppError(errors.ErrCodeInvalidPassword, "Password minimal 6 karakter", errors.ErrInvalidInput)
	}

	return nil
}

// ValidateLogin chỉ kiểm tra sự có mặt của email và mật khẩu
func ValidateLogin(in *dto.LoginInput) error {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.Email == "" || in.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email dan password harus diisi", errors.ErrMissingRequired)
	}
	return nil
}

// ValidatePersonalInfo kiểm tra bước 1 của wizard
func ValidatePersonalInfo(in *dto.PersonalInfoInput) error {
	in.CustomerName = strings.TrimSpace(in.CustomerName)
	in.CustomerEmail = strings.TrimSpace(in.CustomerEmail)
	in.CustomerPhone = strings.TrimSpace(in.CustomerPhone)
	in.HikingDate = strings.TrimSpace(in.HikingDate)

	if err := engine().Struct(in); err != nil {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Semua field harus diisi", errors.ErrMissingRequired)
	}

	if _, err := utils.ParseDate(in.HikingDate); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Format tanggal tidak valid", errors.ErrInvalidFormat)
	}

	return nil
}

// ParsePeople đọc số người tham gia, phải là số nguyên trong [1, MaxPeople]
func ParsePeople(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, errors.NewAppError(errors.ErrCodeInvalidPeople, "Jumlah peserta minimal 1", errors.ErrInvalidInput)
	}
	if err := ValidatePeople(n); err != nil {
		return 0, err
	}
	return n, nil
}

// ValidatePeople kiểm tra số người đã được parse
func ValidatePeople(n int) error {
	if n < 1 {
		return errors.NewAppError(errors.ErrCodeInvalidPeople, "Jumlah peserta minimal 1", errors.ErrInvalidInput)
	}
	if n > constants.MaxPeople {
		return errors.NewAppError(errors.ErrCodeInvalidPeople, "Jumlah peserta tidak valid", errors.ErrInvalidInput)
	}
	return nil
}

// LineTotal tính đơn giá × số người, báo lỗi nếu tràn int64
func LineTotal(price int64, people int) (int64, error) {
	if err := ValidatePeople(people); err != nil {
		return 0, err
	}
	if price < 0 || (price > 0 && int64(people) > math.MaxInt64/price) {
		return 0, errors.NewAppError(errors.ErrCodeInvalidPeople, "Jumlah peserta tidak valid", errors.ErrInvalidInput)
	}
	return price * int64(people), nil
}

// AddTotal cộng hai tổng giá, báo lỗi nếu tràn int64
func AddTotal(a, b int64) (int64, error) {
	if a < 0 || b < 0 || a > math.MaxInt64-b {
		return 0, errors.NewAppError(errors.ErrCodeInvalidPeople, "Jumlah peserta tidak valid", errors.ErrInvalidInput)
	}
	return a + b, nil
}

// ValidatePaymentMethod yêu cầu có phương thức thanh toán
func ValidatePaymentMethod(method string) error {
	if blank(method) {
		return errors.NewAppError(errors.ErrCodeInvalidPayment, "Metode pembayaran harus dipilih", errors.ErrMissingRequired)
	}
	return nil
}

// ValidateCreateBooking kiểm tra body tạo booking qua API
func ValidateCreateBooking(req *dto.CreateBookingRequest) error {
	if blank(req.HikingDate) || req.NumberOfPeople == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tanggal hiking dan jumlah peserta harus diisi", errors.ErrMissingRequired)
	}
	if _, err := utils.ParseDate(req.HikingDate); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Format tanggal tidak valid", errors.ErrInvalidFormat)
	}
	if err := ValidatePeople(int(req.NumberOfPeople)); err != nil {
		return err
	}
	if blank(req.HikingPackageID) && blank(req.BasecampID) {
		return errors.NewAppError(errors.ErrCodeInvalidOffer, "Paket atau basecamp harus dipilih", errors.ErrMissingRequired)
	}
	return nil
}

// ValidateUpdateBooking kiểm tra các field có mặt trong body cập nhật.
// null, chuỗi rỗng và số 0 được coi như không gửi.
func ValidateUpdateBooking(req *dto.UpdateBookingRequest) error {
	if req.HikingDate != nil && blank(*req.HikingDate) {
		req.HikingDate = nil
	}
	if req.NumberOfPeople != nil && *req.NumberOfPeople == 0 {
		req.NumberOfPeople = nil
	}
	switch raw := bytes.TrimSpace(req.Participants); {
	case len(raw) == 0, bytes.Equal(raw, []byte("null")), bytes.Equal(raw, []byte(`""`)):
		req.Participants = nil
	}

	if req.HikingDate != nil {
		if _, err := utils.ParseDate(*req.HikingDate); err != nil {
			return errors.NewAppError(errors.ErrCodeInvalidFormat, "Format tanggal tidak valid", errors.ErrInvalidFormat)
		}
	}
	if req.NumberOfPeople != nil {
		if err := ValidatePeople(int(*req.NumberOfPeople)); err != nil {
			return err
		}
	}
	return nil
}
