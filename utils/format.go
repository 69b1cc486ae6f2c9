package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout là định dạng ngày trong form (input type=date)
const DateLayout = "2006-01-02"

var indonesianMonths = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

var indonesianWeekdays = [...]string{
	"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu",
}

// FormatRupiah định dạng số tiền kiểu "Rp 300.000"
func FormatRupiah(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	return "Rp " + sign + b.String()
}

// FormatDateID định dạng ngày kiểu id-ID, ví dụ "Jumat, 1 Agustus 2025"
func FormatDateID(t time.Time, withWeekday bool) string {
	if t.IsZero() {
		return "-"
	}
	date := fmt.Sprintf("%d %s %d", t.Day(), indonesianMonths[t.Month()-1], t.Year())
	if withWeekday {
		return indonesianWeekdays[t.Weekday()] + ", " + date
	}
	return date
}

// ParseDate đọc ngày theo DateLayout, chấp nhận cả RFC3339
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
