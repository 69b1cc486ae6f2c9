package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "hikebook/errors"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestSuccess_MergesPayload(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Success(c, http.StatusCreated, "Booking created successfully", gin.H{"count": 2})

	assert.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Booking created successfully", body["message"])
	assert.EqualValues(t, 2, body["count"])
}

func TestFromError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		kind   string
	}{
		{"validation", apperrors.NewAppError(apperrors.ErrCodeValidation, "Semua field harus diisi", nil), http.StatusBadRequest, "Validation error"},
		{"duplicate email", apperrors.NewAppError(apperrors.ErrCodeUserExists, "Email sudah terdaftar", apperrors.ErrUserAlreadyExists), http.StatusConflict, "Email already exists"},
		{"expired token", apperrors.NewAppError(apperrors.ErrCodeExpiredToken, "expired", nil), http.StatusForbidden, "Invalid token"},
		{"missing token", apperrors.NewAppError(apperrors.ErrCodeMissingToken, "missing", nil), http.StatusUnauthorized, "Access denied. No token provided."},
		{"not found", apperrors.NewAppError(apperrors.ErrCodeNotFound, "Booking tidak ditemukan", nil), http.StatusNotFound, "Not found"},
		{"unknown", errors.New("connection reset"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			FromError(c, tc.err, "Terjadi kesalahan")

			assert.Equal(t, tc.status, w.Code)
			body := decode(t, w)
			assert.Equal(t, tc.kind, body["error"])
			assert.NotEmpty(t, body["message"])
		})
	}
}

func TestServerError_HidesCause(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	FromError(c, errors.New("pq: relation bookings does not exist"), "Terjadi kesalahan saat membuat booking")

	assert.NotContains(t, w.Body.String(), "pq:")
	assert.Contains(t, w.Body.String(), "Terjadi kesalahan saat membuat booking")
}
