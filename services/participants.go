package services

import (
	"bytes"

	"hikebook/errors"
	"hikebook/models"

	"github.com/goccy/go-json"
)

func invalidParticipants(err error) error {
	return errors.NewAppError(errors.ErrCodeInvalidFormat, "Format data peserta tidak valid", err)
}

// ParseParticipants nhận mảng JSON hoặc chuỗi chứa mảng JSON. Phần tử có
// thể là object hoặc chỉ là tên. Rỗng hoặc null cho ra danh sách rỗng.
func ParseParticipants(raw []byte) ([]models.Participant, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return []models.Participant{}, nil
	}

	if raw[0] == '"' {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return nil, invalidParticipants(err)
		}
		return ParseParticipants([]byte(inner))
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, invalidParticipants(err)
	}

	participants := make([]models.Participant, 0, len(items))
	for _, item := range items {
		item = bytes.TrimSpace(item)
		if len(item) > 0 && item[0] == '"' {
			var name string
			if err := json.Unmarshal(item, &name); err != nil {
				return nil, invalidParticipants(err)
			}
			participants = append(participants, models.Participant{Name: name})
			continue
		}

		var p models.Participant
		if err := json.Unmarshal(item, &p); err != nil {
			return nil, invalidParticipants(err)
		}
		participants = append(participants, p)
	}
	return participants, nil
}
