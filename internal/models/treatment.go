package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// SlotList is the ordered set of bookable slot labels of a treatment,
// stored as a jsonb array so the catalog keeps its original slot order.
type SlotList []string

func (s SlotList) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(s))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (s *SlotList) Scan(value any) error {
	if value == nil {
		*s = SlotList{}
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("slot list: unsupported column type")
	}

	return json.Unmarshal(raw, (*[]string)(s))
}

func (SlotList) GormDataType() string {
	return "jsonb"
}

type Treatment struct {
	ID    uint     `gorm:"primaryKey" json:"id"`
	Name  string   `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Price float64  `json:"price"`
	Slots SlotList `gorm:"type:jsonb;not null;default:'[]'" json:"slots"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
