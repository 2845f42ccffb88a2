package schema

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

type AccountMetadata map[string]interface{}

func (u AccountMetadata) Value() (driver.Value, error) {
	return json.Marshal(u)
}

func (u *AccountMetadata) Scan(src interface{}) error {
	source, ok := src.([]byte)
	if !ok {
		return errors.New("Type assertion .([]byte) failed.")
	}

	return json.Unmarshal(source, &u)
}

type Account struct {
	ID                uuid.UUID       `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	Email             string          `json:"email" gorm:"unique_index;not null"`
	PasswordHash      string          `json:"-" gorm:"not null"`
	PretestPrevalence *float64        `json:"pretest_prevalence" gorm:"type:numeric(5,4)"`
	Metadata          AccountMetadata `json:"metadata" gorm:"type:jsonb;not null;default '{}'"`
	LastLogin         *time.Time      `json:"last_login"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}
