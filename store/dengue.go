package store

import (
	"time"

	"github.com/jinzhu/gorm"

	"github.com/denguetect/denguetect-api/schema"
)

// DengueCore is the relational datastore of accounts and their settings
type DengueCore interface {
	Ping() error

	// Account
	CreateAccount(email, passwordHash string, metadata map[string]interface{}) (*schema.Account, error)
	GetAccount(id string) (*schema.Account, error)
	GetAccountByEmail(email string) (*schema.Account, error)
	UpdateAccountPrevalence(id string, prevalence *float64) (*schema.Account, error)
	UpdateAccountLastLogin(id string, at time.Time) error
	DeleteAccount(id string) error
}

// DengueStore is an implementation of DengueCore
type DengueStore struct {
	ormDB *gorm.DB
}

func NewDengueStore(ormDB *gorm.DB) *DengueStore {
	return &DengueStore{
		ormDB: ormDB,
	}
}

// Ping is to check the storage health status
func (s *DengueStore) Ping() error {
	return s.ormDB.DB().Ping()
}
