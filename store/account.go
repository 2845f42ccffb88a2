package store

import (
	"errors"
	"strings"
	"time"

	"github.com/jinzhu/gorm"
	"github.com/lib/pq"

	"github.com/denguetect/denguetect-api/schema"
)

var (
	ErrAccountTaken    = errors.New("account already exists")
	ErrAccountNotFound = errors.New("account not found")
)

// postgres unique_violation
const uniqueViolation = "23505"

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

func accountLookupError(err error) error {
	if gorm.IsRecordNotFoundError(err) {
		return ErrAccountNotFound
	}
	return err
}

// CreateAccount registers an account. Emails are compared case insensitively.
func (s *DengueStore) CreateAccount(email, passwordHash string, metadata map[string]interface{}) (*schema.Account, error) {
	if metadata == nil {
		metadata = map[string]interface{}{}
	}

	a := schema.Account{
		Email:        normalizeEmail(email),
		PasswordHash: passwordHash,
		Metadata:     schema.AccountMetadata(metadata),
	}

	if err := s.ormDB.Create(&a).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrAccountTaken
		}
		return nil, err
	}

	return &a, nil
}

// GetAccount returns an account by id
func (s *DengueStore) GetAccount(id string) (*schema.Account, error) {
	var a schema.Account
	if err := s.ormDB.Where("id = ?", id).First(&a).Error; err != nil {
		return nil, accountLookupError(err)
	}
	return &a, nil
}

// GetAccountByEmail returns an account by its login email
func (s *DengueStore) GetAccountByEmail(email string) (*schema.Account, error) {
	var a schema.Account
	if err := s.ormDB.Where("email = ?", normalizeEmail(email)).First(&a).Error; err != nil {
		return nil, accountLookupError(err)
	}
	return &a, nil
}

// UpdateAccountPrevalence stores the pretest prevalence setting. A nil value
// clears it.
func (s *DengueStore) UpdateAccountPrevalence(id string, prevalence *float64) (*schema.Account, error) {
	a, err := s.GetAccount(id)
	if err != nil {
		return nil, err
	}

	if err := s.ormDB.Model(a).Update("pretest_prevalence", prevalence).Error; err != nil {
		return nil, err
	}
	a.PretestPrevalence = prevalence

	return a, nil
}

func (s *DengueStore) UpdateAccountLastLogin(id string, at time.Time) error {
	return s.ormDB.Model(&schema.Account{}).Where("id = ?", id).Update("last_login", at).Error
}

// DeleteAccount removes an account from our system permanently
func (s *DengueStore) DeleteAccount(id string) error {
	return s.ormDB.Delete(schema.Account{}, "id = ?", id).Error
}
