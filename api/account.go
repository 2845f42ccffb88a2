package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/denguetect/denguetect-api/score"
	"github.com/denguetect/denguetect-api/store"
)

const minPasswordLength = 8

// accountRegister is the API for register a new account
func (s *Server) accountRegister(c *gin.Context) {
	logger := log.WithField("api", "accountRegister")

	var params struct {
		Email    string                 `json:"email"`
		Password string                 `json:"password"`
		Metadata map[string]interface{} `json:"metadata"`
	}

	if err := c.BindJSON(&params); err != nil {
		logger.WithError(err).Error(errorInvalidParameters.Message)
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if !strings.Contains(params.Email, "@") || len(params.Password) < minPasswordLength {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), s.bcryptCost())
	if shouldInterupt(err, c) {
		return
	}

	a, err := s.store.CreateAccount(params.Email, string(hash), params.Metadata)
	if err == store.ErrAccountTaken {
		abortWithEncoding(c, http.StatusForbidden, errorAccountTaken)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": a,
	})
}

func (s *Server) bcryptCost() int {
	if s.passwordCost > 0 {
		return s.passwordCost
	}
	return bcrypt.DefaultCost
}

// accountDetail is the API to query an account
func (s *Server) accountDetail(c *gin.Context) {
	account, ok := requestAccount(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": account,
	})
}

// accountUpdatePrevalence is the API to update the pretest prevalence used
// for the account. The value may be a fraction or a percentage, as a number
// or a string. null or "default" clears the setting. Values which cannot be
// read leave the setting unchanged.
func (s *Server) accountUpdatePrevalence(c *gin.Context) {
	account, ok := requestAccount(c)
	if !ok {
		return
	}

	var params struct {
		PretestPrevalence json.RawMessage `json:"pretest_prevalence"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest)
		return
	}

	value, change, err := parsePrevalenceParam(params.PretestPrevalence)
	if err != nil {
		log.WithField("api", "accountUpdatePrevalence").WithError(err).Warn("ignore prevalence value")
	}
	if !change {
		c.JSON(http.StatusOK, gin.H{"updated": false, "result": account})
		return
	}

	updated, err := s.store.UpdateAccountPrevalence(account.ID.String(), value)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"updated": true, "result": updated})
}

// parsePrevalenceParam reads the raw pretest_prevalence field. change is
// false when the stored setting should be kept.
func parsePrevalenceParam(raw json.RawMessage) (value *float64, change bool, err error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, false, nil
	}
	if bytes.Equal(raw, []byte("null")) {
		return nil, true, nil
	}

	var text string
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &text); err != nil {
			return nil, false, err
		}
	} else {
		text = string(raw)
	}

	text = strings.TrimSpace(text)
	switch strings.ToLower(text) {
	case "":
		return nil, false, nil
	case "default":
		return nil, true, nil
	}

	x, err := score.ParsePrevalenceSetting(text)
	if err != nil {
		return nil, false, err
	}
	return &x, true, nil
}

// accountDelete is the API to remove an account from our service
func (s *Server) accountDelete(c *gin.Context) {
	account, ok := requestAccount(c)
	if !ok {
		return
	}

	if err := s.store.DeleteAccount(account.ID.String()); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
