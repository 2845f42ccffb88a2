package logmodule

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

func TestGinrusLevels(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hook := test.NewGlobal()
	defer hook.Reset()

	r := gin.New()
	r.Use(Ginrus("API"))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/bad", func(c *gin.Context) { c.Status(http.StatusBadRequest) })
	r.GET("/fail", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	type levelCase struct {
		path  string
		level log.Level
	}
	for _, lc := range []levelCase{
		{"/ok?x=1", log.InfoLevel},
		{"/bad", log.WarnLevel},
		{"/fail", log.ErrorLevel},
	} {
		hook.Reset()
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, lc.path, nil))

		entry := hook.LastEntry()
		if assert.NotNil(t, entry, lc.path) {
			assert.Equal(t, lc.level, entry.Level)
			assert.Equal(t, "API", entry.Data["prefix"])
			assert.Equal(t, lc.path, entry.Data["path"])
		}
	}
}
