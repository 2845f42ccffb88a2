package api

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/denguetect/denguetect-api/api/mocks"
	"github.com/denguetect/denguetect-api/bite"
	"github.com/denguetect/denguetect-api/schema"
	"github.com/denguetect/denguetect-api/score"
)

var (
	testKeyOnce sync.Once
	testKey     *rsa.PrivateKey
)

func testJWTKey(t *testing.T) *rsa.PrivateKey {
	testKeyOnce.Do(func() {
		key, err := rsa.GenerateKey(rand.Reader, 2048)
		if err != nil {
			t.Fatal(err)
		}
		testKey = key
	})
	return testKey
}

type testServer struct {
	*Server
	core  *mocks.MockDengueCore
	mongo *mocks.MockMongoStore
	image *mocks.MockImageStore
}

func newTestServer(t *testing.T, ctl *gomock.Controller) *testServer {
	gin.SetMode(gin.TestMode)

	core := mocks.NewMockDengueCore(ctl)
	mongo := mocks.NewMockMongoStore(ctl)
	image := mocks.NewMockImageStore(ctl)

	return &testServer{
		Server: &Server{
			store:             core,
			mongoStore:        mongo,
			imageStore:        image,
			jwtPrivateKey:     testJWTKey(t),
			defaultPrevalence: score.PrevalenceOf(score.DefaultPretestPrevalence),
			maxUploadBytes:    defaultMaxUploadBytes,
			maxImagePixels:    bite.DefaultMaxPixels,
		},
		core:  core,
		mongo: mongo,
		image: image,
	}
}

func testAccount(prevalence *float64) *schema.Account {
	return &schema.Account{
		ID:                uuid.MustParse("6f1c2f5e-0d7a-4b53-9a43-3d2a1f6c9e01"),
		Email:             "juan@example.com",
		PretestPrevalence: prevalence,
	}
}

// withAccount acts as recognizeAccountMiddleware for the given account
func withAccount(a *schema.Account) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("requester", a.ID.String())
		c.Set("account", a)
		c.Next()
	}
}

func floatPtr(f float64) *float64 {
	return &f
}

func doJSON(router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var r io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		r = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("invalid json response %q: %s", w.Body.String(), err)
	}
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	var resp ErrorResponse
	decodeBody(t, w, &resp)
	return resp
}
