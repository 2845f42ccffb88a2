package api

import (
	"context"
	"crypto/rsa"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/denguetect/denguetect-api/bite"
	"github.com/denguetect/denguetect-api/logmodule"
	"github.com/denguetect/denguetect-api/score"
	"github.com/denguetect/denguetect-api/store"
)

const (
	biteImageURLPrefix    = "/uploads/bites"
	defaultMaxUploadBytes = 10 << 20
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store      store.DengueCore
	mongoStore store.MongoStore
	imageStore store.ImageStore

	// JWT private key
	jwtPrivateKey *rsa.PrivateKey

	// prevalence used for accounts without their own setting
	defaultPrevalence score.Prevalence

	maxUploadBytes int64

	// pixel limit of uploaded images, checked before decoding
	maxImagePixels int

	// bcrypt cost of new passwords, bcrypt.DefaultCost when zero
	passwordCost int
}

// NewServer new instance of server
func NewServer(
	dengueStore store.DengueCore,
	mongoStore store.MongoStore,
	imageStore store.ImageStore,
	jwtKey *rsa.PrivateKey) *Server {
	defaultPrevalence := score.PrevalenceOf(score.DefaultPretestPrevalence)
	if viper.IsSet("prevalence.default") {
		defaultPrevalence = score.PrevalenceOf(viper.GetFloat64("prevalence.default"))
	}

	maxUploadBytes := viper.GetInt64("upload.max_bytes")
	if maxUploadBytes <= 0 {
		maxUploadBytes = defaultMaxUploadBytes
	}

	maxImagePixels := viper.GetInt("upload.max_pixels")
	if maxImagePixels <= 0 {
		maxImagePixels = bite.DefaultMaxPixels
	}

	return &Server{
		store:             dengueStore,
		mongoStore:        mongoStore,
		imageStore:        imageStore,
		jwtPrivateKey:     jwtKey,
		defaultPrevalence: defaultPrevalence,
		maxUploadBytes:    maxUploadBytes,
		maxImagePixels:    maxImagePixels,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	if dir := viper.GetString("upload.dir"); dir != "" {
		r.Static(biteImageURLPrefix, dir)
	}

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))

	apiRoute.POST("/accounts", s.accountRegister)
	apiRoute.POST("/auth", s.requestJWT)
	apiRoute.GET("/symptoms", s.getSymptoms)

	// api route other than the above will apply the following middleware
	apiRoute.Use(s.authMiddleware())
	apiRoute.Use(s.recognizeAccountMiddleware())

	accountRoute := apiRoute.Group("/accounts")
	{
		accountRoute.GET("/me", s.accountDetail)
		accountRoute.PATCH("/me/prevalence", s.accountUpdatePrevalence)
		accountRoute.DELETE("/me", s.accountDelete)
	}

	assessmentRoute := apiRoute.Group("/assessments")
	{
		assessmentRoute.POST("", s.createAssessment)
		assessmentRoute.GET("/last", s.lastAssessment)
	}
	apiRoute.GET("/risk-assessment", s.riskAssessment)

	biteRoute := apiRoute.Group("/bites")
	{
		biteRoute.POST("", limitBodySize(s.maxUploadBytes), s.analyzeBite)
		biteRoute.GET("/:analysisID", s.getBiteAnalysis)
	}

	metricRoute := r.Group("/metrics")
	metricRoute.Use(logmodule.Ginrus("Metric"))
	metricRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))
	metricRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.metric")))
	{
		metricRoute.GET("", gin.WrapH(promhttp.Handler()))
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	if shouldInterupt(s.store.Ping(), c) {
		return
	}
	if shouldInterupt(s.mongoStore.Ping(), c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func limitBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
