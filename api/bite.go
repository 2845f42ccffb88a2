package api

import (
	"encoding/json"
	"errors"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"

	"github.com/denguetect/denguetect-api/bite"
	"github.com/denguetect/denguetect-api/metrics"
	"github.com/denguetect/denguetect-api/schema"
	"github.com/denguetect/denguetect-api/store"
)

// roiParams keeps track of which ROI fields were sent. An ROI needs both
// centre coordinates; a missing radius takes the default.
type roiParams struct {
	CX *float64 `json:"cx"`
	CY *float64 `json:"cy"`
	R  *float64 `json:"r"`
}

func (p *roiParams) toROI() *schema.ROI {
	if p == nil || p.CX == nil || p.CY == nil {
		return nil
	}

	roi := &schema.ROI{CX: *p.CX, CY: *p.CY, R: bite.DefaultROIRadius}
	if p.R != nil {
		roi.R = *p.R
	}
	return roi
}

// readBiteUpload reads the image and ROI from either a JSON body with a data
// URL or a multipart form with an image file and a JSON encoded roi field.
func readBiteUpload(c *gin.Context) ([]byte, *schema.ROI, error) {
	if strings.HasPrefix(c.ContentType(), gin.MIMEJSON) {
		var params struct {
			ImageDataURL string     `json:"imageDataUrl"`
			ROI          *roiParams `json:"roi"`
		}
		if err := c.ShouldBindJSON(&params); err != nil {
			return nil, nil, err
		}

		data, _, err := bite.DecodeDataURL(params.ImageDataURL)
		if err != nil {
			return nil, nil, err
		}
		return data, params.ROI.toROI(), nil
	}

	var roi *schema.ROI
	if raw := c.PostForm("roi"); raw != "" {
		var p roiParams
		// an unreadable roi is ignored
		if err := json.Unmarshal([]byte(raw), &p); err == nil {
			roi = p.toROI()
		}
	}

	fh, err := c.FormFile("image")
	if err == http.ErrMissingFile {
		return nil, nil, bite.ErrNoImage
	} else if err != nil {
		return nil, nil, err
	}

	f, err := fh.Open()
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	data, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, nil, err
	}
	if len(data) == 0 {
		return nil, nil, bite.ErrNoImage
	}
	return data, roi, nil
}

// analyzeBite labels the discoloration of an uploaded bite photo. Storing
// the photo or the analysis may fail without failing the request.
func (s *Server) analyzeBite(c *gin.Context) {
	account, ok := requestAccount(c)
	if !ok {
		return
	}

	data, roi, err := readBiteUpload(c)
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			abortWithEncoding(c, http.StatusRequestEntityTooLarge, errorImageTooLarge, err)
		case err == bite.ErrNoImage:
			abortWithEncoding(c, http.StatusBadRequest, errorNoImage)
		case bite.IsImageDecodeError(err):
			metrics.BiteAnalyses.WithLabelValues("error").Inc()
			abortWithEncoding(c, http.StatusUnprocessableEntity, errorImageDecode, err)
		default:
			abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		}
		return
	}

	start := time.Now()
	analysis, img, err := bite.Analyze(data, roi, s.maxImagePixels)
	if err != nil {
		metrics.BiteAnalyses.WithLabelValues("error").Inc()
		if bite.IsImageTooLarge(err) {
			abortWithEncoding(c, http.StatusRequestEntityTooLarge, errorImageTooLarge, err)
		} else {
			abortWithEncoding(c, http.StatusUnprocessableEntity, errorImageDecode, err)
		}
		return
	}
	metrics.BiteAnalysisLatency.Observe(time.Since(start).Seconds())
	metrics.BiteAnalyses.WithLabelValues(string(analysis.LabelCls)).Inc()

	report := schema.BiteAnalysisReport{
		ID:        s.mongoStore.NewBiteAnalysisID(),
		AccountID: account.ID.String(),
		Analysis:  *analysis,
		ImageSize: len(data),
		CreatedAt: time.Now().UTC(),
	}

	logger := log.WithField("analysis_id", report.ID)
	if url, _, err := s.imageStore.SaveBiteImage(report.ID, img); err != nil {
		logger.WithError(err).Error("save bite image")
		sentry.CaptureException(err)
	} else {
		report.ImageURL = url
	}

	if err := s.mongoStore.SaveBiteAnalysis(&report); err != nil {
		logger.WithError(err).Error("save bite analysis")
		sentry.CaptureException(err)
	}

	var imageURL interface{}
	if report.ImageURL != "" {
		imageURL = report.ImageURL
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":          true,
		"labelText":   analysis.LabelText,
		"labelCls":    analysis.LabelCls,
		"stats":       analysis.Stats,
		"roi":         analysis.ROI,
		"image_url":   imageURL,
		"analysis_id": report.ID,
	})
}

// getBiteAnalysis returns a stored bite analysis of the account
func (s *Server) getBiteAnalysis(c *gin.Context) {
	account, ok := requestAccount(c)
	if !ok {
		return
	}

	report, err := s.mongoStore.GetBiteAnalysis(account.ID.String(), c.Param("analysisID"))
	if err == store.ErrAnalysisNotFound {
		abortWithEncoding(c, http.StatusNotFound, errorAnalysisNotFound)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": report})
}
