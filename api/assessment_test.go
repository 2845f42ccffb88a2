package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/denguetect/denguetect-api/schema"
	"github.com/denguetect/denguetect-api/score"
	"github.com/denguetect/denguetect-api/store"
)

type assessmentResponse struct {
	ID      string            `json:"id"`
	BasedOn string            `json:"based_on"`
	Model   string            `json:"model"`
	Result  schema.Assessment `json:"result"`
}

func assessmentRouter(s *testServer, account *schema.Account) *gin.Engine {
	router := gin.New()
	router.Use(withAccount(account))
	router.POST("/assessments", s.createAssessment)
	router.GET("/assessments/last", s.lastAssessment)
	router.GET("/risk-assessment", s.riskAssessment)
	return router
}

func TestCreateAssessment(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := newTestServer(t, ctl)
	account := testAccount(nil)
	accountID := account.ID.String()

	s.mongo.EXPECT().SaveAssessment(accountID, gomock.Any()).
		DoAndReturn(func(id string, a schema.Assessment) (*schema.AssessmentReport, error) {
			assert.Equal(t, []string{"retro-orbital-pain", "petechiae"}, a.Symptoms)
			return &schema.AssessmentReport{ID: "report-1", AccountID: id, Assessment: a}, nil
		}).Times(1)

	w := doJSON(assessmentRouter(s, account), http.MethodPost, "/assessments", map[string]interface{}{
		"symptoms": []string{"retro-orbital-pain", "petechiae"},
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp assessmentResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, "report-1", resp.ID)
	assert.Equal(t, schema.PublishedModelName, resp.Model)
	assert.Equal(t, score.DefaultPretestPrevalence, resp.Result.TargetPrevalence)
	assert.InDelta(t, 0.1408, resp.Result.Calculation.P, 1e-3)
	assert.Equal(t, 14, resp.Result.ProbabilityPct)
	assert.Equal(t, 87, resp.Result.DevProbabilityPct)
	assert.Equal(t, schema.DisplayRiskLow, resp.Result.DisplayRisk)
}

func TestCreateAssessmentUsesAccountPrevalence(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := newTestServer(t, ctl)
	account := testAccount(floatPtr(0.3))

	s.mongo.EXPECT().SaveAssessment(gomock.Any(), gomock.Any()).
		Return(&schema.AssessmentReport{ID: "report-2"}, nil).Times(1)

	w := doJSON(assessmentRouter(s, account), http.MethodPost, "/assessments", map[string]interface{}{
		"symptoms": []string{"fever-high"},
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp assessmentResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, 0.3, resp.Result.TargetPrevalence)
	assert.InDelta(t, score.Logit(0.3)-score.Logit(score.DevelopmentPrevalence), resp.Result.Calculation.OffsetApplied, 1e-9)
}

func TestCreateAssessmentBiteBonus(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := newTestServer(t, ctl)
	account := testAccount(nil)
	accountID := account.ID.String()
	symptoms := []string{"fever-high", "retro-orbital-pain"}

	s.mongo.EXPECT().GetBiteAnalysis(accountID, "bite-red").Return(&schema.BiteAnalysisReport{
		ID:       "bite-red",
		Analysis: schema.BiteAnalysis{LabelCls: schema.BiteLabelRed},
	}, nil).Times(1)
	s.mongo.EXPECT().GetBiteAnalysis(accountID, "bite-missing").Return(nil, store.ErrAnalysisNotFound).Times(1)
	s.mongo.EXPECT().SaveAssessment(accountID, gomock.Any()).
		Return(&schema.AssessmentReport{ID: "report"}, nil).Times(4)

	router := assessmentRouter(s, account)
	percentageOf := func(body map[string]interface{}) float64 {
		w := doJSON(router, http.MethodPost, "/assessments", body)
		assert.Equal(t, http.StatusOK, w.Code)
		var resp assessmentResponse
		decodeBody(t, w, &resp)
		return resp.Result.Enhanced.Percentage
	}

	plain := percentageOf(map[string]interface{}{"symptoms": symptoms})
	assert.Equal(t, 24.1, plain)

	// a stored analysis overrides the label sent by the client
	assert.Equal(t, 36.1, percentageOf(map[string]interface{}{
		"symptoms": symptoms, "bite_analysis_id": "bite-red", "bite_label": "yellow",
	}))
	assert.Equal(t, 29.1, percentageOf(map[string]interface{}{
		"symptoms": symptoms, "bite_label": "yellow",
	}))
	// an unknown analysis gives no bonus
	assert.Equal(t, plain, percentageOf(map[string]interface{}{
		"symptoms": symptoms, "bite_analysis_id": "bite-missing", "bite_label": "red",
	}))
}

func TestCreateAssessmentWithoutSymptomsIsNotStored(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := newTestServer(t, ctl)

	w := doJSON(assessmentRouter(s, testAccount(nil)), http.MethodPost, "/assessments", map[string]interface{}{
		"symptoms": []string{},
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp assessmentResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, "", resp.ID)
	assert.Equal(t, schema.RiskLevelNone, resp.Result.Enhanced.RiskLevel)
	assert.InDelta(t, 0.055, resp.Result.Clinical.P, 1e-12)
}

func TestCreateAssessmentStoreFailure(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := newTestServer(t, ctl)
	s.mongo.EXPECT().SaveAssessment(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout")).Times(1)

	w := doJSON(assessmentRouter(s, testAccount(nil)), http.MethodPost, "/assessments", map[string]interface{}{
		"symptoms": []string{"rash"},
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, errorInternalServer, decodeError(t, w))
}

func TestLastAssessment(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := newTestServer(t, ctl)
	account := testAccount(nil)

	stored := score.Assess([]string{"petechiae"}, score.Prevalence{}, "")
	stored.ProbabilityPct, stored.DevProbabilityPct, stored.ClinicalPct = 0, 0, 0

	gomock.InOrder(
		s.mongo.EXPECT().LastAssessment(account.ID.String()).Return(nil, store.ErrAssessmentNotFound),
		s.mongo.EXPECT().LastAssessment(account.ID.String()).Return(&schema.AssessmentReport{
			ID: "report-9", Assessment: stored,
		}, nil),
	)

	router := assessmentRouter(s, account)

	w := doJSON(router, http.MethodGet, "/assessments/last", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, errorNoPreviousAssessment, decodeError(t, w))

	w = doJSON(router, http.MethodGet, "/assessments/last", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Result schema.AssessmentReport `json:"result"`
	}
	decodeBody(t, w, &resp)
	assert.Equal(t, "report-9", resp.Result.ID)
	assert.Equal(t, score.Percent(stored.Calculation.P), resp.Result.Assessment.ProbabilityPct)
	assert.NotEqual(t, 0, resp.Result.Assessment.DevProbabilityPct)
}

func TestRiskAssessmentRecomputes(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := newTestServer(t, ctl)
	account := testAccount(floatPtr(0.5))

	stored := score.Assess([]string{"petechiae", "retro-orbital-pain"}, score.Prevalence{}, "red")
	s.mongo.EXPECT().LastAssessment(account.ID.String()).Return(&schema.AssessmentReport{
		ID: "report-3", Assessment: stored,
	}, nil).Times(1)

	w := doJSON(assessmentRouter(s, account), http.MethodGet, "/risk-assessment", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp assessmentResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, "report-3", resp.BasedOn)
	assert.Equal(t, 0.5, resp.Result.TargetPrevalence)
	assert.Equal(t, stored.Symptoms, resp.Result.Symptoms)
	assert.Equal(t, "red", resp.Result.BiteLabel)
	assert.True(t, resp.Result.Calculation.P > stored.Calculation.P)
	assert.Equal(t, stored.Enhanced, resp.Result.Enhanced)
}
