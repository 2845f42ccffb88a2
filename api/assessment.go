package api

import (
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"

	"github.com/denguetect/denguetect-api/metrics"
	"github.com/denguetect/denguetect-api/schema"
	"github.com/denguetect/denguetect-api/score"
	"github.com/denguetect/denguetect-api/store"
)

// prevalenceOf returns the prevalence setting of an account, or the server
// default when the account has none.
func (s *Server) prevalenceOf(account *schema.Account) score.Prevalence {
	if p := score.PrevalenceFromSetting(account.PretestPrevalence); p.IsSet() {
		return p
	}
	return s.defaultPrevalence
}

// biteLabelOf resolves the bite colour label of an assessment request. A
// stored analysis wins over a label sent by the client. Unknown analyses
// give no label.
func (s *Server) biteLabelOf(c *gin.Context, accountID, analysisID, label string) string {
	if analysisID == "" {
		return label
	}

	report, err := s.mongoStore.GetBiteAnalysis(accountID, analysisID)
	if err != nil {
		if err != store.ErrAnalysisNotFound {
			c.Error(err)
			sentry.CaptureException(err)
		}
		log.WithField("analysis_id", analysisID).WithError(err).Warn("ignore bite analysis")
		return ""
	}

	return string(report.Analysis.LabelCls)
}

func observeAssessment(a schema.Assessment) {
	metrics.AssessmentsByDisplayRisk.WithLabelValues(string(a.DisplayRisk)).Inc()
	metrics.AssessmentsByRiskLevel.WithLabelValues(string(a.Enhanced.RiskLevel)).Inc()
}

// createAssessment scores a list of symptoms and stores the result when
// any symptom is given
func (s *Server) createAssessment(c *gin.Context) {
	account, ok := requestAccount(c)
	if !ok {
		return
	}

	var params struct {
		Symptoms       []string `json:"symptoms"`
		BiteAnalysisID string   `json:"bite_analysis_id"`
		BiteLabel      string   `json:"bite_label"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	accountID := account.ID.String()
	label := s.biteLabelOf(c, accountID, params.BiteAnalysisID, params.BiteLabel)
	assessment := score.Assess(params.Symptoms, s.prevalenceOf(account), label)
	observeAssessment(assessment)

	var id string
	if len(assessment.Symptoms) > 0 {
		report, err := s.mongoStore.SaveAssessment(accountID, assessment)
		if shouldInterupt(err, c) {
			return
		}
		id = report.ID
	}

	c.JSON(http.StatusOK, gin.H{
		"id":     id,
		"model":  schema.PublishedModelName,
		"result": assessment,
	})
}

// lastAssessment returns the latest stored assessment with symptoms
func (s *Server) lastAssessment(c *gin.Context) {
	account, ok := requestAccount(c)
	if !ok {
		return
	}

	report, err := s.mongoStore.LastAssessment(account.ID.String())
	if err == store.ErrAssessmentNotFound {
		abortWithEncoding(c, http.StatusNotFound, errorNoPreviousAssessment)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	score.SetPercentages(&report.Assessment)
	c.JSON(http.StatusOK, gin.H{"result": report})
}

// riskAssessment scores the symptoms of the latest stored assessment again
// with the current prevalence setting. Nothing is stored.
func (s *Server) riskAssessment(c *gin.Context) {
	account, ok := requestAccount(c)
	if !ok {
		return
	}

	report, err := s.mongoStore.LastAssessment(account.ID.String())
	if err == store.ErrAssessmentNotFound {
		abortWithEncoding(c, http.StatusNotFound, errorNoPreviousAssessment)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	last := report.Assessment
	assessment := score.Assess(last.Symptoms, s.prevalenceOf(account), last.BiteLabel)

	c.JSON(http.StatusOK, gin.H{
		"based_on": report.ID,
		"model":    schema.PublishedModelName,
		"result":   assessment,
	})
}
