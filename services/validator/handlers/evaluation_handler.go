package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/clearcheck/qualgate/services/validator/models"
	"github.com/clearcheck/qualgate/services/validator/services"
)

// EvaluationHandler handles evaluation-related HTTP requests. It owns no
// decision logic: it validates the envelope, calls the evaluator, and
// renders its output verbatim.
type EvaluationHandler struct {
	evaluationService *services.EvaluationService
	logger            *zap.Logger
}

// NewEvaluationHandler creates a new evaluation handler.
func NewEvaluationHandler(evaluationService *services.EvaluationService, logger *zap.Logger) *EvaluationHandler {
	return &EvaluationHandler{
		evaluationService: evaluationService,
		logger:            logger,
	}
}

// Evaluate handles single-submission evaluation requests.
func (h *EvaluationHandler) Evaluate(c *gin.Context) {
	var req models.EvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.EvaluationResponse{
			Success: false,
			Error:   "invalid request format: " + err.Error(),
		})
		return
	}

	if len(req.Submission) == 0 {
		c.JSON(http.StatusBadRequest, models.EvaluationResponse{
			Success: false,
			Error:   "submission is required",
		})
		return
	}

	var submission interface{}
	if err := json.Unmarshal(req.Submission, &submission); err != nil {
		c.JSON(http.StatusBadRequest, models.EvaluationResponse{
			Success: false,
			Error:   "submission is not valid JSON: " + err.Error(),
		})
		return
	}

	evaluationID := uuid.New().String()
	result := h.evaluationService.Evaluate(req.Task, submission)

	h.logger.Info("evaluation completed",
		zap.String("evaluation_id", evaluationID),
		zap.Int("quality_score", result.QualityScore),
		zap.String("verdict", string(result.Verdict)),
		zap.Int("gate_failures", len(result.GateFailures)),
	)

	c.JSON(http.StatusOK, models.EvaluationResponse{
		Success:      true,
		EvaluationID: evaluationID,
		Result:       result,
	})
}

// EvaluateBatch handles batch evaluation requests: one task, many
// submissions, one result per submission in order.
func (h *EvaluationHandler) EvaluateBatch(c *gin.Context) {
	var req models.BatchEvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.BatchEvaluationResponse{
			Success: false,
			Error:   "invalid request format: " + err.Error(),
		})
		return
	}

	if len(req.Submissions) == 0 {
		c.JSON(http.StatusBadRequest, models.BatchEvaluationResponse{
			Success: false,
			Error:   "at least one submission is required",
		})
		return
	}

	submissions := make([]interface{}, 0, len(req.Submissions))
	for i, raw := range req.Submissions {
		var submission interface{}
		if err := json.Unmarshal(raw, &submission); err != nil {
			c.JSON(http.StatusBadRequest, models.BatchEvaluationResponse{
				Success: false,
				Error:   "submission " + strconv.Itoa(i) + " is not valid JSON: " + err.Error(),
			})
			return
		}
		submissions = append(submissions, submission)
	}

	evaluationID := uuid.New().String()
	results := h.evaluationService.EvaluateBatch(req.Task, submissions)

	h.logger.Info("batch evaluation completed",
		zap.String("evaluation_id", evaluationID),
		zap.Int("submissions", len(results)),
	)

	c.JSON(http.StatusOK, models.BatchEvaluationResponse{
		Success:      true,
		EvaluationID: evaluationID,
		Results:      results,
	})
}

// Policy returns the scoring policy and validator identity in effect.
func (h *EvaluationHandler) Policy(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"validator_id": h.evaluationService.ValidatorID(),
			"version":      services.AttestationVersion,
			"policy":       h.evaluationService.Policy(),
		},
	})
}
