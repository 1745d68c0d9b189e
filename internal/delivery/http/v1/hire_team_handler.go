package v1

import (
	"net/http"

	"cavebeat-backend/internal/delivery/http/response"
	"cavebeat-backend/internal/domain"
	"cavebeat-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// maxSubmissionBytes bounds the JSON body of a submission.
const maxSubmissionBytes = 1 << 20

type HireTeamHandler struct {
	hireTeamUC domain.HireTeamUsecase
}

// NewHireTeamHandler registers the hire team form route (public, no auth required)
func NewHireTeamHandler(public *gin.RouterGroup, hireTeamUC domain.HireTeamUsecase) {
	handler := &HireTeamHandler{
		hireTeamUC: hireTeamUC,
	}

	public.POST("/hire-team", handler.Submit)
}

// Submit godoc
// @Summary      Submit Hire Team Form
// @Description  Validates a project inquiry, notifies the studio inbox and sends the client a confirmation.
// @Tags         hire-team
// @Accept       json
// @Produce      json
// @Param        submission  body      domain.SubmissionInput        true  "Hire Team Form Data"
// @Success      200         {object}  response.SubmissionResponse
// @Failure      400         {object}  response.SubmissionResponse
// @Failure      405         {object}  response.Response
// @Failure      429         {object}  response.Response
// @Failure      500         {object}  response.SubmissionResponse
// @Failure      503         {object}  response.SubmissionResponse
// @Router       /hire-team [post]
func (h *HireTeamHandler) Submit(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSubmissionBytes)

	var req domain.SubmissionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.New(http.StatusBadRequest, "Invalid request body", err))
		return
	}

	response.Submission(c, h.hireTeamUC.Submit(c.Request.Context(), req))
}
