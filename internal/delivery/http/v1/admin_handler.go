package v1

import (
	"errors"
	"net/http"
	"strconv"

	"cavebeat-backend/internal/delivery/http/response"
	"cavebeat-backend/internal/domain"
	"cavebeat-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	hireTeamUC domain.HireTeamUsecase
}

func NewAdminHandler(protected *gin.RouterGroup, hireTeamUC domain.HireTeamUsecase) {
	handler := &AdminHandler{hireTeamUC: hireTeamUC}

	admin := protected.Group("/admin")
	{
		admin.GET("/submissions", handler.ListSubmissions)
	}
}

// ListSubmissions godoc
// @Summary      List archived hire team submissions
// @Description  Returns the most recent submissions, newest first
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Maximum number of submissions (default 20, max 100)"
// @Success      200    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /admin/submissions [get]
func (h *AdminHandler) ListSubmissions(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if err != nil {
		c.Error(apperror.BadRequest("limit must be an integer"))
		return
	}

	records, err := h.hireTeamUC.RecentSubmissions(c.Request.Context(), limit)
	if err != nil {
		if errors.Is(err, domain.ErrArchiveDisabled) {
			c.Error(apperror.NotFound("Submission archive is not configured"))
			return
		}
		c.Error(apperror.Internal(err))
		return
	}
	response.Success(c, http.StatusOK, "Recent submissions", records)
}
