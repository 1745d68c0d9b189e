package response

import (
	"cavebeat-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// Response standardizes the API JSON response
type Response struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Error     interface{} `json:"error,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

// SubmissionResponse is the body returned by the hire team endpoint
type SubmissionResponse struct {
	Success      bool     `json:"success"`
	Message      string   `json:"message"`
	SubmissionID string   `json:"submissionId,omitempty"`
	Error        string   `json:"error,omitempty"`
	Details      []string `json:"details,omitempty"`
	RequestID    string   `json:"request_id,omitempty"`
}

func requestID(c *gin.Context) string {
	reqID, _ := c.Get(string(domain.KeyRequestID))
	idStr, _ := reqID.(string) // Safe type assertion
	return idStr
}

// Success sends a success response
func Success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Response{
		Success:   true,
		Message:   message,
		Data:      data,
		RequestID: requestID(c),
	})
}

// Error sends an error response
func Error(c *gin.Context, code int, message string, err interface{}) {
	c.JSON(code, Response{
		Success:   false,
		Message:   message,
		Error:     err,
		RequestID: requestID(c),
	})
}

// Submission writes a submission result with the status its error kind maps to
func Submission(c *gin.Context, result domain.SubmissionResult) {
	c.JSON(result.ErrorKind.HTTPStatus(), SubmissionResponse{
		Success:      result.Success,
		Message:      result.Message,
		SubmissionID: result.SubmissionID,
		Error:        result.Error,
		Details:      result.Details,
		RequestID:    requestID(c),
	})
}
