// Package function adapts the hire team usecase to API Gateway style
// serverless invocations.
package function

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"cavebeat-backend/internal/domain"
	"cavebeat-backend/pkg/cors"

	"github.com/aws/aws-lambda-go/events"
)

var defaultHeaders = map[string]string{
	"Access-Control-Allow-Methods": "GET, POST, OPTIONS",
	"Access-Control-Allow-Headers": "Content-Type",
	"Content-Type":                 "application/json",
}

type submissionBody struct {
	Success      bool     `json:"success"`
	Message      string   `json:"message"`
	SubmissionID string   `json:"submissionId,omitempty"`
	Error        string   `json:"error,omitempty"`
	Details      []string `json:"details,omitempty"`
}

type Handler struct {
	hireTeamUC domain.HireTeamUsecase
	cors       cors.Policy
}

// NewHandler builds the function handler. allowedOrigins uses the same
// comma separated format as CORS_ORIGIN; empty allows any origin.
func NewHandler(hireTeamUC domain.HireTeamUsecase, allowedOrigins string) *Handler {
	return &Handler{hireTeamUC: hireTeamUC, cors: cors.NewPolicy(allowedOrigins)}
}

// Handle is passed to lambda.Start.
func (h *Handler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	res := responder{headers: h.headers(req)}

	switch strings.ToUpper(req.HTTPMethod) {
	case http.MethodOptions:
		return res.respond(http.StatusOK, ""), nil
	case http.MethodPost:
	default:
		return res.json(http.StatusMethodNotAllowed, map[string]string{"message": "Method not allowed"}), nil
	}

	raw := req.Body
	if req.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(raw)
		if err != nil {
			return res.json(http.StatusBadRequest, submissionBody{Message: "Invalid request body"}), nil
		}
		raw = string(decoded)
	}
	if strings.TrimSpace(raw) == "" {
		raw = "{}"
	}

	var input domain.SubmissionInput
	if err := json.Unmarshal([]byte(raw), &input); err != nil {
		return res.json(http.StatusBadRequest, submissionBody{Message: "Invalid request body"}), nil
	}

	result := h.hireTeamUC.Submit(ctx, input)
	return res.json(result.ErrorKind.HTTPStatus(), submissionBody{
		Success:      result.Success,
		Message:      result.Message,
		SubmissionID: result.SubmissionID,
		Error:        result.Error,
		Details:      result.Details,
	}), nil
}

// headers returns the response headers for req, echoing its Origin when listed.
func (h *Handler) headers(req events.APIGatewayProxyRequest) map[string]string {
	headers := make(map[string]string, len(defaultHeaders)+2)
	for k, v := range defaultHeaders {
		headers[k] = v
	}
	if value, ok := h.cors.AllowOrigin(header(req.Headers, "Origin")); ok {
		headers["Access-Control-Allow-Origin"] = value
	}
	if !h.cors.AllowAll() {
		headers["Vary"] = "Origin"
	}
	return headers
}

// header looks name up case-insensitively; gateways differ in how they case keys.
func header(headers map[string]string, name string) string {
	if v, ok := headers[name]; ok {
		return v
	}
	for k, v := range headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}

type responder struct {
	headers map[string]string
}

func (r responder) json(status int, v any) events.APIGatewayProxyResponse {
	body, err := json.Marshal(v)
	if err != nil {
		return r.respond(http.StatusInternalServerError, `{"success":false,"message":"Internal server error"}`)
	}
	return r.respond(status, string(body))
}

func (r responder) respond(status int, body string) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    r.headers,
		Body:       body,
	}
}
