package function

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"cavebeat-backend/internal/usecase"
	"cavebeat-backend/pkg/email"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validBody = `{"name":"Ada Lovelace","email":"ada@example.com","phone":"+918448802078",
"company":"Analytical Engines","projectType":"Web App","budget":"$10k-$25k",
"timeline":"1-3 months","message":"We need a dashboard."}`

func newTestHandler() (*Handler, *email.MemoryTransport) {
	transport := email.NewMemoryTransport(nil)
	uc := usecase.NewHireTeamUsecase(usecase.HireTeamDeps{
		Composer:  usecase.NewMessageComposer(usecase.ComposerConfig{TeamInbox: "studio@cavebeat.test"}),
		Transport: transport,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	return NewHandler(uc, ""), transport
}

func body(t *testing.T, resp events.APIGatewayProxyResponse) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &out))
	return out
}

func TestHandlePreflight(t *testing.T) {
	h, _ := newTestHandler()

	resp, err := h.Handle(context.Background(), events.APIGatewayProxyRequest{HTTPMethod: "OPTIONS"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, resp.Body)
	assert.Equal(t, "*", resp.Headers["Access-Control-Allow-Origin"])
}

func TestHandleMethodNotAllowed(t *testing.T) {
	h, transport := newTestHandler()

	resp, err := h.Handle(context.Background(), events.APIGatewayProxyRequest{HTTPMethod: "GET"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.Equal(t, "Method not allowed", body(t, resp)["message"])
	assert.Empty(t, transport.Messages())
}

func TestHandleSubmission(t *testing.T) {
	h, transport := newTestHandler()

	resp, err := h.Handle(context.Background(), events.APIGatewayProxyRequest{HTTPMethod: "POST", Body: validBody})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	out := body(t, resp)
	assert.Equal(t, true, out["success"])
	assert.NotEmpty(t, out["submissionId"])
	assert.Len(t, transport.Messages(), 2)
}

func TestHandleBase64Body(t *testing.T) {
	h, _ := newTestHandler()

	resp, err := h.Handle(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod:      "POST",
		Body:            base64.StdEncoding.EncodeToString([]byte(validBody)),
		IsBase64Encoded: true,
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHandleEmptyBodyIsValidationFailure(t *testing.T) {
	h, _ := newTestHandler()

	resp, err := h.Handle(context.Background(), events.APIGatewayProxyRequest{HTTPMethod: "POST"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t,
		"Missing required fields: name, email, phone, company, projectType, budget, timeline, message",
		body(t, resp)["message"])
}

func TestHandleInvalidJSON(t *testing.T) {
	h, _ := newTestHandler()

	resp, err := h.Handle(context.Background(), events.APIGatewayProxyRequest{HTTPMethod: "POST", Body: "{"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, false, body(t, resp)["success"])
}

func TestHandleOriginAllowList(t *testing.T) {
	h, _ := newTestHandler()
	h = NewHandler(h.hireTeamUC, "https://a.test,https://b.test")

	for _, origin := range []string{"https://a.test", "https://b.test"} {
		resp, err := h.Handle(context.Background(), events.APIGatewayProxyRequest{
			HTTPMethod: "OPTIONS",
			Headers:    map[string]string{"origin": origin},
		})
		require.NoError(t, err)
		assert.Equal(t, origin, resp.Headers["Access-Control-Allow-Origin"])
		assert.Equal(t, "Origin", resp.Headers["Vary"])
	}

	resp, err := h.Handle(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: "OPTIONS",
		Headers:    map[string]string{"Origin": "https://evil.test"},
	})
	require.NoError(t, err)
	assert.NotContains(t, resp.Headers, "Access-Control-Allow-Origin")
}
