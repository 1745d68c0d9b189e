package usecase_test

import (
	"html"
	"testing"
	"time"

	"cavebeat-backend/internal/domain"
	"cavebeat-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validatedSubmission() domain.ValidatedSubmission {
	return domain.ValidatedSubmission{
		Name:             "Ada Lovelace",
		Email:            "ada@example.com",
		Phone:            "+918448802078",
		Company:          "Analytical Engines",
		ProjectType:      "Web App",
		Budget:           "$10k-$25k",
		Timeline:         "1-3 months",
		Message:          "Line one\nLine <two> & \"three\"",
		PreferredContact: "email",
		SubmittedAt:      time.Date(2026, 3, 4, 10, 30, 0, 0, time.UTC),
	}
}

func TestComposeIsDeterministic(t *testing.T) {
	c := usecase.NewMessageComposer(usecase.ComposerConfig{TeamInbox: teamInbox})
	sub := validatedSubmission()

	first, err := c.Compose(sub)
	require.NoError(t, err)
	second, err := c.Compose(sub)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestComposeTeamMessage(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	c := usecase.NewMessageComposer(usecase.ComposerConfig{TeamInbox: teamInbox, StudioName: "CaveBeat", Location: loc})

	msgs, err := c.Compose(validatedSubmission())
	require.NoError(t, err)
	team := msgs.Team

	assert.Equal(t, teamInbox, team.Recipient)
	assert.Equal(t, "ada@example.com", team.ReplyTo)
	assert.Contains(t, team.Subject, "New Hire Team Submission")

	for _, field := range []string{"Ada Lovelace", "ada@example.com", "+918448802078", "Analytical Engines", "Web App", "$10k-$25k", "1-3 months"} {
		assert.Contains(t, team.BodyText, field)
		assert.Contains(t, html.UnescapeString(team.BodyHTML), field)
	}
	assert.Contains(t, team.BodyText, "Preferred Contact: email")
	assert.Contains(t, team.BodyText, "Submitted on: Wednesday, March 4, 2026 at 4:00 PM IST")
	assert.Contains(t, team.BodyHTML, "Wednesday, March 4, 2026 at 4:00 PM IST")

	t.Run("Should keep message literal in text", func(t *testing.T) {
		assert.Contains(t, team.BodyText, "Line one\nLine <two> & \"three\"")
	})

	t.Run("Should escape message in HTML", func(t *testing.T) {
		assert.NotContains(t, team.BodyHTML, "<two>")
		assert.Contains(t, team.BodyHTML, "Line one\nLine &lt;two&gt; &amp; &#34;three&#34;")
		assert.Contains(t, team.BodyHTML, "white-space: pre-wrap")
	})
}

func TestComposeFromName(t *testing.T) {
	t.Run("Should default to studio based names", func(t *testing.T) {
		c := usecase.NewMessageComposer(usecase.ComposerConfig{TeamInbox: teamInbox, StudioName: "CaveBeat"})
		msgs, err := c.Compose(validatedSubmission())
		require.NoError(t, err)
		assert.Equal(t, "CaveBeat Notifications", msgs.Team.FromName)
		assert.Equal(t, "CaveBeat Team", msgs.Client.FromName)
	})

	t.Run("Should use configured sender name for both messages", func(t *testing.T) {
		c := usecase.NewMessageComposer(usecase.ComposerConfig{TeamInbox: teamInbox, FromName: "CaveBeat Studio"})
		msgs, err := c.Compose(validatedSubmission())
		require.NoError(t, err)
		assert.Equal(t, "CaveBeat Studio", msgs.Team.FromName)
		assert.Equal(t, "CaveBeat Studio", msgs.Client.FromName)
	})
}

func TestComposeClientMessage(t *testing.T) {
	c := usecase.NewMessageComposer(usecase.ComposerConfig{TeamInbox: teamInbox})

	msgs, err := c.Compose(validatedSubmission())
	require.NoError(t, err)
	client := msgs.Client

	assert.Equal(t, "ada@example.com", client.Recipient)
	assert.Contains(t, client.Subject, "Thank you")
	for _, field := range []string{"Web App", "$10k-$25k", "1-3 months", "within 24 hours"} {
		assert.Contains(t, client.BodyText, field)
		assert.Contains(t, client.BodyHTML, field)
	}
	assert.NotContains(t, client.BodyText, "Line one")
	assert.NotContains(t, client.BodyHTML, "Line one")
}

func TestComposeEscapesNameInClientHTML(t *testing.T) {
	c := usecase.NewMessageComposer(usecase.ComposerConfig{TeamInbox: teamInbox})
	sub := validatedSubmission()
	sub.Name = "<script>alert(1)</script>"

	msgs, err := c.Compose(sub)
	require.NoError(t, err)

	assert.NotContains(t, msgs.Client.BodyHTML, "<script>")
	assert.Contains(t, msgs.Client.BodyHTML, "&lt;script&gt;")
	assert.Contains(t, msgs.Client.BodyText, "Hi <script>alert(1)</script>,")
}
