package usecase

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"io"
	"text/template"
	"time"

	"cavebeat-backend/internal/domain"
)

// SubmittedAtLayout renders submission timestamps in both messages.
const SubmittedAtLayout = "Monday, January 2, 2006 at 3:04 PM MST"

// ComposerConfig holds the studio-specific values baked into every message.
type ComposerConfig struct {
	StudioName string
	// FromName overrides the display name on both messages when set.
	FromName     string
	TeamInbox    string
	Location     *time.Location
	ResponseTime string
}

// MessageComposer builds the team notification and the client confirmation.
// It has no side effects; the same submission always yields the same messages.
type MessageComposer struct {
	cfg        ComposerConfig
	teamText   *template.Template
	teamHTML   *htmltemplate.Template
	clientText *template.Template
	clientHTML *htmltemplate.Template
}

type messageData struct {
	Sub          domain.ValidatedSubmission
	Studio       string
	SubmittedAt  string
	ResponseTime string
}

// NewMessageComposer parses the message templates once.
func NewMessageComposer(cfg ComposerConfig) *MessageComposer {
	if cfg.StudioName == "" {
		cfg.StudioName = "CaveBeat"
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.ResponseTime == "" {
		cfg.ResponseTime = "within 24 hours"
	}
	return &MessageComposer{
		cfg:        cfg,
		teamText:   template.Must(template.New("team_text").Parse(teamTextTemplate)),
		teamHTML:   htmltemplate.Must(htmltemplate.New("team_html").Parse(teamHTMLTemplate)),
		clientText: template.Must(template.New("client_text").Parse(clientTextTemplate)),
		clientHTML: htmltemplate.Must(htmltemplate.New("client_html").Parse(clientHTMLTemplate)),
	}
}

// Compose renders both messages for sub.
func (c *MessageComposer) Compose(sub domain.ValidatedSubmission) (domain.ComposedMessages, error) {
	data := messageData{
		Sub:          sub,
		Studio:       c.cfg.StudioName,
		SubmittedAt:  sub.SubmittedAt.In(c.cfg.Location).Format(SubmittedAtLayout),
		ResponseTime: c.cfg.ResponseTime,
	}

	teamText, err := execute(c.teamText, data)
	if err != nil {
		return domain.ComposedMessages{}, err
	}
	teamHTML, err := execute(c.teamHTML, data)
	if err != nil {
		return domain.ComposedMessages{}, err
	}
	clientText, err := execute(c.clientText, data)
	if err != nil {
		return domain.ComposedMessages{}, err
	}
	clientHTML, err := execute(c.clientHTML, data)
	if err != nil {
		return domain.ComposedMessages{}, err
	}

	teamFrom, clientFrom := c.cfg.StudioName+" Notifications", c.cfg.StudioName+" Team"
	if c.cfg.FromName != "" {
		teamFrom, clientFrom = c.cfg.FromName, c.cfg.FromName
	}

	return domain.ComposedMessages{
		Team: domain.OutboundMessage{
			Recipient: c.cfg.TeamInbox,
			FromName:  teamFrom,
			ReplyTo:   sub.Email,
			Subject:   fmt.Sprintf("🚀 New Hire Team Submission - %s", c.cfg.StudioName),
			BodyText:  teamText,
			BodyHTML:  teamHTML,
		},
		Client: domain.OutboundMessage{
			Recipient: sub.Email,
			FromName:  clientFrom,
			Subject:   fmt.Sprintf("Thank you for your interest in %s! 🚀", c.cfg.StudioName),
			BodyText:  clientText,
			BodyHTML:  clientHTML,
		},
	}, nil
}

type executor interface {
	Execute(w io.Writer, data any) error
	Name() string
}

func execute(tmpl executor, data messageData) (string, error) {
	var out bytes.Buffer
	if err := tmpl.Execute(&out, data); err != nil {
		return "", fmt.Errorf("render template %s: %w", tmpl.Name(), err)
	}
	return out.String(), nil
}
