// Command mailcheck verifies the SMTP settings the API would use and can
// send a test message.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"cavebeat-backend/config"
	"cavebeat-backend/internal/app"
	"cavebeat-backend/internal/domain"
	"cavebeat-backend/pkg/email"
	"cavebeat-backend/pkg/logger"
)

func main() {
	to := flag.String("to", "", "send a test message to this address after verifying")
	timeout := flag.Duration("timeout", 30*time.Second, "overall timeout")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger.Init(cfg.LogLevel)

	smtpCfg := app.SMTPConfig(cfg)
	fmt.Printf("SMTP host:     %s:%s (secure=%t)\n", smtpCfg.Host, smtpCfg.Port, smtpCfg.Secure)
	fmt.Printf("SMTP user:     %s\n", smtpCfg.Username)
	fmt.Printf("SMTP password: %s\n", mask(smtpCfg.Password))
	fmt.Printf("OAuth2:        %t\n", smtpCfg.OAuth.Enabled())
	fmt.Printf("Team inbox:    %s\n", cfg.TeamInbox)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	transport := email.NewSMTPTransport(smtpCfg)
	if err := transport.Verify(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "verify failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("SMTP connection verified")

	if *to == "" {
		return
	}
	receipt, err := transport.Send(ctx, domain.OutboundMessage{
		Recipient: *to,
		FromName:  fromName(cfg),
		Subject:   "SMTP test from " + cfg.StudioName,
		BodyText:  "This is a test message sent by mailcheck at " + time.Now().UTC().Format(time.RFC1123) + ".",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "send failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Test message sent: %s\n", receipt.MessageID)
}

// fromName mirrors the sender name the API puts on team notifications.
func fromName(cfg *config.Config) string {
	if cfg.SMTPFromName != "" {
		return cfg.SMTPFromName
	}
	return cfg.StudioName + " Notifications"
}

// mask keeps the first and last two characters of a secret.
func mask(secret string) string {
	if secret == "" {
		return "(not set)"
	}
	if len(secret) <= 4 {
		return strings.Repeat("*", len(secret))
	}
	return secret[:2] + strings.Repeat("*", len(secret)-4) + secret[len(secret)-2:]
}
