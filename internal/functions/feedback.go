// ABOUTME: send-feedback endpoint: relays user feedback by email.
// ABOUTME: The provider's raw result is returned to the caller.

package functions

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pulsetrack/pulse/internal/models"
	"github.com/resend/resend-go/v2"
)

// FeedbackRequest is the send-feedback payload. The user fields let a
// client report on behalf of a session it knows better than the token;
// absent fields fall back to the authenticated user.
type FeedbackRequest struct {
	Feedback     string `json:"feedback"`
	FeedbackType string `json:"feedbackType"`
	UserEmail    string `json:"userEmail"`
	UserID       string `json:"userId"`
}

func (s *Server) handleSendFeedback(c *gin.Context) {
	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	result, err := s.SendFeedback(c.Request.Context(), currentUser(c), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrBlankFeedback):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Feedback text is required"})
		case errors.Is(err, ErrNotConfigured):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Email service not configured"})
		default:
			s.logger.Error("feedback send failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send feedback"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// ErrBlankFeedback rejects feedback with no content.
var ErrBlankFeedback = errors.New("feedback text is required")

// SendFeedback relays one piece of feedback by email and returns the
// provider's result. The feedback type labels the subject; the sender's
// email and user ID go into the message body.
func (s *Server) SendFeedback(ctx context.Context, user *models.User, req FeedbackRequest) (map[string]any, error) {
	if strings.TrimSpace(req.Feedback) == "" {
		return nil, ErrBlankFeedback
	}
	if s.mailer == nil {
		return nil, ErrNotConfigured
	}

	subject := "Pulse feedback"
	if req.FeedbackType != "" {
		subject = "Pulse feedback - " + req.FeedbackType
	}

	email := req.UserEmail
	userID := req.UserID
	if user != nil {
		if email == "" {
			email = user.Email
		}
		if userID == "" {
			userID = user.ID.String()
		}
	}

	var body strings.Builder
	if req.FeedbackType != "" {
		fmt.Fprintf(&body, "Type: %s\n", req.FeedbackType)
	}
	if email != "" {
		fmt.Fprintf(&body, "From: %s\n", email)
	}
	if userID != "" {
		fmt.Fprintf(&body, "User ID: %s\n", userID)
	}
	if body.Len() > 0 {
		body.WriteString("\n")
	}
	body.WriteString(req.Feedback)

	return s.mailer.Send(ctx, subject, body.String())
}

// Feedback delivery addresses.
const (
	feedbackFrom = "Pulse <feedback@pulsetrack.app>"
	feedbackTo   = "team@pulsetrack.app"
)

// ResendMailer delivers feedback through Resend.
type ResendMailer struct {
	client *resend.Client
}

// NewResendMailer creates a mailer for the given API key.
func NewResendMailer(apiKey string) *ResendMailer {
	return &ResendMailer{client: resend.NewClient(apiKey)}
}

// Send delivers one feedback email and returns the provider result.
func (m *ResendMailer) Send(ctx context.Context, subject, text string) (map[string]any, error) {
	sent, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    feedbackFrom,
		To:      []string{feedbackTo},
		Subject: subject,
		Text:    text,
	})
	if err != nil {
		return nil, err
	}
	return map[string]any{"id": sent.Id}, nil
}
