// ABOUTME: ask-workout-question endpoint: coach Q&A over a workout.
// ABOUTME: Question history is saved best-effort after answering.

package functions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pulsetrack/pulse/internal/models"
)

// AskRequest is the ask-workout-question payload.
type AskRequest struct {
	Question    string          `json:"question"`
	WorkoutData json.RawMessage `json:"workoutData,omitempty"`
	Sport       string          `json:"sport,omitempty"`
	WorkoutID   string          `json:"workoutId,omitempty"`
}

// AskResponse carries the coach's answer.
type AskResponse struct {
	Answer string `json:"answer"`
}

// ErrNotConfigured marks a provider whose API key is absent.
var ErrNotConfigured = errors.New("AI service not configured")

func (s *Server) handleAskWorkoutQuestion(c *gin.Context) {
	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Question is required"})
		return
	}

	answer, err := s.Ask(c.Request.Context(), currentUser(c), req)
	if err != nil {
		if errors.Is(err, ErrNotConfigured) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "AI service not configured"})
			return
		}
		s.logger.Error("answer failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get answer"})
		return
	}

	c.JSON(http.StatusOK, AskResponse{Answer: answer})
}

// Ask answers a workout question for a user. Question history is saved
// best-effort; a failed save never blocks the answer.
func (s *Server) Ask(ctx context.Context, user *models.User, req AskRequest) (string, error) {
	if s.answerer == nil {
		return "", ErrNotConfigured
	}

	answer, err := s.answerer.Answer(ctx, buildPrompt(req))
	if err != nil {
		return "", err
	}

	if user != nil {
		q := models.NewWorkoutQuestion(user.ID, req.Question)
		q.Answer = answer
		q.Sport = req.Sport
		if id, err := uuid.Parse(req.WorkoutID); err == nil {
			q.WorkoutID = &id
		}
		if err := s.store.SaveWorkoutQuestion(ctx, q); err != nil {
			s.logger.Warn("could not save question history", "error", err)
		}
	}

	return answer, nil
}

// buildPrompt frames the question as a coaching request with whatever
// workout context the client sent.
func buildPrompt(req AskRequest) string {
	var b strings.Builder
	b.WriteString("You are a knowledgeable fitness coach. Answer the athlete's question")
	if req.Sport != "" {
		fmt.Fprintf(&b, " about their %s training", req.Sport)
	}
	b.WriteString(" concisely and practically.\n\n")
	if len(req.WorkoutData) > 0 {
		fmt.Fprintf(&b, "Workout data:\n%s\n\n", string(req.WorkoutData))
	}
	fmt.Fprintf(&b, "Question: %s", req.Question)
	return b.String()
}
