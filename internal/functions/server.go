// ABOUTME: HTTP function server hosting the serverless-style endpoints.
// ABOUTME: Bearer-token auth; routes under /functions/v1/.

package functions

import (
	"context"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/pulsetrack/pulse/internal/models"
)

// Store is the storage surface the function server needs.
type Store interface {
	UserForToken(ctx context.Context, token string) (*models.User, error)
	SaveWorkoutQuestion(ctx context.Context, q *models.WorkoutQuestion) error
}

// Answerer produces an answer for a prompt. Nil means the AI service is
// not configured.
type Answerer interface {
	Answer(ctx context.Context, prompt string) (string, error)
}

// Mailer delivers feedback email. Nil means the email provider is not
// configured.
type Mailer interface {
	Send(ctx context.Context, subject, text string) (map[string]any, error)
}

// Server hosts the function endpoints.
type Server struct {
	store    Store
	answerer Answerer
	mailer   Mailer
	logger   *log.Logger
}

// NewServer creates a function server. answerer and mailer may be nil
// when the corresponding provider keys are absent; the endpoints then
// report the service as not configured.
func NewServer(store Store, answerer Answerer, mailer Mailer, logger *log.Logger) *Server {
	return &Server{store: store, answerer: answerer, mailer: mailer, logger: logger}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	v1 := r.Group("/functions/v1", s.requireUser)
	v1.POST("/ask-workout-question", s.handleAskWorkoutQuestion)
	v1.POST("/send-feedback", s.handleSendFeedback)

	return r
}

// Serve runs the server on addr until the listener fails.
func (s *Server) Serve(addr string) error {
	s.logger.Info("function server listening", "addr", addr)
	return s.Router().Run(addr)
}

const userKey = "user"

// requireUser resolves the bearer token to a user. Requests without a
// valid token get a 401 before any handler runs.
func (s *Server) requireUser(c *gin.Context) {
	token := bearerToken(c.GetHeader("Authorization"))
	if token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	user, err := s.store.UserForToken(c.Request.Context(), token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	c.Set(userKey, user)
	c.Next()
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

func currentUser(c *gin.Context) *models.User {
	if v, ok := c.Get(userKey); ok {
		if u, ok := v.(*models.User); ok {
			return u
		}
	}
	return nil
}
