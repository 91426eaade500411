// ABOUTME: Tests for CLI helpers.
// ABOUTME: Covers exercise spec parsing, token minting, and the user guard.
package main

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/pulsetrack/pulse/internal/models"
)

func TestParseExercise(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		want    models.Exercise
		wantErr bool
	}{
		{
			name: "name only",
			spec: "Pull-ups",
			want: models.Exercise{Name: "Pull-ups"},
		},
		{
			name: "full spec",
			spec: "Bench press:4:8:90s",
			want: models.Exercise{Name: "Bench press", Sets: 4, Reps: "8", Rest: "90s"},
		},
		{
			name: "sets and reps",
			spec: "Squats:5:5",
			want: models.Exercise{Name: "Squats", Sets: 5, Reps: "5"},
		},
		{
			name: "non-numeric reps allowed",
			spec: "Plank:3:max",
			want: models.Exercise{Name: "Plank", Sets: 3, Reps: "max"},
		},
		{
			name: "empty sets skipped",
			spec: "Stretching::hold",
			want: models.Exercise{Name: "Stretching", Reps: "hold"},
		},
		{
			name:    "missing name",
			spec:    ":4:8",
			wantErr: true,
		},
		{
			name:    "non-numeric sets",
			spec:    "Rows:four:8",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseExercise(tt.spec)

			if tt.wantErr {
				if err == nil {
					t.Error("Expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("parseExercise(%q) = %+v, want %+v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestNewToken(t *testing.T) {
	a, err := newToken()
	if err != nil {
		t.Fatalf("newToken failed: %v", err)
	}
	b, err := newToken()
	if err != nil {
		t.Fatalf("newToken failed: %v", err)
	}

	if !strings.HasPrefix(a, "plt_") {
		t.Errorf("token %q missing prefix", a)
	}
	if len(a) != len("plt_")+64 {
		t.Errorf("token length = %d", len(a))
	}
	if a == b {
		t.Error("expected unique tokens")
	}
}

func TestFeedbackBlank(t *testing.T) {
	orig := currentUser
	defer func() { currentUser = orig }()
	currentUser = &models.User{ID: uuid.New(), Email: "user@example.com"}

	// Whitespace-only text must be rejected before anything is sent.
	err := feedbackCmd.RunE(feedbackCmd, []string{"  ", "\t"})
	if err == nil {
		t.Fatal("expected error for blank feedback")
	}
	if !strings.Contains(err.Error(), "required") {
		t.Errorf("err = %v", err)
	}
}

func TestRequireUser(t *testing.T) {
	orig := currentUser
	defer func() { currentUser = orig }()

	currentUser = nil
	if err := requireUser(); err == nil {
		t.Error("expected error for anonymous session")
	}

	currentUser = &models.User{ID: uuid.New(), Email: "user@example.com"}
	if err := requireUser(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
