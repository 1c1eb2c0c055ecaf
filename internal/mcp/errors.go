package mcp

import (
	"errors"
	"fmt"

	"github.com/atelier-crm/atelier/internal/domain/client"
	"github.com/atelier-crm/atelier/internal/domain/meeting"
	"github.com/atelier-crm/atelier/internal/domain/project"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MapError maps domain errors to MCP error codes. Unknown errors pass
// through unchanged.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, client.ErrClientNotFound):
		return &APIError{Code: "CLIENT_NOT_FOUND", Message: "client not found", RecoveryHint: "List clients to find a valid id"}
	case errors.Is(err, project.ErrProjectNotFound):
		return &APIError{Code: "PROJECT_NOT_FOUND", Message: "project not found", RecoveryHint: "List projects to find a valid id"}
	case errors.Is(err, meeting.ErrMeetingNotFound):
		return &APIError{Code: "MEETING_NOT_FOUND", Message: "meeting not found", RecoveryHint: "List meetings to find a valid id"}
	case errors.Is(err, project.ErrInvalidStatus):
		return &APIError{Code: "INVALID_STATUS", Message: "unknown pipeline stage", RecoveryHint: "Use Lead, Design, In Progress, or Complete"}
	case errors.Is(err, client.ErrInvalidInput),
		errors.Is(err, project.ErrInvalidInput),
		errors.Is(err, meeting.ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: err.Error(), RecoveryHint: "Check required fields"}
	default:
		return err
	}
}
