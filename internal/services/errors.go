package services

import (
	"errors"
	"fmt"

	"github.com/examforge/exam-portal/internal/models"
)

var (
	// Auth
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("user already exists with this email")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Exam lifecycle
	ErrExamNotFound            = errors.New("exam not found")
	ErrExamAlreadyCompleted    = errors.New("exam already completed")
	ErrNoQuestionsAvailable    = errors.New("no questions available")
	ErrQuestionIndexOutOfRange = errors.New("question index out of range")
	ErrAnswerOutOfRange        = errors.New("answer must be between 0 and 3")

	// Results
	ErrResultNotFound = errors.New("result not found")

	// Question bank
	ErrQuestionNotFound = errors.New("question not found")
)

// PermissionError signals an ownership violation: the authenticated caller
// is not the owner of the resource being accessed.
type PermissionError struct {
	UserID     models.ID
	ResourceID models.ID
	Resource   string
	Action     string
	Reason     string
}

func NewPermissionError(userID, resourceID models.ID, resource, action, reason string) *PermissionError {
	return &PermissionError{
		UserID:     userID,
		ResourceID: resourceID,
		Resource:   resource,
		Action:     action,
		Reason:     reason,
	}
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("access denied: user %s cannot %s %s %s (%s)",
		e.UserID, e.Action, e.Resource, e.ResourceID, e.Reason)
}

func IsPermissionError(err error) bool {
	var pe *PermissionError
	return errors.As(err, &pe)
}
