package usecase

import "context"

// Auth event kinds recorded in the audit trail.
const (
	AuthEventRegister       = "register"
	AuthEventRegisterDenied = "register_denied"
	AuthEventLogin          = "login"
	AuthEventLoginDenied    = "login_denied"
)

// AuthEvent describes an authentication outcome. It never carries credential
// material.
type AuthEvent struct {
	Kind      string
	SubjectID string
	Email     string
	Reason    string
}

// AuditTrail abstracts the audit recorder so use cases stay storage-agnostic.
// Recording is best-effort and must not fail the request.
type AuditTrail interface {
	RecordAuth(ctx context.Context, event AuthEvent)
}
