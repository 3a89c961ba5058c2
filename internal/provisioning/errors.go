package provisioning

import (
	"errors"
	"fmt"
)

// ErrorKind identifies the failure point of a provisioning error. One kind
// exists per operation; the poller adds two of its own.
type ErrorKind string

const (
	// KindMessageEndpointUpdating is a failed registration endpoint update.
	KindMessageEndpointUpdating ErrorKind = "MessageEndpointUpdating"
	// KindProvisioning is a failed creation of a named resource.
	KindProvisioning ErrorKind = "Provisioning"
	// KindConfigUpdating is a failed reconfiguration of a named config.
	KindConfigUpdating ErrorKind = "ConfigUpdating"
	// KindListPublishingCredentials is a failed credential retrieval.
	KindListPublishingCredentials ErrorKind = "ListPublishingCredentials"
	// KindZipDeploy is a package push that failed or was not accepted for
	// processing.
	KindZipDeploy ErrorKind = "ZipDeploy"
	// KindDeployStatus is a poll attempt that failed or returned a failure
	// status.
	KindDeployStatus ErrorKind = "DeployStatus"
	// KindDeployTimeout is a poll loop exhausted without success.
	KindDeployTimeout ErrorKind = "DeployTimeout"
	// KindRestartWebApp is a failed site restart.
	KindRestartWebApp ErrorKind = "RestartWebApp"
)

// Error is a typed provisioning failure. Resource names the affected
// resource or config where the kind is generic; cause carries the original
// transport or provider error when the call itself failed, and is nil when
// the call returned a wrong-shaped response.
type Error struct {
	Kind     ErrorKind
	Resource string
	cause    error
}

// newError builds an Error and records the failure in the metrics.
func newError(kind ErrorKind, resource string, cause error) *Error {
	operationFailuresTotal.WithLabelValues(string(kind)).Inc()
	return &Error{Kind: kind, Resource: resource, cause: cause}
}

// Error implements the error interface using the message catalog.
func (e *Error) Error() string {
	msg := messageFor(e.Kind, e.Resource)
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.cause)
	}
	return msg
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *Error) Unwrap() error {
	return e.cause
}

// IsKind reports whether err is (or wraps) a provisioning Error of the
// given kind.
func IsKind(err error, kind ErrorKind) bool {
	var pe *Error
	return errors.As(err, &pe) && pe.Kind == kind
}
