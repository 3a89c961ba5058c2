package provisioning

import (
	"net/http"

	"github.com/jayzhang/TeamsFx/internal/platform/azure"
)

// StatusClass classifies an HTTP status code into the three outcomes the
// workflow cares about.
type StatusClass int

const (
	// StatusOther covers every failure status, including a missing or zero
	// status. Operations treat it as a wrong-shaped response.
	StatusOther StatusClass = iota

	// StatusOKOrCreated is a terminal 2xx success.
	StatusOKOrCreated

	// StatusAccepted means the request was accepted for asynchronous
	// processing; the deployment is still pending.
	StatusAccepted
)

// String returns the class name.
func (s StatusClass) String() string {
	switch s {
	case StatusOKOrCreated:
		return "ok"
	case StatusAccepted:
		return "accepted"
	default:
		return "other"
	}
}

// ClassifyStatus maps a status code to its class. Pure function of the
// integer: 202 is accepted, any other 2xx is success, everything else
// (including zero) is other.
func ClassifyStatus(code int) StatusClass {
	switch {
	case code == http.StatusAccepted:
		return StatusAccepted
	case code >= 200 && code < 300:
		return StatusOKOrCreated
	default:
		return StatusOther
	}
}

// classifyResponse classifies a response, treating a nil response as Other.
// Malformed responses never get the benefit of the doubt.
func classifyResponse(resp *azure.Response) StatusClass {
	if resp == nil {
		return StatusOther
	}
	return ClassifyStatus(resp.StatusCode)
}
