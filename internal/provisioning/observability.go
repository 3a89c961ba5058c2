package provisioning

import (
	"fmt"
	"log"
	"strings"
	"time"
)

// Logger is the minimal printf-style logging surface phases rely on.
type Logger interface {
	Printf(format string, v ...interface{})
}

// Observer defines the interface for structured observability during the
// provisioning workflow.
type Observer interface {
	Logger

	// Event emits a structured event
	Event(event Event)

	// WithFields returns a new Observer with additional context fields
	WithFields(fields map[string]string) Observer
}

// Event represents a structured provisioning event.
type Event struct {
	Type      EventType         // Type of event
	Phase     string            // Phase name (e.g., "bot registration", "deploy")
	Message   string            // Human-readable message
	Resource  string            // Resource name if applicable
	Timestamp time.Time         // When the event occurred
	Fields    map[string]string // Additional contextual fields
}

// EventType represents the type of provisioning event.
type EventType string

const (
	// EventPhaseStarted indicates a workflow phase has started.
	EventPhaseStarted EventType = "phase.started"
	// EventPhaseCompleted indicates a workflow phase completed successfully.
	EventPhaseCompleted EventType = "phase.completed"
	// EventPhaseFailed indicates a workflow phase failed.
	EventPhaseFailed EventType = "phase.failed"

	// EventDeployPending indicates the deployment is still being processed.
	EventDeployPending EventType = "deploy.pending"
	// EventDeploySucceeded indicates the deployment finished successfully.
	EventDeploySucceeded EventType = "deploy.succeeded"
)

// ConsoleObserver implements Observer using standard log package.
type ConsoleObserver struct {
	contextFields map[string]string
}

// NewConsoleObserver creates a new console-based observer.
func NewConsoleObserver() *ConsoleObserver {
	return &ConsoleObserver{
		contextFields: make(map[string]string),
	}
}

// Printf implements the Logger interface.
func (o *ConsoleObserver) Printf(format string, v ...interface{}) {
	log.Printf(format, v...)
}

// Event implements Observer interface.
func (o *ConsoleObserver) Event(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	// Merge context fields
	if event.Fields == nil {
		event.Fields = make(map[string]string)
	}
	for k, v := range o.contextFields {
		if _, exists := event.Fields[k]; !exists {
			event.Fields[k] = v
		}
	}

	log.Print(o.formatEvent(event))
}

// WithFields implements Observer interface.
func (o *ConsoleObserver) WithFields(fields map[string]string) Observer {
	newFields := make(map[string]string)
	for k, v := range o.contextFields {
		newFields[k] = v
	}
	for k, v := range fields {
		newFields[k] = v
	}

	return &ConsoleObserver{
		contextFields: newFields,
	}
}

// formatEvent formats an event for console output.
func (o *ConsoleObserver) formatEvent(event Event) string {
	var parts []string

	parts = append(parts, string(event.Type))

	if event.Phase != "" {
		parts = append(parts, fmt.Sprintf("[%s]", event.Phase))
	}
	if event.Resource != "" {
		parts = append(parts, fmt.Sprintf("resource=%s", event.Resource))
	}
	parts = append(parts, event.Message)

	if len(event.Fields) > 0 {
		var fieldParts []string
		for k, v := range event.Fields {
			fieldParts = append(fieldParts, fmt.Sprintf("%s=%s", k, v))
		}
		parts = append(parts, fmt.Sprintf("(%s)", strings.Join(fieldParts, ", ")))
	}

	return strings.Join(parts, " ")
}

// NoopObserver discards everything. Useful in tests.
type NoopObserver struct{}

// Printf implements the Logger interface.
func (NoopObserver) Printf(string, ...interface{}) {}

// Event implements Observer interface.
func (NoopObserver) Event(Event) {}

// WithFields implements Observer interface.
func (n NoopObserver) WithFields(map[string]string) Observer { return n }
