// Package provisioning implements the bot hosting workflow: updating the
// bot channel registration, linking the Teams channel, creating or updating
// the hosting site, pushing the deployment package and waiting for the
// deployment to finish.
//
// The package is organized around three pieces:
//   - Executor: wraps each remote call with a uniform call-then-validate
//     contract and maps failures onto the typed error taxonomy in errors.go.
//   - Poller: turns the asynchronous deployment into a bounded synchronous
//     wait with fixed backoff.
//   - Phase pipeline: runs the workflow steps strictly in sequence over a
//     shared Context/State pair.
package provisioning
