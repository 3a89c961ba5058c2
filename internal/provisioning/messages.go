package provisioning

import "fmt"

// messages is the user-facing error catalog, one template per failure kind.
// Templates with a %s slot receive the affected resource or config name.
var messages = map[ErrorKind]string{
	KindMessageEndpointUpdating:   "failed to update the bot messaging endpoint",
	KindProvisioning:              "failed to provision %s",
	KindConfigUpdating:            "failed to update %s",
	KindListPublishingCredentials: "failed to list publishing credentials for %s",
	KindZipDeploy:                 "failed to deploy the package to %s",
	KindDeployStatus:              "deployment reported a failure status",
	KindDeployTimeout:             "deployment did not finish within the retry budget",
	KindRestartWebApp:             "failed to restart %s",
}

// messageFor renders the catalog entry for a kind. Unknown kinds fall back
// to a generic message so an Error is always printable.
func messageFor(kind ErrorKind, resource string) string {
	tmpl, ok := messages[kind]
	if !ok {
		if resource != "" {
			return fmt.Sprintf("provisioning failed for %s", resource)
		}
		return "provisioning failed"
	}

	switch kind {
	case KindProvisioning, KindConfigUpdating, KindListPublishingCredentials, KindZipDeploy, KindRestartWebApp:
		if resource == "" {
			resource = "resource"
		}
		return fmt.Sprintf(tmpl, resource)
	default:
		return tmpl
	}
}
