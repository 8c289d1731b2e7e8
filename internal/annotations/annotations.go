// Package annotations provides keys for Kubernetes annotations used to
// configure the behavior of the operator on managed Secrets.
//
// # Annotation: auto-secret.k8s.eboland.de/gen
//
// [Generate] declares which data keys of a Secret must hold generated values.
// Its value is one entry per line in the form "KEY: GENERATOR", where
// GENERATOR is a generator kind optionally followed by parameters:
//
//	apiVersion: v1
//	kind: Secret
//	metadata:
//	  name: example
//	  annotations:
//	    auto-secret.k8s.eboland.de/gen: |
//	      PASSWORD: default
//	      TOKEN: hex:length=8
//	      SESSION_ID: uuid
//
// Keys already present in the Secret's data are left untouched; the operator
// fills in only the missing ones.
//
// # Annotation: auto-secret.k8s.eboland.de/pause-reconciliation
//
// [PausedReconciliation] pauses the reconciliation of a Secret.
//
// Note: Use with caution, as paused resources will not receive updates from the operator.
//
// Options:
//   - "true": Disables reconciliation by the operator.
//   - "false": Enables reconciliation by the operator.
package annotations

const (
	// Generate defines the annotation key holding the generation spec.
	Generate = "auto-secret.k8s.eboland.de/gen"

	// PausedReconciliation defines the annotation key used to pause reconciliation for a resource.
	PausedReconciliation = "auto-secret.k8s.eboland.de/pause-reconciliation"
)
