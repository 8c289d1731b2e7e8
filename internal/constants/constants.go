package constants

const (
	AppName = "auto-secret-operator"

	// FieldManager identifies this operator's writes in managedFields.
	FieldManager = "auto-secret.k8s.eboland.de"
)
