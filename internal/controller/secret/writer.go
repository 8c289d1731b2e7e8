package secret

import (
	"context"
	"time"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/util/wait"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/withlazers/auto-secret-operator/internal/constants"
)

// conflictBackoff caps how often the full pipeline is re-run within one cycle
// when the optimistic-concurrency write is rejected. After exhaustion the
// cycle ends with a Failed outcome; the conflicting writer's own change
// triggers the next watch event anyway.
var conflictBackoff = wait.Backoff{
	Steps:    5,
	Duration: 100 * time.Millisecond,
	Factor:   2.0,
	Jitter:   0.1,
	Cap:      3 * time.Second,
}

// apply writes the generated values into the Secret, conditional on the
// resourceVersion captured when the instance was read. Keys that appeared in
// the meantime are left untouched; the write is additive only.
func (r *SecretReconciler) apply(ctx context.Context, instance *corev1.Secret, additions map[string][]byte) error {
	target := instance.DeepCopy()
	if target.Data == nil {
		target.Data = make(map[string][]byte, len(additions))
	}
	for key, value := range additions {
		if _, ok := target.Data[key]; ok {
			continue
		}
		target.Data[key] = value
	}
	return r.Update(ctx, target, client.FieldOwner(constants.FieldManager))
}
