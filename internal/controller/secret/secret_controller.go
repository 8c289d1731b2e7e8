/*
Copyright 2023.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package secret

import (
	"context"
	"fmt"
	"strings"

	olpredicate "github.com/operator-framework/operator-lib/predicate"
	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/tools/record"
	"k8s.io/client-go/util/retry"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/builder"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller"
	"sigs.k8s.io/controller-runtime/pkg/event"
	ctrllog "sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/predicate"

	"github.com/withlazers/auto-secret-operator/internal/annotations"
	"github.com/withlazers/auto-secret-operator/internal/config"
	"github.com/withlazers/auto-secret-operator/internal/generator"
	"github.com/withlazers/auto-secret-operator/internal/genspec"
	"github.com/withlazers/auto-secret-operator/internal/metrics"
)

// Event reasons emitted on reconciled Secrets.
const (
	EventGenerated         = "Generated"
	EventInvalidAnnotation = "InvalidAnnotation"
	EventGenerationFailed  = "GenerationFailed"
)

// SecretReconciler fills in missing data keys of annotated Secrets with
// freshly generated values. Existing keys are never read back or rewritten.
type SecretReconciler struct {
	client.Client
	// Reader bypasses the cache; conflict retries re-read through it so the
	// re-plan is based on the state that won the race.
	Reader   client.Reader
	Scheme   *runtime.Scheme
	Recorder record.EventRecorder
	Registry *generator.Registry
}

//+kubebuilder:rbac:groups=core,resources=secrets,verbs=get;list;watch;update;patch
//+kubebuilder:rbac:groups=core,resources=events,verbs=create;patch

func (r *SecretReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	rlog := ctrllog.FromContext(ctx).WithName("controller").WithName("secret")
	rlog.V(1).Info("Reconciling Secret", "request", req)

	var outcome Outcome
	attempt := 0
	err := retry.RetryOnConflict(conflictBackoff, func() error {
		reader := client.Reader(r.Client)
		if attempt > 0 {
			// the cache may still hold the version that just conflicted
			reader = r.Reader
		}
		attempt++

		var reconcileErr error
		outcome, reconcileErr = r.reconcile(ctx, reader, req)
		return reconcileErr
	})

	if err != nil {
		if apierrors.IsConflict(err) {
			// The competing write produces its own watch event, so there is a
			// fresh cycle coming without an explicit requeue.
			outcome = failed("conflict retries exhausted")
			err = nil
		} else {
			outcome = failed(err.Error())
		}
	}

	metrics.ReconcileOutcomes.WithLabelValues(string(outcome.Kind)).Inc()
	if outcome.Kind == OutcomePatched {
		metrics.GeneratedKeys.Add(float64(len(outcome.Keys)))
	}
	rlog.V(1).Info("Reconciled Secret", "outcome", outcome.String(), "attempts", attempt)

	if err != nil {
		return ctrl.Result{}, err
	}
	switch outcome.Kind {
	case OutcomeNoOp, OutcomePatched:
		// periodic pass to heal missed watch events
		return ctrl.Result{RequeueAfter: config.RequeueInterval}, nil
	default:
		// Failed parse or generation will not fix itself without a human
		// editing the annotation; wait for the next natural event.
		return ctrl.Result{}, nil
	}
}

// reconcile runs one full pass of the pipeline from a fresh read:
// fetch, filter, parse, plan, generate, apply.
func (r *SecretReconciler) reconcile(ctx context.Context, reader client.Reader, req ctrl.Request) (Outcome, error) {
	instance := &corev1.Secret{}
	if err := reader.Get(ctx, req.NamespacedName, instance); err != nil {
		if apierrors.IsNotFound(err) {
			return skipped("secret no longer exists"), nil
		}
		return Outcome{}, fmt.Errorf("fetching secret: %w", err)
	}

	annotation := instance.Annotations[annotations.Generate]
	if strings.TrimSpace(annotation) == "" {
		return skipped("no generation annotation"), nil
	}

	spec, err := genspec.Parse(annotation, r.Registry)
	if err != nil {
		r.Recorder.Event(instance, corev1.EventTypeWarning, EventInvalidAnnotation, err.Error())
		return failed(err.Error()), nil
	}

	planned := spec.Plan(instance.Data)
	if len(planned) == 0 {
		return noOp(), nil
	}

	additions := make(map[string][]byte, len(planned))
	keys := make([]string, 0, len(planned))
	var generatorErrs []string
	for _, entry := range planned {
		value, err := r.Registry.Generate(entry.Kind, entry.Params)
		if err != nil {
			generatorErrs = append(generatorErrs, fmt.Sprintf("key %q: %v", entry.Key, err))
			continue
		}
		additions[entry.Key] = value
		keys = append(keys, entry.Key)
	}
	if len(generatorErrs) > 0 {
		// partial generation is never written
		reason := strings.Join(generatorErrs, "; ")
		r.Recorder.Event(instance, corev1.EventTypeWarning, EventGenerationFailed, reason)
		return failed(reason), nil
	}

	if err := r.apply(ctx, instance, additions); err != nil {
		// conflicts must reach RetryOnConflict unwrapped
		return Outcome{}, err
	}

	r.Recorder.Eventf(instance, corev1.EventTypeNormal, EventGenerated,
		"Generated values for keys [%s]", strings.Join(keys, ", "))
	return patched(keys), nil
}

// SetupWithManager sets up the controller with the Manager.
func (r *SecretReconciler) SetupWithManager(mgr ctrl.Manager) error {
	// Filter out with the pause annotation.
	pause, err := olpredicate.NewPause(annotations.PausedReconciliation)
	if err != nil {
		return err
	}

	hasGenAnnotation := predicate.NewPredicateFuncs(func(object client.Object) bool {
		return strings.TrimSpace(object.GetAnnotations()[annotations.Generate]) != ""
	})

	ignoreDelete := predicate.Funcs{
		DeleteFunc: func(event.DeleteEvent) bool { return false },
	}

	return ctrl.NewControllerManagedBy(mgr).
		WithEventFilter(pause).
		For(&corev1.Secret{}, builder.WithPredicates(hasGenAnnotation, ignoreDelete)).
		WithOptions(controller.Options{MaxConcurrentReconciles: config.MaxConcurrentReconciles}).
		Complete(r)
}
