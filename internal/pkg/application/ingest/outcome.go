package ingest

import (
	"context"
	"fmt"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

// outcome records how a single pipeline step went. Steps are either
// required (a failure fails the whole event) or best effort (a failure is
// logged and the event still succeeds).
type outcome struct {
	step  string
	err   error
	fatal bool
}

func stepOk(step string) outcome {
	return outcome{step: step}
}

func stepDegraded(step string, err error) outcome {
	return outcome{step: step, err: err}
}

func stepFatal(step string, err error) outcome {
	return outcome{step: step, err: err, fatal: true}
}

// reduce collapses the outcomes of one pipeline run. Degraded steps are
// logged as warnings; the first fatal failure is returned.
func reduce(ctx context.Context, outcomes []outcome) error {
	log := logging.GetFromContext(ctx)

	var fatal error

	for _, o := range outcomes {
		if o.err == nil {
			continue
		}

		if o.fatal {
			if fatal == nil {
				fatal = fmt.Errorf("%s: %w", o.step, o.err)
			}
			continue
		}

		log.Warn("event processing step failed", "step", o.step, "err", o.err.Error())
	}

	return fatal
}
