package episode

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/ghostlygrid/internal/grid"
	"github.com/samdwyer/ghostlygrid/internal/logging"
	"github.com/samdwyer/ghostlygrid/internal/registry"
	"github.com/samdwyer/ghostlygrid/internal/telemetry"
)

// DefaultMaxSteps caps an episode when the caller sets no limit.
const DefaultMaxSteps = 200

// StepFunc observes every transition of an episode.
type StepFunc func(step int, res grid.StepResult)

// Result summarises one finished episode.
type Result struct {
	ID          uuid.UUID
	Steps       int
	TotalReward int
	Outcome     grid.Outcome
}

// Runner resets an environment and steps it with a policy until the episode
// ends or MaxSteps is reached.
type Runner struct {
	MaxSteps int
	OnStep   StepFunc

	tracer   trace.Tracer
	episodes metric.Int64Counter
	log      zerolog.Logger
}

// NewRunner creates a runner. A non-positive maxSteps uses DefaultMaxSteps.
func NewRunner(maxSteps int, onStep StepFunc) *Runner {
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}
	r := &Runner{
		MaxSteps: maxSteps,
		OnStep:   onStep,
		tracer:   telemetry.Tracer("episode"),
		log:      logging.Logger("episode"),
	}
	counter, err := telemetry.Meter("episode").Int64Counter(
		"ghostlygrid.episodes",
		metric.WithDescription("Finished episodes by outcome"),
	)
	if err == nil {
		r.episodes = counter
	}
	return r
}

// Run plays one episode. Context cancellation is checked between steps; a
// cancelled run returns the partial result with a truncated outcome.
func (r *Runner) Run(ctx context.Context, env registry.Env, policy Policy) (Result, error) {
	result := Result{ID: uuid.New(), Outcome: grid.OutcomeRunning}

	ctx, span := r.tracer.Start(ctx, "episode.run",
		trace.WithAttributes(attribute.String("episode.id", result.ID.String())),
	)
	defer span.End()

	obs, _, err := env.Reset()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "reset failed")
		return result, fmt.Errorf("reset: %w", err)
	}

	for result.Steps < r.MaxSteps {
		if err := ctx.Err(); err != nil {
			result.Outcome = grid.OutcomeTruncated
			r.finish(ctx, span, result)
			return result, err
		}

		res, err := env.Step(policy.Act(obs))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "step failed")
			return result, fmt.Errorf("step %d: %w", result.Steps+1, err)
		}
		result.Steps++
		result.TotalReward += int(res.Reward)
		obs = res.Observation
		if r.OnStep != nil {
			r.OnStep(result.Steps, res)
		}
		if res.Done {
			result.Outcome = res.Outcome
			r.finish(ctx, span, result)
			return result, nil
		}
	}

	result.Outcome = grid.OutcomeTruncated
	r.finish(ctx, span, result)
	return result, nil
}

func (r *Runner) finish(ctx context.Context, span trace.Span, result Result) {
	span.SetAttributes(
		attribute.Int("episode.steps", result.Steps),
		attribute.Int("episode.reward", result.TotalReward),
		attribute.String("episode.outcome", result.Outcome.String()),
	)
	if r.episodes != nil {
		r.episodes.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", result.Outcome.String())))
	}
	r.log.Debug().
		Str("episode", result.ID.String()).
		Int("steps", result.Steps).
		Int("reward", result.TotalReward).
		Stringer("outcome", result.Outcome).
		Msg("episode complete")
}
