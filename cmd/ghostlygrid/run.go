package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/samdwyer/ghostlygrid/internal/episode"
	"github.com/samdwyer/ghostlygrid/internal/grid"
	"github.com/samdwyer/ghostlygrid/internal/logging"
	"github.com/samdwyer/ghostlygrid/internal/registry"
)

func newRunCmd(flags *envFlags) *cobra.Command {
	var (
		episodes int
		maxSteps int
		policy   string
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Play episodes with a built-in policy and report the results",
		RunE: func(cmd *cobra.Command, args []string) error {
			if episodes <= 0 {
				return fmt.Errorf("episodes must be positive (got %d)", episodes)
			}
			cfg, err := flags.resolve(cmd, "")
			if err != nil {
				return err
			}
			e, err := registry.Make(flags.id, cfg)
			if err != nil {
				return err
			}
			defer e.Close()

			p, err := buildPolicy(policy, cfg.Seed)
			if err != nil {
				return err
			}
			if maxSteps <= 0 {
				if spec, ok := registry.Lookup(flags.id); ok {
					maxSteps = spec.MaxEpisodeSteps
				}
			}

			logger := logging.Logger("run")
			logger.Info().
				Str("env", flags.id).
				Int("size", cfg.Size).
				Int("episodes", episodes).
				Str("policy", policy).
				Int64("seed", cfg.Seed).
				Msg("run config")

			runner := episode.NewRunner(maxSteps, func(step int, res grid.StepResult) {
				obs, _ := json.Marshal(res.Observation)
				logger.Debug().
					Int("step", step).
					RawJSON("observation", obs).
					Int("reward", int(res.Reward)).
					Bool("done", res.Done).
					Msg("step")
			})

			var summary episode.Summary
			for ep := 1; ep <= episodes; ep++ {
				if s, ok := p.(*episode.ScriptedPolicy); ok {
					s.Reset()
				}
				result, err := runner.Run(cmd.Context(), e, p)
				if err != nil {
					return fmt.Errorf("episode %d: %w", ep, err)
				}
				summary.Add(result)
				logger.Info().
					Int("episode", ep).
					Str("id", result.ID.String()).
					Int("steps", result.Steps).
					Int("reward", result.TotalReward).
					Stringer("outcome", result.Outcome).
					Msg("episode")
			}

			logger.Info().
				Int("episodes", summary.Episodes).
				Int("escaped", summary.Escaped).
				Int("caught", summary.Caught).
				Int("truncated", summary.Truncated).
				Float64("success_rate", summary.SuccessRate()).
				Float64("mean_steps", summary.MeanSteps()).
				Msg("summary")
			return nil
		},
	}
	cmd.Flags().IntVar(&episodes, "episodes", 1, "number of episodes")
	cmd.Flags().IntVar(&maxSteps, "max-steps", 0, "step cap per episode (0 uses the registered cap)")
	cmd.Flags().StringVar(&policy, "policy", "random", "agent policy: random or stairs")
	return cmd
}

func buildPolicy(name string, seed int64) (episode.Policy, error) {
	switch name {
	case "random":
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		// Offset so the policy does not replay the environment's own draws.
		return episode.NewRandomPolicy(rand.New(rand.NewSource(seed + 1))), nil
	case "stairs":
		return episode.NewScriptedPolicy(grid.ActionRight, grid.ActionDown), nil
	default:
		return nil, fmt.Errorf("unknown policy %q", name)
	}
}
