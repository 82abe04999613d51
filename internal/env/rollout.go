package env

import "time"

// EpisodeResult summarizes one full episode rollout.
type EpisodeResult struct {
	Steps      int
	Score      int32
	Lines      int
	Reward     float64
	Terminated bool
	Duration   time.Duration
}

// RunEpisode drives the environment with the given policy until the episode
// terminates or maxSteps actions have been applied. maxSteps is a host-side
// truncation guard; the engine itself has no step limit.
func RunEpisode(e *Env, p Policy, maxSteps int) EpisodeResult {
	start := time.Now()

	obs, state := e.Reset()
	var result EpisodeResult
	for result.Steps < maxSteps {
		step := e.Step(p.Select(obs, state))
		obs = step.Observation
		state = step.Info
		result.Steps++
		result.Reward += step.Reward
		if step.Terminated {
			result.Terminated = true
			break
		}
	}

	result.Score = state.Score
	result.Lines = e.Lines()
	result.Duration = time.Since(start)
	return result
}
