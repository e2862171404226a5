// Package dispatch executes ordered command batches under a configurable
// failure policy and produces structured execution reports. This is the only
// place batch semantics are decided; single commands are never retried.
package dispatch

import (
	"time"

	"github.com/halvard/dungeon/types"
)

// Policy controls how a batch reacts to a failing command.
type Policy string

const (
	// FailEarly stops at the first failure and marks the rest skipped.
	FailEarly Policy = "fail-early"
	// BestEffort runs every command regardless of prior failures.
	BestEffort Policy = "best-effort"
)

// Executor runs a single command against the world.
type Executor interface {
	Execute(command string) types.CommandOutput
}

// ExecutorFunc adapts a function to the Executor interface.
type ExecutorFunc func(command string) types.CommandOutput

func (f ExecutorFunc) Execute(command string) types.CommandOutput {
	return f(command)
}

// Run executes commands in order under the given policy. Each command
// observes all effects of the commands before it. The returned report is
// fresh per call and not mutated afterwards.
func Run(commands []string, policy Policy, exec Executor) types.ExecutionReport {
	if policy != BestEffort {
		policy = FailEarly
	}

	report := types.ExecutionReport{
		Policy:  string(policy),
		Total:   len(commands),
		Success: true,
		Started: time.Now(),
	}

	failed := false
	for _, command := range commands {
		if failed && policy == FailEarly {
			report.Results = append(report.Results, types.CommandResult{
				Command: command,
				Skipped: true,
			})
			report.Skipped++
			continue
		}

		start := time.Now()
		out := exec.Execute(command)
		result := types.CommandResult{
			Command: command,
			Output:  out,
			Success: out.Success,
			Started: start,
			Ended:   time.Now(),
		}
		report.Results = append(report.Results, result)
		report.Executed++
		if out.Success {
			report.Successful++
		} else {
			report.Failed++
			report.Success = false
			failed = true
		}
	}

	report.Ended = time.Now()
	return report
}
