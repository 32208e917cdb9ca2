// Package runner drives one browser-agent run from instruction to report.
package runner

import (
	"context"
	"fmt"
	"io"

	"github.com/browserpilot/browserpilot/internal/llm"
)

// Config is everything the agent collaborator needs for a run. Vision stays
// on so the agent can ground itself on screenshots, and the browser stays
// visible so the run can be watched.
type Config struct {
	Task      string
	Model     llm.Config
	UseVision bool
	Headless  bool
}

// Agent is the run-to-completion surface of the browser-agent collaborator.
// The returned report is opaque text, displayed verbatim.
type Agent interface {
	Run() (string, error)
}

// Factory builds an agent bound to a run configuration. Construction may
// reach the network (model client setup), so it takes a context.
type Factory func(ctx context.Context, cfg Config) (Agent, error)

// Runner performs the single instruction → agent → report sequence.
type Runner struct {
	newAgent Factory
	out      io.Writer
}

func New(newAgent Factory, out io.Writer) *Runner {
	return &Runner{newAgent: newAgent, out: out}
}

// Run announces the instruction, hands it to a freshly built agent, blocks
// until the agent finishes and prints its report. Every error returns
// unmodified; there is no retry and no partial-result path.
func (r *Runner) Run(ctx context.Context, model llm.Config, instruction string) error {
	fmt.Fprintf(r.out, "🤖 AGENT ACTIVATED: %s\n", instruction)

	ag, err := r.newAgent(ctx, Config{
		Task:      instruction,
		Model:     model,
		UseVision: true,
		Headless:  false,
	})
	if err != nil {
		return err
	}

	report, err := ag.Run()
	if err != nil {
		return err
	}

	fmt.Fprintf(r.out, "\n✅ REPORT:\n %s\n", report)
	return nil
}
