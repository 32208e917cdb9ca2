package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"

	"github.com/browserpilot/browserpilot/internal/dotenv"
	"github.com/browserpilot/browserpilot/internal/llm"
	"github.com/browserpilot/browserpilot/internal/runner"
	"github.com/browserpilot/browserpilot/internal/task"
)

func main() {
	dotenv.Load()

	ctx := context.Background()
	instruction := task.FromArgs(os.Args[1:])

	r := runner.New(runner.BrowserUse, os.Stdout)
	if err := r.Run(ctx, llm.NewConfig(), instruction); err != nil {
		log.Fatal(err)
	}
}
