package main

import (
	"github.com/praxishq/praxis/internal/command"
	"github.com/praxishq/praxis/internal/command/opportunity"
	"github.com/praxishq/praxis/internal/command/progress"
	"github.com/praxishq/praxis/internal/command/serve"
)

func main() {
	command.Main(
		"praxis",
		"Consulting engagement dashboard",
		serve.Command(),
		progress.Command(),
		opportunity.Command(),
	)
}
