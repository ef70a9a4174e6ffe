package version

import (
	"context"
	"fmt"
	"sensocket/domain/app"
	"strings"
)

// Tag will be set via ldflags by CI release workflow
var Tag = "version not set"

// Current returns the release tag without surrounding whitespace.
func Current() string {
	return strings.TrimSpace(Tag)
}

type Runner struct{}

func NewRunner() *Runner { return &Runner{} }

func (r *Runner) Run(_ context.Context) {
	fmt.Printf("%s %s\n",
		app.Name,
		Current(),
	)
}
