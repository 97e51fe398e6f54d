package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	cfg "github.com/automoto/runngun/config"
)

var errBadScript = errors.New("invalid input script")

// scriptFile is the on-disk input script.
//
//	steps:
//	  - from: 0
//	    to: 120
//	    hold: [right]
//	  - from: 60
//	    to: 61
//	    hold: [jump]
type scriptFile struct {
	Steps []scriptStep `yaml:"steps"`
}

// scriptStep holds actions for ticks in [From, To).
type scriptStep struct {
	From int      `yaml:"from"`
	To   int      `yaml:"to"`
	Hold []string `yaml:"hold"`
}

type span struct {
	from, to int
	actions  []cfg.ActionID
}

// scriptSource replays a script as held actions, one tick per Poll.
type scriptSource struct {
	spans []span
	tick  int
}

func parseScript(data []byte) (*scriptSource, error) {
	var f scriptFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", errBadScript, err)
	}

	src := &scriptSource{}
	for i, step := range f.Steps {
		if step.From < 0 || step.To <= step.From {
			return nil, fmt.Errorf("%w: step %d has range [%d, %d)", errBadScript, i, step.From, step.To)
		}
		sp := span{from: step.From, to: step.To}
		for _, name := range step.Hold {
			id, ok := cfg.ParseAction(name)
			if !ok {
				return nil, fmt.Errorf("%w: step %d: unknown action %q", errBadScript, i, name)
			}
			sp.actions = append(sp.actions, id)
		}
		src.spans = append(src.spans, sp)
	}
	return src, nil
}

func loadScript(path string) (*scriptSource, error) {
	if path == "" {
		return &scriptSource{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script %s: %w", path, err)
	}
	return parseScript(data)
}

func (s *scriptSource) Poll(current *[cfg.ActionCount]bool) {
	for _, sp := range s.spans {
		if s.tick >= sp.from && s.tick < sp.to {
			for _, id := range sp.actions {
				current[id] = true
			}
		}
	}
	s.tick++
}
