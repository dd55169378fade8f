package playground

import (
	"fmt"

	"github.com/utkarsh5026/pollme/internal/config"
)

// Scenario is a named, runnable demonstration with a one-line summary of its
// outcome.
type Scenario struct {
	Name    string
	Short   string
	Workers int // pooled workers it spawns, for progress reporting
	Run     func() (string, error)
}

// Scenarios returns every scenario configured from cfg, in the order the
// original walkthrough ran them.
func (p *Playground) Scenarios(cfg config.Config) []Scenario {
	mode, _ := cfg.Mode()

	inputs := make([]int, cfg.Workers)
	for i := range inputs {
		inputs[i] = i
	}

	return []Scenario{
		{
			Name:    "threads",
			Short:   "spawn and join worker threads",
			Workers: cfg.Workers,
			Run: func() (string, error) {
				r, err := p.HelloThreads(cfg.Workers)
				return fmt.Sprintf("%d greetings", len(r.Greetings)), err
			},
		},
		{
			Name:    "shared",
			Short:   "increment shared counters behind a mutex",
			Workers: cfg.Workers,
			Run: func() (string, error) {
				r, err := p.SharedCounters(cfg.Workers, cfg.Initial)
				return fmt.Sprint(r.Slots), err
			},
		},
		{
			Name:  "poison",
			Short: "observe a lock poisoned by a panicking holder",
			Run: func() (string, error) {
				r, err := p.PoisonDemo(cfg.Workers, cfg.Initial)
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("poisoned, data %v", r.Slots), nil
			},
		},
		{
			Name:  "roundtrip",
			Short: "send one message to a worker and back",
			Run: func() (string, error) {
				r, err := p.RoundTrip(cfg.Message)
				return fmt.Sprintf("%q", r.Reply), err
			},
		},
		{
			Name:    "workers",
			Short:   "one request/response channel pair per worker",
			Workers: cfg.Workers,
			Run: func() (string, error) {
				r, err := p.RequestResponse(inputs)
				return fmt.Sprint(r), err
			},
		},
		{
			Name:  "countdown",
			Short: "join countdown futures on an inline executor",
			Run: func() (string, error) {
				r := p.Countdowns(cfg.Countdowns, mode)
				return fmt.Sprintf("%d results in %d polls", len(r.Results), r.Polls), nil
			},
		},
		{
			Name:  "chains",
			Short: "sequentially composed futures",
			Run: func() (string, error) {
				r := p.Chains(mode)
				return fmt.Sprintf("sum=%d calculate=%d", r.Sum, r.Calculated), nil
			},
		},
	}
}
