// Package bench times every resolved named Catena instance bundle
// back-to-back and presents the results either as a plain-text table or
// through a small interactive bubbletea program.
package bench

import (
	"fmt"
	"time"

	"github.com/r2unit/catena/pkg/instances"
)

// Result is one instance bundle's measured Hash call.
type Result struct {
	Name     string
	Duration time.Duration
	Err      error
}

// Run hashes pwd/salt/ad through every named instance bundle Names lists,
// skipping Mydasfly (which has no resolved parameters to time), and
// returns one Result per bundle in that order.
func Run(pwd, salt, ad []byte, m int) []Result {
	names := instances.Names()
	results := make([]Result, 0, len(names))

	for _, name := range names {
		inst, ok := instances.Named(name)
		if !ok {
			continue
		}

		start := time.Now()
		_, err := inst.Hash(pwd, salt, ad, m)
		elapsed := time.Since(start)

		results = append(results, Result{Name: name, Duration: elapsed, Err: err})
	}

	return results
}

// Summary renders results as the plain-text table the headless `catena
// bench` subcommand prints when it isn't running interactively.
func Summary(results []Result) string {
	out := ""
	for _, r := range results {
		if r.Err != nil {
			out += fmt.Sprintf("%-16s  ERROR: %v\n", r.Name, r.Err)
			continue
		}
		out += fmt.Sprintf("%-16s  %s\n", r.Name, r.Duration)
	}
	return out
}
