// SPDX-License-Identifier: MIT

package absence

import "runtime"

// panicWorkersInvalid is raised by WithWorkers on a negative count.
const panicWorkersInvalid = "absence: WithWorkers: workers must be >= 0"

// Option configures batch evaluation.
type Option func(*Options)

// Options is the effective batch configuration after applying Option setters.
type Options struct {
	workers int // 0 → runtime.GOMAXPROCS(0)
}

// WithWorkers bounds the number of patterns evaluated at once.
// Zero selects runtime.GOMAXPROCS(0).
//
// Errors:
//   - Panics when k < 0 (programmer error).
func WithWorkers(k int) Option {
	if k < 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = k }
}

// gatherOptions applies opts over the defaults in order; later setters win.
func gatherOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.workers == 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}

	return o
}
