package domain

import "iter"

// Targets yields the cartesian product of hosts and paths in host-major,
// path-minor order. Either list being empty yields nothing.
func Targets(hosts, paths []string) iter.Seq[Task] {
	return func(yield func(Task) bool) {
		if len(paths) == 0 {
			return
		}
		for _, host := range hosts {
			for _, path := range paths {
				if !yield(Task{Host: host, Path: path}) {
					return
				}
			}
		}
	}
}

// CountTargets returns the number of tasks Targets will yield.
func CountTargets(hosts, paths []string) int {
	return len(hosts) * len(paths)
}
