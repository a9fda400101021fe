// Package domain contains the core scan model: tasks, outcomes and the target generator.
package domain

// Scheme is prepended to every probe target.
const Scheme = "https://"

// Task is a single probe unit: one host combined with one path suffix.
type Task struct {
	Host string
	Path string
}

// URL returns the probe target. Host and Path are concatenated verbatim,
// so the path suffix is expected to carry its own leading slash.
func (t Task) URL() string {
	return Scheme + t.Host + t.Path
}

// TargetAttribute is the span attribute that carries Task.URL.
const TargetAttribute = "url.full"
