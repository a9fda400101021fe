package domain_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/swagscan/internal/core/domain"
)

func TestTask_URL(t *testing.T) {
	task := domain.Task{Host: "a.test", Path: "/swagger-ui.html"}
	assert.Equal(t, "https://a.test/swagger-ui.html", task.URL())

	// No path joining is performed.
	task = domain.Task{Host: "a.test", Path: "docs"}
	assert.Equal(t, "https://a.testdocs", task.URL())
}

func TestTargets_Order(t *testing.T) {
	hosts := []string{"a.test", "b.test"}
	paths := []string{"/x", "/y", "/z"}

	got := slices.Collect(domain.Targets(hosts, paths))

	want := []domain.Task{
		{Host: "a.test", Path: "/x"},
		{Host: "a.test", Path: "/y"},
		{Host: "a.test", Path: "/z"},
		{Host: "b.test", Path: "/x"},
		{Host: "b.test", Path: "/y"},
		{Host: "b.test", Path: "/z"},
	}
	assert.Equal(t, want, got)
}

func TestTargets_CartesianProduct(t *testing.T) {
	for _, size := range []struct{ h, p int }{{1, 1}, {1, 7}, {5, 1}, {13, 11}} {
		t.Run(fmt.Sprintf("%dx%d", size.h, size.p), func(t *testing.T) {
			hosts := make([]string, size.h)
			for i := range hosts {
				hosts[i] = fmt.Sprintf("h%d.test", i)
			}
			paths := make([]string, size.p)
			for i := range paths {
				paths[i] = fmt.Sprintf("/p%d", i)
			}

			seen := make(map[domain.Task]bool)
			for task := range domain.Targets(hosts, paths) {
				require.False(t, seen[task], "duplicate task %v", task)
				seen[task] = true
			}

			assert.Len(t, seen, size.h*size.p)
			assert.Equal(t, size.h*size.p, domain.CountTargets(hosts, paths))
			for _, h := range hosts {
				for _, p := range paths {
					assert.True(t, seen[domain.Task{Host: h, Path: p}])
				}
			}
		})
	}
}

func TestTargets_Empty(t *testing.T) {
	assert.Empty(t, slices.Collect(domain.Targets(nil, []string{"/x"})))
	assert.Empty(t, slices.Collect(domain.Targets([]string{"a.test"}, nil)))
	assert.Equal(t, 0, domain.CountTargets([]string{"a.test"}, nil))
}

func TestTargets_DuplicatesKept(t *testing.T) {
	got := slices.Collect(domain.Targets([]string{"a.test", "a.test"}, []string{"/x"}))
	assert.Len(t, got, 2)
}

func TestTargets_EarlyStop(t *testing.T) {
	count := 0
	for range domain.Targets([]string{"a.test", "b.test"}, []string{"/x", "/y"}) {
		count++
		if count == 3 {
			break
		}
	}
	assert.Equal(t, 3, count)
}
