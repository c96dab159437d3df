package domain

import (
	"maps"
	"slices"
)

// DefaultGroupName is the name of the group that holds every member target.
const DefaultGroupName = "default"

// Target is one buildable unit of the bake file.
type Target struct {
	Context    string            `json:"context"`
	Dockerfile string            `json:"dockerfile"`
	Tags       []string          `json:"tags"`
	DependsOn  []string          `json:"depends_on"`
	Contexts   map[string]string `json:"contexts,omitempty"`
}

// Equal reports whether t and other describe the same target.
// Nil and empty collections compare equal.
func (t *Target) Equal(other *Target) bool {
	return t.Context == other.Context &&
		t.Dockerfile == other.Dockerfile &&
		slices.Equal(t.Tags, other.Tags) &&
		slices.Equal(t.DependsOn, other.DependsOn) &&
		maps.Equal(t.Contexts, other.Contexts)
}

// Group is a named, ordered collection of target names.
type Group struct {
	Targets []string `json:"targets"`
}

// BakeFile is the complete build orchestration descriptor.
type BakeFile struct {
	Group  map[string]Group  `json:"group"`
	Target map[string]Target `json:"target"`
}

// NewBakeFile returns an empty bake file.
func NewBakeFile() *BakeFile {
	return &BakeFile{
		Group:  make(map[string]Group),
		Target: make(map[string]Target),
	}
}

// GroupNames returns the group names in lexicographic order.
func (b *BakeFile) GroupNames() []string {
	return slices.Sorted(maps.Keys(b.Group))
}

// TargetNames returns the target names with the root first and the
// remaining names in lexicographic order.
func (b *BakeFile) TargetNames() []string {
	names := make([]string, 0, len(b.Target))
	_, hasRoot := b.Target[RootTargetName]
	for name := range b.Target {
		if name != RootTargetName {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	if hasRoot {
		names = append([]string{RootTargetName}, names...)
	}
	return names
}

// Equal reports whether b and other hold the same groups and targets.
func (b *BakeFile) Equal(other *BakeFile) bool {
	return len(b.Diff(other)) == 0
}

// Diff returns a sorted list of keys ("group.<name>" or "target.<name>")
// whose definitions differ between b and other.
func (b *BakeFile) Diff(other *BakeFile) []string {
	var diff []string
	for name := range mergedKeys(b.Group, other.Group) {
		left, inLeft := b.Group[name]
		right, inRight := other.Group[name]
		if inLeft != inRight || !slices.Equal(left.Targets, right.Targets) {
			diff = append(diff, "group."+name)
		}
	}
	for name := range mergedKeys(b.Target, other.Target) {
		left, inLeft := b.Target[name]
		right, inRight := other.Target[name]
		if inLeft != inRight || !left.Equal(&right) {
			diff = append(diff, "target."+name)
		}
	}
	slices.Sort(diff)
	return diff
}

func mergedKeys[V any](a, b map[string]V) map[string]struct{} {
	keys := make(map[string]struct{}, len(a)+len(b))
	for k := range a {
		keys[k] = struct{}{}
	}
	for k := range b {
		keys[k] = struct{}{}
	}
	return keys
}
