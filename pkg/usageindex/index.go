// Package usageindex builds the reverse-reference index answering which
// prefabs, scenes and sibling scripts depend on each script in the catalog.
package usageindex

import (
	"github.com/avral/scriptscan/pkg/asset"
)

// ClosureFunc returns the transitive dependency closure of the given asset.
// It is supplied by the host; the index is purely a set-intersection layer
// over it.
type ClosureFunc func(root asset.Ref) (map[asset.GUID]struct{}, error)

// Index maps each catalog script's GUID to its reference record. Iteration
// order is unspecified.
type Index map[asset.GUID]*asset.Reference

// Stats summarizes one build for logging.
type Stats struct {
	Scripts      int
	Containers   int
	SkippedRoots int
}

// Build computes one reference record per catalog script by intersecting
// each container's and each script's dependency closure against the
// catalog. A root whose closure cannot be resolved contributes nothing;
// Build itself never fails.
func Build(scripts []asset.Script, containers []asset.Container, closureOf ClosureFunc) (Index, Stats) {
	stats := Stats{Scripts: len(scripts), Containers: len(containers)}

	index := make(Index, len(scripts))
	for _, script := range scripts {
		index[script.GUID] = asset.NewReference(script)
	}

	// Container pass: closure ∩ catalog, routed by container kind.
	for _, container := range containers {
		closure, err := closureOf(container.Ref)
		if err != nil {
			stats.SkippedRoots++
			continue
		}
		for guid := range closure {
			if ref, ok := index[guid]; ok {
				ref.AddContainer(container)
			}
		}
	}

	// Script pass: closure ∩ catalog minus the root itself.
	for _, script := range scripts {
		closure, err := closureOf(script.Ref)
		if err != nil {
			stats.SkippedRoots++
			continue
		}
		for guid := range closure {
			if ref, ok := index[guid]; ok {
				ref.AddReferencingScript(script)
			}
		}
	}

	return index, stats
}

// Attach fills AttachedObjects from the open scene's component enumeration.
// Attachments whose script is not in the index are ignored.
func Attach(index Index, attachments []asset.Attachment) {
	for _, attachment := range attachments {
		if ref, ok := index[attachment.ScriptGUID]; ok {
			ref.AddAttachedObject(attachment.ObjectID, attachment.ObjectName)
		}
	}
}
