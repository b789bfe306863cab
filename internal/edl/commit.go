package edl

import (
	"path/filepath"
	"sort"
)

// commit runs the atomic write-out phase after the command list finishes
// without a fatal error. It stages every mutation summary in memory first,
// then writes files one at a time in a deterministic (sorted-path) order,
// stopping at the first write failure. Files written before a failure stay
// written; the engine does not roll them back.
func (st *executionState) commit() (*RunOutput, *RunError) {
	var mutations []FileMutation
	for _, path := range st.touched {
		doc := st.docs[path]
		if !doc.Modified {
			continue
		}
		mutations = append(mutations, FileMutation{
			Path:    path,
			Content: doc.Text,
			Summary: buildSummary(st.acc[path], doc.Original, doc.Text),
		})
	}

	sort.Slice(mutations, func(i, j int) bool { return mutations[i].Path < mutations[j].Path })

	for _, m := range mutations {
		doc := st.docs[m.Path]
		if doc.IsNew {
			if err := st.fileIO.MkdirAll(st.ctx, filepath.Dir(m.Path)); err != nil {
				return nil, &RunError{Err: newEngineError(ErrCommitFailed, m.Path, "%s", err), Trace: st.trace}
			}
		}
		if err := st.fileIO.WriteFile(st.ctx, m.Path, m.Content); err != nil {
			return nil, &RunError{Err: newEngineError(ErrCommitFailed, m.Path, "%s", err), Trace: st.trace}
		}
	}

	var finalSelection []Range
	if st.current != nil {
		finalSelection = st.selection.Ranges
	}

	return &RunOutput{
		Mutations:      mutations,
		Trace:          st.trace,
		FileErrors:     st.fileErrors,
		FinalSelection: finalSelection,
		Committed:      true,
	}, nil
}

// buildSummary finalizes a document's FileMutationSummary. Lines are
// counted by newline; LinesAdded/LinesRemoved are the absolute-value
// difference in line count between original and final.
func buildSummary(acc *mutationCounts, original, final string) FileMutationSummary {
	o := countLines(original)
	f := countLines(final)
	added, removed := 0, 0
	if f > o {
		added = f - o
	} else if o > f {
		removed = o - f
	}
	return FileMutationSummary{
		Replacements: acc.replacements,
		Insertions:   acc.insertions,
		Deletions:    acc.deletions,
		LinesAdded:   added,
		LinesRemoved: removed,
	}
}

func countLines(s string) int {
	if s == "" {
		return 0
	}
	n := 1
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			n++
		}
	}
	return n
}
