package manifest

import "time"

// Resolve selects the current entry: removed entries are skipped and the
// highest remaining sequence id wins. A stack whose sequence ids disagree with
// its order fails with an OrderingViolationError instead of yielding a guess.
func Resolve(stack *InstallStack) (StackEntry, error) {
	if stack == nil {
		return StackEntry{}, ErrNoCurrentEntry
	}
	if err := checkOrdering(stack.Entries); err != nil {
		return StackEntry{}, err
	}
	best := -1
	for i, entry := range stack.Entries {
		if entry.Removed {
			continue
		}
		if best < 0 || entry.Sequence > stack.Entries[best].Sequence {
			best = i
		}
	}
	if best < 0 {
		return StackEntry{}, ErrNoCurrentEntry
	}
	return stack.Entries[best], nil
}

// ResolveAt resolves the stack as it stood at the given instant: entries
// installed after at are ignored.
func ResolveAt(stack *InstallStack, at time.Time) (StackEntry, error) {
	if stack == nil {
		return StackEntry{}, ErrNoCurrentEntry
	}
	if err := checkOrdering(stack.Entries); err != nil {
		return StackEntry{}, err
	}
	visible := make([]StackEntry, 0, len(stack.Entries))
	for _, entry := range stack.Entries {
		if !entry.InstalledAt.After(at) {
			visible = append(visible, entry)
		}
	}
	return Resolve(&InstallStack{
		ManifestPath: stack.ManifestPath,
		Schema:       stack.Schema,
		Entries:      visible,
	})
}
