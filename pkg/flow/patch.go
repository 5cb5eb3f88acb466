package flow

// PatchByKey applies a server-confirmed delta to the single record that
// matches, leaving every other entry untouched, and reports whether a
// record was patched. This is the update strategy behind every admin list:
// mutate one entry in local state after the server acknowledges the write,
// never refetch the collection, never patch before confirmation.
func PatchByKey[T any](items []T, match func(T) bool, apply func(*T)) bool {
	for i := range items {
		if match(items[i]) {
			apply(&items[i])
			return true
		}
	}
	return false
}
