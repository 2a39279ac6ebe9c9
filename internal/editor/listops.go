package editor

// List mutations are copy-on-write: callers get a fresh slice and the input
// is never modified, so snapshots handed out earlier stay stable.

func appendItem[T any](s []T, item T) []T {
	out := make([]T, len(s), len(s)+1)
	copy(out, s)
	return append(out, item)
}

func removeAt[T any](s []T, i int) ([]T, bool) {
	if i < 0 || i >= len(s) {
		return s, false
	}
	out := make([]T, 0, len(s)-1)
	out = append(out, s[:i]...)
	out = append(out, s[i+1:]...)
	return out, true
}

func patchAt[T any](s []T, i int, patch func(*T)) ([]T, bool) {
	if i < 0 || i >= len(s) {
		return s, false
	}
	out := make([]T, len(s))
	copy(out, s)
	patch(&out[i])
	return out, true
}
