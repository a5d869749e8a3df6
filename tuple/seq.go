package tuple

// Seq is a lazy, finite, one-pass sequence of values in yield-function form.
// A Seq produced from a live source must not be assumed restartable.
type Seq[V any] func(yield func(V) bool)

// Collect drains seq into a slice.
func Collect[V any](seq Seq[V]) []V {
	var out []V
	seq(func(v V) bool {
		out = append(out, v)
		return true
	})
	return out
}
