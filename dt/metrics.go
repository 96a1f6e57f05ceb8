package dt

// Metrics observes the work of a MergeSort. Implementations are
// called synchronously from the sort, and must not modify the values
// they are passed.
//
// Reset is called once before a sort begins merging, Compare for each
// comparison, Swap each time the sort takes the element of the first
// of two runs, and Done once the sort completes.
type Metrics[T any] interface {
	Compare(a, b T)
	Swap()
	Done()
	Reset()
}

// NoopMetrics is the default Metrics implementation, and does nothing.
type NoopMetrics[T any] struct{}

func (NoopMetrics[T]) Compare(T, T) {}
func (NoopMetrics[T]) Swap()        {}
func (NoopMetrics[T]) Done()        {}
func (NoopMetrics[T]) Reset()       {}
