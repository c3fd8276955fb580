package covering

import "cmp"

// Solver holds the immutable inputs of an interval-covering problem (n and
// the two endpoint accessors) plus the scratch buffers its phases share.
// A Solver is single-use in spirit but not single-shot: Run is idempotent,
// re-running it from scratch every time. It is not safe for concurrent use
// by multiple goroutines calling the same Solver, though the accessors it
// calls must themselves tolerate concurrent calls from Run's internal
// workers.
type Solver[T cmp.Ordered] struct {
	n int
	l Accessor[T]
	r Accessor[T]

	// Debug enables the precondition and internal-invariant checks. Off by
	// default: Run trusts its input and skips the scanning and
	// atomic-CAS overhead those checks add.
	Debug bool

	// BlockSize is the sampling density B. Zero means defaultBlockSize.
	// The furthest-jump builder's base case always uses
	// FurthestJumpBlockSize, whatever BlockSize is.
	BlockSize int

	furthestID       []int
	sampled          Bitset
	sampledID        []int
	sampledIDNxt     []int
	validSampledNode []int
	valid            Bitset
}

// New constructs a Solver over n intervals with left/right endpoint
// accessors l and r. It does not call l or r and does not allocate any
// scratch state; all of that happens inside Run.
func New[T cmp.Ordered](n int, l, r Accessor[T]) *Solver[T] {
	return &Solver[T]{n: n, l: l, r: r}
}

func (s *Solver[T]) blockSize() int {
	if s.BlockSize > 0 {
		return s.BlockSize
	}
	return defaultBlockSize
}

// Run executes the sampled-path-contraction variant: it validates
// preconditions in debug mode, dispatches tiny or small n to the serial
// kernel, and otherwise runs the furthest-jump builder, sample selector,
// sampled-path connector, sketch scan, and non-sampled expansion in that
// order. On return, Selected/SelectedIndices/NumSelected report the
// computed cover.
func (s *Solver[T]) Run() error {
	return s.run(SampledPathContraction)
}

// RunEulerTour executes the alternative Euler-tour list-ranking variant.
// It solves the same problem with the same external contract as Run; an
// implementation picks one variant, but both are provided here so tests
// can cross-check them against each other and against SerialGreedy.
func (s *Solver[T]) RunEulerTour() error {
	return s.run(EulerTour)
}

func (s *Solver[T]) run(variant Variant) error {
	if s.n == 0 {
		s.valid = NewBitset(0)
		return nil
	}
	if s.n <= 2 {
		s.valid = NewBitset(s.n)
		for i := 0; i < s.n; i++ {
			s.valid.Set(i)
		}
		return nil
	}

	if s.Debug {
		if err := s.checkPreconditions(); err != nil {
			return err
		}
	}

	if s.n <= smallNCutoff {
		s.valid = SerialGreedy(s.n, s.l, s.r)
		return nil
	}

	switch variant {
	case EulerTour:
		return s.runEulerTour()
	default:
		return s.runSampledPathContraction()
	}
}

func (s *Solver[T]) runSampledPathContraction() error {
	s.furthestID = make([]int, s.n)
	FurthestJumpParallel(s.n, s.l, s.r, s.furthestID)

	if s.Debug {
		if err := s.checkFurthestInvariant(); err != nil {
			return err
		}
	}

	s.sampled, s.sampledID = SelectSamples(s.n, s.blockSize())
	s.sampledIDNxt = ConnectSamples(s.furthestID, s.sampled, s.sampledID)

	s.valid = NewBitset(s.n)
	s.validSampledNode = ScanSketch(s.sampledIDNxt, s.n, s.valid)
	ExpandNonSampled(s.furthestID, s.validSampledNode, s.sampledIDNxt, s.valid)

	return nil
}

// Selected reports whether interval i belongs to the computed cover. Only
// valid to call after Run or RunEulerTour has returned nil.
func (s *Solver[T]) Selected(i int) bool { return s.valid.Get(i) }

// NumSelected returns the size of the computed cover.
func (s *Solver[T]) NumSelected() int { return s.valid.Count() }

// SelectedIndices returns the computed cover as an ascending IndexSet.
func (s *Solver[T]) SelectedIndices() IndexSet {
	return NewSparseIndexSet(PackIndex(s.valid, s.n), s.n)
}
