package dataset

// Config pairs a dataset source with the canonical unit every observable in
// that dataset is converted to before display.
type Config struct {
	Source     Source
	TargetUnit string
}
