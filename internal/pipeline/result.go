package pipeline

// Outcome classifies what happened to one item.
type Outcome string

const (
	OutcomeConverted Outcome = "converted" // JPEG written
	OutcomeSimulated Outcome = "simulated" // dry run: would have been converted/updated
	OutcomeUpdated   Outcome = "updated"   // text file rewritten
	OutcomeUnchanged Outcome = "unchanged" // text file had nothing to replace
	OutcomeRemoved   Outcome = "removed"   // source PNG deleted
	OutcomeFailed    Outcome = "failed"
)

// ItemResult is the per-file result every stage returns instead of
// swallowing errors. Err is set exactly when Outcome is OutcomeFailed.
type ItemResult struct {
	Path         string
	Target       string // JPEG path for conversions
	Outcome      Outcome
	Err          error
	Replacements int   // rewrite stage only
	InputBytes   int64 // conversion stage only
	OutputBytes  int64
}

// OK reports whether the item succeeded (or would succeed in a dry run).
func (r ItemResult) OK() bool { return r.Outcome != OutcomeFailed }

func failed(path string, err error) ItemResult {
	return ItemResult{Path: path, Outcome: OutcomeFailed, Err: err}
}
