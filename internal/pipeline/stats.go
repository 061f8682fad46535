package pipeline

// RunStats is the aggregate of every stage's results. It is built by [Run]
// from the values the stages return; no stage mutates shared counters.
type RunStats struct {
	Found         int // PNG files discovered
	Converted     int // converted, or would be in a dry run
	ConvertFailed int
	Collisions    int // JPEG targets claimed by more than one PNG

	Candidates   int // text files scanned
	FilesUpdated int // text files with at least one replacement
	Replacements int
	UpdateFailed int

	Removed      int
	RemoveFailed int

	InputBytes  int64 // PNG bytes of converted files
	OutputBytes int64 // JPEG bytes written
}

// SpaceSaved returns the aggregate byte difference between inputs and outputs.
// Positive means outputs are smaller; negative means they grew.
func (s *RunStats) SpaceSaved() int64 {
	return s.InputBytes - s.OutputBytes
}

// Failed returns the number of per-file failures across all stages.
func (s *RunStats) Failed() int {
	return s.ConvertFailed + s.UpdateFailed + s.RemoveFailed
}

func (s *RunStats) addConvert(r convertReport) {
	s.Collisions += r.collisions
	for _, it := range r.items {
		if !it.OK() {
			s.ConvertFailed++
			continue
		}
		s.Converted++
		s.InputBytes += it.InputBytes
		s.OutputBytes += it.OutputBytes
	}
}

func (s *RunStats) addRewrite(r rewriteReport) {
	s.Candidates += r.candidates
	for _, it := range r.items {
		switch {
		case !it.OK():
			s.UpdateFailed++
		case it.Replacements > 0:
			s.FilesUpdated++
			s.Replacements += it.Replacements
		}
	}
}

func (s *RunStats) addRemove(r removeReport) {
	for _, it := range r.items {
		if it.OK() {
			s.Removed++
		} else {
			s.RemoveFailed++
		}
	}
}
