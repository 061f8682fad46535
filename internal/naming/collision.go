package naming

// CollisionDetector tracks which PNG claimed each JPEG target during a run.
// Two sources can map to one target when their names differ only in the
// extension's case (a.png and a.PNG). The detector only reports this; the
// later conversion still overwrites the earlier one.
type CollisionDetector struct {
	owners map[string]string // target path -> source path that claimed it
}

// NewCollisionDetector creates a ready-to-use detector.
func NewCollisionDetector() *CollisionDetector {
	return &CollisionDetector{owners: make(map[string]string)}
}

// Claim records source as the owner of target. If a different source
// already claimed target, that source is returned with collided=true and
// ownership moves to the new source.
func (cd *CollisionDetector) Claim(source, target string) (previous string, collided bool) {
	owner, exists := cd.owners[target]
	cd.owners[target] = source
	if exists && owner != source {
		return owner, true
	}
	return "", false
}
