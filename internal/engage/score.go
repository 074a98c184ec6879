package engage

// Counter weights for the engagement score. A save is worth a plain view
// counted uniquely; shares carry the most signal.
const (
	weightView    = 0.4
	weightLike    = 1.5
	weightComment = 2.0
	weightShare   = 3.0
	weightSave    = 1.0
)

// Counters is the counter tuple of one content item.
type Counters struct {
	Views    uint64
	Likes    uint64
	Comments uint64
	Shares   uint64
	Saves    uint64
}

// Score is a pure function of the counter tuple. Replaying the same tuple
// always yields the same score, independent of the order events arrived.
// There is no hidden accumulator.
func Score(c Counters) float64 {
	return float64(c.Views)*weightView +
		float64(c.Likes)*weightLike +
		float64(c.Comments)*weightComment +
		float64(c.Shares)*weightShare +
		float64(c.Saves)*weightSave
}
