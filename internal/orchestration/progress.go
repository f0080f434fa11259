package orchestration

// PercentComplete returns done/total as a percentage, computed in float32 and
// truncated toward zero, or 0 when total is not positive. For 1 of 2 it
// returns 50, for 2 of 2 it returns 100, and for 53 of 100 it returns 52.
func PercentComplete(done, total int) int {
	if total <= 0 {
		return 0
	}
	ratio := float32(done) / float32(total)
	return int(ratio * 100)
}
