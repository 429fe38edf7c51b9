package dashboard

// PercentChange returns the signed percentage change from previous to
// current, unrounded. A zero previous saturates to 100 when current is
// positive and 0 otherwise; that is not a true percentage, but it is the
// established dashboard behavior and avoids dividing by zero.
func PercentChange(current, previous int) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return float64(current-previous) / float64(previous) * 100
}
