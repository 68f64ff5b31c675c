package differ

// match is a common stretch of units: old[oldStart:oldEnd] equals
// new[newStart:newEnd] unit by unit.
type match struct {
	oldStart, newStart int
	oldEnd, newEnd     int
	count              int
}

// matchUnits finds the longest common stretch, anchored for each old start
// at the first equal new unit. The first stretch found wins ties. count is
// zero when no unit of old equals any unit of new.
func matchUnits(oldUnits, newUnits []unit) match {
	var best match
	for i := range oldUnits {
		for j := range newUnits {
			if !unitsEqual(oldUnits[i], newUnits[j]) {
				continue
			}
			k := 1
			for i+k < len(oldUnits) && j+k < len(newUnits) && unitsEqual(oldUnits[i+k], newUnits[j+k]) {
				k++
			}
			if k > best.count {
				best = match{
					oldStart: i, newStart: j,
					oldEnd: i + k, newEnd: j + k,
					count: k,
				}
			}
			break
		}
	}
	return best
}
