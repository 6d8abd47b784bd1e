package game

// CentralBonus is awarded per axis on which a player stands in the central band.
const CentralBonus = 0.25

// CentralControl rewards standing in the middle of the board: CentralBonus for
// each of X and Y lying in {1, 2}, so at most 2*CentralBonus.
func CentralControl(pos Coordinate) float64 {
	bonus := 0.0
	if isCentral(pos.X) {
		bonus += CentralBonus
	}
	if isCentral(pos.Y) {
		bonus += CentralBonus
	}
	return bonus
}

// NoBonus ignores position entirely; a cutoff is then scored on material alone.
func NoBonus(Coordinate) float64 {
	return 0
}

func isCentral(v int) bool {
	return v > 0 && v < Size-1
}
