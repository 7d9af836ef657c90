package rules

import "github.com/pkg/errors"

// ErrUnreachableNeighborCount is returned for a neighbor count a Moore
// neighborhood cannot produce.
var ErrUnreachableNeighborCount = errors.New("neighbor count out of range")

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

	alive, 0-1 neighbors -> dead (underpopulation)
	alive, 2-3 neighbors -> alive
	alive, 4-8 neighbors -> dead (overcrowding)
	dead,  3 neighbors   -> alive
	dead,  any other     -> dead
*/
func ApplyConwayRules(neighbors int, alive bool) (bool, error) {
	if alive {
		switch neighbors {
		case 0, 1:
			return false, nil
		case 2, 3:
			return true, nil
		case 4, 5, 6, 7, 8:
			return false, nil
		}
	} else {
		switch neighbors {
		case 3:
			return true, nil
		case 0, 1, 2, 4, 5, 6, 7, 8:
			return false, nil
		}
	}
	return false, errors.Wrapf(ErrUnreachableNeighborCount, "[ApplyConwayRules] alive=%v neighbors: %+v", alive, neighbors)
}
