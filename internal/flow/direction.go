package flow

// Direction names one of the four cardinal neighbours.
type Direction int

const (
	North Direction = iota
	West
	South
	East
)

// Directions lists every cardinal direction.
var Directions = [...]Direction{North, West, South, East}

var (
	// downhillBits marks "my neighbour in this direction is lower than me".
	downhillBits = [...]int{North: 4, West: 8, South: 1, East: 2}

	// inflowBits marks "my neighbour in this direction drains into me": the
	// neighbour must carry the downhill bit pointing back at the centre.
	inflowBits = [...]int{North: 1, West: 2, South: 4, East: 8}

	offsets = [...][2]int{North: {-1, 0}, West: {0, -1}, South: {1, 0}, East: {0, 1}}
)

// Downhill returns the mask bit a cell sets when its neighbour in d is lower.
func Downhill(d Direction) int { return downhillBits[d] }

// Inflow returns the bit a neighbour in direction d must carry for water to
// drain from it into the centre cell.
func Inflow(d Direction) int { return inflowBits[d] }

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case West:
		return East
	default:
		return West
	}
}

// Offset returns the (row, col) delta to the neighbour in d.
func (d Direction) Offset() (int, int) { return offsets[d][0], offsets[d][1] }

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case West:
		return "west"
	case South:
		return "south"
	case East:
		return "east"
	}
	return "unknown"
}

// MaskDirections decodes a mask into the directions it points at.
func MaskDirections(mask int) []Direction {
	var out []Direction
	for _, d := range Directions {
		if mask&downhillBits[d] != 0 {
			out = append(out, d)
		}
	}
	return out
}
