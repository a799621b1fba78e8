package physics

import (
	"math"

	"github.com/oliverbestmann/tumble/gm"
)

// Decomposer splits a simple polygon into convex parts.
type Decomposer interface {
	Decompose(polygon []gm.Vec) ([][]gm.Vec, bool)
}

// EarClipping triangulates a polygon by cutting off ears and then merges
// neighbouring triangles as long as the result stays convex.
// Polygons with holes or self intersections are not supported.
type EarClipping struct{}

func (EarClipping) Decompose(polygon []gm.Vec) ([][]gm.Vec, bool) {
	points := removeCollinear(polygon)
	if len(points) < 3 {
		return nil, false
	}

	area := signedArea(points)
	if math.Abs(area) < 1e-9 {
		return nil, false
	}

	// work on loops with positive area so all convex corners have a positive cross product
	if area < 0 {
		points = reversed(points)
	}

	triangles, ok := earClip(points)
	if !ok {
		return nil, false
	}

	pieces := mergeConvex(points, triangles)

	result := make([][]gm.Vec, 0, len(pieces))
	for _, piece := range pieces {
		result = append(result, lookupPoints(points, piece))
	}

	return result, true
}

// IsConvex reports whether the loop has no reflex corners, in either orientation.
func IsConvex(points []gm.Vec) bool {
	if len(points) < 3 {
		return false
	}

	var sign float64

	for idx := range points {
		cross := turn(points[idx], points[(idx+1)%len(points)], points[(idx+2)%len(points)])
		if math.Abs(cross) < 1e-9 {
			continue
		}

		if sign == 0 {
			sign = math.Copysign(1, cross)
			continue
		}

		if math.Copysign(1, cross) != sign {
			return false
		}
	}

	return true
}

func earClip(points []gm.Vec) ([][]int, bool) {
	count := len(points)

	// doubly linked ring of point indices
	prev := make([]int, count)
	next := make([]int, count)
	for idx := range points {
		prev[idx] = (idx + count - 1) % count
		next[idx] = (idx + 1) % count
	}

	triangles := make([][]int, 0, count-2)

	ear := 0
	remaining := count
	stop := ear

	for remaining > 3 {
		a, b, c := prev[ear], ear, next[ear]

		if isEar(points, prev, next, a, b, c) {
			triangles = append(triangles, []int{a, b, c})

			// remove b from the ring
			next[a] = c
			prev[c] = a
			remaining--

			ear = c
			stop = c
			continue
		}

		ear = next[ear]
		if ear == stop {
			// went around once without finding an ear
			return nil, false
		}
	}

	triangles = append(triangles, []int{prev[ear], ear, next[ear]})

	return triangles, true
}

func isEar(points []gm.Vec, prev, next []int, a, b, c int) bool {
	pa, pb, pc := points[a], points[b], points[c]

	// reflex, can't be an ear
	if turn(pa, pb, pc) <= 0 {
		return false
	}

	for p := next[c]; p != a; p = next[p] {
		if turn(points[prev[p]], points[p], points[next[p]]) > 0 {
			// only reflex vertices can lie inside an ear
			continue
		}

		if pointInTriangle(pa, pb, pc, points[p]) {
			return false
		}
	}

	return true
}

// turn returns the cross product of ab and bc. It is positive if the path
// a, b, c makes a turn in the same orientation as a positive area loop.
func turn(a, b, c gm.Vec) float64 {
	return b.Sub(a).Cross(c.Sub(b))
}

func pointInTriangle(a, b, c, p gm.Vec) bool {
	return turn(a, b, p) >= 0 && turn(b, c, p) >= 0 && turn(c, a, p) >= 0
}

// mergeConvex greedily joins pieces that share an edge while the union stays convex.
func mergeConvex(points []gm.Vec, pieces [][]int) [][]int {
	type edge struct{ from, to int }

	owner := map[edge]int{}
	for pieceIdx, piece := range pieces {
		for idx := range piece {
			owner[edge{piece[idx], piece[(idx+1)%len(piece)]}] = pieceIdx
		}
	}

	alive := make([]bool, len(pieces))
	for idx := range alive {
		alive[idx] = true
	}

	tryMerge := func(pieceIdx int) bool {
		piece := pieces[pieceIdx]

		for idx := range piece {
			u, v := piece[idx], piece[(idx+1)%len(piece)]

			otherIdx, ok := owner[edge{v, u}]
			if !ok || otherIdx == pieceIdx || !alive[otherIdx] {
				continue
			}

			merged := joinAlong(piece, pieces[otherIdx], u, v)
			if !IsConvex(lookupPoints(points, merged)) {
				continue
			}

			delete(owner, edge{u, v})
			delete(owner, edge{v, u})

			alive[otherIdx] = false
			pieces[pieceIdx] = merged

			for mIdx := range merged {
				owner[edge{merged[mIdx], merged[(mIdx+1)%len(merged)]}] = pieceIdx
			}

			return true
		}

		return false
	}

	for pieceIdx := range pieces {
		for alive[pieceIdx] && tryMerge(pieceIdx) {
		}
	}

	var result [][]int
	for idx, piece := range pieces {
		if alive[idx] {
			result = append(result, piece)
		}
	}

	return result
}

// joinAlong merges piece a, containing the edge u->v, with piece b containing v->u.
func joinAlong(a, b []int, u, v int) []int {
	merged := make([]int, 0, len(a)+len(b)-2)

	// walk a starting at v, ending at u
	start := indexOf(a, v)
	for idx := range a {
		merged = append(merged, a[(start+idx)%len(a)])
	}

	// walk b from the vertex after u up to the vertex before v
	start = indexOf(b, u)
	for idx := 1; idx < len(b)-1; idx++ {
		merged = append(merged, b[(start+idx)%len(b)])
	}

	return merged
}

func lookupPoints(points []gm.Vec, indices []int) []gm.Vec {
	result := make([]gm.Vec, len(indices))
	for idx, pointIdx := range indices {
		result[idx] = points[pointIdx]
	}

	return result
}

func indexOf(values []int, value int) int {
	for idx, v := range values {
		if v == value {
			return idx
		}
	}

	return -1
}

func removeCollinear(points []gm.Vec) []gm.Vec {
	var result []gm.Vec

	for idx, point := range points {
		prev := points[(idx+len(points)-1)%len(points)]
		next := points[(idx+1)%len(points)]

		if point == prev {
			continue
		}

		if math.Abs(turn(prev, point, next)) < 1e-9 && point.Sub(prev).Dot(next.Sub(point)) >= 0 {
			continue
		}

		result = append(result, point)
	}

	return result
}

func reversed(points []gm.Vec) []gm.Vec {
	result := make([]gm.Vec, len(points))
	for idx, point := range points {
		result[len(points)-1-idx] = point
	}

	return result
}
