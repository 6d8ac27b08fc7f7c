// pkg/tilemap/pathfinding.go
package tilemap

import (
	"container/heap"
	"math"

	"go-space-survivor/pkg/geom"
)

// MaxPathSteps caps the length of a returned path. Callers only steer by the
// first few waypoints and re-plan periodically.
const MaxPathSteps = 10

// Bounds is the grid the search runs on.
type Bounds struct {
	Width    int
	Height   int
	TileSize float64
}

func (b Bounds) contains(c Cell) bool {
	return c.X >= 0 && c.X < b.Width && c.Y >= 0 && c.Y < b.Height
}

var directions = [4]Cell{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

// FindPath находит путь A* от клетки start до клетки goal по 4-связной сетке.
// Клетка непроходима, если её прямоугольник пересекает любую стену.
// Возвращает клетки без стартовой, не больше MaxPathSteps штук.
// Пустой результат: старт совпадает с целью или пути нет.
func FindPath(start, goal geom.Vec, walls []geom.Rect, b Bounds) []Cell {
	startCell := CellOf(start, b.TileSize)
	goalCell := CellOf(goal, b.TileSize)
	if startCell == goalCell {
		return nil
	}

	blocked := make(map[Cell]bool)
	isBlocked := func(c Cell) bool {
		v, ok := blocked[c]
		if !ok {
			v = CellRect(c, b.TileSize).IntersectsAny(walls)
			blocked[c] = v
		}
		return v
	}

	pq := &PriorityQueue{}
	heap.Init(pq)
	heap.Push(pq, &Node{Cell: startCell, Cost: heuristic(startCell, goalCell)})
	cameFrom := make(map[Cell]Cell)
	gScore := map[Cell]float64{startCell: 0}
	closed := make(map[Cell]bool)

	for pq.Len() > 0 {
		current := heap.Pop(pq).(*Node)
		if closed[current.Cell] {
			continue // устаревшая запись в очереди
		}
		if current.Cell == goalCell {
			return reconstructPath(cameFrom, startCell, goalCell)
		}
		closed[current.Cell] = true

		for _, d := range directions {
			neighbor := Cell{current.Cell.X + d.X, current.Cell.Y + d.Y}
			if !b.contains(neighbor) || closed[neighbor] || isBlocked(neighbor) {
				continue
			}
			tentative := gScore[current.Cell] + 1
			if g, seen := gScore[neighbor]; seen && tentative >= g {
				continue
			}
			cameFrom[neighbor] = current.Cell
			gScore[neighbor] = tentative
			heap.Push(pq, &Node{Cell: neighbor, Cost: tentative + heuristic(neighbor, goalCell)})
		}
	}
	return nil // пути нет
}

func heuristic(a, b Cell) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}

// PriorityQueue для A*
type PriorityQueue []*Node

type Node struct {
	Cell Cell
	Cost float64
}

func (pq PriorityQueue) Len() int           { return len(pq) }
func (pq PriorityQueue) Less(i, j int) bool { return pq[i].Cost < pq[j].Cost }
func (pq PriorityQueue) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }
func (pq *PriorityQueue) Push(x interface{}) {
	*pq = append(*pq, x.(*Node))
}
func (pq *PriorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[0 : n-1]
	return item
}

func reconstructPath(cameFrom map[Cell]Cell, start, goal Cell) []Cell {
	path := []Cell{}
	for c := goal; c != start; c = cameFrom[c] {
		path = append(path, c)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	if len(path) > MaxPathSteps {
		path = path[:MaxPathSteps]
	}
	return path
}
