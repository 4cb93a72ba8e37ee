// Package layout computes deterministic 2D force-directed positions.
package layout

import (
	"math"
	"math/rand"
	"sort"

	"github.com/LuizVenosa/GraficoCameraSite/internal/graph"
	"github.com/LuizVenosa/GraficoCameraSite/internal/logger"
	gonum "gonum.org/v1/gonum/graph"
	gonumlayout "gonum.org/v1/gonum/graph/layout"
	"gonum.org/v1/gonum/spatial/r2"
)

const (
	DefaultSeed       = 58
	DefaultK          = 0.2
	DefaultIterations = 50

	minDistance     = 0.01
	convergenceStep = 1e-4
)

// Options controls the spring layout.
type Options struct {
	// K is the optimal distance between nodes. Zero or negative selects
	// sqrt(1/N).
	K          float64
	Iterations int
	Seed       int64
}

func DefaultOptions() Options {
	return Options{K: DefaultK, Iterations: DefaultIterations, Seed: DefaultSeed}
}

// Point is a 2D position.
type Point struct {
	X, Y float64
}

// Spring runs a Fruchterman-Reingold layout and returns positions in node
// order, centred on the origin and scaled so the largest coordinate is 1.
//
// Initial positions are drawn uniformly from [0,1)^2 with a generator seeded
// from opts.Seed, so the same graph and options always give the same result.
// Edges pull with their weight as spring strength; every pair repels.
// Graphs with no nodes give no points and a single node sits at the origin.
func Spring(g *graph.Graph, opts Options) []Point {
	n := g.Len()
	switch n {
	case 0:
		return nil
	case 1:
		return []Point{{}}
	}

	fr := &FruchtermanReingoldR2{
		K:       opts.K,
		Updates: opts.Iterations,
		Src:     rand.NewSource(opts.Seed),
	}
	o := gonumlayout.NewOptimizerR2(g.Topology(), fr.Update)
	for o.Update() {
	}

	pos := make([]Point, n)
	for i := range pos {
		c := o.Coord2(int64(i))
		pos[i] = Point{X: c.X, Y: c.Y}
	}
	rescale(pos)
	return pos
}

// Annotate sets x and y on every node.
func Annotate(g *graph.Graph, opts Options) error {
	for i, p := range Spring(g, opts) {
		if err := g.SetPosition(i, p.X, p.Y); err != nil {
			return err
		}
	}
	logger.Debug("Computed layout", "nodes", g.Len(), "k", opts.K, "iterations", opts.Iterations, "seed", opts.Seed)
	return nil
}

// FruchtermanReingoldR2 is a gonum layout update function implementing the
// Fruchterman-Reingold force model with linear cooling. Nodes are visited in
// ascending ID order, so a fixed Src gives a fixed layout. Edge weights of
// a gonum.Weighted graph scale the attraction; otherwise every edge weighs 1.
type FruchtermanReingoldR2 struct {
	// K is the optimal distance between nodes. If K <= 0, sqrt(1/N) is used.
	K float64

	// Updates is the maximum number of updates to perform. Updating stops
	// earlier once the mean node movement falls below 1e-4.
	Updates int

	// Src seeds the initial positions. It must not be nil.
	Src rand.Source

	ids  []int64
	adj  [][]float64
	pos  []r2.Vec
	k    float64
	t    float64
	dt   float64
	iter int
	done bool
}

// Update is the FruchtermanReingoldR2 spatial graph update function. The
// first call places the nodes even when no updates remain.
func (u *FruchtermanReingoldR2) Update(g gonum.Graph, l gonumlayout.LayoutR2) bool {
	if !l.IsInitialized() {
		u.init(g, l)
	}
	if u.done || u.Updates <= 0 || len(u.pos) < 2 {
		return false
	}
	u.Updates--
	u.iter++

	n := len(u.pos)
	disp := make([]r2.Vec, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			delta := r2.Sub(u.pos[i], u.pos[j])
			dist := math.Max(r2.Norm(delta), minDistance)
			f := u.k*u.k/(dist*dist) - u.adj[i][j]*dist/u.k
			disp[i] = r2.Add(disp[i], r2.Scale(f, delta))
		}
	}

	var moved float64
	for i := range u.pos {
		length := r2.Norm(disp[i])
		if length < minDistance {
			length = 0.1
		}
		step := r2.Scale(u.t/length, disp[i])
		u.pos[i] = r2.Add(u.pos[i], step)
		moved += r2.Norm(step)
		l.SetCoord2(u.ids[i], u.pos[i])
	}
	u.t -= u.dt

	if moved/float64(n) < convergenceStep {
		logger.Debug("Layout converged", "iteration", u.iter)
		u.done = true
		return false
	}
	return u.Updates > 0
}

func (u *FruchtermanReingoldR2) init(g gonum.Graph, l gonumlayout.LayoutR2) {
	nodes := gonum.NodesOf(g.Nodes())
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID() < nodes[j].ID() })
	n := len(nodes)

	rng := rand.New(u.Src)
	u.ids = make([]int64, n)
	u.pos = make([]r2.Vec, n)
	for i, node := range nodes {
		u.ids[i] = node.ID()
		u.pos[i] = r2.Vec{X: rng.Float64(), Y: rng.Float64()}
		l.SetCoord2(u.ids[i], u.pos[i])
	}

	weighted, _ := g.(gonum.Weighted)
	u.adj = make([][]float64, n)
	for i := range u.adj {
		u.adj[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !g.HasEdgeBetween(u.ids[i], u.ids[j]) {
				continue
			}
			w := 1.0
			if weighted != nil {
				w, _ = weighted.Weight(u.ids[i], u.ids[j])
			}
			u.adj[i][j], u.adj[j][i] = w, w
		}
	}

	u.k = u.K
	if u.k <= 0 && n > 0 {
		u.k = math.Sqrt(1 / float64(n))
	}

	// Temperature starts at a tenth of the initial spread and cools linearly.
	u.t = 0.1 * math.Max(spread(u.pos, func(p r2.Vec) float64 { return p.X }), spread(u.pos, func(p r2.Vec) float64 { return p.Y }))
	u.dt = u.t / float64(u.Updates+1)
}

func spread(pos []r2.Vec, coord func(r2.Vec) float64) float64 {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, p := range pos {
		v := coord(p)
		lo, hi = math.Min(lo, v), math.Max(hi, v)
	}
	return hi - lo
}

func rescale(pos []Point) {
	var cx, cy float64
	for _, p := range pos {
		cx += p.X
		cy += p.Y
	}
	cx /= float64(len(pos))
	cy /= float64(len(pos))

	var lim float64
	for i := range pos {
		pos[i].X -= cx
		pos[i].Y -= cy
		lim = math.Max(lim, math.Max(math.Abs(pos[i].X), math.Abs(pos[i].Y)))
	}
	if lim == 0 {
		return
	}
	for i := range pos {
		pos[i].X /= lim
		pos[i].Y /= lim
	}
}
