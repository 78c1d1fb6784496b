package quadtree

import (
	"runtime"
	"sync"
)

// queryJob is one windowed query handed to a tree's pool.
type queryJob struct {
	area  Area
	found []Point
	stats Stats
	wg    sync.WaitGroup
}

// queryPool is a resident worker pool throttling concurrent read-only
// queries on one tree, keeping tail latency flat under fan-in load.
type queryPool struct {
	tree *Tree
	jobs chan *queryJob
	wg   sync.WaitGroup
}

func newQueryPool(tree *Tree, nWorkers, bufSize int) *queryPool {
	if nWorkers <= 0 {
		nWorkers = runtime.NumCPU()
	}
	p := &queryPool{
		tree: tree,
		jobs: make(chan *queryJob, bufSize),
	}
	for i := 0; i < nWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	return p
}

func (p *queryPool) worker() {
	defer p.wg.Done()
	for job := range p.jobs {
		job.found, job.stats = p.tree.queryImpl(job.area)
		job.wg.Done()
	}
}

func (p *queryPool) query(a Area) ([]Point, Stats) {
	job := &queryJob{area: a}
	job.wg.Add(1)
	p.jobs <- job
	job.wg.Wait()
	return job.found, job.stats
}

func (p *queryPool) Close() {
	close(p.jobs)
	p.wg.Wait()
}

// cellJob is one per-cell query of a grid fan-out.
type cellJob struct {
	cellIdx int
	area    Area
	cell    *Tree
	found   [][]Point
	visits  []int
	wg      *sync.WaitGroup
}

// cellPool is the resident fan-out pool used by Grid, one channel per
// worker.
type cellPool struct {
	chans []chan cellJob
	wg    sync.WaitGroup
}

func newCellPool(nWorkers, bufSize int) *cellPool {
	if nWorkers <= 0 {
		nWorkers = 1
	}
	p := &cellPool{
		chans: make([]chan cellJob, nWorkers),
	}
	for i := 0; i < nWorkers; i++ {
		p.chans[i] = make(chan cellJob, bufSize)
		p.wg.Add(1)
		go p.worker(i)
	}
	return p
}

func (p *cellPool) worker(idx int) {
	defer p.wg.Done()
	for job := range p.chans[idx] {
		pts, st := job.cell.queryImpl(job.area)
		job.found[job.cellIdx] = pts
		job.visits[job.cellIdx] = st.NodesVisited
		job.wg.Done()
	}
}

// Submit routes by cell index to a fixed worker.
func (p *cellPool) Submit(job cellJob) {
	idx := job.cellIdx % len(p.chans)
	p.chans[idx] <- job
}

// Close shuts the pool down and waits for all workers to exit.
func (p *cellPool) Close() {
	for i := range p.chans {
		close(p.chans[i])
	}
	p.wg.Wait()
}
