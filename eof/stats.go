package eof

import "golang.org/x/sync/errgroup"

// ContainerStats is a diagnostic-only, read-only view over an already-valid
// container: it is computed in a second pass after ValidateEOF succeeds and
// never influences the validation outcome. Grounded in the teacher's
// EOFContainerStats / ValidateDeep.
type ContainerStats struct {
	TotalCodeBytes       int
	TotalDataBytes       int
	NumCodeSections      int
	NumContainerSections int
	MaxStackDepth        uint16
	OpcodeFrequency      map[OpCode]int
	CallGraph            map[int][]int
	HasRecursion         bool
}

// parallelOpcodeCountThreshold is the number of code sections above which
// per-section opcode counting fans out across an errgroup instead of running
// sequentially; below it the goroutine overhead isn't worth paying.
const parallelOpcodeCountThreshold = 8

// ComputeStats derives container statistics from a header and container that
// have already passed ValidateEOF. Behaviour on an unvalidated container is
// undefined.
func ComputeStats(header *ValidHeader, container []byte) (*ContainerStats, error) {
	stats := &ContainerStats{
		NumCodeSections:      len(header.CodeSizes),
		NumContainerSections: len(header.ContainerSizes),
		TotalDataBytes:       int(header.DataSize),
		CallGraph:            make(map[int][]int, len(header.CodeSizes)),
	}
	for _, s := range header.CodeSizes {
		stats.TotalCodeBytes += int(s)
	}
	for _, t := range header.Types {
		if t.MaxStack > stats.MaxStackDepth {
			stats.MaxStackDepth = t.MaxStack
		}
	}

	perSection := make([]map[OpCode]int, len(header.CodeSizes))
	callees := make([][]int, len(header.CodeSizes))

	run := func(i int) error {
		code := container[header.CodeBegin(i):header.CodeEnd(i)]
		freq, calls := scanSection(code)
		perSection[i] = freq
		callees[i] = calls
		return nil
	}

	if len(header.CodeSizes) > parallelOpcodeCountThreshold {
		var g errgroup.Group
		for i := range header.CodeSizes {
			i := i
			g.Go(func() error { return run(i) })
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i := range header.CodeSizes {
			if err := run(i); err != nil {
				return nil, err
			}
		}
	}

	stats.OpcodeFrequency = make(map[OpCode]int)
	for i, freq := range perSection {
		for op, count := range freq {
			stats.OpcodeFrequency[op] += count
		}
		stats.CallGraph[i] = callees[i]
	}

	stats.HasRecursion = hasCycle(stats.CallGraph)
	return stats, nil
}

// scanSection walks one code section's instructions (skipping declared
// immediates, mirroring the instruction scan of §4.4) and returns the
// opcode-frequency table plus the list of CALLF callee indices it contains.
func scanSection(code []byte) (map[OpCode]int, []int) {
	freq := make(map[OpCode]int)
	var callees []int

	n := len(code)
	i := 0
	for i < n {
		op := OpCode(code[i])
		freq[op]++

		if op == CALLF {
			callees = append(callees, int(uint16(code[i+1])<<8|uint16(code[i+2])))
		}

		if op == RJUMPV {
			count := int(code[i+1])
			i += 2 + 2*count
		} else {
			i += 1 + traitOf(op).immediate
		}
	}
	return freq, callees
}

// hasCycle runs a white/gray/black DFS over the CALLF call graph, grounded
// on the teacher's detectCallGraphCycle.
func hasCycle(graph map[int][]int) bool {
	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := make(map[int]int, len(graph))

	var visit func(n int) bool
	visit = func(n int) bool {
		color[n] = gray
		for _, m := range graph[n] {
			switch color[m] {
			case gray:
				return true
			case white:
				if visit(m) {
					return true
				}
			}
		}
		color[n] = black
		return false
	}

	for n := range graph {
		if color[n] == white {
			if visit(n) {
				return true
			}
		}
	}
	return false
}
