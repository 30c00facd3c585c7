package regexfa

import "sort"

// dfaState is a subset of Thompson-NFA states, stored sorted for use as a
// deterministic map key (via its string form).
type dfaState []int

func (s dfaState) key() string {
	b := make([]byte, 0, len(s)*4)
	for i, v := range s {
		if i > 0 {
			b = append(b, ',')
		}
		b = appendInt(b, v)
	}
	return string(b)
}

func appendInt(b []byte, v int) []byte {
	if v == 0 {
		return append(b, '0')
	}
	start := len(b)
	for v > 0 {
		b = append(b, byte('0'+v%10))
		v /= 10
	}
	// reverse the digits just appended
	for i, j := start, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return b
}

func epsilonClosure(t *thompsonNFA, states []int) dfaState {
	seen := make(map[int]struct{})
	stack := append([]int(nil), states...)
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		for _, e := range t.trans[s] {
			if e.symbol == epsSymbol {
				stack = append(stack, e.to)
			}
		}
	}
	out := make(dfaState, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Ints(out)
	return out
}

func move(t *thompsonNFA, states dfaState, symbol string) []int {
	var out []int
	for _, s := range states {
		for _, e := range t.trans[s] {
			if e.symbol == symbol {
				out = append(out, e.to)
			}
		}
	}
	return out
}

func alphabet(t *thompsonNFA) []string {
	seen := make(map[string]struct{})
	for _, edges := range t.trans {
		for _, e := range edges {
			if e.symbol != epsSymbol {
				seen[e.symbol] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// dfa is a subset-construction deterministic automaton over string state
// names ("s0","s1",...) suitable for direct hand-off to automaton.FromNFA.
type dfa struct {
	stateNames []string
	trans      map[string]map[string]string // state -> symbol -> state
	start      string
	final      map[string]struct{}
}

func subsetConstruct(t *thompsonNFA) *dfa {
	syms := alphabet(t)
	out := &dfa{trans: make(map[string]map[string]string), final: make(map[string]struct{})}

	startSet := epsilonClosure(t, []int{t.start})
	nameOf := make(map[string]string) // subset key -> assigned name
	next := 0
	assign := func(s dfaState) string {
		k := s.key()
		if n, ok := nameOf[k]; ok {
			return n
		}
		n := "s" + itoaSimple(next)
		next++
		nameOf[k] = n
		out.stateNames = append(out.stateNames, n)
		for _, st := range s {
			if st == t.accept {
				out.final[n] = struct{}{}
				break
			}
		}
		return n
	}

	startName := assign(startSet)
	out.start = startName

	queue := []dfaState{startSet}
	visited := map[string]bool{startSet.key(): true}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		curName := assign(cur)
		for _, sym := range syms {
			moved := move(t, cur, sym)
			if len(moved) == 0 {
				continue
			}
			closure := epsilonClosure(t, moved)
			targetName := assign(closure)
			if out.trans[curName] == nil {
				out.trans[curName] = make(map[string]string)
			}
			out.trans[curName][sym] = targetName
			if !visited[closure.key()] {
				visited[closure.key()] = true
				queue = append(queue, closure)
			}
		}
	}
	return out
}

func itoaSimple(v int) string {
	return string(appendInt(nil, v))
}
