package regexfa

import "sort"

const sinkState = "\x00sink"

// minimizeDFA runs partition refinement (Moore's algorithm) over d, folding
// in an explicit sink state for missing transitions, so that a missing
// transition on σ and a transition on σ into a dead state (one that can
// never reach acceptance) lead into the same class as the sink. The sink's
// equivalence class, dead states included, is dropped from the output: a
// transition into it is simply omitted, matching the engine's convention
// that an absent matrix entry means "no such transition."
func minimizeDFA(d *dfa) *dfa {
	syms := symbolSet(d)
	states := append([]string{sinkState}, d.stateNames...)

	full := func(s, sym string) string {
		if s == sinkState {
			return sinkState
		}
		if t, ok := d.trans[s][sym]; ok {
			return t
		}
		return sinkState
	}

	// initial partition: final vs non-final (sink is non-final).
	classOf := make(map[string]int)
	for _, s := range states {
		if _, ok := d.final[s]; ok {
			classOf[s] = 1
		} else {
			classOf[s] = 0
		}
	}

	for {
		changed := false
		signature := make(map[string]string, len(states))
		for _, s := range states {
			sig := itoaSimple(classOf[s])
			for _, sym := range syms {
				sig += "|" + itoaSimple(classOf[full(s, sym)])
			}
			signature[s] = sig
		}
		sigToClass := make(map[string]int)
		newClassOf := make(map[string]int, len(states))
		next := 0
		// stable ordering for deterministic class numbering.
		ordered := append([]string(nil), states...)
		sort.Strings(ordered)
		for _, s := range ordered {
			sig := signature[s]
			c, ok := sigToClass[sig]
			if !ok {
				c = next
				sigToClass[sig] = c
				next++
			}
			newClassOf[s] = c
		}
		for _, s := range states {
			if newClassOf[s] != classOf[s] {
				changed = true
			}
		}
		classOf = newClassOf
		if !changed {
			break
		}
	}

	sinkClass := classOf[sinkState]
	className := func(c int) string { return "m" + itoaSimple(c) }

	out := &dfa{trans: make(map[string]map[string]string), final: make(map[string]struct{})}
	seen := make(map[int]bool)
	for _, s := range d.stateNames {
		c := classOf[s]
		if c == sinkClass {
			continue
		}
		name := className(c)
		if !seen[c] {
			seen[c] = true
			out.stateNames = append(out.stateNames, name)
			if _, ok := d.final[s]; ok {
				out.final[name] = struct{}{}
			}
		}
	}
	out.start = className(classOf[d.start])

	for _, s := range d.stateNames {
		c := classOf[s]
		if c == sinkClass {
			continue
		}
		name := className(c)
		for _, sym := range syms {
			target := full(s, sym)
			tc := classOf[target]
			if tc == sinkClass {
				continue
			}
			if out.trans[name] == nil {
				out.trans[name] = make(map[string]string)
			}
			out.trans[name][sym] = className(tc)
		}
	}
	return out
}

func symbolSet(d *dfa) []string {
	seen := make(map[string]struct{})
	for _, row := range d.trans {
		for sym := range row {
			seen[sym] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
