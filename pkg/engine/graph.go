package engine

import (
	"github.com/dmitrymomot/formkit/pkg/fieldpath"
	"github.com/dmitrymomot/formkit/pkg/rules"
)

// edge records that the rules of dependent read the fields in
// dependsOn. Both sides may be patterns; edges are derived once per
// rule-set assignment from declared rule dependencies, never by
// running rules speculatively.
type edge struct {
	dependent fieldpath.Path
	dependsOn []fieldpath.Path
}

// buildGraph scans a normalized rule table and unions the declared
// dependencies of each entry into one edge. Entries without
// dependencies contribute no edge.
func buildGraph(ruleSet map[string][]*rules.Rule, keys map[string]fieldpath.Path) []edge {
	var graph []edge
	for key, list := range ruleSet {
		deps := rules.Dependencies(list)
		if len(deps) == 0 {
			continue
		}
		e := edge{dependent: keys[key]}
		for _, dep := range deps {
			p, err := fieldpath.Parse(dep)
			if err != nil {
				continue
			}
			e.dependsOn = append(e.dependsOn, p)
		}
		if len(e.dependsOn) > 0 {
			graph = append(graph, e)
		}
	}
	return graph
}

// dependentsOf returns every concrete field whose dependency set
// contains changed, by exact or wildcard match. Pattern dependents are
// resolved through the expanded field table; each concrete dependent's
// pattern dependencies borrow its own array indices before matching,
// so a change to contacts.1.password touches contacts.1.confirm and
// no other index.
func dependentsOf(graph []edge, table map[string][]*rules.Rule, changed fieldpath.Path) []string {
	var out []string
	seen := make(map[string]bool)

	for _, e := range graph {
		var concretes []fieldpath.Path
		if e.dependent.IsPattern() {
			for field := range table {
				fp, err := fieldpath.Parse(field)
				if err != nil {
					continue
				}
				if fieldpath.Match(e.dependent, fp) {
					concretes = append(concretes, fp)
				}
			}
		} else {
			concretes = []fieldpath.Path{e.dependent}
		}

		for _, concrete := range concretes {
			if seen[concrete.String()] {
				continue
			}
			for _, dep := range e.dependsOn {
				resolved, _ := fieldpath.ResolvePattern(dep, concrete)
				if fieldpath.Match(resolved, changed) {
					seen[concrete.String()] = true
					out = append(out, concrete.String())
					break
				}
			}
		}
	}
	return out
}
