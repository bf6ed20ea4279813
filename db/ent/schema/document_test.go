package schema

import (
	"testing"

	"entgo.io/ent"
)

// Ent generates a HasX predicate for every edge and an X predicate for
// every field, so an edge named "images" next to a "has_images" field
// produces two HasImages declarations and an uncompilable package.
func TestEdgeNamesAvoidFieldPredicateCollisions(t *testing.T) {
	check := func(t *testing.T, fields []ent.Field, edges []ent.Edge) {
		t.Helper()
		names := map[string]bool{}
		for _, f := range fields {
			names[f.Descriptor().Name] = true
		}
		for _, e := range edges {
			edgeName := e.Descriptor().Name
			if names["has_"+edgeName] {
				t.Errorf("edge %q collides with field %q in generated predicates", edgeName, "has_"+edgeName)
			}
		}
	}

	check(t, (Document{}).Fields(), (Document{}).Edges())
	check(t, (DocumentImage{}).Fields(), (DocumentImage{}).Edges())
}
