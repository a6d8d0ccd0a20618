package replica

import "testing"

func TestHasCycle(t *testing.T) {
	self := &node{Name: "self"}
	self.Self = self

	shared := &leaf{N: 1}
	dag := struct{ A, B *leaf }{A: shared, B: shared}

	loopSlice := make([]any, 1)
	loopSlice[0] = loopSlice

	loopMap := map[string]any{}
	loopMap["self"] = loopMap

	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"nil", nil, false},
		{"scalar", 42, false},
		{"acyclic struct", profile{Name: "p", Tags: []string{"a"}}, false},
		{"shared but acyclic", dag, false},
		{"self pointer", self, true},
		{"self slice", loopSlice, true},
		{"self map", loopMap, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hasCycle(tt.value); got != tt.want {
				t.Errorf("hasCycle = %v, want %v", got, tt.want)
			}
		})
	}
}
