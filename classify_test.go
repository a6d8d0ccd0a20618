package replica

import (
	"testing"
	"time"
)

type classifyProbe struct {
	Name string
}

func TestClassify(t *testing.T) {
	ch := make(chan int)
	probe := classifyProbe{Name: "x"}

	tests := []struct {
		name  string
		value any
		want  Category
	}{
		{"nil", nil, CategoryNull},
		{"nil pointer", (*classifyProbe)(nil), CategoryNull},
		{"int", 42, CategoryScalar},
		{"string", "hello", CategoryScalar},
		{"bool", true, CategoryScalar},
		{"float", 3.14, CategoryScalar},
		{"time", time.Now(), CategoryScalar},
		{"slice", []int{1, 2}, CategorySequence},
		{"array", [3]string{}, CategorySequence},
		{"bytes", []byte("raw"), CategorySequence},
		{"map", map[string]int{}, CategoryMapping},
		{"struct", probe, CategoryComplex},
		{"pointer to struct", &probe, CategoryComplex},
		{"pointer to time", &time.Time{}, CategoryScalar},
		{"channel", ch, CategoryUnsupported},
		{"func", func() {}, CategoryUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.value); got != tt.want {
				t.Errorf("Classify(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestCategory_String(t *testing.T) {
	tests := []struct {
		cat  Category
		want string
	}{
		{CategoryNull, "null"},
		{CategoryScalar, "scalar"},
		{CategorySequence, "sequence"},
		{CategoryMapping, "mapping"},
		{CategoryComplex, "complex"},
		{CategoryUnsupported, "unsupported"},
		{Category(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.cat.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClassify_Pure(t *testing.T) {
	s := []int{1, 2, 3}
	before := len(s)
	Classify(s)
	if len(s) != before {
		t.Error("Classify() should not mutate its argument")
	}
}
