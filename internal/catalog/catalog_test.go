package catalog

import "testing"

func TestLookup(t *testing.T) {
	b, ok := Lookup("earth")
	if !ok {
		t.Fatal("expected earth in catalog")
	}
	if b.Name != "Earth" || b.Mass != MassEarth {
		t.Errorf("unexpected entry: %+v", b)
	}

	if _, ok := Lookup("planet9"); ok {
		t.Error("expected lookup miss for unknown body")
	}
}

func TestNamesSortedAndComplete(t *testing.T) {
	names := Names()
	if len(names) != 11 {
		t.Fatalf("expected 11 bodies, got %d", len(names))
	}

	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("names not sorted: %s before %s", names[i-1], names[i])
		}
	}
}

func TestMassesPositive(t *testing.T) {
	for _, name := range Names() {
		b, _ := Lookup(name)
		if b.Mass <= 0 {
			t.Errorf("%s has non-positive mass", name)
		}
	}
}
