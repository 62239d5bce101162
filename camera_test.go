package cubik

import "testing"

func TestFixedPresets(t *testing.T) {
	cases := []struct {
		key  byte
		name string
	}{
		{'1', "Front"},
		{'2', "Back"},
		{'3', "Left"},
		{'4', "Right"},
		{'5', "Top"},
		{'6', "Bottom"},
	}
	for _, tc := range cases {
		v, ok := SelectView(DefaultView, tc.key)
		if !ok {
			t.Errorf("key %q not recognized", tc.key)
			continue
		}
		if v.Name != tc.name {
			t.Errorf("key %q -> %q, want %q", tc.key, v.Name, tc.name)
		}
	}
}

func TestOppositeSideIsRelative(t *testing.T) {
	c := newCamera()
	c.Select('5') // Top
	first := c.Select('7')
	if first.Name != "Opposite side" {
		t.Fatalf("view = %q, want Opposite side", first.Name)
	}
	second := c.Select('7')
	if second.Hpr.Z != first.Hpr.Z-90 {
		t.Errorf("repeated opposite-side should keep rotating: %v then %v", first.Hpr, second.Hpr)
	}
}

func TestUnknownPresetKeepsView(t *testing.T) {
	v, ok := SelectView(DefaultView, '9')
	if ok {
		t.Error("key 9 should not be a preset")
	}
	if v != DefaultView {
		t.Error("unknown key must leave the view unchanged")
	}
}
