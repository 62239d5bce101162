package cubik

import (
	"testing"

	"github.com/jaroslaw-wieczorek/cubik/internal/scene"
)

func TestRegistryDefaultKeys(t *testing.T) {
	root := scene.NewNode("cube")
	reg, err := newRegistry(root, nil)
	if err != nil {
		t.Fatalf("newRegistry: %v", err)
	}

	want := map[FaceID]byte{
		FaceTop:              't',
		FaceBottom:           'd',
		FaceLeft:             'l',
		FaceRight:            'r',
		FaceFront:            'f',
		FaceBack:             'b',
		FaceCenterVertical:   'v',
		FaceCenterHorizontal: 'h',
		FaceCenterDouble:     'c',
	}
	for id, key := range want {
		f := reg.ByKey(key)
		if f == nil || f.ID != id {
			t.Errorf("key %q should resolve to %s", key, id)
		}
	}
}

func TestByKeyIsCaseInsensitive(t *testing.T) {
	root := scene.NewNode("cube")
	reg, _ := newRegistry(root, nil)

	if f := reg.ByKey('T'); f == nil || f.ID != FaceTop {
		t.Error("uppercase key should resolve to the same face")
	}
}

func TestRegistryRejectsNilRoot(t *testing.T) {
	if _, err := newRegistry(nil, nil); err == nil {
		t.Fatal("nil root should be fatal")
	}
}

func TestRegistryRejectsNonLetterKey(t *testing.T) {
	root := scene.NewNode("cube")
	if _, err := newRegistry(root, map[FaceID]byte{FaceTop: '3'}); err == nil {
		t.Fatal("digit key binding should be fatal")
	}
}

func TestRegistryRejectsDuplicateKeys(t *testing.T) {
	root := scene.NewNode("cube")
	if _, err := newRegistry(root, map[FaceID]byte{FaceTop: 'f'}); err == nil {
		t.Fatal("duplicate key binding should be fatal")
	}
}

func TestPivotsAttachedToRoot(t *testing.T) {
	root := scene.NewNode("cube")
	reg, _ := newRegistry(root, nil)
	for _, f := range reg.Faces() {
		if f.pivot.Parent() != root {
			t.Errorf("face %s pivot not attached to cube root", f.ID)
		}
	}
}
