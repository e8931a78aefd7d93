package model

import "testing"

func TestDiffElements(t *testing.T) {
	prev := []FlatElement{
		{ID: "a", Type: TypeText, Name: "Title", Path: "text", Args: Args{Text: "Hello"}},
		{ID: "b", Type: TypeButton, Path: "button", Bounds: [4]float64{0, 0, 100, 40}},
		{ID: "c", Type: TypeImage, Path: "image"},
	}
	curr := []FlatElement{
		{ID: "a", Type: TypeText, Name: "Title", Path: "text", Args: Args{Text: "Welcome", FontSize: Float(24)}},
		{ID: "b", Type: TypeButton, Path: "button", Bounds: [4]float64{0, 0, 100, 40}},
		{ID: "d", Type: TypeInput, Path: "input"},
	}

	changes := DiffElements(prev, curr)
	if len(changes) != 3 {
		t.Fatalf("expected 3 changes, got %d: %+v", len(changes), changes)
	}

	if changes[0].Type != ChangeChanged || changes[0].ID != "a" {
		t.Fatalf("first change should be a changed, got %+v", changes[0])
	}
	if got := changes[0].Changes["args.text"]; got != [2]string{"Hello", "Welcome"} {
		t.Errorf("args.text diff = %v", got)
	}
	if got := changes[0].Changes["args.fontSize"]; got != [2]string{"", "24"} {
		t.Errorf("args.fontSize diff = %v", got)
	}

	if changes[1].Type != ChangeAdded || changes[1].ID != "d" || changes[1].Element == nil {
		t.Errorf("second change should add d, got %+v", changes[1])
	}
	if changes[2].Type != ChangeRemoved || changes[2].ID != "c" || changes[2].Path != "image" {
		t.Errorf("third change should remove c, got %+v", changes[2])
	}
}

func TestDiffElements_NoChanges(t *testing.T) {
	flat := FlattenElements(sampleTree())
	if changes := DiffElements(flat, flat); len(changes) != 0 {
		t.Errorf("expected no changes, got %+v", changes)
	}
}

func TestDiffElements_Bounds(t *testing.T) {
	prev := []FlatElement{{ID: "a", Bounds: [4]float64{0, 0, 10, 10}}}
	curr := []FlatElement{{ID: "a", Bounds: [4]float64{5, 0, 10, 10}}}
	changes := DiffElements(prev, curr)
	if len(changes) != 1 {
		t.Fatalf("expected 1 change, got %d", len(changes))
	}
	if _, ok := changes[0].Changes["bounds"]; !ok {
		t.Error("expected bounds diff")
	}
}
