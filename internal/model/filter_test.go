package model

import "testing"

func TestFilterElements_ByType(t *testing.T) {
	got := FilterElements(sampleTree(), []ElementType{TypeButton, TypeInput})
	if len(got) != 2 {
		t.Fatalf("expected 2 elements, got %d", len(got))
	}
	if got[0].ID != "email" || got[1].ID != "submit" {
		t.Errorf("got %s, %s; want email, submit", got[0].ID, got[1].ID)
	}
}

func TestFilterElements_KeepsMatchingAncestor(t *testing.T) {
	got := FilterElements(sampleTree(), []ElementType{TypeCard, TypeButton})
	if len(got) != 1 || got[0].ID != "card" {
		t.Fatalf("expected card at top level, got %+v", got)
	}
	if len(got[0].Children) != 1 || got[0].Children[0].ID != "submit" {
		t.Errorf("card should keep only the button, got %+v", got[0].Children)
	}
}

func TestFilterElements_NoTypes(t *testing.T) {
	tree := sampleTree()
	if got := FilterElements(tree, nil); len(got) != len(tree) {
		t.Errorf("no filter should return input unchanged")
	}
}

func TestFilterByText(t *testing.T) {
	got := FilterByText(sampleTree(), "email")
	if len(got) != 1 || got[0].ID != "root" {
		t.Fatalf("expected root ancestor, got %+v", got)
	}
	card := got[0].Children
	if len(card) != 1 || card[0].ID != "card" {
		t.Fatalf("expected card, got %+v", card)
	}
	if len(card[0].Children) != 1 || card[0].Children[0].ID != "email" {
		t.Errorf("expected only email input, got %+v", card[0].Children)
	}
}

func TestPruneEmptyContainers(t *testing.T) {
	tree := []DesignElement{
		{ID: "empty", Type: TypeContainer},
		{
			ID: "wrapper", Type: TypeContainer,
			Children: []DesignElement{{ID: "t", Type: TypeText, Args: Args{Text: "hi"}}},
		},
		{
			ID: "styled", Type: TypeContainer, Args: Args{BackgroundColor: "#ffffff"},
			Children: []DesignElement{{ID: "b", Type: TypeButton}},
		},
		{ID: "card", Type: TypeCard},
	}
	got := PruneEmptyContainers(tree)
	if len(got) != 3 {
		t.Fatalf("expected 3 elements, got %d: %+v", len(got), got)
	}
	if got[0].ID != "t" {
		t.Errorf("wrapper should unwrap to its child, got %s", got[0].ID)
	}
	if got[1].ID != "styled" || len(got[1].Children) != 1 {
		t.Errorf("styled container should be kept with its child")
	}
	if got[2].ID != "card" {
		t.Errorf("empty card is not a container and should be kept")
	}
}
