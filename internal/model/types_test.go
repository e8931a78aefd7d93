package model

import "testing"

func TestMapType_KnownAliases(t *testing.T) {
	tests := []struct {
		input string
		want  ElementType
	}{
		{"button", TypeButton},
		{"ElevatedButton", TypeButton},
		{"FloatingActionButton", TypeButton},
		{"TextField", TypeInput},
		{"text-field", TypeInput},
		{"Text", TypeText},
		{"Image", TypeImage},
		{"Column", TypeContainer},
		{"Row", TypeContainer},
		{"Card", TypeCard},
		{"Chip", TypeCard},
		{"ListView", TypeList},
		{"Icon", TypeIcon},
		{" icon ", TypeIcon},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := MapType(tt.input)
			if got != tt.want {
				t.Errorf("MapType(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMapType_UnknownFallback(t *testing.T) {
	unknowns := []string{"Slider", "ProgressIndicator", "SomethingElse", ""}
	for _, raw := range unknowns {
		got := MapType(raw)
		if got != TypeContainer {
			t.Errorf("MapType(%q) = %q, want %q", raw, got, TypeContainer)
		}
	}
}

func TestElementType_Known(t *testing.T) {
	for _, et := range ElementTypes {
		if !et.Known() {
			t.Errorf("%q should be known", et)
		}
	}
	if ElementType("slider").Known() {
		t.Error("slider should not be known")
	}
	if !TypeCard.IsContainer() || !TypeContainer.IsContainer() || TypeList.IsContainer() {
		t.Error("only container and card render children")
	}
}
