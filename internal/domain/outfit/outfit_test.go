package outfit

import "testing"

func TestNew_Valid(t *testing.T) {
	o, err := New("date", "casual", []string{"White linen shirt", "Dark jeans"}, "https://example.com/a.jpg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.Occasion() != "date" || o.Style() != "casual" {
		t.Errorf("unexpected fields: %q %q", o.Occasion(), o.Style())
	}
	if _, ok := o.Embedding(); ok {
		t.Error("new outfit should have no embedding")
	}
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		occasion string
		style    string
		items    []string
	}{
		{"empty occasion", "", "casual", []string{"Shirt"}},
		{"empty style", "date", "", []string{"Shirt"}},
		{"no items", "date", "casual", nil},
		{"blank item", "date", "casual", []string{"Shirt", ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.occasion, tt.style, tt.items, ""); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestWithEmbedding_CopiesVector(t *testing.T) {
	o, err := New("beach", "relaxed", []string{"Linen shorts"}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	vec := []float32{0.1, 0.2, 0.3}
	withVec := o.WithEmbedding(vec)

	vec[0] = 99 // mutate the caller's slice

	got, ok := withVec.Embedding()
	if !ok {
		t.Fatal("expected embedding present")
	}
	if got[0] != 0.1 {
		t.Errorf("embedding aliases caller slice: got %v", got[0])
	}

	if _, ok := o.Embedding(); ok {
		t.Error("WithEmbedding must not mutate the receiver")
	}
}

func TestItems_ReturnsCopy(t *testing.T) {
	o, err := New("party", "bold", []string{"Black satin dress"}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	items := o.Items()
	items[0] = "mutated"
	if o.Items()[0] != "Black satin dress" {
		t.Error("Items must return a copy")
	}
}
