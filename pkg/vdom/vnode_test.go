package vdom

import "testing"

func TestVKindString(t *testing.T) {
	tests := []struct {
		kind VKind
		want string
	}{
		{KindElement, "Element"},
		{KindText, "Text"},
		{KindFragment, "Fragment"},
		{KindComponent, "Component"},
		{KindRaw, "Raw"},
		{VKind(255), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("VKind.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVNodeAttr(t *testing.T) {
	node := A(Href("/boutique"), Data("link", ""))

	if got := node.Attr("href"); got != "/boutique" {
		t.Errorf("Attr(href) = %q, want %q", got, "/boutique")
	}
	if got := node.Attr("class"); got != "" {
		t.Errorf("Attr(class) = %q, want empty", got)
	}
	if !node.HasAttr("data-link") {
		t.Error("HasAttr(data-link) = false, want true")
	}
	if node.HasAttr("class") {
		t.Error("HasAttr(class) = true, want false")
	}

	var nilNode *VNode
	if nilNode.Attr("href") != "" || nilNode.HasAttr("href") {
		t.Error("nil node should report no attributes")
	}
}

func TestVNodeTextContent(t *testing.T) {
	node := Div(
		H1(Text("La Petite Maison")),
		Fragment(Span(Text(" de ")), "l'Épouvante"),
		Raw("<br>"),
		Func(func() *VNode { return S(Text("!")) }),
	)

	want := "La Petite Maison de l'Épouvante!"
	if got := node.TextContent(); got != want {
		t.Errorf("TextContent() = %q, want %q", got, want)
	}
}

func TestAttrIsEmpty(t *testing.T) {
	if !(Attr{}).IsEmpty() {
		t.Error("zero Attr should be empty")
	}
	if ID("x").IsEmpty() {
		t.Error("ID attr should not be empty")
	}
}

func TestFuncComponent(t *testing.T) {
	calls := 0
	comp := Func(func() *VNode {
		calls++
		return P(Text("rendered"))
	})

	node := comp.Render()
	if node.Tag != "p" {
		t.Errorf("Tag = %v, want p", node.Tag)
	}
	if calls != 1 {
		t.Errorf("render called %d times, want 1", calls)
	}
}
