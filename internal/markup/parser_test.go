package markup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCompleteDocument(t *testing.T) {
	src := `<LinearLayout android:orientation="vertical">
  <TextView android:text="center" android:id="@+id/label" />
</LinearLayout>`

	doc := Parse(src, "android")
	require.Len(t, doc.Nodes, 2)

	layout := doc.Nodes[0]
	assert.Equal(t, "LinearLayout", layout.Name)
	assert.True(t, layout.Terminated)
	assert.False(t, layout.SelfClosing)
	require.Len(t, layout.Attrs, 1)
	assert.Equal(t, "android:orientation", layout.Attrs[0].Name)
	assert.Equal(t, "vertical", layout.Attrs[0].Value)

	text := doc.Nodes[1]
	assert.Equal(t, "TextView", text.Name)
	assert.True(t, text.SelfClosing)
	require.Len(t, text.Attrs, 2)
	assert.Equal(t, "android:text", text.Attrs[0].Name)
	assert.Equal(t, "center", text.Attrs[0].Value)
	assert.Equal(t, "android:id", text.Attrs[1].Name)
	assert.Equal(t, "@+id/label", text.Attrs[1].Value)
}

func TestParseInProgress(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		wantTag  string
		wantTerm bool
	}{
		{name: "half typed tag", src: "<TextV", wantTag: "TextV"},
		{name: "bare angle bracket", src: "<", wantTag: ""},
		{name: "dangling attribute name", src: "<TextView android:te", wantTag: "TextView"},
		{name: "equals without value", src: "<TextView android:text=", wantTag: "TextView"},
		{name: "unterminated value", src: `<TextView android:text="cen`, wantTag: "TextView"},
		{name: "terminated empty tag", src: "<TextView>", wantTag: "TextView", wantTerm: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Parse(tt.src, "android")
			require.Len(t, doc.Nodes, 1)
			assert.Equal(t, tt.wantTag, doc.Nodes[0].Name)
			assert.Equal(t, tt.wantTerm, doc.Nodes[0].Terminated)
		})
	}
}

func TestParseDanglingAttribute(t *testing.T) {
	doc := Parse("<TextView android:te", "android")
	require.Len(t, doc.Nodes, 1)
	require.Len(t, doc.Nodes[0].Attrs, 1)

	a := doc.Nodes[0].Attrs[0]
	assert.Equal(t, "android:te", a.Name)
	assert.False(t, a.HasValue)
	assert.Equal(t, "te", a.LocalName())
	assert.Equal(t, "android", a.Namespace())
}

func TestParseUnterminatedValue(t *testing.T) {
	src := `<TextView android:text="cen`
	doc := Parse(src, "android")
	require.Len(t, doc.Nodes, 1)
	require.Len(t, doc.Nodes[0].Attrs, 1)

	a := doc.Nodes[0].Attrs[0]
	assert.True(t, a.HasValue)
	assert.True(t, a.Quoted)
	assert.Equal(t, "cen", a.Value)
	assert.Equal(t, len(src), a.ValueSpan.End)
}

func TestParseRecoversFromStrayTag(t *testing.T) {
	src := "<LinearLayout \n  <TextView android:text=\"a\" />"
	doc := Parse(src, "android")
	require.Len(t, doc.Nodes, 2)
	assert.Equal(t, "LinearLayout", doc.Nodes[0].Name)
	assert.False(t, doc.Nodes[0].Terminated)
	assert.Equal(t, "TextView", doc.Nodes[1].Name)
	assert.True(t, doc.Nodes[1].Terminated)
}

func TestParseValueStopsAtNewline(t *testing.T) {
	src := "<TextView android:text=\"cen\n<Button />"
	doc := Parse(src, "android")
	require.Len(t, doc.Nodes, 2)
	assert.Equal(t, "cen", doc.Nodes[0].Attrs[0].Value)
	assert.Equal(t, "Button", doc.Nodes[1].Name)
}

func TestParseSkipsNonElementRegions(t *testing.T) {
	src := `<?xml version="1.0"?>
<!-- layout root -->
<FrameLayout>
  text content
</FrameLayout>`
	doc := Parse(src, "android")
	require.Len(t, doc.Nodes, 1)
	assert.Equal(t, "FrameLayout", doc.Nodes[0].Name)
}

func TestNodeAt(t *testing.T) {
	src := `<LinearLayout><TextView android:text="x" /></LinearLayout>`
	doc := Parse(src, "android")

	tests := []struct {
		name   string
		offset int
		want   string
	}{
		{name: "inside first tag name", offset: strings.Index(src, "Linear") + 3, want: "LinearLayout"},
		{name: "just after open bracket", offset: 1, want: "LinearLayout"},
		{name: "inside nested tag", offset: strings.Index(src, "TextView") + 4, want: "TextView"},
		{name: "inside attribute region", offset: strings.Index(src, "android:text") + 2, want: "TextView"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := doc.NodeAt(tt.offset)
			require.NotNil(t, n)
			assert.Equal(t, tt.want, n.Name)
		})
	}

	t.Run("outside any tag", func(t *testing.T) {
		assert.Nil(t, doc.NodeAt(0))
		assert.Nil(t, doc.NodeAt(len(src)))
	})

	t.Run("after closing bracket", func(t *testing.T) {
		assert.Nil(t, doc.NodeAt(strings.Index(src, "><TextView")+1))
	})
}

func TestNodeAtEndOfUnterminatedTag(t *testing.T) {
	src := "<TextV"
	doc := Parse(src, "android")

	n := doc.NodeAt(len(src))
	require.NotNil(t, n)
	assert.Equal(t, "TextV", n.Name)
}

func TestAttributeAt(t *testing.T) {
	src := `<TextView android:text="center" android:id="@+id/x">`
	doc := Parse(src, "android")

	t.Run("inside name", func(t *testing.T) {
		a := doc.AttributeAt(strings.Index(src, "android:text") + 5)
		require.NotNil(t, a)
		assert.Equal(t, "android:text", a.Name)
	})

	t.Run("end of name", func(t *testing.T) {
		a := doc.AttributeAt(strings.Index(src, "android:text") + len("android:text"))
		require.NotNil(t, a)
		assert.Equal(t, "android:text", a.Name)
	})

	t.Run("inside value", func(t *testing.T) {
		a := doc.AttributeAt(strings.Index(src, "center") + 3)
		require.NotNil(t, a)
		assert.Equal(t, "android:text", a.Name)
	})

	t.Run("second attribute", func(t *testing.T) {
		a := doc.AttributeAt(strings.Index(src, "android:id") + 2)
		require.NotNil(t, a)
		assert.Equal(t, "android:id", a.Name)
	})

	t.Run("between attributes", func(t *testing.T) {
		assert.Nil(t, doc.AttributeAt(strings.Index(src, `" android:id`)+1))
	})

	t.Run("on tag name", func(t *testing.T) {
		assert.Nil(t, doc.AttributeAt(3))
	})
}

func TestAttributeLocalName(t *testing.T) {
	a := Attribute{Name: "text"}
	assert.Equal(t, "text", a.LocalName())
	assert.Equal(t, "", a.Namespace())
}
