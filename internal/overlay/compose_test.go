package overlay

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slotDescriptors(f Frame) []Descriptor {
	var out []Descriptor
	for _, d := range f.Descriptors {
		if d.Kind == KindSlot {
			out = append(out, d)
		}
	}
	return out
}

func TestUpdate_SlotCountNeverShrinks(t *testing.T) {
	state := NewState(0)
	inputs := []Input{
		{Window: 3},
		{Window: 3, Sentences: [][]string{{"a"}}},
		{Window: 5, Sentences: [][]string{{"a", "b", "c", "d", "e"}}},
		{Window: 3, Sentences: [][]string{{"a", "b", "c", "d", "e", "f"}}},
		{Window: 3},
	}

	prevMax := 0
	for i, in := range inputs {
		var frame Frame
		state, frame = Update(state, in)
		assert.Equal(t, state.MaxSlots(), frame.Slots, "update %d", i)
		assert.Len(t, slotDescriptors(frame), frame.Slots, "update %d", i)
		assert.GreaterOrEqual(t, state.MaxSlots(), prevMax, "update %d", i)
		prevMax = state.MaxSlots()
	}
	assert.Equal(t, 5, prevMax)
}

func TestUpdate_PanelIsLast(t *testing.T) {
	state := NewState(0)
	in := Input{Window: 3, ShowPanel: true, Sentences: [][]string{{"a"}, {"b"}}}

	_, first := Update(state, in)
	_, second := Update(state, in)

	require.NotEmpty(t, first.Descriptors)
	last := first.Descriptors[len(first.Descriptors)-1]
	assert.Equal(t, KindPanel, last.Kind)
	assert.Equal(t, second.Descriptors[len(second.Descriptors)-1], last)

	p := Panel(3)
	assert.Equal(t, p.Position, last.Background.Position)
	assert.InDelta(t, p.Width, last.Background.Width, 1e-9)
	assert.InDelta(t, p.Height, last.Background.Height, 1e-9)
}

func TestUpdate_BlinkChangesContentNotWidth(t *testing.T) {
	state := NewState(0)
	sentences := [][]string{{"hello"}}

	state, on := Update(state, Input{Window: 3, CursorOn: true, Sentences: sentences})
	_, off := Update(state, Input{Window: 3, CursorOn: false, Sentences: sentences})

	assert.Equal(t, "hello"+CursorGlyph, on.Descriptors[0].Text.Content)
	assert.Equal(t, "hello", off.Descriptors[0].Text.Content)
	assert.Equal(t, on.Descriptors[0].Text.Width, off.Descriptors[0].Text.Width)
	assert.Equal(t, on.Descriptors[0].Background.Width, off.Descriptors[0].Background.Width)
	assert.True(t, off.Descriptors[0].ContentDirty)
}

func TestUpdate_IdenticalInputCausesNoReset(t *testing.T) {
	state := NewState(0)
	in := Input{Window: 3, Sentences: [][]string{{"a", "b"}, {"c"}}}

	state, first := Update(state, in)
	_, second := Update(state, in)

	for i := range first.Descriptors {
		assert.Equal(t, first.Descriptors[i].Identity, second.Descriptors[i].Identity)
		assert.Equal(t, first.Descriptors[i].Background.Position, second.Descriptors[i].Background.Position)
		assert.False(t, second.Descriptors[i].ContentDirty)
	}
	assert.False(t, second.Animating)
}

func TestUpdate_NewLineScrollsOlderSlotsIn(t *testing.T) {
	state := NewState(0)
	state, _ = Update(state, Input{Window: 3, Sentences: [][]string{{"a"}}})

	state, frame := Update(state, Input{Window: 3, Sentences: [][]string{{"a", "b"}}})
	require.True(t, frame.Animating)

	bottom := frame.Descriptors[0]
	assert.Equal(t, "b", bottom.Text.Content)
	assert.InDelta(t, YCoordStart+LineHeight/2, bottom.Background.Position.Y, 1e-9)

	sliding := frame.Descriptors[1]
	assert.Equal(t, "a", sliding.Text.Content)
	assert.InDelta(t, YCoordStart+LineHeight, sliding.Background.Position.Y, 1e-9)

	for range 1000 {
		if !frame.Animating {
			break
		}
		state, frame = Step(state)
	}
	require.False(t, frame.Animating)
	assert.InDelta(t, YCoordStart+1.5*LineHeight, frame.Descriptors[1].Background.Position.Y, 1e-9)
	assert.InDelta(t, YCoordStart+1.5*LineHeight+Offset, frame.Descriptors[1].Text.Position.Y, 1e-9)
}

func TestStep_ConvergesWithSceneConstants(t *testing.T) {
	// A sliding slot starts half a line below its target.
	want := int(math.Round(LineHeight / 2 / ScrollStep))
	require.Equal(t, 31, want)

	cases := []struct {
		name      string
		before    [][]string
		after     [][]string
		showPanel bool
	}{
		{"second sentence", [][]string{{"a"}}, [][]string{{"a"}, {"b"}}, false},
		{"second sentence with panel", [][]string{{"a"}}, [][]string{{"a"}, {"b"}}, true},
		{"third sentence", [][]string{{"a"}, {"b"}}, [][]string{{"a"}, {"b"}, {"c"}}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			state, _ := Update(NewState(ScrollStep), Input{Window: 3, Sentences: tc.before, ShowPanel: tc.showPanel})
			state, frame := Update(state, Input{Window: 3, Sentences: tc.after, ShowPanel: tc.showPanel})
			require.True(t, frame.Animating)

			ticks := 0
			for frame.Animating {
				state, frame = Step(state)
				ticks++
				require.LessOrEqual(t, ticks, want, "did not converge")
			}
			assert.Equal(t, want, ticks)
		})
	}
}

func TestStep_DoesNotRelayout(t *testing.T) {
	state := NewState(0)
	state, before := Update(state, Input{Window: 3, Sentences: [][]string{{"a"}}})

	_, after := Step(state)

	assert.Equal(t, before.Slots, after.Slots)
	assert.Equal(t, before.Descriptors[0].Text.Content, after.Descriptors[0].Text.Content)
	assert.False(t, after.Descriptors[0].ContentDirty)
}

func TestSetWindow_ShrinkKeepsSlotCount(t *testing.T) {
	state := NewState(0)
	state, _ = Update(state, Input{Window: 5, Sentences: [][]string{{"a", "b", "c", "d", "e"}}})

	state, frame := SetWindow(state, 3)

	assert.Equal(t, 5, frame.Slots)
	assert.Equal(t, 3, state.input.Window)
	slots := slotDescriptors(frame)
	for _, d := range slots[:3] {
		assert.NotEmpty(t, d.Text.Content)
	}
	for _, d := range slots[3:] {
		assert.Empty(t, d.Text.Content)
		assert.Zero(t, d.Text.Opacity)
		assert.Zero(t, d.Background.Width)
	}
}

func TestUpdate_CarriesGlyphAtlas(t *testing.T) {
	atlas := GlyphAtlas{FontFamily: "font.json", FontTexture: "font.png"}

	_, frame := Update(NewState(0), Input{Window: 3, Atlas: atlas, Sentences: [][]string{{"a"}}})

	assert.Equal(t, atlas, frame.Descriptors[0].Text.Atlas)
	assert.Equal(t, FontSize, frame.Descriptors[0].Text.FontSize)
}

func TestSlotDescriptor_AlignsLeftEdges(t *testing.T) {
	short := slotDescriptor(0, Slot{Width: EstimateWidth(3, false)}, 0, false, GlyphAtlas{})
	long := slotDescriptor(1, Slot{Width: EstimateWidth(30, false)}, 0, false, GlyphAtlas{})

	leftEdge := func(d Descriptor) float64 { return d.Text.Position.X - d.Text.Width/2 }
	assert.InDelta(t, leftEdge(short), leftEdge(long), 1e-9)
	assert.InDelta(t, -MaxWidth/2+OffsetWidth, leftEdge(short), 1e-9)
}

func TestDescriptorKindString(t *testing.T) {
	assert.Equal(t, "slot", KindSlot.String())
	assert.Equal(t, "panel", KindPanel.String())
	assert.Equal(t, "unknown", DescriptorKind(9).String())
}
