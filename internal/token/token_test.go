package token

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueCSS(t *testing.T) {
	assert.Equal(t, "8px", NumberValue(8, "px").CSS())
	assert.Equal(t, "0.72", NumberValue(0.72, "").CSS())
	assert.Equal(t, "#111827", StringValue("#111827").CSS())
}

func TestValueUnmarshalTypedAndBare(t *testing.T) {
	var typed Value
	require.NoError(t, json.Unmarshal([]byte(`{"kind":"number","value":8,"unit":"px"}`), &typed))
	assert.Equal(t, NumberValue(8, "px"), typed)

	var bare Value
	require.NoError(t, json.Unmarshal([]byte(`"#0f172a"`), &bare))
	assert.Equal(t, StringValue("#0f172a"), bare)

	var bad Value
	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &bad))
}

func TestParseReferenceForms(t *testing.T) {
	bracket, err := ParseReference("{Tokens.color.gray.900}")
	require.NoError(t, err)
	assert.Equal(t, TokenRef("color.gray.900"), bracket)

	object, err := ParseReference(map[string]any{"collection": "Theme", "name": "elevation-1.blur"})
	require.NoError(t, err)
	assert.Equal(t, ThemeRef("elevation-1.blur"), object)

	literal, err := ParseReference("solid")
	require.NoError(t, err)
	assert.True(t, literal.IsLiteral())
	assert.Equal(t, "solid", literal.Literal.Str)

	number, err := ParseReference(8.0)
	require.NoError(t, err)
	assert.Equal(t, Lit(NumberValue(8, "")), number)

	_, err = ParseReference(map[string]any{"collection": "Gradients", "name": "x"})
	assert.Error(t, err, "unknown collections must not parse")
}

func TestReferenceJSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(TokenRef("size.default"))
	require.NoError(t, err)

	var back Reference
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, TokenRef("size.default"), back)
}

func TestDocumentLookupSetDelete(t *testing.T) {
	doc := Document{}
	doc.Set("color.gray.900", "#111827")
	doc.Set("size.default", 8.0)

	value, ok := doc.Value("color.gray.900")
	require.True(t, ok)
	assert.Equal(t, "#111827", value.Str)

	branch := doc.Branch("color.gray")
	require.NotNil(t, branch)
	assert.Contains(t, branch.Keys(), "900")

	doc.Delete("size.default")
	_, ok = doc.Value("size.default")
	assert.False(t, ok)
}

func TestDocumentDottedKeyNames(t *testing.T) {
	doc := Document{"size": map[string]any{
		"none": 0.0, "0.5x": 4.0, "default": 8.0,
	}}

	// "0.5x" is a single key, not a 0 → 5x branch.
	value, ok := doc.Value("size.0.5x")
	require.True(t, ok)
	assert.Equal(t, 4.0, value.Num)

	doc.Set("size.0.5x", 6.0)
	value, _ = doc.Value("size.0.5x")
	assert.Equal(t, 6.0, value.Num)
	assert.Contains(t, doc.Branch("size").Keys(), "0.5x")

	doc.Delete("size.0.5x")
	_, ok = doc.Value("size.0.5x")
	assert.False(t, ok)
	assert.Contains(t, doc.Branch("size").Keys(), "default")
}

func TestDocumentCloneIsDeep(t *testing.T) {
	doc := Document{}
	doc.Set("size.default", 8.0)

	clone := doc.Clone()
	clone.Set("size.default", 16.0)

	original, _ := doc.Value("size.default")
	assert.Equal(t, 8.0, original.Num)
}

func TestProgressionOrderingAndAdvance(t *testing.T) {
	doc := Document{"size": map[string]any{
		"none":    0.0,
		"2x":      16.0,
		"default": 8.0,
		"0.5x":    4.0,
		"corner":  12.0, // not part of the progression
	}}

	progression := ProgressionFromGroup(doc, "size")
	require.Equal(t, 4, progression.Len())

	names := make([]string, 0, 4)
	for _, step := range progression.Steps() {
		names = append(names, step.Name)
	}
	assert.Equal(t, []string{"none", "0.5x", "default", "2x"}, names)

	// The baseline counts as the first position.
	one, ok := progression.Advance("default", 1)
	require.True(t, ok)
	assert.Equal(t, 8.0, one.Value.Num)

	two, ok := progression.Advance("default", 2)
	require.True(t, ok)
	assert.Equal(t, 16.0, two.Value.Num)

	// Clamped at the top end.
	five, ok := progression.Advance("default", 5)
	require.True(t, ok)
	assert.Equal(t, "2x", five.Name)

	_, ok = progression.Advance("corner", 1)
	assert.False(t, ok)
}

func TestProgressionSetFromDotKeys(t *testing.T) {
	doc := Document{"size": map[string]any{
		"none": 0.0, "default": 8.0, "2x": 16.0,
	}}
	doc.Set("size.0.5x", 4.0)

	progression := ProgressionFromGroup(doc, "size")
	assert.Equal(t, 4, progression.Len())
}

func TestValidateDocuments(t *testing.T) {
	tokens := Document{"color": map[string]any{"gray": map[string]any{"900": "#111827"}},
		"size": map[string]any{"default": 8.0}}
	theme := Document{
		"light": map[string]any{"surface": map[string]any{"collection": "Tokens", "name": "color.gray.900"}},
		"dark":  map[string]any{"surface": map[string]any{"collection": "Tokens", "name": "color.gray.900"}},
	}
	uikit := Document{"Button": map[string]any{"color": map[string]any{"layer-0": map[string]any{
		"solid-background": "{Theme.surface}",
	}}}}

	assert.NoError(t, ValidateDocuments(tokens, theme, uikit))

	badColor := tokens.Clone()
	badColor.Set("color.gray.900", "not-a-color")
	assert.Error(t, ValidateDocuments(badColor, theme, uikit))

	missingDark := Document{"light": map[string]any{}}
	assert.Error(t, ValidateDocuments(tokens, missingDark, uikit))

	badRef := uikit.Clone()
	badRef.Set("Button.color.layer-0.solid-background", map[string]any{"collection": "Nope", "name": "x"})
	assert.Error(t, ValidateDocuments(tokens, theme, badRef))
}
