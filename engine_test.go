package style

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tekugo/styleengine/value"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := New(Options{SeedKeywords: true})
	require.NoError(t, err)

	e.RegisterType("length", func(token string) (value.Value, bool) {
		if !strings.HasSuffix(token, "px") {
			return value.Value{}, false
		}
		n, err := strconv.ParseFloat(strings.TrimSuffix(token, "px"), 64)
		if err != nil {
			return value.Value{}, false
		}
		return value.LengthValue(n, "px"), true
	})

	_, err = e.RegisterProperty("width", "<length> | auto", "auto")
	require.NoError(t, err)
	_, err = e.RegisterProperty("color", "<length> | none", "none")
	require.NoError(t, err)

	return e
}

func TestEngineAddRuleAndComputedStyle(t *testing.T) {
	e := newTestEngine(t)
	sel, err := e.CreateSelector("button")
	require.NoError(t, err)
	e.AddRule(sel, map[string]string{"width": "10px"})

	query, err := e.CreateSelector("button")
	require.NoError(t, err)
	decl := e.GetComputedStyle(query)

	got := e.PropertyValue(decl, "width")
	assert.Equal(t, value.Length, got.Kind)
	assert.Equal(t, float64(10), got.Numeric)
}

func TestEngineCascadeMoreSpecificWins(t *testing.T) {
	e := newTestEngine(t)
	general, err := e.CreateSelector("button")
	require.NoError(t, err)
	e.AddRule(general, map[string]string{"width": "10px"})

	specific, err := e.CreateSelector("button#ok")
	require.NoError(t, err)
	e.AddRule(specific, map[string]string{"width": "20px"})

	query, err := e.CreateSelector("button#ok")
	require.NoError(t, err)
	decl := e.GetComputedStyle(query)

	got := e.PropertyValue(decl, "width")
	assert.Equal(t, float64(20), got.Numeric)
}

func TestEngineUnknownPropertyIsLoggedNotFatal(t *testing.T) {
	e := newTestEngine(t)
	sel, err := e.CreateSelector("button")
	require.NoError(t, err)
	e.AddRule(sel, map[string]string{"nonexistent": "1"})
	assert.Equal(t, 1, e.Log.Length())
}

func TestEngineAddStyleSheetParsesMultipleBlocks(t *testing.T) {
	e := newTestEngine(t)
	rules := e.AddStyleSheet(`
		button { width: 10px; }
		button.primary { width: 20px; }
	`)
	assert.Len(t, rules, 2)
	assert.Equal(t, 2, e.Stats().Rules)
}

func TestEngineAddRuleFlushesCache(t *testing.T) {
	e := newTestEngine(t)
	query, err := e.CreateSelector("button")
	require.NoError(t, err)
	e.GetComputedStyle(query)
	assert.Equal(t, 1, e.Stats().CachedStyles)

	sel, err := e.CreateSelector("button")
	require.NoError(t, err)
	e.AddRule(sel, map[string]string{"width": "5px"})
	assert.Equal(t, 0, e.Stats().CachedStyles)
}

func TestEnginePropertyValueFallsBackToInitial(t *testing.T) {
	e := newTestEngine(t)
	decl := NewDeclaration(e.Properties.Count())
	v := e.PropertyValue(decl, "width")
	assert.Equal(t, value.Keyword, v.Kind)
}

func TestEnginePrintAllIncludesCounts(t *testing.T) {
	e := newTestEngine(t)
	sel, err := e.CreateSelector("button")
	require.NoError(t, err)
	e.AddRule(sel, map[string]string{"width": "10px"})

	var sb strings.Builder
	e.PrintAll(&sb)
	out := sb.String()
	assert.Contains(t, out, "rules: 1")
	assert.Contains(t, out, "button")
}
