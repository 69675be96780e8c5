package inspector

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	style "github.com/tekugo/styleengine"
	"github.com/tekugo/styleengine/value"
)

func TestExportSnapshotWritesRulesAndDeclarations(t *testing.T) {
	e, err := style.New(style.Options{SeedKeywords: true})
	require.NoError(t, err)
	e.RegisterType("length", func(token string) (value.Value, bool) { return value.Value{}, false })
	_, err = e.RegisterProperty("width", "auto", "auto")
	require.NoError(t, err)

	sel, err := e.CreateSelector("button")
	require.NoError(t, err)
	e.AddRule(sel, map[string]string{"width": "auto"})

	db, err := Open(filepath.Join(t.TempDir(), "snapshot.db"))
	require.NoError(t, err)
	defer db.Close()

	rules := e.QuerySelector(sel)
	require.NoError(t, ExportSnapshot(db, e, rules))

	var ruleCount int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM rules").Scan(&ruleCount))
	assert.Equal(t, 1, ruleCount)

	var declCount int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM declarations").Scan(&declCount))
	assert.Equal(t, 1, declCount)
}
