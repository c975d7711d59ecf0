package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestionList_ClearKeepsPlaceholder(t *testing.T) {
	l := NewSuggestionList("suggestions", NoResults)
	first := l.Add(Suggestion{Value: "alpha", Text: "alpha | 2010", Href: "/info.html?name=alpha"})
	l.Add(Suggestion{Value: "beta", Text: "beta | 2011"})

	assert.Len(t, l.Items(), 3)
	assert.Len(t, l.Entries(), 2)
	assert.True(t, l.Contains(first))
	assert.True(t, l.Contains("suggestions"))

	l.Clear()

	items := l.Items()
	require.Len(t, items, 1)
	assert.Equal(t, NoResults, items[0].Value)
	assert.Empty(t, l.Entries())
	assert.False(t, l.Contains(first))
	assert.False(t, l.Contains(""))
}

func TestSuggestionList_IDsAreUnique(t *testing.T) {
	l := NewSuggestionList("s")
	a := l.Add(Suggestion{Value: "a"})
	l.Clear()
	b := l.Add(Suggestion{Value: "a"})

	assert.NotEqual(t, a, b)
}

func TestTable(t *testing.T) {
	tbl := NewTable()
	tbl.AddRow(Row{Key: "snap1", Cells: []Cell{{Text: "snap1"}, {Text: "2020"}, {Button: "Delete"}}})

	row, found := tbl.Row("snap1")
	require.True(t, found)
	assert.Equal(t, []string{"snap1", "2020", "[Delete]"}, row.Texts())

	tbl.Clear()
	assert.Empty(t, tbl.Rows())
}

func TestStatusAreaAndForm(t *testing.T) {
	s := NewStatusArea()
	s.Replace("a: 1", "b: 2")
	s.Replace("c: 3")
	assert.Equal(t, []string{"c: 3"}, s.Lines())
	s.Clear()
	assert.Empty(t, s.Lines())

	f := NewForm()
	assert.Equal(t, "", f.Value("name"))
	assert.False(t, f.Checked("updated"))
	f.SetValue("name", "Alpha")
	f.SetChecked("updated", true)
	assert.Equal(t, "Alpha", f.Value("name"))
	assert.True(t, f.Checked("updated"))
}
