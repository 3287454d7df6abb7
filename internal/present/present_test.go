package present

import (
	"bytes"
	"strings"
	"testing"

	"csvsift/internal/config"
	"csvsift/internal/filter"
	"csvsift/internal/records"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult(t *testing.T) filter.Result {
	t.Helper()
	ds, err := records.Read(strings.NewReader(
		"id,first_name,last_name,age,city,phone_number\n" +
			"1,Ada,Lovelace,30,Austin,555-0101\n" +
			"2,Alan,Turing,45,Austin,555-0102\n"))
	require.NoError(t, err)
	return filter.Result{Records: ds.Records, Description: "Filtered results for age between 30 and 45:"}
}

func TestShow_Block(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, config.ViewBlock, PlainStyles()).Show(sampleResult(t), nil)

	out := buf.String()
	t.Logf("View:\n%s", out)

	assert.Contains(t, out, "Filtered results for age between 30 and 45:")
	assert.Contains(t, out, "User ID: 1")
	assert.Contains(t, out, "Name: Ada Lovelace")
	assert.Contains(t, out, "Age: 30")
	assert.Contains(t, out, "City: Austin")
	assert.Contains(t, out, "Phone Number: 555-0101")
	assert.Equal(t, 2, strings.Count(out, "-----------------"))
	assert.Less(t, strings.Index(out, "User ID: 1"), strings.Index(out, "User ID: 2"), "record order")
}

func TestShow_Table(t *testing.T) {
	var buf bytes.Buffer
	header := []string{"id", "first_name", "last_name", "age", "city", "phone_number"}
	New(&buf, config.ViewTable, PlainStyles()).Show(sampleResult(t), header)

	out := buf.String()
	t.Logf("View:\n%s", out)

	assert.Contains(t, out, "first_name")
	assert.Contains(t, out, "Lovelace")
	assert.Contains(t, out, "555-0102")
	assert.Contains(t, out, "2 row(s)")
	assert.Less(t, strings.Index(out, "phone_number"), strings.Index(out, "Lovelace"))

	desc := sampleResult(t).Description
	require.NotEmpty(t, desc)
	assert.Equal(t, 1, strings.Count(out, desc), "description is the table title")
	assert.Less(t, strings.Index(out, desc), strings.Index(out, "phone_number"))
}

func TestShow_Empty(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, "", PlainStyles()).Show(filter.Result{Description: "ignored"}, nil)

	assert.Contains(t, buf.String(), "No results")
	assert.NotContains(t, buf.String(), "ignored")
}

func TestShow_ReportsSkipped(t *testing.T) {
	res := sampleResult(t)
	res.Skipped = 2

	var buf bytes.Buffer
	New(&buf, config.ViewBlock, PlainStyles()).Show(res, nil)
	assert.Contains(t, buf.String(), "Skipped 2 row(s)")
}

func TestTable_Empty(t *testing.T) {
	tbl := NewTable("Title", []string{"a"})
	assert.Equal(t, "", tbl.View(PlainStyles()))
}

func TestTable_ShortRowsArePadded(t *testing.T) {
	tbl := NewTable("People", []string{"id", "city"})
	tbl.AddRow("1")

	view := tbl.View(PlainStyles())
	assert.Contains(t, view, "People")
	assert.Contains(t, view, "city")
}

func TestDetectTheme(t *testing.T) {
	t.Setenv("COLORFGBG", "15;0")
	assert.True(t, DetectTheme().IsDark)

	t.Setenv("COLORFGBG", "0;15")
	t.Setenv("CSVSIFT_DARK_MODE", "")
	assert.False(t, DetectTheme().IsDark)

	t.Setenv("CSVSIFT_DARK_MODE", "1")
	assert.True(t, DetectTheme().IsDark)
}
