package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhath/centrum/internal/candidate"
	"github.com/nhath/centrum/internal/color"
	"github.com/nhath/centrum/internal/search"
)

func TestPrintResultCandidates(t *testing.T) {
	var buf bytes.Buffer
	err := printResult(&buf, search.Result{Candidates: []candidate.Candidate{
		{Name: "2e20\n(200000000000000000000)", Action: "COPY:200000000000000000000", Source: candidate.Calc},
		{Name: "Firefox", Action: "firefox %u", Source: candidate.App},
	}})
	require.NoError(t, err)
	assert.Equal(t,
		"2e20 (200000000000000000000)\tcalc\tCOPY:200000000000000000000\n"+
			"Firefox\tapp\tfirefox %u\n",
		buf.String())
}

func TestPrintResultColor(t *testing.T) {
	var buf bytes.Buffer
	c := color.Default
	require.NoError(t, printResult(&buf, search.Result{ColorMode: true, Color: &c}))
	assert.Equal(t, "color\t#FF0000FF\trgba(255, 0, 0, 1)\n", buf.String())

	buf.Reset()
	require.NoError(t, printResult(&buf, search.Result{ColorMode: true}))
	assert.Equal(t, "color\tinvalid\n", buf.String())
}
