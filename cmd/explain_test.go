package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExplain(t *testing.T) {
	env := newBareEnv(t)

	out := env.run("explain", "rd", "robin david")
	env.equals(out, ""+
		"pattern     rd\n"+
		"text        robin david\n"+
		"            ^     ^\n"+
		"insertions  5")

	out = env.run("explain", "rd", "robin david", "-i", "0")
	env.equals(out, `no match for "rd" in "robin david"`)

	var res struct {
		Matched    bool  `json:"matched"`
		Insertions int   `json:"insertions"`
		Indexes    []int `json:"matchIndexes"`
	}
	require.NoError(t, json.Unmarshal(env.stdout("explain", "ace", "abcde", "-o", "json"), &res))
	assert.True(t, res.Matched)
	assert.Equal(t, 2, res.Insertions)
	assert.Equal(t, []int{0, 2, 4}, res.Indexes)
}
