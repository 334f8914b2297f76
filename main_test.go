package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/starfield"
)

func TestStarsCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"stars", "--count", "3"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())

	var stars []starfield.Star
	require.NoError(t, json.Unmarshal(out.Bytes(), &stars))
	assert.Equal(t, starfield.Generate(3), stars)
}
