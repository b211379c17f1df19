package buildinfo

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintBuildData(t *testing.T) {
	old := buildVersion
	buildVersion = "v1.0.0"
	t.Cleanup(func() { buildVersion = old })

	var buf bytes.Buffer
	PrintBuildData(&buf)
	assert.Equal(t, "Build version: v1.0.0\nBuild date: N/A\nBuild commit: N/A\n", buf.String())
}
