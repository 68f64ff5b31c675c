package docdiff

import (
	"regexp"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	v := Version()
	require.NotEmpty(t, v)
	if v == "dev" {
		return
	}
	assert.Regexp(t, `^v\d`, v, "release versions are v-prefixed semver")
}

func TestCommit(t *testing.T) {
	c := Commit()
	require.NotEmpty(t, c)
	if c != "unknown" {
		assert.Regexp(t, `^[0-9a-f]{7,}$`, c)
	}
}

func TestBuildTime(t *testing.T) {
	bt := BuildTime()
	require.NotEmpty(t, bt)
	if bt != "unknown" {
		assert.Contains(t, bt, "T", "RFC3339 timestamp")
	}
}

func TestGoVersion(t *testing.T) {
	assert.Equal(t, runtime.Version(), GoVersion())
}

// TestBuildInfo checks the block printed under "docdiff v<version>" by the
// version command: four labelled lines in a fixed order.
func TestBuildInfo(t *testing.T) {
	lines := strings.Split(BuildInfo(), "\n")
	require.Len(t, lines, 4)

	want := []struct {
		label string
		value string
	}{
		{"Version", Version()},
		{"Commit", Commit()},
		{"Build Time", BuildTime()},
		{"Go Version", GoVersion()},
	}
	for i, w := range want {
		assert.Equal(t, w.label+": "+w.value, lines[i])
	}
	assert.NotRegexp(t, regexp.MustCompile(`\n$`), BuildInfo(), "the caller adds the trailing newline")
}
