package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"autobid/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer

	printSummary(&buf, &entity.ImportSummary{
		SuccessCount: 2,
		Errors:       []string{"row 3: province Cebu: city is empty"},
	}, 1500*time.Millisecond)

	out := buf.String()
	assert.Contains(t, out, "Imported: 2\n")
	assert.Contains(t, out, "Failed:   1\n")
	assert.Contains(t, out, "  - row 3: province Cebu: city is empty\n")
}

func TestImportLocations_DryRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locations.csv")
	require.NoError(t, os.WriteFile(path, []byte(
		"region,province,city,barangay\nRegion VII,Cebu,Cebu City,Lahug\nRegion VII,Cebu,Mandaue,Banilad\n",
	), 0o600))

	cmd := newImportLocationsCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--dry-run", path})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Rows:     2\n")
	assert.Contains(t, buf.String(), "SHA256:   ")
}

func TestImportLocations_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, os.WriteFile(path, []byte("region,province,city,barangay\n"), 0o600))

	cmd := newImportLocationsCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{path})

	assert.EqualError(t, cmd.Execute(), "no location rows found")
}
