package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"autobid/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocationCSV(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []entity.LocationRow
	}{
		{
			name:  "header dropped and fields trimmed",
			input: "Region,Province,City,Barangay\n\"Region VII\", Cebu ,'Cebu City', Lahug\n",
			expected: []entity.LocationRow{
				{Region: "Region VII", Province: "Cebu", City: "Cebu City", Barangay: "Lahug"},
			},
		},
		{
			name:  "no header keeps first row",
			input: "NCR,Metro Manila,Makati,Poblacion\nNCR,Metro Manila,Makati,Bel-Air\n",
			expected: []entity.LocationRow{
				{Region: "NCR", Province: "Metro Manila", City: "Makati", Barangay: "Poblacion"},
				{Region: "NCR", Province: "Metro Manila", City: "Makati", Barangay: "Bel-Air"},
			},
		},
		{
			name:  "blank and short lines skipped",
			input: "\n  \nregion,province,city,barangay\r\n\r\nNCR,Metro Manila,Pasig\r\nNCR,Metro Manila,Pasig,Kapitolyo,extra\r\n",
			expected: []entity.LocationRow{
				{Region: "NCR", Province: "Metro Manila", City: "Pasig", Barangay: "Kapitolyo"},
			},
		},
		{
			name:  "no header and first region mentions region",
			input: "Region A,Prov A,City A,Brgy 1\nRegion A,Prov A,City A,Brgy 1\n",
			expected: []entity.LocationRow{
				{Region: "Region A", Province: "Prov A", City: "City A", Barangay: "Brgy 1"},
				{Region: "Region A", Province: "Prov A", City: "City A", Barangay: "Brgy 1"},
			},
		},
		{
			name:  "single row with region in its name",
			input: "National Capital Region,Metro Manila,Makati,Poblacion\n",
			expected: []entity.LocationRow{
				{Region: "National Capital Region", Province: "Metro Manila", City: "Makati", Barangay: "Poblacion"},
			},
		},
		{
			name:  "quoted header dropped",
			input: "\"REGION\",\"Province\",\"City\",\"Barangay\"\nNCR,Metro Manila,Taguig,Fort Bonifacio\n",
			expected: []entity.LocationRow{
				{Region: "NCR", Province: "Metro Manila", City: "Taguig", Barangay: "Fort Bonifacio"},
			},
		},
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := ParseLocationCSV(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, rows)
		})
	}
}

func TestLoadLocationFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locations.csv")
	require.NoError(t, os.WriteFile(path, []byte("Region A,Prov A,City A,Brgy 1\n"), 0o600))

	rows, err := LoadLocationFile(path)
	require.NoError(t, err)
	assert.Equal(t, []entity.LocationRow{{Region: "Region A", Province: "Prov A", City: "City A", Barangay: "Brgy 1"}}, rows)

	_, err = LoadLocationFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}
