package inventory

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validHeader = "hostname,architecture,mac_addresses,power_type,power_user,power_pass,power_driver,power_address,cipher_suite_id,power_boot_type,privilege_level,k_g"

func TestParse(t *testing.T) {
	input := validHeader + "\n" +
		"node-1,amd64/generic,aa:bb:cc:dd:ee:01,ipmi,root,pass1,LAN_2_0,10.0.0.1,3,efi,ADMINISTRATOR,\n" +
		"node-2,arm64/generic,aa:bb:cc:dd:ee:02,ipmi,root,pass2,LAN_2_0,10.0.0.2,3,efi,OPERATOR,secret\n"

	rows, err := parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "node-1", rows[0].Hostname)
	assert.Equal(t, "amd64/generic", rows[0].Architecture)
	assert.Equal(t, "aa:bb:cc:dd:ee:01", rows[0].MACAddresses)
	assert.Equal(t, "ipmi", rows[0].PowerType)
	assert.Empty(t, rows[0].KG)

	assert.Equal(t, "node-2", rows[1].Hostname)
	assert.Equal(t, "OPERATOR", rows[1].PrivilegeLevel)
	assert.Equal(t, "secret", rows[1].KG)
}

func TestParsePowerParameters(t *testing.T) {
	row := Row{
		PowerUser:      "root",
		PowerPass:      "secret",
		PowerDriver:    "LAN_2_0",
		PowerAddress:   "10.0.0.1",
		CipherSuiteID:  "3",
		PowerBootType:  "efi",
		PrivilegeLevel: "ADMINISTRATOR",
		KG:             "kg-key",
	}

	params := row.PowerParameters()
	assert.Equal(t, map[string]string{
		"power_user":      "root",
		"power_pass":      "secret",
		"power_driver":    "LAN_2_0",
		"power_address":   "10.0.0.1",
		"cipher_suite_id": "3",
		"power_boot_type": "efi",
		"privilege_level": "ADMINISTRATOR",
		"k_g":             "kg-key",
	}, params)
}

func TestParseColumnOrderIndependent(t *testing.T) {
	// Columns may appear in any order as long as all are present.
	input := "architecture,hostname,mac_addresses,power_type,power_user,power_pass,power_driver,power_address,cipher_suite_id,power_boot_type,privilege_level,k_g\n" +
		"amd64/generic,node-1,aa:bb:cc:dd:ee:01,ipmi,root,pw,LAN_2_0,10.0.0.1,3,efi,ADMINISTRATOR,\n"

	rows, err := parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "node-1", rows[0].Hostname)
	assert.Equal(t, "amd64/generic", rows[0].Architecture)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{
			name:    "empty input",
			input:   "",
			wantErr: "expected a header row",
		},
		{
			name:    "missing column",
			input:   "hostname,architecture\nnode-1,amd64/generic\n",
			wantErr: `missing required column "mac_addresses"`,
		},
		{
			name: "empty hostname",
			input: validHeader + "\n" +
				",amd64/generic,aa:bb:cc:dd:ee:01,ipmi,root,pw,LAN_2_0,10.0.0.1,3,efi,ADMINISTRATOR,\n",
			wantErr: "line 2 has an empty hostname",
		},
		{
			name: "duplicate hostname",
			input: validHeader + "\n" +
				"node-1,amd64/generic,aa:bb:cc:dd:ee:01,ipmi,root,pw,LAN_2_0,10.0.0.1,3,efi,ADMINISTRATOR,\n" +
				"node-1,amd64/generic,aa:bb:cc:dd:ee:02,ipmi,root,pw,LAN_2_0,10.0.0.2,3,efi,ADMINISTRATOR,\n",
			wantErr: `line 3 repeats hostname "node-1"`,
		},
		{
			name: "ragged record",
			input: validHeader + "\n" +
				"node-1,amd64/generic\n",
			wantErr: "line 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseHeaderOnly(t *testing.T) {
	rows, err := parse(strings.NewReader(validHeader + "\n"))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.csv")
	content := validHeader + "\n" +
		"node-1,amd64/generic,aa:bb:cc:dd:ee:01,ipmi,root,pw,LAN_2_0,10.0.0.1,3,efi,ADMINISTRATOR,\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	rows, err := Load(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "node-1", rows[0].Hostname)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}
