// Package inventory reads the CSV machine inventory consumed by the bulk
// provisioning workflow.
package inventory

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// requiredColumns is the full CSV schema; the header row must contain every
// column listed here. Extra columns are ignored.
var requiredColumns = []string{
	"hostname",
	"architecture",
	"mac_addresses",
	"power_type",
	"power_user",
	"power_pass",
	"power_driver",
	"power_address",
	"cipher_suite_id",
	"power_boot_type",
	"privilege_level",
	"k_g",
}

// Row is one machine record from the inventory. Immutable once read.
type Row struct {
	Hostname     string
	Architecture string
	MACAddresses string
	PowerType    string

	// Out-of-band power management settings, passed to MAAS as the
	// nested power_parameters object.
	PowerUser      string
	PowerPass      string
	PowerDriver    string
	PowerAddress   string
	CipherSuiteID  string
	PowerBootType  string
	PrivilegeLevel string
	KG             string
}

// PowerParameters returns the row's power settings in the shape the MAAS
// `machines create` endpoint expects.
func (r Row) PowerParameters() map[string]string {
	return map[string]string{
		"power_user":      r.PowerUser,
		"power_pass":      r.PowerPass,
		"power_driver":    r.PowerDriver,
		"power_address":   r.PowerAddress,
		"cipher_suite_id": r.CipherSuiteID,
		"power_boot_type": r.PowerBootType,
		"privilege_level": r.PrivilegeLevel,
		"k_g":             r.KG,
	}
}

// Load reads the inventory from a CSV file. A header row is required; a
// missing column, an empty or duplicate hostname, or an unreadable file is
// a fatal error for the whole run.
func Load(path string) ([]Row, error) {
	// #nosec G304 - path is an operator-supplied CLI argument
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open inventory: %w", err)
	}
	defer func() { _ = f.Close() }()

	return parse(f)
}

func parse(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("inventory is empty, expected a header row")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read inventory header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("inventory is missing required column %q", col)
		}
	}

	var rows []Row
	seen := make(map[string]struct{})
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read inventory line %d: %w", line, err)
		}

		field := func(col string) string { return record[index[col]] }

		row := Row{
			Hostname:       field("hostname"),
			Architecture:   field("architecture"),
			MACAddresses:   field("mac_addresses"),
			PowerType:      field("power_type"),
			PowerUser:      field("power_user"),
			PowerPass:      field("power_pass"),
			PowerDriver:    field("power_driver"),
			PowerAddress:   field("power_address"),
			CipherSuiteID:  field("cipher_suite_id"),
			PowerBootType:  field("power_boot_type"),
			PrivilegeLevel: field("privilege_level"),
			KG:             field("k_g"),
		}

		if row.Hostname == "" {
			return nil, fmt.Errorf("inventory line %d has an empty hostname", line)
		}
		if _, dup := seen[row.Hostname]; dup {
			return nil, fmt.Errorf("inventory line %d repeats hostname %q", line, row.Hostname)
		}
		seen[row.Hostname] = struct{}{}

		rows = append(rows, row)
	}

	return rows, nil
}
