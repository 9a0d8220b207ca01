package config

import (
	"fmt"

	"github.com/leapstack-labs/truthtable/internal/cli/output"
	"github.com/leapstack-labs/truthtable/pkg/truthtable"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, err := output.ParseMode(c.OutputFormat); err != nil {
		return err
	}
	if c.MaxVariables < 1 || c.MaxVariables > truthtable.MaxTableVariables {
		return fmt.Errorf("max_variables must be between 1 and %d, got %d",
			truthtable.MaxTableVariables, c.MaxVariables)
	}

	m := c.Markers
	if m.True == "" || m.False == "" || m.Error == "" {
		return fmt.Errorf("markers must not be empty (true=%q, false=%q, error=%q)", m.True, m.False, m.Error)
	}
	if m.True == m.False || m.True == m.Error || m.False == m.Error {
		return fmt.Errorf("markers must be distinct (true=%q, false=%q, error=%q)", m.True, m.False, m.Error)
	}
	return nil
}
