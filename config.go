/*
Copyright © 2018 the AeroBulk authors.
This file is part of AeroBulk.

AeroBulk is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

AeroBulk is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with AeroBulk.  If not, see <http://www.gnu.org/licenses/>.
*/

package aerobulk

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"

	"github.com/hamersu9t/aerobulk/science/bulk/coare"
	"github.com/hamersu9t/aerobulk/science/bulk/ecmwf"
	"github.com/hamersu9t/aerobulk/science/bulk/ncar"
)

// Config holds the solver configuration as decoded from a TOML
// document.
type Config struct {
	// Scheme is the name of the bulk parameterization to use:
	// "ecmwf" (default), "coare", or "ncar".
	Scheme string `toml:"Scheme"`

	// NIter is the number of fixed-point sweeps the solver
	// performs.
	NIter int `toml:"NIter"`

	// Zt and Zu are the measurement heights [m] for
	// temperature/humidity and wind.
	Zt float64 `toml:"Zt"`
	Zu float64 `toml:"Zu"`
}

// DefaultConfig returns the configuration used when a field is left
// unset: the ECMWF scheme with 10 sweeps and both measurement
// heights at 10 m.
func DefaultConfig() *Config {
	return &Config{
		Scheme: "ecmwf",
		NIter:  10,
		Zt:     10.,
		Zu:     10.,
	}
}

// LoadConfig decodes a TOML configuration, filling unset fields from
// DefaultConfig, and validates the result.
func LoadConfig(r io.Reader) (*Config, error) {
	c := new(Config)
	if _, err := toml.DecodeReader(r, c); err != nil {
		return nil, fmt.Errorf("aerobulk: decoding configuration: %v", err)
	}
	d := DefaultConfig()
	if c.Scheme == "" {
		c.Scheme = d.Scheme
	}
	if c.NIter == 0 {
		c.NIter = d.NIter
	}
	if c.Zt == 0 {
		c.Zt = d.Zt
	}
	if c.Zu == 0 {
		c.Zu = d.Zu
	}
	if err := c.Valid(); err != nil {
		return nil, err
	}
	return c, nil
}

// Valid checks the configuration for contract violations.
func (c *Config) Valid() error {
	if _, err := SchemeByName(c.Scheme); err != nil {
		return err
	}
	if c.NIter <= 0 {
		return fmt.Errorf("aerobulk: iteration count must be positive, got %d", c.NIter)
	}
	if !(c.Zt > 0.) || !(c.Zu > 0.) {
		return fmt.Errorf("aerobulk: measurement heights must be positive, got zt=%g, zu=%g", c.Zt, c.Zu)
	}
	return nil
}

// SchemeImpl returns the bulk parameterization named by the
// configuration.
func (c *Config) SchemeImpl() (Scheme, error) {
	return SchemeByName(c.Scheme)
}

// SchemeByName returns the bulk parameterization with the given
// name. Valid options are "ecmwf", "coare", and "ncar".
func SchemeByName(name string) (Scheme, error) {
	switch name {
	case "ecmwf":
		return ecmwf.New(), nil
	case "coare":
		return coare.New(), nil
	case "ncar":
		return ncar.New(), nil
	default:
		return nil, fmt.Errorf("aerobulk: unknown bulk parameterization %q; valid options are ecmwf, coare, and ncar", name)
	}
}
