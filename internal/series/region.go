package series

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownRegion is returned when a region identifier is not one of us, aus or eu.
var ErrUnknownRegion = errors.New("unknown region")

// Region selects the base magnitudes used for generated series.
type Region int

const (
	US Region = iota
	AUS
	EU
)

var regionNames = [...]string{US: "us", AUS: "aus", EU: "eu"}

// Regions returns every region in tab order.
func Regions() []Region {
	return []Region{US, AUS, EU}
}

// ParseRegion maps an identifier such as "us" or "AUS" to a Region.
func ParseRegion(s string) (Region, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for i, name := range regionNames {
		if name == needle {
			return Region(i), nil
		}
	}
	return 0, fmt.Errorf("%w %q (expected one of us, aus, eu)", ErrUnknownRegion, s)
}

// Valid reports whether r is one of the declared regions.
func (r Region) Valid() bool {
	return r >= US && r <= EU
}

// String returns the lower-case identifier, e.g. "aus".
func (r Region) String() string {
	if !r.Valid() {
		return fmt.Sprintf("region(%d)", int(r))
	}
	return regionNames[r]
}

// Label returns the upper-case display name, e.g. "AUS".
func (r Region) Label() string {
	return strings.ToUpper(r.String())
}

// Set implements pflag.Value so a Region can be bound directly to a flag.
func (r *Region) Set(s string) error {
	parsed, err := ParseRegion(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Type implements pflag.Value.
func (r *Region) Type() string {
	return "region"
}

// params are the per-region magnitudes feeding the series formulas.
type params struct {
	employment   float64
	gdp          float64
	housing      float64
	wage         float64
	unemployment float64
	cpi          float64
	interest     float64
	business     float64
	retail       float64
	manufacture  float64
	consumer     float64
}

var regionParams = [...]params{
	US: {
		employment: 150000, gdp: 23000, housing: 400000, wage: 35,
		unemployment: 5.5, cpi: 100, interest: 4.5,
		business: 1.1, retail: 1000, manufacture: 1.1, consumer: 1.2,
	},
	AUS: {
		employment: 12000, gdp: 2000, housing: 800000, wage: 45,
		unemployment: 4.5, cpi: 110, interest: 3.5,
		business: 1.0, retail: 800, manufacture: 0.9, consumer: 1.1,
	},
	EU: {
		employment: 160000, gdp: 18000, housing: 300000, wage: 30,
		unemployment: 6.5, cpi: 105, interest: 2.5,
		business: 0.9, retail: 900, manufacture: 1.0, consumer: 0.9,
	},
}
