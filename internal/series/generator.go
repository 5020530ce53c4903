// Package series produces the mock economic time series shown in the gallery.
//
// Values come from fixed normal or cumulative-sum-of-normal processes scaled by
// per-region magnitudes. They exist to give the charts visual variety and carry
// no economic meaning.
package series

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// Axis bounds shared by every generated table.
const (
	firstYear = 2020
	lastYear  = 2023
	Points    = (lastYear - firstYear + 1) * 12
)

// Dates returns the month-end timestamps from January 2020 to December 2023.
func Dates() []time.Time {
	dates := make([]time.Time, 0, Points)
	for year := firstYear; year <= lastYear; year++ {
		for month := time.January; month <= time.December; month++ {
			// Day 0 of the following month is the last day of this one.
			dates = append(dates, time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC))
		}
	}
	return dates
}

type process int

const (
	// normal draws each point independently.
	normal process = iota
	// walk accumulates normal increments.
	walk
)

// columnSpec describes one column as offset + scale*process(mean, std).
type columnSpec struct {
	name    string
	process process
	mean    float64
	std     float64
	scale   float64
	offset  float64
}

type seriesSpec struct {
	name    string
	columns []columnSpec
}

func specsFor(p params) []seriesSpec {
	return []seriesSpec{
		{"Employment Trends", []columnSpec{
			{name: "Full Time", process: normal, mean: p.employment, std: p.employment * 0.04, scale: 1},
			{name: "Part Time", process: normal, mean: p.employment * 0.6, std: p.employment * 0.02, scale: 1},
		}},
		{"Unemployment Rate", []columnSpec{
			{name: "Rate", process: normal, mean: p.unemployment, std: 0.5, scale: 1},
		}},
		{"GDP Growth", []columnSpec{
			{name: "GDP", process: walk, mean: 0.5, std: 0.2, scale: p.gdp, offset: p.gdp},
		}},
		{"CPI Trends", []columnSpec{
			{name: "CPI", process: walk, mean: 0.2, std: 0.1, scale: 1, offset: p.cpi},
		}},
		{"Wage Growth", []columnSpec{
			{name: "Wages", process: walk, mean: 0.3, std: 0.1, scale: 1, offset: p.wage},
		}},
		{"Housing Prices", []columnSpec{
			{name: "Median Price", process: walk, mean: 5000, std: 1000, scale: 1, offset: p.housing},
		}},
		{"Interest Rates", []columnSpec{
			{name: "Rate", process: walk, mean: 0.02, std: 0.01, scale: 1, offset: p.interest},
		}},
		{"Trade Balance", []columnSpec{
			{name: "Exports", process: normal, mean: p.gdp * 0.12, std: p.gdp * 0.01, scale: 1},
			{name: "Imports", process: normal, mean: p.gdp * 0.14, std: p.gdp * 0.01, scale: 1},
		}},
		{"Business Confidence", []columnSpec{
			{name: "Index", process: normal, mean: 100, std: 5, scale: p.business},
		}},
		{"Retail Sales", []columnSpec{
			{name: "Sales", process: walk, mean: 0.4, std: 0.1, scale: 1, offset: p.retail},
		}},
		{"Manufacturing Index", []columnSpec{
			{name: "Index", process: normal, mean: 55, std: 3, scale: p.manufacture},
		}},
		{"Consumer Confidence", []columnSpec{
			{name: "Index", process: normal, mean: 95, std: 4, scale: p.consumer},
		}},
	}
}

// Generate builds the twelve series for region, drawing from rng. Every table
// in the result shares one Dates axis.
func Generate(region Region, rng *rand.Rand) (Collection, error) {
	if !region.Valid() {
		return Collection{}, fmt.Errorf("%w %s", ErrUnknownRegion, region)
	}

	dates := Dates()
	specs := specsFor(regionParams[region])

	out := Collection{Region: region, Entries: make([]Entry, len(specs))}
	for i, spec := range specs {
		table := Table{Dates: dates, Columns: make([]Column, len(spec.columns))}
		for j, col := range spec.columns {
			table.Columns[j] = Column{Name: col.name, Values: col.sample(rng, len(dates))}
		}
		out.Entries[i] = Entry{Name: spec.name, Table: table}
	}
	return out, nil
}

func (c columnSpec) sample(rng *rand.Rand, n int) []float64 {
	values := make([]float64, n)
	sum := 0.0
	for i := range values {
		draw := c.mean + c.std*rng.NormFloat64()
		if c.process == walk {
			sum += draw
			draw = sum
		}
		values[i] = draw*c.scale + c.offset
	}
	return values
}
