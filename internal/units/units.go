package units

import (
	"errors"
	"fmt"
	"math"
)

// Domain errors for unit handling.
var (
	// ErrUnknown indicates a unit symbol with no registry entry.
	ErrUnknown = errors.New("units: unknown unit symbol")

	// ErrIncompatible indicates a conversion between different quantities.
	ErrIncompatible = errors.New("units: incompatible quantities")
)

// Quantity classifies units that convert into one another.
type Quantity int

const (
	Dimensionless Quantity = iota
	Length
	Time
	Frequency
	Angle
	Temperature
)

// Unit is a linear physical unit. The zero value is the undefined unit.
type Unit struct {
	Symbol   string
	Quantity Quantity
	factor   float64 // scale to the base unit of the quantity
}

// Defined reports whether u is a real unit rather than the zero value.
func (u Unit) Defined() bool { return u.Symbol != "" }

func (u Unit) String() string {
	if !u.Defined() {
		return "None"
	}
	return u.Symbol
}

var registry = map[string]Unit{
	"":         {},
	"DN":       {Symbol: "DN", Quantity: Dimensionless, factor: 1},
	"count":    {Symbol: "count", Quantity: Dimensionless, factor: 1},
	"m":        {Symbol: "m", Quantity: Length, factor: 1},
	"km":       {Symbol: "km", Quantity: Length, factor: 1e3},
	"mm":       {Symbol: "mm", Quantity: Length, factor: 1e-3},
	"um":       {Symbol: "um", Quantity: Length, factor: 1e-6},
	"nm":       {Symbol: "nm", Quantity: Length, factor: 1e-9},
	"Angstrom": {Symbol: "Angstrom", Quantity: Length, factor: 1e-10},
	"s":        {Symbol: "s", Quantity: Time, factor: 1},
	"ms":       {Symbol: "ms", Quantity: Time, factor: 1e-3},
	"us":       {Symbol: "us", Quantity: Time, factor: 1e-6},
	"min":      {Symbol: "min", Quantity: Time, factor: 60},
	"h":        {Symbol: "h", Quantity: Time, factor: 3600},
	"Hz":       {Symbol: "Hz", Quantity: Frequency, factor: 1},
	"kHz":      {Symbol: "kHz", Quantity: Frequency, factor: 1e3},
	"MHz":      {Symbol: "MHz", Quantity: Frequency, factor: 1e6},
	"GHz":      {Symbol: "GHz", Quantity: Frequency, factor: 1e9},
	"deg":      {Symbol: "deg", Quantity: Angle, factor: 1},
	"arcmin":   {Symbol: "arcmin", Quantity: Angle, factor: 1.0 / 60},
	"arcsec":   {Symbol: "arcsec", Quantity: Angle, factor: 1.0 / 3600},
	"rad":      {Symbol: "rad", Quantity: Angle, factor: 180 / math.Pi},
	"K":        {Symbol: "K", Quantity: Temperature, factor: 1},
}

// Parse looks up a unit by symbol. The empty string parses to the
// undefined unit.
func Parse(symbol string) (Unit, error) {
	u, ok := registry[symbol]
	if !ok {
		return Unit{}, fmt.Errorf("%w: %q", ErrUnknown, symbol)
	}
	return u, nil
}

// MustParse is Parse for symbols known at compile time.
func MustParse(symbol string) Unit {
	u, err := Parse(symbol)
	if err != nil {
		panic(err)
	}
	return u
}

// Factor returns the multiplier that converts values in from to values
// in to.
func Factor(from, to Unit) (float64, error) {
	if !from.Defined() || !to.Defined() {
		return 0, fmt.Errorf("%w: conversion involving undefined unit", ErrUnknown)
	}
	if from.Quantity != to.Quantity {
		return 0, fmt.Errorf("%w: %s -> %s", ErrIncompatible, from, to)
	}
	return from.factor / to.factor, nil
}

// Convert returns a new slice with vals converted from from to to.
func Convert(vals []float64, from, to Unit) ([]float64, error) {
	f, err := Factor(from, to)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(vals))
	for i, v := range vals {
		out[i] = v * f
	}
	return out, nil
}
