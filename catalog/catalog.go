// Package catalog provides the standard set of named units, grouped by
// physical quantity.
//
// Every unit is composed from the SI base units through the quantify API
// (Scale, MultiplyBy, Power, Add). Nothing is hard-coded beyond the base
// units and the scale constants of the definitions. Construction happens in
// one explicit, dependency-ordered function: base SI units, then derived
// multiplicative units, then affine temperature scales. Using a unit before
// it is defined fails the build with *ErrForwardReference.
//
//	c := catalog.Standard()
//	q := quantify.NewQuantity(1, c.Length.Meter)
//	ft, _ := q.ConvertTo(c.Length.Foot) // 3.28084 ft
package catalog

import (
	"fmt"
	"sync"

	"github.com/alexshd/quantify"
)

// LengthUnits holds the metric and imperial lengths, derived from the meter.
type LengthUnits struct {
	Meter, Millimeter, Centimeter, Decimeter, Decameter, Hectometer, Kilometer quantify.Unit

	Thou, Inch, Foot, Yard, Chain, Furlong, Mile quantify.Unit

	NauticalMile, LightYear quantify.Unit
}

// MassUnits holds the masses, derived from the kilogram.
type MassUnits struct {
	Kilogram, Gram, Milligram, Ton quantify.Unit
	Ounce, Pound                   quantify.Unit
}

// TimeUnits holds the durations, derived from the second.
type TimeUnits struct {
	Second, Microsecond, Millisecond, Minute, Hour, Day quantify.Unit
}

// ElectricUnits holds the ampere and the units derived from it.
type ElectricUnits struct {
	Ampere, Coulomb, Volt, Ohm, Farad quantify.Unit
}

// TemperatureUnits holds kelvin and the affine Celsius and Fahrenheit
// scales derived from it.
type TemperatureUnits struct {
	Kelvin, Celsius, Fahrenheit quantify.Unit
}

// AmountOfSubstanceUnits holds the mole.
type AmountOfSubstanceUnits struct {
	Mole quantify.Unit
}

// LuminousIntensityUnits holds the candela.
type LuminousIntensityUnits struct {
	Candela quantify.Unit
}

// AreaUnits holds squared lengths.
type AreaUnits struct {
	SquareMeter, Are, Hectare, SquareKilometer, SquareInch quantify.Unit
}

// VolumeUnits holds cubed lengths.
type VolumeUnits struct {
	Liter, Milliliter, Centiliter, Deciliter, CubicMeter quantify.Unit
}

// SpeedUnits holds length per time.
type SpeedUnits struct {
	MeterPerSecond, KilometerPerHour, MilePerHour, Knot quantify.Unit
}

// ForceUnits holds the newton and pound-force.
type ForceUnits struct {
	Newton, PoundForce quantify.Unit
}

// EnergyUnits holds energy and power units.
type EnergyUnits struct {
	Joule, Kilojoule, Megajoule, Gigajoule quantify.Unit
	Watt, Kilowatt, Megawatt               quantify.Unit
	WattSecond, WattHour, KilowattHour     quantify.Unit
	Calorie, Kilocalorie                   quantify.Unit
	Horsepower                             quantify.Unit
}

// PressureUnits holds force per area.
type PressureUnits struct {
	Pascal, Hectopascal, Kilopascal, Bar, Millibar, Atmosphere, PoundPerSquareInch quantify.Unit
}

// FrequencyUnits holds reciprocal times.
type FrequencyUnits struct {
	Hertz, Megahertz, RevolutionsPerMinute quantify.Unit
}

// TorqueUnits holds force times length.
type TorqueUnits struct {
	NewtonMeter, PoundFoot quantify.Unit
}

// Catalog is the full set of standard units.
type Catalog struct {
	Length            LengthUnits
	Mass              MassUnits
	Time              TimeUnits
	Electric          ElectricUnits
	Temperature       TemperatureUnits
	AmountOfSubstance AmountOfSubstanceUnits
	LuminousIntensity LuminousIntensityUnits
	Area              AreaUnits
	Volume            VolumeUnits
	Speed             SpeedUnits
	Force             ForceUnits
	Energy            EnergyUnits
	Pressure          PressureUnits
	Frequency         FrequencyUnits
	Torque            TorqueUnits
}

// Group is a named list of units in definition order.
type Group struct {
	Name  string
	Units []quantify.Unit
}

var standard = sync.OnceValues(New)

// Standard returns the shared catalog, building it on first use. It panics
// if the built-in definitions are inconsistent.
func Standard() *Catalog {
	c, err := standard()
	if err != nil {
		panic(fmt.Sprintf("catalog: %v", err))
	}
	return c
}

// New builds a fresh catalog.
func New() (*Catalog, error) {
	var (
		c   Catalog
		b   = newBuilder()
		log = quantify.Logger()
	)

	// Base SI units.
	c.Length.Meter = b.base("meter", "m", quantify.NewDimensions(1))
	c.Mass.Kilogram = b.base("kilogram", "kg", quantify.NewDimensions(0, 1))
	c.Time.Second = b.base("second", "s", quantify.NewDimensions(0, 0, 1))
	c.Electric.Ampere = b.base("ampere", "A", quantify.NewDimensions(0, 0, 0, 1))
	c.Temperature.Kelvin = b.base("kelvin", "K", quantify.NewDimensions(0, 0, 0, 0, 1))
	c.AmountOfSubstance.Mole = b.base("mole", "mol", quantify.NewDimensions(0, 0, 0, 0, 0, 1))
	c.LuminousIntensity.Candela = b.base("candela", "cd", quantify.NewDimensions(0, 0, 0, 0, 0, 0, 1))
	log.Debug("catalog base units defined", "count", b.count)

	buildLength(b, &c.Length)
	buildMass(b, &c.Mass)
	buildTime(b, &c.Time)

	// Derived multiplicative units.
	buildArea(b, &c)
	buildVolume(b, &c)
	buildSpeed(b, &c)
	buildForce(b, &c)
	buildEnergy(b, &c)
	buildElectric(b, &c)
	buildPressure(b, &c)
	buildFrequency(b, &c)
	buildTorque(b, &c)

	// Affine units last.
	buildTemperature(b, &c.Temperature)

	if b.err != nil {
		return nil, fmt.Errorf("build catalog: %w", b.err)
	}
	log.Debug("catalog built", "units", b.count)
	return &c, nil
}

func buildLength(b *builder, l *LengthUnits) {
	l.Millimeter = b.scaled("millimeter", "mm", 0.001, l.Meter)
	l.Centimeter = b.scaled("centimeter", "cm", 0.01, l.Meter)
	l.Decimeter = b.scaled("decimeter", "dm", 0.1, l.Meter)
	l.Decameter = b.scaled("decameter", "Dm", 10, l.Meter)
	l.Hectometer = b.scaled("hectometer", "Hm", 100, l.Meter)
	l.Kilometer = b.scaled("kilometer", "km", 1000, l.Meter)

	l.Thou = b.scaled("thou", "th", 0.0000254, l.Meter)
	l.Inch = b.scaled("inch", "in", 1000, l.Thou)
	l.Foot = b.scaled("foot", "ft", 12, l.Inch)
	l.Yard = b.scaled("yard", "yd", 3, l.Foot)
	l.Chain = b.scaled("chain", "ch", 22, l.Yard)
	l.Furlong = b.scaled("furlong", "fur", 10, l.Chain)
	l.Mile = b.scaled("mile", "mi", 8, l.Furlong)

	l.NauticalMile = b.scaled("nautical mile", "nmi", 1852, l.Meter)
	l.LightYear = b.scaled("light-year", "ly", 9460730472580800, l.Meter)
	quantify.Logger().Debug("catalog group defined", "group", "length")
}

func buildMass(b *builder, m *MassUnits) {
	m.Gram = b.scaled("gram", "g", 0.001, m.Kilogram)
	m.Milligram = b.scaled("milligram", "mg", 0.001, m.Gram)
	m.Ton = b.scaled("ton", "ton", 1000, m.Kilogram)

	// Coarse kitchen approximations, not the avoirdupois definitions
	// (0.45359237 kg, 28.349523125 g).
	m.Ounce = b.scaled("ounce", "oz", 28, m.Gram)
	m.Pound = b.scaled("pound", "lb", 0.5, m.Kilogram)
	quantify.Logger().Debug("catalog group defined", "group", "mass")
}

func buildTime(b *builder, t *TimeUnits) {
	t.Microsecond = b.scaled("microsecond", "μs", 0.000001, t.Second)
	t.Millisecond = b.scaled("millisecond", "ms", 0.001, t.Second)
	t.Minute = b.scaled("minute", "min", 60, t.Second)
	t.Hour = b.scaled("hour", "h", 3600, t.Second)
	t.Day = b.scaled("day", "d", 24, t.Hour)
	quantify.Logger().Debug("catalog group defined", "group", "time")
}

func buildArea(b *builder, c *Catalog) {
	a := &c.Area
	a.SquareMeter = b.compose("meter^2", "m^2", pow(c.Length.Meter, 2))
	a.Are = b.scaled("are", "are", 100, a.SquareMeter)
	a.Hectare = b.scaled("hectare", "ha", 10000, a.SquareMeter)
	a.SquareKilometer = b.compose("kilometer^2", "Km^2", pow(c.Length.Kilometer, 2))
	a.SquareInch = b.compose("inch^2", "in^2", pow(c.Length.Inch, 2))
	quantify.Logger().Debug("catalog group defined", "group", "area")
}

func buildVolume(b *builder, c *Catalog) {
	v := &c.Volume
	v.Liter = b.compose("liter", "L", pow(c.Length.Decimeter, 3))
	v.Milliliter = b.scaled("milliliter", "mL", 0.001, v.Liter)
	v.Centiliter = b.scaled("centiliter", "cL", 0.01, v.Liter)
	v.Deciliter = b.scaled("deciliter", "dL", 0.1, v.Liter)
	v.CubicMeter = b.compose("meter^3", "m^3", pow(c.Length.Meter, 3))
	quantify.Logger().Debug("catalog group defined", "group", "volume")
}

func buildSpeed(b *builder, c *Catalog) {
	s := &c.Speed
	s.MeterPerSecond = b.compose("meter/second", "m/s", pow(c.Length.Meter, 1), pow(c.Time.Second, -1))
	s.KilometerPerHour = b.compose("kilometer/hour", "km/h", pow(c.Length.Kilometer, 1), pow(c.Time.Hour, -1))
	s.MilePerHour = b.compose("mile/hour", "mi/h", pow(c.Length.Mile, 1), pow(c.Time.Hour, -1))
	s.Knot = b.scaled("knot", "kn", 1.852, s.KilometerPerHour)
	quantify.Logger().Debug("catalog group defined", "group", "speed")
}

func buildForce(b *builder, c *Catalog) {
	f := &c.Force
	f.Newton = b.compose("newton", "N",
		pow(c.Length.Meter, 1), pow(c.Mass.Kilogram, 1), pow(c.Time.Second, -2))
	f.PoundForce = b.scaled("pound-force", "lbf", 4.4482216152605, f.Newton)
	quantify.Logger().Debug("catalog group defined", "group", "force")
}

func buildEnergy(b *builder, c *Catalog) {
	e := &c.Energy
	e.Joule = b.compose("joule", "J",
		pow(c.Length.Meter, 2), pow(c.Mass.Kilogram, 1), pow(c.Time.Second, -2))
	e.Kilojoule = b.scaled("kilojoule", "kJ", 1e3, e.Joule)
	e.Megajoule = b.scaled("megajoule", "MJ", 1e6, e.Joule)
	e.Gigajoule = b.scaled("gigajoule", "GJ", 1e9, e.Joule)

	e.Watt = b.compose("watt", "W", pow(e.Joule, 1), pow(c.Time.Second, -1))
	e.Kilowatt = b.scaled("kilowatt", "kW", 1e3, e.Watt)
	e.Megawatt = b.scaled("megawatt", "MW", 1e6, e.Watt)

	e.WattSecond = b.compose("watt-second", "Wsec", pow(e.Watt, 1), pow(c.Time.Second, 1))
	e.WattHour = b.compose("watt-hour", "Wh", pow(e.Watt, 1), pow(c.Time.Hour, 1))
	e.KilowattHour = b.scaled("kilowatt-hour", "kWh", 1000, e.WattHour)

	e.Calorie = b.scaled("calorie", "cal", 4.1868, e.Joule)
	e.Kilocalorie = b.scaled("kilocalorie", "kcal", 1000, e.Calorie)

	e.Horsepower = b.scaled("horsepower", "hp", 0.73549875, e.Kilowatt)
	quantify.Logger().Debug("catalog group defined", "group", "energy")
}

// buildElectric runs after buildEnergy: the volt is a watt per ampere.
func buildElectric(b *builder, c *Catalog) {
	e := &c.Electric
	e.Coulomb = b.compose("coulomb", "C", pow(c.Time.Second, 1), pow(e.Ampere, 1))
	e.Volt = b.compose("volt", "V", pow(c.Energy.Watt, 1), pow(e.Ampere, -1))
	e.Ohm = b.compose("ohm", "Ω", pow(e.Volt, 1), pow(e.Ampere, -1))
	e.Farad = b.compose("farad", "F", pow(e.Coulomb, 1), pow(e.Volt, -1))
	quantify.Logger().Debug("catalog group defined", "group", "electric")
}

func buildPressure(b *builder, c *Catalog) {
	p := &c.Pressure
	p.Pascal = b.compose("pascal", "Pa", pow(c.Force.Newton, 1), pow(c.Length.Meter, -2))
	p.Hectopascal = b.scaled("hectopascal", "hPa", 100, p.Pascal)
	p.Kilopascal = b.scaled("kilopascal", "KPa", 1000, p.Pascal)
	p.Bar = b.scaled("bar", "bar", 100000, p.Pascal)
	p.Millibar = b.scaled("millibar", "mbar", 0.001, p.Bar)
	p.Atmosphere = b.scaled("atmosphere", "atm", 101325, p.Pascal)
	p.PoundPerSquareInch = b.compose("pound per square inch", "psi",
		pow(c.Force.PoundForce, 1), pow(c.Area.SquareInch, -1))
	quantify.Logger().Debug("catalog group defined", "group", "pressure")
}

func buildFrequency(b *builder, c *Catalog) {
	f := &c.Frequency
	f.Hertz = b.compose("Hertz", "hz", pow(c.Time.Second, -1))
	f.Megahertz = b.scaled("MegaHertz", "Mhz", 1e6, f.Hertz)
	f.RevolutionsPerMinute = b.compose("Revolutions per minute", "rpm", pow(c.Time.Minute, -1))
	quantify.Logger().Debug("catalog group defined", "group", "frequency")
}

func buildTorque(b *builder, c *Catalog) {
	t := &c.Torque
	t.NewtonMeter = b.compose("newton-meter", "N*m", pow(c.Force.Newton, 1), pow(c.Length.Meter, 1))
	// Historically registered as "pound-foot " with a trailing space; the
	// name is trimmed so lookups by name work.
	t.PoundFoot = b.compose("pound-foot", "lbf*ft", pow(c.Force.PoundForce, 1), pow(c.Length.Foot, 1))
	quantify.Logger().Debug("catalog group defined", "group", "torque")
}

// buildTemperature derives the affine scales. Kelvin is the reference:
//
//	K = °C + 273.15
//	K = 5/9·°F + 5/9·459.67
func buildTemperature(b *builder, t *TemperatureUnits) {
	t.Celsius = b.affine("degree Celsius", "°C", t.Kelvin, 1, 273.15)
	t.Fahrenheit = b.affine("degree Fahrenheit", "°F", t.Kelvin, 5.0/9.0, (5.0/9.0)*459.67)
	quantify.Logger().Debug("catalog group defined", "group", "temperature")
}

// Groups lists every unit by physical quantity, in definition order.
func (c *Catalog) Groups() []Group {
	l, m, t, e, tp := c.Length, c.Mass, c.Time, c.Electric, c.Temperature
	a, v, s, f, en := c.Area, c.Volume, c.Speed, c.Force, c.Energy
	p, fr, tq := c.Pressure, c.Frequency, c.Torque

	return []Group{
		{"length", []quantify.Unit{l.Meter, l.Millimeter, l.Centimeter, l.Decimeter, l.Decameter,
			l.Hectometer, l.Kilometer, l.Thou, l.Inch, l.Foot, l.Yard, l.Chain, l.Furlong, l.Mile,
			l.NauticalMile, l.LightYear}},
		{"mass", []quantify.Unit{m.Kilogram, m.Gram, m.Milligram, m.Ton, m.Pound, m.Ounce}},
		{"time", []quantify.Unit{t.Second, t.Microsecond, t.Millisecond, t.Minute, t.Hour, t.Day}},
		{"electric", []quantify.Unit{e.Ampere, e.Coulomb, e.Volt, e.Ohm, e.Farad}},
		{"temperature", []quantify.Unit{tp.Kelvin, tp.Celsius, tp.Fahrenheit}},
		{"amount of substance", []quantify.Unit{c.AmountOfSubstance.Mole}},
		{"luminous intensity", []quantify.Unit{c.LuminousIntensity.Candela}},
		{"area", []quantify.Unit{a.SquareMeter, a.Are, a.Hectare, a.SquareKilometer, a.SquareInch}},
		{"volume", []quantify.Unit{v.Liter, v.Milliliter, v.Centiliter, v.Deciliter, v.CubicMeter}},
		{"speed", []quantify.Unit{s.MeterPerSecond, s.KilometerPerHour, s.MilePerHour, s.Knot}},
		{"force", []quantify.Unit{f.Newton, f.PoundForce}},
		{"energy", []quantify.Unit{en.Joule, en.Kilojoule, en.Megajoule, en.Gigajoule, en.Watt,
			en.Kilowatt, en.Megawatt, en.WattSecond, en.WattHour, en.KilowattHour, en.Calorie,
			en.Kilocalorie, en.Horsepower}},
		{"pressure", []quantify.Unit{p.Pascal, p.Hectopascal, p.Kilopascal, p.Bar, p.Millibar,
			p.Atmosphere, p.PoundPerSquareInch}},
		{"frequency", []quantify.Unit{fr.Hertz, fr.Megahertz, fr.RevolutionsPerMinute}},
		{"torque", []quantify.Unit{tq.NewtonMeter, tq.PoundFoot}},
	}
}

// Group returns the group with the given name.
func (c *Catalog) Group(name string) (Group, bool) {
	for _, g := range c.Groups() {
		if g.Name == name {
			return g, true
		}
	}
	return Group{}, false
}
