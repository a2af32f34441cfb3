// Package materials carries a small compiled-in catalogue of metals and
// dielectric media, wired to the propagation and dielectrics formula
// packages. It saves callers from re-typing handbook conductivities and
// relaxation parameters for every skin-depth or permittivity evaluation.
package materials

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/pipebots/t6-rflib/dielectrics"
	"github.com/pipebots/t6-rflib/propagation"
	"github.com/pipebots/t6-rflib/rferr"
)

//go:embed metals.yaml
var metalsYAML []byte

//go:embed dielectrics.yaml
var dielectricsYAML []byte

// Metal describes a conductor by its bulk DC conductivity in S/m and its
// relative permeability.
type Metal struct {
	Name            string  `yaml:"name"`
	Conductivity    float64 `yaml:"conductivity"`
	RelPermeability float64 `yaml:"rel_permeability"`
}

// SkinDepth returns the metal's skin depth in metres at a frequency in GHz.
func (m Metal) SkinDepth(freqGHz float64) (float64, error) {
	return propagation.SkinDepth(freqGHz, m.Conductivity, m.RelPermeability)
}

// SurfaceResistance returns the metal's frequency-dependent resistance in
// Ohms at a frequency in GHz.
func (m Metal) SurfaceResistance(freqGHz float64) (float64, error) {
	return propagation.MetalResistance(freqGHz, m.Conductivity, m.RelPermeability)
}

// RelaxationModel names the dielectric relaxation model an entry uses.
type RelaxationModel string

const (
	ModelColeCole RelaxationModel = "cole-cole"
	ModelDebye    RelaxationModel = "debye"
)

// Dielectric describes a dielectric medium by relaxation-model parameters.
// Cole-Cole entries use ErStatic, RelaxTime and Alpha; Debye entries use the
// per-pole RelaxTimes and ErDisps slices. ErInf and CondStatic apply to
// both.
type Dielectric struct {
	Name       string          `yaml:"name"`
	Model      RelaxationModel `yaml:"model"`
	ErStatic   float64         `yaml:"er_static"`
	ErInf      float64         `yaml:"er_inf"`
	CondStatic float64         `yaml:"cond_static"`
	RelaxTime  float64         `yaml:"relax_time"`
	Alpha      float64         `yaml:"alpha"`
	RelaxTimes []float64       `yaml:"relax_times"`
	ErDisps    []float64       `yaml:"er_disps"`
}

// Permittivity returns the medium's complex relative permittivity at a
// frequency in GHz, in the ε' − j·ε'' convention.
func (d Dielectric) Permittivity(freqGHz float64) (complex128, error) {
	switch d.Model {
	case ModelColeCole:
		return dielectrics.ColeColeSingle(freqGHz, d.ErStatic, d.ErInf, d.CondStatic, d.RelaxTime, d.Alpha)
	case ModelDebye:
		return dielectrics.DebyeMultipole(freqGHz, d.ErInf, d.CondStatic, d.RelaxTimes, d.ErDisps)
	default:
		return 0, rferr.InvalidArgumentf("unknown relaxation model %q for %q", d.Model, d.Name)
	}
}

// TanDelta returns the medium's loss tangent at a frequency in GHz.
func (d Dielectric) TanDelta(freqGHz float64) (float64, error) {
	er, err := d.Permittivity(freqGHz)
	if err != nil {
		return 0, err
	}
	return dielectrics.ComplexPermittivityToTanDelta(real(er), imag(er))
}

var (
	loadOnce          sync.Once
	loadErr           error
	metalsByName      map[string]Metal
	dielectricsByName map[string]Dielectric
)

func load() error {
	loadOnce.Do(func() {
		var mdoc struct {
			Metals []Metal `yaml:"metals"`
		}
		if err := yaml.Unmarshal(metalsYAML, &mdoc); err != nil {
			loadErr = fmt.Errorf("parse embedded metals catalogue: %w", err)
			return
		}

		metalsByName = make(map[string]Metal, len(mdoc.Metals))
		for _, m := range mdoc.Metals {
			if m.Name == "" || m.Conductivity <= 0 || m.RelPermeability <= 0 {
				loadErr = fmt.Errorf("invalid metals catalogue entry %+v", m)
				return
			}
			metalsByName[strings.ToLower(m.Name)] = m
		}

		var ddoc struct {
			Dielectrics []Dielectric `yaml:"dielectrics"`
		}
		if err := yaml.Unmarshal(dielectricsYAML, &ddoc); err != nil {
			loadErr = fmt.Errorf("parse embedded dielectrics catalogue: %w", err)
			return
		}

		dielectricsByName = make(map[string]Dielectric, len(ddoc.Dielectrics))
		for _, d := range ddoc.Dielectrics {
			if d.Name == "" {
				loadErr = fmt.Errorf("unnamed dielectrics catalogue entry %+v", d)
				return
			}
			switch d.Model {
			case ModelColeCole:
				if d.RelaxTime <= 0 {
					loadErr = fmt.Errorf("dielectric %q needs a positive relax_time", d.Name)
					return
				}
			case ModelDebye:
				if len(d.RelaxTimes) == 0 || len(d.RelaxTimes) != len(d.ErDisps) {
					loadErr = fmt.Errorf("dielectric %q needs matching relax_times and er_disps", d.Name)
					return
				}
			default:
				loadErr = fmt.Errorf("dielectric %q has unknown model %q", d.Name, d.Model)
				return
			}
			dielectricsByName[strings.ToLower(d.Name)] = d
		}
	})
	return loadErr
}

// MetalByName looks up a catalogue metal case-insensitively.
func MetalByName(name string) (Metal, error) {
	if err := load(); err != nil {
		return Metal{}, err
	}
	m, ok := metalsByName[strings.ToLower(name)]
	if !ok {
		return Metal{}, rferr.InvalidArgumentf("unknown metal %q", name)
	}
	return m, nil
}

// DielectricByName looks up a catalogue dielectric case-insensitively.
func DielectricByName(name string) (Dielectric, error) {
	if err := load(); err != nil {
		return Dielectric{}, err
	}
	d, ok := dielectricsByName[strings.ToLower(name)]
	if !ok {
		return Dielectric{}, rferr.InvalidArgumentf("unknown dielectric %q", name)
	}
	return d, nil
}

// Metals lists the catalogue metal names in sorted order.
func Metals() ([]string, error) {
	if err := load(); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(metalsByName))
	for name := range metalsByName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Dielectrics lists the catalogue dielectric names in sorted order.
func Dielectrics() ([]string, error) {
	if err := load(); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(dielectricsByName))
	for name := range dielectricsByName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
