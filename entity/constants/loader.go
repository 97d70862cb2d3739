package constants

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// File is the YAML layout of a constants override file. Absent keys keep
// the compiled-in defaults.
type File struct {
	MP            *float64 `yaml:"m_p"`
	C             *float64 `yaml:"c"`
	Hbar          *float64 `yaml:"hbar"`
	RhoLambdaBase *float64 `yaml:"rho_lambda_base"`
	A0            *float64 `yaml:"a0"`
	Rc            *float64 `yaml:"rc"`
}

func Load(path string) (Constants, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Constants{}, fmt.Errorf("failed to read constants file: %w", err)
	}

	var f File
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return Constants{}, fmt.Errorf("failed to parse constants file %s: %w", path, err)
	}

	if f.RhoLambdaBase != nil && *f.RhoLambdaBase <= 0 {
		return Constants{}, fmt.Errorf("constants file %s: %w: rho_lambda_base must be positive, got %v",
			path, ErrInvalidConstant, *f.RhoLambdaBase)
	}

	k := f.Apply(Default())
	if err := k.Validate(); err != nil {
		return Constants{}, fmt.Errorf("constants file %s: %w", path, err)
	}

	log.WithFields(log.Fields{
		"path":       path,
		"M_P":        k.MP,
		"c":          k.C,
		"hbar":       k.Hbar,
		"rho_lambda": k.RhoLambda,
		"a0":         k.A0,
		"Rc":         k.Rc,
	}).Debug("Constants loaded")

	return k, nil
}

// Apply overlays the values present in f onto base.
func (f File) Apply(base Constants) Constants {
	k := base
	if f.MP != nil {
		k.MP = *f.MP
	}
	if f.C != nil {
		k.C = *f.C
	}
	if f.Hbar != nil {
		k.Hbar = *f.Hbar
	}
	if f.RhoLambdaBase != nil {
		k.RhoLambda = math.Pow(*f.RhoLambdaBase, 4)
	}
	if f.A0 != nil {
		k.A0 = *f.A0
	}
	if f.Rc != nil {
		k.Rc = *f.Rc
	}
	return k
}
