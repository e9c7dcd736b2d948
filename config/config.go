// Package config loads the engine configuration with Viper
// (viper.SetConfigName/AddConfigPath/ReadInConfig/GetString/GetInt/
// GetBool), validating the result eagerly so a bad config fails at load
// time rather than partway through a session.
package config

import (
	"strings"

	"github.com/adwise-fiu/Ciphercraft/comparison"
	"github.com/adwise-fiu/Ciphercraft/errs"
	"github.com/spf13/viper"
)

// DGKParams is the dgk_params config block.
type DGKParams struct {
	L int
	T int
	K int
}

// PaillierParams is the paillier_params config block.
type PaillierParams struct {
	KeySize        int
	UseFastVariant bool
}

// Engine is the validated, in-memory form of the {mode, variant,
// dgk_params, paillier_params} config schema.
type Engine struct {
	Mode     comparison.Mode
	Variant  comparison.Variant
	DGK      DGKParams
	Paillier PaillierParams
}

// defaults are conservative default key-generation parameters.
func defaults() Engine {
	return Engine{
		Mode:     comparison.DGKMode,
		Variant:  comparison.Original,
		DGK:      DGKParams{L: 16, T: 160, K: 1024},
		Paillier: PaillierParams{KeySize: 1024, UseFastVariant: true},
	}
}

// Load reads the config file called name (e.g. ciphercraft.yaml for
// "ciphercraft", or any Viper-supported format) from the given search
// paths, or from the current directory when none are given, and returns a
// validated Engine. Unset keys, or a missing file, fall back to the
// defaults above.
func Load(name string, searchPaths ...string) (Engine, error) {
	const op = "config.Load"
	v := viper.New()
	v.SetConfigName(name)
	if len(searchPaths) == 0 {
		v.AddConfigPath(".")
	}
	for _, p := range searchPaths {
		v.AddConfigPath(p)
	}
	applyDefaults(v)
	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return Engine{}, errs.New(errs.KeyParamInvalid, op, err)
		}
	}
	return fromViper(v)
}

// LoadBytes parses config data of the given Viper config type (e.g.
// "yaml") directly from memory, for tests and embedded defaults.
func LoadBytes(configType string, data []byte) (Engine, error) {
	const op = "config.LoadBytes"
	v := viper.New()
	v.SetConfigType(configType)
	applyDefaults(v)
	if err := v.ReadConfig(strings.NewReader(string(data))); err != nil {
		return Engine{}, errs.New(errs.KeyParamInvalid, op, err)
	}
	return fromViper(v)
}

func applyDefaults(v *viper.Viper) {
	d := defaults()
	v.SetDefault("mode", d.Mode.String())
	v.SetDefault("variant", d.Variant.String())
	v.SetDefault("dgk_params.l", d.DGK.L)
	v.SetDefault("dgk_params.t", d.DGK.T)
	v.SetDefault("dgk_params.k", d.DGK.K)
	v.SetDefault("paillier_params.key_size", d.Paillier.KeySize)
	v.SetDefault("paillier_params.use_fast_variant", d.Paillier.UseFastVariant)
}

func fromViper(v *viper.Viper) (Engine, error) {
	const op = "config.fromViper"
	var e Engine

	switch strings.ToUpper(v.GetString("mode")) {
	case "DGK":
		e.Mode = comparison.DGKMode
	case "PAILLIER":
		e.Mode = comparison.PaillierMode
	default:
		return Engine{}, errs.Newf(errs.KeyParamInvalid, op, "unrecognized mode %q", v.GetString("mode"))
	}

	switch strings.ToUpper(v.GetString("variant")) {
	case "ORIGINAL":
		e.Variant = comparison.Original
	case "VEUGEN":
		e.Variant = comparison.Veugen
	case "JOYE":
		e.Variant = comparison.Joye
	default:
		return Engine{}, errs.Newf(errs.KeyParamInvalid, op, "unrecognized variant %q", v.GetString("variant"))
	}

	e.DGK = DGKParams{
		L: v.GetInt("dgk_params.l"),
		T: v.GetInt("dgk_params.t"),
		K: v.GetInt("dgk_params.k"),
	}
	if e.DGK.L <= 0 || e.DGK.T <= 0 || e.DGK.K <= 0 {
		return Engine{}, errs.Newf(errs.KeyParamInvalid, op, "dgk_params must all be positive, got %+v", e.DGK)
	}

	e.Paillier = PaillierParams{
		KeySize:        v.GetInt("paillier_params.key_size"),
		UseFastVariant: v.GetBool("paillier_params.use_fast_variant"),
	}
	if e.Paillier.KeySize <= 0 {
		return Engine{}, errs.Newf(errs.KeyParamInvalid, op, "paillier_params.key_size must be positive, got %d", e.Paillier.KeySize)
	}

	return e, nil
}
