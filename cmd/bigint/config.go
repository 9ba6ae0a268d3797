package main

import (
	"github.com/BurntSushi/toml"

	"github.com/calebcase/bigint/integer"
)

type config struct {
	Output outputConfig `toml:"output"`
}

type outputConfig struct {
	// Radix is the default input and output radix.
	Radix int    `toml:"radix"`
	Color string `toml:"color"`
}

func defaultConfig() config {
	return config{
		Output: outputConfig{
			Radix: 10,
			Color: "auto",
		},
	}
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return config{}, Error.New("%s: failed to parse TOML: %v", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return config{}, Error.New("%s: unknown key %s", path, undecoded[0])
	}

	if r := cfg.Output.Radix; r < integer.MinRadix || r > integer.MaxRadix {
		return config{}, Error.New("%s: [output].radix %d out of range [%d, %d]",
			path, r, integer.MinRadix, integer.MaxRadix)
	}
	switch cfg.Output.Color {
	case "auto", "on", "off":
	default:
		return config{}, Error.New("%s: [output].color must be auto, on or off", path)
	}

	return cfg, nil
}
