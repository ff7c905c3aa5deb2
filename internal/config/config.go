// Package config loads assembler and image settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/BurntSushi/toml"

	"github.com/ezrec/bitasm/asm"
	"github.com/ezrec/bitasm/image"
	"github.com/ezrec/bitasm/translate"
)

var f = translate.From

var (
	ErrImageSize = errors.New(f("image size must be positive"))
	ErrSignature = errors.New(f("signature bytes must be 0..255"))
	ErrFill      = errors.New(f("fill byte must be 0..255"))
	ErrOrigin    = errors.New(f("origin must be 0..65535"))
)

// Assembler is the [assembler] table.
type Assembler struct {
	Origin  int               `toml:"origin"`
	Strict  bool              `toml:"strict"`
	Defines map[string]string `toml:"defines"`
}

// Image is the [image] table.
type Image struct {
	Size      int   `toml:"size"`
	Signature []int `toml:"signature"`
	Fill      int   `toml:"fill"`
}

// Config is the complete configuration file.
type Config struct {
	Assembler Assembler `toml:"assembler"`
	Image     Image     `toml:"image"`
}

// Default returns the boot sector configuration.
func Default() Config {
	sig := make([]int, len(image.BootSector.Signature))
	for n, b := range image.BootSector.Signature {
		sig[n] = int(b)
	}

	return Config{
		Image: Image{
			Size:      image.BootSector.Size,
			Signature: sig,
			Fill:      int(image.BootSector.Fill),
		},
	}
}

// Load reads path over the defaults. Keys absent from the file keep their
// default values.
func Load(path string) (cfg Config, err error) {
	cfg = Default()

	_, err = toml.DecodeFile(path, &cfg)
	if err != nil {
		err = fmt.Errorf("%v: %w", path, err)
		return
	}

	_, err = cfg.Profile()
	if err != nil {
		err = fmt.Errorf("%v: %w", path, err)
		return
	}

	if cfg.Assembler.Origin < 0 || cfg.Assembler.Origin > 0xffff {
		err = fmt.Errorf("%v: %w", path, ErrOrigin)
	}

	return
}

// Profile converts the [image] table to an image profile.
func (cfg Config) Profile() (profile image.Profile, err error) {
	if cfg.Image.Size <= 0 {
		err = ErrImageSize
		return
	}
	if cfg.Image.Fill < 0 || cfg.Image.Fill > 0xff {
		err = ErrFill
		return
	}

	sig := make([]byte, len(cfg.Image.Signature))
	for n, value := range cfg.Image.Signature {
		if value < 0 || value > 0xff {
			err = ErrSignature
			return
		}
		sig[n] = byte(value)
	}

	profile = image.Profile{
		Size:      cfg.Image.Size,
		Signature: sig,
		Fill:      byte(cfg.Image.Fill),
	}
	return
}

// Apply copies the [assembler] table onto an assembler. Defines are
// predefined in name order.
func (cfg Config) Apply(a *asm.Assembler) {
	a.Origin = uint16(cfg.Assembler.Origin)
	a.Strict = cfg.Assembler.Strict
	for _, name := range slices.Sorted(maps.Keys(cfg.Assembler.Defines)) {
		a.Predefine(name, cfg.Assembler.Defines[name])
	}
}
