package main

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the display-substitution tables: Labels maps raw
// occupation strings to pretty (usually LaTeX) orbital labels, and
// Geometries maps filename-derived tags to display names. Both are
// optional; anything missing falls back to the raw string.
type Config struct {
	Labels     map[string]string
	Geometries map[string]string
}

// LoadConfig reads the substitution tables from a TOML file with
// [labels] and [geometries] tables
func LoadConfig(filename string) (Config, error) {
	var conf Config
	cont, err := os.ReadFile(filename)
	if err != nil {
		return conf, err
	}
	err = toml.Unmarshal(cont, &conf)
	return conf, err
}

// Label returns the display form of a configuration string, or the
// string itself if no substitution is defined
func (c Config) Label(conf string) string {
	if l, ok := c.Labels[conf]; ok {
		return l
	}
	return conf
}

// Geometry returns the display name for a geometry tag, or the tag
// itself if no substitution is defined
func (c Config) Geometry(tag string) string {
	if n, ok := c.Geometries[tag]; ok {
		return n
	}
	return tag
}
