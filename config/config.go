// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config is the root-level settings struct and is a mix of settings
// available in a settings file and those available from the command line
type Config struct {
	// the k-mer length used to build the de Bruijn graph
	K int `mapstructure:"kmer"`

	// length of the synthetic genome in bp
	GenomeLength int `mapstructure:"genome-length"`

	// length of each sampled read in bp
	ReadLength int `mapstructure:"read-length"`

	// the number of reads to sample from the genome
	ReadCount int `mapstructure:"read-count"`

	// per-base substitution error rate in [0, 1]
	ErrorRate float64 `mapstructure:"error-rate"`

	// length of the repeat segment copied into the genome (0 disables)
	RepeatLength int `mapstructure:"repeat-length"`

	// the number of extra copies of the repeat segment
	RepeatCopies int `mapstructure:"repeat-copies"`

	// PRNG seed for the simulator; 0 means seed from the clock
	Seed int64 `mapstructure:"seed"`

	// whether to log extra run information
	Verbose bool `mapstructure:"verbose"`
}

// Setup points Viper at a settings file, when one was passed, and
// registers the default for every setting. Called once from cmd before
// any command runs.
func Setup(file string) {
	setDefaults()

	if file == "" {
		return
	}

	viper.SetConfigFile(file)
	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("failed to read settings file %s: %v", file, err)
	}
}

// New returns a new Config struct populated by Viper settings (either
// from the settings file and/or command line arguments)
func New() *Config {
	setDefaults()

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode settings into struct, %v", err)
	}

	return &c
}

func setDefaults() {
	viper.SetDefault("kmer", 17)
	viper.SetDefault("genome-length", 1000)
	viper.SetDefault("read-length", 50)
	viper.SetDefault("read-count", 200)
	viper.SetDefault("error-rate", 0.0)
	viper.SetDefault("repeat-length", 0)
	viper.SetDefault("repeat-copies", 1)
	viper.SetDefault("seed", int64(0))
	viper.SetDefault("verbose", false)
}
