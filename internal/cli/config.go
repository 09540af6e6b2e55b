package cli

import (
	"strings"

	"github.com/MixinNetwork/sigma-go"
	"github.com/MixinNetwork/sigma-go/ed25519"
	"github.com/MixinNetwork/sigma-go/ristretto"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	ORACLE_MERLIN = "merlin"
)

// Config selects the proof system used by every command.
type Config struct {
	Protocol        string `mapstructure:"protocol"`
	Hash            string `mapstructure:"hash"`
	ChallengeLength int    `mapstructure:"challenge_length"`
	TranscriptLabel string `mapstructure:"transcript_label"`
}

type schemeConstructor func(int, sigma.OracleFactory) (sigma.Scheme, error)

var schemes = map[string]schemeConstructor{
	"dl-ed25519":       ed25519.NewDLScheme,
	"dlg-ed25519":      ed25519.NewDLGScheme,
	"dl-ristretto255":  ristretto.NewDLScheme,
	"dlg-ristretto255": ristretto.NewDLGScheme,
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("protocol", "dlg-ed25519")
	v.SetDefault("hash", "sha256")
	v.SetDefault("challenge_length", sigma.MaxChallengeLength)
	v.SetDefault("transcript_label", "sigma-go")
}

// newViper reads SIGMA_* environment variables and the optional config file.
func newViper(configFile string) (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("SIGMA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrap(err, "read config")
		}
	}
	return v, nil
}

func loadConfig(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	return &cfg, nil
}

func (c *Config) Oracle() (sigma.OracleFactory, error) {
	if c.Hash == ORACLE_MERLIN {
		return sigma.NewTranscriptOracle(c.TranscriptLabel), nil
	}
	newHash, err := sigma.HashByName(c.Hash)
	if err != nil {
		return nil, err
	}
	return sigma.NewHashOracle(newHash), nil
}

func (c *Config) Scheme() (sigma.Scheme, error) {
	newScheme, ok := schemes[c.Protocol]
	if !ok {
		return nil, errors.Errorf("unknown protocol %q", c.Protocol)
	}
	oracle, err := c.Oracle()
	if err != nil {
		return nil, err
	}
	scheme, err := newScheme(c.ChallengeLength, oracle)
	if err != nil {
		return nil, errors.Wrapf(err, "protocol %s", c.Protocol)
	}
	return scheme, nil
}
