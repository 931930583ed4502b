package module

import (
	"github.com/jclec/hikari/internal/platform/config"
	"github.com/jclec/hikari/internal/services/vocab/domain"
)

// Options holds configuration settings for the vocab module
type Options struct {
	Path      string
	Format    domain.Format
	Delimiter string
}

// FromConfig reads configuration settings from the config.Conf
func FromConfig(cfg config.Conf) Options {
	vf := cfg.Prefix("CORE_VOCAB_")
	return Options{
		Path:      vf.MayString("PATH", ""),
		Format:    domain.Format(vf.MayEnum("FORMAT", "txt", "txt", "jpdb")),
		Delimiter: vf.MayString("DELIMITER", ""),
	}
}
