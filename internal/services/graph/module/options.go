package module

import "github.com/jclec/hikari/internal/platform/config"

// Options holds configuration settings for the graph module
type Options struct {
	Workers int
	OutPath string
	Persist bool
}

// FromConfig extracts Options from the given config.Conf
func FromConfig(cfg config.Conf) Options {
	gf := cfg.Prefix("CORE_GRAPH_")
	return Options{
		Workers: gf.MayInt("WORKERS", 1),
		OutPath: gf.MayString("OUT", "output.json"),
		Persist: gf.MayBool("PERSIST", false),
	}
}
