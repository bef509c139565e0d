package config

import "flag"

// Result is the outcome of Parse.
type Result struct {
	Config Config
	// Path is the YAML file that was loaded, if any.
	Path string
	// Substituted is set when the requested grid size fell back to the default.
	Substituted bool
	// RequestedSize is the grid size before normalization.
	RequestedSize int
}

// Parse builds a Config from defaults, the file named by -config, the
// environment and the flags in args. Flags given explicitly win over every
// other source.
func Parse(fs *flag.FlagSet, args []string, environ map[string]string) (Result, error) {
	var res Result
	fs.StringVar(&res.Path, "config", "", "path to a YAML config file")
	flagged := DefaultConfig()
	flagged.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return res, err
	}

	cfg := DefaultConfig()
	if res.Path != "" {
		if err := cfg.LoadFile(res.Path); err != nil {
			return res, err
		}
	}
	if err := cfg.LoadEnv(environ); err != nil {
		return res, err
	}
	fs.Visit(func(f *flag.Flag) { cfg.override(f.Name, flagged) })

	res.RequestedSize = cfg.GridSize
	res.Substituted = cfg.Normalize()
	res.Config = cfg
	return res, cfg.Validate()
}

func (c *Config) override(name string, from Config) {
	switch name {
	case "grid-size":
		c.GridSize = from.GridSize
	case "interval":
		c.IntervalMS = from.IntervalMS
	case "mov-file":
		c.MovieFile = from.MovieFile
	case "generations":
		c.Generations = from.Generations
	case "save-count":
		c.SaveCount = from.SaveCount
	case "fps":
		c.FPS = from.FPS
	case "scale":
		c.Scale = from.Scale
	case "seed":
		c.Seed = from.Seed
	case "workers":
		c.Workers = from.Workers
	case "output-dir":
		c.OutputDir = from.OutputDir
	case "log-format":
		c.LogFormat = from.LogFormat
	}
}
