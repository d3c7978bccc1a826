// Completion: 100% - Configuration complete
package mir

import (
	"io"
	"os"

	"github.com/xyproto/env/v2"

	"github.com/xyproto/mir/internal/engine"
)

// DefaultMaxInlineDepth bounds how deeply compile-time calls may nest
// while being inlined
const DefaultMaxInlineDepth = 4096

// Config controls the evaluation pass
type Config struct {
	Verbose        bool      // print DEBUG lines to Output
	Output         io.Writer // defaults to os.Stderr
	Workers        int       // functions evaluated in parallel; <= 1 is sequential
	Strict         bool      // a compile-time call with a non-lambda callee is fatal
	MaxInlineDepth int       // <= 0 disables the limit
	Validate       bool      // check the input contract before evaluating
	VerifyOutput   bool      // check that no compile-time call survives
}

func DefaultConfig() *Config {
	return &Config{
		Output:         os.Stderr,
		Workers:        1,
		MaxInlineDepth: DefaultMaxInlineDepth,
		Validate:       true,
	}
}

// ConfigFromEnv reads the configuration from MIR_* environment variables
func ConfigFromEnv() *Config {
	return &Config{
		Verbose:        env.Bool("MIR_VERBOSE"),
		Output:         os.Stderr,
		Workers:        env.Int("MIR_WORKERS", engine.NumCPU()),
		Strict:         env.Bool("MIR_STRICT"),
		MaxInlineDepth: env.Int("MIR_MAX_INLINE_DEPTH", DefaultMaxInlineDepth),
		Validate:       !env.Bool("MIR_NO_VALIDATE"),
		VerifyOutput:   env.Bool("MIR_VERIFY"),
	}
}

func (c *Config) output() io.Writer {
	if c.Output == nil {
		return os.Stderr
	}
	return c.Output
}

// workers returns how many goroutines to use for n functions
func (c *Config) workers(n int) int {
	w := c.Workers
	if w > n {
		w = n
	}
	if w < 1 {
		w = 1
	}
	return w
}
