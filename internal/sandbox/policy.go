package sandbox

import "time"

// Policy centralises the numeric limits applied to every sandbox container
// and every exec inside one. The zero value is not usable; start from
// DefaultPolicy and override per language where the toolchain demands it.
type Policy struct {
	Memory     string `yaml:"memory"` // docker --memory; swap is pinned to the same value
	CPUs       string `yaml:"cpus"`   // docker --cpus
	PidsLimit  string `yaml:"pids"`   // docker --pids-limit
	NofileSoft string `yaml:"nofile"` // ulimit nofile, soft == hard
	SleepSecs  int    `yaml:"sleep_seconds"`

	CompileTimeout time.Duration `yaml:"compile_timeout"`
	ExecTimeout    time.Duration `yaml:"exec_timeout"`

	MaxStdoutBytes  int `yaml:"max_stdout_bytes"`
	MaxCompileError int `yaml:"max_compile_error_bytes"`
}

func DefaultPolicy() Policy {
	return Policy{
		Memory:          "256m",
		CPUs:            "0.5",
		PidsLimit:       "128",
		NofileSoft:      "1024",
		SleepSecs:       300,
		CompileTimeout:  30 * time.Second,
		ExecTimeout:     5 * time.Second,
		MaxStdoutBytes:  64 * 1024,
		MaxCompileError: 1000,
	}
}

// WithJVMHeadroom loosens the memory cap for JVM toolchains, which refuse to
// start under the default budget.
func (p Policy) WithJVMHeadroom() Policy {
	p.Memory = "512m"
	return p
}

// WithDotnetHeadroom loosens process and fd caps for the .NET SDK; msbuild
// spawns a worker tree that trips the default pids limit.
func (p Policy) WithDotnetHeadroom() Policy {
	p.Memory = "512m"
	p.PidsLimit = "512"
	p.NofileSoft = "65535"
	return p
}
