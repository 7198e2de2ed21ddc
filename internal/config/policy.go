package config

import "github.com/openjudge/arbiter/internal/sandbox"

// Policy projects the manifest limits onto the sandbox resource policy,
// keeping the defaults for anything unset.
func (c *Config) Policy() sandbox.Policy {
	p := sandbox.DefaultPolicy()
	if c.Limits.Memory != "" {
		p.Memory = c.Limits.Memory
	}
	if c.Limits.CPUs != "" {
		p.CPUs = c.Limits.CPUs
	}
	if c.Limits.Pids != "" {
		p.PidsLimit = c.Limits.Pids
	}
	if c.Limits.Nofile != "" {
		p.NofileSoft = c.Limits.Nofile
	}
	if c.Limits.SleepSeconds > 0 {
		p.SleepSecs = c.Limits.SleepSeconds
	}
	if d := c.Limits.CompileTimeout(); d > 0 {
		p.CompileTimeout = d
	}
	if d := c.Limits.ExecTimeout(); d > 0 {
		p.ExecTimeout = d
	}
	if c.Limits.MaxStdoutBytes > 0 {
		p.MaxStdoutBytes = c.Limits.MaxStdoutBytes
	}
	return p
}
