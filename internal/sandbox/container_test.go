package sandbox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStartSpecArgs(t *testing.T) {
	spec := StartSpec{
		Image:   "python-sandbox:latest",
		HostDir: "/mnt/sandbox/job-1",
		Policy:  DefaultPolicy(),
	}

	args := spec.args()
	joined := strings.Join(args, " ")

	assert.Equal(t, "run", args[0])
	assert.Contains(t, args, "-d")
	assert.Contains(t, args, "--rm")
	assert.Contains(t, joined, "--network none")
	assert.Contains(t, joined, "--cap-drop ALL")
	assert.Contains(t, joined, "--security-opt no-new-privileges")
	assert.Contains(t, joined, "-v /mnt/sandbox/job-1:/app")
	assert.Contains(t, joined, "-w /app")
	assert.Contains(t, joined, "--ulimit nofile=1024:1024")
	assert.Contains(t, joined, "--pids-limit 128")

	// No swap beyond the memory cap
	assert.Contains(t, joined, "--memory 256m")
	assert.Contains(t, joined, "--memory-swap 256m")

	// Sleep entry command comes last
	assert.Equal(t, "sleep", args[len(args)-2])
	assert.Equal(t, "300", args[len(args)-1])
}

func TestStartSpecArgsCustomWorkdir(t *testing.T) {
	spec := StartSpec{
		Image:   "csharp-sandbox:latest",
		HostDir: "/mnt/sandbox/job-2",
		Workdir: "/app/SandboxApp",
		Policy:  DefaultPolicy().WithDotnetHeadroom(),
	}

	joined := strings.Join(spec.args(), " ")
	assert.Contains(t, joined, "-w /app/SandboxApp")
	assert.Contains(t, joined, "--pids-limit 512")
	assert.Contains(t, joined, "--ulimit nofile=65535:65535")
	assert.Contains(t, joined, "--memory 512m")
}

func TestPolicyHeadrooms(t *testing.T) {
	base := DefaultPolicy()

	jvm := base.WithJVMHeadroom()
	assert.Equal(t, "512m", jvm.Memory)
	assert.Equal(t, base.PidsLimit, jvm.PidsLimit)

	dotnet := base.WithDotnetHeadroom()
	assert.Equal(t, "512", dotnet.PidsLimit)
	assert.Equal(t, "65535", dotnet.NofileSoft)

	// The originals are untouched
	assert.Equal(t, "256m", base.Memory)
}
