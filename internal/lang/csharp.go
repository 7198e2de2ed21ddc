package lang

import "github.com/openjudge/arbiter/internal/harness"

const csharpImage = "csharp-sandbox:latest"

// The .NET toolchain needs a project descriptor next to the source, and the
// build runs from the project directory rather than the mount root.
func newCSharp(source, functionName string, cfg Config) Executor {
	cfg.Policy = cfg.Policy.WithDotnetHeadroom()
	return newDockerExecutor(langSpec{
		tag:     "csharp",
		image:   cfg.image("csharp", csharpImage),
		workdir: "/app/SandboxApp",
		compileCmd: []string{
			"dotnet", "build", "--configuration", "Release", "--nologo",
		},
		runCmd: []string{
			"dotnet", "/app/SandboxApp/bin/Release/net8.0/SandboxApp.dll",
		},
		render: func(source, _ string) (map[string]string, error) {
			rendered, err := harness.Render(harness.CSharp, map[string]string{
				harness.TokenSourceCode: source,
			})
			if err != nil {
				return nil, err
			}
			return map[string]string{
				"SandboxApp/Program.cs":        rendered,
				"SandboxApp/SandboxApp.csproj": harness.CSharpProject,
			}, nil
		},
	}, source, functionName, cfg)
}
