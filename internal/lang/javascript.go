package lang

import "github.com/openjudge/arbiter/internal/harness"

const jsImage = "js-sandbox:latest"

func newJavaScript(source, functionName string, cfg Config) Executor {
	return newDockerExecutor(langSpec{
		tag:    "javascript",
		image:  cfg.image("javascript", jsImage),
		runCmd: []string{"node", "main.js"},
		render: func(source, _ string) (map[string]string, error) {
			rendered, err := harness.Render(harness.JavaScript, map[string]string{
				harness.TokenSourceCode: source,
			})
			if err != nil {
				return nil, err
			}
			return map[string]string{"main.js": rendered}, nil
		},
	}, source, functionName, cfg)
}

// TypeScript shares the Node image; tsc compiles main.ts next to itself and
// the existence probe guards against the compiler exiting zero without
// emitting anything.
func newTypeScript(source, functionName string, cfg Config) Executor {
	return newDockerExecutor(langSpec{
		tag:   "typescript",
		image: cfg.image("typescript", jsImage),
		compileCmd: []string{
			"tsc", "main.ts",
			"--target", "ES2020",
			"--module", "commonjs",
			"--lib", "ES2020",
			"--skipLibCheck",
		},
		compileCheck: []string{"test", "-f", "main.js"},
		runCmd:       []string{"node", "main.js"},
		render: func(source, _ string) (map[string]string, error) {
			rendered, err := harness.Render(harness.TypeScript, map[string]string{
				harness.TokenSourceCode: source,
			})
			if err != nil {
				return nil, err
			}
			return map[string]string{"main.ts": rendered}, nil
		},
	}, source, functionName, cfg)
}
