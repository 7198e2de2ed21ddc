package lang

import "github.com/openjudge/arbiter/internal/harness"

const pythonImage = "python-sandbox:latest"

// Python is pure reflection: the harness resolves and binds everything at
// run time. The compile stage only byte-compiles the bare submission so a
// syntax error is reported against the user's own line numbers, not the
// harness's.
func newPython(source, functionName string, cfg Config) Executor {
	return newDockerExecutor(langSpec{
		tag:        "python",
		image:      cfg.image("python", pythonImage),
		compileCmd: []string{"python3", "-m", "py_compile", "solution.py"},
		runCmd:     []string{"python3", "main.py"},
		render: func(source, _ string) (map[string]string, error) {
			rendered, err := harness.Render(harness.Python, map[string]string{
				harness.TokenSourceCode: source,
			})
			if err != nil {
				return nil, err
			}
			return map[string]string{
				"main.py":     rendered,
				"solution.py": source,
			}, nil
		},
	}, source, functionName, cfg)
}
