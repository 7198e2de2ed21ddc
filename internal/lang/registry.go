package lang

import "errors"

// ErrUnsupportedLanguage is the input error for a tag outside the registry.
// It surfaces at the HTTP boundary as a 400, never reaching the sandbox.
var ErrUnsupportedLanguage = errors.New("Unsupported language")

// Constructor builds a fresh executor for one submission.
type Constructor func(source, functionName string, cfg Config) Executor

// registry is the closed set of supported language tags. Adding a language
// means adding its executor in this package and an entry here.
var registry = map[string]Constructor{
	"python":     newPython,
	"javascript": newJavaScript,
	"typescript": newTypeScript,
	"java":       newJava,
	"kotlin":     newKotlin,
	"csharp":     newCSharp,
	"go":         newGo,
	"c":          newC,
	"cpp":        newCpp,
	"rust":       newRust,
}

// New looks up the language tag and instantiates its executor.
func New(language, source, functionName string, cfg Config) (Executor, error) {
	ctor, ok := registry[language]
	if !ok {
		return nil, ErrUnsupportedLanguage
	}
	return ctor(source, functionName, cfg), nil
}

// Supported returns the registered language tags in stable order.
func Supported() []string {
	return []string{
		"python", "javascript", "typescript",
		"c", "cpp", "java", "kotlin",
		"go", "rust", "csharp",
	}
}
