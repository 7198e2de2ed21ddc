package lang

import "github.com/openjudge/arbiter/internal/harness"

// Java and Kotlin share one image with the jackson jars pre-staged under
// /opt/libs. kotlinc does not expand classpath globs, so the compile step
// names the jars explicitly; the JVM run step can use the wildcard.

const jvmImage = "java-sandbox:latest"

const jvmLibClasspath = "/opt/libs/jackson-core.jar:" +
	"/opt/libs/jackson-databind.jar:" +
	"/opt/libs/jackson-annotations.jar"

func newJava(source, functionName string, cfg Config) Executor {
	cfg.Policy = cfg.Policy.WithJVMHeadroom()
	return newDockerExecutor(langSpec{
		tag:   "java",
		image: cfg.image("java", jvmImage),
		compileCmd: []string{
			"javac", "-cp", "/opt/libs/*", "Main.java",
		},
		runCmd: []string{
			"java",
			"-Xms32m", "-Xmx128m",
			"-XX:+UseSerialGC",
			"-XX:TieredStopAtLevel=1",
			"-cp", ".:/opt/libs/*",
			"Main",
		},
		render: func(source, _ string) (map[string]string, error) {
			rendered, err := harness.Render(harness.Java, map[string]string{
				harness.TokenSourceCode: source,
			})
			if err != nil {
				return nil, err
			}
			return map[string]string{"Main.java": rendered}, nil
		},
	}, source, functionName, cfg)
}

func newKotlin(source, functionName string, cfg Config) Executor {
	cfg.Policy = cfg.Policy.WithJVMHeadroom()
	return newDockerExecutor(langSpec{
		tag:   "kotlin",
		image: cfg.image("kotlin", jvmImage),
		compileCmd: []string{
			"kotlinc", "Main.kt",
			"-include-runtime",
			"-cp", jvmLibClasspath,
			"-d", "main.jar",
			"-J-Xms64m",
			"-J-Xmx256m",
			"-J-XX:MaxMetaspaceSize=128m",
			"-J-XX:+UseSerialGC",
		},
		runCmd: []string{
			"java",
			"-Xms32m", "-Xmx128m",
			"-XX:+UseSerialGC",
			"-XX:TieredStopAtLevel=1",
			"-cp", "main.jar:/opt/libs/*",
			"MainKt",
		},
		render: func(source, _ string) (map[string]string, error) {
			rendered, err := harness.Render(harness.Kotlin, map[string]string{
				harness.TokenSourceCode: source,
			})
			if err != nil {
				return nil, err
			}
			return map[string]string{"Main.kt": rendered}, nil
		},
	}, source, functionName, cfg)
}
