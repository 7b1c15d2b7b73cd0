package opengl

import (
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/naga/glsl"
)

// compiledShader caches the GLSL translation of a shader's vertex and
// fragment WGSL stages.
type compiledShader struct {
	vertexGLSL   string
	fragmentGLSL string
}

// compileWGSLToGLSL runs the same naga pipeline the pack's GLES backend
// uses: parse WGSL to an AST, lower it to naga's IR, then compile that IR
// to GLSL 4.30 core. Version 430 is required because naga emits
// layout(binding=N) qualifiers that don't exist before GLSL 3.30, and 4.30
// is the first version with guaranteed compute-shader support should the
// renderer ever add a compute pass.
func compileWGSLToGLSL(wgsl, entryPoint string) (string, error) {
	if wgsl == "" {
		return "", fmt.Errorf("opengl: shader has no WGSL source")
	}

	ast, err := naga.Parse(wgsl)
	if err != nil {
		return "", fmt.Errorf("opengl: WGSL parse error: %w", err)
	}

	module, err := naga.Lower(ast)
	if err != nil {
		return "", fmt.Errorf("opengl: WGSL lower error: %w", err)
	}

	code, _, err := glsl.Compile(module, glsl.Options{
		LangVersion:        glsl.Version430,
		EntryPoint:         entryPoint,
		ForceHighPrecision: true,
	})
	if err != nil {
		return "", fmt.Errorf("opengl: GLSL compile error for entry point %q: %w", entryPoint, err)
	}
	return code, nil
}

// compileShaderProgram translates both stages of a shader and reports the
// first failure with enough context (which stage, which shader) for the
// hot-reload log line callers expect.
func compileShaderProgram(name, vertexWGSL, fragmentWGSL string) (*compiledShader, error) {
	vs, err := compileWGSLToGLSL(vertexWGSL, "vs_main")
	if err != nil {
		return nil, fmt.Errorf("shader %q vertex stage: %w", name, err)
	}
	fs, err := compileWGSLToGLSL(fragmentWGSL, "fs_main")
	if err != nil {
		return nil, fmt.Errorf("shader %q fragment stage: %w", name, err)
	}
	return &compiledShader{vertexGLSL: vs, fragmentGLSL: fs}, nil
}
