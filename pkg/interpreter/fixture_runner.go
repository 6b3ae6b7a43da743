package interpreter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"

	"lambda/trampoline-go/pkg/ast"
	"lambda/trampoline-go/pkg/runtime"
)

// Fixtures are YAML files holding a serialized term plus the expected
// outcome. Every fixture is replayed through both evaluators; the naive
// path acts as the oracle and the trampolined result must match it
// structurally as well as matching the declared expectation.

type fixture struct {
	Name   string         `yaml:"name"`
	Term   map[string]any `yaml:"term"`
	Expect fixtureExpect  `yaml:"expect"`
}

type fixtureExpect struct {
	Closure *fixtureClosure `yaml:"closure"`
	Error   string          `yaml:"error"`
}

type fixtureClosure struct {
	Parameter string         `yaml:"parameter"`
	Body      map[string]any `yaml:"body"`
	EnvKeys   []string       `yaml:"envKeys"`
}

func readFixture(path string) (*fixture, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	var fix fixture
	if err := decoder.Decode(&fix); err != nil {
		return nil, fmt.Errorf("fixture %s: %w", path, err)
	}
	if fix.Term == nil {
		return nil, fmt.Errorf("fixture %s: missing term", path)
	}
	return &fix, nil
}

// fixturePaths lists the fixture files under dir in sorted order.
func fixturePaths(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	paths := lo.FilterMap(entries, func(entry os.DirEntry, _ int) (string, bool) {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			return "", false
		}
		return filepath.Join(dir, entry.Name()), true
	})
	slices.Sort(paths)
	return paths, nil
}

// decodeTerm rebuilds an ast.Term from its serialized node map.
func decodeTerm(node map[string]any) (ast.Term, error) {
	typ, _ := node["type"].(string)
	switch ast.NodeType(typ) {
	case ast.NodeVariable:
		name, ok := node["name"].(string)
		if !ok {
			return nil, fmt.Errorf("Variable node missing name")
		}
		return ast.NewVariable(name), nil
	case ast.NodeAbstraction:
		parameter, ok := node["parameter"].(string)
		if !ok {
			return nil, fmt.Errorf("Abstraction node missing parameter")
		}
		bodyNode, ok := node["body"].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("Abstraction node missing body")
		}
		body, err := decodeTerm(bodyNode)
		if err != nil {
			return nil, err
		}
		return ast.NewAbstraction(parameter, body), nil
	case ast.NodeApplication:
		fnNode, ok := node["function"].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("Application node missing function")
		}
		function, err := decodeTerm(fnNode)
		if err != nil {
			return nil, err
		}
		argNode, ok := node["argument"].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("Application node missing argument")
		}
		argument, err := decodeTerm(argNode)
		if err != nil {
			return nil, err
		}
		return ast.NewApplication(function, argument), nil
	default:
		return nil, fmt.Errorf("unknown term type %q", typ)
	}
}

func checkFixtureResult(fix *fixture, value runtime.Value, err error) error {
	if fix.Expect.Error != "" {
		if err == nil {
			return fmt.Errorf("expected error %q, got value %#v", fix.Expect.Error, value)
		}
		if err.Error() != fix.Expect.Error {
			return fmt.Errorf("expected error %q, got %q", fix.Expect.Error, err.Error())
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("unexpected error: %w", err)
	}
	expected := fix.Expect.Closure
	if expected == nil {
		return fmt.Errorf("fixture declares no expectation")
	}
	closure, ok := value.(*runtime.ClosureValue)
	if !ok {
		return fmt.Errorf("expected closure, got %#v", value)
	}
	if closure.Parameter != expected.Parameter {
		return fmt.Errorf("expected parameter %q, got %q", expected.Parameter, closure.Parameter)
	}
	expectedBody, decodeErr := decodeTerm(expected.Body)
	if decodeErr != nil {
		return decodeErr
	}
	if !ast.Equal(closure.Body, expectedBody) {
		return fmt.Errorf("expected body %s, got %s", ast.String(expectedBody), ast.String(closure.Body))
	}
	keys := closure.Env.Keys()
	if len(keys) == 0 {
		keys = nil
	}
	expectedKeys := expected.EnvKeys
	if len(expectedKeys) == 0 {
		expectedKeys = nil
	}
	if !slices.Equal(keys, expectedKeys) {
		return fmt.Errorf("expected captured bindings %v, got %v", expectedKeys, keys)
	}
	return nil
}
