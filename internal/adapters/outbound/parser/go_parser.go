package parser

import (
	"fmt"
	"go/ast"
	goparser "go/parser"
	"go/token"
	"strconv"
	"strings"
)

// envLookups are the os functions whose first literal argument names an
// environment variable.
var envLookups = map[string]bool{
	"Getenv":    true,
	"LookupEnv": true,
}

// SourceFacts is what the scanners need from a single Go file.
type SourceFacts struct {
	Path    string
	Package string
	Imports []string
	EnvVars []string
	Tests   []string
	HasMain bool
}

// GoParser extracts SourceFacts using go/ast.
type GoParser struct{}

func New() *GoParser {
	return &GoParser{}
}

// Parse reads facts from src. filename is only used for positions and
// error messages.
func (p *GoParser) Parse(filename string, src []byte) (*SourceFacts, error) {
	fset := token.NewFileSet()
	file, err := goparser.ParseFile(fset, filename, src, goparser.SkipObjectResolution)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filename, err)
	}

	facts := &SourceFacts{
		Path:    filename,
		Package: file.Name.Name,
	}

	osAlias := ""
	for _, imp := range file.Imports {
		path := strings.Trim(imp.Path.Value, `"`)
		facts.Imports = append(facts.Imports, path)
		if path == "os" {
			osAlias = "os"
			if imp.Name != nil {
				osAlias = imp.Name.Name
			}
		}
	}

	seen := make(map[string]bool)
	ast.Inspect(file, func(n ast.Node) bool {
		switch node := n.(type) {
		case *ast.FuncDecl:
			if node.Recv != nil {
				return true
			}
			if node.Name.Name == "main" && facts.Package == "main" {
				facts.HasMain = true
			}
			if isTestFunc(node) {
				facts.Tests = append(facts.Tests, node.Name.Name)
			}
		case *ast.CallExpr:
			if name, ok := envKey(node, osAlias); ok && !seen[name] {
				seen[name] = true
				facts.EnvVars = append(facts.EnvVars, name)
			}
		}
		return true
	})

	return facts, nil
}

func envKey(call *ast.CallExpr, osAlias string) (string, bool) {
	if osAlias == "" || len(call.Args) == 0 {
		return "", false
	}
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok || !envLookups[sel.Sel.Name] {
		return "", false
	}
	pkg, ok := sel.X.(*ast.Ident)
	if !ok || pkg.Name != osAlias {
		return "", false
	}
	lit, ok := call.Args[0].(*ast.BasicLit)
	if !ok || lit.Kind != token.STRING {
		return "", false
	}
	name, err := strconv.Unquote(lit.Value)
	if err != nil || name == "" {
		return "", false
	}
	return name, true
}

func isTestFunc(fn *ast.FuncDecl) bool {
	name := fn.Name.Name
	if !strings.HasPrefix(name, "Test") || name == "TestMain" {
		return false
	}
	params := fn.Type.Params.List
	if len(params) != 1 {
		return false
	}
	star, ok := params[0].Type.(*ast.StarExpr)
	if !ok {
		return false
	}
	sel, ok := star.X.(*ast.SelectorExpr)
	return ok && sel.Sel.Name == "T"
}
