package codegen

import (
	"fmt"
	"go/ast"
	"go/constant"
	"go/parser"
	"go/token"
	"go/types"
	"strconv"
	"strings"
	"testing"
)

// stubImporter provides the standard library functions generated code calls
type stubImporter struct{}

func (stubImporter) Import(path string) (*types.Package, error) {
	pkg := types.NewPackage(path, path)
	str := types.Typ[types.String]
	param := func(name string, typ types.Type) *types.Var {
		return types.NewParam(token.NoPos, pkg, name, typ)
	}

	var fn *types.Func
	switch path {
	case "strings":
		sig := types.NewSignatureType(nil, nil, nil,
			types.NewTuple(param("elems", types.NewSlice(str)), param("sep", str)),
			types.NewTuple(param("", str)), false)
		fn = types.NewFunc(token.NoPos, pkg, "Join", sig)
	case "strconv":
		sig := types.NewSignatureType(nil, nil, nil,
			types.NewTuple(param("i", types.Typ[types.Int])),
			types.NewTuple(param("", str)), false)
		fn = types.NewFunc(token.NoPos, pkg, "Itoa", sig)
	default:
		return nil, fmt.Errorf("unexpected import %q", path)
	}

	pkg.Scope().Insert(fn)
	pkg.MarkComplete()
	return pkg, nil
}

// checked is generated code that parsed and type-checked as a package
type checked struct {
	src  string
	file *ast.File
	info *types.Info
}

// typeCheck wraps generated declarations in a package with the given imports
// and a Table header type, and type-checks it
func typeCheck(t *testing.T, src string, imports ...string) *checked {
	t.Helper()

	var b strings.Builder
	b.WriteString("package smbios\n\n")
	for _, imp := range imports {
		b.WriteString(fmt.Sprintf("import %q\n", imp))
	}
	b.WriteString("\ntype Table struct {\n\tType   uint8\n\tLength uint8\n\tHandle uint16\n}\n\n")
	b.WriteString(src)

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "generated.go", b.String(), parser.ParseComments)
	if err != nil {
		t.Fatalf("parse generated code: %v\n%s", err, b.String())
	}

	info := &types.Info{
		Defs: make(map[*ast.Ident]types.Object),
		Uses: make(map[*ast.Ident]types.Object),
	}
	conf := types.Config{Importer: stubImporter{}}
	if _, err := conf.Check("smbios", fset, []*ast.File{file}, info); err != nil {
		t.Fatalf("type-check generated code: %v\n%s", err, b.String())
	}

	return &checked{src: b.String(), file: file, info: info}
}

// method finds the method name declared on typeName
func (c *checked) method(t *testing.T, typeName, name string) *ast.FuncDecl {
	t.Helper()
	for _, decl := range c.file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Recv == nil || fn.Name.Name != name {
			continue
		}
		if recv, ok := fn.Recv.List[0].Type.(*ast.Ident); ok && recv.Name == typeName {
			return fn
		}
	}
	t.Fatalf("no method %s.%s in generated code:\n%s", typeName, name, c.src)
	return nil
}

// constValue returns the value of a constant identifier
func (c *checked) constValue(t *testing.T, expr ast.Expr) uint64 {
	t.Helper()
	ident, ok := expr.(*ast.Ident)
	if !ok {
		t.Fatalf("expected constant identifier, got %T", expr)
	}
	obj, ok := c.info.Uses[ident].(*types.Const)
	if !ok {
		t.Fatalf("%s is not a constant", ident.Name)
	}
	v, exact := constant.Uint64Val(obj.Val())
	if !exact {
		t.Fatalf("%s = %v does not fit uint64", ident.Name, obj.Val())
	}
	return v
}

// constType returns the type of a declared constant, unqualified
func (c *checked) constType(t *testing.T, name string) string {
	t.Helper()
	for ident, obj := range c.info.Defs {
		if k, ok := obj.(*types.Const); ok && ident.Name == name {
			return types.TypeString(k.Type(), func(*types.Package) string { return "" })
		}
	}
	t.Fatalf("no constant %s in generated code:\n%s", name, c.src)
	return ""
}

// consts returns the names declared in const blocks, in order
func (c *checked) consts() []string {
	var names []string
	for _, decl := range c.file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.CONST {
			continue
		}
		for _, spec := range gen.Specs {
			for _, name := range spec.(*ast.ValueSpec).Names {
				names = append(names, name.Name)
			}
		}
	}
	return names
}

// structFields returns the field names of a struct type, "Table" for the
// embedded header
func (c *checked) structFields(t *testing.T, typeName string) []string {
	t.Helper()
	for _, decl := range c.file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}
		for _, spec := range gen.Specs {
			ts := spec.(*ast.TypeSpec)
			st, ok := ts.Type.(*ast.StructType)
			if !ok || ts.Name.Name != typeName {
				continue
			}
			var names []string
			for _, f := range st.Fields.List {
				if len(f.Names) == 0 {
					names = append(names, f.Type.(*ast.Ident).Name)
					continue
				}
				for _, n := range f.Names {
					names = append(names, n.Name)
				}
			}
			return names
		}
	}
	t.Fatalf("no struct %s in generated code:\n%s", typeName, c.src)
	return nil
}

// enumString evaluates the generated enum String method for v
func (c *checked) enumString(t *testing.T, typeName string, v uint64) string {
	t.Helper()
	fn := c.method(t, typeName, "String")

	for _, stmt := range fn.Body.List {
		switch s := stmt.(type) {
		case *ast.SwitchStmt:
			for _, cc := range s.Body.List {
				clause := cc.(*ast.CaseClause)
				for _, e := range clause.List {
					if c.constValue(t, e) == v {
						ret := clause.Body[0].(*ast.ReturnStmt)
						return unquote(t, ret.Results[0])
					}
				}
			}
		case *ast.ReturnStmt:
			// return strconv.Itoa(int(v))
			call := s.Results[0].(*ast.CallExpr)
			if sel := call.Fun.(*ast.SelectorExpr); sel.Sel.Name != "Itoa" {
				t.Fatalf("fallback calls %s, want strconv.Itoa", sel.Sel.Name)
			}
			return strconv.FormatUint(v, 10)
		}
	}

	t.Fatalf("%s.String has no fallback return", typeName)
	return ""
}

// bitString evaluates the generated bit-field String method for v
func (c *checked) bitString(t *testing.T, typeName string, v uint64) string {
	t.Helper()
	fn := c.method(t, typeName, "String")

	var lines []string
	for _, stmt := range fn.Body.List {
		switch s := stmt.(type) {
		case *ast.IfStmt:
			// if v&Flag != 0 { lines = append(lines, "...") }
			cond := s.Cond.(*ast.BinaryExpr)
			and := cond.X.(*ast.BinaryExpr)
			if v&c.constValue(t, and.Y) != 0 {
				assign := s.Body.List[0].(*ast.AssignStmt)
				call := assign.Rhs[0].(*ast.CallExpr)
				lines = append(lines, unquote(t, call.Args[1]))
			}
		case *ast.ReturnStmt:
			// return strings.Join(lines, "\n")
			call := s.Results[0].(*ast.CallExpr)
			return strings.Join(lines, unquote(t, call.Args[1]))
		}
	}

	t.Fatalf("%s.String has no return", typeName)
	return ""
}

func unquote(t *testing.T, expr ast.Expr) string {
	t.Helper()
	lit, ok := expr.(*ast.BasicLit)
	if !ok || lit.Kind != token.STRING {
		t.Fatalf("expected string literal, got %T", expr)
	}
	s, err := strconv.Unquote(lit.Value)
	if err != nil {
		t.Fatalf("unquote %s: %v", lit.Value, err)
	}
	return s
}

// squash collapses whitespace so gofmt alignment does not matter
func squash(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
