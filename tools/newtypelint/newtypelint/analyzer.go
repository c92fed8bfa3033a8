// SPDX-License-Identifier: MPL-2.0

// Package newtypelint implements a go/analysis analyzer for code built on
// github.com/invowk/newtype/pkg/newtype.
//
// It reports three kinds of findings:
//   - unsupported-capability: a newtype declaration whose tag derives a
//     capability the underlying type cannot support. The compiler rejects
//     only the operations that are used; this finds the declaration.
//   - ambiguous-capability: a tag that embeds a marker through two paths at
//     the same depth, so the capability is silently not derived.
//   - cross-tag-unwrap: a binary expression combining the unwrapped values
//     of newtypes with different tags.
//
// Findings are silenced with a //newtypelint:ignore comment on the same or
// the preceding line, or with exceptions in the TOML file named by -config.
package newtypelint

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"slices"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// Diagnostic categories, reported in the "category" field in -json mode.
const (
	CategoryUnsupportedCapability = "unsupported-capability"
	CategoryAmbiguousCapability   = "ambiguous-capability"
	CategoryCrossTagUnwrap        = "cross-tag-unwrap"
)

// Categories lists every diagnostic category.
var Categories = []string{
	CategoryUnsupportedCapability,
	CategoryAmbiguousCapability,
	CategoryCrossTagUnwrap,
}

// DefaultRuntimePath is the import path of the newtype package.
const DefaultRuntimePath = "github.com/invowk/newtype/pkg/newtype"

// Flag bindings. run reads them once through newRunConfig.
var (
	configPath  string
	runtimePath = DefaultRuntimePath
)

// Analyzer is the newtypelint analysis pass.
var Analyzer = &analysis.Analyzer{
	Name:     "newtypelint",
	Doc:      "reports newtype capabilities the underlying type cannot support, ambiguous capability markers and cross-tag unwrapping",
	URL:      "https://github.com/invowk/newtype/tools/newtypelint",
	Run:      run,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
}

func init() {
	Analyzer.Flags.StringVar(&configPath, "config", "",
		"path to exceptions TOML config file")
	Analyzer.Flags.StringVar(&runtimePath, "runtime", DefaultRuntimePath,
		"import path of the newtype package")
}

type runConfig struct {
	configPath  string
	runtimePath string
}

func newRunConfig() runConfig {
	return runConfig{configPath: configPath, runtimePath: runtimePath}
}

// checker holds the state of one run.
type checker struct {
	pass    *analysis.Pass
	cfg     *ExceptionConfig
	runtime string
	ignored map[string]map[int]bool // filename -> lines carrying the directive
}

func run(pass *analysis.Pass) (any, error) {
	rc := newRunConfig()
	cfg, err := loadConfig(rc.configPath)
	if err != nil {
		return nil, err
	}

	c := &checker{
		pass:    pass,
		cfg:     cfg,
		runtime: rc.runtimePath,
		ignored: ignoreDirectives(pass.Fset, pass.Files),
	}
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	var (
		specs []*ast.TypeSpec
		calls []*ast.CallExpr
	)
	insp.Preorder([]ast.Node{(*ast.TypeSpec)(nil), (*ast.CallExpr)(nil)}, func(n ast.Node) {
		switch n := n.(type) {
		case *ast.TypeSpec:
			specs = append(specs, n)
		case *ast.CallExpr:
			calls = append(calls, n)
		}
	})

	reported := make(map[string]bool)
	for _, spec := range specs {
		c.checkAmbiguous(spec)
		c.checkDeclaration(spec, reported)
	}
	for _, call := range calls {
		c.checkDefinition(call, reported)
	}

	insp.WithStack([]ast.Node{(*ast.BinaryExpr)(nil)}, func(n ast.Node, push bool, stack []ast.Node) bool {
		if push {
			c.checkCrossTag(n.(*ast.BinaryExpr), stack)
		}
		return true
	})
	return nil, nil
}

// checkDeclaration reports capabilities that a "type X = newtype.Type[U, Tag]"
// (or defined type over it) derives but U cannot support.
func (c *checker) checkDeclaration(spec *ast.TypeSpec, reported map[string]bool) {
	tv, ok := c.pass.TypesInfo.Types[spec.Type]
	if !ok {
		return
	}
	u, tag, rt, ok := c.instance(tv.Type, "Type")
	if !ok {
		return
	}
	reported[instanceKey(u, tag)] = true
	c.checkRequirements(spec.Name.Pos(), "newtype "+spec.Name.Name, u, tag, rt, c.qualified(spec.Name.Name))
}

// checkDefinition reports the same problems for newtype.Define and
// newtype.MustDefine calls whose instance no declaration covers.
func (c *checker) checkDefinition(call *ast.CallExpr, reported map[string]bool) {
	fn := callee(c.pass.TypesInfo, call)
	if fn == nil || fn.Pkg() == nil || fn.Pkg().Path() != c.runtime {
		return
	}
	if fn.Name() != "Define" && fn.Name() != "MustDefine" {
		return
	}
	inst, ok := c.pass.TypesInfo.Instances[calleeIdent(call.Fun)]
	if !ok || inst.TypeArgs.Len() != 2 {
		return
	}
	u, tag := inst.TypeArgs.At(0), inst.TypeArgs.At(1)
	key := instanceKey(u, tag)
	if reported[key] {
		return
	}
	reported[key] = true
	label := fmt.Sprintf("newtype.%s[%s, %s]", fn.Name(), c.typeString(u), c.typeString(tag))
	c.checkRequirements(call.Pos(), label, u, tag, fn.Pkg(), "")
}

func (c *checker) checkRequirements(pos token.Pos, label string, u, tag types.Type, rt *types.Package, name string) {
	if _, isParam := u.(*types.TypeParam); isParam {
		return
	}
	for _, capab := range capabilities {
		if !derives(tag, rt, capab) || capab.satisfied(u) {
			continue
		}
		c.report(pos, CategoryUnsupportedCapability,
			[]string{name, c.qualifiedType(tag)},
			"%s: capability %s requires %s, but %s does not provide it",
			label, capab.name, capab.requirement, c.typeString(u))
	}
}

// checkAmbiguous reports markers a struct type embeds ambiguously.
func (c *checker) checkAmbiguous(spec *ast.TypeSpec) {
	if _, ok := spec.Type.(*ast.StructType); !ok {
		return
	}
	obj := c.pass.TypesInfo.Defs[spec.Name]
	if obj == nil {
		return
	}
	rt := c.runtimePackage()
	if rt == nil {
		return
	}
	for _, capab := range capabilities {
		if ambiguous(obj.Type(), rt, capab) {
			c.report(spec.Name.Pos(), CategoryAmbiguousCapability,
				[]string{c.qualified(spec.Name.Name)},
				"tag %s embeds newtype.%s more than once at the same depth, so it does not derive %s",
				spec.Name.Name, capab.name, capab.name)
		}
	}
}

// checkCrossTag reports x.Unwrap() op y.Unwrap() where x and y are
// newtypes with different tags.
func (c *checker) checkCrossTag(bin *ast.BinaryExpr, stack []ast.Node) {
	xTag, ok := c.unwrappedTag(bin.X)
	if !ok {
		return
	}
	yTag, ok := c.unwrappedTag(bin.Y)
	if !ok || types.Identical(xTag, yTag) {
		return
	}
	c.report(bin.OpPos, CategoryCrossTagUnwrap,
		[]string{c.enclosingFunc(stack)},
		"%s %s %s combines newtypes with different tags (%s and %s); convert explicitly with newtype.Convert",
		types.ExprString(bin.X), bin.Op, types.ExprString(bin.Y), c.typeString(xTag), c.typeString(yTag))
}

// unwrappedTag returns the tag of the newtype expr unwraps, if expr is a
// call of the Unwrap method of newtype.Type.
func (c *checker) unwrappedTag(expr ast.Expr) (types.Type, bool) {
	call, ok := ast.Unparen(expr).(*ast.CallExpr)
	if !ok || len(call.Args) != 0 {
		return nil, false
	}
	sel, ok := ast.Unparen(call.Fun).(*ast.SelectorExpr)
	if !ok || sel.Sel.Name != "Unwrap" {
		return nil, false
	}
	selection, ok := c.pass.TypesInfo.Selections[sel]
	if !ok || selection.Kind() != types.MethodVal {
		return nil, false
	}
	recv := selection.Recv()
	if p, ok := recv.(*types.Pointer); ok {
		recv = p.Elem()
	}
	_, tag, _, ok := c.instance(recv, "Type")
	return tag, ok
}

// instance reports whether t is an instance of the generic runtime type
// name, and returns its type arguments.
func (c *checker) instance(t types.Type, name string) (u, tag types.Type, rt *types.Package, ok bool) {
	named, isNamed := types.Unalias(t).(*types.Named)
	if !isNamed {
		return nil, nil, nil, false
	}
	origin := named.Origin().Obj()
	if origin.Pkg() == nil || origin.Pkg().Path() != c.runtime || origin.Name() != name {
		return nil, nil, nil, false
	}
	args := named.TypeArgs()
	if args.Len() != 2 {
		return nil, nil, nil, false
	}
	return args.At(0), args.At(1), origin.Pkg(), true
}

// runtimePackage returns the runtime package if the analyzed package
// imports it.
func (c *checker) runtimePackage() *types.Package {
	for _, imp := range c.pass.Pkg.Imports() {
		if imp.Path() == c.runtime {
			return imp
		}
	}
	return nil
}

func (c *checker) report(pos token.Pos, category string, names []string, format string, args ...any) {
	if c.cfg.isDisabled(category) || c.cfg.isExcepted(category, names...) {
		return
	}
	position := c.pass.Fset.Position(pos)
	if c.cfg.isExcludedPath(position.Filename) || c.ignored[position.Filename][position.Line] {
		return
	}
	c.pass.Report(analysis.Diagnostic{
		Pos:      pos,
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	})
}

func (c *checker) qualified(name string) string {
	return c.pass.Pkg.Name() + "." + name
}

// qualifiedType renders a named type as pkg.Name for exception matching.
func (c *checker) qualifiedType(t types.Type) string {
	if named, ok := types.Unalias(t).(*types.Named); ok && named.Obj().Pkg() != nil {
		return named.Obj().Pkg().Name() + "." + named.Obj().Name()
	}
	return ""
}

func (c *checker) typeString(t types.Type) string {
	return types.TypeString(t, types.RelativeTo(c.pass.Pkg))
}

// enclosingFunc returns "pkg.Func" or "pkg.Recv.Method" for the innermost
// function declaration on stack.
func (c *checker) enclosingFunc(stack []ast.Node) string {
	for _, n := range slices.Backward(stack) {
		fd, ok := n.(*ast.FuncDecl)
		if !ok {
			continue
		}
		if fd.Recv != nil && len(fd.Recv.List) > 0 {
			if recv := receiverTypeName(fd.Recv.List[0].Type); recv != "" {
				return c.qualified(recv + "." + fd.Name.Name)
			}
		}
		return c.qualified(fd.Name.Name)
	}
	return ""
}

// receiverTypeName extracts the type name of a method receiver.
func receiverTypeName(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.Ident:
		return e.Name
	case *ast.StarExpr:
		return receiverTypeName(e.X)
	case *ast.IndexExpr:
		return receiverTypeName(e.X)
	case *ast.IndexListExpr:
		return receiverTypeName(e.X)
	}
	return ""
}

func instanceKey(u, tag types.Type) string {
	return types.TypeString(u, nil) + "\x00" + types.TypeString(tag, nil)
}

// callee returns the function called by call, or nil.
func callee(info *types.Info, call *ast.CallExpr) *types.Func {
	fn, _ := info.Uses[calleeIdent(call.Fun)].(*types.Func)
	return fn
}

// calleeIdent returns the identifier naming the function in a call such as
// pkg.F[A, B], F[A] or F.
func calleeIdent(fun ast.Expr) *ast.Ident {
	switch e := ast.Unparen(fun).(type) {
	case *ast.Ident:
		return e
	case *ast.SelectorExpr:
		return e.Sel
	case *ast.IndexExpr:
		return calleeIdent(e.X)
	case *ast.IndexListExpr:
		return calleeIdent(e.X)
	}
	return nil
}

// ignoreDirectives collects, per file, the lines a //newtypelint:ignore
// comment applies to: its own line and the next one.
func ignoreDirectives(fset *token.FileSet, files []*ast.File) map[string]map[int]bool {
	out := make(map[string]map[int]bool)
	for _, f := range files {
		for _, cg := range f.Comments {
			for _, cm := range cg.List {
				if !strings.HasPrefix(strings.TrimSpace(cm.Text), "//newtypelint:ignore") {
					continue
				}
				pos := fset.Position(cm.Pos())
				if out[pos.Filename] == nil {
					out[pos.Filename] = make(map[int]bool)
				}
				out[pos.Filename][pos.Line] = true
				out[pos.Filename][pos.Line+1] = true
			}
		}
	}
	return out
}
