package packager

import (
	"bytes"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/codecharm-icons/codecharm/constant"
	"github.com/codecharm-icons/codecharm/definition"
	"github.com/codecharm-icons/codecharm/filesystem"
	"github.com/samber/lo"
	lua "github.com/yuin/gopher-lua"
	"github.com/yuin/gopher-lua/parse"
)

var luaQuoter = strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`, "\r", `\r`)

// LuaString quotes s as a single-quoted Lua string literal.
func LuaString(s string) string {
	return "'" + luaQuoter.Replace(s) + "'"
}

var (
	moduleTemplate = template.Must(template.New("init.lua").
			Funcs(template.FuncMap{"lua": func(v any) string { return LuaString(fmt.Sprint(v)) }}).
			Parse(constant.NeovimModuleTemplate))
	readmeTemplate = template.Must(template.New("README.md").Parse(constant.NeovimReadmeTemplate))
)

type neovimIcon struct {
	Extension string
	Name      string
	SVG       string
}

type neovimData struct {
	Product     string
	DisplayName string
	Default     definition.Variant
	Variants    []definition.Variant
	Icons       []neovimIcon
}

// Neovim writes a Neovim plugin with a Lua glue module and a setup README.
type Neovim struct {
	Product definition.Product
}

func (n *Neovim) Name() string {
	return "neovim"
}

// Dir returns the plugin directory under out.
func (n *Neovim) Dir(out string) string {
	return filepath.Join(out, "neovim", n.Product.Name+"-icons.nvim")
}

// Module returns the path of the Lua module inside the plugin directory.
func (n *Neovim) Module(dir string) string {
	return filepath.Join(dir, "lua", n.Product.Name+"-icons", "init.lua")
}

// CompileLua checks that code is a loadable Lua chunk.
func CompileLua(code, name string) error {
	chunk, err := parse.Parse(strings.NewReader(code), name)
	if err != nil {
		return err
	}
	_, err = lua.Compile(chunk, name)
	return err
}

func (n *Neovim) Package(src Source, out string) (*Result, error) {
	fs := filesystem.API()
	dir := n.Dir(out)

	variants, err := src.copyIcons(dir)
	if err != nil {
		return nil, err
	}

	mappings, err := src.Mappings()
	if err != nil {
		return nil, err
	}

	data := neovimData{
		Product:     n.Product.Name,
		DisplayName: n.Product.DisplayName,
		Default:     src.Reference().OrElse(definition.Base),
		Variants:    lo.Ternary(len(variants) > 0, variants, src.Variants),
		Icons: lo.Map(mappings, func(m Mapping, _ int) neovimIcon {
			return neovimIcon{
				Extension: m.Extension,
				Name:      m.Language,
				SVG:       path.Join(constant.FilesDir, m.Icon+constant.SVGExt),
			}
		}),
	}

	var module bytes.Buffer
	if err := moduleTemplate.Execute(&module, data); err != nil {
		return nil, err
	}

	manifest := n.Module(dir)
	if err := CompileLua(module.String(), manifest); err != nil {
		return nil, fmt.Errorf("generated lua module does not compile: %w", err)
	}

	if err := fs.MkdirAll(filepath.Dir(manifest), os.ModePerm); err != nil {
		return nil, err
	}
	if err := fs.WriteFile(manifest, module.Bytes(), 0o644); err != nil {
		return nil, err
	}

	var readme bytes.Buffer
	if err := readmeTemplate.Execute(&readme, data); err != nil {
		return nil, err
	}
	if err := fs.WriteFile(filepath.Join(dir, "README.md"), readme.Bytes(), 0o644); err != nil {
		return nil, err
	}

	return &Result{
		Platform: n.Name(),
		Dir:      dir,
		Manifest: manifest,
		Variants: variants,
		Mappings: len(mappings),
	}, nil
}
