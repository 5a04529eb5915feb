// Package constant defines immutable application-level identifiers and generation defaults.
package constant

// NeovimModuleTemplate is a Go text/template for the Neovim glue script.
// It expects .DisplayName, .Variants, .Default and .Icons (extension, name, svg) and the "lua" quoting func.
const NeovimModuleTemplate = `-- {{ .DisplayName }} for Neovim
local M = {}

M.variants = { {{- range $i, $v := .Variants }}{{ if $i }}, {{ end }}{{ lua $v }}{{ end -}} }

M.icons = {
{{- range .Icons }}
  [{{ lua .Extension }}] = { name = {{ lua .Name }}, svg = {{ lua .SVG }} },
{{- end }}
}

local function icon_path(root, variant, svg)
  return root .. 'icons/' .. variant .. '/' .. svg
end

function M.setup(opts)
  opts = opts or {}
  local variant = opts.variant or {{ lua .Default }}
  local root = opts.root or ''

  local override = {}
  for ext, def in pairs(M.icons) do
    override[ext] = { icon = '', name = def.name, path = icon_path(root, variant, def.svg) }
  end

  -- Integration with nvim-web-devicons
  local has_devicons, devicons = pcall(require, 'nvim-web-devicons')
  if has_devicons then
    devicons.setup({
      override = override,
      default = true,
    })
  end

  return override
end

return M
`

// NeovimReadmeTemplate is a Go text/template for the Neovim plugin setup document.
const NeovimReadmeTemplate = `# {{ .DisplayName }} for Neovim

Charming icon theme, {{ len .Variants }} color variants.

## Installation

### Using [lazy.nvim](https://github.com/folke/lazy.nvim)

` + "```lua" + `
{
  '{{ .Product }}-icons.nvim',
  config = function()
    require('{{ .Product }}-icons').setup({
      variant = '{{ .Default }}' -- {{ range $i, $v := .Variants }}{{ if $i }}, {{ end }}'{{ $v }}'{{ end }}
    })
  end
}
` + "```" + `

### Using [packer.nvim](https://github.com/wbthomason/packer.nvim)

` + "```lua" + `
use {
  '{{ .Product }}-icons.nvim',
  config = function()
    require('{{ .Product }}-icons').setup()
  end
}
` + "```" + `

## License

MIT
`
