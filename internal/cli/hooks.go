// Package cli provides CLI-related functionality for viewls.
package cli

import (
	"fmt"
	"os"
	"strings"
)

const (
	// EditorNvim represents Neovim
	EditorNvim = "nvim"
	// EditorHelix represents Helix
	EditorHelix = "helix"
	// EditorKate represents Kate
	EditorKate = "kate"
)

// DetectEditor determines the editor based on the flag or environment.
func DetectEditor(editorFlag string) string {
	if editorFlag != "auto" {
		return editorFlag
	}

	// Running inside a Neovim terminal
	if os.Getenv("NVIM") != "" {
		return EditorNvim
	}
	if os.Getenv("HELIX_RUNTIME") != "" {
		return EditorHelix
	}

	// Detect from EDITOR env var
	editor := os.Getenv("EDITOR")
	if strings.Contains(editor, "hx") || strings.Contains(editor, "helix") {
		return EditorHelix
	}
	if strings.Contains(editor, "kate") {
		return EditorKate
	}

	// Default to Neovim
	return EditorNvim
}

// EditorConfigFile names the configuration file the snippet belongs in.
func EditorConfigFile(editor string) string {
	switch editor {
	case EditorHelix:
		return "~/.config/helix/languages.toml"
	case EditorKate:
		return "the LSP Client settings (User Server Settings)"
	default:
		return "~/.config/nvim/init.lua"
	}
}

// GenerateEditorConfig generates the client wiring snippet for the
// specified editor.
func GenerateEditorConfig(editor string) string {
	// Get the path to the current binary
	binPath, err := os.Executable()
	if err != nil {
		binPath = "viewls" // Fallback to PATH
	}

	switch editor {
	case EditorHelix:
		return fmt.Sprintf(`[language-server.viewls]
command = "%s"
args = ["serve"]

[[language]]
name = "xml"
language-servers = ["viewls"]`, binPath)

	case EditorKate:
		return fmt.Sprintf(`{
  "servers": {
    "xml": {
      "command": ["%s", "serve"],
      "rootIndicationFileNames": [".viewls.yml", ".viewls.yaml"],
      "highlightingModeRegex": "^XML$"
    }
  }
}`, binPath)

	default: // nvim
		return fmt.Sprintf(`vim.api.nvim_create_autocmd("FileType", {
  pattern = "xml",
  callback = function(args)
    vim.lsp.start({
      name = "viewls",
      cmd = { "%s", "serve" },
      root_dir = vim.fs.root(args.buf, { ".viewls.yml", ".viewls.yaml", ".git" }),
    })
  end,
})`, binPath)
	}
}
