package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectEditor(t *testing.T) {
	tests := []struct {
		name      string
		flag      string
		editorEnv string
		want      string
	}{
		{
			name: "explicit nvim",
			flag: "nvim",
			want: "nvim",
		},
		{
			name: "explicit helix",
			flag: "helix",
			want: "helix",
		},
		{
			name: "explicit kate",
			flag: "kate",
			want: "kate",
		},
		{
			name:      "auto detect helix",
			flag:      "auto",
			editorEnv: "hx",
			want:      "helix",
		},
		{
			name:      "auto detect kate",
			flag:      "auto",
			editorEnv: "/usr/bin/kate",
			want:      "kate",
		},
		{
			name:      "auto defaults to nvim",
			flag:      "auto",
			editorEnv: "",
			want:      "nvim",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NVIM", "")
			t.Setenv("HELIX_RUNTIME", "")
			t.Setenv("EDITOR", tt.editorEnv)

			got := DetectEditor(tt.flag)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectEditor_InsideNvimTerminal(t *testing.T) {
	t.Setenv("NVIM", "/run/user/1000/nvim.12345.0")
	t.Setenv("EDITOR", "hx") // Should be ignored

	assert.Equal(t, EditorNvim, DetectEditor("auto"))
}

func TestGenerateEditorConfig(t *testing.T) {
	tests := []struct {
		name   string
		editor string
		want   []string // Must contain these strings
	}{
		{
			name:   "nvim config",
			editor: "nvim",
			want: []string{
				"vim.lsp.start",
				`name = "viewls"`,
				`"serve"`,
				".viewls.yml",
			},
		},
		{
			name:   "helix config",
			editor: "helix",
			want: []string{
				"[language-server.viewls]",
				`args = ["serve"]`,
				`language-servers = ["viewls"]`,
			},
		},
		{
			name:   "kate config",
			editor: "kate",
			want: []string{
				`"servers"`,
				`"serve"`,
				"rootIndicationFileNames",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snippet := GenerateEditorConfig(tt.editor)
			for _, expected := range tt.want {
				assert.Contains(t, snippet, expected)
			}
		})
	}
}

func TestGenerateEditorConfig_NotEmpty(t *testing.T) {
	tests := []string{"nvim", "helix", "kate"}
	for _, editor := range tests {
		t.Run(editor, func(t *testing.T) {
			snippet := GenerateEditorConfig(editor)
			assert.NotEmpty(t, snippet)
			lines := strings.Split(snippet, "\n")
			assert.Greater(t, len(lines), 3, "Snippet should have multiple lines")
		})
	}
}

func TestGenerateEditorConfig_DefaultEditor(t *testing.T) {
	// Unknown editors fall back to the Neovim snippet
	snippet := GenerateEditorConfig("unknown")
	assert.NotEmpty(t, snippet)
	assert.Contains(t, snippet, "vim.lsp.start")
}

func TestEditorConfigFile(t *testing.T) {
	assert.Contains(t, EditorConfigFile(EditorNvim), "init.lua")
	assert.Contains(t, EditorConfigFile(EditorHelix), "languages.toml")
	assert.NotEmpty(t, EditorConfigFile(EditorKate))
}
