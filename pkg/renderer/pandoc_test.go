package renderer

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWriteMarkdownExportLifecycle(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "exports", "jdoe")
	mdPath := filepath.Join(outDir, "jdoe-portfolio.md")
	content := "# Jane Doe\n\n**Backend Engineer**\n"

	err := WriteMarkdown(content, mdPath)
	if err != nil {
		t.Fatalf("Failed to write markdown: %v", err)
	}

	info, err := os.Stat(mdPath)
	if err != nil {
		t.Fatalf("Markdown file was not created: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("Expected 0600 permissions, got %v", info.Mode().Perm())
	}

	data, err := os.ReadFile(mdPath)
	if err != nil {
		t.Fatalf("Failed to read written file: %v", err)
	}
	if string(data) != content {
		t.Errorf("Expected content %q, got %q", content, string(data))
	}

	err = CleanupMarkdown(mdPath)
	if err != nil {
		t.Fatalf("Failed to cleanup: %v", err)
	}
	if _, err = os.Stat(mdPath); !os.IsNotExist(err) {
		t.Error("Expected markdown to be removed after a successful export")
	}
}

func TestCleanupMarkdownNonexistent(t *testing.T) {
	err := CleanupMarkdown(filepath.Join(t.TempDir(), "jdoe-portfolio.md"))
	if err == nil {
		t.Error("Expected error cleaning up nonexistent file, got nil")
	}
}

func TestRenderPDFFailureKeepsMarkdown(t *testing.T) {
	tmpDir := t.TempDir()
	mdPath := filepath.Join(tmpDir, "jdoe-portfolio.md")
	err := WriteMarkdown("# Jane Doe\n", mdPath)
	if err != nil {
		t.Fatalf("Failed to write markdown: %v", err)
	}

	// Fails on the missing pandoc binary or on the missing template.
	err = RenderPDF(context.Background(), mdPath, filepath.Join(tmpDir, "jdoe-portfolio.pdf"), PDFOptions{
		TemplatePath: filepath.Join(tmpDir, "missing.latex"),
	})
	if err == nil {
		t.Fatal("Expected error for missing template, got nil")
	}

	if _, err = os.Stat(mdPath); err != nil {
		t.Errorf("Expected markdown to survive a failed render: %v", err)
	}
	if _, err = os.Stat(filepath.Join(tmpDir, "jdoe-portfolio.pdf")); !os.IsNotExist(err) {
		t.Error("Expected no PDF after a failed render")
	}
}

func TestValidateFiles(t *testing.T) {
	tmpDir := t.TempDir()
	templateFile := filepath.Join(tmpDir, "resume.latex")
	err := os.WriteFile(templateFile, []byte("$body$"), 0600)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	missing := filepath.Join(tmpDir, "missing.cls")

	tests := []struct {
		name    string
		paths   []string
		wantErr string
	}{
		{name: "existing file", paths: []string{templateFile}},
		{name: "missing file", paths: []string{missing}, wantErr: "file not found"},
		{name: "missing after existing", paths: []string{templateFile, missing}, wantErr: "file not found"},
		{name: "invalid path", paths: []string{"bad\x00path", templateFile}, wantErr: "cannot access"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFiles(tt.paths...)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestCheckPandocExists(t *testing.T) {
	err := checkPandocExists()
	if err != nil {
		t.Skip("Pandoc not installed, skipping test")
	}
}

func TestPandocArgs(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		output   string
		opts     PDFOptions
		want     []string
	}{
		{
			name:     "all options",
			markdown: "jdoe-portfolio.md",
			output:   "out/jdoe-portfolio.pdf",
			opts:     PDFOptions{TemplatePath: "resume.latex", Engine: "xelatex", Title: "Jane Doe"},
			want: []string{
				"--from=" + InputFormat,
				"--to=pdf",
				"--output=out/jdoe-portfolio.pdf",
				"--template=resume.latex",
				"--pdf-engine=xelatex",
				"--metadata=pagetitle:Jane Doe",
				"--",
				"jdoe-portfolio.md",
			},
		},
		{
			name:     "username with no safe characters",
			markdown: "-portfolio.md",
			output:   "-portfolio.pdf",
			opts:     PDFOptions{TemplatePath: "t.latex"},
			want: []string{
				"--from=" + InputFormat,
				"--to=pdf",
				"--output=-portfolio.pdf",
				"--template=t.latex",
				"--",
				"-portfolio.md",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pandocArgs(tt.markdown, tt.output, tt.opts)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("pandocArgs() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestInputFormatDisablesRawMarkup(t *testing.T) {
	for _, ext := range []string{"-raw_tex", "-raw_html", "-raw_attribute"} {
		if !strings.Contains(InputFormat, ext) {
			t.Errorf("Expected input format %q to disable %s", InputFormat, ext)
		}
	}
}
