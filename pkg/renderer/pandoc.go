package renderer

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/pkg/errors"
)

// InputFormat is the pandoc reader used for rendered resumes. Raw TeX, raw
// HTML and raw attribute blocks are disabled so record text never reaches
// LaTeX as markup.
const InputFormat = "markdown-raw_tex-raw_html-raw_attribute"

// PDFOptions configures a pandoc run.
type PDFOptions struct {
	// TemplatePath is the LaTeX template passed to --template.
	TemplatePath string
	// ClassFile is an optional .cls file; its directory is added to TEXINPUTS.
	ClassFile string
	// Engine is an optional --pdf-engine value.
	Engine string
	// Title sets the PDF document title metadata.
	Title string
}

// RenderPDF converts a markdown file to PDF using pandoc.
func RenderPDF(ctx context.Context, markdownPath, outputPath string, opts PDFOptions) (err error) {
	err = checkPandocExists()
	if err != nil {
		return err
	}

	required := []string{markdownPath, opts.TemplatePath}
	if opts.ClassFile != "" {
		required = append(required, opts.ClassFile)
	}
	err = validateFiles(required...)
	if err != nil {
		return err
	}

	outputDir := filepath.Dir(outputPath)
	err = os.MkdirAll(outputDir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create output directory: %s", outputDir)
		return err
	}

	cmd := exec.CommandContext(ctx, "pandoc", pandocArgs(markdownPath, outputPath, opts)...)

	if opts.ClassFile != "" {
		classDir := filepath.Dir(opts.ClassFile)
		texinputs := classDir + ":" + os.Getenv("TEXINPUTS")
		cmd.Env = append(os.Environ(), "TEXINPUTS="+texinputs)
	}

	var output []byte
	output, err = cmd.CombinedOutput()
	if err != nil {
		err = errors.Wrapf(err, "pandoc failed: %s", string(output))
		return err
	}

	return err
}

func pandocArgs(markdownPath, outputPath string, opts PDFOptions) (args []string) {
	args = []string{
		"--from=" + InputFormat,
		"--to=pdf",
		"--output=" + outputPath,
		"--template=" + opts.TemplatePath,
	}
	if opts.Engine != "" {
		args = append(args, "--pdf-engine="+opts.Engine)
	}
	if opts.Title != "" {
		args = append(args, "--metadata=pagetitle:"+opts.Title)
	}
	// File names such as "-portfolio.md" must not be read as options.
	args = append(args, "--", markdownPath)
	return args
}

// checkPandocExists verifies pandoc is installed.
func checkPandocExists() (err error) {
	_, err = exec.LookPath("pandoc")
	if err != nil {
		err = errors.New("pandoc not found in PATH (install pandoc to generate PDFs)")
		return err
	}
	return err
}

// validateFiles checks that required files exist and can be stat'ed.
func validateFiles(paths ...string) (err error) {
	for _, path := range paths {
		_, err = os.Stat(path)
		if os.IsNotExist(err) {
			err = errors.Errorf("file not found: %s", path)
			return err
		}
		if err != nil {
			err = errors.Wrapf(err, "cannot access %s", path)
			return err
		}
	}
	return err
}

// WriteMarkdown writes rendered markdown to a file, creating its directory.
func WriteMarkdown(content, outputPath string) (err error) {
	outputDir := filepath.Dir(outputPath)
	err = os.MkdirAll(outputDir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create output directory: %s", outputDir)
		return err
	}

	err = os.WriteFile(outputPath, []byte(content), 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write markdown file: %s", outputPath)
		return err
	}

	return err
}

// CleanupMarkdown removes intermediate markdown files after PDF generation.
func CleanupMarkdown(paths ...string) (err error) {
	for _, path := range paths {
		err = os.Remove(path)
		if err != nil {
			err = errors.Wrapf(err, "failed to remove markdown file: %s", path)
			return err
		}
	}
	return err
}
