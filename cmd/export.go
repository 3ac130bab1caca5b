package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/nikogura/portfolio-builder/pkg/config"
	"github.com/nikogura/portfolio-builder/pkg/portfolio"
	"github.com/nikogura/portfolio-builder/pkg/renderer"
	"github.com/nikogura/portfolio-builder/pkg/resume"
	"github.com/nikogura/portfolio-builder/pkg/validation"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

//nolint:gochecknoglobals // Cobra boilerplate
var (
	exportRecord       string
	exportURL          string
	exportSelector     string
	exportTemplate     string
	exportOutputDir    string
	exportKeepMarkdown bool
	exportSkip         renderer.SectionToggles
)

//nolint:gochecknoglobals // Cobra boilerplate
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a portfolio as a PDF resume",
	Long: `Export a portfolio record as a PDF resume.

The record is read from --record (JSON or YAML), fetched from --url, or fetched
from the configured backend. It is normalized into a canonical resume, rendered
to markdown with the chosen template and converted to PDF with pandoc.

The PDF is named <username>-portfolio.pdf, keeping only letters, digits, '-'
and '_' from the username.

Example:
  portfolio-builder export --record portfolio.yaml
  portfolio-builder export --template modern --no-certificates
  portfolio-builder export --url https://api.example.com/api/v1/portfolio/jdoe --selector data`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(exportCmd)

	flags := exportCmd.Flags()
	flags.StringVar(&exportRecord, "record", "", "Portfolio record file (JSON or YAML)")
	flags.StringVar(&exportURL, "url", "", "Portfolio endpoint to fetch instead of a file")
	flags.StringVar(&exportSelector, "selector", "", "gjson path selecting the record (default from config for backend fetches)")
	flags.StringVar(&exportTemplate, "template", "", "Template: classic or modern (default from config)")
	flags.StringVar(&exportOutputDir, "output-dir", "", "Output directory (default from config)")
	flags.BoolVar(&exportKeepMarkdown, "keep-markdown", false, "Keep the markdown file after PDF generation")
	flags.BoolVar(&exportSkip.About, "no-about", false, "Leave out the professional summary")
	flags.BoolVar(&exportSkip.Skills, "no-skills", false, "Leave out skills")
	flags.BoolVar(&exportSkip.Experience, "no-experience", false, "Leave out experience")
	flags.BoolVar(&exportSkip.Projects, "no-projects", false, "Leave out projects")
	flags.BoolVar(&exportSkip.Certificates, "no-certificates", false, "Leave out certifications")
	exportCmd.MarkFlagsMutuallyExclusive("record", "url")
}

func runExport(cmd *cobra.Command, args []string) (err error) {
	ctx := context.Background()
	ctx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	var cfg config.Config
	cfg, err = config.Load(getConfigFile())
	if err != nil {
		err = errors.Wrap(err, "failed to load config")
		return err
	}

	var record resume.Record
	record, err = loadRecord(ctx, cfg)
	if err != nil {
		return err
	}

	warnInvalidFields(portfolio.ProfileFields(record))

	data := resume.MapPortfolioToResume(record)
	logger.Debug("mapped portfolio",
		zap.String("name", data.Name),
		zap.Int("skills", len(data.Skills)),
		zap.Int("projects", len(data.Projects)),
		zap.Int("achievements", len(data.Achievements)),
		zap.Int("certificates", len(data.Certificates)),
	)

	templateName := getTemplate(exportTemplate, cfg.Template)

	var markdown string
	markdown, err = renderer.RenderMarkdown(data, templateName, sectionsFromSkips(exportSkip))
	if err != nil {
		return err
	}

	outDir := getOutputDir(exportOutputDir, cfg.Defaults.OutputDir)
	resumeMD, resumePDF := buildExportFilenames(portfolio.Username(record, cfg.Username), outDir)

	opts := renderer.PDFOptions{
		TemplatePath: cfg.Pandoc.TemplatePath,
		ClassFile:    cfg.Pandoc.ClassFile,
		Engine:       cfg.Pandoc.Engine,
		Title:        data.Name,
	}

	err = writeAndRender(ctx, markdown, resumeMD, resumePDF, opts)
	return err
}

// loadRecord reads the record from --record, --url or the configured backend.
func loadRecord(ctx context.Context, cfg config.Config) (record resume.Record, err error) {
	switch {
	case exportRecord != "":
		logger.Debug("loading portfolio file", zap.String("path", exportRecord))
		record, err = portfolio.Load(exportRecord, exportSelector)
		if err != nil {
			err = errors.Wrap(err, "failed to load portfolio")
		}
		return record, err

	case exportURL != "":
		logger.Debug("fetching portfolio", zap.String("url", exportURL))
		record, err = portfolio.NewFetcher(cfg.Backend.Token).Fetch(ctx, exportURL, exportSelector)
		return record, err

	case cfg.HasBackend():
		var endpoint string
		endpoint, err = portfolio.ResolveEndpoint(cfg.Backend.BaseURL, cfg.GetPortfolioPath())
		if err != nil {
			return record, err
		}

		selector := exportSelector
		if selector == "" {
			selector = cfg.Backend.Selector
		}

		logger.Debug("fetching portfolio from backend", zap.String("url", endpoint))
		record, err = portfolio.NewFetcher(cfg.Backend.Token).Fetch(ctx, endpoint, selector)
		return record, err
	}

	err = errors.New("no portfolio source: pass --record or --url, or set backend.base_url in config")
	return record, err
}

// warnInvalidFields logs profile fields the editor would reject. Export still
// proceeds with whatever the record holds.
func warnInvalidFields(fields validation.ProfileFieldSet) {
	errs := validation.ValidateProfileForm(fields)
	for _, field := range errs.Fields() {
		logger.Warn("profile field failed validation",
			zap.String("field", field),
			zap.String("reason", errs[field]),
		)
	}
}

func sectionsFromSkips(skip renderer.SectionToggles) (sections renderer.SectionToggles) {
	sections = renderer.SectionToggles{
		About:        !skip.About,
		Skills:       !skip.Skills,
		Experience:   !skip.Experience,
		Projects:     !skip.Projects,
		Certificates: !skip.Certificates,
	}
	return sections
}

func getTemplate(flagValue, configValue string) (name string) {
	name = flagValue
	if name == "" {
		name = configValue
	}
	if name == "" {
		name = config.DefaultTemplate
	}
	return name
}

func getOutputDir(flagValue, configValue string) (outDir string) {
	outDir = flagValue
	if outDir == "" {
		outDir = configValue
	}
	return outDir
}

func buildExportFilenames(username, outDir string) (resumeMD, resumePDF string) {
	pdfName := resume.GeneratePDFFilename(username)
	resumePDF = filepath.Join(outDir, pdfName)
	resumeMD = filepath.Join(outDir, strings.TrimSuffix(pdfName, ".pdf")+".md")
	return resumeMD, resumePDF
}

func writeAndRender(ctx context.Context, markdown, resumeMD, resumePDF string, opts renderer.PDFOptions) (err error) {
	if getVerbose() {
		fmt.Println("Writing markdown file...")
	}

	err = renderer.WriteMarkdown(markdown, resumeMD)
	if err != nil {
		err = errors.Wrap(err, "failed to write resume markdown")
		return err
	}

	if getVerbose() {
		fmt.Println("Rendering PDF...")
	}

	err = renderer.RenderPDF(ctx, resumeMD, resumePDF, opts)
	if err != nil {
		fmt.Printf("Warning: Failed to render resume PDF: %v\n", err)
		fmt.Printf("Resume markdown saved at: %s\n", resumeMD)
		err = nil
		return err
	}

	fmt.Printf("Portfolio PDF saved at: %s\n", resumePDF)

	if !exportKeepMarkdown {
		err = renderer.CleanupMarkdown(resumeMD)
		if err != nil {
			fmt.Printf("Warning: Failed to cleanup markdown file: %v\n", err)
			err = nil
		}
	}

	return err
}
