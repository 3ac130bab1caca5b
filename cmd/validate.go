package cmd

import (
	"fmt"
	"io"

	"github.com/nikogura/portfolio-builder/pkg/portfolio"
	"github.com/nikogura/portfolio-builder/pkg/resume"
	"github.com/nikogura/portfolio-builder/pkg/validation"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

//nolint:gochecknoglobals // Cobra boilerplate
var (
	validateRecord   string
	validateSelector string
	validateAvatar   string
	validateFields   validation.ProfileFieldSet
)

//nolint:gochecknoglobals // Cobra boilerplate
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate profile form fields",
	Long: `Validate profile fields with the same rules the profile editor applies.

Fields are read from --record (JSON or YAML) and can be overridden one by one
with flags. Every field is checked and every failure is reported.

Example:
  portfolio-builder validate --title "Backend Engineer" --github https://github.com/jdoe
  portfolio-builder validate --record profile.yaml --avatar avatar.png`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

//nolint:gochecknoglobals // Cobra boilerplate
var validateFileCmd = &cobra.Command{
	Use:   "validate-file <resume>",
	Short: "Check that a resume file can be uploaded",
	Long:  `Check that a resume file is a PDF or DOCX document of at most 10MB.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runValidateFile,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(validateFileCmd)

	flags := validateCmd.Flags()
	flags.StringVar(&validateRecord, "record", "", "Portfolio record file (JSON or YAML)")
	flags.StringVar(&validateSelector, "selector", "", "gjson path selecting the record inside the file")
	flags.StringVar(&validateAvatar, "avatar", "", "Avatar image file to check")
	flags.StringVar(&validateFields.Title, validation.FieldTitle, "", "Professional title")
	flags.StringVar(&validateFields.Location, validation.FieldLocation, "", "Location")
	flags.StringVar(&validateFields.Bio, validation.FieldBio, "", "About me")
	flags.StringVar(&validateFields.GitHub, validation.FieldGitHub, "", "GitHub profile URL")
	flags.StringVar(&validateFields.LinkedIn, validation.FieldLinkedIn, "", "LinkedIn profile URL")
	flags.StringVar(&validateFields.Website, validation.FieldWebsite, "", "Personal website URL")
}

func runValidate(cmd *cobra.Command, args []string) (err error) {
	var fields validation.ProfileFieldSet
	if validateRecord != "" {
		logger.Debug("loading profile fields", zap.String("record", validateRecord))
		fields, err = loadProfileFields(validateRecord, validateSelector)
		if err != nil {
			return err
		}
	}

	fields = overrideFields(fields, validateFields, cmd.Flags().Changed)

	out := cmd.OutOrStdout()
	errs := validation.ValidateProfileForm(fields)
	failures := reportFieldErrors(out, errs)

	if validateAvatar != "" {
		var avatar validation.FileInfo
		avatar, err = describeFile(validateAvatar)
		if err != nil {
			return err
		}
		avatarErr := validation.ValidateImageFile(avatar)
		if avatarErr != nil {
			fmt.Fprintf(out, "avatar: %s\n", avatarErr)
			failures++
		}
	}

	if failures > 0 {
		err = errors.Errorf("validation failed: %d problem(s)", failures)
		return err
	}

	fmt.Fprintln(out, "Profile is valid")
	return err
}

func runValidateFile(cmd *cobra.Command, args []string) (err error) {
	var info validation.FileInfo
	info, err = describeFile(args[0])
	if err != nil {
		return err
	}

	fileErr := validation.ValidateResumeFile(info)
	if fileErr != nil {
		err = errors.Wrapf(fileErr, "%s", args[0])
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s can be uploaded\n", args[0])
	return err
}

func loadProfileFields(path, selector string) (fields validation.ProfileFieldSet, err error) {
	var record resume.Record
	record, err = portfolio.Load(path, selector)
	if err != nil {
		err = errors.Wrap(err, "failed to load profile record")
		return fields, err
	}

	fields = portfolio.ProfileFields(record)
	return fields, err
}

// overrideFields replaces record values with the flags the user set explicitly.
func overrideFields(base, flags validation.ProfileFieldSet, changed func(string) bool) (fields validation.ProfileFieldSet) {
	fields = base
	if changed(validation.FieldTitle) {
		fields.Title = flags.Title
	}
	if changed(validation.FieldLocation) {
		fields.Location = flags.Location
	}
	if changed(validation.FieldBio) {
		fields.Bio = flags.Bio
	}
	if changed(validation.FieldGitHub) {
		fields.GitHub = flags.GitHub
	}
	if changed(validation.FieldLinkedIn) {
		fields.LinkedIn = flags.LinkedIn
	}
	if changed(validation.FieldWebsite) {
		fields.Website = flags.Website
	}
	return fields
}

// reportFieldErrors prints one line per failing field, in form order.
func reportFieldErrors(out io.Writer, errs validation.ErrorMap) (count int) {
	for _, field := range errs.Fields() {
		fmt.Fprintf(out, "%s: %s\n", field, errs[field])
		count++
	}
	return count
}

// describeFile detects the type and size of a local file for the upload
// validators.
func describeFile(path string) (info validation.FileInfo, err error) {
	info, err = validation.DescribeFile(path)
	if err != nil {
		return info, err
	}

	logger.Debug("checking file",
		zap.String("name", info.Name),
		zap.String("type", info.MIMEType),
		zap.Int64("size", info.Size),
	)

	return info, err
}
