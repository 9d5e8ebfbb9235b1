package main

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rojgarpatra/uikit/pkg/forms"
	"github.com/rojgarpatra/uikit/pkg/validator"
)

var errInvalid = errors.New("validation failed")

func newValidateCmd(a *app) *cobra.Command {
	var (
		name      string
		inputType string
		required  bool
		minLength int
		formFile  string
	)

	cmd := &cobra.Command{
		Use:   "validate [value]",
		Short: "Validate a single field value or a whole form",
		Long: `Validate a value the way a form field does when it loses focus.

With --form, a YAML file describing fields and values is validated as a
whole:

  name: signup
  fields:
    - {name: email, type: email, required: true}
    - {name: password1, type: password, required: true}
  values:
    email: asha@example.com
    password1: secret`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if formFile != "" {
				return a.validateForm(cmd, formFile)
			}

			value := ""
			if len(args) == 1 {
				value = args[0]
			}
			field := forms.Field{Name: name, InputType: inputType, Required: required, MinLength: minLength}
			res := validator.Validate(field.Rule(), value)
			if !res.Valid {
				fmt.Fprintln(cmd.OutOrStdout(), res.Message)
				return errInvalid
			}
			fmt.Fprintln(cmd.OutOrStdout(), "valid")
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Field name (password1 marks the primary password)")
	cmd.Flags().StringVarP(&inputType, "type", "t", "text", "Input type (text, email, password, textarea, ...)")
	cmd.Flags().BoolVarP(&required, "required", "r", false, "Field is required")
	cmd.Flags().IntVar(&minLength, "min-length", 0, "Minimum number of characters")
	cmd.Flags().StringVarP(&formFile, "form", "f", "", "YAML form definition to validate")

	return cmd
}

type formFile struct {
	Name   string `yaml:"name"`
	Fields []struct {
		Name      string `yaml:"name"`
		Type      string `yaml:"type"`
		Required  bool   `yaml:"required"`
		MinLength int    `yaml:"min_length"`
	} `yaml:"fields"`
	Values map[string]string `yaml:"values"`
}

func (a *app) validateForm(cmd *cobra.Command, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read form file: %w", err)
	}
	var def formFile
	if err := yaml.Unmarshal(data, &def); err != nil {
		return fmt.Errorf("parse form file: %w", err)
	}

	fields := make([]forms.Field, 0, len(def.Fields))
	for _, f := range def.Fields {
		fields = append(fields, forms.Field{Name: f.Name, InputType: f.Type, Required: f.Required, MinLength: f.MinLength})
	}
	form, err := forms.New(def.Name, fields, forms.WithLogger(a.log))
	if err != nil {
		return err
	}

	failed := form.ValidateAll(cmd.Context(), def.Values)
	if len(failed) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "valid")
		return nil
	}

	names := make([]string, 0, len(failed))
	for n := range failed {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", n, failed[n])
	}
	return errInvalid
}
