package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/zjrosen/enroll/internal/config"
	"github.com/zjrosen/enroll/internal/log"
	"github.com/zjrosen/enroll/internal/registration"
)

// errRejected makes validate exit non-zero after printing its report.
var errRejected = errors.New("registration rejected")

// outcomeAdvanceBlocked reports a record that never reached step two.
const outcomeAdvanceBlocked = "advance_blocked"

var validateCmd = &cobra.Command{
	Use:   "validate FILE",
	Short: "Check a registration record without the form",
	Long: `Load a registration record from a JSON or YAML file and run it through
the same two-step flow as the form: fill step one, advance, fill step two,
submit. Prints the outcome and every field's status, and exits non-zero if
the record would be rejected.

Use "-" to read the record from stdin (JSON or YAML).

Examples:
  enroll validate student.json
  enroll validate student.yaml --output yaml
  cat student.json | enroll validate -`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// fieldReport is one field's status in a validation report.
type fieldReport struct {
	Field   registration.Field `json:"field" yaml:"field"`
	Valid   bool               `json:"valid" yaml:"valid"`
	Message string             `json:"message,omitempty" yaml:"message,omitempty"`
}

// validationReport is what validate prints.
type validationReport struct {
	Outcome string               `json:"outcome" yaml:"outcome"`
	Step    registration.Step    `json:"step" yaml:"step"`
	Fields  []fieldReport        `json:"fields" yaml:"fields"`
	Errors  []string             `json:"errors,omitempty" yaml:"errors,omitempty"`
	Record  *registration.Record `json:"record,omitempty" yaml:"record,omitempty"`
}

func runValidate(cmd *cobra.Command, args []string) error {
	cleanup, err := startLogging(log.Init)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := config.ValidateOutput(cfg.Output); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	rec, err := loadRecord(args[0], cmd.InOrStdin())
	if err != nil {
		return err
	}

	report := checkRecord(rec)
	if err := writeOutput(cmd.OutOrStdout(), cfg.Output.Format, report); err != nil {
		return err
	}
	if report.Outcome != registration.SubmitAccepted.String() {
		return errRejected
	}
	return nil
}

// checkRecord drives a controller the way the form does: step-one fields,
// Advance, step-two fields, Submit.
func checkRecord(rec registration.Record) validationReport {
	var accepted *registration.Record
	c := registration.NewController(registration.WithSubmitter(
		registration.SubmitterFunc(func(r registration.Record) { accepted = &r }),
	))

	for _, f := range registration.StepFirst.Fields() {
		c.SetField(f, rec.Get(f))
	}

	outcome := outcomeAdvanceBlocked
	if c.Advance() {
		for _, f := range registration.StepSecond.Fields() {
			c.SetField(f, rec.Get(f))
		}
		outcome = c.Submit().String()
	}
	log.Debug(log.CatCLI, "Validated record", "outcome", outcome, "studentId", rec.StudentID)

	report := validationReport{Outcome: outcome, Step: c.Step(), Record: accepted}
	for _, f := range registration.Fields() {
		st := c.Status(f)
		report.Fields = append(report.Fields, fieldReport{Field: f, Valid: st.Valid, Message: st.Message()})
	}
	if err := c.Err(); err != nil {
		report.Errors = strings.Split(err.Error(), "\n")
	}
	return report
}

// loadRecord reads a record from path, or from stdin when path is "-".
// Files ending in .json are decoded as JSON, everything else as YAML.
// Unknown keys are rejected.
func loadRecord(path string, stdin io.Reader) (registration.Record, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path) //nolint:gosec // G304: path is the user's input file
	}
	if err != nil {
		return registration.Record{}, fmt.Errorf("reading record: %w", err)
	}

	var rec registration.Record
	if strings.EqualFold(filepath.Ext(path), ".json") {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&rec); err != nil {
			return registration.Record{}, fmt.Errorf("parsing record: %w", err)
		}
		return rec, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&rec); err != nil {
		if errors.Is(err, io.EOF) {
			return registration.Record{}, fmt.Errorf("parsing record: empty input")
		}
		return registration.Record{}, fmt.Errorf("parsing record: %w", err)
	}
	return rec, nil
}
