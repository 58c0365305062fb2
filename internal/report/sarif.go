package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/skipkayhil/rail-inspector/internal/changelog"
)

const (
	sarifVersion = "2.1.0"
	sarifSchema  = "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/main/sarif-2.1/schema/sarif-schema-2.1.0.json"
	toolURI      = "https://github.com/skipkayhil/rail-inspector"
)

// SARIFWriter outputs offenses in SARIF v2.1.0 format.
type SARIFWriter struct{}

func (s *SARIFWriter) Write(w io.Writer, report *Report) error {
	sarif := buildSARIF(report)
	data, err := json.MarshalIndent(sarif, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling SARIF: %w", err)
	}
	_, err = w.Write(data)
	if err != nil {
		return fmt.Errorf("writing SARIF: %w", err)
	}
	_, err = fmt.Fprintln(w)
	return err
}

// SARIF schema types (v2.1.0)

type sarifLog struct {
	Version string     `json:"version"`
	Schema  string     `json:"$schema"`
	Runs    []sarifRun `json:"runs"`
}

// sarifRun.ColumnKind is unicodeCodePoints since offense ranges count runes.
type sarifRun struct {
	Tool       sarifTool     `json:"tool"`
	ColumnKind string        `json:"columnKind"`
	Results    []sarifResult `json:"results"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name           string      `json:"name"`
	Version        string      `json:"version,omitempty"`
	InformationURI string      `json:"informationUri"`
	Rules          []sarifRule `json:"rules"`
}

type sarifRule struct {
	ID               string             `json:"id"`
	ShortDescription sarifMessage       `json:"shortDescription"`
	DefaultConfig    sarifDefaultConfig `json:"defaultConfiguration"`
}

type sarifDefaultConfig struct {
	Level string `json:"level"`
}

type sarifResult struct {
	RuleID    string          `json:"ruleId"`
	Level     string          `json:"level"`
	Message   sarifMessage    `json:"message"`
	Locations []sarifLocation `json:"locations"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifLocation struct {
	PhysicalLocation sarifPhysicalLocation `json:"physicalLocation"`
}

type sarifPhysicalLocation struct {
	ArtifactLocation sarifArtifactLocation `json:"artifactLocation"`
	Region           sarifRegion           `json:"region"`
}

type sarifArtifactLocation struct {
	URI string `json:"uri"`
}

// sarifRegion columns are 1-based and EndColumn is exclusive.
type sarifRegion struct {
	StartLine   int `json:"startLine"`
	StartColumn int `json:"startColumn"`
	EndColumn   int `json:"endColumn"`
}

var ruleDescriptions = map[changelog.Rule]string{
	changelog.RuleAuthors:            "Entries must end with an author attribution.",
	changelog.RuleLeadingWhitespace:  "Headers start with '*' and 3 spaces; other lines are indented 4 spaces.",
	changelog.RuleTrailingWhitespace: "Lines must not end with spaces or tabs.",
}

func buildSARIF(report *Report) sarifLog {
	rules := make([]sarifRule, 0, len(changelog.Rules()))
	for _, r := range changelog.Rules() {
		rules = append(rules, sarifRule{
			ID:               string(r),
			ShortDescription: sarifMessage{Text: ruleDescriptions[r]},
			DefaultConfig:    sarifDefaultConfig{Level: "warning"},
		})
	}

	results := []sarifResult{}
	for _, f := range report.Files {
		for _, o := range f.Offenses {
			results = append(results, sarifResult{
				RuleID:  string(o.Rule),
				Level:   "warning",
				Message: sarifMessage{Text: o.Message},
				Locations: []sarifLocation{{
					PhysicalLocation: sarifPhysicalLocation{
						ArtifactLocation: sarifArtifactLocation{URI: f.Path},
						Region: sarifRegion{
							StartLine:   o.LineNumber,
							StartColumn: o.Range.Start + 1,
							EndColumn:   o.Range.End + 1,
						},
					},
				}},
			})
		}
	}

	return sarifLog{
		Version: sarifVersion,
		Schema:  sarifSchema,
		Runs: []sarifRun{{
			Tool: sarifTool{
				Driver: sarifDriver{
					Name:           report.Tool,
					Version:        report.Version,
					InformationURI: toolURI,
					Rules:          rules,
				},
			},
			ColumnKind: "unicodeCodePoints",
			Results:    results,
		}},
	}
}
