package schema

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/iterlab/pkg/domain"
	"gopkg.in/yaml.v3"
)

// Problem is one entry of a batch file.
type Problem struct {
	Name          string        `yaml:"name" json:"name" mapstructure:"name"`
	Method        domain.Method `yaml:"method" json:"method" mapstructure:"method"`
	Equation      string        `yaml:"equation,omitempty" json:"equation,omitempty" mapstructure:"equation"`
	A             *float64      `yaml:"a,omitempty" json:"a,omitempty" mapstructure:"a"`
	B             *float64      `yaml:"b,omitempty" json:"b,omitempty" mapstructure:"b"`
	Tolerance     *float64      `yaml:"tolerance,omitempty" json:"tolerance,omitempty" mapstructure:"tolerance"`
	MaxIterations *int          `yaml:"max_iterations,omitempty" json:"max_iterations,omitempty" mapstructure:"max_iterations"`
	Matrix        [][]float64   `yaml:"matrix,omitempty" json:"matrix,omitempty" mapstructure:"matrix"`
	RHS           []float64     `yaml:"rhs,omitempty" json:"rhs,omitempty" mapstructure:"rhs"`
}

// ProblemSet represents the structure of a problems file.
type ProblemSet struct {
	Problems []Problem `yaml:"problems" json:"problems"`
}

// FalsePositionRequest converts the problem into a root-finding request.
func (p Problem) FalsePositionRequest() domain.FalsePositionRequest {
	return domain.FalsePositionRequest{
		Equation:      p.Equation,
		A:             p.A,
		B:             p.B,
		Tolerance:     p.Tolerance,
		MaxIterations: p.MaxIterations,
	}
}

// JacobiRequest converts the problem into a linear-system request.
func (p Problem) JacobiRequest() domain.JacobiRequest {
	return domain.JacobiRequest{
		Matrix:        p.Matrix,
		RHS:           p.RHS,
		Tolerance:     p.Tolerance,
		MaxIterations: p.MaxIterations,
	}
}

// Validate checks the fields the solvers cannot run without.
// Numeric checks that depend on the method itself are left to the solvers.
func (p Problem) Validate() error {
	var errs []error
	field := func(name string) string {
		if p.Name == "" {
			return name
		}
		return p.Name + "." + name
	}

	switch p.Method {
	case domain.MethodFalsePosition:
		if len(p.Matrix) > 0 || len(p.RHS) > 0 {
			errs = append(errs, &ValidationError{Key: field("matrix"), Reason: "not allowed for false_position"})
		}
	case domain.MethodJacobi:
		if p.Equation != "" {
			errs = append(errs, &ValidationError{Key: field("equation"), Reason: "not allowed for jacobi", Value: p.Equation})
		}
		if (p.Matrix == nil) != (p.RHS == nil) {
			errs = append(errs, &ValidationError{Key: field("rhs"), Reason: "matrix and rhs must be given together"})
		}
	case "":
		errs = append(errs, &ValidationError{Key: field("method"), Reason: "required"})
	default:
		errs = append(errs, &ValidationError{Key: field("method"), Reason: "unknown method", Value: p.Method})
	}

	if p.Tolerance != nil && *p.Tolerance < 0 {
		errs = append(errs, &ValidationError{Key: field("tolerance"), Reason: "must be >= 0", Value: *p.Tolerance})
	}
	if p.MaxIterations != nil && *p.MaxIterations < 1 {
		errs = append(errs, &ValidationError{Key: field("max_iterations"), Reason: "must be >= 1", Value: *p.MaxIterations})
	}

	return aggregate(errs)
}

// Validate checks every problem and reports all failures at once.
func (s *ProblemSet) Validate() error {
	var errs []error
	seen := make(map[string]bool, len(s.Problems))
	for _, p := range s.Problems {
		if seen[p.Name] {
			errs = append(errs, &ValidationError{Key: p.Name + ".name", Reason: "duplicate name", Value: p.Name})
		}
		seen[p.Name] = true

		if err := p.Validate(); err != nil {
			errs = append(errs, ValidationErrors(err)...)
		}
	}
	return aggregate(errs)
}

// ParseProblems decodes a problem set. format is "json" or "yaml".
func ParseProblems(data []byte, format string) (*ProblemSet, error) {
	var set ProblemSet
	switch strings.ToLower(format) {
	case "json":
		if err := json.Unmarshal(data, &set); err != nil {
			return nil, fmt.Errorf("failed to parse problems json: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &set); err != nil {
			return nil, fmt.Errorf("failed to parse problems yaml: %w", err)
		}
	}

	for i := range set.Problems {
		if set.Problems[i].Name == "" {
			set.Problems[i].Name = fmt.Sprintf("problem-%d", i+1)
		}
	}
	if err := set.Validate(); err != nil {
		return nil, err
	}
	return &set, nil
}

// LoadProblems reads a problems file (YAML or JSON, by extension).
func LoadProblems(path string) (*ProblemSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read problems file: %w", err)
	}

	format := "yaml"
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		format = "json"
	}
	return ParseProblems(data, format)
}
