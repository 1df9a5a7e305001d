// Package schema loads and validates problem definitions.
//
// Problems arrive from two places: batch files on disk (YAML or JSON, chosen
// by extension) and loosely typed tool arguments such as MCP calls or decoded
// JSON bodies. Both end up as domain requests:
//
//	set, err := schema.LoadProblems("problems.yaml")
//	if err != nil {
//	    // *AggregateError lists every invalid field
//	}
//	for _, p := range set.Problems {
//	    switch p.Method {
//	    case domain.MethodFalsePosition:
//	        req := p.FalsePositionRequest()
//	        ...
//	    }
//	}
//
// Validation failures are *ValidationError values and match
// domain.ErrInvalidInput through errors.Is.
package schema
