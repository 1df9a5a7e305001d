package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aretw0/iterlab/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestSolveError(t *testing.T) {
	err := &domain.SolveError{Method: domain.MethodJacobi, Iteration: 3, Err: domain.ErrDivisionByZero}

	assert.ErrorIs(t, err, domain.ErrDivisionByZero)
	assert.Equal(t, "jacobi: iteration 3: division by zero", err.Error())

	early := &domain.SolveError{Method: domain.MethodFalsePosition, Err: domain.ErrInvalidInput}
	assert.Equal(t, "false_position: invalid input", early.Error())
}

func TestDimensionMismatchIsInvalidInput(t *testing.T) {
	err := fmt.Errorf("%w: rhs too short", domain.ErrDimensionMismatch)

	assert.True(t, errors.Is(err, domain.ErrDimensionMismatch))
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.False(t, errors.Is(domain.ErrInvalidInput, domain.ErrDimensionMismatch))
}
