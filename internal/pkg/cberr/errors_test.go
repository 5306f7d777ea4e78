package cberr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImmutable(t *testing.T) {
	e := New(400, "INVALID_REQUEST", "invalid request: some or all request parameters are invalid")
	changedE := e.Msg("%s", "changed")
	if e.Message == "changed" {
		t.Errorf("Expected immutable error with message not equal to 'changed', got '%s'", e.Message)
	}
	if changedE.Message != "changed" {
		t.Errorf("Expected immutable error with message equal to 'changed', got '%s'", changedE.Message)
	}
}

func TestWithExtrasCopies(t *testing.T) {
	e := ErrChartNotFound.WithExtras(Extras{"id": "nope"})
	assert.Nil(t, ErrChartNotFound.Extras)
	assert.Equal(t, "nope", (*e.Extras)["id"])
	assert.Equal(t, "CHART_NOT_FOUND: chart not found", e.Error())
}

func TestNewInvalidViolations(t *testing.T) {
	e := NewInvalidViolations([]string{"seed"})
	assert.Equal(t, 400, e.StatusCode)
	assert.Nil(t, ErrInvalidReq.Extras)
	assert.Contains(t, *e.Extras, "violations")
}
