package scm

import (
	"errors"
	"testing"
)

func TestBuild(t *testing.T) {
	q := Build(
		WithCondition("name", "alice"),
		WithConditionIn("id", []int64{1, 2, 3}),
		WithOrderDesc("number"),
		WithLimit(10),
		WithOffset(5),
	)

	conds := q.Conditions()
	if len(conds) != 2 {
		t.Fatalf("expected 2 conditions, got %d", len(conds))
	}
	if conds[0].Field() != "name" || conds[0].In() {
		t.Errorf("conds[0] = %v", conds[0])
	}
	if conds[1].Field() != "id" || !conds[1].In() {
		t.Errorf("conds[1] = %v", conds[1])
	}

	orders := q.Orders()
	if len(orders) != 1 || orders[0].Field() != "number" || orders[0].Ascending() {
		t.Errorf("Orders() = %v", orders)
	}

	if q.LimitValue() != 10 {
		t.Errorf("LimitValue() = %d", q.LimitValue())
	}
	if q.OffsetValue() != 5 {
		t.Errorf("OffsetValue() = %d", q.OffsetValue())
	}
}

func TestBuild_Empty(t *testing.T) {
	q := Build()
	if len(q.Conditions()) != 0 || len(q.Orders()) != 0 || q.LimitValue() != 0 {
		t.Errorf("empty Build gave %+v", q)
	}
}

func TestCondition_String(t *testing.T) {
	q := Build(WithCondition("name", "x"), WithConditionIn("id", []int64{1}))
	conds := q.Conditions()
	if got := conds[0].String(); got != "name = x" {
		t.Errorf("String() = %q", got)
	}
	if got := conds[1].String(); got != "id IN [1]" {
		t.Errorf("String() = %q", got)
	}
}

func TestAccessError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewAccessError("svn://example.org/project", cause)

	if !errors.Is(err, cause) {
		t.Error("expected AccessError to unwrap its cause")
	}

	var accessErr *AccessError
	if !errors.As(err, &accessErr) {
		t.Fatal("expected errors.As to find *AccessError")
	}
	if accessErr.URL != "svn://example.org/project" {
		t.Errorf("URL = %q", accessErr.URL)
	}
}
