package units

import (
	"math/big"
	"strings"
	"testing"
	"time"
)

func TestValueAddNumbers(t *testing.T) {
	env := testEnv(t)
	l := NumberValue{NewNumber(big.NewRat(2, 1), Singleton("length", 1))}
	r := NumberValue{NewNumber(big.NewRat(3, 1), Singleton("length", 1))}
	got, err := ValueAdd(env, l, r)
	if err != nil {
		t.Fatalf("ValueAdd: %v", err)
	}
	nv, ok := got.(NumberValue)
	if !ok {
		t.Fatalf("expected NumberValue, got %T", got)
	}
	assertNumberEqual(t, nv.Number, NewNumber(big.NewRat(5, 1), Singleton("length", 1)), "ValueAdd")
}

func TestValueAddMismatchedUnitsErrors(t *testing.T) {
	env := testEnv(t)
	l := NumberValue{NewNumber(big.NewRat(2, 1), Singleton("length", 1))}
	r := NumberValue{NewNumber(big.NewRat(3, 1), Singleton("time", 1))}
	if _, err := ValueAdd(env, l, r); err == nil {
		t.Fatal("expected ValueAdd across mismatched units to fail")
	}
}

func TestValueAddDateAndNumber(t *testing.T) {
	env := testEnv(t)
	ts := Timestamp{Instant: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)}
	n := NumberValue{NewNumber(big.NewRat(60, 1), Singleton("s", 1))}
	got, err := ValueAdd(env, TimestampValue{ts}, n)
	if err != nil {
		t.Fatalf("ValueAdd(date, number): %v", err)
	}
	tv, ok := got.(TimestampValue)
	if !ok {
		t.Fatalf("expected TimestampValue, got %T", got)
	}
	want := ts.Instant.Add(60 * time.Second)
	if !tv.Timestamp.Instant.Equal(want) {
		t.Errorf("date + 60s = %v, want %v", tv.Timestamp.Instant, want)
	}
}

func TestValueAddNumberAndDate(t *testing.T) {
	env := testEnv(t)
	ts := Timestamp{Instant: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)}
	n := NumberValue{NewNumber(big.NewRat(60, 1), Singleton("s", 1))}
	got, err := ValueAdd(env, n, TimestampValue{ts})
	if err != nil {
		t.Fatalf("ValueAdd(number, date): %v", err)
	}
	if _, ok := got.(TimestampValue); !ok {
		t.Fatalf("expected TimestampValue, got %T", got)
	}
}

func TestValueSubDateFromDateGivesDuration(t *testing.T) {
	env := testEnv(t)
	a := Timestamp{Instant: time.Date(2020, 1, 1, 0, 1, 0, 0, time.UTC)}
	b := Timestamp{Instant: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)}
	got, err := ValueSub(env, TimestampValue{a}, TimestampValue{b})
	if err != nil {
		t.Fatalf("ValueSub(date, date): %v", err)
	}
	nv, ok := got.(NumberValue)
	if !ok {
		t.Fatalf("expected NumberValue, got %T", got)
	}
	assertNumberEqual(t, nv.Number, NewNumber(big.NewRat(60, 1), Singleton("s", 1)), "date - date")
}

func TestValueMulRejectsDate(t *testing.T) {
	env := testEnv(t)
	n := NumberValue{Scalar(big.NewRat(2, 1))}
	ts := TimestampValue{Timestamp{Instant: time.Now()}}
	if _, err := ValueMul(env, n, ts); err == nil {
		t.Fatal("expected ValueMul with a timestamp operand to fail")
	}
}

func TestValueDivByZeroErrors(t *testing.T) {
	env := testEnv(t)
	a := NumberValue{Scalar(big.NewRat(1, 1))}
	z := NumberValue{Scalar(big.NewRat(0, 1))}
	if _, err := ValueDiv(env, a, z); err == nil {
		t.Fatal("expected ValueDiv by zero to fail")
	}
}

func TestValueNegRejectsDate(t *testing.T) {
	env := testEnv(t)
	ts := TimestampValue{Timestamp{Instant: time.Now()}}
	if _, err := ValueNeg(env, ts); err == nil {
		t.Fatal("expected ValueNeg of a timestamp to fail")
	}
}

func TestOpErrorRendersBothOperands(t *testing.T) {
	env := testEnv(t)
	l := NumberValue{NewNumber(big.NewRat(2, 1), Singleton("length", 1))}
	r := NumberValue{NewNumber(big.NewRat(3, 1), Singleton("time", 1))}
	_, err := ValueAdd(env, l, r)
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "+") {
		t.Errorf("error %q does not mention the operator", msg)
	}
	if !strings.Contains(msg, "<2 length>") || !strings.Contains(msg, "<3 time>") {
		t.Errorf("error %q does not render both operands", msg)
	}
}
