package stix

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors verifies that all sentinel errors are defined correctly.
func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "ErrUnrecognizedIOC",
			err:  ErrUnrecognizedIOC,
			want: "unrecognized ioc format",
		},
		{
			name: "ErrInvalidTechniqueID",
			err:  ErrInvalidTechniqueID,
			want: "invalid technique id",
		},
		{
			name: "ErrInvalidConfig",
			err:  ErrInvalidConfig,
			want: "invalid configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err == nil {
				t.Fatalf("sentinel error %s is nil", tt.name)
			}
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("error message = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestError_Format(t *testing.T) {
	err := &Error{
		Op:    "Generator.GenerateIndicator",
		Kind:  KindClassification,
		Err:   ErrUnrecognizedIOC,
		Value: "not-an-ioc",
	}

	msg := err.Error()
	for _, want := range []string{"stix:", "Generator.GenerateIndicator", KindClassification, "not-an-ioc"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() = %q, missing %q", msg, want)
		}
	}
}

func TestError_Unwrap(t *testing.T) {
	err := classificationError("Generator.GenerateIndicator", "x")

	if !errors.Is(err, ErrUnrecognizedIOC) {
		t.Error("errors.Is() should match the wrapped sentinel")
	}
	if errors.Is(err, ErrInvalidTechniqueID) {
		t.Error("errors.Is() matched the wrong sentinel")
	}
}

func TestError_IsByKind(t *testing.T) {
	err := formatError("Generator.GenerateAttackPattern", "T12")

	if !errors.Is(err, &Error{Kind: KindFormat}) {
		t.Error("errors.Is() should match by kind alone")
	}
	if !errors.Is(err, &Error{Op: "Generator.GenerateAttackPattern", Kind: KindFormat}) {
		t.Error("errors.Is() should match by op and kind")
	}
	if errors.Is(err, &Error{Op: "Generator.GenerateIndicator", Kind: KindFormat}) {
		t.Error("errors.Is() matched a different op")
	}
}

func TestError_WrappedFurther(t *testing.T) {
	inner := classificationError("Generator.GenerateIndicator", "x")
	outer := fmt.Errorf("processing feed: %w", inner)

	if !errors.Is(outer, ErrUnrecognizedIOC) {
		t.Error("sentinel should survive further wrapping")
	}

	var structured *Error
	if !errors.As(outer, &structured) {
		t.Fatal("errors.As() should recover the structured error")
	}
	if structured.Kind != KindClassification {
		t.Errorf("Kind = %q, want %q", structured.Kind, KindClassification)
	}
}
