package common

import (
	"errors"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestAppErrorFormatting(t *testing.T) {
	cause := errors.New("boom")
	err := NewAppError("UNSUPPORTED_SOURCE", "unsupported file extension: .csv", cause)

	want := "UNSUPPORTED_SOURCE: unsupported file extension: .csv: boom"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to reach the cause")
	}

	bare := NewAppError("CONFIG_ERROR", "CANDLEKEEP_HOME is required", nil)
	if bare.Error() != "CONFIG_ERROR: CANDLEKEEP_HOME is required" {
		t.Errorf("Error() without cause = %q", bare.Error())
	}
}

func TestGRPCErrorHelpers(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code codes.Code
		msg  string
	}{
		{"invalid argument", InvalidArgumentError("path is required"), codes.InvalidArgument, "path is required"},
		{"invalid argument formatted", InvalidArgumentErrorf("ingest: %v", errors.New("bad")), codes.InvalidArgument, "ingest: bad"},
		{"not found", NotFoundError("gone"), codes.NotFound, "gone"},
		{"not found formatted", NotFoundErrorf("document %d not found", 7), codes.NotFound, "document 7 not found"},
		{"internal", InternalError("export catalog failed"), codes.Internal, "export catalog failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, ok := status.FromError(tt.err)
			if !ok {
				t.Fatal("expected a gRPC status error")
			}
			if st.Code() != tt.code {
				t.Errorf("code = %v, want %v", st.Code(), tt.code)
			}
			if st.Message() != tt.msg {
				t.Errorf("message = %q, want %q", st.Message(), tt.msg)
			}
		})
	}
}
